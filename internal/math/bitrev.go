package math

// Reverser reverses the low bits of an index to a fixed width.
type Reverser func(v uint64) uint64

// ReverseBits8 reverses all 8 bits of v.
func ReverseBits8(v uint8) uint8 {
	v = (v&0xF0)>>4 | (v&0x0F)<<4
	v = (v&0xCC)>>2 | (v&0x33)<<2
	v = (v&0xAA)>>1 | (v&0x55)<<1

	return v
}

// ReverseBits16 reverses all 16 bits of v.
func ReverseBits16(v uint16) uint16 {
	v = v>>8 | v<<8
	v = (v&0xF0F0)>>4 | (v&0x0F0F)<<4
	v = (v&0xCCCC)>>2 | (v&0x3333)<<2
	v = (v&0xAAAA)>>1 | (v&0x5555)<<1

	return v
}

// ReverseBits32 reverses all 32 bits of v.
func ReverseBits32(v uint32) uint32 {
	v = v>>16 | v<<16
	v = (v&0xFF00FF00)>>8 | (v&0x00FF00FF)<<8
	v = (v&0xF0F0F0F0)>>4 | (v&0x0F0F0F0F)<<4
	v = (v&0xCCCCCCCC)>>2 | (v&0x33333333)<<2
	v = (v&0xAAAAAAAA)>>1 | (v&0x55555555)<<1

	return v
}

// ReverseBits64 reverses all 64 bits of v.
func ReverseBits64(v uint64) uint64 {
	v = v>>32 | v<<32
	v = (v&0xFFFF0000FFFF0000)>>16 | (v&0x0000FFFF0000FFFF)<<16
	v = (v&0xFF00FF00FF00FF00)>>8 | (v&0x00FF00FF00FF00FF)<<8
	v = (v&0xF0F0F0F0F0F0F0F0)>>4 | (v&0x0F0F0F0F0F0F0F0F)<<4
	v = (v&0xCCCCCCCCCCCCCCCC)>>2 | (v&0x3333333333333333)<<2
	v = (v&0xAAAAAAAAAAAAAAAA)>>1 | (v&0x5555555555555555)<<1

	return v
}

// SelectReverser returns a routine that reverses the low width bits of its
// argument, built on the narrowest of the 8/16/32/64-bit reversals that
// covers width. Bits above width are ignored. A width of 0 yields a routine
// returning 0; widths above 64 are clamped to 64.
func SelectReverser(width int) Reverser {
	switch {
	case width <= 0:
		return func(uint64) uint64 { return 0 }
	case width <= 8:
		shift := uint(8 - width)
		mask := uint64(1)<<uint(width) - 1

		return func(v uint64) uint64 {
			return uint64(ReverseBits8(uint8(v&mask)) >> shift)
		}
	case width <= 16:
		shift := uint(16 - width)
		mask := uint64(1)<<uint(width) - 1

		return func(v uint64) uint64 {
			return uint64(ReverseBits16(uint16(v&mask)) >> shift)
		}
	case width <= 32:
		shift := uint(32 - width)
		mask := uint64(1)<<uint(width) - 1

		return func(v uint64) uint64 {
			return uint64(ReverseBits32(uint32(v&mask)) >> shift)
		}
	default:
		if width > 64 {
			width = 64
		}

		shift := uint(64 - width)

		return func(v uint64) uint64 {
			return ReverseBits64(v) >> shift
		}
	}
}

// Reverse reverses the low width bits of v.
// Example: Reverse(0b110, 3) = 0b011.
func Reverse(v uint64, width int) uint64 {
	return SelectReverser(width)(v)
}
