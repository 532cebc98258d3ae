package fftypes

// StageFunc runs butterfly stage s of a size-n decimation-in-frequency
// transform, reading in and writing out. The twiddle table has n/2 entries
// and stage s reads it with stride 2^s. in and out must not overlap.
type StageFunc[T Complex] func(out, in, twiddle []T, n, stage int, inverse bool)

// SmallFunc is a closed-form transform for one fixed size.
// It reads every input before writing, so dst and src may alias.
// It reports false when the slices are too short.
type SmallFunc[T Complex] func(dst, src, twiddle []T) bool
