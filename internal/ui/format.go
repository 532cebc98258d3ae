// Package ui renders benchmark tables, complex arrays and progress for the
// binafft command.
package ui

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/cwbudde/binafft"
)

const rule = "--------------------"

// FormatComplex renders v compactly: "0" for zero, a bare imaginary part
// ("  0.5i") or real part (" 0.25 ") when the other is zero, and
// "re + imi" / "re - imi" otherwise.
func FormatComplex[T binafft.Complex](v T) string {
	re, im := parts(v)

	switch {
	case re == 0 && im == 0:
		return "0"
	case re == 0:
		return fmt.Sprintf("%7.4gi", im)
	case im == 0:
		return fmt.Sprintf("% 7.4g ", re)
	}

	sign := " + "
	if im < 0 {
		sign = " - "
	}

	return fmt.Sprintf("% 7.4g %s%7.4gi", re, sign, math.Abs(im))
}

// PrintComplexArray writes title, a rule, one FormatComplex line per value
// and a closing rule.
func PrintComplexArray[T binafft.Complex](w io.Writer, title string, values []T) error {
	var b strings.Builder

	b.WriteString(title)
	b.WriteByte('\n')
	b.WriteString(rule)
	b.WriteByte('\n')

	for _, v := range values {
		b.WriteString(FormatComplex(v))
		b.WriteByte('\n')
	}

	b.WriteString(rule)
	b.WriteByte('\n')

	_, err := io.WriteString(w, b.String())

	return err
}

// FormatDuration shows sub-millisecond durations in ns or µs.
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1e3)
	default:
		return d.String()
	}
}

func parts[T binafft.Complex](v T) (re, im float64) {
	switch c := any(v).(type) {
	case complex64:
		return float64(real(c)), float64(imag(c))
	case complex128:
		return real(c), imag(c)
	default:
		return 0, 0
	}
}
