package ui

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// RefreshRate is the spinner frame interval.
const RefreshRate = 100 * time.Millisecond

// Spinner abstracts the terminal spinner so progress reporting can be
// tested without a terminal.
type Spinner interface {
	Start()
	Stop()
	UpdateSuffix(suffix string)
}

type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

// NewSpinner returns a spinner drawing to w.
func NewSpinner(w io.Writer) Spinner {
	return &realSpinner{s: spinner.New(spinner.CharSets[11], RefreshRate, spinner.WithWriter(w))}
}

// nopSpinner is used in quiet mode.
type nopSpinner struct{}

func (nopSpinner) Start()              {}
func (nopSpinner) Stop()               {}
func (nopSpinner) UpdateSuffix(string) {}

// NopSpinner returns a Spinner that draws nothing.
func NopSpinner() Spinner { return nopSpinner{} }

// BenchProgress returns a progress callback for bench.Runner that reports
// through s.
func BenchProgress(s Spinner) func(done, total, n int) {
	return func(done, total, n int) {
		s.UpdateSuffix(fmt.Sprintf(" benchmarked N=%d (%d/%d)", n, done, total))
	}
}
