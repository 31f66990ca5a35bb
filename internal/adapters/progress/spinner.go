package progress

import (
	"time"

	"github.com/briandowns/spinner"

	"github.com/trebuchet-org/crater/internal/domain/config"
	"github.com/trebuchet-org/crater/internal/usecase"
)

// SpinnerSink shows a terminal spinner while a slow operation runs
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a spinner-based progress sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// Start begins the spinner with the given message
func (s *SpinnerSink) Start(message string) {
	s.spinner.Suffix = " " + message
	if !s.spinner.Active() {
		s.spinner.Start()
	}
}

// Stop halts the spinner
func (s *SpinnerSink) Stop() {
	if s.spinner.Active() {
		s.spinner.Stop()
	}
}

// NopSink discards progress events
type NopSink struct{}

func (NopSink) Start(string) {}
func (NopSink) Stop()        {}

// NewSink picks the sink for the runtime configuration: a spinner for
// interactive use, nothing for JSON or non-interactive output.
func NewSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.JSON || cfg.NonInteractive {
		return NopSink{}
	}
	return NewSpinnerSink()
}

var (
	_ usecase.ProgressSink = (*SpinnerSink)(nil)
	_ usecase.ProgressSink = NopSink{}
)
