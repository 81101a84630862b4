package analytics

import (
	"time"

	"fulfillment-engine/internal/pkg/errs"
)

var ErrInvalidWindow = errs.Validation("window start must be before end")

// Window is the half-open interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start, End: end}, nil
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Days is the window length in fractional days.
func (w Window) Days() float64 {
	return w.End.Sub(w.Start).Hours() / 24
}

func (w Window) Validate() error {
	if !w.Start.Before(w.End) {
		return ErrInvalidWindow
	}
	return nil
}
