package engine

//go:generate mockgen -source=display.go -destination=mock/display.go -package=mock

import (
	"errors"

	"github.com/lixenwraith/asclock/render"
)

// Display is the terminal output collaborator
type Display interface {
	// Clear empties the visible region and homes the cursor
	Clear() error

	// Draw writes a rendered frame
	Draw(frame *render.Frame) error

	// Notice writes a one-line message below the frame
	Notice(msg string) error
}

// Alerter emits one expiry alert
type Alerter interface {
	Alert() error
}

// AlerterFunc adapts a plain function to Alerter
type AlerterFunc func() error

// Alert calls f
func (f AlerterFunc) Alert() error { return f() }

type multiAlerter []Alerter

func (m multiAlerter) Alert() error {
	var errs []error
	for _, a := range m {
		if err := a.Alert(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// MultiAlerter fans one alert out to every non-nil alerter and joins their errors
func MultiAlerter(alerters ...Alerter) Alerter {
	out := make(multiAlerter, 0, len(alerters))
	for _, a := range alerters {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

var noAlert = AlerterFunc(func() error { return nil })
