package spacing

import (
	"context"
	"errors"
	"log/slog"
)

// Contract violations and solver degeneracies. None of them stop a stroke:
// they are reported through the tracker's fault path and the operation
// carries on in a defined way.
var (
	// ErrCloneAfterPaint is reported when a tracker is cloned for another
	// level of detail after it has already registered a painted dab.
	ErrCloneAfterPaint = errors.New("spacing: tracker should be cloned before painting is started")

	// ErrNoLastDab is reported when last dab data is read from a tracker
	// that has none.
	ErrNoLastDab = errors.New("spacing: no last dab information")

	// ErrNoLastPaint is reported when the last paint sample is read from a
	// tracker that has not painted yet.
	ErrNoLastPaint = errors.New("spacing: no last paint information")

	// ErrNoEllipseSolution is reported when the elliptical spacing equation
	// has a negative discriminant.
	ErrNoEllipseSolution = errors.New("spacing: no solution for elliptical spacing equation")
)

// Fault describes a recoverable failure observed by a Tracker.
type Fault struct {
	// Op is the tracker operation that observed the fault.
	Op string
	// Err is one of the package sentinel errors.
	Err error
}

func (f *Fault) Error() string { return f.Op + ": " + f.Err.Error() }

func (f *Fault) Unwrap() error { return f.Err }

// FaultHandler receives faults reported by a Tracker. It is called
// synchronously on the goroutine that drives the tracker.
type FaultHandler func(*Fault)

// FaultRecorder is a FaultHandler that keeps every fault it receives.
// The zero value is ready to use.
type FaultRecorder struct {
	Faults []*Fault
}

// Handle appends f to the recorded faults.
func (r *FaultRecorder) Handle(f *Fault) {
	r.Faults = append(r.Faults, f)
}

// Has reports whether a fault wrapping target was recorded.
func (r *FaultRecorder) Has(target error) bool {
	for _, f := range r.Faults {
		if errors.Is(f, target) {
			return true
		}
	}
	return false
}

// fault logs the failure and hands it to the tracker's handler.
// Solver degeneracies are logged as errors, everything else is a warning.
func (d *Tracker) fault(op string, err error) {
	f := &Fault{Op: op, Err: err}

	level := slog.LevelWarn
	if errors.Is(err, ErrNoEllipseSolution) {
		level = slog.LevelError
	}
	if l := d.log(); l.Enabled(context.Background(), level) {
		l.Log(context.Background(), level, err.Error(), "op", op)
	}

	if d.onFault != nil {
		d.onFault(f)
	}
}
