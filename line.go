package spacing

// DabOp paints dabs for a stroke. It is implemented by brush engines.
type DabOp interface {
	// PaintDab stamps one dab at pi and returns the spacing that applies
	// until the next dab.
	PaintDab(pi PaintInfo) Spacing
}

// DabOpFunc adapts a function to the DabOp interface.
type DabOpFunc func(pi PaintInfo) Spacing

// PaintDab calls f(pi).
func (f DabOpFunc) PaintDab(pi PaintInfo) Spacing { return f(pi) }

// PaintAt paints a single dab at pi and registers it with d.
func PaintAt(d *Tracker, pi PaintInfo, op DabOp) {
	spacing := op.PaintDab(pi)
	d.RegisterPaintedDab(pi, spacing)
}

// PaintLine paints every dab that falls on the segment from pi1 to pi2 and
// returns how many were painted. The dab at pi1 itself is expected to have
// been painted already, either by PaintAt or by the previous PaintLine.
func PaintLine(d *Tracker, pi1, pi2 PaintInfo, op DabOp) int {
	end := pi2.Pos()
	endTime := pi2.Time()

	pi := pi1
	n := 0
	stalled := false
	for {
		t, ok := d.NextPointPosition(pi.Pos(), end, pi.Time(), endTime)
		if !ok {
			break
		}
		t = min(max(t, 0), 1)

		// A zero factor does not advance along the segment. One is a dab
		// exactly at pi; two in a row can only come from a degenerate
		// timed interval and would never terminate.
		if t == 0 {
			if stalled {
				d.log().Warn("spacing: stroke driver made no progress",
					"timedInterval", d.spacing.TimedSpacingInterval)
				break
			}
			stalled = true
		} else {
			stalled = false
		}

		pi = MixPaintInfo(t, pi, pi2)
		PaintAt(d, pi, op)
		n++
	}

	if n > 0 && d.debugEnabled() {
		d.log().Debug("spacing: painted line", "dabs", n, "tracker", d)
	}
	return n
}
