package spacing

// DabHistory is the read-only view of a stroke's dab history that a paint
// sample needs to work out its drawing angle. *Tracker implements it.
type DabHistory interface {
	HasLockedDrawingAngle() bool
	LockedDrawingAngle() float64
	HasLastDabInformation() bool
	LastPosition() Point
	LastDrawingAngle() float64
}

// PaintSample is a single input sample of a stroke as seen by the tracker.
type PaintSample interface {
	Pos() Point
	Time() float64

	// DrawingAngleSafe returns the direction of travel at this sample given
	// the stroke's history so far. It must not fail when the history is
	// empty.
	DrawingAngleSafe(h DabHistory) float64
}

// PaintInfo is the default PaintSample: a position, a timestamp and the
// pressure at that instant.
type PaintInfo struct {
	pos      Point
	time     float64
	pressure float64

	angleOverride    float64
	hasAngleOverride bool
}

// NewPaintInfo creates a sample at pos and time with the given pressure.
func NewPaintInfo(pos Point, time, pressure float64) PaintInfo {
	return PaintInfo{pos: pos, time: time, pressure: pressure}
}

// Pos returns the sample position.
func (pi PaintInfo) Pos() Point { return pi.pos }

// Time returns the sample timestamp.
func (pi PaintInfo) Time() float64 { return pi.time }

// Pressure returns the sample pressure in [0, 1].
func (pi PaintInfo) Pressure() float64 { return pi.pressure }

// WithDrawingAngle returns a copy of pi whose drawing angle is fixed to
// angle regardless of the stroke history.
func (pi PaintInfo) WithDrawingAngle(angle float64) PaintInfo {
	pi.angleOverride = angle
	pi.hasAngleOverride = true
	return pi
}

// DrawingAngleSafe implements PaintSample. In order of precedence it uses
// the sample's own override, the stroke's locked angle, and the direction
// from the last dab. Without a last dab the angle is 0.
func (pi PaintInfo) DrawingAngleSafe(h DabHistory) float64 {
	if pi.hasAngleOverride {
		return pi.angleOverride
	}
	if h.HasLockedDrawingAngle() {
		return h.LockedDrawingAngle()
	}
	if !h.HasLastDabInformation() {
		return 0
	}
	return directionBetween(h.LastPosition(), pi.pos, h.LastDrawingAngle())
}

// MixPaintInfo interpolates linearly between a and b. Position, time and
// pressure are mixed; an angle override is kept only if both ends agree.
func MixPaintInfo(t float64, a, b PaintInfo) PaintInfo {
	pi := PaintInfo{
		pos:      a.pos.Lerp(b.pos, t),
		time:     a.time + (b.time-a.time)*t,
		pressure: a.pressure + (b.pressure-a.pressure)*t,
	}
	if a.hasAngleOverride && b.hasAngleOverride && a.angleOverride == b.angleOverride {
		pi = pi.WithDrawingAngle(a.angleOverride)
	}
	return pi
}
