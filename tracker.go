package spacing

import (
	"context"
	"log/slog"
	"math"
)

// minSpacing is the smallest spacing radius the solvers accept.
const minSpacing = 0.5

// rotationEpsilon is the rotation below which the elliptical solver skips
// rotating the segment (about 0.2 degrees).
const rotationEpsilon = 2e-3

// Tracker keeps the cumulative distance and time state of one paint stroke
// and decides where along each new input segment the next dab lands.
//
// A Tracker belongs to a single stroke (or a single level-of-detail branch
// of a stroke) and is not safe for concurrent use. Concurrent strokes use
// separate trackers.
//
// The driving loop is:
//
//	for {
//	    t, ok := d.NextPointPosition(pi.Pos(), end.Pos(), pi.Time(), end.Time())
//	    if !ok {
//	        break
//	    }
//	    pi = spacing.MixPaintInfo(min(t, 1), pi, end)
//	    d.RegisterPaintedDab(pi, paintDab(pi))
//	}
//
// [PaintLine] implements it.
type Tracker struct {
	accumDistance Point
	accumTime     float64
	spacing       Spacing

	lastPosition     Point
	lastTime         float64
	lastDabInfoValid bool

	lastPaintInfo      PaintSample
	lastAngle          float64
	lastPaintInfoValid bool

	lockedDrawingAngle    float64
	hasLockedDrawingAngle bool

	totalDistance float64

	logger  *slog.Logger
	onFault FaultHandler
}

// NewTracker creates an empty tracker with no dab history. Until the first
// dab is registered it uses the minimum isotropic spacing.
func NewTracker(opts ...TrackerOption) *Tracker {
	o := resolveOptions(opts)
	return &Tracker{
		spacing: NewSpacing(0),
		logger:  o.logger,
		onFault: o.onFault,
	}
}

// NewTrackerAt creates a tracker seeded with the position and time where a
// stroke starts. The tracker has last dab information but has not painted.
func NewTrackerAt(lastPosition Point, lastTime float64, opts ...TrackerOption) *Tracker {
	d := NewTracker(opts...)
	d.lastPosition = lastPosition
	d.lastTime = lastTime
	d.lastDabInfoValid = true
	return d
}

// Clone returns an independent copy of d. The copy shares d's logger and
// fault handler.
func (d *Tracker) Clone() *Tracker {
	c := *d
	return &c
}

// CloneForLod returns a copy of d for a stroke rendered at levelOfDetail.
// The last position is mapped to the reduced resolution.
//
// Cloning must happen before d paints. Cloning a tracker that already
// painted reports [ErrCloneAfterPaint]; the clone is still returned.
func (d *Tracker) CloneForLod(levelOfDetail int) *Tracker {
	c := d.Clone()
	if d.lastPaintInfoValid {
		c.fault("CloneForLod", ErrCloneAfterPaint)
	}

	t := NewLodTransform(levelOfDetail)
	c.lastPosition = t.Map(c.lastPosition)

	c.log().Debug("spacing: cloned tracker for level of detail",
		"lod", t.LevelOfDetail(), "lastPosition", c.lastPosition)
	return c
}

// OverrideLastValues reseeds the last known position and time, as when a
// stroke is continued from a new starting point.
func (d *Tracker) OverrideLastValues(lastPosition Point, lastTime float64) {
	d.lastPosition = lastPosition
	d.lastTime = lastTime
	d.lastDabInfoValid = true

	d.log().Debug("spacing: reseeded tracker",
		"lastPosition", lastPosition, "lastTime", lastTime)
}

// CurrentSpacing returns the spacing registered with the last dab.
func (d *Tracker) CurrentSpacing() Spacing {
	return d.spacing
}

// HasLastDabInformation reports whether LastPosition, LastTime and
// LastDrawingAngle hold meaningful values.
func (d *Tracker) HasLastDabInformation() bool {
	return d.lastDabInfoValid
}

// LastPosition returns the position of the last dab or of the seed.
// Check HasLastDabInformation first; otherwise [ErrNoLastDab] is reported.
func (d *Tracker) LastPosition() Point {
	if !d.lastDabInfoValid {
		d.fault("LastPosition", ErrNoLastDab)
	}
	return d.lastPosition
}

// LastTime returns the time of the last dab or of the seed.
// Check HasLastDabInformation first; otherwise [ErrNoLastDab] is reported.
func (d *Tracker) LastTime() float64 {
	if !d.lastDabInfoValid {
		d.fault("LastTime", ErrNoLastDab)
	}
	return d.lastTime
}

// LastDrawingAngle returns the drawing angle of the last dab.
// Check HasLastDabInformation first; otherwise [ErrNoLastDab] is reported.
func (d *Tracker) LastDrawingAngle() float64 {
	if !d.lastDabInfoValid {
		d.fault("LastDrawingAngle", ErrNoLastDab)
	}
	return d.lastAngle
}

// HasLastPaintInformation reports whether a dab has been painted.
func (d *Tracker) HasLastPaintInformation() bool {
	return d.lastPaintInfoValid
}

// LastPaintInformation returns the sample of the last painted dab.
// Check HasLastPaintInformation first; otherwise [ErrNoLastPaint] is
// reported and nil is returned.
func (d *Tracker) LastPaintInformation() PaintSample {
	if !d.lastPaintInfoValid {
		d.fault("LastPaintInformation", ErrNoLastPaint)
	}
	return d.lastPaintInfo
}

// IsStarted reports whether the stroke has painted its first dab.
func (d *Tracker) IsStarted() bool {
	return d.lastPaintInfoValid
}

// HasLockedDrawingAngle reports whether SetLockedDrawingAngle was called.
func (d *Tracker) HasLockedDrawingAngle() bool {
	return d.hasLockedDrawingAngle
}

// LockedDrawingAngle returns the locked drawing angle.
func (d *Tracker) LockedDrawingAngle() float64 {
	return d.lockedDrawingAngle
}

// SetLockedDrawingAngle fixes the drawing angle for the rest of the stroke.
// The lock is never cleared by the tracker itself.
func (d *Tracker) SetLockedDrawingAngle(angle float64) {
	d.hasLockedDrawingAngle = true
	d.lockedDrawingAngle = angle
}

// ScalarDistanceApprox returns the total length of the stroke measured
// between registered dabs.
func (d *Tracker) ScalarDistanceApprox() float64 {
	return d.totalDistance
}

// RegisterPaintedDab records that a dab was painted at sample, and that
// spacing applies to the dabs that follow it.
func (d *Tracker) RegisterPaintedDab(sample PaintSample, spacing Spacing) {
	pos := sample.Pos()
	if d.lastDabInfoValid {
		d.totalDistance += pos.Distance(d.lastPosition)
	}

	d.lastAngle = sample.DrawingAngleSafe(d)
	d.lastPaintInfo = sample
	d.lastPaintInfoValid = true

	d.lastPosition = pos
	d.lastTime = sample.Time()
	d.lastDabInfoValid = true

	d.spacing = spacing
}

// NextPointPosition returns the interpolation factor t locating the next
// dab on the segment from start to end. Positions and times are both
// interpolated linearly by t. ok is false if no dab falls on the segment
// yet; the segment is then added to the accumulated distance and time.
//
// Distance and time are checked independently and the earlier of the two
// wins. The timed factor is the interval divided by the accumulated time,
// which leaves [0, 1] only for a non-positive interval; callers clamp t.
func (d *Tracker) NextPointPosition(start, end Point, startTime, endTime float64) (t float64, ok bool) {
	var spaceT float64
	var spaceOK bool
	if !d.spacing.DistanceSpacingDisabled {
		if d.spacing.Isotropic {
			spaceT, spaceOK = d.nextPointPositionIsotropic(start, end)
		} else {
			spaceT, spaceOK = d.nextPointPositionAnisotropic(start, end)
		}
	}

	timeT, timeOK := d.nextPointPositionTimed(startTime, endTime)

	switch {
	case !spaceOK:
		return timeT, timeOK
	case !timeOK:
		return spaceT, spaceOK
	default:
		return math.Min(spaceT, timeT), true
	}
}

func (d *Tracker) nextPointPositionIsotropic(start, end Point) (float64, bool) {
	if start == end {
		return 0, false
	}

	distance := d.accumDistance.X
	spacing := math.Max(minSpacing, d.spacing.Spacing.X)

	dragVecLength := end.Sub(start).Length()
	nextPointDistance := spacing - distance

	if nextPointDistance <= dragVecLength {
		d.resetAccumulators()
		// The spacing shrank below the distance already covered: the dab
		// is overdue and cannot be placed on this segment.
		if nextPointDistance < 0 {
			return 0, false
		}
		return nextPointDistance / dragVecLength, true
	}

	d.accumDistance.X += dragVecLength
	return 0, false
}

// nextPointPositionAnisotropic finds where the accumulated offset plus k
// times the segment crosses the spacing ellipse:
//
//	((x + k*dx)/a)^2 + ((y + k*dy)/b)^2 = 1
func (d *Tracker) nextPointPositionAnisotropic(start, end Point) (float64, bool) {
	if start == end {
		return 0, false
	}

	aRev := 1 / math.Max(minSpacing, d.spacing.Spacing.X)
	bRev := 1 / math.Max(minSpacing, d.spacing.Spacing.Y)

	x := d.accumDistance.X
	y := d.accumDistance.Y

	rotation := d.spacing.Rotation
	if d.spacing.CoordinateSystemFlipped {
		rotation = 2*math.Pi - rotation
	}

	diff := end.Sub(start)

	// The ellipse is symmetrical, so the sign of the rotation does not matter.
	if math.Abs(rotation) > rotationEpsilon {
		diff = diff.Rotate(rotation)
	}

	dx := math.Abs(diff.X)
	dy := math.Abs(diff.Y)

	alpha := sq(dx*aRev) + sq(dy*bRev)
	beta := x*dx*aRev*aRev + y*dy*bRev*bRev
	gamma := sq(x*aRev) + sq(y*bRev) - 1

	discriminant := sq(beta) - alpha*gamma
	if discriminant < 0 {
		d.fault("NextPointPosition", ErrNoEllipseSolution)
		return 0, false
	}

	k := (-beta + math.Sqrt(discriminant)) / alpha
	if k >= 0 && k <= 1 {
		d.resetAccumulators()
		return k, true
	}

	d.accumDistance = d.accumDistance.Add(diff.Abs())
	return 0, false
}

func (d *Tracker) nextPointPositionTimed(startTime, endTime float64) (float64, bool) {
	if !(startTime < endTime) || !d.spacing.TimedSpacingEnabled {
		return 0, false
	}

	interval := d.spacing.TimedSpacingInterval
	accumTime := d.accumTime + endTime - startTime

	if accumTime >= interval {
		d.resetAccumulators()
		return interval / accumTime, true
	}

	d.accumTime = accumTime
	return 0, false
}

// resetAccumulators clears distance and time together: a dab placed by
// either trigger restarts both.
func (d *Tracker) resetAccumulators() {
	d.accumDistance = Point{}
	d.accumTime = 0
}

func sq(v float64) float64 { return v * v }

// LogValue implements slog.LogValuer so a tracker can be logged directly.
func (d *Tracker) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("totalDistance", d.totalDistance),
		slog.Bool("started", d.lastPaintInfoValid),
		slog.Any("lastPosition", d.lastPosition),
		slog.Float64("lastAngle", d.lastAngle),
	)
}

var _ slog.LogValuer = (*Tracker)(nil)

func (d *Tracker) log() *slog.Logger {
	if d.logger == nil {
		return Logger()
	}
	return d.logger
}

func (d *Tracker) debugEnabled() bool {
	return d.log().Enabled(context.Background(), slog.LevelDebug)
}
