package spacing

import (
	"math"
	"testing"
)

func TestPaintInfo_Accessors(t *testing.T) {
	pi := NewPaintInfo(Pt(1, 2), 3, 0.4)
	diff(t, Pt(1, 2), pi.Pos())
	diff(t, 3.0, pi.Time())
	diff(t, 0.4, pi.Pressure())
}

func TestPaintInfo_DrawingAngleSafe(t *testing.T) {
	seeded := func() *Tracker { return NewTrackerAt(Pt(0, 0), 0) }

	tests := []struct {
		name    string
		tracker func() *Tracker
		pi      PaintInfo
		want    float64
	}{
		{
			name:    "empty history",
			tracker: func() *Tracker { return NewTracker() },
			pi:      NewPaintInfo(Pt(10, 10), 0, 1),
			want:    0,
		},
		{
			name:    "direction from last dab",
			tracker: seeded,
			pi:      NewPaintInfo(Pt(-10, 0), 0, 1),
			want:    math.Pi,
		},
		{
			name: "coincident keeps last angle",
			tracker: func() *Tracker {
				d := seeded()
				d.RegisterPaintedDab(NewPaintInfo(Pt(0, 10), 1, 1), NewSpacing(1))
				return d
			},
			pi:   NewPaintInfo(Pt(0, 10), 2, 1),
			want: math.Pi / 2,
		},
		{
			name: "locked angle",
			tracker: func() *Tracker {
				d := seeded()
				d.SetLockedDrawingAngle(0.75)
				return d
			},
			pi:   NewPaintInfo(Pt(-10, 0), 0, 1),
			want: 0.75,
		},
		{
			name: "override beats locked angle",
			tracker: func() *Tracker {
				d := seeded()
				d.SetLockedDrawingAngle(0.75)
				return d
			},
			pi:   NewPaintInfo(Pt(-10, 0), 0, 1).WithDrawingAngle(-0.5),
			want: -0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var faults FaultRecorder
			d := tt.tracker()
			d.onFault = faults.Handle

			diff(t, tt.want, tt.pi.DrawingAngleSafe(d), approx)
			if len(faults.Faults) != 0 {
				t.Errorf("DrawingAngleSafe reported faults: %v", faults.Faults)
			}
		})
	}
}

func TestMixPaintInfo(t *testing.T) {
	a := NewPaintInfo(Pt(0, 0), 10, 0)
	b := NewPaintInfo(Pt(10, -20), 30, 1)

	tests := []struct {
		t    float64
		want PaintInfo
	}{
		{0, a},
		{1, b},
		{0.25, NewPaintInfo(Pt(2.5, -5), 15, 0.25)},
	}
	for _, tt := range tests {
		got := MixPaintInfo(tt.t, a, b)
		if !got.Pos().Eq(tt.want.Pos(), 1e-12) {
			t.Errorf("MixPaintInfo(%v).Pos() = %v, want %v", tt.t, got.Pos(), tt.want.Pos())
		}
		diff(t, tt.want.Time(), got.Time(), approx)
		diff(t, tt.want.Pressure(), got.Pressure(), approx)
	}
}

func TestMixPaintInfo_AngleOverride(t *testing.T) {
	d := NewTrackerAt(Pt(0, 0), 0)
	a := NewPaintInfo(Pt(0, 0), 0, 1).WithDrawingAngle(1)
	b := NewPaintInfo(Pt(10, 0), 1, 1).WithDrawingAngle(1)

	diff(t, 1.0, MixPaintInfo(0.5, a, b).DrawingAngleSafe(d))

	c := NewPaintInfo(Pt(0, 10), 1, 1).WithDrawingAngle(2)
	diff(t, math.Pi/2, MixPaintInfo(0.5, a, c).DrawingAngleSafe(d), approx)
}
