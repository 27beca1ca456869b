package spacing

import "math"

// Timed spacing limits applied by [EffectiveSpacing], in the same time
// units as paint sample timestamps (milliseconds for tablet input).
const (
	MinTimedSpacingInterval = 0.5
	MaxTimedSpacingInterval = 1e15
)

// Spacing describes how far apart consecutive dabs of a stroke are placed.
// It is produced by the brush engine for every painted dab and is read-only
// to the tracker.
//
// An isotropic spacing is a circle of radius Spacing.X. An anisotropic one
// is an ellipse with radii Spacing.X and Spacing.Y, rotated by Rotation
// radians.
type Spacing struct {
	Isotropic bool
	Spacing   Point
	Rotation  float64

	// CoordinateSystemFlipped is set when the canvas is mirrored, which
	// reverses the sense of Rotation.
	CoordinateSystemFlipped bool

	// DistanceSpacingDisabled turns the spatial trigger off, so only timed
	// spacing can place dabs.
	DistanceSpacingDisabled bool

	TimedSpacingEnabled  bool
	TimedSpacingInterval float64
}

// NewSpacing creates an isotropic spacing with the given radius.
func NewSpacing(radius float64) Spacing {
	return Spacing{
		Isotropic: true,
		Spacing:   Pt(radius, radius),
	}
}

// NewAnisotropicSpacing creates an elliptical spacing.
func NewAnisotropicSpacing(x, y, rotation float64, flipped bool) Spacing {
	return Spacing{
		Spacing:                 Pt(x, y),
		Rotation:                rotation,
		CoordinateSystemFlipped: flipped,
	}
}

// WithTimedSpacing returns a copy of s that also places a dab every
// interval time units.
func (s Spacing) WithTimedSpacing(interval float64) Spacing {
	s.TimedSpacingEnabled = true
	s.TimedSpacingInterval = interval
	return s
}

// WithoutDistanceSpacing returns a copy of s with the spatial trigger off.
func (s Spacing) WithoutDistanceSpacing() Spacing {
	s.DistanceSpacingDisabled = true
	return s
}

// ScalarApprox returns a single number summarizing the spacing distance.
func (s Spacing) ScalarApprox() float64 {
	if s.Isotropic {
		return s.Spacing.X
	}
	return s.Spacing.Length()
}

// SpacingParams are the brush settings [EffectiveSpacing] derives a
// Spacing from.
type SpacingParams struct {
	// DabWidth and DabHeight are the dab extents in canvas pixels at the
	// current level of detail.
	DabWidth, DabHeight float64

	// ExtraScale multiplies the final spacing. Zero means 1.
	ExtraScale float64

	Isotropic   bool
	Rotation    float64
	AxesFlipped bool

	// Coeff is the spacing as a fraction of the dab size.
	Coeff float64

	// AutoSpacing replaces Coeff with a spacing that grows with the square
	// root of the dab size, scaled by AutoSpacingCoeff.
	AutoSpacing      bool
	AutoSpacingCoeff float64

	// LodScale is the scale of the current level of detail. Zero means 1.
	LodScale float64

	DistanceSpacingDisabled bool

	TimedSpacingEnabled  bool
	TimedSpacingInterval float64
}

// EffectiveSpacing computes the spacing a brush with the given settings
// should report for a dab.
func EffectiveSpacing(p SpacingParams) Spacing {
	extraScale := p.ExtraScale
	if extraScale == 0 {
		extraScale = 1
	}
	lodScale := p.LodScale
	if lodScale == 0 {
		lodScale = 1
	}

	var s Spacing
	if p.Isotropic {
		dim := math.Max(p.DabWidth, p.DabHeight)
		if p.AutoSpacing {
			dim = autoSpacing(dim/lodScale, p.AutoSpacingCoeff) * lodScale
		} else {
			dim *= p.Coeff
		}
		s = NewSpacing(dim * extraScale)
	} else {
		var sp Point
		if p.AutoSpacing {
			sp = Pt(
				autoSpacing(p.DabWidth/lodScale, p.AutoSpacingCoeff),
				autoSpacing(p.DabHeight/lodScale, p.AutoSpacingCoeff),
			).Mul(lodScale)
		} else {
			sp = Pt(p.DabWidth, p.DabHeight).Mul(p.Coeff)
		}
		sp = sp.Mul(extraScale)
		s = NewAnisotropicSpacing(sp.X, sp.Y, p.Rotation, p.AxesFlipped)
	}

	s.DistanceSpacingDisabled = p.DistanceSpacingDisabled
	if p.TimedSpacingEnabled {
		s = s.WithTimedSpacing(clampTimedInterval(p.TimedSpacingInterval))
	}
	return s
}

// autoSpacing grows linearly below one pixel and with the square root
// above it, so large brushes do not spread their dabs too far apart.
func autoSpacing(v, coeff float64) float64 {
	if v < 1 {
		return coeff * v
	}
	return coeff * math.Sqrt(v)
}

func clampTimedInterval(interval float64) float64 {
	return math.Min(math.Max(interval, MinTimedSpacingInterval), MaxTimedSpacingInterval)
}
