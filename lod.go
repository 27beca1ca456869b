package spacing

// LodTransform maps canvas coordinates to a reduced level of detail.
// Level 0 is full resolution; every further level halves both axes.
type LodTransform struct {
	levelOfDetail int
	m             Matrix
}

// LodToScale returns the coordinate scale of a level of detail.
// Negative levels are treated as full resolution.
func LodToScale(levelOfDetail int) float64 {
	if levelOfDetail <= 0 {
		return 1
	}
	return 1 / float64(uint64(1)<<uint(min(levelOfDetail, 62)))
}

// NewLodTransform creates the transform for levelOfDetail.
func NewLodTransform(levelOfDetail int) LodTransform {
	levelOfDetail = max(levelOfDetail, 0)
	s := LodToScale(levelOfDetail)
	return LodTransform{levelOfDetail: levelOfDetail, m: Scale(s, s)}
}

// LevelOfDetail returns the level the transform maps to.
func (t LodTransform) LevelOfDetail() int { return t.levelOfDetail }

// Map converts a full-resolution position to this level of detail.
func (t LodTransform) Map(p Point) Point { return t.m.TransformPoint(p) }

// MapInverted converts a position at this level of detail back to full
// resolution.
func (t LodTransform) MapInverted(p Point) Point { return t.m.Invert().TransformPoint(p) }
