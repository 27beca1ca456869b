// Package spacing decides where a brush stamps its dabs along a stroke.
//
// # Overview
//
// A painting stroke arrives as a sequence of input samples. Between two
// samples the brush engine must place zero or more dabs (single stamps of
// the brush footprint) so that they are evenly spaced in distance, in time,
// or both. A [Tracker] keeps the running state of one stroke and answers,
// for each new input segment, at which fraction of the segment the next
// dab lands.
//
// # Quick Start
//
//	d := spacing.NewTracker()
//	op := spacing.DabOpFunc(func(pi spacing.PaintInfo) spacing.Spacing {
//	    stamp(pi.Pos())
//	    return spacing.NewSpacing(4)
//	})
//
//	spacing.PaintAt(d, first, op)
//	for _, next := range samples {
//	    spacing.PaintLine(d, prev, next, op)
//	    prev = next
//	}
//
// # Spacing Models
//
//   - Isotropic: dabs are placed every r pixels of travel.
//   - Anisotropic: the spacing is an ellipse rotated with the brush, so an
//     elongated brush can be spaced more tightly across its short axis.
//   - Timed: a dab is placed at least every interval time units, even when
//     the pointer does not move far.
//
// When distance and time both call for a dab on the same segment, the
// earlier one wins.
//
// # Level of Detail
//
// Strokes previewed at reduced resolution get their own tracker cloned with
// [Tracker.CloneForLod] before painting starts.
//
// # Errors
//
// Contract violations, such as reading the last dab of a tracker that has
// none, do not stop a stroke. They are logged and passed to the handler
// installed with [WithFaultHandler]; see [Fault].
package spacing
