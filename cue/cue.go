// Package cue defines the rendering-neutral model for one timed, positioned,
// styled subtitle unit. It knows nothing about any particular subtitle text
// format; format parsers produce values of these types and renderers consume
// them.
package cue

import "math"

// DimenUnset marks a dimension (line, position) that was never set. Line may
// legitimately stay unset in a finished Cue to signal that placement is up to
// the cue-stacking algorithm of the renderer.
const DimenUnset = -math.MaxFloat64

// Cue is an immutable, fully resolved subtitle cue. All geometry fields are
// final: position, anchors and size have been derived from the source
// settings, only Line may remain DimenUnset (see above).
type Cue struct {
	// StartTimeUs and EndTimeUs are presentation times in microseconds.
	StartTimeUs uint64
	EndTimeUs   uint64

	// Text is the cue payload with style annotations already applied.
	Text StyledText

	// TextAlignment is the resolved alignment of text within the cue box,
	// AlignmentUnset when the source alignment could not be mapped.
	TextAlignment Alignment

	// Line positions the cue box. With LineTypeFraction it is a fraction of
	// the viewport in [0, 1], with LineTypeNumber a (possibly negative) row
	// index. DimenUnset defers placement to the renderer.
	Line       float64
	LineType   LineType
	LineAnchor AnchorType

	// Position is the indent of the cue box within the writing direction as
	// a fraction of the viewport, measured from the edge named by
	// PositionAnchor. Always resolved, never DimenUnset.
	Position       float64
	PositionAnchor AnchorType

	// Size is the extent of the cue box as a fraction of the viewport,
	// already clamped so the box cannot cross the viewport edge.
	Size float64

	Vertical VerticalType
}
