package cue

// Alignment of text within the cue box as a renderer understands it: normal
// means start-aligned for the paragraph direction, opposite means
// end-aligned.
// ENUM(unset, normal, center, opposite)
type Alignment int

// TextAlignment is the source-level cue text alignment. START/END and
// LEFT/RIGHT are kept distinct (not collapsed to three values) because they
// drive different anchor-derivation branches.
// ENUM(start, center, end, left, right)
type TextAlignment int

// AnchorType names which edge or center of the positioning box a coordinate
// is measured from.
// ENUM(unset, start, middle, end)
type AnchorType int

// LineType selects how the Line value is interpreted.
// ENUM(number, fraction)
type LineType int

// VerticalType is the cue writing direction.
// ENUM(none, rl, lr)
type VerticalType int

// SpanKind discriminates style span payloads.
// ENUM(style, underline, strikethrough, foregroundColor, backgroundColor, fontFamily, alignment, absoluteSize, relativeSize)
type SpanKind int
