package cue

import "strings"

// StyleMask is a bitmask of character style flags carried by a style span.
type StyleMask int

const (
	StyleBold StyleMask = 1 << iota
	StyleItalic
)

// Color is a color in ARGB order, 8 bits per channel.
type Color uint32

// ColorARGB assembles a Color from individual channels.
func ColorARGB(a, r, g, b uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Span is one style annotation over the half-open character range
// [Start, End) of a StyledText. Which payload field is meaningful depends on
// Kind; the rest stay zero. Multiple spans may overlap the same range.
type Span struct {
	Start int
	End   int
	Kind  SpanKind

	Style  StyleMask // SpanKindStyle
	Color  Color     // SpanKindForegroundColor, SpanKindBackgroundColor
	Family string    // SpanKindFontFamily
	Align  Alignment // SpanKindAlignment
	Size   float64   // SpanKindAbsoluteSize (dip), SpanKindRelativeSize (multiplier)
}

// StyledText is plain text plus an unordered set of style spans over it.
// Offsets are byte offsets into Text.
type StyledText struct {
	Text  string
	Spans []Span
}

// SpansAt returns all spans covering the given offset, in the order they were
// applied.
func (st StyledText) SpansAt(offset int) []Span {
	var out []Span
	for _, s := range st.Spans {
		if s.Start <= offset && offset < s.End {
			out = append(out, s)
		}
	}
	return out
}

// TextBuilder accumulates text and spans while a parser walks cue markup.
// The zero value is ready to use.
type TextBuilder struct {
	text  strings.Builder
	spans []Span
}

func (b *TextBuilder) WriteString(s string) { b.text.WriteString(s) }
func (b *TextBuilder) WriteByte(c byte) error { return b.text.WriteByte(c) }

// Len returns the current text length in bytes. Parsers record it as the
// start offset of an opening tag.
func (b *TextBuilder) Len() int { return b.text.Len() }

// AddSpan stamps one annotation. Empty ranges are dropped so a tag pair with
// no content between leaves no trace.
func (b *TextBuilder) AddSpan(s Span) {
	if s.Start >= s.End {
		return
	}
	b.spans = append(b.spans, s)
}

// Build freezes the accumulated state into a StyledText. The builder must not
// be reused afterwards.
func (b *TextBuilder) Build() StyledText {
	return StyledText{Text: b.text.String(), Spans: b.spans}
}
