package cue

import (
	"reflect"
	"testing"
)

func TestColorARGB(t *testing.T) {
	tests := []struct {
		a, r, g, b uint8
		want       Color
	}{
		{0xff, 0xff, 0x00, 0x00, 0xffff0000},
		{0x80, 0x00, 0x00, 0xff, 0x800000ff},
		{0x00, 0x00, 0x00, 0x00, 0},
		{0xff, 0xff, 0xda, 0xb9, 0xffffdab9},
	}
	for _, tc := range tests {
		if got := ColorARGB(tc.a, tc.r, tc.g, tc.b); got != tc.want {
			t.Errorf("ColorARGB(%#x, %#x, %#x, %#x) = %#x, want %#x", tc.a, tc.r, tc.g, tc.b, uint32(got), uint32(tc.want))
		}
	}
}

func TestTextBuilder(t *testing.T) {
	var b TextBuilder

	b.WriteString("Hello ")
	start := b.Len()
	b.WriteString("world")
	b.AddSpan(Span{Start: start, End: b.Len(), Kind: SpanKindStyle, Style: StyleBold})
	b.WriteByte('!')

	got := b.Build()
	if got.Text != "Hello world!" {
		t.Errorf("Text = %q, want %q", got.Text, "Hello world!")
	}
	want := []Span{{Start: 6, End: 11, Kind: SpanKindStyle, Style: StyleBold}}
	if !reflect.DeepEqual(got.Spans, want) {
		t.Errorf("Spans = %+v, want %+v", got.Spans, want)
	}
}

func TestTextBuilder_DropsEmptySpans(t *testing.T) {
	var b TextBuilder

	b.WriteString("text")
	b.AddSpan(Span{Start: 4, End: 4, Kind: SpanKindStyle, Style: StyleBold})
	b.AddSpan(Span{Start: 3, End: 2, Kind: SpanKindUnderline})

	if got := b.Build(); got.Spans != nil {
		t.Errorf("Spans = %+v, want none", got.Spans)
	}
}

func TestStyledText_SpansAt(t *testing.T) {
	st := StyledText{
		Text: "overlapping",
		Spans: []Span{
			{Start: 0, End: 11, Kind: SpanKindStyle, Style: StyleBold},
			{Start: 0, End: 4, Kind: SpanKindStyle, Style: StyleItalic},
			{Start: 4, End: 11, Kind: SpanKindUnderline},
		},
	}

	tests := []struct {
		name string
		at   int
		want int
	}{
		{"inside both leading spans", 2, 2},
		{"boundary belongs to the following span", 4, 2},
		{"past the end", 11, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := st.SpansAt(tc.at); len(got) != tc.want {
				t.Errorf("SpansAt(%d) returned %d spans, want %d", tc.at, len(got), tc.want)
			}
		})
	}
}

func TestSpanKindRoundTrip(t *testing.T) {
	for _, k := range []SpanKind{
		SpanKindStyle, SpanKindUnderline, SpanKindStrikethrough,
		SpanKindForegroundColor, SpanKindBackgroundColor,
		SpanKindFontFamily, SpanKindAlignment,
		SpanKindAbsoluteSize, SpanKindRelativeSize,
	} {
		parsed, err := ParseSpanKind(k.String())
		if err != nil {
			t.Errorf("ParseSpanKind(%q) unexpected error: %v", k.String(), err)
			continue
		}
		if parsed != k {
			t.Errorf("ParseSpanKind(%q) = %v, want %v", k.String(), parsed, k)
		}
	}
}
