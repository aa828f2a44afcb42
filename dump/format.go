package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"vttc/cue"
)

// formatTimestamp renders microseconds back into the hh:mm:ss.mmm form.
func formatTimestamp(us uint64) string {
	ms := us / 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d", ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}

// formatDimen renders a possibly unset dimension.
func formatDimen(v float64) string {
	if v == cue.DimenUnset {
		return "auto"
	}
	return fmt.Sprintf("%.2f", v)
}

// spanDetail renders the payload carried by a span, according to its kind.
func spanDetail(s cue.Span) string {
	switch s.Kind {
	case cue.SpanKindStyle:
		var parts []string
		if s.Style&cue.StyleBold != 0 {
			parts = append(parts, "bold")
		}
		if s.Style&cue.StyleItalic != 0 {
			parts = append(parts, "italic")
		}
		if len(parts) == 0 {
			return "none"
		}
		out := parts[0]
		for _, p := range parts[1:] {
			out += "+" + p
		}
		return out
	case cue.SpanKindForegroundColor, cue.SpanKindBackgroundColor:
		return fmt.Sprintf("#%08x", uint32(s.Color))
	case cue.SpanKindFontFamily:
		return s.Family
	case cue.SpanKindAlignment:
		return s.Align.String()
	case cue.SpanKindAbsoluteSize, cue.SpanKindRelativeSize:
		return fmt.Sprintf("%g", s.Size)
	default:
		return ""
	}
}

// writeText prints cues in a human readable form, one block per cue.
func writeText(w io.Writer, cues []*cue.Cue, includeStyling bool) error {
	for i, c := range cues {
		if _, err := fmt.Fprintf(w, "%d\n%s --> %s\n", i+1, formatTimestamp(c.StartTimeUs), formatTimestamp(c.EndTimeUs)); err != nil {
			return err
		}
		if includeStyling {
			if _, err := fmt.Fprintf(w, "align:%s line:%s(%s,%s) position:%s(%s) size:%.2f vertical:%s\n",
				c.TextAlignment, formatDimen(c.Line), c.LineType, c.LineAnchor,
				formatDimen(c.Position), c.PositionAnchor, c.Size, c.Vertical); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, c.Text.Text); err != nil {
			return err
		}
		if includeStyling {
			for _, s := range c.Text.Spans {
				if _, err := fmt.Fprintf(w, "  [%d,%d) %s %s\n", s.Start, s.End, s.Kind, spanDetail(s)); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

type spanJSON struct {
	Start  int     `json:"start"`
	End    int     `json:"end"`
	Kind   string  `json:"kind"`
	Detail string  `json:"detail,omitempty"`
	Size   float64 `json:"size,omitempty"`
}

type cueJSON struct {
	Start          string     `json:"start"`
	End            string     `json:"end"`
	Text           string     `json:"text"`
	Alignment      string     `json:"alignment"`
	Line           *float64   `json:"line,omitempty"`
	LineType       string     `json:"line_type"`
	LineAnchor     string     `json:"line_anchor"`
	Position       float64    `json:"position"`
	PositionAnchor string     `json:"position_anchor"`
	Size           float64    `json:"size"`
	Vertical       string     `json:"vertical,omitempty"`
	Spans          []spanJSON `json:"spans,omitempty"`
}

// writeJSON prints cues as a JSON array.
func writeJSON(w io.Writer, cues []*cue.Cue) error {
	out := make([]cueJSON, 0, len(cues))
	for _, c := range cues {
		cj := cueJSON{
			Start:          formatTimestamp(c.StartTimeUs),
			End:            formatTimestamp(c.EndTimeUs),
			Text:           c.Text.Text,
			Alignment:      c.TextAlignment.String(),
			LineType:       c.LineType.String(),
			LineAnchor:     c.LineAnchor.String(),
			Position:       c.Position,
			PositionAnchor: c.PositionAnchor.String(),
			Size:           c.Size,
		}
		if c.Line != cue.DimenUnset {
			line := c.Line
			cj.Line = &line
		}
		if c.Vertical != cue.VerticalTypeNone {
			cj.Vertical = c.Vertical.String()
		}
		for _, s := range c.Text.Spans {
			sj := spanJSON{Start: s.Start, End: s.End, Kind: s.Kind.String(), Detail: spanDetail(s)}
			if s.Kind == cue.SpanKindAbsoluteSize || s.Kind == cue.SpanKindRelativeSize {
				sj.Size = s.Size
			}
			cj.Spans = append(cj.Spans, sj)
		}
		out = append(out, cj)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
