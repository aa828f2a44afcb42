package css

import (
	"reflect"
	"strings"
	"testing"

	"go.uber.org/zap"

	"vttc/cue"
)

func TestParse_Selectors(t *testing.T) {
	p := NewParser(zap.NewNop())

	tests := []struct {
		name  string
		block string
		want  Style
	}{
		{
			name:  "universal",
			block: "::cue { color: red; }",
			want:  Style{HasFontColor: true, FontColor: 0xffff0000, TextAlign: cue.AlignmentUnset},
		},
		{
			name:  "empty parens are universal too",
			block: "::cue() { color: red; }",
			want:  Style{HasFontColor: true, FontColor: 0xffff0000, TextAlign: cue.AlignmentUnset},
		},
		{
			name:  "tag",
			block: "::cue(b) { font-weight: bold; }",
			want:  Style{TargetTag: "b", Bold: true, TextAlign: cue.AlignmentUnset},
		},
		{
			name:  "id",
			block: "::cue(#cue1) { font-style: italic; }",
			want:  Style{TargetID: "cue1", Italic: true, TextAlign: cue.AlignmentUnset},
		},
		{
			name:  "tag with id and classes",
			block: "::cue(v#cue1.loud.red) { text-decoration: underline; }",
			want: Style{
				TargetTag: "v", TargetID: "cue1", TargetClasses: []string{"loud", "red"},
				Underline: true, TextAlign: cue.AlignmentUnset,
			},
		},
		{
			name:  "voice",
			block: `::cue(v[voice="Bob"]) { text-decoration: line-through; }`,
			want:  Style{TargetTag: "v", TargetVoice: "Bob", Strikethrough: true, TextAlign: cue.AlignmentUnset},
		},
		{
			name:  "classes only",
			block: "::cue(.yellow) { background-color: blue; }",
			want: Style{
				TargetClasses: []string{"yellow"},
				HasBackgroundColor: true, BackgroundColor: 0xff0000ff, TextAlign: cue.AlignmentUnset,
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			styles, warnings := p.Parse([]byte(tc.block))
			if len(warnings) != 0 {
				t.Errorf("Parse() warnings = %v, want none", warnings)
			}
			if len(styles) != 1 {
				t.Fatalf("Parse() returned %d styles, want 1", len(styles))
			}
			if !reflect.DeepEqual(*styles[0], tc.want) {
				t.Errorf("Parse() = %+v, want %+v", *styles[0], tc.want)
			}
		})
	}
}

func TestParse_Properties(t *testing.T) {
	p := NewParser(zap.NewNop())

	block := `::cue(b) {
  color: #ff0000;
  background-color: rgba(0,0,0,0.8);
  font-family: "Courier New";
  font-size: 12px;
  text-align: end;
}`
	styles, warnings := p.Parse([]byte(block))
	if len(warnings) != 0 {
		t.Errorf("Parse() warnings = %v, want none", warnings)
	}
	if len(styles) != 1 {
		t.Fatalf("Parse() returned %d styles, want 1", len(styles))
	}
	s := styles[0]

	if !s.HasFontColor || s.FontColor != 0xffff0000 {
		t.Errorf("FontColor = %#x (set %v), want 0xffff0000", uint32(s.FontColor), s.HasFontColor)
	}
	if !s.HasBackgroundColor || s.BackgroundColor != 0xcc000000 {
		t.Errorf("BackgroundColor = %#x (set %v), want 0xcc000000", uint32(s.BackgroundColor), s.HasBackgroundColor)
	}
	if s.FontFamily != "courier new" {
		t.Errorf("FontFamily = %q, want %q", s.FontFamily, "courier new")
	}
	if s.FontSize != 12 || s.FontSizeUnit != FontSizeUnitPixel {
		t.Errorf("FontSize = %v %v, want 12 pixel", s.FontSize, s.FontSizeUnit)
	}
	if s.TextAlign != cue.AlignmentOpposite {
		t.Errorf("TextAlign = %v, want %v", s.TextAlign, cue.AlignmentOpposite)
	}
}

func TestParse_FontSizeUnits(t *testing.T) {
	p := NewParser(zap.NewNop())

	tests := []struct {
		value    string
		wantSize float64
		wantUnit FontSizeUnit
	}{
		{"10px", 10, FontSizeUnitPixel},
		{"1.5em", 1.5, FontSizeUnitEm},
		{"50%", 50, FontSizeUnitPercent},
		{".5em", 0.5, FontSizeUnitEm},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			styles, _ := p.Parse([]byte("::cue { font-size: " + tc.value + "; }"))
			if len(styles) != 1 {
				t.Fatalf("Parse() returned %d styles, want 1", len(styles))
			}
			if styles[0].FontSize != tc.wantSize || styles[0].FontSizeUnit != tc.wantUnit {
				t.Errorf("font-size %q = %v %v, want %v %v",
					tc.value, styles[0].FontSize, styles[0].FontSizeUnit, tc.wantSize, tc.wantUnit)
			}
		})
	}
}

func TestParse_GroupedSelectors(t *testing.T) {
	p := NewParser(zap.NewNop())

	styles, warnings := p.Parse([]byte("::cue(b), ::cue(i) { color: red; }"))
	if len(warnings) != 0 {
		t.Errorf("Parse() warnings = %v, want none", warnings)
	}
	if len(styles) != 2 {
		t.Fatalf("Parse() returned %d styles, want 2", len(styles))
	}
	if styles[0].TargetTag != "b" || styles[1].TargetTag != "i" {
		t.Errorf("tags = %q, %q, want b, i", styles[0].TargetTag, styles[1].TargetTag)
	}
	for i, s := range styles {
		if !s.HasFontColor || s.FontColor != 0xffff0000 {
			t.Errorf("style %d FontColor = %#x, want red", i, uint32(s.FontColor))
		}
	}
}

func TestParse_MultipleRulesets(t *testing.T) {
	p := NewParser(zap.NewNop())

	block := `::cue(b) { color: red; }
::cue(i) { color: blue; }`
	styles, _ := p.Parse([]byte(block))
	if len(styles) != 2 {
		t.Fatalf("Parse() returned %d styles, want 2", len(styles))
	}
	// declaration order is preserved for the cascade tie-break
	if styles[0].TargetTag != "b" || styles[1].TargetTag != "i" {
		t.Errorf("tags = %q, %q, want b then i", styles[0].TargetTag, styles[1].TargetTag)
	}
}

func TestParse_Warnings(t *testing.T) {
	p := NewParser(zap.NewNop())

	t.Run("unsupported property", func(t *testing.T) {
		styles, warnings := p.Parse([]byte("::cue { outline: 1px solid red; color: red; }"))
		if len(styles) != 1 {
			t.Fatalf("Parse() returned %d styles, want 1", len(styles))
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "outline") {
			t.Errorf("warnings = %v, want one about outline", warnings)
		}
		if !styles[0].HasFontColor {
			t.Error("supported property next to unsupported one was dropped")
		}
	})

	t.Run("non-cue selector", func(t *testing.T) {
		styles, warnings := p.Parse([]byte("video { color: red; }"))
		if len(styles) != 0 {
			t.Errorf("Parse() returned %d styles, want 0", len(styles))
		}
		if len(warnings) != 1 || !strings.Contains(warnings[0], "unsupported selector") {
			t.Errorf("warnings = %v, want one unsupported selector", warnings)
		}
	})

	t.Run("at-rule", func(t *testing.T) {
		_, warnings := p.Parse([]byte("@media screen { ::cue { color: red; } }\n::cue(b) { color: blue; }"))
		found := false
		for _, w := range warnings {
			if strings.Contains(w, "at-rule") {
				found = true
			}
		}
		if !found {
			t.Errorf("warnings = %v, want one about at-rule", warnings)
		}
	})

	t.Run("invalid color value is ignored", func(t *testing.T) {
		styles, _ := p.Parse([]byte("::cue { color: bogus; }"))
		if len(styles) != 1 {
			t.Fatalf("Parse() returned %d styles, want 1", len(styles))
		}
		if styles[0].HasFontColor {
			t.Error("invalid color value should not set FontColor")
		}
	})
}

func TestParse_Empty(t *testing.T) {
	p := NewParser(zap.NewNop())

	styles, warnings := p.Parse(nil)
	if len(styles) != 0 || len(warnings) != 0 {
		t.Errorf("Parse(nil) = %v, %v, want empty", styles, warnings)
	}
}
