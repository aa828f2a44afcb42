package webvtt

import (
	"math"
	"testing"

	"go.uber.org/zap"

	"vttc/cue"
)

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name     string
		line     float64
		lineType cue.LineType
		want     float64
	}{
		{"fraction in range", 0.5, cue.LineTypeFraction, 0.5},
		{"fraction at top", 0.0, cue.LineTypeFraction, 0.0},
		{"fraction above range clamps to bottom", 1.5, cue.LineTypeFraction, 1.0},
		{"fraction below range clamps to bottom", -0.1, cue.LineTypeFraction, 1.0},
		{"unset fraction defaults to bottom", cue.DimenUnset, cue.LineTypeFraction, 1.0},
		{"number passes through", -2.0, cue.LineTypeNumber, -2.0},
		{"unset number stays unset", cue.DimenUnset, cue.LineTypeNumber, cue.DimenUnset},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := computeLine(tc.line, tc.lineType); got != tc.want {
				t.Errorf("computeLine(%v, %v) = %v, want %v", tc.line, tc.lineType, got, tc.want)
			}
		})
	}
}

func TestDerivePosition(t *testing.T) {
	tests := []struct {
		alignment cue.TextAlignment
		want      float64
	}{
		{cue.TextAlignmentLeft, 0.0},
		{cue.TextAlignmentRight, 1.0},
		{cue.TextAlignmentStart, 0.5},
		{cue.TextAlignmentCenter, 0.5},
		{cue.TextAlignmentEnd, 0.5},
	}
	for _, tc := range tests {
		if got := derivePosition(tc.alignment); got != tc.want {
			t.Errorf("derivePosition(%v) = %v, want %v", tc.alignment, got, tc.want)
		}
	}
}

func TestDerivePositionAnchor(t *testing.T) {
	tests := []struct {
		alignment cue.TextAlignment
		want      cue.AnchorType
	}{
		{cue.TextAlignmentLeft, cue.AnchorTypeStart},
		{cue.TextAlignmentStart, cue.AnchorTypeStart},
		{cue.TextAlignmentRight, cue.AnchorTypeEnd},
		{cue.TextAlignmentEnd, cue.AnchorTypeEnd},
		{cue.TextAlignmentCenter, cue.AnchorTypeMiddle},
	}
	for _, tc := range tests {
		if got := derivePositionAnchor(tc.alignment); got != tc.want {
			t.Errorf("derivePositionAnchor(%v) = %v, want %v", tc.alignment, got, tc.want)
		}
	}
}

func TestConvertAlignment(t *testing.T) {
	tests := []struct {
		alignment cue.TextAlignment
		want      cue.Alignment
	}{
		{cue.TextAlignmentStart, cue.AlignmentNormal},
		{cue.TextAlignmentLeft, cue.AlignmentNormal},
		{cue.TextAlignmentCenter, cue.AlignmentCenter},
		{cue.TextAlignmentEnd, cue.AlignmentOpposite},
		{cue.TextAlignmentRight, cue.AlignmentOpposite},
	}
	for _, tc := range tests {
		if got := convertAlignment(tc.alignment); got != tc.want {
			t.Errorf("convertAlignment(%v) = %v, want %v", tc.alignment, got, tc.want)
		}
	}
}

func TestDeriveMaxSize(t *testing.T) {
	tests := []struct {
		anchor   cue.AnchorType
		position float64
		want     float64
	}{
		{cue.AnchorTypeStart, 0.0, 1.0},
		{cue.AnchorTypeStart, 0.3, 0.7},
		{cue.AnchorTypeEnd, 0.3, 0.3},
		{cue.AnchorTypeMiddle, 0.25, 0.5},
		{cue.AnchorTypeMiddle, 0.5, 1.0},
		{cue.AnchorTypeMiddle, 0.75, 0.5},
	}
	for _, tc := range tests {
		got := deriveMaxSize(tc.anchor, tc.position)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("deriveMaxSize(%v, %v) = %v, want %v", tc.anchor, tc.position, got, tc.want)
		}
	}
}

func TestDeriveMaxSize_PanicsOnUnsetAnchor(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for unresolved anchor")
		}
	}()
	deriveMaxSize(cue.AnchorTypeUnset, 0.5)
}

func TestBuild_Defaults(t *testing.T) {
	c := newCueBuilder().build(zap.NewNop())

	if c.TextAlignment != cue.AlignmentCenter {
		t.Errorf("TextAlignment = %v, want %v", c.TextAlignment, cue.AlignmentCenter)
	}
	if c.Line != cue.DimenUnset {
		t.Errorf("Line = %v, want unset", c.Line)
	}
	if c.LineType != cue.LineTypeNumber {
		t.Errorf("LineType = %v, want %v", c.LineType, cue.LineTypeNumber)
	}
	if c.LineAnchor != cue.AnchorTypeStart {
		t.Errorf("LineAnchor = %v, want %v", c.LineAnchor, cue.AnchorTypeStart)
	}
	if c.Position != 0.5 {
		t.Errorf("Position = %v, want 0.5", c.Position)
	}
	if c.PositionAnchor != cue.AnchorTypeMiddle {
		t.Errorf("PositionAnchor = %v, want %v", c.PositionAnchor, cue.AnchorTypeMiddle)
	}
	if c.Size != 1.0 {
		t.Errorf("Size = %v, want 1.0", c.Size)
	}
	if c.Vertical != cue.VerticalTypeNone {
		t.Errorf("Vertical = %v, want %v", c.Vertical, cue.VerticalTypeNone)
	}
}

func TestBuild_SizeCappedByAnchor(t *testing.T) {
	b := newCueBuilder()
	b.position = 0.1
	b.positionAnchor = cue.AnchorTypeEnd

	c := b.build(zap.NewNop())
	if math.Abs(c.Size-0.1) > 1e-9 {
		t.Errorf("Size = %v, want 0.1 (capped by end anchor at position 0.1)", c.Size)
	}
}
