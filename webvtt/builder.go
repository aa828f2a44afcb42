package webvtt

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"vttc/cue"
)

const defaultPosition = 0.5

// cueBuilder accumulates header, settings and text while one cue block is
// parsed. Partially built state never leaves this package: build derives all
// remaining geometry and freezes the result into a cue.Cue.
type cueBuilder struct {
	startTimeUs    uint64
	endTimeUs      uint64
	text           cue.StyledText
	textAlignment  cue.TextAlignment
	line           float64
	lineType       cue.LineType
	lineAnchor     cue.AnchorType
	position       float64
	positionAnchor cue.AnchorType
	size           float64
	vertical       cue.VerticalType
}

// newCueBuilder seeds the WebVTT cue setting defaults: centered text, line
// counted in rows from the start edge, automatic position, full-width box.
func newCueBuilder() *cueBuilder {
	return &cueBuilder{
		textAlignment:  cue.TextAlignmentCenter,
		line:           cue.DimenUnset,
		lineType:       cue.LineTypeNumber,
		lineAnchor:     cue.AnchorTypeStart,
		position:       cue.DimenUnset,
		positionAnchor: cue.AnchorTypeUnset,
		size:           1.0,
		vertical:       cue.VerticalTypeNone,
	}
}

// build resolves every derivable field and returns the immutable cue.
func (b *cueBuilder) build(log *zap.Logger) *cue.Cue {
	position := b.position
	if position == cue.DimenUnset {
		position = derivePosition(b.textAlignment)
	}
	positionAnchor := b.positionAnchor
	if positionAnchor == cue.AnchorTypeUnset {
		positionAnchor = derivePositionAnchor(b.textAlignment)
	}

	alignment := convertAlignment(b.textAlignment)
	if alignment == cue.AlignmentUnset {
		log.Warn("Unknown text alignment", zap.String("alignment", b.textAlignment.String()))
	}

	return &cue.Cue{
		StartTimeUs:    b.startTimeUs,
		EndTimeUs:      b.endTimeUs,
		Text:           b.text,
		TextAlignment:  alignment,
		Line:           computeLine(b.line, b.lineType),
		LineType:       b.lineType,
		LineAnchor:     b.lineAnchor,
		Position:       position,
		PositionAnchor: positionAnchor,
		Size:           math.Min(b.size, deriveMaxSize(positionAnchor, position)),
		Vertical:       b.vertical,
	}
}

// computeLine resolves the line value. Out-of-range fractions clamp to the
// bottom of the viewport; an unset row-counted line stays unset so the
// renderer's cue-stacking can place it.
func computeLine(line float64, lineType cue.LineType) float64 {
	if line != cue.DimenUnset && lineType == cue.LineTypeFraction && (line < 0.0 || line > 1.0) {
		return 1.0
	}
	if line != cue.DimenUnset {
		return line
	}
	if lineType == cue.LineTypeFraction {
		return 1.0
	}
	return cue.DimenUnset
}

// derivePosition supplies the default position when the cue declared none.
func derivePosition(textAlignment cue.TextAlignment) float64 {
	switch textAlignment {
	case cue.TextAlignmentLeft:
		return 0.0
	case cue.TextAlignmentRight:
		return 1.0
	default:
		return defaultPosition
	}
}

// derivePositionAnchor supplies the default position anchor when the cue
// declared none. START/END follow the paragraph direction, LEFT/RIGHT are
// absolute, which is why the two pairs cannot be collapsed.
func derivePositionAnchor(textAlignment cue.TextAlignment) cue.AnchorType {
	switch textAlignment {
	case cue.TextAlignmentLeft, cue.TextAlignmentStart:
		return cue.AnchorTypeStart
	case cue.TextAlignmentRight, cue.TextAlignmentEnd:
		return cue.AnchorTypeEnd
	default:
		return cue.AnchorTypeMiddle
	}
}

// convertAlignment maps the source alignment vocabulary to the rendered one.
func convertAlignment(textAlignment cue.TextAlignment) cue.Alignment {
	switch textAlignment {
	case cue.TextAlignmentStart, cue.TextAlignmentLeft:
		return cue.AlignmentNormal
	case cue.TextAlignmentCenter:
		return cue.AlignmentCenter
	case cue.TextAlignmentEnd, cue.TextAlignmentRight:
		return cue.AlignmentOpposite
	default:
		return cue.AlignmentUnset
	}
}

// deriveMaxSize computes the largest size the cue box may have without
// crossing the viewport edge it is anchored against. The anchor is always
// resolved before this runs, an unset anchor here is a bug.
func deriveMaxSize(positionAnchor cue.AnchorType, position float64) float64 {
	switch positionAnchor {
	case cue.AnchorTypeStart:
		return 1.0 - position
	case cue.AnchorTypeEnd:
		return position
	case cue.AnchorTypeMiddle:
		if position <= 0.5 {
			return position * 2
		}
		return (1.0 - position) * 2
	default:
		panic(fmt.Sprintf("unresolved position anchor: %v", positionAnchor))
	}
}
