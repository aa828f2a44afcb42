// Package css parses WebVTT STYLE blocks into declared style rules and
// provides the selector-matching capability the cue decoder cascades with.
package css

import "vttc/cue"

// FontSizeUnit is the unit of a declared font-size.
// ENUM(unspecified, pixel, em, percent)
type FontSizeUnit int

// Style is one declared style rule: a selector (any combination of cue id,
// tag name, class list and voice, all optional) plus the properties it
// declares. Rules are produced by the parser in declaration order and treated
// as read-only afterwards.
type Style struct {
	// Selector components. Empty components are wildcards; a rule with all
	// components empty is the universal selector and applies to whole cues
	// only.
	TargetID      string
	TargetTag     string
	TargetClasses []string
	TargetVoice   string

	// Declared properties.
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool

	HasFontColor bool
	FontColor    cue.Color

	HasBackgroundColor bool
	BackgroundColor    cue.Color

	FontFamily string

	// TextAlign is AlignmentUnset when the rule does not declare text-align.
	TextAlign cue.Alignment

	FontSize     float64
	FontSizeUnit FontSizeUnit
}

// StyleMask folds the declared bold/italic flags into a character style mask.
func (s *Style) StyleMask() cue.StyleMask {
	var m cue.StyleMask
	if s.Bold {
		m |= cue.StyleBold
	}
	if s.Italic {
		m |= cue.StyleItalic
	}
	return m
}

// Specificity scoring weights. An id match dominates everything else, tag and
// voice/class matches contribute small fixed weights so that rules naming
// more selector components rank higher.
const (
	scoreID    = 0x40000000
	scoreTag   = 2
	scoreClass = 4
	scoreVoice = 4
)

// SpecificityScore ranks how precisely this rule's selector matches the given
// tag context. Zero or negative means no match. Higher scores are applied
// later in the cascade so they override less specific rules.
func (s *Style) SpecificityScore(id, tag string, classes []string, voice string) int {
	if s.TargetID == "" && s.TargetTag == "" && len(s.TargetClasses) == 0 && s.TargetVoice == "" {
		// Universal selector. It matches, with the minimum score, whole cues
		// only (the virtual tag with the empty name).
		if tag == "" {
			return 1
		}
		return 0
	}

	score := 0
	score = updateScoreForMatch(score, s.TargetID, id, scoreID)
	score = updateScoreForMatch(score, s.TargetTag, tag, scoreTag)
	score = updateScoreForMatch(score, s.TargetVoice, voice, scoreVoice)
	if score == -1 || !containsAll(classes, s.TargetClasses) {
		return 0
	}
	return score + len(s.TargetClasses)*scoreClass
}

// updateScoreForMatch folds one selector component into the running score:
// an empty component is a wildcard, a mismatch poisons the score to -1.
func updateScoreForMatch(score int, expected, actual string, points int) int {
	if expected == "" || score == -1 {
		return score
	}
	if expected == actual {
		return score + points
	}
	return -1
}

func containsAll(have, want []string) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
