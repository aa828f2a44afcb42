package css

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"

	"vttc/cue"
)

// Parser parses WebVTT STYLE block text into declared style rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new STYLE block parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

var (
	voicePattern    = regexp.MustCompile(`\[voice="([^"]*)"\]`)
	fontSizePattern = regexp.MustCompile(`^(([0-9]*\.)?[0-9]+)(px|em|%)$`)
)

// Parse parses STYLE block text into style rules, in declaration order.
// Unsupported selectors and properties are reported as warnings and skipped;
// parsing never fails. The optional source parameter identifies what is being
// parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) ([]*Style, []string) {
	var (
		styles   []*Style
		warnings []string
	)

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing STYLE block", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	var pendingSelectors []string

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			// End of input or error
			if parser.Err() != nil && parser.Err().Error() != "EOF" {
				p.log.Debug("STYLE block parse error", zap.Error(parser.Err()))
			}
			return styles, warnings

		case css.BeginAtRuleGrammar:
			// @-rules have no meaning inside a STYLE block
			p.skipAtRuleBlock(parser)
			warnings = append(warnings, "unsupported at-rule: "+string(data))

		case css.AtRuleGrammar:
			warnings = append(warnings, "unsupported at-rule: "+string(data))

		case css.QualifiedRuleGrammar:
			// One selector of a comma-separated group, ruleset body follows.
			pendingSelectors = append(pendingSelectors, p.parseSelectors(data, parser.Values())...)

		case css.BeginRulesetGrammar:
			selectors := append(pendingSelectors, p.parseSelectors(data, parser.Values())...)
			pendingSelectors = nil
			props, propWarnings := p.parseDeclarations(parser)
			warnings = append(warnings, propWarnings...)

			for _, selStr := range selectors {
				style := &Style{}
				if !p.applySelector(style, selStr) {
					warnings = append(warnings, "unsupported selector: "+selStr)
					continue
				}
				applyProperties(style, props)
				styles = append(styles, style)
			}
		}
	}
}

// parseSelectors rebuilds the raw selector text from tokens and splits
// grouped selectors on commas.
func (p *Parser) parseSelectors(data []byte, values []css.Token) []string {
	var sb strings.Builder
	sb.Write(data)
	for _, v := range values {
		sb.Write(v.Data)
	}

	var selectors []string
	for s := range strings.SplitSeq(sb.String(), ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			selectors = append(selectors, s)
		}
	}
	return selectors
}

// applySelector fills the style's target components from a ::cue selector.
// Returns false when the selector is not a cue selector.
func (p *Parser) applySelector(style *Style, selStr string) bool {
	target, ok := strings.CutPrefix(selStr, "::cue")
	if !ok {
		p.log.Debug("Skipping non-cue selector", zap.String("selector", selStr))
		return false
	}
	target = strings.TrimSpace(target)
	if target == "" {
		// Bare ::cue is the universal selector, all components stay empty.
		return true
	}
	if !strings.HasPrefix(target, "(") || !strings.HasSuffix(target, ")") {
		p.log.Debug("Skipping malformed cue selector", zap.String("selector", selStr))
		return false
	}
	target = strings.TrimSpace(target[1 : len(target)-1])
	if target == "" {
		return true
	}

	// Optional [voice="name"] suffix.
	if voiceStart := strings.IndexByte(target, '['); voiceStart != -1 {
		if m := voicePattern.FindStringSubmatch(target[voiceStart:]); m != nil {
			style.TargetVoice = m[1]
		}
		target = target[:voiceStart]
	}

	// The remainder is tag#id.class.class with every part optional.
	division := strings.Split(target, ".")
	tagAndID := division[0]
	if idPrefix := strings.IndexByte(tagAndID, '#'); idPrefix != -1 {
		style.TargetID = tagAndID[idPrefix+1:]
		style.TargetTag = tagAndID[:idPrefix]
	} else {
		style.TargetTag = tagAndID
	}
	if len(division) > 1 {
		style.TargetClasses = division[1:]
	}
	return true
}

// parseDeclarations collects property declarations until the end of the
// ruleset, rebuilding each value's raw text from its tokens.
func (p *Parser) parseDeclarations(parser *css.Parser) (map[string]string, []string) {
	props := make(map[string]string)
	var warnings []string

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar, css.EndRulesetGrammar:
			return props, warnings

		case css.DeclarationGrammar:
			name := strings.ToLower(string(data))
			value := rebuildValue(parser.Values())
			if value == "" {
				continue
			}
			if !isSupportedProperty(name) {
				warnings = append(warnings, "unsupported property: "+name)
				continue
			}
			props[name] = value

		case css.CustomPropertyGrammar:
			continue
		}
	}
}

func rebuildValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}

func isSupportedProperty(name string) bool {
	switch name {
	case "color", "background-color", "text-decoration", "font-family",
		"font-weight", "font-style", "font-size", "text-align":
		return true
	default:
		return false
	}
}

// applyProperties maps declared property values onto the style. Invalid
// values are logged at the rule level by the caller and otherwise ignored,
// per the recoverable-error policy.
func applyProperties(style *Style, props map[string]string) {
	for name, value := range props {
		switch name {
		case "color":
			if c, err := ParseColor(value); err == nil {
				style.FontColor = c
				style.HasFontColor = true
			}
		case "background-color":
			if c, err := ParseColor(value); err == nil {
				style.BackgroundColor = c
				style.HasBackgroundColor = true
			}
		case "text-decoration":
			switch strings.ToLower(value) {
			case "underline":
				style.Underline = true
			case "line-through":
				style.Strikethrough = true
			}
		case "font-family":
			style.FontFamily = strings.ToLower(unquote(value))
		case "font-weight":
			if strings.EqualFold(value, "bold") {
				style.Bold = true
			}
		case "font-style":
			if strings.EqualFold(value, "italic") {
				style.Italic = true
			}
		case "font-size":
			applyFontSize(style, value)
		case "text-align":
			style.TextAlign = parseTextAlign(value)
		}
	}
}

func applyFontSize(style *Style, value string) {
	m := fontSizePattern.FindStringSubmatch(strings.ToLower(value))
	if m == nil {
		return
	}
	size, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return
	}
	style.FontSize = size
	switch m[3] {
	case "px":
		style.FontSizeUnit = FontSizeUnitPixel
	case "em":
		style.FontSizeUnit = FontSizeUnitEm
	case "%":
		style.FontSizeUnit = FontSizeUnitPercent
	}
}

func parseTextAlign(value string) cue.Alignment {
	switch strings.ToLower(value) {
	case "start", "left":
		return cue.AlignmentNormal
	case "center", "middle":
		return cue.AlignmentCenter
	case "end", "right":
		return cue.AlignmentOpposite
	default:
		return cue.AlignmentUnset
	}
}

// skipAtRuleBlock skips tokens until the matching end of an @-rule block.
func (p *Parser) skipAtRuleBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
