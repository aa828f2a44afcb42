package webvtt

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"vttc/css"
	"vttc/cue"
)

// LineReader is the "next line or end of input" collaborator the cue parser
// consumes. The cue parser only ever advances it: one cue block consumes
// exactly the lines it read, so the caller can keep calling for the next
// block.
type LineReader interface {
	ReadLine() (string, bool)
}

var (
	// cueHeaderPattern recognizes the cue timing line: two non-whitespace
	// timestamp tokens around the --> arrow, optional settings tail.
	cueHeaderPattern = regexp.MustCompile(`^(\S+)\s+-->\s+(\S+)(.*)?$`)

	// cueSettingPattern picks key:value settings out of the timing line tail.
	cueSettingPattern = regexp.MustCompile(`(\S+?):(\S+)`)
)

// Supported cue text tag names. Anything else is stripped from the text but
// its content is kept.
const (
	tagBold      = "b"
	tagItalic    = "i"
	tagUnderline = "u"
	tagClass     = "c"
	tagVoice     = "v"
	tagLang      = "lang"
)

// entities are the character references recognized in cue text.
var entities = map[string]string{
	"lt":   "<",
	"gt":   ">",
	"amp":  "&",
	"nbsp": "\u00a0",
}

// CueParser decodes one cue block at a time: the optional id line, the
// timing/settings line and the blank-line-terminated markup payload.
type CueParser struct {
	log *zap.Logger
}

// NewCueParser creates a cue block parser.
func NewCueParser(log *zap.Logger) *CueParser {
	if log == nil {
		log = zap.NewNop()
	}
	return &CueParser{log: log.Named("cue-parser")}
}

// ParseCue parses the next cue block from lr, applying the declared styles to
// the cue text. Returns nil when no valid cue was found: either the input is
// exhausted, the next block carries no timing line within its first two
// lines, or the timing line is malformed (the block is skipped with a
// diagnostic, never an error for the stream).
func (p *CueParser) ParseCue(lr LineReader, styles []*css.Style) *cue.Cue {
	firstLine, ok := lr.ReadLine()
	if !ok {
		return nil
	}
	if m := cueHeaderPattern.FindStringSubmatch(firstLine); m != nil {
		// Timing in the first line, no id present.
		return p.parseCueBlock("", m, lr, styles)
	}
	// The first line is not the timing line, but could be the cue id.
	secondLine, ok := lr.ReadLine()
	if !ok {
		return nil
	}
	if m := cueHeaderPattern.FindStringSubmatch(secondLine); m != nil {
		return p.parseCueBlock(strings.TrimSpace(firstLine), m, lr, styles)
	}
	return nil
}

func (p *CueParser) parseCueBlock(id string, header []string, lr LineReader, styles []*css.Style) *cue.Cue {
	builder := newCueBuilder()

	var err error
	if builder.startTimeUs, err = ParseTimestampUs(header[1]); err != nil {
		p.log.Warn("Skipping cue with bad header", zap.String("header", header[0]), zap.Error(err))
		return nil
	}
	if builder.endTimeUs, err = ParseTimestampUs(header[2]); err != nil {
		p.log.Warn("Skipping cue with bad header", zap.String("header", header[0]), zap.Error(err))
		return nil
	}

	p.parseCueSettings(header[3], builder)

	var text strings.Builder
	for {
		line, ok := lr.ReadLine()
		if !ok || line == "" {
			break
		}
		if text.Len() > 0 {
			text.WriteString("\n")
		}
		text.WriteString(strings.TrimSpace(line))
	}
	builder.text = p.ParseCueText(id, text.String(), styles)

	return builder.build(p.log)
}

// ParseCueSettings parses a cue settings list in isolation and returns the
// resulting cue with default text. Exposed for conformance testing of the
// settings mini-language.
func (p *CueParser) ParseCueSettings(settings string) *cue.Cue {
	builder := newCueBuilder()
	p.parseCueSettings(settings, builder)
	return builder.build(p.log)
}

func (p *CueParser) parseCueSettings(settingsList string, builder *cueBuilder) {
	for _, m := range cueSettingPattern.FindAllStringSubmatch(settingsList, -1) {
		name, value := m[1], m[2]

		var err error
		switch name {
		case "line":
			err = p.parseLineAttribute(value, builder)
		case "align":
			builder.textAlignment = p.parseTextAlignment(value)
		case "position":
			err = p.parsePositionAttribute(value, builder)
		case "size":
			var size float64
			if size, err = ParsePercentage(value); err == nil {
				builder.size = size
			}
		case "vertical":
			builder.vertical = p.parseVerticalAttribute(value)
		default:
			p.log.Warn("Unknown cue setting", zap.String("name", name), zap.String("value", value))
		}
		// A bad value spoils only its own setting, parsing continues.
		if err != nil {
			p.log.Warn("Skipping bad cue setting", zap.String("setting", m[0]), zap.Error(err))
		}
	}
}

func (p *CueParser) parseLineAttribute(s string, builder *cueBuilder) error {
	if value, anchor, found := strings.Cut(s, ","); found {
		builder.lineAnchor = p.parseAnchor(anchor)
		s = value
	}
	if strings.HasSuffix(s, "%") {
		line, err := ParsePercentage(s)
		if err != nil {
			return err
		}
		builder.line = line
		builder.lineType = cue.LineTypeFraction
		return nil
	}
	lineNumber, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if lineNumber < 0 {
		// WebVTT counts line -1 as the last visible row while the cue model
		// counts it as the first row that is not visible, hence the extra
		// decrement.
		lineNumber--
	}
	builder.line = float64(lineNumber)
	builder.lineType = cue.LineTypeNumber
	return nil
}

func (p *CueParser) parsePositionAttribute(s string, builder *cueBuilder) error {
	if value, anchor, found := strings.Cut(s, ","); found {
		builder.positionAnchor = p.parseAnchor(anchor)
		s = value
	}
	position, err := ParsePercentage(s)
	if err != nil {
		return err
	}
	builder.position = position
	return nil
}

func (p *CueParser) parseAnchor(s string) cue.AnchorType {
	switch s {
	case "start":
		return cue.AnchorTypeStart
	case "center", "middle":
		return cue.AnchorTypeMiddle
	case "end":
		return cue.AnchorTypeEnd
	default:
		p.log.Warn("Invalid anchor value", zap.String("value", s))
		return cue.AnchorTypeUnset
	}
}

func (p *CueParser) parseTextAlignment(s string) cue.TextAlignment {
	switch s {
	case "start":
		return cue.TextAlignmentStart
	case "left":
		return cue.TextAlignmentLeft
	case "center", "middle":
		return cue.TextAlignmentCenter
	case "end":
		return cue.TextAlignmentEnd
	case "right":
		return cue.TextAlignmentRight
	default:
		p.log.Warn("Invalid alignment value", zap.String("value", s))
		return cue.TextAlignmentCenter
	}
}

func (p *CueParser) parseVerticalAttribute(s string) cue.VerticalType {
	switch s {
	case "rl":
		return cue.VerticalTypeRl
	case "lr":
		return cue.VerticalTypeLr
	default:
		p.log.Warn("Invalid 'vertical' value", zap.String("value", s))
		return cue.VerticalTypeNone
	}
}

// startTag is the parse-time context of one open markup tag.
type startTag struct {
	name    string
	start   int // offset into the output text where the tag opened
	voice   string
	classes []string
}

// buildStartTag splits a tag expression into name, classes and voice: an
// optional voice follows the first space, the prefix splits on dots into the
// tag name and class names.
func buildStartTag(tagExpression string, start int) startTag {
	tagExpression = strings.TrimSpace(tagExpression)

	var voice string
	if name, v, found := strings.Cut(tagExpression, " "); found {
		voice = strings.TrimSpace(v)
		tagExpression = name
	}
	nameAndClasses := strings.Split(tagExpression, ".")
	return startTag{
		name:    nameAndClasses[0],
		start:   start,
		voice:   voice,
		classes: nameAndClasses[1:],
	}
}

// wholeCueTag is the virtual tag spanning the entire cue text; it is applied
// last so untargeted style rules affect the whole cue.
func wholeCueTag() startTag {
	return startTag{}
}

// ParseCueText parses the markup payload of a cue into styled text, matching
// the declared styles against every tag context (and the whole cue) by
// specificity. Malformed markup never fails: unterminated tags are dropped,
// mismatched closers close everything up to the first name match, unclosed
// tags close at end of text.
func (p *CueParser) ParseCueText(id, markup string, styles []*css.Style) cue.StyledText {
	var text cue.TextBuilder
	var startTagStack []startTag

	pos := 0
	for pos < len(markup) {
		switch curr := markup[pos]; curr {
		case '<':
			if pos+1 >= len(markup) {
				pos++
				break
			}
			ltPos := pos
			isClosingTag := markup[ltPos+1] == '/'
			pos = findEndOfTag(markup, ltPos+1)
			isVoidTag := markup[pos-2] == '/'

			exprStart := ltPos + 1
			if isClosingTag {
				exprStart = ltPos + 2
			}
			exprEnd := pos - 1
			if isVoidTag {
				exprEnd = pos - 2
			}
			if exprEnd < exprStart {
				// degenerate tag like "</" at end of input
				continue
			}
			tagExpression := strings.TrimSpace(markup[exprStart:exprEnd])
			if tagExpression == "" {
				continue
			}
			tagName := extractTagName(tagExpression)
			if !isSupportedTag(tagName) {
				continue
			}
			if isClosingTag {
				for len(startTagStack) > 0 {
					tag := startTagStack[len(startTagStack)-1]
					startTagStack = startTagStack[:len(startTagStack)-1]
					p.applySpansForTag(id, tag, &text, styles)
					if tag.name == tagName {
						break
					}
				}
			} else if !isVoidTag {
				startTagStack = append(startTagStack, buildStartTag(tagExpression, text.Len()))
			}

		case '&':
			semiIndex := strings.IndexByte(markup[pos+1:], ';')
			spaceIndex := strings.IndexByte(markup[pos+1:], ' ')
			entityEnd := -1
			switch {
			case semiIndex == -1 && spaceIndex == -1:
			case semiIndex == -1:
				entityEnd = pos + 1 + spaceIndex
			case spaceIndex == -1:
				entityEnd = pos + 1 + semiIndex
			default:
				entityEnd = pos + 1 + min(semiIndex, spaceIndex)
			}
			if entityEnd != -1 {
				p.applyEntity(markup[pos+1:entityEnd], &text)
				if spaceIndex != -1 && entityEnd == pos+1+spaceIndex {
					// the terminator was a word boundary, keep it
					text.WriteByte(' ')
				}
				pos = entityEnd + 1
			} else {
				text.WriteByte(curr)
				pos++
			}

		default:
			text.WriteByte(curr)
			pos++
		}
	}

	// Tags still open at end of input close implicitly here.
	for len(startTagStack) > 0 {
		tag := startTagStack[len(startTagStack)-1]
		startTagStack = startTagStack[:len(startTagStack)-1]
		p.applySpansForTag(id, tag, &text, styles)
	}
	p.applySpansForTag(id, wholeCueTag(), &text, styles)

	return text.Build()
}

// findEndOfTag returns the position just past the closing '>', or the end of
// the markup when the tag is unterminated.
func findEndOfTag(markup string, startPos int) int {
	index := strings.IndexByte(markup[startPos:], '>')
	if index == -1 {
		return len(markup)
	}
	return startPos + index + 1
}

// extractTagName returns the prefix before the first space or dot.
func extractTagName(tagExpression string) string {
	if i := strings.IndexAny(tagExpression, " ."); i != -1 {
		return tagExpression[:i]
	}
	return tagExpression
}

func isSupportedTag(tagName string) bool {
	switch tagName {
	case tagBold, tagClass, tagItalic, tagLang, tagUnderline, tagVoice:
		return true
	default:
		return false
	}
}

func (p *CueParser) applyEntity(entity string, text *cue.TextBuilder) {
	if replacement, ok := entities[entity]; ok {
		text.WriteString(replacement)
		return
	}
	p.log.Warn("Ignoring unsupported entity", zap.String("entity", "&"+entity+";"))
}

// applySpansForTag stamps the tag's built-in styling (b/i/u) over
// [tag.start, current length) and then cascades every declared rule that
// matches the tag context onto the same range.
func (p *CueParser) applySpansForTag(cueID string, tag startTag, text *cue.TextBuilder, styles []*css.Style) {
	start, end := tag.start, text.Len()

	switch tag.name {
	case tagBold:
		text.AddSpan(cue.Span{Start: start, End: end, Kind: cue.SpanKindStyle, Style: cue.StyleBold})
	case tagItalic:
		text.AddSpan(cue.Span{Start: start, End: end, Kind: cue.SpanKindStyle, Style: cue.StyleItalic})
	case tagUnderline:
		text.AddSpan(cue.Span{Start: start, End: end, Kind: cue.SpanKindUnderline})
	case tagClass, tagLang, tagVoice, "":
		// no built-in styling, declared rules only
	default:
		return
	}

	for _, match := range applicableStyles(styles, cueID, tag) {
		applyStyle(text, match.style, start, end)
	}
}

// styleMatch pairs a matched rule with its specificity score.
type styleMatch struct {
	score int
	style *css.Style
}

// applicableStyles returns the declared rules matching the tag context,
// ordered by ascending specificity. The sort is stable so rules of equal
// specificity apply in declaration order and the later declaration wins on
// conflicting properties.
func applicableStyles(styles []*css.Style, cueID string, tag startTag) []styleMatch {
	var matches []styleMatch
	for _, style := range styles {
		score := style.SpecificityScore(cueID, tag.name, tag.classes, tag.voice)
		if score > 0 {
			matches = append(matches, styleMatch{score: score, style: style})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score < matches[j].score
	})
	return matches
}

// applyStyle translates one matched rule's properties into spans over
// [start, end). Scalar properties rely on later spans overriding earlier
// ones at render time; boolean flags are idempotent.
func applyStyle(text *cue.TextBuilder, style *css.Style, start, end int) {
	if style == nil {
		return
	}
	if mask := style.StyleMask(); mask != 0 {
		text.AddSpan(cue.Span{Start: start, End: end, Kind: cue.SpanKindStyle, Style: mask})
	}
	if style.Strikethrough {
		text.AddSpan(cue.Span{Start: start, End: end, Kind: cue.SpanKindStrikethrough})
	}
	if style.Underline {
		text.AddSpan(cue.Span{Start: start, End: end, Kind: cue.SpanKindUnderline})
	}
	if style.HasFontColor {
		text.AddSpan(cue.Span{Start: start, End: end, Kind: cue.SpanKindForegroundColor, Color: style.FontColor})
	}
	if style.HasBackgroundColor {
		text.AddSpan(cue.Span{Start: start, End: end, Kind: cue.SpanKindBackgroundColor, Color: style.BackgroundColor})
	}
	if style.FontFamily != "" {
		text.AddSpan(cue.Span{Start: start, End: end, Kind: cue.SpanKindFontFamily, Family: style.FontFamily})
	}
	if style.TextAlign != cue.AlignmentUnset {
		text.AddSpan(cue.Span{Start: start, End: end, Kind: cue.SpanKindAlignment, Align: style.TextAlign})
	}
	switch style.FontSizeUnit {
	case css.FontSizeUnitPixel:
		text.AddSpan(cue.Span{Start: start, End: end, Kind: cue.SpanKindAbsoluteSize, Size: style.FontSize})
	case css.FontSizeUnitEm:
		text.AddSpan(cue.Span{Start: start, End: end, Kind: cue.SpanKindRelativeSize, Size: style.FontSize})
	case css.FontSizeUnitPercent:
		text.AddSpan(cue.Span{Start: start, End: end, Kind: cue.SpanKindRelativeSize, Size: style.FontSize / 100})
	case css.FontSizeUnitUnspecified:
		// no size declared
	}
}
