package webvtt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"vttc/css"
	"vttc/cue"
)

const headerMagic = "WEBVTT"

// LineScanner reads a subtitle text stream line by line. Input passes
// through a BOM-aware decoder so UTF-8 and UTF-16 files (with or without a
// byte order mark) are handled transparently. Lines are returned without
// their terminators.
type LineScanner struct {
	sc      *bufio.Scanner
	pushed  string
	hasPush bool
}

// NewLineScanner wraps r in a decoding line scanner.
func NewLineScanner(r io.Reader) *LineScanner {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return &LineScanner{sc: bufio.NewScanner(transform.NewReader(r, dec))}
}

// ReadLine returns the next line, false at end of input.
func (ls *LineScanner) ReadLine() (string, bool) {
	if ls.hasPush {
		ls.hasPush = false
		return ls.pushed, true
	}
	if !ls.sc.Scan() {
		return "", false
	}
	return strings.TrimSuffix(ls.sc.Text(), "\r"), true
}

// unread hands one line back so the next ReadLine returns it again. Only one
// line of pushback is ever needed: block classification peeks a single line.
func (ls *LineScanner) unread(line string) {
	ls.pushed = line
	ls.hasPush = true
}

// Parser decodes a whole WebVTT document: the WEBVTT magic, STYLE blocks
// (accumulated into the declared style list), NOTE and REGION blocks
// (skipped) and cue blocks.
type Parser struct {
	log  *zap.Logger
	css  *css.Parser
	cues *CueParser
}

// NewParser creates a WebVTT document parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{
		log:  log.Named("webvtt"),
		css:  css.NewParser(log),
		cues: NewCueParser(log),
	}
}

// Parse decodes the document from r. A missing WEBVTT header is the only
// fatal condition; malformed blocks inside an otherwise valid document are
// skipped with diagnostics. Styles declared by STYLE blocks apply to all
// cues parsed after the block.
func (p *Parser) Parse(r io.Reader) ([]*cue.Cue, error) {
	ls := NewLineScanner(r)

	first, ok := ls.ReadLine()
	if !ok {
		return nil, fmt.Errorf("empty input, expected %s header", headerMagic)
	}
	if !isHeaderLine(first) {
		return nil, fmt.Errorf("expected %s header, got %q", headerMagic, first)
	}

	var (
		cues   []*cue.Cue
		styles []*css.Style
	)
	for {
		line, ok := ls.ReadLine()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		switch {
		case line == "STYLE" || strings.HasPrefix(line, "STYLE "):
			block := readBlock(ls)
			parsed, warnings := p.css.Parse([]byte(block))
			for _, w := range warnings {
				p.log.Warn("STYLE block warning", zap.String("warning", w))
			}
			styles = append(styles, parsed...)

		case strings.HasPrefix(line, "NOTE"):
			p.log.Debug("Skipping NOTE block")
			readBlock(ls)

		case strings.HasPrefix(line, "REGION"):
			// region definitions are not supported, cues referencing them
			// still decode with default geometry
			p.log.Debug("Skipping REGION block")
			readBlock(ls)

		default:
			ls.unread(line)
			if c := p.cues.ParseCue(ls, styles); c != nil {
				cues = append(cues, c)
			}
		}
	}
	return cues, nil
}

// isHeaderLine accepts "WEBVTT" alone or followed by a space or tab and
// arbitrary trailing text.
func isHeaderLine(line string) bool {
	if !strings.HasPrefix(line, headerMagic) {
		return false
	}
	rest := line[len(headerMagic):]
	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

// readBlock consumes lines up to the next blank line or end of input and
// returns them joined.
func readBlock(ls *LineScanner) string {
	var b strings.Builder
	for {
		line, ok := ls.ReadLine()
		if !ok || strings.TrimSpace(line) == "" {
			break
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}
	return b.String()
}
