package textmodel

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// HighlightSpan is a byte-offset range of a code line colored by the
// resolved syntax theme.
type HighlightSpan struct {
	Start, Length int
	Color         string
}

// HighlightedLine is one line of code with its syntax-highlight spans.
type HighlightedLine struct {
	Text  string
	Spans []HighlightSpan
}

// HighlightCode tokenizes code under language and resolves each token's
// foreground color against theme, splitting multi-line tokens across their
// owning lines. An unrecognized language or theme falls back to chroma's
// plain-text lexer / default style rather than failing the page.
func HighlightCode(code, language, theme string) ([]HighlightedLine, error) {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return nil, &ErrHighlightFailed{Reason: err.Error()}
	}

	lineTexts := strings.Split(code, "\n")
	lines := make([]HighlightedLine, len(lineTexts))
	for i, t := range lineTexts {
		lines[i] = HighlightedLine{Text: t}
	}

	lineIdx := 0
	offset := 0
	for _, tok := range iterator.Tokens() {
		entry := style.Get(tok.Type)
		color := ""
		if entry.Colour.IsSet() {
			color = entry.Colour.String()
		}
		parts := strings.Split(tok.Value, "\n")
		for pi, part := range parts {
			if pi > 0 {
				lineIdx++
				offset = 0
			}
			if part == "" {
				continue
			}
			if color != "" && lineIdx < len(lines) {
				lines[lineIdx].Spans = append(lines[lineIdx].Spans, HighlightSpan{
					Start:  offset,
					Length: len(part),
					Color:  color,
				})
			}
			offset += len(part)
		}
	}
	return lines, nil
}
