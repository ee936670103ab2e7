package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/skinkit/internal/layout"
)

// DefaultHighlightStyle is the chroma style used when none is named.
const DefaultHighlightStyle = "catppuccin-mocha"

// JSON encodes the composed node tree, indented, with a trailing newline.
func JSON(screen layout.Screen) (string, error) {
	data, err := json.MarshalIndent(screen, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode screen: %w", err)
	}
	return string(data) + "\n", nil
}

func highlightStyle(name string) *chroma.Style {
	if name == "" {
		name = DefaultHighlightStyle
	}
	return styles.Get(name)
}

// Highlight colors JSON source for a terminal. Unknown style names fall back
// to chroma's default; a tokenizer failure returns src unchanged.
func Highlight(src, styleName string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	tokens, err := chroma.Tokenise(chroma.Coalesce(lexer), nil, src)
	if err != nil {
		return src
	}

	style := highlightStyle(styleName)
	base := style.Get(chroma.Text).Colour

	var b strings.Builder
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		entry := style.Get(tok.Type)
		if !entry.Colour.IsSet() || entry.Colour == base || strings.TrimSpace(tok.Value) == "" {
			b.WriteString(tok.Value)
			continue
		}
		s := lipgloss.NewStyle().Foreground(lipgloss.Color(entry.Colour.String()))
		if entry.Bold == chroma.Yes {
			s = s.Bold(true)
		}
		b.WriteString(s.Render(tok.Value))
	}
	return b.String()
}
