// Package highlighter provides chroma-backed syntax highlighting for the
// Bubble Tea adapter.
package highlighter

import (
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
)

// Highlighter tokenizes document text lazily and caches both the tokens
// per line and the lipgloss style per token type. The token cache is
// rebuilt from scratch on Invalidate; multi-line constructs make
// incremental retokenization unreliable.
type Highlighter struct {
	lexer chroma.Lexer
	style *chroma.Style

	mu         sync.RWMutex
	lineTokens map[int][]chroma.Token
	styleCache map[chroma.TokenType]lipgloss.Style
}

// New creates a highlighter for a language and a chroma style name.
// Unknown languages fall back to plain text.
func New(language, theme string) *Highlighter {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}

	return &Highlighter{
		lexer:      chroma.Coalesce(lexer),
		style:      styles.Get(theme),
		lineTokens: make(map[int][]chroma.Token),
		styleCache: make(map[chroma.TokenType]lipgloss.Style),
	}
}

// Invalidate clears the token cache. Call after any text change.
func (h *Highlighter) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.lineTokens = make(map[int][]chroma.Token)
}

// StyleForRange returns the style of the token covering the character
// range [start, end) of a line. Ranges spanning token boundaries take the
// first token's style; the adapter asks per grapheme cluster, so that
// only happens for clusters wider than a token.
func (h *Highlighter) StyleForRange(line int, lines []string, start, end int) lipgloss.Style {
	tokens := h.tokensForLine(line, lines)

	col := 0
	for _, token := range tokens {
		tokenLen := len([]rune(token.Value))
		if start >= col && start < col+tokenLen {
			return h.styleForToken(token.Type)
		}
		col += tokenLen
	}
	return lipgloss.NewStyle()
}

func (h *Highlighter) tokensForLine(line int, lines []string) []chroma.Token {
	h.mu.RLock()
	_, populated := h.lineTokens[0]
	tokens := h.lineTokens[line]
	h.mu.RUnlock()

	if populated {
		return tokens
	}

	h.tokenize(lines)

	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.lineTokens[line]
}

// tokenize runs the lexer over the whole document and splits the token
// stream back into lines.
func (h *Highlighter) tokenize(lines []string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lineTokens = make(map[int][]chroma.Token)
	h.lineTokens[0] = []chroma.Token{}

	content := strings.Join(lines, "\n")
	if content == "" {
		return
	}

	iterator, err := h.lexer.Tokenise(nil, content)
	if err != nil {
		// Leave the cache populated-but-empty so a broken document does
		// not retokenize on every render.
		for i := range lines {
			h.lineTokens[i] = []chroma.Token{}
		}
		return
	}

	lineNum := 0
	for _, token := range iterator.Tokens() {
		value := token.Value
		for strings.Contains(value, "\n") {
			before, after, _ := strings.Cut(value, "\n")
			if before != "" {
				h.lineTokens[lineNum] = append(h.lineTokens[lineNum], chroma.Token{Type: token.Type, Value: before})
			}
			lineNum++
			h.lineTokens[lineNum] = []chroma.Token{}
			value = after
		}
		if value != "" {
			h.lineTokens[lineNum] = append(h.lineTokens[lineNum], chroma.Token{Type: token.Type, Value: value})
		}
	}
}

func (h *Highlighter) styleForToken(tokenType chroma.TokenType) lipgloss.Style {
	h.mu.RLock()
	cached, ok := h.styleCache[tokenType]
	h.mu.RUnlock()
	if ok {
		return cached
	}

	entry := h.style.Get(tokenType)

	style := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		style = style.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}

	h.mu.Lock()
	h.styleCache[tokenType] = style
	h.mu.Unlock()

	return style
}
