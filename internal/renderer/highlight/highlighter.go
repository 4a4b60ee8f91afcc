package highlight

import (
	"sync"

	"github.com/dshills/plotview/internal/renderer/core"
)

// Span is a styled byte range of a line.
type Span struct {
	Start int
	End   int
	Style core.Style
}

// Provider tokenizes lines on demand and caches the result per line.
type Provider struct {
	mu sync.RWMutex

	theme     *Theme
	lineCache map[int]cachedLine
	maxCache  int
}

type cachedLine struct {
	text   string
	tokens []Token
}

// NewProvider creates a provider with the given theme. A nil theme uses
// DefaultTheme.
func NewProvider(theme *Theme, maxCache int) *Provider {
	if theme == nil {
		theme = DefaultTheme()
	}
	if maxCache <= 0 {
		maxCache = 1000
	}
	return &Provider{
		theme:     theme,
		lineCache: make(map[int]cachedLine),
		maxCache:  maxCache,
	}
}

// SetTheme replaces the theme. Cached tokens stay valid.
func (p *Provider) SetTheme(theme *Theme) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.theme = theme
}

// Theme returns the active theme.
func (p *Provider) Theme() *Theme {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.theme
}

// SpansForLine returns the styled spans of line number line whose text is
// text. Whitespace between tokens is left unstyled.
func (p *Provider) SpansForLine(line int, text string) []Span {
	tokens := p.tokens(line, text)

	p.mu.RLock()
	theme := p.theme
	p.mu.RUnlock()

	spans := make([]Span, 0, len(tokens))
	for _, tok := range tokens {
		spans = append(spans, Span{Start: tok.Start, End: tok.End, Style: theme.StyleFor(tok.Type)})
	}
	return spans
}

func (p *Provider) tokens(line int, text string) []Token {
	p.mu.RLock()
	cached, ok := p.lineCache[line]
	p.mu.RUnlock()
	if ok && cached.text == text {
		return cached.tokens
	}

	tokens := Tokenize(text)

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.lineCache) >= p.maxCache {
		clear(p.lineCache)
	}
	p.lineCache[line] = cachedLine{text: text, tokens: tokens}
	return tokens
}

// InvalidateAll drops every cached line.
func (p *Provider) InvalidateAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.lineCache)
}

// CacheSize returns the number of cached lines.
func (p *Provider) CacheSize() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.lineCache)
}
