package highlight

import (
	"github.com/dshills/plotview/internal/renderer/core"
)

// Theme maps token types to styles.
type Theme struct {
	Name string

	// Base is used for whitespace and TokenNone.
	Base core.Style

	TokenStyles map[TokenType]core.Style
}

// StyleFor returns the style for a token type, falling back to Base.
func (t *Theme) StyleFor(tokenType TokenType) core.Style {
	if style, ok := t.TokenStyles[tokenType]; ok {
		return style
	}
	return t.Base
}

// WithBase returns a copy of the theme whose token styles sit on base's
// background.
func (t *Theme) WithBase(base core.Style) *Theme {
	out := &Theme{Name: t.Name, Base: base, TokenStyles: make(map[TokenType]core.Style, len(t.TokenStyles))}
	for typ, s := range t.TokenStyles {
		out.TokenStyles[typ] = s.WithBackground(base.Background)
	}
	return out
}

// DefaultTheme is a dark theme for a slate editor background.
func DefaultTheme() *Theme {
	base := core.DefaultStyle().
		WithForeground(core.ColorFromRGB(255, 255, 255)).
		WithBackground(core.ColorFromRGB(15, 23, 42))
	return &Theme{
		Name: "default",
		Base: base,
		TokenStyles: map[TokenType]core.Style{
			TokenKey:         base.WithForeground(core.ColorFromRGB(125, 211, 252)),
			TokenString:      base.WithForeground(core.ColorFromRGB(134, 239, 172)),
			TokenNumber:      base.WithForeground(core.ColorFromRGB(253, 186, 116)),
			TokenLiteral:     base.WithForeground(core.ColorFromRGB(196, 181, 253)),
			TokenPunctuation: base.WithForeground(core.ColorFromRGB(148, 163, 184)),
			TokenInvalid:     base.WithForeground(core.ColorFromRGB(248, 113, 113)).Underline(),
		},
	}
}

// PlainTheme renders every token in the base style.
func PlainTheme(base core.Style) *Theme {
	return &Theme{Name: "plain", Base: base}
}
