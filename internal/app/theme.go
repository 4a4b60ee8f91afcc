package app

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/dshills/plotview/internal/config"
	"github.com/dshills/plotview/internal/editor"
	"github.com/dshills/plotview/internal/preview"
	"github.com/dshills/plotview/internal/renderer/core"
	"github.com/dshills/plotview/internal/renderer/statusline"
	"github.com/dshills/plotview/internal/topbar"
)

// Styles holds the styles of every component on screen.
type Styles struct {
	TopBar        topbar.Styles
	Editor        editor.Styles
	Preview       preview.Styles
	Status        statusline.Styles
	Divider       core.Style
	DividerActive core.Style
}

// StylesFromTheme derives component styles from the configured colours.
// Colours that fail to parse keep their built-in value.
func StylesFromTheme(t config.ThemeConfig) Styles {
	s := Styles{
		TopBar:  topbar.DefaultStyles(),
		Editor:  editor.DefaultStyles(),
		Preview: preview.DefaultStyles(),
		Status:  statusline.DefaultStyles(),
	}

	if c, err := core.ColorFromHex(t.TopBar); err == nil {
		s.TopBar.Bar = s.TopBar.Bar.WithBackground(c)
		s.TopBar.Title = s.TopBar.Title.WithBackground(c)
		s.Preview.Button = s.Preview.Button.WithBackground(c)
	}

	if c, err := core.ColorFromHex(t.EditorBackground); err == nil {
		e := &s.Editor
		e.Text = e.Text.WithBackground(c)
		e.Placeholder = e.Placeholder.WithBackground(c)
		toolbar := shade(c, 0.12)
		e.Toolbar = e.Toolbar.WithBackground(toolbar)
		e.Button = e.Button.WithBackground(shade(c, 0.22))
		e.ButtonActive = e.ButtonActive.WithBackground(shade(c, 0.22))
		gutter := shade(c, -0.06)
		e.Gutter = e.Gutter.WithBackground(gutter)
		e.GutterCurrent = e.GutterCurrent.WithBackground(gutter)
		e.GutterError = e.GutterError.WithBackground(gutter)
		e.GutterBorder = e.GutterBorder.WithBackground(gutter)
		if e.Syntax != nil {
			e.Syntax = e.Syntax.WithBase(e.Text)
		}
	}

	if c, err := core.ColorFromHex(t.PreviewBackground); err == nil {
		p := &s.Preview
		p.Surface = p.Surface.WithBackground(c)
		p.Placeholder = p.Placeholder.WithBackground(c)
	}

	if c, err := core.ColorFromHex(t.StatusBar); err == nil {
		st := &s.Status
		st.Bar = st.Bar.WithBackground(c)
		st.Info = st.Info.WithBackground(c)
		st.Warning = st.Warning.WithBackground(c)
		st.Error = st.Error.WithBackground(c)
		st.Drag = st.Drag.WithBackground(c)
		s.Preview.Help.Border = s.Preview.Help.Border.WithBackground(c)
		s.Preview.Help.Text = s.Preview.Help.Text.WithBackground(c)
	}

	s.Divider = core.DefaultStyle().
		WithForeground(s.Editor.GutterBorder.Foreground).
		WithBackground(s.Status.Bar.Background)
	s.DividerActive = s.Divider.WithForeground(core.ColorWhite).Bold()

	if c, err := core.ColorFromHex(t.Accent); err == nil {
		s.Status.Drag = s.Status.Drag.WithForeground(c)
		s.Preview.Help.Border = s.Preview.Help.Border.WithForeground(c)
		s.DividerActive = s.DividerActive.WithForeground(c)
	}

	if c, err := core.ColorFromHex(t.Error); err == nil {
		s.Status.Error = s.Status.Error.WithForeground(c)
		s.Editor.GutterError = s.Editor.GutterError.WithForeground(c)
	}
	return s
}

// shade lightens c by amount, or darkens it when amount is negative.
// Light colours are darkened by a positive amount so the result always
// stands out from c.
func shade(c core.Color, amount float64) core.Color {
	cf := c.Colorful()
	l, a, b := cf.Lab()
	if l > 0.6 {
		amount = -amount
	}
	return core.FromColorful(colorful.Lab(min(max(l+amount, 0), 1), a, b))
}
