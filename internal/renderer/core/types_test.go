package core

import (
	"testing"
)

func TestColorDefault(t *testing.T) {
	c := ColorDefault
	if !c.IsDefault() {
		t.Error("ColorDefault should be default")
	}
	if c.ToHex() != "" {
		t.Errorf("default color hex = %q, want empty", c.ToHex())
	}
}

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"#FF8040", 255, 128, 64, false},
		{"#ff8040", 255, 128, 64, false},
		{"FF8040", 255, 128, 64, false},
		{"#005a94", 0, 90, 148, false},
		{"#FFF", 255, 255, 255, false},
		{"invalid", 0, 0, 0, true},
		{"#GGGGGG", 0, 0, 0, true},
	}

	for _, tt := range tests {
		c, err := ColorFromHex(tt.hex)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ColorFromHex(%q) expected error, got nil", tt.hex)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColorFromHex(%q) unexpected error: %v", tt.hex, err)
			continue
		}
		if c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("ColorFromHex(%q) = (%d,%d,%d), want (%d,%d,%d)",
				tt.hex, c.R, c.G, c.B, tt.r, tt.g, tt.b)
		}
	}
}

func TestColorToHexRoundTrip(t *testing.T) {
	c := ColorFromRGB(0, 90, 148)
	if got := c.ToHex(); got != "#005a94" {
		t.Errorf("ToHex() = %q, want #005a94", got)
	}
}

func TestColorBlendEndpoints(t *testing.T) {
	a := ColorFromRGB(10, 20, 30)
	b := ColorFromRGB(200, 100, 50)

	if got := a.Blend(b, 0); !got.Equals(a) {
		t.Errorf("Blend(0) = %+v, want %+v", got, a)
	}
	if got := a.Blend(b, 1); !got.Equals(b) {
		t.Errorf("Blend(1) = %+v, want %+v", got, b)
	}
	if got := ColorDefault.Blend(b, 0.5); !got.IsDefault() {
		t.Error("blending the default color should stay default")
	}
}

func TestStyleEquals(t *testing.T) {
	s := DefaultStyle().WithForeground(ColorRed).Bold()
	if !s.Equals(DefaultStyle().WithForeground(ColorRed).Bold()) {
		t.Error("identical styles should be equal")
	}
	if s.Equals(DefaultStyle().WithForeground(ColorRed)) {
		t.Error("styles with different attributes should differ")
	}
	if !s.Attributes.Has(AttrBold) {
		t.Error("Bold() should set AttrBold")
	}
}

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'\t', 0},
		{0x7F, 0},
		{'中', 2},
		{'█', 1},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestStringWidth(t *testing.T) {
	if got := StringWidth("abc"); got != 3 {
		t.Errorf("StringWidth(abc) = %d, want 3", got)
	}
	if got := StringWidth("日本"); got != 4 {
		t.Errorf("StringWidth(日本) = %d, want 4", got)
	}
}

func TestScreenRectContains(t *testing.T) {
	r := NewScreenRect(2, 4, 6, 10)

	tests := []struct {
		x, y int
		want bool
	}{
		{4, 2, true},
		{9, 5, true},
		{10, 5, false},
		{9, 6, false},
		{3, 3, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestScreenRectSplit(t *testing.T) {
	r := RectFromSize(0, 0, 10, 20)

	head, rest := r.SplitTop(3)
	if head.Height() != 3 || rest.Height() != 7 || rest.Top != 3 {
		t.Errorf("SplitTop(3) = %+v, %+v", head, rest)
	}

	left, right := r.SplitLeft(25)
	if left.Width() != 20 || !right.IsEmpty() {
		t.Errorf("SplitLeft beyond width should clamp: %+v, %+v", left, right)
	}

	inset := r.Inset(1, 2, 1, 2)
	if inset.Width() != 16 || inset.Height() != 8 {
		t.Errorf("Inset = %+v", inset)
	}
}
