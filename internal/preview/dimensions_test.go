package preview

import "testing"

func TestParseDimension(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"900", 900},
		{" 250 ", 250},
		{"100", 100},
		{"99", 700},
		{"0", 700},
		{"", 700},
		{"abc", 700},
		{"120px", 120},
		{"-300", 700},
		{"99999999999999999999999", 700},
	}
	for _, tt := range tests {
		if got := ParseDimension(tt.text, 700, 100); got != tt.want {
			t.Errorf("ParseDimension(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestDimensionsPendingAndApplied(t *testing.T) {
	d := NewDimensions(DefaultSize(), MinDimension)

	if d.Pending() != DefaultSize() || d.Applied() != DefaultSize() {
		t.Fatalf("initial sizes = %+v / %+v", d.Pending(), d.Applied())
	}

	d.CommitWidth("900")
	d.CommitHeight("400")
	if d.Applied() != DefaultSize() {
		t.Error("pending values must not affect the applied size")
	}

	if !d.Apply() {
		t.Error("Apply() = false, want a change")
	}
	if d.Applied() != (Size{Width: 900, Height: 400}) {
		t.Errorf("Applied() = %+v", d.Applied())
	}
	if d.Apply() {
		t.Error("applying the same size twice should report no change")
	}
}

func TestDimensionsFallBackPerField(t *testing.T) {
	d := NewDimensions(DefaultSize(), MinDimension)
	if got := d.CommitWidth("50"); got != 700 {
		t.Errorf("CommitWidth(50) = %d, want 700", got)
	}
	if got := d.CommitHeight("x"); got != 500 {
		t.Errorf("CommitHeight(x) = %d, want 500", got)
	}
}

func TestNewDimensionsNormalizesDefaults(t *testing.T) {
	d := NewDimensions(Size{Width: 20, Height: 800}, 0)
	if d.Floor() != MinDimension {
		t.Errorf("Floor() = %d", d.Floor())
	}
	if d.Defaults() != (Size{Width: 700, Height: 800}) {
		t.Errorf("Defaults() = %+v", d.Defaults())
	}
}
