package event

import "testing"

func TestButtons(t *testing.T) {
	var s Buttons
	if s.Has(ButtonLeft) {
		t.Error("empty set has left")
	}
	s = s.With(ButtonLeft).With(ButtonRight)
	if !s.Has(ButtonLeft) || !s.Has(ButtonRight) || s.Has(ButtonMiddle) {
		t.Errorf("set = %b", s)
	}
	if s.Has(0) {
		t.Error("zero button must never be held")
	}
}

func TestButtonString(t *testing.T) {
	tests := []struct {
		b    Button
		want string
	}{
		{ButtonLeft, "left"},
		{ButtonMiddle, "middle"},
		{ButtonRight, "right"},
		{Button(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.b, got, tt.want)
		}
	}
}
