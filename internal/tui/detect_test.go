package tui

import "testing"

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input string
		want  ColorMode
	}{
		{"always", ColorAlways},
		{"never", ColorNever},
		{"auto", ColorAuto},
		{"", ColorAuto},
		{"garbage", ColorAuto},
	}
	for _, tt := range tests {
		if got := ParseColorMode(tt.input); got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestUseColor_ForcedModes(t *testing.T) {
	if !UseColor(ColorAlways) {
		t.Error("Expected ColorAlways to force styling on")
	}
	if UseColor(ColorNever) {
		t.Error("Expected ColorNever to force styling off")
	}
}

func TestUseColor_AutoRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if UseColor(ColorAuto) {
		t.Error("Expected NO_COLOR to disable styling in auto mode")
	}
}

func TestUseColor_AutoRespectsCI(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("CI", "true")
	if UseColor(ColorAuto) {
		t.Error("Expected CI to disable styling in auto mode")
	}
}
