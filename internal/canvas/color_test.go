package canvas

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"red", ColorRed, false},
		{"White", ColorWhite, false},
		{"default", ColorDefault, false},
		{"#FF8000", ColorFromRGB(255, 128, 0), false},
		{"00ff00", ColorGreen, false},
		{"#fff", ColorWhite, false},
		{"color9", ColorFromIndex(9), false},
		{"Color255", ColorFromIndex(255), false},
		{"color256", Color{}, true},
		{"color", Color{}, true},
		{"#GG0000", Color{}, true},
		{"chartreuse-ish", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.in, err)
			}
			if !got.Equals(tt.want) {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorEquals(t *testing.T) {
	if !ColorFromIndex(3).Equals(Color{R: 3, G: 9, Indexed: true}) {
		t.Error("indexed colors compare by index only")
	}
	if ColorDefault.Equals(ColorBlack) {
		t.Error("default should not equal black")
	}
	if got := ColorFromIndex(9).String(); got != "color9" {
		t.Errorf("indexed string = %q, want color9", got)
	}
	if ColorRed.String() != "#FF0000" {
		t.Errorf("unexpected string %q", ColorRed.String())
	}
}
