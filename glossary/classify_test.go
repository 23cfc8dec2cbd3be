package glossary

import "testing"

func TestIsHeading(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Abyss", true},
		{"13-Month Calendar", true},
		{"Sun & Moon", true},
		{"Émile Coué", true},
		{"E DIN", true},
		{"A", false},
		{"7", false},
		{"", false},
		{"abyss", false},
		{"Aryan Race (Fifth Root Race)", false},
		{"Antarctica/ The Ice Wall", false},
		{"Noah's Ark", false},
		{"Gog, Magog", false},
		{"E.DIN", false},
		{"See also: Abyss", false},
		{"-Dash", false},
	}
	for _, tt := range tests {
		if got := IsHeading(tt.line); got != tt.want {
			t.Errorf("IsHeading(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIsPageMarker(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"--- PAGE 2 ---", true},
		{"--- PAGE 112 ---", true},
		{"---PAGE 3---", true},
		{"--- PAGE ---", false},
		{"--- PAGE two ---", false},
		{"--- page 2 ---", false},
		{"------", false},
		{"---", false},
		{"PAGE 2", false},
		{"--- PAGE 2", false},
	}
	for _, tt := range tests {
		if got := IsPageMarker(tt.line); got != tt.want {
			t.Errorf("IsPageMarker(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIsSectionLetter(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"A", true},
		{"Z", true},
		{"Ö", true},
		{"a", false},
		{"AB", false},
		{"1", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsSectionLetter(tt.line); got != tt.want {
			t.Errorf("IsSectionLetter(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestSplitSeeAlso(t *testing.T) {
	got := splitSeeAlso("See also:  Abyss ,, Firmament,  ")
	if len(got) != 2 || got[0] != "Abyss" || got[1] != "Firmament" {
		t.Errorf("unexpected refs: %q", got)
	}
	if got := splitSeeAlso("See also:"); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}
