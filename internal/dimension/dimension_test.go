package dimension

import "testing"

func TestParseLetter(t *testing.T) {
	tests := []struct {
		in      string
		want    Letter
		wantErr bool
	}{
		{"E", E, false},
		{"n", N, false},
		{" p ", P, false},
		{"X", "", true},
		{"", "", true},
		{"EI", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLetter(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseLetter(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseLetter(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLetter(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDichotomyOf(t *testing.T) {
	for _, d := range AllDichotomies() {
		for _, l := range []Letter{d.First, d.Second} {
			got, ok := DichotomyOf(l)
			if !ok || got != d {
				t.Errorf("DichotomyOf(%s) = %v, %v; want %v", l, got, ok, d)
			}
		}
	}
	if _, ok := DichotomyOf("X"); ok {
		t.Error("expected no dichotomy for X")
	}
}

func TestDichotomyOrder(t *testing.T) {
	var code string
	for _, d := range AllDichotomies() {
		code += string(d.First)
	}
	if code != "ESTJ" {
		t.Errorf("first letters = %q, want ESTJ", code)
	}
}

func TestOpposite(t *testing.T) {
	if got := TF.Opposite(T); got != F {
		t.Errorf("TF.Opposite(T) = %s, want F", got)
	}
	if got := TF.Opposite(F); got != T {
		t.Errorf("TF.Opposite(F) = %s, want T", got)
	}
}
