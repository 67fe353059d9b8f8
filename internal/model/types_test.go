package model

import "testing"

func TestCategoryDigits(t *testing.T) {
	for i, c := range Categories {
		d := c.Digit()
		if d != byte('1'+i) {
			t.Fatalf("%s: expected digit %c, got %c", c, '1'+i, d)
		}
		back, ok := CategoryFromDigit(rune(d))
		if !ok || back != c {
			t.Fatalf("digit %c: got %v %v", d, back, ok)
		}
	}
	for _, d := range []rune{'0', '6', '9', 'a'} {
		if _, ok := CategoryFromDigit(d); ok {
			t.Fatalf("expected %q to be rejected", d)
		}
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{in: "awesome", want: Awesome, ok: true},
		{in: "BAD", want: Bad, ok: true},
		{in: "3", want: Normal, ok: true},
		{in: "0", ok: false},
		{in: "meh", ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("ParseCategory(%q): got %v %v", tt.in, got, ok)
		}
	}
}

func TestCountsTotal(t *testing.T) {
	c := Counts{1, 2, 0, 4, 1}
	if c.Total() != 8 {
		t.Fatalf("expected total 8, got %d", c.Total())
	}
	if c.Get(Bad) != 4 {
		t.Fatalf("expected Bad=4, got %d", c.Get(Bad))
	}
}
