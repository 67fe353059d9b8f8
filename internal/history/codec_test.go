package history

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/verte-zerg/moodcount/internal/model"
)

func TestEncodeAllCategories(t *testing.T) {
	l := New()
	recordAll(l, model.Awesome, model.Good, model.Normal, model.Bad, model.Awful)
	if got := l.Encode(); got != "12345" {
		t.Fatalf("expected 12345, got %q", got)
	}
	cats, err := Decode("12345")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(cats, l.Events()) {
		t.Fatalf("decode mismatch: %v", cats)
	}
}

func TestEncodeIncludesRedoEvents(t *testing.T) {
	l := New()
	recordAll(l, model.Bad, model.Good, model.Awful)
	if err := l.Undo(); err != nil {
		t.Fatalf("undo: %v", err)
	}
	if got := l.Encode(); got != "425" {
		t.Fatalf("expected 425, got %q", got)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for n := 0; n < 50; n++ {
		seq := make([]model.Category, n)
		for i := range seq {
			seq[i] = model.Categories[rnd.Intn(model.CategoryCount)]
		}
		got, err := Decode(EncodeEvents(seq))
		if err != nil {
			t.Fatalf("n=%d decode: %v", n, err)
		}
		if !reflect.DeepEqual(got, seq) {
			t.Fatalf("n=%d round trip: got %v want %v", n, got, seq)
		}
	}
}

func TestDecodeSkipsNonDigits(t *testing.T) {
	tests := []struct {
		in   string
		want []model.Category
	}{
		{in: "", want: []model.Category{}},
		{in: "\n \t", want: []model.Category{}},
		{in: "abc", want: []model.Category{}},
		{in: "1 2\n3\r\n", want: []model.Category{model.Awesome, model.Good, model.Normal}},
		{in: "x5y", want: []model.Category{model.Awful}},
	}
	for _, tt := range tests {
		got, err := Decode(tt.in)
		if err != nil {
			t.Fatalf("Decode(%q): %v", tt.in, err)
		}
		if got == nil || !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("Decode(%q): got %v want %v", tt.in, got, tt.want)
		}
	}
}

func TestDecodeRejectsOutOfRangeDigits(t *testing.T) {
	tests := []struct {
		in   string
		pos  int
		char rune
	}{
		{in: "120", pos: 2, char: '0'},
		{in: "6", pos: 0, char: '6'},
		{in: "1 9 2", pos: 2, char: '9'},
	}
	for _, tt := range tests {
		got, err := Decode(tt.in)
		if got != nil {
			t.Fatalf("Decode(%q): expected no partial result, got %v", tt.in, got)
		}
		var decErr *DecodeError
		if !errors.As(err, &decErr) {
			t.Fatalf("Decode(%q): expected DecodeError, got %v", tt.in, err)
		}
		if decErr.Pos != tt.pos || decErr.Char != tt.char {
			t.Fatalf("Decode(%q): got pos %d char %q", tt.in, decErr.Pos, decErr.Char)
		}
	}
}
