package history

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/moodcount/internal/model"
)

// DecodeError reports a digit that does not name a category.
type DecodeError struct {
	Pos  int
	Char rune
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid category digit %q at position %d", e.Char, e.Pos)
}

// Encode returns every event in the log, redo-available ones included, as
// one digit per event.
func (l *Log) Encode() string {
	return EncodeEvents(l.events)
}

// EncodeEvents writes one digit per category with no separators.
func EncodeEvents(events []model.Category) string {
	var b strings.Builder
	b.Grow(len(events))
	for _, c := range events {
		b.WriteByte(c.Digit())
	}
	return b.String()
}

// Decode parses counter file text. Characters other than ASCII digits are
// skipped. A digit outside the category range fails the whole decode. Text
// without digits yields an empty slice and no error.
func Decode(text string) ([]model.Category, error) {
	out := []model.Category{}
	pos := 0
	for _, r := range text {
		if r >= '0' && r <= '9' {
			c, ok := model.CategoryFromDigit(r)
			if !ok {
				return nil, &DecodeError{Pos: pos, Char: r}
			}
			out = append(out, c)
		}
		pos++
	}
	return out, nil
}
