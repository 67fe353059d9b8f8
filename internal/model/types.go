// Package model defines shared data structures.
package model

import (
	"fmt"
	"strings"
	"time"
)

// Category is one of the fixed mood labels being tallied.
type Category int

// Categories in display order. The numeric value doubles as the digit
// written to the counter file, so the order must never change.
const (
	NoCategory Category = iota
	Awesome
	Good
	Normal
	Bad
	Awful
)

// CategoryCount is the number of recordable categories.
const CategoryCount = 5

// Categories lists every recordable category in display order.
var Categories = [CategoryCount]Category{Awesome, Good, Normal, Bad, Awful}

var categoryNames = [...]string{"", "Awesome", "Good", "Normal", "Bad", "Awful"}

// Valid reports whether c is a recordable category.
func (c Category) Valid() bool {
	return c >= Awesome && c <= Awful
}

// Index returns the 0-based position of c in Categories.
func (c Category) Index() int {
	if !c.Valid() {
		panic(fmt.Sprintf("model: invalid category %d", int(c)))
	}
	return int(c) - 1
}

// Digit returns the 1-based code used by the counter file.
func (c Category) Digit() byte {
	return '0' + byte(c.Index()+1)
}

// String implements fmt.Stringer.
func (c Category) String() string {
	if c < NoCategory || int(c) >= len(categoryNames) {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	if c == NoCategory {
		return "None"
	}
	return categoryNames[c]
}

// CategoryFromDigit maps a counter file digit back to its category.
// The reserved digit '0' and anything past the last category are rejected.
func CategoryFromDigit(d rune) (Category, bool) {
	if d < '1' || d > '0'+CategoryCount {
		return NoCategory, false
	}
	return Category(d - '0'), true
}

// ParseCategory resolves a label (case-insensitive) or digit to a category.
func ParseCategory(s string) (Category, bool) {
	if len(s) == 1 {
		if c, ok := CategoryFromDigit(rune(s[0])); ok {
			return c, true
		}
	}
	for _, c := range Categories {
		if strings.EqualFold(c.String(), s) {
			return c, true
		}
	}
	return NoCategory, false
}

// Counts holds per-category tallies indexed by Category.Index.
type Counts [CategoryCount]int

// Get returns the tally for c.
func (c Counts) Get(cat Category) int {
	return c[cat.Index()]
}

// Total returns the sum of all tallies.
func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Config defines runtime settings for the counter UI.
type Config struct {
	CounterPath string
	Recent      int
	LoadOnStart bool
	Journal     bool
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Since  *time.Time
	Last   int
	Window int
}

// SaveRecord captures one explicit write of the history to disk.
type SaveRecord struct {
	ID      int64
	SavedAt time.Time
	Path    string
	Encoded string
	Cursor  int
	Length  int
	Counts  Counts
}
