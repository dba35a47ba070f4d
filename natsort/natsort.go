package natsort

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// halfPrefix marks strings that always sort first.
const halfPrefix = "1/2 "

// Sorter compares strings naturally using the collation rules of one
// language. It is safe for concurrent use.
type Sorter struct {
	pool sync.Pool
}

// New returns a Sorter that collates non-numeric text with the rules for
// tag. language.Und selects the root collation.
func New(tag language.Tag) *Sorter {
	s := &Sorter{}
	s.pool.New = func() any { return collate.New(tag) }
	return s
}

var root = New(language.Und)

// Compare returns -1, 0 or +1 depending on whether a sorts before, with or
// after b, using the root collation.
//
//	Compare("img2", "img10")  // -1
//	Compare("1/2 cup", "a")   // -1
func Compare(a, b string) int { return root.Compare(a, b) }

// Less reports whether a sorts before b.
func Less(a, b string) bool { return root.Compare(a, b) < 0 }

// Sort sorts items in place in natural order. The sort is stable.
func Sort(items []string) { root.Sort(items) }

// Compare returns -1, 0 or +1 depending on whether a sorts before, with or
// after b.
//
// Strings starting with "1/2 " come first. Otherwise both strings are split
// into alternating runs of ASCII digits and non-digits and compared run by
// run: two digit runs by numeric value (of any length, so leading zeros and
// huge numbers are fine), anything else by collation. When every compared
// run is equal the string with fewer runs sorts first.
func (s *Sorter) Compare(a, b string) int {
	ah, bh := strings.HasPrefix(a, halfPrefix), strings.HasPrefix(b, halfPrefix)
	switch {
	case ah && !bh:
		return -1
	case bh && !ah:
		return 1
	}

	c := s.pool.Get().(*collate.Collator)
	defer s.pool.Put(c)

	ta, tb := tokenize(a), tokenize(b)
	for i := 0; i < len(ta) && i < len(tb); i++ {
		x, y := ta[i], tb[i]
		var r int
		if isDigits(x) && isDigits(y) {
			r = compareNumeric(x, y)
		} else {
			r = c.CompareString(x, y)
		}
		if r != 0 {
			return r
		}
	}
	switch {
	case len(ta) < len(tb):
		return -1
	case len(ta) > len(tb):
		return 1
	}
	return 0
}

// Sort sorts items in place in natural order. The sort is stable.
func (s *Sorter) Sort(items []string) {
	slices.SortStableFunc(items, s.Compare)
}

// tokenize splits s into maximal runs of ASCII digits and non-digits.
func tokenize(s string) []string {
	if s == "" {
		return nil
	}
	tokens := make([]string, 0, 4)
	start := 0
	digit := isDigit(s[0])
	for i := 1; i < len(s); i++ {
		if d := isDigit(s[i]); d != digit {
			tokens = append(tokens, s[start:i])
			start, digit = i, d
		}
	}
	return append(tokens, s[start:])
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isDigits(s string) bool { return s != "" && isDigit(s[0]) }

// compareNumeric compares two digit runs by value without converting them.
func compareNumeric(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return strings.Compare(a, b)
}
