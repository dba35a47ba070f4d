package str

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const spaceClass = `\t\n\v\f\r\p{Z}\x{FEFF}`

var (
	reSpaces   = regexp.MustCompile(`[` + spaceClass + `]+`)
	reNonWord  = regexp.MustCompile(`[^\w-]+`)
	reHyphens  = regexp.MustCompile(`-{2,}`)
	reWordLike = regexp.MustCompile(`\w[^` + spaceClass + `]*`)
)

// Slug converts s to a lowercase, hyphen-delimited, URL-safe string.
//
// The steps run in a fixed order, which matters for input that mixes
// punctuation and whitespace:
//  1. lowercase
//  2. replace each whitespace run with a single "-"
//  3. drop every character that is neither a word character nor "-"
//  4. collapse repeated "-"
//  5. trim "-" from both ends
//
// Letters outside ASCII are dropped in step 3; use [SlugFold] to keep
// accented Latin letters as their base letter.
//
//	Slug("Pomp & Circumstance") // "pomp-circumstance"
func Slug(s string) string {
	s = strings.ToLower(s)
	s = reSpaces.ReplaceAllString(s, "-")
	s = reNonWord.ReplaceAllString(s, "")
	s = reHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugFold is [Slug] after stripping diacritics: s is decomposed (NFD) and
// combining marks are removed, so "Crème Brûlée" becomes "creme-brulee"
// rather than "crme-brle".
func SlugFold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return Slug(folded)
}

// TrimSlashes removes at most one leading and one trailing "/".
// Repeated or internal slashes are left alone.
//
//	TrimSlashes("/dogs/moby/fetch/") // "dogs/moby/fetch"
//	TrimSlashes("//a//")             // "/a/"
func TrimSlashes(path string) string {
	return strings.TrimSuffix(strings.TrimPrefix(path, "/"), "/")
}

// TitleCase capitalizes every word of s using locale-neutral casing rules.
// See [Caser.TitleCase].
//
//	TitleCase("eine kleine nachtmusik") // "Eine Kleine Nachtmusik"
func TitleCase(s string) string {
	return NewCaser(language.Und).TitleCase(s)
}

// Caser applies title casing with the rules of one language.
type Caser struct {
	tag language.Tag
}

// NewCaser returns a Caser for tag. language.Und selects locale-neutral
// rules.
//
//	NewCaser(language.Turkish).TitleCase("istanbul") // "İstanbul"
func NewCaser(tag language.Tag) Caser {
	return Caser{tag: tag}
}

// TitleCase rewrites every word of s so its first character is upper case
// and the remainder lower case. A word starts at a word character and runs
// to the next whitespace, so "o'neil-smith" is one word ("O'neil-smith")
// and leading punctuation is skipped ("(hello)" becomes "(Hello)").
func (c Caser) TitleCase(s string) string {
	// cases.Caser is stateful; build fresh ones per call.
	upper := cases.Upper(c.tag)
	lower := cases.Lower(c.tag)
	return reWordLike.ReplaceAllStringFunc(s, func(word string) string {
		// The first character is ASCII by construction of the pattern.
		return upper.String(word[:1]) + lower.String(word[1:])
	})
}
