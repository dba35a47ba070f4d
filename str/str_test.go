package str_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/hasbyte1/go-amp-utils/str"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "Pomp & Circumstance", want: "pomp-circumstance"},
		{in: "Hello World", want: "hello-world"},
		{in: "  leading and trailing  ", want: "leading-and-trailing"},
		{in: "multiple   spaces\tand\ttabs", want: "multiple-spaces-and-tabs"},
		{in: "already-slugged", want: "already-slugged"},
		{in: "--dashes--everywhere--", want: "dashes-everywhere"},
		{in: "snake_case_stays", want: "snake_case_stays"},
		{in: "Numbers 123 ok", want: "numbers-123-ok"},
		{in: "punct!@#$%^*()only", want: "punctonly"},
		{in: "a - b", want: "a-b"},
		{in: "non\u00a0breaking\u2003space\ufeff", want: "non-breaking-space"},
		{in: "line\nbreak\vvertical", want: "line-break-vertical"},
		{in: "Crème Brûlée", want: "crme-brle"},
		{in: "", want: ""},
		{in: "!!!", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, str.Slug(tt.in))
		})
	}
}

// Whitespace becomes a hyphen before punctuation is stripped, so the space
// around "&" survives as one separator instead of gluing the words together.
func TestSlugOrderMatters(t *testing.T) {
	assert.Equal(t, "rock-roll", str.Slug("Rock & Roll"))
	assert.Equal(t, "rockroll", str.Slug("Rock&Roll"))
}

func TestSlugFold(t *testing.T) {
	assert.Equal(t, "creme-brulee", str.SlugFold("Crème Brûlée"))
	assert.Equal(t, "sao-paulo", str.SlugFold("São Paulo"))
	assert.Equal(t, "pomp-circumstance", str.SlugFold("Pomp & Circumstance"))
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "eine kleine nachtmusik", want: "Eine Kleine Nachtmusik"},
		{in: "SHOUTING WORDS", want: "Shouting Words"},
		{in: "mIxEd cAsE", want: "Mixed Case"},
		{in: "o'neil-smith", want: "O'neil-smith"},
		{in: "(hello) world", want: "(Hello) World"},
		{in: "  spaced   out  ", want: "  Spaced   Out  "},
		{in: "42nd street", want: "42nd Street"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, str.TitleCase(tt.in))
		})
	}
}

func TestCaserTurkish(t *testing.T) {
	tr := str.NewCaser(language.Turkish)
	assert.Equal(t, "İstanbul", tr.TitleCase("istanbul"))
	assert.Equal(t, "Izmır", tr.TitleCase("IZMIR"))
	assert.Equal(t, "Istanbul", str.TitleCase("istanbul"))
}

func TestTrimSlashes(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{in: "/dogs/moby/fetch/", want: "dogs/moby/fetch"},
		{in: "dogs/moby", want: "dogs/moby"},
		{in: "/leading", want: "leading"},
		{in: "trailing/", want: "trailing"},
		{in: "//double//", want: "/double/"},
		{in: "/", want: ""},
		{in: "//", want: ""},
		{in: "///", want: "/"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, str.TrimSlashes(tt.in))
		})
	}
}
