// Package str provides small string transformations for building URLs and
// display text: slugs, title case and slash trimming.
//
//	str.Slug("Pomp & Circumstance")         // "pomp-circumstance"
//	str.TitleCase("eine kleine nachtmusik")  // "Eine Kleine Nachtmusik"
//	str.TrimSlashes("/dogs/moby/fetch/")     // "dogs/moby/fetch"
//
// Word characters are the ASCII set [A-Za-z0-9_]; whitespace is the Unicode
// space set (ASCII controls \t \n \v \f \r, every Z category rune and the
// U+FEFF byte-order mark).
package str
