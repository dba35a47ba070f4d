package querystring

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Lookup returns the decoded value of the first key parameter in uri.
//
// The parameter is found by matching [?&]key followed by "=value", "&", "#"
// or the end of the text; key is matched literally and case-sensitively.
// The boolean is false when key is absent. A key present without a value
// ("?flag" or "?flag=") yields "" and true. Values are percent-decoded with
// '+' read as a space. An invalid escape, or escapes that decode to bytes
// which are not valid UTF-8 ("%FF"), return the raw value together with an
// error wrapping [ErrMalformedEscape].
func Lookup(uri, key string) (string, bool, error) {
	re, ok := paramPattern(key)
	if !ok {
		return "", false, nil
	}
	m := re.FindStringSubmatch(uri)
	if m == nil {
		return "", false, nil
	}
	raw := m[2]
	if raw == "" {
		return "", true, nil
	}
	decoded, err := url.PathUnescape(strings.ReplaceAll(raw, "+", " "))
	if err != nil {
		return raw, true, fmt.Errorf("%w: %q: %w", ErrMalformedEscape, key, err)
	}
	if !utf8.ValidString(decoded) {
		return raw, true, fmt.Errorf("%w: %q: escapes do not decode to UTF-8", ErrMalformedEscape, key)
	}
	return decoded, true, nil
}

// Get is [Lookup] without the error: a value with an invalid escape is
// returned undecoded.
//
//	Get("?a=1&b=2", "a")   // "1", true
//	Get("?a=1&b=2", "c")   // "", false
//	Get("?flag&b=2", "flag") // "", true
func Get(uri, key string) (string, bool) {
	v, ok, _ := Lookup(uri, key)
	return v, ok
}

// Set assigns value to key in uri and returns the new URI.
//
// When a "key=" assignment already exists (matched case-insensitively) the
// first one is rewritten in place, keeping its position and the spelling of
// the separator before it. Otherwise "key=value" is appended after "&" when
// uri already contains a '?', or after "?" when it does not. Neither key
// nor value is encoded.
//
//	Set("?a=1", "a", "2") // "?a=2"
//	Set("?a=1", "b", "2") // "?a=1&b=2"
//	Set("/path", "b", "2") // "/path?b=2"
func Set(uri, key, value string) string {
	if re, ok := assignPattern(key); ok {
		if loc := re.FindStringSubmatchIndex(uri); loc != nil {
			return splice(uri, loc, key, value)
		}
	}
	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	return uri + sep + key + "=" + value
}

// splice rewrites the assignment matched by loc, keeping the separators.
// loc[2:4] is the leading separator, loc[4:6] the trailing one.
func splice(uri string, loc []int, key, value string) string {
	var b strings.Builder
	b.Grow(len(uri) + len(value))
	b.WriteString(uri[:loc[3]])
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(value)
	b.WriteString(uri[loc[4]:])
	return b.String()
}

// Patterns are built from the quoted key. A key that is not valid UTF-8 can
// never match, since the regexp engine reads the URI as UTF-8.
func paramPattern(key string) (*regexp.Regexp, bool) {
	return compile(`[?&]` + regexp.QuoteMeta(key) + `(=([^&#]*)|&|#|$)`)
}

func assignPattern(key string) (*regexp.Regexp, bool) {
	return compile(`(?i)([?&])` + regexp.QuoteMeta(key) + `=.*?(&|$)`)
}

func compile(expr string) (*regexp.Regexp, bool) {
	re, err := regexp.Compile(expr)
	return re, err == nil
}
