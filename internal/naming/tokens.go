package naming

import (
	"strings"
	"unicode"
)

// Tokens splits a name into lower-case tokens on separators and case
// boundaries.
//
//   - "first_name"  -> ["first", "name"]
//   - "lastName"    -> ["last", "name"]
//   - "HTTPAddress" -> ["http", "address"]
func Tokens(s string) []string {
	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, strings.ToLower(current.String()))
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

// Normalize joins the tokens of s, so "first_name" and "FirstName" agree.
func Normalize(s string) string {
	return strings.Join(Tokens(s), "")
}

// HasToken reports whether token (compared case-insensitively) is one of the
// tokens of s.
func HasToken(s, token string) bool {
	token = strings.ToLower(token)

	for _, t := range Tokens(s) {
		if t == token {
			return true
		}
	}

	return false
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}

// startsToken reports whether a new token begins at runes[i].
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if isSeparator(prev) {
		return false
	}

	// lower -> Upper: "lastName"
	if unicode.IsUpper(r) && !unicode.IsUpper(prev) {
		return true
	}

	// end of an acronym: "HTTPAddress" splits before 'A'
	return unicode.IsUpper(r) && unicode.IsUpper(prev) &&
		i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
