package match

import (
	"strings"
	"unicode"

	"github.com/ebkarlson404/StarFieldMiner/internal/value"
)

// NormalizeEditorID folds an editor id to its comparison form: lower case,
// separators and spaces dropped. A decorated reference such as
// "co_Rail[COBJ:0001ABCD]" is reduced to its name part first.
func NormalizeEditorID(id string) string {
	id = strings.TrimSpace(id)
	if _, err := value.ToRawIdentifier(id); err == nil {
		if i := strings.LastIndexByte(id, '['); i > 0 {
			id = id[:i]
		}
	}

	var sb strings.Builder
	sb.Grow(len(id))

	for _, r := range id {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(unicode.ToLower(r))
		}
	}

	return sb.String()
}

// Tokens splits an editor id into lower-case words on separators, case
// changes and letter/digit boundaries. "SpaceshipWeapon_Rail02" yields
// [spaceship weapon rail 02].
func Tokens(id string) []string {
	var (
		tokens []string
		cur    []rune
	)

	flush := func() {
		if len(cur) > 0 {
			tokens = append(tokens, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}

	runes := []rune(id)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}

		if i > 0 && len(cur) > 0 && boundary(runes, i) {
			flush()
		}

		cur = append(cur, r)
	}

	flush()

	return tokens
}

func boundary(runes []rune, i int) bool {
	prev, r := runes[i-1], runes[i]

	switch {
	case unicode.IsDigit(prev) != unicode.IsDigit(r):
		return true
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsUpper(prev) && unicode.IsUpper(r) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
		// "HTTPServer" splits before the S
		return true
	}

	return false
}
