package value

import (
	"fmt"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ebkarlson404/StarFieldMiner/internal/esmerr"
)

// rawIDCacheSize bounds the decorated -> raw memo. The same references
// (keywords, damage types, AVIFs) are extracted many thousands of times.
const rawIDCacheSize = 8192

var (
	// EditorName[SIGN:0001ABCD]
	decoratedFormID = regexp.MustCompile(`\[[^\[\]:]*:([0-9A-Fa-f]{8})\]`)
	rawFormID       = regexp.MustCompile(`^[0-9A-Fa-f]{8}$`)

	rawIDCache = mustCache(rawIDCacheSize)
)

func mustCache(size int) *lru.Cache[string, string] {
	c, err := lru.New[string, string](size)
	if err != nil {
		panic(err)
	}

	return c
}

// ToRawIdentifier extracts the raw 8-hex-digit form id from a decorated
// identifier such as "MyThing[WEAP:0001ABCD]". When several bracketed groups
// are present the last one wins. The result is upper-cased.
func ToRawIdentifier(decorated string) (string, error) {
	if raw, ok := rawIDCache.Get(decorated); ok {
		return raw, nil
	}

	matches := decoratedFormID.FindAllStringSubmatch(decorated, -1)
	if len(matches) == 0 {
		err := esmerr.Malformed(esmerr.CategoryBadIdentifier, "", "decorated form id EditorID[SIGN:XXXXXXXX]")
		err.Err = &badIdentifier{text: decorated}

		return "", err
	}

	raw := strings.ToUpper(matches[len(matches)-1][1])
	rawIDCache.Add(decorated, raw)

	return raw, nil
}

// IsRawIdentifier reports whether s is a bare 8-hex-digit form id.
func IsRawIdentifier(s string) bool {
	return rawFormID.MatchString(s)
}

// FormRef normalizes a reference that the export writes either raw or
// decorated. Decorated text yields its raw id; anything else is returned
// trimmed and upper-cased when it looks like a raw id, verbatim otherwise.
func FormRef(text string) string {
	text = strings.TrimSpace(text)
	if IsRawIdentifier(text) {
		return strings.ToUpper(text)
	}

	if raw, err := ToRawIdentifier(text); err == nil {
		return raw
	}

	return text
}

type badIdentifier struct {
	text string
}

func (e *badIdentifier) Error() string {
	return fmt.Sprintf("cannot extract raw form id from %q", e.text)
}
