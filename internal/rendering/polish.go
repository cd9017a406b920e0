package rendering

import (
	"strings"
	"unicode"
)

// CollapseWhitespace trims s and folds every internal whitespace run to one space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Polish normalizes free text for a document: whitespace is collapsed and a lowercase
// letter that starts the text or follows ". ", "! " or "? " is capitalized. Nothing
// else is touched, so Polish(Polish(x)) == Polish(x).
func Polish(s string) string {
	runes := []rune(CollapseWhitespace(s))
	for i, r := range runes {
		if unicode.IsLower(r) && sentenceStart(runes, i) {
			runes[i] = unicode.ToUpper(r)
		}
	}
	return string(runes)
}

func sentenceStart(runes []rune, i int) bool {
	if i == 0 {
		return true
	}
	if i < 2 || runes[i-1] != ' ' {
		return false
	}
	switch runes[i-2] {
	case '.', '!', '?':
		return true
	}
	return false
}

// polishAll polishes each item and drops the ones that end up empty.
func polishAll(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if p := Polish(item); p != "" {
			out = append(out, p)
		}
	}
	return out
}
