package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier to lowercase without word separators,
// so "book_id", "BookID" and "book-id" all become "bookid".
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into lowercase words. Words end at
// '_', '-' or ' ', at a lower-to-upper transition ("orderID" -> order, id),
// and before the last capital of an acronym that is followed by a lowercase
// letter ("XMLParser" -> xml, parser).
func TokenizeIdent(s string) []string {
	var (
		words []string
		word  []rune
	)

	flush := func() {
		if len(word) > 0 {
			words = append(words, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && wordBoundary(runes, i) {
			flush()
		}

		word = append(word, r)
	}

	flush()

	return words
}

// SnakeCase converts an identifier to lower snake_case:
// "OrderID" -> "order_id", "XMLParser" -> "xml_parser".
func SnakeCase(s string) string {
	return strings.Join(TokenizeIdent(s), "_")
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

func wordBoundary(runes []rune, i int) bool {
	cur, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(cur) || isSeparator(prev) {
		return false
	}

	if !unicode.IsUpper(prev) {
		return true
	}

	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
