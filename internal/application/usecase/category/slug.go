// Package category contains category-related use cases.
package category

import "strings"

// diacritics maps accented letters to their base form. Covers the Latin-1
// range the app's PT-BR display names actually use.
var diacritics = map[rune]rune{
	'á': 'a', 'à': 'a', 'â': 'a', 'ã': 'a', 'ä': 'a', 'å': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ì': 'i', 'î': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o', 'ô': 'o', 'õ': 'o', 'ö': 'o',
	'ú': 'u', 'ù': 'u', 'û': 'u', 'ü': 'u',
	'ç': 'c', 'ñ': 'n', 'ý': 'y',
}

// Slugify derives a category id from its display name: lowercased,
// diacritics stripped, runs of non-alphanumeric characters collapsed to a
// single hyphen, leading and trailing hyphens trimmed.
//
//	"Pets & Co." -> "pets-co"
//	"Ótica"      -> "otica"
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if base, ok := diacritics[r]; ok {
			r = base
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			// collapse separator runs as we go
			if s := b.String(); len(s) > 0 && s[len(s)-1] != '-' {
				b.WriteByte('-')
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
