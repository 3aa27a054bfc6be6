package category

import "strings"

// Diacríticos que aparecem nos nomes das categorias em português.
var slugFold = map[rune]rune{
	'á': 'a', 'à': 'a', 'ã': 'a', 'â': 'a',
	'é': 'e', 'ê': 'e',
	'í': 'i',
	'ó': 'o', 'õ': 'o', 'ô': 'o',
	'ú': 'u', 'ü': 'u',
	'ç': 'c',
}

// generateSlug derives the URL slug for a category name: lowercase,
// accents folded, spaces turned into hyphens, everything else dropped.
func generateSlug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if folded, ok := slugFold[r]; ok {
			r = folded
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	slug := strings.Trim(b.String(), "-")
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	return slug
}
