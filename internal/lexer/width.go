package lexer

import "golang.org/x/text/width"

// VisualWidth returns the number of terminal display cells s occupies,
// counting East-Asian wide/fullwidth runes as two cells. Lox identifiers are
// ASCII-only (spec.md §6), but string and comment contents are not, so a
// caret printed under a diagnostic's source excerpt (internal/errors) can
// still drift from the reported column unless wide runes are accounted for.
func VisualWidth(s string) int {
	w := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			w += 2
		default:
			w++
		}
	}
	return w
}
