package countries

import (
	"cmp"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldReplacer = strings.NewReplacer("é", "e", "ô", "o")

// FoldKey returns the comparison key used to order the plus table.
// Accented letters are replaced by their base Latin letter so that
// "Åland Islands" sorts next to "Albania". The key is never displayed.
func FoldKey(s string) string {
	s = foldReplacer.Replace(s)
	if rest, ok := strings.CutPrefix(s, "Å"); ok {
		s = "A" + rest
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// SortPlus orders rows by folded name, then code. Rows with equal keys keep
// their relative order.
func SortPlus(rows []Row) {
	keys := make(map[string]string, len(rows))
	for _, r := range rows {
		if _, ok := keys[r.Name]; !ok {
			keys[r.Name] = FoldKey(r.Name)
		}
	}

	slices.SortStableFunc(rows, func(a, b Row) int {
		if c := cmp.Compare(keys[a.Name], keys[b.Name]); c != 0 {
			return c
		}
		return cmp.Compare(a.Code, b.Code)
	})
}
