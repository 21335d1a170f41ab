package countries

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Names holds the display variants of one country name.
type Names struct {
	// Official is the name as given by the source.
	Official string
	// Title is the title-cased name; comma names keep the "X, The" order.
	Title string
	// Plus is the inverted "The X" form, empty for names without a comma.
	Plus string
}

var (
	acronymPattern = regexp.MustCompile(`\b[A-Z](\.[A-Za-z])+\b`)
	mcPattern      = regexp.MustCompile(`\bMc(\w)`)
)

// Normalize derives all name variants of a raw source name.
func Normalize(name string) Names {
	n := Names{Official: OfficialName(name)}

	s := FixAcronyms(CapWords(name))
	if important, rest, ok := SplitComma(s); ok {
		important = Title(important)
		rest = Title(rest)
		n.Plus = FixMc(rest + " " + important)
		s = important + ", " + rest
	} else {
		s = Title(s)
	}
	n.Title = FixMc(s)

	return n
}

// OfficialName returns the name as given by the source.
func OfficialName(name string) string {
	return name
}

// CapWords splits s on runs of whitespace, capitalizes each word and joins
// them with single spaces.
func CapWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError && size <= 1 {
		return strings.ToLower(w)
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// Title upper-cases every rune that follows an uncased rune and lower-cases
// the rest, so "côte d'ivoire" becomes "Côte D'Ivoire".
func Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevCased := false
	for _, r := range s {
		if prevCased {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToTitle(r))
		}
		prevCased = isCased(r)
	}
	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// FixAcronyms upper-cases dotted acronyms such as "U.s." back to "U.S.".
func FixAcronyms(s string) string {
	return acronymPattern.ReplaceAllStringFunc(s, strings.ToUpper)
}

// FixMc upper-cases the letter after a word-initial "Mc": "Mcdonald"
// becomes "McDonald".
func FixMc(s string) string {
	return mcPattern.ReplaceAllStringFunc(s, func(m string) string {
		return "Mc" + strings.ToUpper(m[2:])
	})
}

// SplitComma splits s at its first ", " into the important part and the
// rest. ok is false when s has no ", ".
func SplitComma(s string) (important, rest string, ok bool) {
	important, rest, ok = strings.Cut(s, ", ")
	return important, rest, ok
}
