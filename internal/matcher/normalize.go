package matcher

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTable covers runes that do not decompose into base + combining mark,
// so NFD stripping alone would leave them untouched.
var foldTable = map[rune]string{
	'ß': "ss",
	'ø': "o",
	'æ': "ae",
	'œ': "oe",
	'ł': "l",
	'đ': "d",
	'ð': "d",
	'þ': "th",
}

// NormalizeName lowercases, trims, collapses inner whitespace, and strips
// diacritics (é→e, ł→l, ø→o). Runes the fold table and NFD decomposition
// both miss pass through unchanged; normalization never fails.
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var folded strings.Builder
	folded.Grow(len(s))
	for _, r := range s {
		if repl, ok := foldTable[r]; ok {
			folded.WriteString(repl)
			continue
		}
		folded.WriteRune(r)
	}

	// transform.Chain is stateful, so build it per call rather than sharing
	// one instance across goroutines.
	stripper := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(stripper, folded.String())
	if err != nil {
		out = folded.String()
	}

	return strings.Join(strings.Fields(out), " ")
}

// nameSuffixes are generational suffixes dropped before the suffix-variant
// comparison. "v" is deliberately absent: it is a real single-letter name
// part too often to treat as a suffix.
var nameSuffixes = map[string]struct{}{
	"jr":  {},
	"sr":  {},
	"ii":  {},
	"iii": {},
	"iv":  {},
}

func stripNameSuffix(normalized string) string {
	fields := strings.Fields(normalized)
	for len(fields) > 1 {
		last := strings.Trim(fields[len(fields)-1], ".")
		if _, ok := nameSuffixes[last]; !ok {
			break
		}
		fields = fields[:len(fields)-1]
	}

	return strings.Join(fields, " ")
}
