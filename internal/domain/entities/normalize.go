package entities

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldAccents strips combining marks ("óleo" -> "oleo"). Status parsing and
// the listing filter both compare accent-folded text.
func FoldAccents(s string) string {
	out, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return out
}

// normalizeLiteral lowers, trims and strips accents so status literals compare
// equal regardless of how the caller typed them ("Férias" == "ferias" == "FERIAS").
func normalizeLiteral(s string) string {
	s = strings.ToLower(FoldAccents(strings.TrimSpace(s)))
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
