package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dotlessReplacer handles letters that have no canonical decomposition to an
// ASCII base.
var dotlessReplacer = strings.NewReplacer(
	"ı", "i",
	"ß", "ss",
	"ø", "o",
	"Ø", "O",
	"ł", "l",
	"Ł", "L",
	"đ", "d",
	"Đ", "D",
)

// FoldASCII strips diacritics so text survives fonts limited to the basic
// Latin range ("KONUŞMA SÜRESİ" becomes "KONUSMA SURESI").
func FoldASCII(s string) string {
	s = dotlessReplacer.Replace(s)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// Upper upper-cases s with the casing rules of tag, so Turkish "kadın"
// becomes "KADIN" and "iş" becomes "İŞ".
func Upper(tag language.Tag, s string) string {
	return cases.Upper(tag).String(s)
}
