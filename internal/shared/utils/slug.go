package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SlugFunc derives a slug from a display name.
type SlugFunc func(name string) string

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Letters that carry no combining mark under NFD and need an explicit mapping.
var transliterations = strings.NewReplacer(
	"ß", "ss", "ẞ", "ss",
	"æ", "ae", "Æ", "ae",
	"œ", "oe", "Œ", "oe",
	"ø", "o", "Ø", "o",
	"đ", "d", "Đ", "d",
	"ð", "d", "Ð", "d",
	"ł", "l", "Ł", "l",
	"þ", "th", "Þ", "th",
	"ı", "i",
)

// GenerateSlug turns a display name into a lowercase URL token:
//
//	"Tech, For All!"   -> "tech-for-all"
//	"Doações de Natal" -> "doacoes-de-natal"
//
// It may return "" (for example for "!!!"); callers reject that upstream.
func GenerateSlug(input string) string {
	ascii := RemoveDiacritics(transliterations.Replace(input))
	lower := strings.ToLower(ascii)
	hyphenated := nonAlphanumeric.ReplaceAllString(lower, "-")
	return strings.Trim(hyphenated, "-")
}

// RemoveDiacritics decomposes input (NFD), drops nonspacing marks and recomposes.
// "São João" -> "Sao Joao".
func RemoveDiacritics(input string) string {
	// A transform.Chain keeps internal state, so build one per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, input)
	if err != nil {
		return input
	}
	return out
}
