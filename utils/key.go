package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaces = regexp.MustCompile(`\s+`)

// IDKey - normalize a country and an optional province into the stable
// identifier of a location: lower case, commas removed, diacritics folded
// and whitespace runs replaced by a hyphen.
//
// IDKey("Korea, South", "") == "korea-south"
// IDKey("France", "Guadeloupe") == "france-guadeloupe"
func IDKey(country, province string) string {
	name := strings.TrimSpace(country)
	if p := strings.TrimSpace(province); p != "" {
		name = name + " " + p
	}

	name = foldDiacritics(name)
	name = strings.Replace(strings.ToLower(name), ",", "", -1)
	return whitespaces.ReplaceAllString(name, "-")
}

func foldDiacritics(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, str)
	if err != nil {
		return str
	}
	return result
}
