package interaction

import (
	"regexp"
	"strings"
)

// Patterns for canonicalizing free-text drug names. Dosage tokens can
// appear anywhere ("Aspirin 81mg tablet"); form words only count when
// trailing, so a name like "Solution X" keeps its meaning.
var (
	dosagePattern       = regexp.MustCompile(`\d+\s*(mg|mcg|g|ml|iu|units?)\b`)
	trailingFormPattern = regexp.MustCompile(`(\s+(tablet|capsule|pill|cream|ointment|syrup|solution)s?)+$`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
)

// Normalize canonicalizes a raw display name into its matching key:
// lowercase, dosage and trailing pharmaceutical-form tokens stripped,
// whitespace collapsed.
//
// Normalize("Aspirin 81mg tablet") == Normalize("ASPIRIN") == "aspirin"
//
// The function is pure and idempotent. Arbitrary input that matches no
// pattern passes through (lowercased and trimmed) unchanged; the result
// is only a matching key and is never displayed.
func Normalize(raw string) string {
	name := strings.ToLower(raw)
	name = dosagePattern.ReplaceAllString(name, " ")
	name = whitespacePattern.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	name = trailingFormPattern.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
