package utils

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// reservedSlugs are first path segments already taken by the router.
var reservedSlugs = map[string]struct{}{
	"api":     {},
	"go":      {},
	"health":  {},
	"metrics": {},
	"static":  {},
}

// NormalizeSlug lower-cases s and replaces every run of whitespace with a
// single hyphen. "Bob B" becomes "bob-b".
func NormalizeSlug(s string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(s), "-")
}

func IsReservedSlug(slug string) bool {
	_, ok := reservedSlugs[slug]
	return ok
}
