package service

import (
	"regexp"
	"strings"
)

var (
	slugStripPattern    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapsePattern = regexp.MustCompile(`[-\s]+`)
)

const slugMaxLength = 200

// GenerateSlug derives a URL-safe identifier from a title: lowercase,
// non-word characters stripped, runs of whitespace and hyphens collapsed
// to a single hyphen, truncated to 200 characters.
func GenerateSlug(title string) string {
	slug := slugStripPattern.ReplaceAllString(strings.ToLower(title), "")
	slug = slugCollapsePattern.ReplaceAllString(slug, "-")

	runes := []rune(slug)
	if len(runes) > slugMaxLength {
		slug = string(runes[:slugMaxLength])
	}
	return slug
}
