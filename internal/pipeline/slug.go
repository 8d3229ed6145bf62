package pipeline

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var (
	// Anything that is not a lowercase letter, digit, whitespace or hyphen.
	slugDisallowed = regexp.MustCompile(`[^a-z0-9\s-]`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

// Transliterate replaces every non-ASCII character with its closest ASCII
// spelling. Characters without a spelling are dropped.
func Transliterate(s string) string {
	return unidecode.Unidecode(s)
}

// Slugify derives the file name stem and URL segment for a title.
//
// Whitespace runs become a single hyphen; hyphens already present in the
// title are kept as written. The result is empty when the title has no
// letters or digits.
func Slugify(title string) string {
	slug := strings.ToLower(Transliterate(strings.ToLower(title)))
	slug = slugDisallowed.ReplaceAllString(slug, "")
	slug = whitespaceRun.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
