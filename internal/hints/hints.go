// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-txt2html/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	// Find a user config path to suggest
	for _, p := range searchedPaths {
		if strings.Contains(filepath.ToSlash(p), "/go-txt2html/") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForModelNotFound returns hints for model not found errors.
func ForModelNotFound(available []string) string {
	hints := []string{"pass a path to an .html file"}
	if len(available) > 0 {
		hints = append(hints, "built-in models: "+strings.Join(available, ", "))
	}
	return formatHints(hints)
}

// ForInputFile returns hints for a missing articles file.
func ForInputFile() string {
	return format("pass the articles file as argument, set inputFile in config, or run 'txt2html init'")
}

// ForNoArticles returns hints for an input without article delimiters.
func ForNoArticles() string {
	return format("start each article with a line beginning with ---")
}

// ForSlugCollision returns hints for two articles writing the same file.
func ForSlugCollision() string {
	return format("titles differing only in accents or punctuation share a slug; rename one")
}

// ForMissingMarker returns hints for a model region that could not be
// rewritten. region is the name reported by the splicer.
func ForMissingMarker(region string) string {
	switch region {
	case "title":
		return format("the model <title> must end with \"| <brand>\"; check --brand or site.brand")
	case "meta description":
		return format(`the model needs one <meta name="description" content="...">`)
	case "canonical link":
		return format("the canonical link must point at https://<domain>/; check --domain or site.domain")
	case "flag link":
		return format("no link wraps the flag image; check site.flagImage")
	case "article body":
		return format("the model needs one <!-- ARTICOL START --> ... <!-- ARTICOL FINAL --> region with an h1.den_articol heading")
	case "meta charset":
		return format(`the model needs one <meta charset="...">`)
	}
	return ""
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
