package pipeline

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrMalformedArticle is returned for a chunk that has no title line.
var ErrMalformedArticle = errors.New("malformed article: missing title")

var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// A delimiter is a line starting with three hyphens, consumed to its end.
	articleDelimiter = regexp.MustCompile(`(?ms)^---.*?$`)
)

// Article is one delimited unit of the input file.
type Article struct {
	Title       string
	Description string
	Body        string
}

// NormalizeText converts \r\n and \r to \n and composes Unicode to NFC,
// so that decomposed diacritics match the repair and strip tables.
func NormalizeText(content string) string {
	content = crlfOrCR.ReplaceAllString(content, "\n")
	return norm.NFC.String(content)
}

// SplitArticles splits raw input into article chunks.
// Text before the first delimiter line is a preamble and is discarded.
// Input without any delimiter yields an empty slice.
func SplitArticles(content string) []string {
	parts := articleDelimiter.Split(NormalizeText(content), -1)
	if len(parts) <= 1 {
		return []string{}
	}
	return parts[1:]
}

// ParseArticle extracts the fields of a chunk.
// Line one is the title, line two is reserved, line three is the
// description, and everything after it is the body.
func ParseArticle(chunk string) (Article, error) {
	lines := strings.Split(strings.TrimSpace(chunk), "\n")

	title := strings.TrimSpace(lines[0])
	if title == "" {
		return Article{}, ErrMalformedArticle
	}

	article := Article{Title: title}
	if len(lines) > 2 {
		article.Description = strings.TrimSpace(lines[2])
	}
	if len(lines) > 3 {
		article.Body = strings.Join(lines[3:], "\n")
	}
	return article, nil
}
