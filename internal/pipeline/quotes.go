package pipeline

import (
	"regexp"
	"strings"
)

var (
	// An opening or self-contained tag.
	tagMarkup = regexp.MustCompile(`<[a-zA-Z][^<>]*>`)

	// A doubled quote, with the preceding = when it is an empty value.
	doubledQuote = regexp.MustCompile(`=?""`)
)

// QuoteAttrValue makes s safe inside a double-quoted attribute by turning
// its double quotes into single quotes.
func QuoteAttrValue(s string) string {
	return strings.ReplaceAll(s, `"`, `'`)
}

// NormalizeQuotes collapses doubled quotes inside tag markup after
// splicing. An empty value (="") is kept, and text outside tags (scripts,
// paragraphs) never loses a quote. Spliced values carry no double quotes
// already: QuoteAttrValue turns them into single quotes at insertion.
func NormalizeQuotes(doc string) string {
	return tagMarkup.ReplaceAllStringFunc(doc, collapseDoubledQuotes)
}

func collapseDoubledQuotes(tag string) string {
	return doubledQuote.ReplaceAllStringFunc(tag, func(m string) string {
		if strings.HasPrefix(m, "=") {
			return m
		}
		return `"`
	})
}
