package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// Region names a marker region of the model template.
type Region string

// Marker regions rewritten by the splicer.
const (
	RegionTitle       Region = "title"
	RegionDescription Region = "meta description"
	RegionCanonical   Region = "canonical link"
	RegionFlagLink    Region = "flag link"
	RegionArticleBody Region = "article body"
	RegionCharset     Region = "meta charset"
)

// WarningKind tells why a region was left untouched.
type WarningKind string

// Warning kinds.
const (
	MarkerMissing    WarningKind = "missing"
	MarkerDuplicated WarningKind = "duplicated"
)

// Warning reports a region the splicer could not rewrite.
type Warning struct {
	Region Region
	Kind   WarningKind
	Count  int // number of matches found
}

func (w Warning) String() string {
	if w.Kind == MarkerMissing {
		return fmt.Sprintf("%s marker not found in model, left unchanged", w.Region)
	}
	return fmt.Sprintf("%s marker found %d times in model, left unchanged", w.Region, w.Count)
}

// SiteMarkers identifies the site-specific parts of the marker regions.
type SiteMarkers struct {
	Domain    string // e.g. "neculaifantanaru.com"
	Brand     string // suffix of the <title> element
	FlagImage string // src of the image wrapped by the flag link
}

// Fields are the per-article values spliced into the model.
type Fields struct {
	Slug         string
	Title        string // <title> inner text, before the brand suffix
	Description  string // meta description content
	HeadingTitle string // article <h1> text
	Content      string // formatted body markup
	Charset      string // empty leaves <meta charset> untouched
}

// Splicer rewrites the marker regions of a model template.
// It holds compiled matchers only and is safe to reuse across articles.
type Splicer struct {
	site        SiteMarkers
	title       *regexp.Regexp
	description *regexp.Regexp
	canonical   *regexp.Regexp
	flagLink    *regexp.Regexp
	articleBody *regexp.Regexp
	charset     *regexp.Regexp
}

// articleBodyPattern captures: 1=start through the <h1> opening,
// 2=heading close through the end of its table, 3=body, 4=closing markers.
const articleBodyPattern = `(?s)(<!-- ARTICOL START -->.*?<table.*?<td><h1 class="den_articol" itemprop="name">).*?` +
	`(</h1></td>.*?</table>\s*)(.*?)` +
	`(</div>\s*<p align="justify" class="text_obisnuit style3">&nbsp;</p>\s*<!-- ARTICOL FINAL -->)`

// NewSplicer compiles the region matchers for a site.
func NewSplicer(site SiteMarkers) *Splicer {
	domain := regexp.QuoteMeta(site.Domain)
	return &Splicer{
		site:        site,
		title:       regexp.MustCompile(`(<title>)[^<]*?(\| ` + regexp.QuoteMeta(site.Brand) + `</title>)`),
		description: regexp.MustCompile(`(<meta name="description" content=")[^"]*(")`),
		canonical:   regexp.MustCompile(`(<link rel="canonical" href=")https://` + domain + `/[^"]*(")`),
		flagLink:    regexp.MustCompile(`(<a href=")https://` + domain + `/[^"]*("><img src="` + regexp.QuoteMeta(site.FlagImage) + `"[^>]*>)`),
		articleBody: regexp.MustCompile(articleBodyPattern),
		charset:     regexp.MustCompile(`(<meta charset=")[^"]*(">)`),
	}
}

// CanonicalURL returns the public URL of the page for slug.
func (s *Splicer) CanonicalURL(slug string) string {
	return "https://" + s.site.Domain + "/" + slug + ".html"
}

// Splice returns a copy of model with every region rewritten from f.
// A region that matches zero times, or more often than expected, is left
// as is and reported in the returned warnings.
func (s *Splicer) Splice(model string, f Fields) (string, []Warning) {
	var warnings []Warning
	collect := func(doc string, w *Warning) string {
		if w != nil {
			warnings = append(warnings, *w)
		}
		return doc
	}

	canonical := s.CanonicalURL(f.Slug)

	doc := model
	doc = collect(s.spliceTitle(doc, f.Title))
	doc = collect(s.spliceMetaDescription(doc, f.Description))
	doc = collect(s.spliceCanonical(doc, canonical))
	doc = collect(s.spliceFlagLink(doc, canonical))
	doc = collect(s.spliceArticleBody(doc, f.HeadingTitle, f.Content))
	if f.Charset != "" {
		doc = collect(s.spliceCharset(doc, f.Charset))
	}
	return doc, warnings
}

// spliceTitle replaces the text of <title>…| Brand</title>, keeping the
// brand suffix. Expects exactly one match.
func (s *Splicer) spliceTitle(doc, title string) (string, *Warning) {
	return replaceSingle(doc, s.title, RegionTitle, func(m []string) string {
		return m[1] + title + " " + m[2]
	})
}

// spliceMetaDescription replaces the content attribute of the description
// meta tag. Expects exactly one match.
func (s *Splicer) spliceMetaDescription(doc, description string) (string, *Warning) {
	return replaceSingle(doc, s.description, RegionDescription, func(m []string) string {
		return m[1] + QuoteAttrValue(description) + m[2]
	})
}

// spliceCanonical points the canonical link at url. Expects exactly one
// canonical link on the site's domain.
func (s *Splicer) spliceCanonical(doc, url string) (string, *Warning) {
	return replaceSingle(doc, s.canonical, RegionCanonical, func(m []string) string {
		return m[1] + QuoteAttrValue(url) + m[2]
	})
}

// spliceFlagLink points the first anchor wrapping the flag image at url.
// Later flag anchors are left alone; only a missing anchor is reported.
func (s *Splicer) spliceFlagLink(doc, url string) (string, *Warning) {
	loc := s.flagLink.FindStringSubmatchIndex(doc)
	if loc == nil {
		return doc, &Warning{Region: RegionFlagLink, Kind: MarkerMissing}
	}
	replacement := doc[loc[2]:loc[3]] + QuoteAttrValue(url) + doc[loc[4]:loc[5]]
	return doc[:loc[0]] + replacement + doc[loc[1]:], nil
}

// spliceArticleBody rewrites the <h1> heading and the body between the
// heading's table and the closing markers. Expects exactly one article
// region.
func (s *Splicer) spliceArticleBody(doc, heading, content string) (string, *Warning) {
	return replaceSingle(doc, s.articleBody, RegionArticleBody, func(m []string) string {
		return m[1] + heading + m[2] + "\n" + content + "\n" + m[4]
	})
}

// spliceCharset sets the value of <meta charset>. Expects exactly one match.
func (s *Splicer) spliceCharset(doc, charset string) (string, *Warning) {
	return replaceSingle(doc, s.charset, RegionCharset, func(m []string) string {
		return m[1] + QuoteAttrValue(charset) + m[2]
	})
}

// replaceSingle replaces the only match of re with build(submatches).
// Zero or several matches leave doc unchanged and return a warning.
// The replacement is inserted literally, without $ expansion.
func replaceSingle(doc string, re *regexp.Regexp, region Region, build func(m []string) string) (string, *Warning) {
	locs := re.FindAllStringSubmatchIndex(doc, 2)
	switch len(locs) {
	case 0:
		return doc, &Warning{Region: region, Kind: MarkerMissing}
	case 1:
	default:
		count := len(re.FindAllStringIndex(doc, -1))
		return doc, &Warning{Region: region, Kind: MarkerDuplicated, Count: count}
	}

	loc := locs[0]
	groups := make([]string, len(loc)/2)
	for i := range groups {
		if loc[2*i] >= 0 {
			groups[i] = doc[loc[2*i]:loc[2*i+1]]
		}
	}

	var b strings.Builder
	b.Grow(len(doc))
	b.WriteString(doc[:loc[0]])
	b.WriteString(build(groups))
	b.WriteString(doc[loc[1]:])
	return b.String(), nil
}
