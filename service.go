package txt2html

import (
	"fmt"

	"github.com/alnah/go-txt2html/internal/pipeline"
)

// keepCharset is forced into <meta charset> when diacritics are kept.
const keepCharset = "UTF-8"

// Service renders articles into pages of a model template.
// A Service holds no per-article state and may be reused for a whole batch.
type Service struct {
	policy  Policy
	site    Site
	styles  Styles
	splicer *pipeline.Splicer
	repair  pipeline.ReplacementTable
	strip   pipeline.ReplacementTable
}

// New creates a Service with the default policy, site and styles.
// Use options to customize behavior (e.g., WithPolicy, WithSite).
// Returns error if an option carries invalid settings.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		policy: DefaultPolicy,
		site:   DefaultSite(),
		styles: DefaultStyles(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.policy.Validate(); err != nil {
		return nil, err
	}
	if err := s.site.Validate(); err != nil {
		return nil, err
	}
	if err := s.styles.Validate(); err != nil {
		return nil, err
	}

	s.splicer = pipeline.NewSplicer(pipeline.SiteMarkers{
		Domain:    s.site.Domain,
		Brand:     s.site.Brand,
		FlagImage: s.site.FlagImage,
	})
	s.repair = pipeline.RepairTable()
	s.strip = pipeline.StripTable()

	return s, nil
}

// Policy returns the diacritics policy in use.
func (s *Service) Policy() Policy {
	return s.policy
}

// Split returns the article chunks of the input text, in order.
// The text before the first delimiter line is dropped; input without
// delimiters yields no chunks.
func Split(content string) []string {
	return pipeline.SplitArticles(content)
}

// ParseArticle extracts title, description and body from a chunk.
// Returns ErrMalformedArticle if the chunk has no title.
func ParseArticle(chunk string, index int) (Article, error) {
	a, err := pipeline.ParseArticle(chunk)
	if err != nil {
		return Article{}, fmt.Errorf("article %d: %w", index, err)
	}
	return Article{
		Index:       index,
		Title:       a.Title,
		Description: a.Description,
		Body:        a.Body,
	}, nil
}

// Render builds the page of one article from model.
// Regions of the model that cannot be rewritten are reported in
// Result.Warnings and left as they are.
func (s *Service) Render(model string, article Article) (*Result, error) {
	if model == "" {
		return nil, ErrEmptyModel
	}

	article = s.applyPolicy(article)

	slug := pipeline.Slugify(article.Title)
	if slug == "" {
		return nil, fmt.Errorf("article %d: %w: %q", article.Index, ErrEmptySlug, article.Title)
	}

	cleanTitle := pipeline.CleanHeadField(article.Title)
	cleanDesc := pipeline.CleanHeadField(article.Description)

	fields := pipeline.Fields{
		Slug:         slug,
		Title:        cleanTitle,
		Description:  cleanDesc,
		HeadingTitle: cleanTitle,
		Content: pipeline.FormatContent(article.Body, article.Description, pipeline.StyleRules{
			Default:  s.styles.Default,
			Emphasis: s.styles.Emphasis,
			Rules:    toStyleRules(s.styles.Rules),
		}),
	}
	if s.policy == PolicyRepairAndKeep {
		fields.Title = pipeline.Transliterate(cleanTitle)
		fields.Description = pipeline.Transliterate(cleanDesc)
		fields.Charset = keepCharset
	}

	doc, warnings := s.splicer.Splice(model, fields)
	doc = pipeline.NormalizeQuotes(doc)

	return &Result{
		Article:      article,
		Slug:         slug,
		FileName:     slug + ".html",
		CanonicalURL: s.splicer.CanonicalURL(slug),
		HTML:         doc,
		Warnings:     toWarnings(warnings),
	}, nil
}

// applyPolicy returns the article fields as the policy wants them in the
// body. Only PolicyStripToASCII alters them.
func (s *Service) applyPolicy(a Article) Article {
	if s.policy != PolicyStripToASCII {
		return a
	}
	fix := func(v string) string {
		return s.strip.Apply(s.repair.Apply(v))
	}
	a.Title = fix(a.Title)
	a.Description = fix(a.Description)
	a.Body = fix(a.Body)
	return a
}

func toStyleRules(rules []StyleRule) []pipeline.StyleRule {
	out := make([]pipeline.StyleRule, len(rules))
	for i, r := range rules {
		out[i] = pipeline.StyleRule{Prefix: r.Prefix, Class: r.Class}
	}
	return out
}

func toWarnings(ws []pipeline.Warning) []Warning {
	if len(ws) == 0 {
		return nil
	}
	out := make([]Warning, len(ws))
	for i, w := range ws {
		out[i] = Warning{
			Region:  string(w.Region),
			Missing: w.Kind == pipeline.MarkerMissing,
			Message: w.String(),
		}
	}
	return out
}
