package txt2html

import (
	"fmt"
	"strings"

	"github.com/alnah/go-txt2html/internal/pipeline"
)

// Diacritics policies.
const (
	// PolicyStripToASCII repairs mis-decoded characters, then strips
	// Romanian diacritics from title, description and body.
	PolicyStripToASCII Policy = "strip-to-ascii"

	// PolicyRepairAndKeep keeps title, description and body verbatim and
	// transliterates only the <title> and meta description to ASCII.
	PolicyRepairAndKeep Policy = "repair-and-keep"
)

// DefaultPolicy is used when no policy is specified.
const DefaultPolicy = PolicyStripToASCII

// Policy selects how accented characters are handled.
type Policy string

// policyAliases maps alternative names to their policy.
var policyAliases = map[string]Policy{
	"keep-diacritics": PolicyRepairAndKeep,
}

// ParsePolicy converts a policy name (case-insensitive) to a Policy.
// An empty name yields DefaultPolicy; "keep-diacritics" is accepted for
// PolicyRepairAndKeep.
func ParsePolicy(name string) (Policy, error) {
	if name == "" {
		return DefaultPolicy, nil
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	if p, ok := policyAliases[normalized]; ok {
		return p, nil
	}
	p := Policy(normalized)
	if err := p.Validate(); err != nil {
		return "", err
	}
	return p, nil
}

// Validate checks that p is a known policy.
func (p Policy) Validate() error {
	switch p {
	case PolicyStripToASCII, PolicyRepairAndKeep:
		return nil
	}
	return fmt.Errorf("%w: %q (must be %s or %s)", ErrInvalidPolicy, string(p), PolicyStripToASCII, PolicyRepairAndKeep)
}

// Site describes the website the pages are published to.
type Site struct {
	Domain    string // host name used in canonical and flag links, no scheme
	Brand     string // suffix of the <title> element, after "| "
	FlagImage string // src of the flag image whose anchor points at the page
}

// DefaultSite returns the settings of the site the model page comes from.
func DefaultSite() Site {
	return Site{
		Domain:    "neculaifantanaru.com",
		Brand:     "Neculai Fantanaru",
		FlagImage: "index_files/flag_lang_ro.jpg",
	}
}

// Validate checks that all site fields are set and the domain is a bare host.
func (s Site) Validate() error {
	if s.Domain == "" {
		return fmt.Errorf("%w: domain is required", ErrInvalidSite)
	}
	if strings.Contains(s.Domain, "://") || strings.ContainsAny(s.Domain, "/ \"") {
		return fmt.Errorf("%w: domain %q must be a host name without scheme or path", ErrInvalidSite, s.Domain)
	}
	if s.Brand == "" {
		return fmt.Errorf("%w: brand is required", ErrInvalidSite)
	}
	if s.FlagImage == "" {
		return fmt.Errorf("%w: flag image is required", ErrInvalidSite)
	}
	return nil
}

// StyleRule gives body lines starting with Prefix the paragraph class Class.
type StyleRule struct {
	Prefix string
	Class  string
}

// Styles configures the paragraph classes of the formatted body.
type Styles struct {
	Default  string      // class of plain body lines
	Emphasis string      // class of the description paragraph
	Rules    []StyleRule // first matching prefix wins
}

// DefaultStyles returns the classes used by the model page.
func DefaultStyles() Styles {
	d := pipeline.DefaultStyleRules()
	rules := make([]StyleRule, len(d.Rules))
	for i, r := range d.Rules {
		rules[i] = StyleRule{Prefix: r.Prefix, Class: r.Class}
	}
	return Styles{Default: d.Default, Emphasis: d.Emphasis, Rules: rules}
}

// Validate checks that every class is set and every rule has a prefix.
func (s Styles) Validate() error {
	if s.Default == "" {
		return fmt.Errorf("%w: default class is required", ErrInvalidStyles)
	}
	if s.Emphasis == "" {
		return fmt.Errorf("%w: emphasis class is required", ErrInvalidStyles)
	}
	for i, r := range s.Rules {
		if r.Prefix == "" {
			return fmt.Errorf("%w: rule %d has an empty prefix", ErrInvalidStyles, i)
		}
		if r.Class == "" {
			return fmt.Errorf("%w: rule %d (%q) has an empty class", ErrInvalidStyles, i, r.Prefix)
		}
		if strings.ContainsAny(r.Class, `"<>`) {
			return fmt.Errorf("%w: rule %d class %q contains markup characters", ErrInvalidStyles, i, r.Class)
		}
	}
	if strings.ContainsAny(s.Default+s.Emphasis, `"<>`) {
		return fmt.Errorf("%w: classes must not contain markup characters", ErrInvalidStyles)
	}
	return nil
}

// Article is one article of the input file.
type Article struct {
	Index       int // 1-based position in the input
	Title       string
	Description string
	Body        string
}

// Warning reports a model region that was left unchanged.
type Warning struct {
	Region  string // e.g. "canonical link"
	Missing bool   // true when the marker was not found, false when duplicated
	Message string
}

// Result is the rendered page of one article.
type Result struct {
	Article      Article // fields after character handling
	Slug         string
	FileName     string // Slug + ".html"
	CanonicalURL string
	HTML         string
	Warnings     []Warning
}

// Option configures a Service.
type Option func(*Service)

// WithPolicy sets the diacritics policy.
func WithPolicy(p Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithSite sets the site domain, brand and flag image.
func WithSite(site Site) Option {
	return func(s *Service) {
		s.site = site
	}
}

// WithStyles sets the paragraph classes.
func WithStyles(styles Styles) Option {
	return func(s *Service) {
		s.styles = styles
	}
}
