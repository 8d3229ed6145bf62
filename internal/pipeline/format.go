package pipeline

import "strings"

// StyleRule assigns a paragraph class to body lines starting with Prefix.
type StyleRule struct {
	Prefix string
	Class  string
}

// StyleRules is the paragraph class lookup used by FormatContent.
// Rules are matched in order; the first prefix match wins.
type StyleRules struct {
	Default  string // class for plain body lines
	Emphasis string // class for the description paragraph
	Rules    []StyleRule
}

// DefaultStyleRules returns the classes used by the site's model template.
func DefaultStyleRules() StyleRules {
	return StyleRules{
		Default:  "text_obisnuit",
		Emphasis: "text_obisnuit2",
		Rules: []StyleRule{
			{Prefix: "Leadership:", Class: "text_obisnuit2"},
		},
	}
}

// classFor returns the class for an already trimmed body line.
func (s StyleRules) classFor(line string) string {
	for _, r := range s.Rules {
		if strings.HasPrefix(line, r.Prefix) {
			return r.Class
		}
	}
	return s.Default
}

// FormatContent renders the body as paragraph markup, one paragraph per
// non-blank line, preceded by an emphasized description paragraph when the
// description is not empty. Line order is preserved.
func FormatContent(body, description string, styles StyleRules) string {
	var paragraphs []string

	if description != "" {
		paragraphs = append(paragraphs, paragraph(styles.Emphasis, "<em>"+description+"</em>"))
	}

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		paragraphs = append(paragraphs, paragraph(styles.classFor(line), line))
	}

	return strings.Join(paragraphs, "\n")
}

func paragraph(class, inner string) string {
	return "\t\t<p class=\"" + class + "\">" + inner + "</p>"
}
