package docpress

import "strings"

// Target selects the output the pipeline rewrites for.
type Target int

const (
	// TargetStaticSite produces self-contained HTML pages with local
	// asset paths and .html links.
	TargetStaticSite Target = iota
	// TargetHostedAPI produces Markdown for the hosted docs service,
	// with CDN image URLs and /docs/ links.
	TargetHostedAPI
)

// String returns the target name.
func (t Target) String() string {
	switch t {
	case TargetStaticSite:
		return "static"
	case TargetHostedAPI:
		return "hosted"
	default:
		return "unknown"
	}
}

// Document is one Markdown source file flowing through the pipeline.
type Document struct {
	Slug        string // output filename and link target
	Title       string // from front matter, or derived from the slug
	Body        string // Markdown body, front matter stripped
	Dir         string // containing directory relative to the source root
	Hidden      bool
	Description string
}

// Ignore lists name example artifacts that rewriting passes must leave
// untouched. The lists are read-only once the pipeline is built.
type Ignore struct {
	Docs   []string // doc slugs excluded from link rewriting in hosted mode
	Images []string // image filenames excluded from path and figure rewriting
	Tables []string // CSV filenames excluded from table rendering

	// ExternalURLs lists citation domains exempt from link checking.
	// No rewrite pass consults it; it is carried for tooling that
	// validates outbound links.
	ExternalURLs []string
}

// DefaultIgnore returns the standard example artifacts shipped with
// the docs tree for testing the tooling itself.
func DefaultIgnore() Ignore {
	return Ignore{
		Docs:   []string{"placeholder-example-doc", "some-existing-doc"},
		Images: []string{"docs-only-example.png"},
		Tables: []string{"example-table-for-docs.csv"},
		ExternalURLs: []string{
			"openai.com",
			"science.org",
			"annualreviews.org",
			"sciencedirect.com",
		},
	}
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// TitleFromSlug derives a display title from a slug, e.g.
// "getting-started" becomes "Getting Started".
func TitleFromSlug(slug string) string {
	words := strings.Split(slug, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
