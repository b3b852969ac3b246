package docpress

import (
	"context"
	"fmt"
	"html"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/docpress/docpress/internal/assets"
	"github.com/docpress/docpress/internal/config"
	"github.com/docpress/docpress/internal/fileutil"
	"github.com/docpress/docpress/internal/mdproc"
)

// SiteGenerator writes a complete static site from a docs tree: one
// HTML page per document in the hierarchy, an index page, copied
// figures and the embedded stylesheet and script.
type SiteGenerator struct {
	source   string
	output   string
	pipeline *Pipeline

	// Logf reports progress when set. The zero value is silent.
	Logf func(format string, args ...any)
}

// NewSiteGenerator creates a generator writing to output. A nil
// pipeline gets a default static pipeline rooted at source.
func NewSiteGenerator(source, output string, pipeline *Pipeline) *SiteGenerator {
	if pipeline == nil {
		pipeline = NewPipeline(WithTarget(TargetStaticSite), WithSource(source))
	}
	return &SiteGenerator{source: source, output: output, pipeline: pipeline}
}

func (g *SiteGenerator) logf(format string, args ...any) {
	if g.Logf != nil {
		g.Logf(format, args...)
	}
}

// Generate builds the whole site. Documents referenced by the
// hierarchy but missing on disk are logged and skipped; everything
// else failing is an error.
func (g *SiteGenerator) Generate(ctx context.Context) error {
	if g.source == "" {
		return ErrMissingSource
	}
	hierarchy, err := config.LoadHierarchy(g.source)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSiteGeneration, err)
	}

	if err := g.writeStaticFiles(); err != nil {
		return fmt.Errorf("%w: %v", ErrSiteGeneration, err)
	}
	if err := g.copyFigures(); err != nil {
		return fmt.Errorf("%w: %v", ErrSiteGeneration, err)
	}

	for _, category := range hierarchy.Categories {
		g.logf("processing category %s", category.Slug)
		crumbs := []breadcrumb{
			{Name: "Home", Link: "index.html"},
			{Name: category.Title},
		}
		if err := g.generateDocs(ctx, hierarchy, category.Children, category.Slug, crumbs); err != nil {
			return err
		}
	}

	if err := g.generateIndex(ctx, hierarchy); err != nil {
		return err
	}
	g.logf("site written to %s", g.output)
	return nil
}

// generateDocs renders a document list depth-first. dir is the
// source-relative directory the documents live in.
func (g *SiteGenerator) generateDocs(ctx context.Context, hierarchy *config.Hierarchy, docs []config.Doc, dir string, crumbs []breadcrumb) error {
	for _, d := range docs {
		docCrumbs := append(append([]breadcrumb{}, crumbs...), breadcrumb{
			Name: TitleFromSlug(d.Slug),
			Link: d.Slug + ".html",
		})

		if err := g.generateDoc(ctx, hierarchy, d, dir, docCrumbs); err != nil {
			return err
		}
		if len(d.Children) > 0 {
			childDir := filepath.Join(dir, d.Slug)
			if err := g.generateDocs(ctx, hierarchy, d.Children, childDir, docCrumbs); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *SiteGenerator) generateDoc(ctx context.Context, hierarchy *config.Hierarchy, node config.Doc, dir string, crumbs []breadcrumb) error {
	doc, err := g.loadDocument(node.Slug, dir)
	if err != nil {
		// A slug in the hierarchy without a file is tolerated so a
		// partially written tree still generates.
		g.logf("skipping %s: %v", node.Slug, err)
		return nil
	}

	content, err := g.pipeline.Render(ctx, doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSiteGeneration, err)
	}

	page, err := g.renderPage(doc.Title, content, buildNav(hierarchy, doc.Slug), crumbs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSiteGeneration, err)
	}
	out := filepath.Join(g.output, doc.Slug+".html")
	if err := fileutil.WriteText(out, page); err != nil {
		return fmt.Errorf("%w: %v", ErrSiteGeneration, err)
	}
	g.logf("generated %s.html", doc.Slug)
	return nil
}

// loadDocument reads <source>/<dir>/<slug>.md and parses its front
// matter. A document without front matter keeps a slug-derived title.
func (g *SiteGenerator) loadDocument(slug, dir string) (Document, error) {
	path := filepath.Join(g.source, dir, slug+".md")
	content, err := fileutil.ReadText(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %q", ErrDocFileMissing, path)
	}

	doc := Document{Slug: slug, Dir: dir, Title: TitleFromSlug(slug)}
	fm, body, err := mdproc.ParseDocument(content)
	doc.Body = body
	if err == nil {
		if fm.Title != "" {
			doc.Title = fm.Title
		}
		doc.Hidden = fm.Hidden
		doc.Description = fm.Description
	}
	return doc, nil
}

// generateIndex writes index.html from the first document of the
// first category, or a welcome page when the hierarchy has no
// documents.
func (g *SiteGenerator) generateIndex(ctx context.Context, hierarchy *config.Hierarchy) error {
	first := hierarchy.Categories[0]
	if len(first.Children) == 0 {
		page, err := g.renderPage("Home", welcomeContent, buildNav(hierarchy, ""), nil)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSiteGeneration, err)
		}
		return fileutil.WriteText(filepath.Join(g.output, "index.html"), page)
	}

	node := first.Children[0]
	doc, err := g.loadDocument(node.Slug, first.Slug)
	if err != nil {
		g.logf("skipping index: %v", err)
		return nil
	}
	content, err := g.pipeline.Render(ctx, doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSiteGeneration, err)
	}
	page, err := g.renderPage(doc.Title, content, buildNav(hierarchy, node.Slug), nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSiteGeneration, err)
	}
	return fileutil.WriteText(filepath.Join(g.output, "index.html"), page)
}

// writeStaticFiles writes the embedded stylesheet and script plus the
// generated highlight stylesheet.
func (g *SiteGenerator) writeStaticFiles() error {
	highlightCSS, err := mdproc.HighlightCSS()
	if err != nil {
		return err
	}
	files := map[string]string{
		filepath.Join("css", "style.css"):     assets.Style(),
		filepath.Join("css", "highlight.css"): highlightCSS,
		filepath.Join("js", "main.js"):        assets.Script(),
	}
	for name, content := range files {
		if err := fileutil.WriteText(filepath.Join(g.output, name), content); err != nil {
			return err
		}
	}
	g.logf("static files written")
	return nil
}

// copyFigures mirrors image files from <source>/figures into
// <output>/assets, preserving subdirectories.
func (g *SiteGenerator) copyFigures() error {
	figures := filepath.Join(g.source, "figures")
	if _, err := os.Stat(figures); os.IsNotExist(err) {
		return nil
	}

	return filepath.WalkDir(figures, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !fileutil.IsImageFile(path) {
			return err
		}
		rel, err := filepath.Rel(figures, path)
		if err != nil {
			return err
		}
		return fileutil.CopyFile(path, filepath.Join(g.output, "assets", rel))
	})
}

type breadcrumb struct {
	Name string
	Link string
}

const welcomeContent = `<div style="text-align: center; padding: 40px 0;">
<h2>Welcome to the Documentation</h2>
<p>Select a topic from the navigation to get started.</p>
</div>`

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - Documentation</title>
    <link rel="stylesheet" href="css/style.css">
    <link rel="stylesheet" href="css/highlight.css">
</head>
<body>
    {{.Nav}}
    <main class="content">
        {{.Breadcrumbs}}
        <article>
            <h1>{{.Title}}</h1>
            {{.Content}}
        </article>
        <footer>
            <p>Generated with docpress</p>
        </footer>
    </main>
    <script src="js/main.js"></script>
</body>
</html>
`))

type pageData struct {
	Title       string
	Nav         template.HTML
	Breadcrumbs template.HTML
	Content     template.HTML
}

// renderPage fills the page shell. Nav, breadcrumbs and content are
// trusted: they are built here from escaped titles and pipeline
// output whose spliced fragments are sanitized.
func (g *SiteGenerator) renderPage(title, content, nav string, crumbs []breadcrumb) (string, error) {
	var buf strings.Builder
	err := pageTemplate.Execute(&buf, pageData{
		Title:       title,
		Nav:         template.HTML(nav),                      // #nosec G203 -- built from escaped titles
		Breadcrumbs: template.HTML(buildBreadcrumbs(crumbs)), // #nosec G203
		Content:     template.HTML(content),                  // #nosec G203 -- sanitized fragments
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func buildBreadcrumbs(crumbs []breadcrumb) string {
	if len(crumbs) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="breadcrumbs">`)
	for i, c := range crumbs {
		if i > 0 {
			b.WriteString(" &gt; ")
		}
		if c.Link != "" {
			fmt.Fprintf(&b, `<a href="%s">%s</a>`, c.Link, html.EscapeString(c.Name))
		} else {
			b.WriteString(html.EscapeString(c.Name))
		}
	}
	b.WriteString("</div>")
	return b.String()
}

// buildNav renders the sidebar for the whole hierarchy, marking the
// current document active and collapsing nested lists.
func buildNav(hierarchy *config.Hierarchy, currentSlug string) string {
	var b strings.Builder
	b.WriteString(`<nav class="sidebar"><div class="nav-header">Documentation</div><ul class="nav-list">`)
	for _, category := range hierarchy.Categories {
		b.WriteString(`<li class="nav-category">`)
		fmt.Fprintf(&b, `<div class="category-title">%s</div>`, html.EscapeString(category.Title))
		b.WriteString(`<ul class="nav-sublist">`)
		for _, d := range category.Children {
			writeNavItem(&b, d, currentSlug, 0)
		}
		b.WriteString("</ul></li>")
	}
	b.WriteString("</ul></nav>")
	return b.String()
}

func writeNavItem(b *strings.Builder, d config.Doc, currentSlug string, level int) {
	liClass := ""
	if level > 0 {
		liClass = fmt.Sprintf("indent-%d", level)
	}
	fmt.Fprintf(b, `<li class="%s" data-slug="%s">`, liClass, d.Slug)

	var linkClasses []string
	if d.Slug == currentSlug {
		linkClasses = append(linkClasses, "active")
	}
	if len(d.Children) > 0 {
		linkClasses = append(linkClasses, "has-children")
	}
	classAttr := ""
	if len(linkClasses) > 0 {
		classAttr = fmt.Sprintf(` class="%s"`, strings.Join(linkClasses, " "))
	}

	title := html.EscapeString(TitleFromSlug(d.Slug))
	if len(d.Children) > 0 {
		fmt.Fprintf(b, `<a href="%s.html"%s><span class="has-children-indicator">&rsaquo; </span>%s</a>`,
			d.Slug, classAttr, title)
		b.WriteString(`<ul class="nav-sublist collapsed">`)
		for _, child := range d.Children {
			writeNavItem(b, child, currentSlug, level+1)
		}
		b.WriteString("</ul>")
	} else {
		fmt.Fprintf(b, `<a href="%s.html"%s>%s</a>`, d.Slug, classAttr, title)
	}
	b.WriteString("</li>")
}
