package docpress

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/docpress/docpress/internal/mdproc"
)

// rawGitHubURL is the CDN root for hosted-mode image URLs.
const rawGitHubURL = "https://raw.githubusercontent.com"

// editLinkToken is substituted in the edit-this-page snippet.
const editLinkToken = "!!LINK!!"

// Pipeline rewrites one document at a time for a fixed target. It is
// safe for concurrent use: all configuration is read-only after
// construction and each call works on its own document.
type Pipeline struct {
	target   Target
	source   string
	repoID   string
	editBase string
	ignore   Ignore
	san      *mdproc.Sanitizer
	conv     mdproc.HTMLConverter

	ignoreImages map[string]bool
	ignoreTables map[string]bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithTarget selects the rewrite target.
func WithTarget(t Target) Option {
	return func(p *Pipeline) { p.target = t }
}

// WithSource sets the docs source root. Snippet and table references
// resolve relative to each document's directory under this root.
func WithSource(dir string) Option {
	return func(p *Pipeline) { p.source = dir }
}

// WithRepoID sets the repository identifier used to build CDN image
// URLs in hosted mode, e.g. "org/repo/refs/heads/main/docs/figures".
func WithRepoID(id string) Option {
	return func(p *Pipeline) { p.repoID = id }
}

// WithEditPageBase enables the edit-this-page footer in hosted mode.
// The base is the repository edit URL prefix the document path is
// appended to.
func WithEditPageBase(base string) Option {
	return func(p *Pipeline) { p.editBase = strings.TrimSuffix(base, "/") }
}

// WithIgnore replaces the default ignore lists.
func WithIgnore(ig Ignore) Option {
	return func(p *Pipeline) { p.ignore = ig }
}

// WithConverter replaces the Markdown converter.
func WithConverter(conv mdproc.HTMLConverter) Option {
	return func(p *Pipeline) { p.conv = conv }
}

// NewPipeline builds a pipeline with the default ignore lists,
// sanitizer and Markdown converter.
func NewPipeline(opts ...Option) *Pipeline {
	p := &Pipeline{
		target: TargetStaticSite,
		ignore: DefaultIgnore(),
		san:    mdproc.NewSanitizer(),
		conv:   mdproc.NewGoldmarkConverter(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.ignoreImages = toSet(p.ignore.Images)
	p.ignoreTables = toSet(p.ignore.Tables)
	return p
}

// Target returns the pipeline's rewrite target.
func (p *Pipeline) Target() Target { return p.target }

// ProcessMarkdown runs the Markdown-to-Markdown rewriting passes on a
// document body: snippet inclusion, CSV tables, image and link
// rewriting, callout markers (hosted) and video embeds. The result is
// still Markdown; in hosted mode it is what the sync pushes.
func (p *Pipeline) ProcessMarkdown(doc Document) (string, error) {
	body := doc.Body
	docDir := filepath.Join(p.source, doc.Dir)

	if p.target == TargetHostedAPI {
		if p.repoID == "" {
			return "", ErrMissingRepoID
		}
		if p.editBase != "" {
			body = p.appendEditPageSnippet(body, doc)
		}
	}

	body = mdproc.ResolveSnippets(body, docDir, p.san.SanitizeDocument)
	if p.target == TargetHostedAPI && p.editBase != "" {
		body = strings.ReplaceAll(body, editLinkToken, p.editPageURL(doc))
	}
	// Only the hosted service enforces strict align values and skips
	// links naming placeholder docs; static output renders both
	// leniently.
	var validator mdproc.AlignValidator
	var ignoreDocs []string
	if p.target == TargetHostedAPI {
		validator = mdproc.ValidateAlign
		ignoreDocs = p.ignore.Docs
	}
	body = mdproc.RenderCSVTables(body, docDir, p.ignoreTables, validator, p.san)
	body = mdproc.RewriteImagePaths(body, p.ignoreImages, p.imageURL)
	body = mdproc.RewriteDocLinks(body, ignoreDocs, p.docRoute)

	switch p.target {
	case TargetHostedAPI:
		body = mdproc.ConvertCalloutsEmoji(body)
		body = mdproc.RenderImages(body, p.ignoreImages, mdproc.HostedImageStyle, p.san)
		body = mdproc.EmbedVideosHosted(body)
	default:
		body = mdproc.RenderImages(body, p.ignoreImages, mdproc.StaticImageStyle, p.san)
		body = mdproc.EmbedVideosStatic(body)
	}
	return body, nil
}

// Render runs the full conversion to an HTML fragment: the rewriting
// passes, then target-specific code handling, Markdown conversion and
// placeholder restoration. Static output additionally gets heading
// anchors; hosted output is sanitized as a whole document.
func (p *Pipeline) Render(ctx context.Context, doc Document) (string, error) {
	body, err := p.ProcessMarkdown(doc)
	if err != nil {
		return "", err
	}

	ext := &mdproc.Extraction{}
	switch p.target {
	case TargetHostedAPI:
		body = mdproc.PreserveMathBlocks(body, ext)
	default:
		body = mdproc.ConvertCalloutsStructural(body, func(inner string) (string, error) {
			return p.renderFragment(ctx, inner)
		})
		body = mdproc.HighlightCodeBlocks(body, ext)
	}

	content, err := p.conv.ToHTML(ctx, body)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrRenderFailed, doc.Slug, err)
	}
	content = ext.Restore(content)

	if p.target == TargetHostedAPI {
		return p.san.SanitizeDocument(content), nil
	}
	return mdproc.InjectHeadingAnchors(content)
}

// renderFragment converts a Markdown fragment in isolation, with its
// own code-block extraction.
func (p *Pipeline) renderFragment(ctx context.Context, markdown string) (string, error) {
	ext := &mdproc.Extraction{}
	body := mdproc.HighlightCodeBlocks(markdown, ext)
	content, err := p.conv.ToHTML(ctx, body)
	if err != nil {
		return "", err
	}
	return ext.Restore(content), nil
}

// imageURL maps a figures-relative image path to its published
// location.
func (p *Pipeline) imageURL(subpath string) string {
	if p.target == TargetHostedAPI {
		return rawGitHubURL + "/" + p.repoID + "/" + subpath
	}
	return "assets/" + subpath
}

// docRoute maps a document slug and optional fragment to its
// published link.
func (p *Pipeline) docRoute(slug, fragment string) string {
	if p.target == TargetHostedAPI {
		return "/docs/" + slug + fragment
	}
	return slug + ".html" + fragment
}

// appendEditPageSnippet references the shared edit-this-page snippet
// from the document's depth so the resolver finds it at the source
// root.
func (p *Pipeline) appendEditPageSnippet(body string, doc Document) string {
	depth := 0
	if doc.Dir != "" {
		depth = strings.Count(filepath.ToSlash(doc.Dir), "/") + 1
	}
	rel := strings.Repeat("../", depth) + "snippets/edit-this-page.md"
	return body + "\n\n!snippet[" + rel + "]"
}

// editPageURL builds the repository edit URL for a document.
func (p *Pipeline) editPageURL(doc Document) string {
	parts := []string{p.editBase}
	if doc.Dir != "" {
		parts = append(parts, filepath.ToSlash(doc.Dir))
	}
	parts = append(parts, doc.Slug+".md")
	return strings.Join(parts, "/")
}
