package mdproc

import "github.com/microcosm-cc/bluemonday"

// Sanitizer holds the allowlist policies applied to generated fragments and
// whole-document bodies. Policies are built once and are safe for reuse;
// bluemonday policies are concurrency-safe after construction.
type Sanitizer struct {
	image    *bluemonday.Policy
	table    *bluemonday.Policy
	document *bluemonday.Policy
	inline   *bluemonday.Policy
}

// NewSanitizer builds the three policies.
//
// The image and table policies are narrow: exactly the tags and attributes
// those fragments emit. The document policy is the broad allowlist used on
// whole bodies in hosted mode: a UGC baseline extended with styling, anchor,
// label and data-attribute support. Script bodies are dropped entirely, not
// just the tags.
func NewSanitizer() *Sanitizer {
	img := bluemonday.NewPolicy()
	img.AllowStandardURLs()
	img.AllowElements("figure", "figcaption")
	img.AllowAttrs("src", "alt", "style", "align").OnElements("img")
	img.AllowElements("img")
	img.SkipElementsContent("script", "style")

	tbl := bluemonday.NewPolicy()
	tbl.AllowElements("table", "thead", "tbody", "tr")
	tbl.AllowAttrs("class").OnElements("div")
	tbl.AllowElements("div")
	tbl.AllowAttrs("title", "style").OnElements("th")
	tbl.AllowAttrs("style").OnElements("td")
	tbl.SkipElementsContent("script", "style")

	doc := bluemonday.UGCPolicy()
	doc.AllowElements("style", "label", "figure", "figcaption", "video", "source", "iframe")
	// label is not in bluemonday's default bare-element set, so an
	// attribute-less <label> would be dropped without this.
	doc.AllowNoAttrs().OnElements("label")
	doc.AllowAttrs("width", "style", "target", "class").Globally()
	doc.AllowDataAttributes()
	doc.AllowAttrs("controls", "poster", "height").OnElements("video")
	doc.AllowAttrs("src", "type").OnElements("source")
	doc.AllowAttrs("src", "title", "height", "frameborder", "allow", "allowfullscreen", "scrolling").OnElements("iframe")
	doc.SkipElementsContent("script")

	return &Sanitizer{image: img, table: tbl, document: doc, inline: bluemonday.StrictPolicy()}
}

// SanitizeImage cleans a generated <figure> fragment.
func (s *Sanitizer) SanitizeImage(fragment string) string {
	return s.image.Sanitize(fragment)
}

// SanitizeTable cleans a generated table fragment.
func (s *Sanitizer) SanitizeTable(fragment string) string {
	return s.table.Sanitize(fragment)
}

// SanitizeDocument cleans a whole document body with the broad allowlist.
func (s *Sanitizer) SanitizeDocument(body string) string {
	return s.document.Sanitize(body)
}

// SanitizeInline cleans a short text value (alt text, src, style parameter)
// down to bare text, stripping any markup.
func (s *Sanitizer) SanitizeInline(text string) string {
	return s.inline.Sanitize(text)
}
