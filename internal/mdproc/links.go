package mdproc

import (
	"fmt"
	"strings"
)

// RewriteImagePaths rewrites relative figure paths to the target addressing
// scheme produced by resolve, which maps the figure subpath (e.g.
// "overview/arch.png") to its final address. Filenames present in ignore are
// left byte-for-byte unchanged. Both Markdown-image sources and raw <img>
// src attributes are handled.
//
// Idempotent: rewritten addresses no longer match the figure-path pattern.
func RewriteImagePaths(body string, ignore map[string]bool, resolve func(subpath string) string) string {
	// <img> tags first: the figure path is embedded inside the src attribute,
	// which the bare pattern pass below would also hit but without attribute
	// context.
	body = reImgTag.ReplaceAllStringFunc(body, func(tag string) string {
		src := reImgTag.FindStringSubmatch(tag)[1]
		if !strings.Contains(src, "../figures/") {
			return tag
		}
		m := reFigurePath.FindStringSubmatch(src)
		if m == nil || ignore[m[2]] {
			return tag
		}
		return strings.Replace(tag, src, resolve(m[2]), 1)
	})

	return reFigurePath.ReplaceAllStringFunc(body, func(match string) string {
		subpath := reFigurePath.FindStringSubmatch(match)[2]
		if ignore[subpath] {
			return match
		}
		return resolve(subpath)
	})
}

// RewriteDocLinks rewrites internal (path.md#fragment) links to the target
// routing scheme produced by route, which maps a slug and fragment to the
// final link target. Only the last path segment is kept as the slug. Links
// whose text contains any of the ignore placeholders pass through unchanged.
//
// Idempotent: rewritten links no longer carry a .md suffix.
func RewriteDocLinks(body string, ignore []string, route func(slug, fragment string) string) string {
	return reDocLink.ReplaceAllStringFunc(body, func(match string) string {
		for _, placeholder := range ignore {
			if strings.Contains(match, placeholder) {
				return match
			}
		}
		m := reDocLink.FindStringSubmatch(match)
		segs := strings.Split(m[2], "/")
		slug := segs[len(segs)-1]
		return fmt.Sprintf("(%s)", route(slug, m[3]))
	})
}
