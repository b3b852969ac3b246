package mdproc

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// allowedStyleProps are the only per-image style overrides accepted from a
// source suffix like ![alt](img.png#width=300&height=200).
var allowedStyleProps = map[string]bool{"width": true, "height": true}

// ImageStyle selects the base inline style and img attributes per target.
type ImageStyle struct {
	BaseStyle string // always applied, overrides appended after it
	Align     string // optional align attribute value
}

// StaticImageStyle is used for static-site output.
var StaticImageStyle = ImageStyle{BaseStyle: "border-radius: 8px; max-width: 100%;"}

// HostedImageStyle is used for hosted-API output, which centers via the
// legacy align attribute its renderer understands.
var HostedImageStyle = ImageStyle{BaseStyle: "border-radius: 8px;", Align: "center"}

// RenderImages converts Markdown images into sanitized <figure> fragments.
// Alt text becomes the figcaption. Sources whose filename appears in ignore
// pass through unchanged. Style overrides from the #key=value suffix are
// filtered against allowedStyleProps and sanitized individually.
func RenderImages(body string, ignore map[string]bool, style ImageStyle, san *Sanitizer) string {
	return reImage.ReplaceAllStringFunc(body, func(match string) string {
		m := reImage.FindStringSubmatch(match)
		alt, src := m[1], m[2]

		for name := range ignore {
			if strings.Contains(src, name) {
				return match
			}
		}

		srcParts := strings.SplitN(src, "#", 2)
		cleanSrc := san.SanitizeInline(srcParts[0])

		inline := style.BaseStyle
		if len(srcParts) > 1 {
			if params, err := url.ParseQuery(srcParts[1]); err == nil {
				inline += styleOverrides(params, san)
			}
		}

		alignAttr := ""
		if style.Align != "" {
			alignAttr = fmt.Sprintf(" align=%q", style.Align)
		}

		var fragment string
		if alt != "" {
			cleanAlt := san.SanitizeInline(alt)
			fragment = fmt.Sprintf(
				`<figure><img src=%q alt=%q%s style=%q /><figcaption>%s</figcaption></figure>`,
				cleanSrc, cleanAlt, alignAttr, inline, cleanAlt)
		} else {
			fragment = fmt.Sprintf(`<figure><img src=%q%s style=%q /></figure>`,
				cleanSrc, alignAttr, inline)
		}

		return san.SanitizeImage(fragment)
	})
}

// styleOverrides builds the allow-listed style suffix from parsed fragment
// parameters, in deterministic key order.
func styleOverrides(params url.Values, san *Sanitizer) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		if allowedStyleProps[key] {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", san.SanitizeInline(key), san.SanitizeInline(params.Get(key))))
	}
	return " " + strings.Join(parts, "; ")
}
