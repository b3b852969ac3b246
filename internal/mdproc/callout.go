package mdproc

import (
	"fmt"
	"strings"
)

// calloutKind describes one admonition class: its container class, label and
// the emoji the hosted service renders natively.
type calloutKind struct {
	class string
	label string
	emoji string
}

var calloutKinds = map[string]calloutKind{
	"NOTE":      {class: "note", label: "Note", emoji: "📘"},
	"TIP":       {class: "tip", label: "Tip", emoji: "👍"},
	"IMPORTANT": {class: "important", label: "Important", emoji: "📘"},
	"WARNING":   {class: "warning", label: "Warning", emoji: "🚧"},
	"CAUTION":   {class: "caution", label: "Caution", emoji: "❗️"},
}

// ConvertCalloutsEmoji replaces admonition markers with the emoji tokens the
// hosted service's own renderer turns into styled callouts. Pure text
// substitution; the blockquote structure is left intact.
func ConvertCalloutsEmoji(body string) string {
	return reCalloutMarker.ReplaceAllStringFunc(body, func(match string) string {
		kind := reCalloutMarker.FindStringSubmatch(match)[1]
		return calloutKinds[kind].emoji
	})
}

// ConvertCalloutsStructural converts admonition blockquotes into styled
// container divs. The body is split into runs of blockquote-prefixed lines
// versus everything else, with fenced code blocks treated as opaque so a
// "> line" inside a fence is never mistaken for a blockquote. For each
// blockquote run whose first line carries a marker, the prefix and marker are
// stripped, the remaining Markdown is rendered through render, and the result
// is wrapped in a container. Balanced open/close tags by construction.
//
// Runs without a marker on their first line pass through unchanged.
func ConvertCalloutsStructural(body string, render func(markdown string) (string, error)) string {
	lines := strings.Split(body, "\n")
	var out []string

	inFence := false
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inFence = !inFence
		}
		if inFence || !strings.HasPrefix(line, ">") {
			out = append(out, line)
			continue
		}

		// Collect the whole blockquote run.
		start := i
		for i+1 < len(lines) && strings.HasPrefix(lines[i+1], ">") {
			i++
		}
		run := lines[start : i+1]

		m := reCalloutMarker.FindStringSubmatch(run[0])
		if m == nil {
			out = append(out, run...)
			continue
		}

		out = append(out, renderCallout(run, calloutKinds[m[1]], render))
	}

	return strings.Join(out, "\n")
}

// renderCallout strips the blockquote prefixes and the marker token, renders
// the inner Markdown and wraps it in the kind's container.
func renderCallout(run []string, kind calloutKind, render func(string) (string, error)) string {
	inner := make([]string, 0, len(run))
	for _, line := range run {
		line = strings.TrimPrefix(line, ">")
		line = strings.TrimPrefix(line, " ")
		inner = append(inner, line)
	}
	inner[0] = reCalloutMarker.ReplaceAllString(inner[0], "")

	content := strings.TrimSpace(strings.Join(inner, "\n"))
	rendered, err := render(content)
	if err != nil {
		// The inner Markdown failed to render; keep it visible as text.
		rendered = content
	}

	return fmt.Sprintf("<div class=%q>%s <strong>%s:</strong>\n%s</div>\n",
		kind.class, kind.emoji, kind.label, strings.TrimSpace(rendered))
}
