package mdproc

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Placeholder tokens use Unicode Private Use Area sentinels around a
// monotonic counter. They cannot collide with document content and pass
// through the Markdown converter unchanged, so extracted fragments survive
// conversion byte-for-byte.
const (
	tokenStart = "\uE000"
	tokenEnd   = "\uE001"
)

// HighlightStyle names the chroma style used for standalone highlighting
// and the generated stylesheet.
const HighlightStyle = "colorful"

// Extraction is the side table of (placeholder token -> final fragment)
// built before Markdown conversion and restored after it.
type Extraction struct {
	fragments []string
}

// add stores a fragment and returns its unique placeholder token.
func (e *Extraction) add(fragment string) string {
	e.fragments = append(e.fragments, fragment)
	return tokenStart + strconv.Itoa(len(e.fragments)-1) + tokenEnd
}

// Restore substitutes every placeholder token with its stored fragment.
// Tokens that ended up paragraph-wrapped by the converter are unwrapped so
// block fragments are not nested inside <p>.
func (e *Extraction) Restore(content string) string {
	for i, fragment := range e.fragments {
		token := tokenStart + strconv.Itoa(i) + tokenEnd
		wrapped := "<p>" + token + "</p>"
		if strings.Contains(content, wrapped) {
			content = strings.Replace(content, wrapped, fragment, 1)
			continue
		}
		content = strings.Replace(content, token, fragment, 1)
	}
	return content
}

// HighlightCodeBlocks extracts fenced code blocks in document order and
// replaces each with a placeholder whose stored fragment is the highlighted
// markup. Recognized languages render through the lexer registry; unknown
// languages render as an escaped <pre><code> carrying a language-<tag> class
// for client-side highlighting.
func HighlightCodeBlocks(body string, ext *Extraction) string {
	return reCodeBlock.ReplaceAllStringFunc(body, func(match string) string {
		m := reCodeBlock.FindStringSubmatch(match)
		lang := strings.TrimSpace(m[1])
		return ext.add(highlightFence(lang, m[2]))
	})
}

// mathLanguages are the fence tags diverted by PreserveMathBlocks.
var mathLanguages = map[string]bool{"latex": true, "tex": true, "math": true}

// PreserveMathBlocks extracts fenced blocks tagged as math so the Markdown
// converter cannot escape their markup. The stored fragment wraps the raw
// block content in a dedicated container, restored verbatim after
// conversion. Non-math fences are left in place.
func PreserveMathBlocks(body string, ext *Extraction) string {
	return reCodeBlock.ReplaceAllStringFunc(body, func(match string) string {
		m := reCodeBlock.FindStringSubmatch(match)
		lang := strings.ToLower(strings.TrimSpace(m[1]))
		if !mathLanguages[lang] {
			return match
		}
		fragment := fmt.Sprintf("<div class=\"math-block\">\n%s</div>", m[2])
		return ext.add(fragment)
	})
}

// highlightFence renders one fenced block to HTML.
func highlightFence(lang, code string) string {
	if lang == "" {
		lang = "text"
	}

	lexer := lexers.Get(lang)
	if lexer == nil {
		return fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`,
			lang, html.EscapeString(code))
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`,
			lang, html.EscapeString(code))
	}

	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buf strings.Builder
	if err := formatter.Format(&buf, styles.Get(HighlightStyle), iterator); err != nil {
		return fmt.Sprintf(`<pre><code class="language-%s">%s</code></pre>`,
			lang, html.EscapeString(code))
	}
	return fmt.Sprintf(`<div class="highlight">%s</div>`, buf.String())
}

// HighlightCSS writes the stylesheet matching the highlighted markup.
func HighlightCSS() (string, error) {
	formatter := chromahtml.New(chromahtml.WithClasses(true))
	var buf strings.Builder
	if err := formatter.WriteCSS(&buf, styles.Get(HighlightStyle)); err != nil {
		return "", fmt.Errorf("generating highlight stylesheet: %w", err)
	}
	return buf.String(), nil
}
