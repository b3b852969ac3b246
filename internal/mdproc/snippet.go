package mdproc

import (
	"fmt"
	"os"
	"path/filepath"
)

// ResolveSnippets splices the contents of each referenced snippet file in place
// of its !snippet[...] token. Paths resolve relative to baseDir. A missing or
// unreadable snippet becomes a bracketed diagnostic instead of an error so a
// single broken reference cannot abort the document.
//
// When sanitize is non-nil, the spliced content is passed through it before
// insertion; hosted targets use this because snippet content is merged into
// externally rendered HTML. No recursive re-expansion is performed: a snippet
// containing a snippet reference keeps the reference verbatim.
func ResolveSnippets(body, baseDir string, sanitize func(string) string) string {
	return reSnippet.ReplaceAllStringFunc(body, func(match string) string {
		ref := reSnippet.FindStringSubmatch(match)[1]
		path := filepath.Clean(filepath.Join(baseDir, ref))

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Sprintf("[File not found or could not be read: %s]", path)
		}
		if sanitize != nil {
			return sanitize(string(data))
		}
		return string(data)
	})
}
