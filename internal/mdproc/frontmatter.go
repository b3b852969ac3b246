package mdproc

import (
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// FrontMatter is the configuration block at the top of a source document,
// delimited by --- lines.
type FrontMatter struct {
	Title       string `yaml:"title"`
	Hidden      bool   `yaml:"hidden"`
	Description string `yaml:"description"`
}

// ParseDocument splits a source file into its front matter and Markdown
// body. A document without a front-matter block returns ErrNoFrontMatter
// with the whole content as the body, so callers can decide whether that is
// fatal (hosted sync) or tolerable (static generation, which derives the
// title from the slug).
func ParseDocument(content string) (FrontMatter, string, error) {
	var fm FrontMatter
	rest, err := frontmatter.MustParse(strings.NewReader(content), &fm)
	if err != nil {
		return FrontMatter{}, content, fmt.Errorf("%w: %v", ErrNoFrontMatter, err)
	}
	return fm, string(rest), nil
}
