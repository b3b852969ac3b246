package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/docpress/docpress/internal/yamlutil"
)

// Sentinel errors for hierarchy operations.
var (
	ErrHierarchyNotFound = errors.New("hierarchy file not found")
	ErrHierarchyParse    = errors.New("failed to parse hierarchy")
	ErrEmptyHierarchy    = errors.New("hierarchy has no categories")
	ErrMissingSlug       = errors.New("node missing slug")
	ErrDuplicateSlug     = errors.New("duplicate slug in hierarchy")
)

// HierarchyFileName is the expected file name at the docs root.
const HierarchyFileName = "hierarchy.yaml"

// Doc is a document node in the hierarchy. Children nest arbitrarily
// deep; each level maps to a parent/child relationship in the output.
type Doc struct {
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title,omitempty"`
	Children []Doc  `yaml:"children,omitempty"`
}

// Category is a top-level grouping of documents.
type Category struct {
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title,omitempty"`
	Children []Doc  `yaml:"children,omitempty"`
}

// Hierarchy is the ordered forest read from hierarchy.yaml. It is built
// once and treated as read-only during generation and sync.
type Hierarchy struct {
	Categories []Category `yaml:"categories"`
}

// LoadHierarchy reads and validates <dir>/hierarchy.yaml.
func LoadHierarchy(dir string) (*Hierarchy, error) {
	path := filepath.Join(dir, HierarchyFileName)
	data, err := os.ReadFile(path) // #nosec G304 -- path from user-supplied docs dir
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrHierarchyNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrHierarchyParse, err)
	}

	var h Hierarchy
	// Strict decoding catches typos like "childen" that would otherwise
	// silently drop a whole subtree.
	if err := yamlutil.UnmarshalStrict(data, &h); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHierarchyParse, err)
	}
	if err := h.Validate(); err != nil {
		return nil, err
	}
	return &h, nil
}

// Validate checks structural invariants: at least one category, a slug
// on every node, and slug uniqueness across the whole forest. Slugs
// double as output filenames and link targets, so a collision would
// make one document shadow another.
func (h *Hierarchy) Validate() error {
	if len(h.Categories) == 0 {
		return ErrEmptyHierarchy
	}
	seen := make(map[string]bool)
	for _, c := range h.Categories {
		if c.Slug == "" {
			return fmt.Errorf("%w: category %q", ErrMissingSlug, c.Title)
		}
		if seen[c.Slug] {
			return fmt.Errorf("%w: %q", ErrDuplicateSlug, c.Slug)
		}
		seen[c.Slug] = true
		if err := validateDocs(c.Children, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateDocs(docs []Doc, seen map[string]bool) error {
	for _, d := range docs {
		if d.Slug == "" {
			return fmt.Errorf("%w: document %q", ErrMissingSlug, d.Title)
		}
		if seen[d.Slug] {
			return fmt.Errorf("%w: %q", ErrDuplicateSlug, d.Slug)
		}
		seen[d.Slug] = true
		if err := validateDocs(d.Children, seen); err != nil {
			return err
		}
	}
	return nil
}

// Slugs returns every document slug in the forest in depth-first
// order, categories excluded.
func (h *Hierarchy) Slugs() []string {
	var out []string
	var walk func(docs []Doc)
	walk = func(docs []Doc) {
		for _, d := range docs {
			out = append(out, d.Slug)
			walk(d.Children)
		}
	}
	for _, c := range h.Categories {
		walk(c.Children)
	}
	return out
}

// FindDoc returns the document with the given slug, or false when no
// node in the forest carries it.
func (h *Hierarchy) FindDoc(slug string) (Doc, bool) {
	var find func(docs []Doc) (Doc, bool)
	find = func(docs []Doc) (Doc, bool) {
		for _, d := range docs {
			if d.Slug == slug {
				return d, true
			}
			if found, ok := find(d.Children); ok {
				return found, ok
			}
		}
		return Doc{}, false
	}
	for _, c := range h.Categories {
		if found, ok := find(c.Children); ok {
			return found, ok
		}
	}
	return Doc{}, false
}
