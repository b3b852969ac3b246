package docpress

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/docpress/docpress/internal/fileutil"
	"github.com/docpress/docpress/internal/mdproc"
)

// IndexEntry is one document's metadata in the generated index: its
// title, slug, source path, path1..pathN directory components and any
// extra front-matter fields.
type IndexEntry map[string]any

// Indexer scans a docs tree and produces a JSON index of every
// document's front matter.
type Indexer struct {
	source string

	// Logf reports progress when set. The zero value is silent.
	Logf func(format string, args ...any)
}

// NewIndexer creates an indexer for a docs tree.
func NewIndexer(source string) *Indexer {
	return &Indexer{source: source}
}

func (ix *Indexer) logf(format string, args ...any) {
	if ix.Logf != nil {
		ix.Logf(format, args...)
	}
}

// Build scans every Markdown file under the source tree, skipping the
// standard non-document directories. Files without front matter are
// logged and skipped. Entries come back sorted by their first two
// directory components, then title.
func (ix *Indexer) Build() ([]IndexEntry, error) {
	if ix.source == "" {
		return nil, ErrMissingSource
	}
	files, err := fileutil.FindMarkdownFiles(ix.source, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexScan, err)
	}

	folder := filepath.Base(ix.source)
	var entries []IndexEntry
	for _, path := range files {
		content, err := fileutil.ReadText(path)
		if err != nil {
			ix.logf("skipping %s: %v", path, err)
			continue
		}

		var fields map[string]any
		if _, err := frontmatter.Parse(strings.NewReader(content), &fields); err != nil || len(fields) == 0 {
			ix.logf("no front matter in %s", path)
			continue
		}

		rel, err := filepath.Rel(ix.source, path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIndexScan, err)
		}
		rel = filepath.ToSlash(rel)

		stem := strings.TrimSuffix(filepath.Base(path), ".md")
		entry := IndexEntry{
			"title": stringField(fields, "title"),
			"slug":  mdproc.Slugify(stem),
			"path":  folder + "/" + rel,
		}
		for k, v := range fields {
			if k == "title" || v == nil {
				continue
			}
			entry[k] = v
		}
		for i, part := range strings.Split(rel, "/") {
			if !strings.HasSuffix(part, ".md") {
				entry[fmt.Sprintf("path%d", i+1)] = part
			}
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if k1, k2 := entryString(a, "path1"), entryString(b, "path1"); k1 != k2 {
			return k1 < k2
		}
		if k1, k2 := entryString(a, "path2"), entryString(b, "path2"); k1 != k2 {
			return k1 < k2
		}
		return entryString(a, "title") < entryString(b, "title")
	})
	return entries, nil
}

// Write builds the index and writes it as indented JSON.
func (ix *Indexer) Write(outputPath string) error {
	entries, err := ix.Build()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIndexScan, err)
	}
	if err := fileutil.WriteText(outputPath, string(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrIndexScan, err)
	}
	ix.logf("generated index with %d entries: %s", len(entries), outputPath)
	return nil
}

func stringField(fields map[string]any, key string) string {
	if v, ok := fields[key].(string); ok {
		return v
	}
	return ""
}

func entryString(e IndexEntry, key string) string {
	if v, ok := e[key].(string); ok {
		return v
	}
	return ""
}
