package docpress

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/docpress/docpress/internal/config"
	"github.com/docpress/docpress/internal/fileutil"
	"github.com/docpress/docpress/internal/mdproc"
	"github.com/docpress/docpress/internal/readme"
)

// Syncer pushes a docs tree to the hosted service, mirroring the
// hierarchy as categories and ordered, nested documents.
type Syncer struct {
	source   string
	client   *readme.Client
	pipeline *Pipeline

	// Logf reports progress when set. The zero value is silent.
	Logf func(format string, args ...any)
}

// NewSyncer creates a syncer for a docs tree. The pipeline must be a
// hosted-target pipeline rooted at source.
func NewSyncer(source string, client *readme.Client, pipeline *Pipeline) *Syncer {
	return &Syncer{source: source, client: client, pipeline: pipeline}
}

func (s *Syncer) logf(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
	}
}

// Sync bootstraps the docs version, then walks the hierarchy
// depth-first creating or updating every category and document.
// Documents referenced by the hierarchy but missing on disk are
// logged and skipped; any API failure aborts the run. When the
// version has no pre-release suffix it is promoted to stable at the
// end.
func (s *Syncer) Sync(ctx context.Context) error {
	// The image repository is needed for every document; fail before
	// touching the API rather than halfway through.
	if s.pipeline.repoID == "" {
		return ErrMissingRepoID
	}

	hierarchy, err := config.LoadHierarchy(s.source)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}

	created, err := s.client.CreateVersionIfNotExists(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}
	if created {
		s.logf("created version %s", s.client.Version())
	}

	for _, category := range hierarchy.Categories {
		title := category.Title
		if title == "" {
			title = TitleFromSlug(category.Slug)
		}
		categoryID, createdCat, err := s.client.CreateCategoryIfNotExists(ctx, category.Slug, title)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSyncFailed, err)
		}
		if createdCat {
			s.logf("created category %s", category.Slug)
		}

		if err := s.syncDocs(ctx, category.Children, category.Slug, categoryID, ""); err != nil {
			return err
		}
	}

	if err := s.client.MakeVersionStable(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrSyncFailed, err)
	}
	return nil
}

// syncDocs pushes a sibling list in order, then recurses into
// children with the pushed document as parent.
func (s *Syncer) syncDocs(ctx context.Context, docs []config.Doc, dir, categoryID, parentID string) error {
	for order, node := range docs {
		doc, err := s.loadDocument(node.Slug, dir)
		if errors.Is(err, ErrDocFileMissing) {
			s.logf("skipping %s: %v", node.Slug, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSyncFailed, err)
		}

		body, err := s.pipeline.ProcessMarkdown(doc)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSyncFailed, err)
		}

		id, createdDoc, err := s.client.CreateOrUpdateDoc(ctx, doc.Slug, readme.DocPayload{
			Title:     doc.Title,
			Type:      "basic",
			Body:      body,
			Category:  categoryID,
			Hidden:    doc.Hidden,
			Order:     order,
			ParentDoc: parentID,
			Excerpt:   doc.Description,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrSyncFailed, err)
		}
		if createdDoc {
			s.logf("created doc %s", doc.Slug)
		} else {
			s.logf("updated doc %s", doc.Slug)
		}

		if len(node.Children) > 0 {
			childDir := filepath.Join(dir, node.Slug)
			if err := s.syncDocs(ctx, node.Children, childDir, categoryID, id); err != nil {
				return err
			}
		}
	}
	return nil
}

// loadDocument reads and parses one source document. Unlike static
// generation, sync requires front matter: the pushed title and
// visibility come from it.
func (s *Syncer) loadDocument(slug, dir string) (Document, error) {
	path := filepath.Join(s.source, dir, slug+".md")
	content, err := fileutil.ReadText(path)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %q", ErrDocFileMissing, path)
	}

	fm, body, err := mdproc.ParseDocument(content)
	if err != nil {
		return Document{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	title := fm.Title
	if title == "" {
		title = TitleFromSlug(slug)
	}
	return Document{
		Slug:        slug,
		Dir:         dir,
		Title:       title,
		Body:        body,
		Hidden:      fm.Hidden,
		Description: fm.Description,
	}, nil
}
