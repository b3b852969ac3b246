package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleHierarchy = `categories:
  - slug: overview
    title: Overview
    children:
      - slug: getting-started
        title: Getting Started
        children:
          - slug: installation
  - slug: reference
    title: Reference
    children:
      - slug: api
`

func writeHierarchy(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, HierarchyFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return dir
}

func TestLoadHierarchy(t *testing.T) {
	t.Parallel()

	dir := writeHierarchy(t, sampleHierarchy)
	h, err := LoadHierarchy(dir)
	if err != nil {
		t.Fatalf("LoadHierarchy() error = %v", err)
	}
	if len(h.Categories) != 2 {
		t.Fatalf("len(Categories) = %d, want 2", len(h.Categories))
	}
	if h.Categories[0].Slug != "overview" {
		t.Errorf("first category slug = %q", h.Categories[0].Slug)
	}
	if h.Categories[0].Children[0].Children[0].Slug != "installation" {
		t.Error("nested child not loaded")
	}
}

func TestLoadHierarchyErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"empty categories", "categories: []\n", ErrEmptyHierarchy},
		{"unknown field", "categories:\n  - slug: a\n    childen: []\n", ErrHierarchyParse},
		{"missing slug", "categories:\n  - title: No Slug\n", ErrMissingSlug},
		{"duplicate slug", "categories:\n  - slug: a\n    children:\n      - slug: a\n", ErrDuplicateSlug},
		{"invalid yaml", "categories: [\n", ErrHierarchyParse},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := writeHierarchy(t, tt.content)
			if _, err := LoadHierarchy(dir); !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadHierarchy() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadHierarchyNotFound(t *testing.T) {
	t.Parallel()

	if _, err := LoadHierarchy(t.TempDir()); !errors.Is(err, ErrHierarchyNotFound) {
		t.Errorf("LoadHierarchy() error = %v, want ErrHierarchyNotFound", err)
	}
}

func TestHierarchySlugs(t *testing.T) {
	t.Parallel()

	dir := writeHierarchy(t, sampleHierarchy)
	h, err := LoadHierarchy(dir)
	if err != nil {
		t.Fatalf("LoadHierarchy() error = %v", err)
	}
	want := []string{"getting-started", "installation", "api"}
	if got := h.Slugs(); !reflect.DeepEqual(got, want) {
		t.Errorf("Slugs() = %v, want %v", got, want)
	}
}

func TestHierarchyFindDoc(t *testing.T) {
	t.Parallel()

	dir := writeHierarchy(t, sampleHierarchy)
	h, err := LoadHierarchy(dir)
	if err != nil {
		t.Fatalf("LoadHierarchy() error = %v", err)
	}
	if d, ok := h.FindDoc("installation"); !ok || d.Slug != "installation" {
		t.Errorf("FindDoc(installation) = %+v, %v", d, ok)
	}
	if _, ok := h.FindDoc("nope"); ok {
		t.Error("FindDoc(nope) = true, want false")
	}
}
