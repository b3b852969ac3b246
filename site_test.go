package docpress

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/docpress/docpress/internal/config"
)

// newSiteTree builds a docs tree with a hierarchy file, two documents
// (one nested) and a figure.
func newSiteTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	for _, d := range []string{"overview", filepath.Join("overview", "getting-started"), "figures"} {
		if err := os.MkdirAll(filepath.Join(root, d), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", d, err)
		}
	}

	files := map[string]string{
		"hierarchy.yaml": strings.Join([]string{
			"categories:",
			"  - slug: overview",
			"    title: Overview",
			"    children:",
			"      - slug: getting-started",
			"        children:",
			"          - slug: installation",
			"      - slug: missing-doc",
		}, "\n") + "\n",
		filepath.Join("overview", "getting-started.md"): strings.Join([]string{
			"---",
			"title: Getting Started",
			"---",
			"# Getting Started",
			"",
			"Welcome aboard.",
		}, "\n"),
		filepath.Join("overview", "getting-started", "installation.md"): "Install with care.",
		filepath.Join("figures", "arch.png"):                           "png-bytes",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(root, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return root
}

func TestSiteGenerate(t *testing.T) {
	t.Parallel()

	root := newSiteTree(t)
	out := t.TempDir()

	var logged []string
	g := NewSiteGenerator(root, out, nil)
	g.Logf = func(format string, args ...any) {
		logged = append(logged, format)
	}

	if err := g.Generate(context.Background()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	for _, name := range []string{
		"getting-started.html",
		"installation.html",
		"index.html",
		filepath.Join("css", "style.css"),
		filepath.Join("css", "highlight.css"),
		filepath.Join("js", "main.js"),
		filepath.Join("assets", "arch.png"),
	} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}

	// The hierarchy references missing-doc which has no file; the run
	// must skip it, not fail.
	if _, err := os.Stat(filepath.Join(out, "missing-doc.html")); !os.IsNotExist(err) {
		t.Error("missing-doc.html should not have been generated")
	}

	page, err := os.ReadFile(filepath.Join(out, "getting-started.html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	html := string(page)
	for _, want := range []string{
		"<title>Getting Started - Documentation</title>",
		`<nav class="sidebar">`,
		`<div class="category-title">Overview</div>`,
		`class="active`,
		`<div class="breadcrumbs">`,
		"Welcome aboard.",
		`<script src="js/main.js">`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}

	if len(logged) == 0 {
		t.Error("Logf hook never called")
	}
}

func TestSiteGenerateIndexFromFirstDoc(t *testing.T) {
	t.Parallel()

	root := newSiteTree(t)
	out := t.TempDir()
	g := NewSiteGenerator(root, out, nil)
	if err := g.Generate(context.Background()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "Welcome aboard.") {
		t.Error("index.html should carry the first document's content")
	}
}

func TestSiteGenerateWelcomeIndex(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	hierarchy := "categories:\n  - slug: empty\n    title: Empty\n"
	if err := os.WriteFile(filepath.Join(root, "hierarchy.yaml"), []byte(hierarchy), 0o600); err != nil {
		t.Fatalf("write hierarchy: %v", err)
	}

	out := t.TempDir()
	g := NewSiteGenerator(root, out, nil)
	if err := g.Generate(context.Background()); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatalf("read index: %v", err)
	}
	if !strings.Contains(string(index), "Welcome to the Documentation") {
		t.Error("empty hierarchy should produce the welcome page")
	}
}

func TestSiteGenerateMissingSource(t *testing.T) {
	t.Parallel()

	g := NewSiteGenerator("", t.TempDir(), nil)
	if err := g.Generate(context.Background()); err == nil {
		t.Fatal("Generate() error = nil, want error")
	}
}

func TestBuildNav(t *testing.T) {
	t.Parallel()

	h := &config.Hierarchy{Categories: []config.Category{{
		Slug:  "overview",
		Title: "Overview",
		Children: []config.Doc{
			{Slug: "getting-started", Children: []config.Doc{{Slug: "installation"}}},
		},
	}}}

	nav := buildNav(h, "installation")
	for _, want := range []string{
		`<a href="getting-started.html" class="has-children">`,
		`<a href="installation.html" class="active">`,
		`<ul class="nav-sublist collapsed">`,
		`class="indent-1"`,
		"Getting Started",
	} {
		if !strings.Contains(nav, want) {
			t.Errorf("nav missing %q\nnav: %s", want, nav)
		}
	}
}

func TestBuildBreadcrumbs(t *testing.T) {
	t.Parallel()

	got := buildBreadcrumbs([]breadcrumb{
		{Name: "Home", Link: "index.html"},
		{Name: "Overview"},
		{Name: "Getting Started", Link: "getting-started.html"},
	})
	for _, want := range []string{
		`<a href="index.html">Home</a>`,
		" &gt; Overview &gt; ",
		`<a href="getting-started.html">Getting Started</a>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("breadcrumbs missing %q\ngot: %s", want, got)
		}
	}
	if buildBreadcrumbs(nil) != "" {
		t.Error("empty crumbs should produce no markup")
	}
}
