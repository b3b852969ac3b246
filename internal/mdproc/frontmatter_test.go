package mdproc

import (
	"errors"
	"strings"
	"testing"
)

func TestParseDocument(t *testing.T) {
	t.Parallel()

	t.Run("full front matter", func(t *testing.T) {
		t.Parallel()

		content := "---\ntitle: Getting Started\nhidden: true\ndescription: First steps\n---\n# Body\n"
		fm, body, err := ParseDocument(content)
		if err != nil {
			t.Fatalf("ParseDocument() error = %v", err)
		}
		if fm.Title != "Getting Started" {
			t.Errorf("Title = %q", fm.Title)
		}
		if !fm.Hidden {
			t.Error("Hidden = false, want true")
		}
		if fm.Description != "First steps" {
			t.Errorf("Description = %q", fm.Description)
		}
		if !strings.Contains(body, "# Body") || strings.Contains(body, "title:") {
			t.Errorf("body = %q", body)
		}
	})

	t.Run("missing front matter", func(t *testing.T) {
		t.Parallel()

		_, body, err := ParseDocument("# Just Markdown\n")
		if !errors.Is(err, ErrNoFrontMatter) {
			t.Fatalf("error = %v, want ErrNoFrontMatter", err)
		}
		if body != "# Just Markdown\n" {
			t.Errorf("body = %q, want whole content back", body)
		}
	})
}
