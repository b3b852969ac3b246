package mdproc

import (
	"context"
	"strings"
	"testing"
)

// echoRender is a stand-in for the Markdown converter in unit tests.
func echoRender(md string) (string, error) { return "<p>" + md + "</p>", nil }

func TestConvertCalloutsEmoji(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"note", "> [!NOTE] remember", "> 📘 remember"},
		{"tip", "> [!TIP] shortcut", "> 👍 shortcut"},
		{"warning", "> [!WARNING] hot", "> 🚧 hot"},
		{"caution", "> [!CAUTION] sharp", "> ❗️ sharp"},
		{"important", "> [!IMPORTANT] read", "> 📘 read"},
		{"plain blockquote untouched", "> just a quote", "> just a quote"},
		{"marker outside blockquote still replaced", "[!NOTE] inline", "📘 inline"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ConvertCalloutsEmoji(tt.body); got != tt.want {
				t.Errorf("ConvertCalloutsEmoji() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvertCalloutsStructural(t *testing.T) {
	t.Parallel()

	t.Run("two line note becomes single container", func(t *testing.T) {
		t.Parallel()

		got := ConvertCalloutsStructural("> [!NOTE]\n> text", echoRender)

		if strings.Count(got, "<div") != 1 || strings.Count(got, "</div>") != 1 {
			t.Fatalf("unbalanced container tags in %q", got)
		}
		if !strings.Contains(got, `<div class="note">📘 <strong>Note:</strong>`) {
			t.Errorf("missing styled label in %q", got)
		}
		if !strings.Contains(got, "<p>text</p>") {
			t.Errorf("inner content not rendered in %q", got)
		}
	})

	t.Run("surrounding prose passes through", func(t *testing.T) {
		t.Parallel()

		got := ConvertCalloutsStructural("before\n\n> [!TIP]\n> use it\n\nafter", echoRender)
		if !strings.HasPrefix(got, "before\n") || !strings.HasSuffix(got, "\nafter") {
			t.Errorf("surrounding prose altered: %q", got)
		}
	})

	t.Run("blockquote without marker untouched", func(t *testing.T) {
		t.Parallel()

		body := "> quoted\n> lines"
		if got := ConvertCalloutsStructural(body, echoRender); got != body {
			t.Errorf("ConvertCalloutsStructural() = %q, want untouched", got)
		}
	})

	t.Run("blockquote lines inside code fence untouched", func(t *testing.T) {
		t.Parallel()

		body := "```\n> [!NOTE]\n> not a callout\n```"
		if got := ConvertCalloutsStructural(body, echoRender); got != body {
			t.Errorf("fenced content altered: %q", got)
		}
	})
}

func TestConvertCalloutsStructuralNestedMarkdown(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()
	render := func(md string) (string, error) {
		return conv.ToHTML(context.Background(), md)
	}

	got := ConvertCalloutsStructural("> [!WARNING]\n> - first\n> - second", render)

	if strings.Count(got, "<div") != 1 || strings.Count(got, "</div>") != 1 {
		t.Fatalf("unbalanced container tags in %q", got)
	}
	if !strings.Contains(got, "<ul>") || !strings.Contains(got, "<li>first</li>") {
		t.Errorf("nested list not rendered in %q", got)
	}
	if strings.Count(got, "<ul>") != strings.Count(got, "</ul>") {
		t.Errorf("unbalanced list tags in %q", got)
	}
}
