package mdproc

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Getting Started!", "getting-started"},
		{"snake_case_name", "snake-case-name"},
		{"Version 2.0 (beta)", "version-20-beta"},
		{"  spaced  ", "spaced"},
		{"", ""},
	}

	for _, tt := range tests {
		tt := tt
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestInjectHeadingAnchors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		html         string
		wantContains []string
	}{
		{
			name: "h2 gets id and self link",
			html: "<h2>Hello World</h2>",
			wantContains: []string{
				`<h2 id="hello-world">`,
				`<a href="#hello-world" class="heading-link">Hello World</a>`,
			},
		},
		{
			name: "inline markup kept inside the anchor",
			html: "<h3>Use <code>docpress</code> here</h3>",
			wantContains: []string{
				`<h3 id="use-docpress-here">`,
				"<code>docpress</code>",
			},
		},
		{
			name: "multiple headings anchored independently",
			html: "<h1>First</h1><p>x</p><h2>Second</h2>",
			wantContains: []string{
				`<h1 id="first">`,
				`<h2 id="second">`,
			},
		},
		{
			name:         "existing id overwritten with derived id",
			html:         `<h2 id="old">New Title</h2>`,
			wantContains: []string{`<h2 id="new-title">`},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := InjectHeadingAnchors(tt.html)
			if err != nil {
				t.Fatalf("InjectHeadingAnchors() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output %q missing %q", got, want)
				}
			}
		})
	}
}

func TestInjectHeadingAnchorsNonHeadingUntouched(t *testing.T) {
	t.Parallel()

	got, err := InjectHeadingAnchors("<p>prose only</p>")
	if err != nil {
		t.Fatalf("InjectHeadingAnchors() error = %v", err)
	}
	if got != "<p>prose only</p>" {
		t.Errorf("InjectHeadingAnchors() = %q, want untouched", got)
	}
}
