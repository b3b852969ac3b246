package mdproc

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestGoldmarkConverterToHTML(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()

	tests := []struct {
		name         string
		markdown     string
		wantContains []string
	}{
		{
			name:         "basic markdown",
			markdown:     "# Title\n\nSome **bold** text.",
			wantContains: []string{"<h1>Title</h1>", "<strong>bold</strong>"},
		},
		{
			name:         "gfm table",
			markdown:     "| a | b |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{"<table>", "<td>1</td>"},
		},
		{
			name:         "raw html passes through",
			markdown:     "<div class=\"note\">kept</div>",
			wantContains: []string{`<div class="note">kept</div>`},
		},
		{
			name:         "tilde fence highlighted by extension",
			markdown:     "~~~go\npackage main\n~~~",
			wantContains: []string{"chroma"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := conv.ToHTML(context.Background(), tt.markdown)
			if err != nil {
				t.Fatalf("ToHTML() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output %q missing %q", got, want)
				}
			}
		})
	}
}

func TestGoldmarkConverterCancelled(t *testing.T) {
	t.Parallel()

	conv := NewGoldmarkConverter()
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	if _, err := conv.ToHTML(ctx, "# x"); err == nil {
		t.Fatal("ToHTML() error = nil with cancelled context")
	}
}
