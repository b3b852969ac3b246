package mdproc

import (
	"encoding/csv"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
)

// AlignValidator inspects an align modifier value. A nil validator means
// lenient mode: unrecognized values are silently ignored. A non-nil validator
// may reject the value, which fails the whole table.
type AlignValidator func(value string) error

// ValidateAlign is the strict validator: only "left" and "right" pass.
func ValidateAlign(value string) error {
	if value != "left" && value != "right" {
		return fmt.Errorf("%w: %q (must be left or right)", ErrInvalidAlign, value)
	}
	return nil
}

// RenderCSVTables replaces each !table[...] reference with a sanitized HTML
// table rendered from the referenced delimited-value file. Paths resolve
// relative to baseDir. Files named in ignore are passed through verbatim.
// Read and parse failures degrade to a bracketed diagnostic in the output.
func RenderCSVTables(body, baseDir string, ignore map[string]bool, validator AlignValidator, san *Sanitizer) string {
	return reCSVTable.ReplaceAllStringFunc(body, func(match string) string {
		ref := reCSVTable.FindStringSubmatch(match)[1]
		if ignore[filepath.Base(ref)] {
			return match
		}

		path := filepath.Clean(filepath.Join(baseDir, ref))
		fragment, err := renderCSVTable(path, validator, san)
		if err != nil {
			return fmt.Sprintf("[Failed to load table from %s - %v]", path, err)
		}
		return fragment
	})
}

// renderCSVTable reads one CSV file and renders it. The first row is the
// header; each header cell may carry pipe-separated modifiers:
//
//	Name|align right|hover Sorted descending
//
// "hover <text>" becomes an escaped title attribute, "align left|right" an
// inline text-align style applied to the whole column.
func renderCSVTable(path string, validator AlignValidator, san *Sanitizer) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may be ragged; cells render as-is
	records, err := r.ReadAll()
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "", ErrEmptyTable
	}

	headers, rows := records[0], records[1:]

	var b strings.Builder
	b.WriteString("<div class='data-table'><table>\n<thead>\n<tr>")

	alignments := make(map[int]string)
	for i, raw := range headers {
		parts := strings.Split(raw, "|")
		for j := range parts {
			parts[j] = strings.TrimSpace(parts[j])
		}
		header := parts[0]

		titleAttr := ""
		for _, part := range parts[1:] {
			switch {
			case strings.HasPrefix(part, "hover "):
				titleAttr = fmt.Sprintf(" title='%s'", html.EscapeString(part[len("hover "):]))
			case strings.HasPrefix(part, "align "):
				value := part[len("align "):]
				if validator != nil {
					if err := validator(value); err != nil {
						return "", err
					}
				}
				if value == "left" || value == "right" {
					alignments[i] = fmt.Sprintf(" style='text-align:%s'", html.EscapeString(value))
				}
			}
		}
		fmt.Fprintf(&b, "<th%s>%s</th>", titleAttr, header)
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, row := range rows {
		b.WriteString("<tr>")
		for i, cell := range row {
			fmt.Fprintf(&b, "<td%s>%s</td>", alignments[i], cell)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table></div>")

	return san.SanitizeTable(b.String()), nil
}
