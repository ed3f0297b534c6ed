package report

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// markdownPrecision is the number of significant digits shown in reports
const markdownPrecision = 6

// Markdown renders the table as a GitHub-style pipe table under a heading.
// Numeric cells are rounded for display.
func (t Table) Markdown() []byte {
	var buf bytes.Buffer
	if t.Title != "" {
		fmt.Fprintf(&buf, "## %s\n\n", t.Title)
	}

	writeRow(&buf, t.Header)
	sep := make([]string, len(t.Header))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(&buf, sep)

	for _, record := range t.Records {
		cells := make([]string, len(record))
		for i, cell := range record {
			cells[i] = displayCell(cell)
		}
		writeRow(&buf, cells)
	}
	fmt.Fprintf(&buf, "\n_%d rows_\n", len(t.Records))
	return buf.Bytes()
}

// HTML renders the markdown form to a standalone HTML document
func (t Table) HTML() []byte {
	return RenderHTML(t.Title, t.Markdown())
}

// RenderHTML converts markdown to HTML wrapped in a complete page
func RenderHTML(title string, md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{
		Title: title,
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML(md, p, renderer)
}

func writeRow(buf *bytes.Buffer, cells []string) {
	buf.WriteString("| ")
	buf.WriteString(strings.Join(cells, " | "))
	buf.WriteString(" |\n")
}

// displayCell rounds floats; integers and labels pass through
func displayCell(cell string) string {
	if _, err := strconv.Atoi(cell); err == nil {
		return cell
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return strings.ReplaceAll(cell, "|", `\|`)
	}
	return strconv.FormatFloat(v, 'g', markdownPrecision, 64)
}
