package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDF renders a text report as a single A4 document. The first line becomes
// the heading and the ruler under it is dropped. Text is encoded as cp1252 for
// the core fonts, so characters outside it are lost.
func PDF(text string) ([]byte, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || lines[0] == "" {
		return nil, fmt.Errorf("empty report")
	}
	title := lines[0]
	body := lines[1:]
	if len(body) > 0 && body[0] == rule {
		body = body[1:]
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(false)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetAuthor("Task Manager", false)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 11)
	for _, line := range body {
		if line == "" {
			pdf.Ln(4)
			continue
		}
		if strings.HasPrefix(line, "User: ") {
			pdf.SetFont("Arial", "B", 11)
			pdf.MultiCell(0, 6, tr(line), "", "L", false)
			pdf.SetFont("Arial", "", 11)
			continue
		}
		pdf.MultiCell(0, 6, tr(line), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
