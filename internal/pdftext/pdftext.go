package pdftext

import (
	"fmt"
	"os/exec"
	"strings"
)

// Extractor hands back plain text per page of a PDF. The statement parser
// consumes text lines only; how they are extracted is this package's concern.
type Extractor interface {
	PageTexts(path string) ([]string, error)
}

// Poppler extracts text by shelling out to pdftotext.
type Poppler struct{}

// PageTexts runs pdftotext in layout mode and splits the output into pages.
func (Poppler) PageTexts(path string) ([]string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext %s: %w", path, err)
	}
	return SplitPages(string(out)), nil
}

// SplitPages splits pdftotext output on form feeds. pdftotext emits a trailing
// form feed after the final page, so a trailing empty page is dropped.
func SplitPages(text string) []string {
	pages := strings.Split(text, "\f")
	if n := len(pages); n > 0 && strings.TrimSpace(pages[n-1]) == "" {
		pages = pages[:n-1]
	}
	return pages
}
