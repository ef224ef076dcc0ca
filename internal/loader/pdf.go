package loader

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor extracts the plain text of a PDF, prefixing every page with a
// [PÁGINA n] marker so downstream chunking can split on page boundaries.
type PDFExtractor struct{}

// Extract reads the whole PDF. Malformed files make the underlying library
// panic, so this converts panics into errors and lets the caller skip the
// file.
func (e *PDFExtractor) Extract(path string) (text string, pages int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("reading %s: %v", path, rec)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	total := reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil || strings.TrimSpace(pageText) == "" {
			continue
		}
		fmt.Fprintf(&sb, "\n[PÁGINA %d]\n%s", i, pageText)
	}

	return sb.String(), total, nil
}
