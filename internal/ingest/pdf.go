package ingest

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/pkg/types"
)

// FromPDF extracts one span per page from a PDF file. Pages whose
// extracted text is empty are skipped; a page that fails extraction
// aborts the whole document so a partial read is never mistaken for a
// complete one.
func FromPDF(path string) ([]types.Span, error) {
	f, rdr, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var spans []types.Span
	for i := 1; i <= rdr.NumPage(); i++ {
		pg := rdr.Page(i)
		if pg.V.IsNull() {
			continue
		}
		text, err := pg.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extract pdf %s page %d: %w", path, i, err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		spans = append(spans, types.Span{
			Source:  path,
			Page:    i,
			Content: text,
		})
	}
	return spans, nil
}
