package fetch

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxPages bounds how many pages of a document are converted to text.
// Admission requirements and calendars live on the first pages; the rest is
// course listings and boilerplate.
const MaxPages = 5

// IsPDF reports whether data starts with the PDF magic header.
func IsPDF(data []byte) bool {
	return bytes.HasPrefix(data, []byte("%PDF"))
}

// ExtractPDFText extracts concatenated plain text from at most the first
// maxPages pages of a PDF, in page order. Malformed bytes yield a
// *ExtractError. maxPages <= 0 uses MaxPages.
func ExtractPDFText(data []byte, maxPages int) (string, error) {
	if maxPages <= 0 {
		maxPages = MaxPages
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", &ExtractError{
			Message: "failed to read PDF",
			Cause:   err,
		}
	}

	numPages := pdfReader.NumPage()
	if numPages > maxPages {
		numPages = maxPages
	}

	var textBuilder strings.Builder
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page is skipped; the document may still
			// carry usable text on the others.
			continue
		}
		textBuilder.WriteString(text)
	}

	return textBuilder.String(), nil
}
