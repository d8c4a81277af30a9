package fetch

import (
	"context"
	"strings"
)

// Acquire fetches a document locator and materializes its plain text. PDF
// bytes go through page-wise text extraction (first MaxPages pages); anything
// else is treated as HTML. When the HTML path yields too little text and the
// browser fallback is enabled, the page is re-rendered headlessly.
func Acquire(ctx context.Context, urlStr string, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return "", err
	}

	if IsPDF(result.Body) || strings.Contains(result.ContentType, "application/pdf") {
		return ExtractPDFText(result.Body, MaxPages)
	}

	text, err := ExtractMainText(string(result.Body), AdmissionPageSelectors())
	if err != nil {
		return "", err
	}

	if opts.UseBrowser && ShouldUseBrowser(text) {
		html, browserErr := WithBrowser(ctx, urlStr, opts.Timeout)
		if browserErr != nil {
			// Keep whatever the plain fetch produced; the caller decides
			// whether it is long enough to be useful.
			return text, nil
		}
		rendered, extractErr := ExtractMainText(html, AdmissionPageSelectors())
		if extractErr == nil && len(rendered) > len(text) {
			return rendered, nil
		}
	}

	return text, nil
}
