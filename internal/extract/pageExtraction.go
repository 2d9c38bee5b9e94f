package extract

import (
	"errors"
	"strings"
	"time"

	"github.com/clearclause/contract-rag/internal/apperr"
	"github.com/clearclause/contract-rag/internal/config"
	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

func extractPDF(path string) (Result, error) {
	f, err := pdf.Open(path)
	if err != nil {
		logger.Error("failed opening pdf file", "error", err)
		return Result{}, apperr.Wrap(apperr.Extraction, err, "failed to open pdf")
	}

	numPages := f.NumPage()
	logger.Debug("extractPDF", "pages", numPages)

	var pages []string
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// keep going with the other pages
			logger.Error("error parsing page content", "page", i, "error", err)
			continue
		}
		pages = append(pages, content)
	}

	return Result{
		Text:     strings.Join(pages, "\n"),
		Pages:    numPages,
		FileType: "pdf",
	}, nil
}

// extractDocx reads a .docx, .rtf or .odt file via lu4p/cat, which joins
// paragraph text. Page boundaries are not recoverable for these formats.
func extractDocx(path string, fileType string) (Result, error) {
	text, err := cat.File(path)
	if err != nil {
		logger.Error("error extracting document content", "error", err)
		return Result{}, apperr.Wrap(apperr.Extraction, err, "failed to extract %s content", fileType)
	}
	return Result{Text: text, Pages: 0, FileType: fileType}, nil
}

// protectExtract guards against dslipak/pdf hanging on malformed pages.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PageExtractTimeout):
		return "", errors.New("page extraction timeout")
	}
}
