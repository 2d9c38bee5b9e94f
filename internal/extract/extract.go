package extract

import (
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/clearclause/contract-rag/internal/apperr"
	"github.com/clearclause/contract-rag/pkg/logger_i"
)

var logger = logger_i.NewLogger("extract")

// Result carries the extracted plain text plus basic metadata. Pages means
// PDF pages, TXT lines, or OCR'd images depending on the detected type.
type Result struct {
	Text     string
	Pages    int
	FileType string
}

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tiff": true,
	".bmp":  true,
}

// Document detects the file type from the extension and extracts plain text.
// Leading/trailing whitespace is stripped from the final text.
func Document(path string) (Result, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Result{}, apperr.Wrap(apperr.NotFound, err, "file not found: %s", filepath.Base(path))
		}
		return Result{}, apperr.Wrap(apperr.Extraction, err, "cannot stat file")
	}

	ext := strings.ToLower(filepath.Ext(path))
	logger.Debug("extracting document", "path", path, "ext", ext)

	var (
		res Result
		err error
	)
	switch {
	case ext == ".pdf":
		res, err = extractPDF(path)
	case ext == ".docx" || ext == ".rtf" || ext == ".odt":
		res, err = extractDocx(path, strings.TrimPrefix(ext, "."))
	case ext == ".txt":
		res, err = extractTxt(path)
	case imageExtensions[ext]:
		res, err = extractImage(path)
	default:
		return Result{}, apperr.New(apperr.Validation, "unsupported file type: %s", ext)
	}
	if err != nil {
		return Result{}, err
	}

	res.Text = strings.TrimSpace(res.Text)
	return res, nil
}

func extractTxt(path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, apperr.Wrap(apperr.Extraction, err, "cannot read text file")
	}
	if !utf8.Valid(data) {
		return Result{}, apperr.New(apperr.Encoding, "text file is not valid UTF-8")
	}

	text := string(data)
	lines := 0
	if strings.TrimSpace(text) != "" {
		lines = len(strings.Split(strings.TrimRight(text, "\n"), "\n"))
	}
	return Result{Text: text, Pages: lines, FileType: "txt"}, nil
}
