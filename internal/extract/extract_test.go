package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clearclause/contract-rag/internal/apperr"
)

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestDocument_Txt(t *testing.T) {
	path := writeTemp(t, "contract.txt", []byte("  Clause one.\nClause two.\nClause three.\n"))

	res, err := Document(path)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if res.FileType != "txt" {
		t.Errorf("FileType = %q; want txt", res.FileType)
	}
	if res.Pages != 3 {
		t.Errorf("Pages (line count) = %d; want 3", res.Pages)
	}
	if res.Text != "Clause one.\nClause two.\nClause three." {
		t.Errorf("text not trimmed verbatim UTF-8: %q", res.Text)
	}
}

func TestDocument_TxtBadEncoding(t *testing.T) {
	path := writeTemp(t, "latin1.txt", []byte{0x43, 0x6c, 0xe9, 0x61, 0x75, 0x73, 0x65})

	_, err := Document(path)
	if err == nil {
		t.Fatal("expected encoding error for invalid UTF-8")
	}
	if !apperr.Is(err, apperr.Encoding) {
		t.Errorf("expected Encoding category, got %v", apperr.CategoryOf(err))
	}
}

func TestDocument_UnsupportedType(t *testing.T) {
	path := writeTemp(t, "archive.zip", []byte("PK\x03\x04"))

	_, err := Document(path)
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !apperr.Is(err, apperr.Validation) {
		t.Errorf("expected Validation category, got %v", apperr.CategoryOf(err))
	}
}

func TestDocument_MissingFile(t *testing.T) {
	_, err := Document(filepath.Join(t.TempDir(), "ghost.pdf"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !apperr.Is(err, apperr.NotFound) {
		t.Errorf("expected NotFound category, got %v", apperr.CategoryOf(err))
	}
}

func TestDocument_CorruptPDF(t *testing.T) {
	path := writeTemp(t, "broken.pdf", []byte("%PDF-1.4 garbage and nothing else"))

	_, err := Document(path)
	if err == nil {
		t.Fatal("expected extraction error for corrupt pdf")
	}
	if apperr.Is(err, apperr.Validation) {
		t.Errorf("corrupt pdf should not be a validation error")
	}
}

func TestDocument_ImageWithoutOCR(t *testing.T) {
	if ocrAvailable() {
		t.Skip("tesseract installed; capability path not reachable")
	}
	path := writeTemp(t, "scan.png", []byte{0x89, 'P', 'N', 'G'})

	_, err := Document(path)
	if err == nil {
		t.Fatal("expected capability error without OCR engine")
	}
	if !apperr.Is(err, apperr.Capability) {
		t.Errorf("expected Capability category, got %v", apperr.CategoryOf(err))
	}
}
