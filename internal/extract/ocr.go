package extract

import (
	"bytes"
	"os/exec"

	"github.com/clearclause/contract-rag/internal/apperr"
)

// ocrAvailable reports whether the tesseract binary is on PATH.
func ocrAvailable() bool {
	_, err := exec.LookPath("tesseract")
	return err == nil
}

// extractImage runs tesseract over the image. A missing OCR engine is a
// capability gap, not a corrupted document, and is surfaced as such.
func extractImage(path string) (Result, error) {
	if !ocrAvailable() {
		return Result{}, apperr.New(apperr.Capability,
			"OCR support not available: install tesseract to process image files")
	}

	cmd := exec.Command("tesseract", path, "stdout")
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logger.Error("tesseract failed", "error", err, "stderr", stderr.String())
		return Result{}, apperr.Wrap(apperr.Extraction, err, "failed to OCR image")
	}

	return Result{Text: out.String(), Pages: 1, FileType: "image"}, nil
}
