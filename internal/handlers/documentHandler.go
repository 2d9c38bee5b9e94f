package handlers

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/clearclause/contract-rag/internal/adapter"
	"github.com/clearclause/contract-rag/internal/extract"
	"github.com/clearclause/contract-rag/internal/metrics"
	"github.com/clearclause/contract-rag/internal/rag/chunker"
)

var (
	pdfMagic  = []byte("%PDF")
	zipMagic  = []byte("PK\x03\x04")
	utf8Probe = 100
)

// UploadHandler ingests a document: validate, save to a temp file, extract
// text, chunk, embed, index, then hand everything to the session store. The
// temp file never outlives the request.
func UploadHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logH.Warn("Invalid Context by request", "remoteAddr", r.RemoteAddr)
		return
	}

	if err := r.ParseMultipartForm(settings.MaxFileSizeBytes()); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "File too large or bad request")
		return
	}

	fileReader, fileMetadata, err := r.FormFile("file")
	if err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "Could not retrieve file")
		return
	}
	defer fileReader.Close()

	if msg := validateUploadMetadata(fileMetadata); msg != "" {
		WriteErrorResponse(w, http.StatusBadRequest, "Validation error", msg)
		return
	}

	tempPath, err := saveTempFile(fileReader, fileMetadata.Filename)
	if err != nil {
		logH.Error("could not persist upload", "error", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", "Storage error")
		return
	}
	defer cleanupTempFile(tempPath)

	if msg := validateFileContent(tempPath); msg != "" {
		WriteErrorResponse(w, http.StatusBadRequest, "Validation error", msg)
		return
	}

	meta, err := extract.Document(tempPath)
	if err != nil {
		logH.Error("document extraction failed", "filename", fileMetadata.Filename, "error", err)
		writeAppError(w, err)
		return
	}

	chunks, err := chunker.Chunk(meta.Text, settings.ChunkSize, settings.ChunkOverlap)
	if err != nil {
		writeAppError(w, err)
		return
	}

	index, chunkMap, err := ragService.IndexDocument(r.Context(), chunks)
	if err != nil {
		writeAppError(w, err)
		return
	}

	sessionID := sessions.Create(fileMetadata.Filename, meta.Text, index, chunkMap)
	metrics.DocumentsUploadedTotal.WithLabelValues(meta.FileType).Inc()
	metrics.ActiveSessions.Set(float64(sessions.Count()))

	writeJsonResponse(w, http.StatusOK, adapter.ToUploadResponse(sessionID, fileMetadata.Filename, len(chunks), meta))
}

func validateUploadMetadata(header *multipart.FileHeader) string {
	if header.Filename == "" {
		return "Filename cannot be empty"
	}
	if strings.ContainsAny(header.Filename, `/\`) {
		return "Filename contains invalid path characters"
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(header.Filename), "."))
	allowed := false
	for _, t := range settings.AllowedFileTypes {
		if ext == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Sprintf("File type '%s' not allowed. Allowed types: %s", ext, strings.Join(settings.AllowedFileTypes, ", "))
	}

	if header.Size > settings.MaxFileSizeBytes() {
		return fmt.Sprintf("File too large. Max %d MB allowed", settings.MaxFileSizeMB)
	}
	return ""
}

// validateFileContent rejects obviously corrupt files before extraction by
// checking magic bytes and, for text, a UTF-8 probe of the head.
func validateFileContent(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "Cannot read uploaded file"
	}
	if info.Size() == 0 {
		return "File is empty"
	}

	head := make([]byte, utf8Probe)
	f, err := os.Open(path)
	if err != nil {
		return "Cannot read uploaded file"
	}
	defer f.Close()
	n, _ := io.ReadFull(f, head)
	head = head[:n]

	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "pdf":
		if !bytes.HasPrefix(head, pdfMagic) {
			return "Invalid PDF file (missing header)"
		}
	case "docx":
		if !bytes.HasPrefix(head, zipMagic) {
			return "Invalid DOCX file (not a valid ZIP)"
		}
	case "txt":
		// the probe can split a multi-byte rune at the cut, allow
		// trimming up to three trailing bytes before judging
		probe := head
		for trim := 0; trim < utf8.UTFMax-1 && len(probe) > 0 && !utf8.Valid(probe); trim++ {
			probe = probe[:len(probe)-1]
		}
		if !utf8.Valid(probe) {
			return "TXT file has invalid encoding (must be UTF-8)"
		}
	}
	return ""
}

func saveTempFile(src io.Reader, originalName string) (string, error) {
	dst, err := os.CreateTemp("", "upload-*"+strings.ToLower(filepath.Ext(originalName)))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}
	return dst.Name(), nil
}

func cleanupTempFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logH.Warn("failed to cleanup temp file", "path", path, "error", err)
	}
}
