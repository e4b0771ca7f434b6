package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/mboyd1/asanagen/internal/flatten"
	"github.com/mboyd1/asanagen/internal/ingest"
	"github.com/mboyd1/asanagen/internal/taskcsv"
)

// handleConvert accepts one multipart document and responds with its
// task-import CSV.
func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	rows, err := s.runner.Convert(bytes.NewReader(data), filename)
	if err != nil {
		s.convertError(w, filename, err)
		return
	}

	outName := ingest.DocumentName(filename) + ".csv"
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", outName))
	if err := taskcsv.Write(w, rows); err != nil {
		s.log.Error("csv write failed", "file", filename, "error", err)
	}
}

// handlePreview accepts one multipart document and responds with the
// flattened rows as JSON, without producing a file.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	data, filename, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	rows, err := s.runner.Convert(bytes.NewReader(data), filename)
	if err != nil {
		s.convertError(w, filename, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"document":  ingest.DocumentName(filename),
		"row_count": len(rows),
		"rows":      rows,
	})
}

// readUpload pulls the "file" part out of a multipart request,
// enforcing the size cap and extension allowlist. On failure it writes
// the error response and returns ok=false.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (data []byte, filename string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}
	defer file.Close()

	filename = sanitizeFilename(header.Filename)
	if !ingest.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return nil, "", false
	}

	data, err = io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return nil, "", false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return nil, "", false
	}

	return data, filename, true
}

// convertError maps pipeline failures onto HTTP statuses: unreadable
// documents and identity failures are the client's problem, not the
// server's.
func (s *Server) convertError(w http.ResponseWriter, filename string, err error) {
	s.log.Error("conversion failed", "file", filename, "error", err)
	code := http.StatusUnprocessableEntity
	if errors.Is(err, flatten.ErrEmptyDocumentName) {
		code = http.StatusBadRequest
	}
	jsonError(w, err.Error(), code)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
