package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/pavel-fokin/content-server/internal/files"
)

// UploadResponse is the JSON body returned after a successful upload
type UploadResponse struct {
	Message string `json:"message"`
	Name    string `json:"name"`
	Size    int64  `json:"size"`
}

// ErrorResponse is the JSON body of every error reply
type ErrorResponse struct {
	Detail string `json:"detail"`
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func home(w http.ResponseWriter, r *http.Request) {
	renderHTML(w, homePage, nil)
}

func uploadFile(fileService *files.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mr, err := r.MultipartReader()
		if err != nil {
			writeError(w, http.StatusBadRequest, "Expected multipart form data")
			return
		}

		for {
			part, err := mr.NextPart()
			if err == io.EOF {
				writeError(w, http.StatusBadRequest, "No file provided")
				return
			}
			if err != nil {
				if isTooLarge(err) {
					writeTooLarge(w, fileService.MaxSize())
					return
				}
				writeError(w, http.StatusBadRequest, "Failed to parse multipart form")
				return
			}
			if part.FormName() != "file" {
				part.Close()
				continue
			}

			name := part.FileName()
			if name == "" {
				part.Close()
				writeError(w, http.StatusBadRequest, "No file provided")
				return
			}

			result, err := fileService.Upload(&files.UploadRequest{
				Name:    name,
				Content: part,
			})
			part.Close()

			switch {
			case err == nil:
			case isTooLarge(err):
				slog.Warn("Upload rejected", "error", err, "filename", name)
				writeTooLarge(w, fileService.MaxSize())
				return
			case errors.Is(err, files.ErrInvalidName):
				writeError(w, http.StatusBadRequest, "Invalid file name")
				return
			default:
				slog.Error("Upload failed", "error", err, "filename", name)
				writeError(w, http.StatusInternalServerError, "Upload failed")
				return
			}

			slog.Info("File uploaded", "filename", result.Name, "size", result.Size)
			writeJSON(w, http.StatusOK, UploadResponse{
				Message: fmt.Sprintf("File '%s' uploaded successfully!", result.Name),
				Name:    result.Name,
				Size:    result.Size,
			})
			return
		}
	}
}

func listFiles(fileService *files.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fileList, err := fileService.List()
		if err != nil {
			slog.Error("List files failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to list files")
			return
		}

		renderHTML(w, listPage, fileList)
	}
}

func viewFile(fileService *files.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("filename")

		view, err := fileService.View(name)
		if err != nil {
			handleLookupError(w, err, name)
			return
		}

		renderHTML(w, viewPage, view)
	}
}

func getFile(fileService *files.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("filename")

		file, content, err := fileService.Open(name)
		if err != nil {
			handleLookupError(w, err, name)
			return
		}
		defer content.Close()

		// ServeContent keeps a preset Content-Type and handles Range and
		// conditional requests
		w.Header().Set("Content-Type", file.ContentType)
		http.ServeContent(w, r, file.Name, file.ModTime, content)
	}
}

func handleLookupError(w http.ResponseWriter, err error, name string) {
	if errors.Is(err, files.ErrNotFound) {
		writeError(w, http.StatusNotFound, "File not found")
		return
	}
	slog.Error("File lookup failed", "error", err, "filename", name)
	writeError(w, http.StatusInternalServerError, "Failed to read file")
}

func renderHTML(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.Execute(w, data); err != nil {
		slog.Error("Failed to render page", "error", err, "template", tmpl.Name())
	}
}

func writeTooLarge(w http.ResponseWriter, maxSize int64) {
	writeError(w, http.StatusBadRequest,
		fmt.Sprintf("File too large! Limit is %s.", humanize.IBytes(uint64(maxSize))))
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
