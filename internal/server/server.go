package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pavel-fokin/content-server/internal/files"
	"github.com/pavel-fokin/content-server/internal/fs"
)

// multipartOverhead is the allowance for multipart boundaries and part
// headers on top of the file size limit
const multipartOverhead = 1 << 20

const requestIDHeader = "X-Request-ID"

// New creates the HTTP server. The upload directory is created if it
// doesn't exist.
func New(cfg *Config) (*http.Server, error) {
	storage, err := fs.NewStorage(cfg.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	fileService := files.NewService(storage, cfg.MaxUploadSize())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", healthz)
	mux.HandleFunc("GET /{$}", home)
	mux.Handle("POST /upload", limitBody(uploadFile(fileService), cfg.MaxUploadSize()+multipartOverhead))
	mux.HandleFunc("GET /files", listFiles(fileService))
	mux.HandleFunc("GET /view/{filename}", viewFile(fileService))
	mux.HandleFunc("GET /files/{filename}", getFile(fileService))

	return &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           loggingMiddleware(mux),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}, nil
}

// limitBody caps the request body. Reads past the limit fail with
// *http.MaxBytesError.
func limitBody(next http.Handler, maxSize int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > maxSize {
			writeTooLarge(w, maxSize-multipartOverhead)
			return
		}
		r.Body = http.MaxBytesReader(w, r.Body, maxSize)
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests with structured logging
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		// Create a response writer wrapper to capture status code
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		slog.Info("HTTP request",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", wrapped.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)
	})
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Unwrap lets http.ResponseController reach the underlying writer
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.Is(err, files.ErrPayloadTooLarge) || errors.As(err, &maxBytesErr)
}
