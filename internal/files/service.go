package files

import (
	"fmt"
	"io"
)

// Service provides application-level file operations
type Service struct {
	storage FileStorage
	maxSize int64
}

// NewService creates a new file service. A maxSize of zero or less disables
// the upload size limit.
func NewService(storage FileStorage, maxSize int64) *Service {
	return &Service{
		storage: storage,
		maxSize: maxSize,
	}
}

// MaxSize returns the upload size limit in bytes
func (s *Service) MaxSize() int64 {
	return s.maxSize
}

// UploadRequest represents a file upload request
type UploadRequest struct {
	Name    string
	Content io.Reader
}

// View describes how a stored file is rendered
type View struct {
	File *File
	Mode RenderMode
}

// Upload stores the content under the requested name, replacing any file
// with the same name. Content larger than the limit is rejected with
// ErrPayloadTooLarge and nothing is stored.
func (s *Service) Upload(req *UploadRequest) (*File, error) {
	if err := ValidateName(req.Name); err != nil {
		return nil, fmt.Errorf("upload %q: %w", req.Name, err)
	}

	content := req.Content
	if s.maxSize > 0 {
		content = &limitReader{r: req.Content, remaining: s.maxSize}
	}

	file, err := s.storage.Save(req.Name, content)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}
	file.ContentType = GuessContentType(file.Name)

	return file, nil
}

// List returns all stored files
func (s *Service) List() ([]*File, error) {
	list, err := s.storage.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}
	for _, f := range list {
		f.ContentType = GuessContentType(f.Name)
	}
	return list, nil
}

// View looks up a stored file and picks its render mode
func (s *Service) View(name string) (*View, error) {
	if err := ValidateName(name); err != nil {
		return nil, ErrNotFound
	}

	file, err := s.storage.Stat(name)
	if err != nil {
		return nil, err
	}
	file.ContentType = GuessContentType(name)

	return &View{File: file, Mode: RenderModeFor(file.ContentType)}, nil
}

// Open returns a stored file with a reader for its content. Its
// ContentType is always set, falling back to application/octet-stream.
func (s *Service) Open(name string) (*File, io.ReadSeekCloser, error) {
	if err := ValidateName(name); err != nil {
		return nil, nil, ErrNotFound
	}

	file, content, err := s.storage.Open(name)
	if err != nil {
		return nil, nil, err
	}
	file.ContentType = ContentTypeFor(name)

	return file, content, nil
}

// limitReader fails with ErrPayloadTooLarge once more than remaining bytes
// have been read from r.
type limitReader struct {
	r         io.Reader
	remaining int64
}

func (l *limitReader) Read(p []byte) (int, error) {
	if l.remaining < 0 {
		return 0, ErrPayloadTooLarge
	}
	// allow one byte past the limit so that overflow is detected
	if int64(len(p)) > l.remaining+1 {
		p = p[:l.remaining+1]
	}
	n, err := l.r.Read(p)
	l.remaining -= int64(n)
	if l.remaining < 0 {
		return n, ErrPayloadTooLarge
	}
	return n, err
}
