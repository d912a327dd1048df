package fs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pavel-fokin/content-server/internal/files"
)

const (
	tempPrefix = ".upload-"
	tempSuffix = ".tmp"
)

// Storage implements files.FileStorage on a flat directory
type Storage struct {
	dataDir string
}

// NewStorage creates a new filesystem storage, creating dataDir if it
// doesn't exist
func NewStorage(dataDir string) (*Storage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Storage{
		dataDir: dataDir,
	}, nil
}

// Dir returns the storage directory
func (s *Storage) Dir() string {
	return s.dataDir
}

// Save writes content to a temp file in the data directory and renames it
// over name, so readers see either the old or the new file in full.
func (s *Storage) Save(name string, content io.Reader) (*files.File, error) {
	filePath := filepath.Join(s.dataDir, name)

	tmp, err := os.CreateTemp(s.dataDir, tempPrefix+"*"+tempSuffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	// no-op once the rename succeeded
	defer func() {
		tmp.Close()
		os.Remove(tmpName)
	}()

	if _, err := io.Copy(tmp, content); err != nil {
		return nil, fmt.Errorf("failed to write file content: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return nil, fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return nil, fmt.Errorf("failed to set file mode: %w", err)
	}

	if err := os.Rename(tmpName, filePath); err != nil {
		return nil, fmt.Errorf("failed to move file into place: %w", err)
	}

	return s.Stat(name)
}

// Stat returns metadata of a stored file
func (s *Storage) Stat(name string) (*files.File, error) {
	info, err := os.Stat(filepath.Join(s.dataDir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, files.ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, files.ErrNotFound
	}

	return fileFromInfo(info), nil
}

// Open returns a stored file and a reader for its content
func (s *Storage) Open(name string) (*files.File, io.ReadSeekCloser, error) {
	f, err := os.Open(filepath.Join(s.dataDir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, files.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, nil, files.ErrNotFound
	}

	return fileFromInfo(info), f, nil
}

// List returns the regular files in the data directory, skipping
// in-progress uploads
func (s *Storage) List() ([]*files.File, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}

	fileList := make([]*files.File, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() || isTemp(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed or replaced since ReadDir
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		fileList = append(fileList, fileFromInfo(info))
	}

	return fileList, nil
}

func fileFromInfo(info os.FileInfo) *files.File {
	return &files.File{
		Name:    info.Name(),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
}

func isTemp(name string) bool {
	return strings.HasPrefix(name, tempPrefix) && strings.HasSuffix(name, tempSuffix)
}
