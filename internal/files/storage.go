package files

import "io"

// FileStorage defines the interface for the physical file storage.
// Names passed in have already been validated with ValidateName.
type FileStorage interface {
	// Save writes content under name, replacing any existing file
	Save(name string, content io.Reader) (*File, error)

	// Stat returns metadata of a stored file or ErrNotFound
	Stat(name string) (*File, error)

	// Open returns the stored file and a reader for its content.
	// The caller must close the reader.
	Open(name string) (*File, io.ReadSeekCloser, error)

	// List returns all stored files
	List() ([]*File, error)
}
