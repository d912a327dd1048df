package files

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when no stored file has the requested name
	ErrNotFound = errors.New("file not found")

	// ErrPayloadTooLarge is returned when upload content exceeds the size limit
	ErrPayloadTooLarge = errors.New("file too large")

	// ErrInvalidName is returned for names that cannot be used as a flat storage key
	ErrInvalidName = errors.New("invalid file name")
)

// File represents a stored file. It is identified solely by its name.
type File struct {
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	ModTime     time.Time `json:"mod_time"`
}

// ValidateName checks that name refers to an entry directly inside the
// storage directory.
func ValidateName(name string) error {
	switch name {
	case "", ".", "..":
		return ErrInvalidName
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return ErrInvalidName
	}
	return nil
}
