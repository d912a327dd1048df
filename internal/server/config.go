package server

import (
	"errors"
	"log/slog"
	"time"
)

// Config holds the process-wide settings. It is built once at startup and
// not mutated afterwards.
type Config struct {
	UploadDir       string        `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxFileSizeMB   int64         `env:"MAX_FILE_SIZE_MB" envDefault:"50"`
	ListenAddr      string        `env:"LISTEN_ADDR" envDefault:":8080"`
	LogLevel        slog.Level    `env:"LOG_LEVEL" envDefault:"INFO"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// MaxUploadSize returns the upload limit in bytes
func (c *Config) MaxUploadSize() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

// Validate reports settings the server cannot run with
func (c *Config) Validate() error {
	if c.UploadDir == "" {
		return errors.New("UPLOAD_DIR must not be empty")
	}
	if c.MaxFileSizeMB <= 0 {
		return errors.New("MAX_FILE_SIZE_MB must be positive")
	}
	return nil
}
