package files

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGuessContentType(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"photo.png", ContentTypePNG},
		{"PHOTO.JPG", ContentTypeJPEG},
		{"clip.mp4", ContentTypeMP4},
		{"movie.webm", ContentTypeVideoWebM},
		{"doc.pdf", ContentTypePDF},
		{"archive.tar.gz", ContentTypeGZIP},
		{"doc.xyz", ""},
		{"noext", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GuessContentType(tt.name))
		})
	}
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, ContentTypePNG, ContentTypeFor("a.png"))
	assert.Equal(t, ContentTypeOctetStream, ContentTypeFor("doc.xyz"))
}

func TestRenderModeFor(t *testing.T) {
	tests := []struct {
		contentType string
		expected    RenderMode
	}{
		{"image/png", RenderImage},
		{"image/svg+xml", RenderImage},
		{"video/mp4", RenderVideo},
		{"application/pdf", RenderPDF},
		{"text/plain; charset=utf-8", RenderDownload},
		{"audio/mpeg", RenderDownload},
		{"", RenderDownload},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.expected, RenderModeFor(tt.contentType))
		})
	}
}
