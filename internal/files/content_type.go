package files

import (
	"mime"
	"path/filepath"
	"strings"
)

// Common MIME content types.
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
	ContentTypeGIF  = "image/gif"
	ContentTypeWebP = "image/webp"
	ContentTypeSVG  = "image/svg+xml"
	ContentTypeBMP  = "image/bmp"
	ContentTypeICO  = "image/x-icon"
	ContentTypeTIFF = "image/tiff"

	ContentTypeMP3  = "audio/mpeg"
	ContentTypeWAV  = "audio/wav"
	ContentTypeOGG  = "audio/ogg"
	ContentTypeFLAC = "audio/flac"

	ContentTypeMP4       = "video/mp4"
	ContentTypeAVI       = "video/x-msvideo"
	ContentTypeMOV       = "video/quicktime"
	ContentTypeVideoWebM = "video/webm"
	ContentTypeVideoOGG  = "video/ogg"
	ContentTypeMKV       = "video/x-matroska"

	ContentTypePDF  = "application/pdf"
	ContentTypeText = "text/plain"
	ContentTypeHTML = "text/html"
	ContentTypeCSS  = "text/css"
	ContentTypeJS   = "text/javascript"
	ContentTypeJSON = "application/json"
	ContentTypeXML  = "application/xml"
	ContentTypeCSV  = "text/csv"

	ContentTypeZIP  = "application/zip"
	ContentTypeTAR  = "application/x-tar"
	ContentTypeGZIP = "application/gzip"

	ContentTypeOctetStream = "application/octet-stream"
)

// contentTypes maps lowercase extensions to MIME types. The host's
// mime.types files are not consulted.
var contentTypes = map[string]string{
	".jpg":  ContentTypeJPEG,
	".jpeg": ContentTypeJPEG,
	".png":  ContentTypePNG,
	".gif":  ContentTypeGIF,
	".webp": ContentTypeWebP,
	".svg":  ContentTypeSVG,
	".bmp":  ContentTypeBMP,
	".ico":  ContentTypeICO,
	".tif":  ContentTypeTIFF,
	".tiff": ContentTypeTIFF,

	".mp3":  ContentTypeMP3,
	".wav":  ContentTypeWAV,
	".oga":  ContentTypeOGG,
	".flac": ContentTypeFLAC,

	".mp4":  ContentTypeMP4,
	".m4v":  ContentTypeMP4,
	".avi":  ContentTypeAVI,
	".mov":  ContentTypeMOV,
	".webm": ContentTypeVideoWebM,
	".ogv":  ContentTypeVideoOGG,
	".mkv":  ContentTypeMKV,

	".pdf":  ContentTypePDF,
	".txt":  ContentTypeText,
	".htm":  ContentTypeHTML,
	".html": ContentTypeHTML,
	".css":  ContentTypeCSS,
	".js":   ContentTypeJS,
	".json": ContentTypeJSON,
	".xml":  ContentTypeXML,
	".csv":  ContentTypeCSV,

	".zip": ContentTypeZIP,
	".tar": ContentTypeTAR,
	".gz":  ContentTypeGZIP,
}

// RenderMode selects how a file is presented on its view page.
type RenderMode string

const (
	RenderImage    RenderMode = "image"
	RenderVideo    RenderMode = "video"
	RenderPDF      RenderMode = "pdf"
	RenderDownload RenderMode = "download"
)

// GuessContentType infers a MIME type from the file name extension.
// It returns an empty string when the extension is unknown.
func GuessContentType(name string) string {
	return contentTypes[strings.ToLower(filepath.Ext(name))]
}

// ContentTypeFor is GuessContentType with an octet-stream fallback,
// suitable for a Content-Type header.
func ContentTypeFor(name string) string {
	if ct := GuessContentType(name); ct != "" {
		return ct
	}
	return ContentTypeOctetStream
}

// RenderModeFor maps a MIME type to its render mode.
func RenderModeFor(contentType string) RenderMode {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}
	switch {
	case strings.HasPrefix(mediaType, "image/"):
		return RenderImage
	case strings.HasPrefix(mediaType, "video/"):
		return RenderVideo
	case mediaType == ContentTypePDF:
		return RenderPDF
	default:
		return RenderDownload
	}
}
