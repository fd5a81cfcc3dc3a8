package pptx

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// MediaKind closes the set of media categories the package can
// embed, beyond the still-image formats OPC content-type detection
// already covers.
type MediaKind int

// Supported MediaKind values.
const (
	MediaKindImage MediaKind = iota
	MediaKindVideo
	MediaKindAudio
)

// videoExtensions and audioExtensions classify movie/sound files by
// container extension for ClassifyMedia; the files are never decoded.
var (
	videoExtensions = map[string]bool{"mp4": true, "mov": true, "avi": true, "wmv": true, "m4v": true}
	audioExtensions = map[string]bool{"mp3": true, "wav": true, "m4a": true, "wma": true}
)

// ClassifyMedia returns the MediaKind for a file extension (without
// leading dot, case-insensitive).
func ClassifyMedia(ext string) MediaKind {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if videoExtensions[ext] {
		return MediaKindVideo
	}
	if audioExtensions[ext] {
		return MediaKindAudio
	}
	return MediaKindImage
}

// NativeImageSize decodes blob far enough to report its pixel
// dimensions, supporting PNG/JPEG/GIF natively via image/*, plus
// BMP/TIFF via the golang.org/x/image decoders registered above (the
// stdlib image package does not include either). Returns ok=false
// for formats this decodes no metadata for (SVG, EMF, WMF), which is
// not an error: callers fall back to the caller-supplied size.
func NativeImageSize(blob []byte) (width, height int, ok bool) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(blob))
	if err != nil {
		return 0, 0, false
	}
	return cfg.Width, cfg.Height, true
}

// DetectMimeType returns the best-guess MIME type for blob using
// magic-byte sniffing. When no detector matches, an extHint of "emf",
// "wmf" or "svg" (a bare extension, leading dot optional) selects
// that type; any other hint yields application/octet-stream.
func DetectMimeType(blob []byte, extHint string) string {
	mt := mimetype.Detect(blob)
	if mt.String() != "" && mt.String() != ContentTypeOctetStream {
		return mt.String()
	}
	switch strings.ToLower(strings.TrimPrefix(extHint, ".")) {
	case "emf":
		return ContentTypeEMF
	case "wmf":
		return ContentTypeWMF
	case "svg":
		return ContentTypeSVG
	default:
		return ContentTypeOctetStream
	}
}
