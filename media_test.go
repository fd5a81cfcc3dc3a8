package pptx

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyMedia(t *testing.T) {
	assert.Equal(t, MediaKindVideo, ClassifyMedia("mp4"))
	assert.Equal(t, MediaKindVideo, ClassifyMedia(".MOV"))
	assert.Equal(t, MediaKindAudio, ClassifyMedia("mp3"))
	assert.Equal(t, MediaKindImage, ClassifyMedia("png"))
	assert.Equal(t, MediaKindImage, ClassifyMedia("anything-else"))
}

func TestNativeImageSizePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 24, 16))))

	w, h, ok := NativeImageSize(buf.Bytes())
	require.True(t, ok)
	assert.Equal(t, 24, w)
	assert.Equal(t, 16, h)

	_, _, ok = NativeImageSize([]byte("not an image"))
	assert.False(t, ok)
}

func TestDetectMimeTypeFallsBackToHint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 1, 1))))
	assert.Equal(t, "image/png", DetectMimeType(buf.Bytes(), ""))

	assert.Equal(t, ContentTypeEMF, DetectMimeType([]byte{0x00, 0x01}, "emf"))
	assert.Equal(t, ContentTypeWMF, DetectMimeType([]byte{0x00, 0x01}, ".wmf"))
	assert.Equal(t, ContentTypeOctetStream, DetectMimeType([]byte{0x00, 0x01}, ""))
}

func TestImagePartNumberingSkipsGaps(t *testing.T) {
	pkg, err := NewPackage(Options{})
	require.NoError(t, err)
	require.NoError(t, pkg.AddPart(NewPart(PackURI("/ppt/media/image7.png"), ContentTypePNG, []byte("seven"))))

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	uri, _, err := pkg.GetOrAddImagePart(buf.Bytes(), "")
	require.NoError(t, err)
	assert.Equal(t, PackURI("/ppt/media/image8.png"), uri)
}
