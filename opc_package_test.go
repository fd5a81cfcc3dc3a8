package pptx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPartRejectsDuplicateURI(t *testing.T) {
	pkg, err := NewPackage(Options{})
	require.NoError(t, err)

	uri := PackURI("/ppt/media/image1.png")
	require.NoError(t, pkg.AddPart(NewPart(uri, ContentTypePNG, []byte("a"))))

	err = pkg.AddPart(NewPart(uri, ContentTypePNG, []byte("b")))
	assert.Error(t, err)
	var pkgErr *PackageError
	require.ErrorAs(t, err, &pkgErr)
	assert.Equal(t, ErrKindDuplicatePartName, pkgErr.Kind)
}

func TestGetOrAddImagePartDeduplicatesByHash(t *testing.T) {
	pkg, err := NewPackage(Options{})
	require.NoError(t, err)

	blob := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 1, 2, 3}
	uri1, digest1, err := pkg.GetOrAddImagePart(blob, ".png")
	require.NoError(t, err)
	uri2, digest2, err := pkg.GetOrAddImagePart(blob, ".png")
	require.NoError(t, err)

	assert.Equal(t, uri1, uri2)
	assert.Equal(t, digest1, digest2)

	other := []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 9, 9, 9}
	uri3, _, err := pkg.GetOrAddImagePart(other, ".png")
	require.NoError(t, err)
	assert.NotEqual(t, uri1, uri3)
}

func TestPackageSaveAndOpenRoundTrip(t *testing.T) {
	pkg, err := NewPackage(Options{})
	require.NoError(t, err)
	uri := PackURI("/ppt/media/image1.png")
	require.NoError(t, pkg.AddPart(NewPart(uri, ContentTypePNG, []byte("fake-png-bytes"))))
	pkg.Rels().Add(RelTypeImage, "ppt/media/image1.png", TargetInternal)

	data, err := pkg.Bytes()
	require.NoError(t, err)

	reopened, err := OpenPackage(bytes.NewReader(data), int64(len(data)), Options{})
	require.NoError(t, err)

	part := reopened.Part(uri)
	require.NotNil(t, part)
	assert.Equal(t, []byte("fake-png-bytes"), part.Blob)
	assert.Len(t, reopened.Rels().ByType(RelTypeImage), 1)
}

func TestRemovePartDropsContentTypeOverride(t *testing.T) {
	pkg, err := NewPackage(Options{})
	require.NoError(t, err)
	uri := PackURI("/ppt/slides/slide1.xml")
	require.NoError(t, pkg.AddPart(NewPart(uri, ContentTypeSlide, []byte("<p:sld/>"))))

	pkg.RemovePart(uri)
	assert.Nil(t, pkg.Part(uri))

	require.NoError(t, pkg.AddPart(NewPart(uri, ContentTypeSlide, []byte("<p:sld/>"))))
}
