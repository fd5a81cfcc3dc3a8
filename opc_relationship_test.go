package pptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAllocatesSmallestUnusedRID(t *testing.T) {
	rels := NewRelationships()
	r1 := rels.Add(RelTypeImage, "media/image1.png", TargetInternal)
	r2 := rels.Add(RelTypeImage, "media/image2.png", TargetInternal)
	assert.Equal(t, "rId1", r1.ID)
	assert.Equal(t, "rId2", r2.ID)

	rels.Remove("rId1")
	r3 := rels.Add(RelTypeImage, "media/image3.png", TargetInternal)
	assert.Equal(t, "rId1", r3.ID)

	// removal never renumbers survivors
	assert.NotNil(t, rels.Get("rId2"))
	assert.Equal(t, "media/image2.png", rels.Get("rId2").TargetURI)
}

func TestAddWithIDRejectsDuplicate(t *testing.T) {
	rels := NewRelationships()
	require.NoError(t, rels.AddWithID("rId3", RelTypeImage, "x", TargetInternal))
	assert.Error(t, rels.AddWithID("rId3", RelTypeImage, "y", TargetInternal))

	next := rels.Add(RelTypeImage, "z", TargetInternal)
	assert.Equal(t, "rId1", next.ID)
}

func TestRelationshipsRoundTripXML(t *testing.T) {
	rels := NewRelationships()
	rels.Add(RelTypeSlide, "slides/slide1.xml", TargetInternal)
	rels.Add(RelTypeHyperlink, "https://example.com", TargetExternal)

	data, err := rels.MarshalXML()
	require.NoError(t, err)

	parsed, err := ParseRelationships(data)
	require.NoError(t, err)
	assert.Len(t, parsed.All(), 2)

	ext := parsed.ByType(RelTypeHyperlink)
	require.Len(t, ext, 1)
	assert.Equal(t, TargetExternal, ext[0].TargetMode)
	assert.Equal(t, "https://example.com", ext[0].TargetURI)
}

func TestPackURIArithmetic(t *testing.T) {
	u, err := NewPackURI("/ppt/slides/slide1.xml")
	require.NoError(t, err)
	assert.Equal(t, PackURI("/ppt/slides"), u.BaseURI())
	assert.Equal(t, "xml", u.Ext())
	assert.Equal(t, PackURI("/ppt/slides/_rels/slide1.xml.rels"), u.RelsURI())
	assert.Equal(t, "ppt/slides/slide1.xml", u.MemberName())

	_, err = NewPackURI("relative/path.xml")
	assert.Error(t, err)
}

func TestJoinRefResolvesRelativeTargets(t *testing.T) {
	got, err := JoinRef("/ppt/slides", "../media/image1.png")
	require.NoError(t, err)
	assert.Equal(t, PackURI("/ppt/media/image1.png"), got)

	got, err = JoinRef("/ppt", "slideMasters/slideMaster1.xml")
	require.NoError(t, err)
	assert.Equal(t, PackURI("/ppt/slideMasters/slideMaster1.xml"), got)

	got, err = JoinRef("/ppt/slides", "/docProps/core.xml")
	require.NoError(t, err)
	assert.Equal(t, PackURI("/docProps/core.xml"), got)
}

func TestRelativeRefInverseOfJoinRef(t *testing.T) {
	base := PackURI("/ppt/slides")
	target := PackURI("/ppt/media/image3.png")
	ref := target.RelativeRef(base)
	back, err := JoinRef(base, ref)
	require.NoError(t, err)
	assert.Equal(t, target, back)
}
