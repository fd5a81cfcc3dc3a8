package pptx

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, p *Presentation) *Presentation {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))
	data := buf.Bytes()
	reopened, err := OpenReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return reopened
}

func roundTripFile(t *testing.T, p *Presentation) *Presentation {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roundtrip.pptx")
	require.NoError(t, p.Save(path))
	reopened, err := Open(path)
	require.NoError(t, err)
	return reopened
}

func buildSamplePresentation(t *testing.T) *Presentation {
	p := newTestPresentation(t)
	layout, err := p.LayoutByName("Title and Content")
	require.NoError(t, err)

	slide, err := p.AddSlide(layout)
	require.NoError(t, err)
	slide.SetNotes("speaker notes for slide one")
	require.NoError(t, slide.SetName("First"))
	slide.SetTransition(Transition{Type: TransitionFade, Speed: TransitionSpeedMedium})

	box := slide.Shapes().AddTextBox(Inches(1), Inches(1), Inches(4), Inches(1))
	box.TextFrame.SetText("hello from a round trip")

	return p
}

func TestRoundTripPreservesSlideCount(t *testing.T) {
	p := buildSamplePresentation(t)
	reopened := roundTrip(t, p)

	assert.Len(t, reopened.Slides, 1)
	assert.Equal(t, p.SlideWidth, reopened.SlideWidth)
	assert.Equal(t, p.SlideHeight, reopened.SlideHeight)
	assert.Len(t, reopened.Masters, 1)
	assert.Len(t, reopened.Layouts, 11)
}

func TestRoundTripPreservesNotesAndHidden(t *testing.T) {
	p := buildSamplePresentation(t)
	p.Slides[0].SetHidden(true)

	reopened := roundTripFile(t, p)
	require.Len(t, reopened.Slides, 1)
	assert.Equal(t, "speaker notes for slide one", reopened.Slides[0].Notes())
	assert.True(t, reopened.Slides[0].Hidden())
}

func TestRoundTripShapeTreeInsertionMode(t *testing.T) {
	p := buildSamplePresentation(t)
	reopened := roundTrip(t, p)

	slide := reopened.Slides[0]
	text := slide.ExtractText()
	assert.Contains(t, text, "hello from a round trip")

	// appending shapes after reopen must splice in alongside the
	// preserved raw body, not discard it, and their ids must not
	// collide with the shapes already baked into the raw bytes.
	box := slide.Shapes().AddTextBox(Inches(1), Inches(3), Inches(4), Inches(1))
	box.TextFrame.SetText("appended after open")
	box2 := slide.Shapes().AddTextBox(Inches(1), Inches(4), Inches(4), Inches(1))

	rawIDs := scanRawShapeIDs(slide.Shapes().rawSpTreeOpen)
	assert.NotEmpty(t, rawIDs)
	assert.False(t, rawIDs[box.ShapeID])
	assert.False(t, rawIDs[box2.ShapeID])
	assert.NotEqual(t, box.ShapeID, box2.ShapeID)

	xmlStr, err := slide.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, "hello from a round trip")
	assert.Contains(t, xmlStr, "appended after open")
}

func TestAddSlideOnOpenedPresentationClonesPlaceholders(t *testing.T) {
	p := buildSamplePresentation(t)
	reopened := roundTrip(t, p)

	layout, err := reopened.LayoutByName("Title Slide")
	require.NoError(t, err)
	require.NotEmpty(t, layout.Placeholders().Shapes())

	slide, err := reopened.AddSlide(layout)
	require.NoError(t, err)
	require.NotEmpty(t, slide.Shapes().Shapes())

	var title *AutoShape
	for _, sh := range slide.Shapes().Shapes() {
		if a, ok := AsAutoShape(sh); ok && a.Placeholder != nil {
			title = a
			break
		}
	}
	require.NotNil(t, title)
	title.SetText("Hello")

	final := roundTrip(t, reopened)
	require.Len(t, final.Slides, 2)
	assert.Contains(t, final.Slides[1].ExtractText(), "Hello")
}

func TestOpenedMastersExposePlaceholders(t *testing.T) {
	p := buildSamplePresentation(t)
	reopened := roundTrip(t, p)

	require.Len(t, reopened.Masters, 1)
	assert.NotEmpty(t, reopened.Masters[0].Placeholders().Shapes())
}

func TestSaveTwiceIsIdempotent(t *testing.T) {
	p := buildSamplePresentation(t)

	var first, second bytes.Buffer
	require.NoError(t, p.WriteTo(&first))
	require.NoError(t, p.WriteTo(&second))

	r1, err := OpenReader(bytes.NewReader(first.Bytes()), int64(first.Len()))
	require.NoError(t, err)
	r2, err := OpenReader(bytes.NewReader(second.Bytes()), int64(second.Len()))
	require.NoError(t, err)

	assert.Equal(t, len(r1.Slides), len(r2.Slides))
	assert.Equal(t, r1.Slides[0].Notes(), r2.Slides[0].Notes())
}

func TestSaveAfterDeleteSlideDropsStaleParts(t *testing.T) {
	p := buildSamplePresentation(t)
	layout, err := p.LayoutByName("Blank")
	require.NoError(t, err)
	second, err := p.AddSlide(layout)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf))

	require.NoError(t, p.DeleteSlide(second.ID()))
	buf.Reset()
	require.NoError(t, p.WriteTo(&buf))

	reopened, err := OpenReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	assert.Len(t, reopened.Slides, 1)
	assert.Nil(t, reopened.pkg.Part(PackURI("/ppt/slides/slide2.xml")))
}
