package pptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPresentation(t *testing.T) *Presentation {
	p, err := New()
	require.NoError(t, err)
	return p
}

func TestNewHasStandardLayouts(t *testing.T) {
	p := newTestPresentation(t)
	assert.Len(t, p.Masters, 1)
	assert.Len(t, p.Layouts, 11)
	assert.Empty(t, p.Slides)
}

func TestAddSlideClonesLayoutPlaceholders(t *testing.T) {
	p := newTestPresentation(t)
	layout, err := p.LayoutByName("Title Slide")
	require.NoError(t, err)

	slide, err := p.AddSlide(layout)
	require.NoError(t, err)
	assert.Equal(t, uint32(256), slide.ID())
	assert.Equal(t, len(layout.shapes.Shapes()), slide.Shapes().Len())

	for i, sh := range slide.Shapes().Shapes() {
		assert.NotSame(t, layout.shapes.Shapes()[i], sh)
	}
}

func TestAddSlideRejectsForeignLayout(t *testing.T) {
	p := newTestPresentation(t)
	other := newTestPresentation(t)
	foreign, err := other.LayoutByName("Blank")
	require.NoError(t, err)

	_, err = p.AddSlide(foreign)
	assert.Error(t, err)
	assert.IsType(t, ErrUnknownLayout{}, err)
}

func TestDeleteSlideRemovesFromSections(t *testing.T) {
	p := newTestPresentation(t)
	layout, err := p.LayoutByName("Blank")
	require.NoError(t, err)

	s1, err := p.AddSlide(layout)
	require.NoError(t, err)
	s2, err := p.AddSlide(layout)
	require.NoError(t, err)

	sec := p.AddSection("Intro")
	sec.SlideIDs = []uint32{s1.ID(), s2.ID()}

	require.NoError(t, p.DeleteSlide(s1.ID()))
	assert.Len(t, p.Slides, 1)
	assert.Equal(t, []uint32{s2.ID()}, sec.SlideIDs)

	err = p.DeleteSlide(s1.ID())
	assert.IsType(t, ErrSlideNotExist{}, err)
}

func TestMoveSlideReorders(t *testing.T) {
	p := newTestPresentation(t)
	layout, err := p.LayoutByName("Blank")
	require.NoError(t, err)

	s1, _ := p.AddSlide(layout)
	s2, _ := p.AddSlide(layout)
	s3, _ := p.AddSlide(layout)

	require.NoError(t, p.MoveSlide(0, 2))
	assert.Equal(t, []*Slide{s2, s3, s1}, p.Slides)

	assert.Error(t, p.MoveSlide(0, 9))
}

func TestCopySlideDeepClones(t *testing.T) {
	p := newTestPresentation(t)
	layout, err := p.LayoutByName("Title Slide")
	require.NoError(t, err)

	src, err := p.AddSlide(layout)
	require.NoError(t, err)
	src.SetNotes("speaker notes")
	require.NoError(t, src.SetName("Original"))

	dst, err := p.CopySlide(0)
	require.NoError(t, err)

	assert.NotEqual(t, src.ID(), dst.ID())
	assert.Equal(t, "speaker notes", dst.Notes())
	assert.Equal(t, "Original", dst.Name())
	assert.Equal(t, src.Shapes().Len(), dst.Shapes().Len())
	for i, sh := range src.Shapes().Shapes() {
		assert.NotSame(t, sh, dst.Shapes().Shapes()[i])
	}
}

func TestAddChartToSlideWiresRelationships(t *testing.T) {
	p := newTestPresentation(t)
	layout, err := p.LayoutByName("Blank")
	require.NoError(t, err)
	slide, err := p.AddSlide(layout)
	require.NoError(t, err)

	data := NewCategoryChartData([]string{"Q1", "Q2"}).AddSeries("Revenue", []float64{1, 2})
	chart, err := NewChart(ChartBarClustered, data)
	require.NoError(t, err)

	frame, err := p.AddChartToSlide(slide, chart, Inches(1), Inches(1), Inches(4), Inches(3))
	require.NoError(t, err)
	assert.NotEmpty(t, chart.relID)
	assert.NotNil(t, frame.Chart)
	assert.Len(t, slide.rels().ByType(RelTypeChart), 1)
}

func TestAddImageToSlideDeduplicates(t *testing.T) {
	p := newTestPresentation(t)
	layout, err := p.LayoutByName("Blank")
	require.NoError(t, err)
	slide, err := p.AddSlide(layout)
	require.NoError(t, err)

	blob := []byte("\x89PNGfakeimagebytes")
	pic1, err := p.AddImageToSlide(slide, blob, ".png", 0, 0, Inches(1), Inches(1))
	require.NoError(t, err)
	pic2, err := p.AddImageToSlide(slide, blob, ".png", 0, 0, Inches(1), Inches(1))
	require.NoError(t, err)

	assert.NotNil(t, pic1)
	assert.NotNil(t, pic2)
	assert.Len(t, slide.rels().ByType(RelTypeImage), 2)

	// both pictures point at the one deduplicated media part
	imgRels := slide.rels().ByType(RelTypeImage)
	require.Len(t, imgRels, 2)
	assert.Equal(t, imgRels[0].TargetURI, imgRels[1].TargetURI)
}

func TestExtractTextJoinsSlideAndNotes(t *testing.T) {
	p := newTestPresentation(t)
	layout, err := p.LayoutByName("Title Slide")
	require.NoError(t, err)
	slide, err := p.AddSlide(layout)
	require.NoError(t, err)

	for _, sh := range slide.Shapes().Shapes() {
		if a, ok := AsAutoShape(sh); ok && a.TextFrame != nil {
			a.TextFrame.AddParagraph().AddRun("Hello deck")
			break
		}
	}
	slide.SetNotes("remember the demo")

	text := p.ExtractText()
	assert.Contains(t, text, "Hello deck")
	assert.Contains(t, text, "remember the demo")
}
