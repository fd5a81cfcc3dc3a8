package pptx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTextRoundTrip(t *testing.T) {
	tf := NewTextFrame()
	for _, s := range []string{"hello", "line one\nline two", "a\n\nb", ""} {
		tf.SetText(s)
		assert.Equal(t, s, tf.Text())
	}
}

func TestSetTextSplitsParagraphsOnNewline(t *testing.T) {
	tf := NewTextFrame()
	tf.SetText("one\ntwo\nthree")
	assert.Len(t, tf.Paragraphs, 3)
	assert.Equal(t, "two", tf.Paragraphs[1].Text())
}

func TestTextFrameXMLEscapesContent(t *testing.T) {
	tf := NewTextFrame()
	tf.SetText(`a <b> & "c"`)
	xmlStr, err := tf.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, "a &lt;b&gt; &amp; &quot;c&quot;")
}

func TestEmptyTextFrameRejected(t *testing.T) {
	tf := &TextFrame{}
	_, err := tf.XML()
	assert.ErrorIs(t, err, ErrEmptyTextFrame)
}

func TestRunRejectsNonPositiveFontSize(t *testing.T) {
	p := NewParagraph()
	r := p.AddRun("x")
	r.Font.Size = -4
	_, err := r.XML()
	assert.ErrorIs(t, err, ErrInvalidFontSize)
}

func TestFontXMLAttributes(t *testing.T) {
	f := NewFont().SetSize(18).SetBold(true).SetItalic(true).
		SetUnderline(UnderlineSingle).SetStrikethrough(true).SetName("Arial")
	f.SetColor(RGBColor("#ff0000"))

	xmlStr, err := f.XML("a:rPr")
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `sz="1800"`)
	assert.Contains(t, xmlStr, `b="1"`)
	assert.Contains(t, xmlStr, `i="1"`)
	assert.Contains(t, xmlStr, `u="sng"`)
	assert.Contains(t, xmlStr, `strike="sngStrike"`)
	assert.Contains(t, xmlStr, `<a:srgbClr val="FF0000"/>`)
	assert.Contains(t, xmlStr, `<a:latin typeface="Arial"/>`)
}

func TestSubscriptSuperscriptExclusive(t *testing.T) {
	f := NewFont().SetSubscript(true)
	f.SetSuperscript(true)
	assert.False(t, f.Subscript)

	xmlStr, err := f.XML("a:rPr")
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `baseline="30000"`)
}

func TestBulletFormats(t *testing.T) {
	p := NewParagraph()
	p.AddRun("item")

	p.Bullet = BulletFormat{Kind: BulletKindNone}
	xmlStr, err := p.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<a:buNone/>`)

	p.Bullet = BulletFormat{Kind: BulletKindCharacter, Character: "•"}
	xmlStr, err = p.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<a:buChar char="•"/>`)

	p.Bullet = BulletFormat{Kind: BulletKindAutoNumbered, Scheme: AutoNumArabicPeriod, StartAt: 3}
	xmlStr, err = p.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<a:buAutoNum type="arabicPeriod" startAt="3"/>`)

	p.Bullet = BulletFormat{Kind: BulletKindPicture, PictureRelID: "rId7"}
	xmlStr, err = p.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<a:buBlip><a:blip r:embed="rId7"/></a:buBlip>`)
}

func TestFitTextScalesRunSizes(t *testing.T) {
	tf := NewTextFrame()
	tf.SetText("resize me")
	tf.Paragraphs[0].Runs[0].Font.SetSize(20)

	tf.FitText(50)
	assert.InDelta(t, 10.0, tf.Paragraphs[0].Runs[0].Font.Size, 1e-9)

	xmlStr, err := tf.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `fontScale="50000"`)
}

func TestLineBreaksBetweenRuns(t *testing.T) {
	tf := NewTextFrame()
	p := tf.Paragraphs[0]
	p.AddRun("before")
	p.AddBreak()
	p.AddRun("after")

	xmlStr, err := tf.XML()
	require.NoError(t, err)
	idxBreak := strings.Index(xmlStr, "<a:br>")
	idxAfter := strings.Index(xmlStr, "after")
	require.NotEqual(t, -1, idxBreak)
	assert.Less(t, strings.Index(xmlStr, "before"), idxBreak)
	assert.Less(t, idxBreak, idxAfter)
}
