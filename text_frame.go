package pptx

import (
	"fmt"
	"strings"

	"github.com/mohae/deepcopy"
)

// TextFrame holds an ordered non-empty sequence of Paragraphs plus
// body-level properties (spec §3, §4.5). A frame with zero paragraphs
// is invalid and rejected at XML emission (ErrEmptyTextFrame); every
// constructor seeds one empty paragraph so callers starting from
// NewTextFrame never hit that path by accident.
type TextFrame struct {
	Paragraphs []*Paragraph
	WordWrap   WordWrap
	AutoSize   AutoSize
	Anchor     VerticalAnchor
	InsetLeft, InsetRight, InsetTop, InsetBottom Emu
	insetsSet  bool
	fontScalePct float64 // 0 means unset (100%); set by FitText
}

// Default text insets PowerPoint applies when none are specified.
const (
	defaultInsetLR = Emu(91440)
	defaultInsetTB = Emu(45720)
)

// NewTextFrame returns a TextFrame with one empty paragraph and
// PowerPoint's default insets and word wrap.
func NewTextFrame() *TextFrame {
	return &TextFrame{
		Paragraphs: []*Paragraph{NewParagraph()},
		WordWrap:   WordWrapSquare,
		Anchor:     AnchorTop,
	}
}

// SetText replaces the frame's content with paragraphs split on "\n",
// one run per non-empty line (an empty line becomes an empty
// paragraph), satisfying the round-trip law in spec §8
// ("TextFrame::text(tf.set_text(s)) returns s for any s whose only
// control character is \n").
func (tf *TextFrame) SetText(s string) {
	lines := strings.Split(s, "\n")
	tf.Paragraphs = make([]*Paragraph, 0, len(lines))
	for _, line := range lines {
		p := NewParagraph()
		if line != "" {
			p.AddRun(line)
		}
		tf.Paragraphs = append(tf.Paragraphs, p)
	}
}

// Text returns the frame's paragraphs joined by "\n", inverse of
// SetText for control-character-free input.
func (tf *TextFrame) Text() string {
	parts := make([]string, len(tf.Paragraphs))
	for i, p := range tf.Paragraphs {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

// AddParagraph appends a new empty paragraph and returns it.
func (tf *TextFrame) AddParagraph() *Paragraph {
	p := NewParagraph()
	tf.Paragraphs = append(tf.Paragraphs, p)
	return p
}

// SetInsets sets explicit left/top/right/bottom text margins.
func (tf *TextFrame) SetInsets(left, top, right, bottom Emu) {
	tf.InsetLeft, tf.InsetTop, tf.InsetRight, tf.InsetBottom = left, top, right, bottom
	tf.insetsSet = true
}

// FitText applies a percentage scale (0-100+) to the font size of
// every run in the frame that has an explicit size, without measuring
// glyph widths — a deliberate visual approximation, not real text
// layout (spec §4.5). A percentage of 0 removes the fontScale
// attribute; run sizes scaled by an earlier call keep their scaled
// values.
func (tf *TextFrame) FitText(pct float64) {
	tf.fontScalePct = pct
	if pct == 0 {
		return
	}
	scale := pct / 100
	for _, p := range tf.Paragraphs {
		for _, r := range p.Runs {
			if r.Font != nil && r.Font.Size > 0 {
				r.Font.Size *= scale
			}
		}
	}
}

// clone deep-copies the frame, restoring the unexported autosize
// bookkeeping that reflection-based copying drops.
func (tf *TextFrame) clone() *TextFrame {
	c, ok := deepcopy.Copy(tf).(*TextFrame)
	if !ok {
		return NewTextFrame()
	}
	c.insetsSet = tf.insetsSet
	c.fontScalePct = tf.fontScalePct
	return c
}

// XML renders the frame as `<p:txBody>`.
func (tf *TextFrame) XML() (string, error) { return tf.xmlAs("p:txBody") }

// xmlAs renders the frame under a caller-chosen element name; table
// cells host the same content model as `<a:txBody>`.
func (tf *TextFrame) xmlAs(elem string) (string, error) {
	if len(tf.Paragraphs) == 0 {
		return "", ErrEmptyTextFrame
	}
	var sb strings.Builder
	sb.WriteString("<" + elem + ">")
	sb.WriteString(tf.bodyPrXML())
	for _, p := range tf.Paragraphs {
		px, err := p.XML()
		if err != nil {
			return "", err
		}
		sb.WriteString(px)
	}
	sb.WriteString("</" + elem + ">")
	return sb.String(), nil
}

func (tf *TextFrame) bodyPrXML() string {
	var attrs strings.Builder
	if tf.WordWrap == WordWrapNone {
		attrs.WriteString(` wrap="none"`)
	}
	li, ti, ri, bi := defaultInsetLR, defaultInsetTB, defaultInsetLR, defaultInsetTB
	if tf.insetsSet {
		li, ti, ri, bi = tf.InsetLeft, tf.InsetTop, tf.InsetRight, tf.InsetBottom
	}
	fmt.Fprintf(&attrs, ` lIns="%d" tIns="%d" rIns="%d" bIns="%d"`, int64(li), int64(ti), int64(ri), int64(bi))
	if tf.Anchor != "" && tf.Anchor != AnchorTop {
		fmt.Fprintf(&attrs, ` anchor="%s"`, tf.Anchor)
	}

	var body strings.Builder
	switch tf.AutoSize {
	case AutoSizeShapeToFitText:
		body.WriteString(`<a:spAutoFit/>`)
	case AutoSizeTextToFitShape:
		if tf.fontScalePct > 0 {
			fmt.Fprintf(&body, `<a:normAutofit fontScale="%s"/>`, formatPercent(tf.fontScalePct))
		} else {
			body.WriteString(`<a:normAutofit/>`)
		}
	default:
		if tf.fontScalePct > 0 {
			fmt.Fprintf(&body, `<a:normAutofit fontScale="%s"/>`, formatPercent(tf.fontScalePct))
		}
	}

	if body.Len() == 0 {
		return fmt.Sprintf("<a:bodyPr%s/>", attrs.String())
	}
	return fmt.Sprintf("<a:bodyPr%s>%s</a:bodyPr>", attrs.String(), body.String())
}
