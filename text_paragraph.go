package pptx

import (
	"fmt"
	"strings"
)

// Run is a single run of uniformly formatted text, `<a:r>` in the
// emitted XML, or a line break (`<a:br>` holding its `<a:rPr>`) when
// IsBreak is true.
type Run struct {
	Text    string
	Font    *Font
	IsBreak bool
}

// NewRun returns a Run with default font properties.
func NewRun(text string) *Run { return &Run{Text: text, Font: NewFont()} }

// NewBreak returns a line-break Run.
func NewBreak() *Run { return &Run{IsBreak: true, Font: NewFont()} }

// XML renders the run as `<a:r>`, or for a break as `<a:br>` wrapping
// its `<a:rPr>`.
func (r *Run) XML() (string, error) {
	if r.IsBreak {
		rPr, err := r.Font.XML("a:rPr")
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("<a:br>%s</a:br>", rPr), nil
	}
	rPr, err := r.Font.XML("a:rPr")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("<a:r>%s<a:t>%s</a:t></a:r>", rPr, xmlEscape(r.Text)), nil
}

// BulletKind closes the set of bullet format variants (spec §4.5).
type BulletKind int

// Supported BulletKind values.
const (
	BulletKindInherit BulletKind = iota // no explicit bullet element; inherit from layout/master
	BulletKindNone
	BulletKindCharacter
	BulletKindAutoNumbered
	BulletKindPicture
)

// BulletFormat is a tagged variant over a paragraph's bullet
// rendering.
type BulletFormat struct {
	Kind      BulletKind
	Character string           // BulletKindCharacter
	Scheme    AutoNumberScheme // BulletKindAutoNumbered
	StartAt   int              // BulletKindAutoNumbered, 1-based; 0 means omit startAt
	PictureRelID string        // BulletKindPicture
	Color     *ColorFormat     // optional <a:buClr>
	FontName  string           // optional <a:buFont>
}

// XML renders the bullet element(s), "" for BulletKindInherit.
func (b BulletFormat) XML() string {
	var sb strings.Builder
	if b.Color != nil {
		sb.WriteString(b.Color.XML("a:buClr"))
	}
	if b.FontName != "" {
		fmt.Fprintf(&sb, `<a:buFont typeface="%s"/>`, xmlEscape(b.FontName))
	}
	switch b.Kind {
	case BulletKindNone:
		sb.WriteString(`<a:buNone/>`)
	case BulletKindCharacter:
		fmt.Fprintf(&sb, `<a:buChar char="%s"/>`, xmlEscape(b.Character))
	case BulletKindAutoNumbered:
		if b.StartAt > 1 {
			fmt.Fprintf(&sb, `<a:buAutoNum type="%s" startAt="%d"/>`, b.Scheme, b.StartAt)
		} else {
			fmt.Fprintf(&sb, `<a:buAutoNum type="%s"/>`, b.Scheme)
		}
	case BulletKindPicture:
		fmt.Fprintf(&sb, `<a:buBlip><a:blip r:embed="%s"/></a:buBlip>`, b.PictureRelID)
	default:
		return "" // inherit: no element at all
	}
	return sb.String()
}

// Paragraph is an ordered sequence of Runs (a:p), a nesting level,
// alignment, spacing, a default run font, and a bullet format.
type Paragraph struct {
	Runs        []*Run
	Level       int // 0-8
	Alignment   ParagraphAlignment
	SpaceBefore float64 // points
	SpaceAfter  float64
	LineSpacingPct float64 // percent of single line spacing; 0 means unset
	Bullet      BulletFormat
	DefaultFont *Font // "endParaRPr"-style default for runs added after this paragraph
}

// NewParagraph returns an empty paragraph at level 0.
func NewParagraph() *Paragraph {
	return &Paragraph{Alignment: AlignLeft}
}

// AddRun appends a text run and returns it for further formatting.
func (p *Paragraph) AddRun(text string) *Run {
	r := NewRun(text)
	p.Runs = append(p.Runs, r)
	return r
}

// AddBreak appends a line break.
func (p *Paragraph) AddBreak() *Run {
	r := NewBreak()
	p.Runs = append(p.Runs, r)
	return r
}

// Text concatenates the paragraph's run text, ignoring breaks.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs {
		if !r.IsBreak {
			sb.WriteString(r.Text)
		}
	}
	return sb.String()
}

// XML renders the paragraph as `<a:p>`.
func (p *Paragraph) XML() (string, error) {
	var sb strings.Builder
	sb.WriteString("<a:p>")

	attrs := p.pPrAttrs()
	body := p.pPrXML()
	switch {
	case body != "":
		fmt.Fprintf(&sb, "<a:pPr%s>%s</a:pPr>", attrs, body)
	case attrs != "":
		fmt.Fprintf(&sb, "<a:pPr%s/>", attrs)
	}

	for _, r := range p.Runs {
		rx, err := r.XML()
		if err != nil {
			return "", err
		}
		sb.WriteString(rx)
	}

	if p.DefaultFont != nil {
		endPr, err := p.DefaultFont.XML("a:endParaRPr")
		if err != nil {
			return "", err
		}
		sb.WriteString(endPr)
	}

	sb.WriteString("</a:p>")
	return sb.String(), nil
}

func (p *Paragraph) pPrAttrs() string {
	var sb strings.Builder
	if p.Level > 0 {
		fmt.Fprintf(&sb, ` lvl="%d"`, p.Level)
	}
	if p.Alignment != "" && p.Alignment != AlignLeft {
		fmt.Fprintf(&sb, ` algn="%s"`, p.Alignment)
	}
	return sb.String()
}

func (p *Paragraph) pPrXML() string {
	var sb strings.Builder
	if p.LineSpacingPct > 0 {
		fmt.Fprintf(&sb, `<a:lnSpc><a:spcPct val="%d"/></a:lnSpc>`, int(p.LineSpacingPct*1000))
	}
	if p.SpaceBefore > 0 {
		fmt.Fprintf(&sb, `<a:spcBef><a:spcPts val="%d"/></a:spcBef>`, CentipointsFromPoints(p.SpaceBefore))
	}
	if p.SpaceAfter > 0 {
		fmt.Fprintf(&sb, `<a:spcAft><a:spcPts val="%d"/></a:spcAft>`, CentipointsFromPoints(p.SpaceAfter))
	}
	sb.WriteString(p.Bullet.XML())
	if sb.Len() == 0 {
		return ""
	}
	return sb.String()
}
