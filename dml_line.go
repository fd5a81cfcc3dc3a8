package pptx

import "fmt"

// LineEnd describes an arrowhead at one end of a line or connector.
type LineEnd struct {
	Type   string // ST_LineEndType: "none", "triangle", "stealth", "diamond", "oval", "arrow"
	Width  string // ST_LineEndWidth: "sm", "med", "lg"
	Length string // ST_LineEndLength: "sm", "med", "lg"
}

// XML renders the line end as the given element name
// ("a:headEnd" or "a:tailEnd").
func (e LineEnd) XML(elem string) string {
	return fmt.Sprintf(`<%s type="%s" w="%s" len="%s"/>`, elem, e.Type, e.Width, e.Length)
}

// LineFormat carries the outline a shape, connector, or chart series
// border is drawn with (spec §4.8).
type LineFormat struct {
	Width     Emu
	Dash      LineDashStyle
	Fill      FillFormat
	Cap       LineCap
	Join      LineJoin
	HeadEnd   *LineEnd
	TailEnd   *LineEnd
	NoLine    bool
}

// NewLineFormat returns a 1pt solid black line, PowerPoint's default.
func NewLineFormat() LineFormat {
	return LineFormat{
		Width: Points(1),
		Dash:  DashSolid,
		Fill:  SolidFill(ColorBlack),
		Cap:   CapFlat,
		Join:  JoinRound,
	}
}

// XML renders the `<a:ln>` element.
func (l LineFormat) XML() string { return l.xmlAs("a:ln") }

// xmlAs renders the line under a caller-chosen element name; table
// cell borders reuse the same content model as `<a:lnL>`/`<a:lnR>`/
// `<a:lnT>`/`<a:lnB>`.
func (l LineFormat) xmlAs(elem string) string {
	if l.NoLine {
		return fmt.Sprintf(`<%s><a:noFill/></%s>`, elem, elem)
	}
	join := ""
	switch l.Join {
	case JoinBevel:
		join = `<a:bevel/>`
	case JoinMiter:
		join = `<a:miter/>`
	default:
		join = `<a:round/>`
	}
	ends := ""
	if l.HeadEnd != nil {
		ends += l.HeadEnd.XML("a:headEnd")
	}
	if l.TailEnd != nil {
		ends += l.TailEnd.XML("a:tailEnd")
	}
	lineCap := l.Cap
	if lineCap == "" {
		lineCap = CapFlat
	}
	dash := l.Dash
	if dash == "" {
		dash = DashSolid
	}
	return fmt.Sprintf(`<%s w="%d" cap="%s">%s<a:prstDash val="%s"/>%s%s</%s>`,
		elem, int64(l.Width), lineCap, l.Fill.XML(), dash, join, ends, elem)
}
