package pptx

import "fmt"

// Shape is a closed tagged variant over {AutoShape, Picture,
// GraphicFrame, GroupShape, Connector} (spec §3, §9). Downcasts via
// Kind are total and explicit; there is no open class hierarchy.
type Shape interface {
	Kind() ShapeKind
	base() *ShapeBase
	// XML renders the shape's top-level element
	// (<p:sp>/<p:pic>/<p:graphicFrame>/<p:grpSp>/<p:cxnSp>).
	XML() (string, error)
}

// ShapeBase carries the attributes common to every shape variant
// (spec §3): a unique id within the owning ShapeTree, a display
// name, position/size in EMU, optional rotation, and optional flips.
type ShapeBase struct {
	ShapeID  uint32
	Name     string
	Left, Top, Width, Height Emu
	Rotation float64 // degrees; 0 means unrotated
	FlipH    bool
	FlipV    bool

	Placeholder *PlaceholderRef
}

// PlaceholderRef names the layout/master placeholder slot a shape
// inherits style from. A slide-level shape keeps this metadata
// unresolved; callers resolve style by walking slide -> layout ->
// master at read time (spec §4.2).
type PlaceholderRef struct {
	Type PlaceholderType
	Idx  int
}

func (b *ShapeBase) base() *ShapeBase { return b }

// xfrmXML renders the `<a:xfrm>` transform shared by every shape
// variant's `<.../>Pr>` element.
func (b *ShapeBase) xfrmXML() string {
	attrs := ""
	if b.Rotation != 0 {
		attrs += fmt.Sprintf(` rot="%d"`, int(b.Rotation*60000))
	}
	if b.FlipH {
		attrs += ` flipH="1"`
	}
	if b.FlipV {
		attrs += ` flipV="1"`
	}
	return fmt.Sprintf(`<a:xfrm%s><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		attrs, int64(b.Left), int64(b.Top), int64(b.Width), int64(b.Height))
}

// nvPrXML renders the placeholder marker inside a shape's non-visual
// properties, `<p:ph type="..." idx="N"/>`, or "" when the shape
// carries no placeholder metadata.
func (b *ShapeBase) nvPrXML() string {
	if b.Placeholder == nil {
		return ""
	}
	if b.Placeholder.Idx > 0 {
		return fmt.Sprintf(`<p:ph type="%s" idx="%d"/>`, b.Placeholder.Type, b.Placeholder.Idx)
	}
	return fmt.Sprintf(`<p:ph type="%s"/>`, b.Placeholder.Type)
}

// shapeActionXML renders the `<a:hlinkClick>`/`<a:hlinkHover>`
// children of a shape's `<p:cNvPr>`: a relationship-backed hyperlink
// for ActionHyperlink, a ppaction jump URI for the slideshow
// navigation actions, nothing for ActionNone.
func shapeActionXML(click, hover ShapeAction, hlinkRelID string) string {
	var sb string
	render := func(elem string, act ShapeAction) {
		switch act {
		case "", ActionNone:
		case ActionHyperlink:
			sb += fmt.Sprintf(`<a:%s r:id="%s"/>`, elem, hlinkRelID)
		default:
			sb += fmt.Sprintf(`<a:%s r:id="" action="ppaction://hlinkshowjump?jump=%s"/>`, elem, act)
		}
	}
	render("hlinkClick", click)
	render("hlinkHover", hover)
	return sb
}

// AsAutoShape downcasts s, the second return value reporting success.
func AsAutoShape(s Shape) (*AutoShape, bool) { v, ok := s.(*AutoShape); return v, ok }

// AsPicture downcasts s.
func AsPicture(s Shape) (*Picture, bool) { v, ok := s.(*Picture); return v, ok }

// AsGraphicFrame downcasts s.
func AsGraphicFrame(s Shape) (*GraphicFrame, bool) { v, ok := s.(*GraphicFrame); return v, ok }

// AsGroupShape downcasts s.
func AsGroupShape(s Shape) (*GroupShape, bool) { v, ok := s.(*GroupShape); return v, ok }

// AsConnector downcasts s.
func AsConnector(s Shape) (*Connector, bool) { v, ok := s.(*Connector); return v, ok }
