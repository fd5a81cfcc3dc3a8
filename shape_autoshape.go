package pptx

import (
	"fmt"
	"sort"
	"strings"
)

// AutoShape is a preset-geometry or custom-geometry shape carrying
// fill, line, shadow, an optional text frame, optional placeholder
// metadata, and adjustment handles (spec §4.4).
type AutoShape struct {
	ShapeBase
	Geometry     PresetGeometry
	CustomGeom   *CustomGeometry // non-nil overrides Geometry (<a:custGeom>)
	AdjustValues map[string]float64
	Fill         FillFormat
	Line         LineFormat
	Shadow       ShadowFormat
	TextFrame    *TextFrame
	ClickAction  ShapeAction
	HoverAction  ShapeAction
	HyperlinkRelID string
}

// CustomGeometry is the `<a:custGeom>` payload produced by a
// FreeformBuilder (spec §4.4).
type CustomGeometry struct {
	Width, Height int64 // path coordinate space extents
	Commands      []PathCommand
}

// PathCommand is one drawing instruction in a custom geometry path.
type PathCommand struct {
	Op   PathOp
	Pts  []PathPoint
}

// PathOp closes the set of FreeformBuilder drawing instructions.
type PathOp int

// Supported PathOp values.
const (
	PathMoveTo PathOp = iota
	PathLineTo
	PathCurveTo // cubic Bezier: Pts = [c1, c2, end]
	PathClose
)

// PathPoint is a point in a custom geometry's local path-space.
type PathPoint struct{ X, Y int64 }

// NewAutoShape returns a shape of the given preset geometry with
// PowerPoint's default line and no fill.
func NewAutoShape(geom PresetGeometry) *AutoShape {
	return &AutoShape{
		Geometry: geom,
		Fill:     NoFill(),
		Line:     NewLineFormat(),
		Shadow:   NoShadow(),
	}
}

func (a *AutoShape) Kind() ShapeKind { return ShapeKindAutoShape }

// SetText replaces the shape's text frame content, creating one if
// absent.
func (a *AutoShape) SetText(s string) {
	if a.TextFrame == nil {
		a.TextFrame = NewTextFrame()
	}
	a.TextFrame.SetText(s)
}

// XML renders the `<p:sp>` element.
func (a *AutoShape) XML() (string, error) {
	var sb strings.Builder
	sb.WriteString("<p:sp>")
	actions := shapeActionXML(a.ClickAction, a.HoverAction, a.HyperlinkRelID)
	if actions == "" {
		fmt.Fprintf(&sb, `<p:nvSpPr><p:cNvPr id="%d" name="%s"/><p:cNvSpPr/><p:nvPr>%s</p:nvPr></p:nvSpPr>`,
			a.ShapeID, xmlEscape(a.Name), a.nvPrXML())
	} else {
		fmt.Fprintf(&sb, `<p:nvSpPr><p:cNvPr id="%d" name="%s">%s</p:cNvPr><p:cNvSpPr/><p:nvPr>%s</p:nvPr></p:nvSpPr>`,
			a.ShapeID, xmlEscape(a.Name), actions, a.nvPrXML())
	}

	sb.WriteString("<p:spPr>")
	sb.WriteString(a.xfrmXML())
	sb.WriteString(a.geometryXML())
	sb.WriteString(a.Fill.XML())
	sb.WriteString(a.Line.XML())
	sb.WriteString(a.Shadow.XML())
	sb.WriteString("</p:spPr>")

	if a.TextFrame != nil {
		tx, err := a.TextFrame.XML()
		if err != nil {
			return "", err
		}
		sb.WriteString(tx)
	}
	sb.WriteString("</p:sp>")
	return sb.String(), nil
}

func (a *AutoShape) geometryXML() string {
	if a.CustomGeom != nil {
		return a.CustomGeom.XML()
	}
	if len(a.AdjustValues) == 0 {
		return fmt.Sprintf(`<a:prstGeom prst="%s"><a:avLst/></a:prstGeom>`, a.Geometry)
	}
	names := make([]string, 0, len(a.AdjustValues))
	for n := range a.AdjustValues {
		names = append(names, n)
	}
	sort.Strings(names)
	var av strings.Builder
	for _, n := range names {
		fmt.Fprintf(&av, `<a:gd name="%s" fmla="val %d"/>`, n, int(a.AdjustValues[n]))
	}
	return fmt.Sprintf(`<a:prstGeom prst="%s"><a:avLst>%s</a:avLst></a:prstGeom>`, a.Geometry, av.String())
}

// XML renders the `<a:custGeom>` element from the path commands a
// FreeformBuilder accumulated.
func (g *CustomGeometry) XML() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<a:custGeom><a:avLst/><a:gdLst/><a:ahLst/><a:cxnLst/><a:rect l="0" t="0" r="%d" b="%d"/><a:pathLst><a:path w="%d" h="%d">`,
		g.Width, g.Height, g.Width, g.Height)
	for _, cmd := range g.Commands {
		switch cmd.Op {
		case PathMoveTo:
			fmt.Fprintf(&sb, `<a:moveTo><a:pt x="%d" y="%d"/></a:moveTo>`, cmd.Pts[0].X, cmd.Pts[0].Y)
		case PathLineTo:
			fmt.Fprintf(&sb, `<a:lnTo><a:pt x="%d" y="%d"/></a:lnTo>`, cmd.Pts[0].X, cmd.Pts[0].Y)
		case PathCurveTo:
			fmt.Fprintf(&sb, `<a:cubicBezTo><a:pt x="%d" y="%d"/><a:pt x="%d" y="%d"/><a:pt x="%d" y="%d"/></a:cubicBezTo>`,
				cmd.Pts[0].X, cmd.Pts[0].Y, cmd.Pts[1].X, cmd.Pts[1].Y, cmd.Pts[2].X, cmd.Pts[2].Y)
		case PathClose:
			sb.WriteString(`<a:close/>`)
		}
	}
	sb.WriteString(`</a:path></a:pathLst></a:custGeom>`)
	return sb.String()
}

// FreeformBuilder accumulates path commands for a custom geometry
// (spec §4.4). Coordinates are in the shape's local path-space.
type FreeformBuilder struct {
	width, height int64
	cmds          []PathCommand
}

// NewFreeformBuilder starts a builder whose path-space extends from
// (0,0) to (width, height).
func NewFreeformBuilder(width, height int64) *FreeformBuilder {
	return &FreeformBuilder{width: width, height: height}
}

// MoveTo starts a new sub-path at (x, y).
func (b *FreeformBuilder) MoveTo(x, y int64) *FreeformBuilder {
	b.cmds = append(b.cmds, PathCommand{Op: PathMoveTo, Pts: []PathPoint{{x, y}}})
	return b
}

// LineTo draws a straight segment to (x, y).
func (b *FreeformBuilder) LineTo(x, y int64) *FreeformBuilder {
	b.cmds = append(b.cmds, PathCommand{Op: PathLineTo, Pts: []PathPoint{{x, y}}})
	return b
}

// CurveTo draws a cubic Bezier segment to (x, y) with control points
// (x1, y1) and (x2, y2).
func (b *FreeformBuilder) CurveTo(x1, y1, x2, y2, x, y int64) *FreeformBuilder {
	b.cmds = append(b.cmds, PathCommand{Op: PathCurveTo, Pts: []PathPoint{{x1, y1}, {x2, y2}, {x, y}}})
	return b
}

// Close closes the current sub-path.
func (b *FreeformBuilder) Close() *FreeformBuilder {
	b.cmds = append(b.cmds, PathCommand{Op: PathClose})
	return b
}

// Build returns the accumulated path as a CustomGeometry, suitable
// for AutoShape.CustomGeom.
func (b *FreeformBuilder) Build() *CustomGeometry {
	return &CustomGeometry{Width: b.width, Height: b.height, Commands: b.cmds}
}
