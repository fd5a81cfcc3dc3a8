package pptx

import (
	"fmt"
	"strings"
)

// GroupShape is a nested ShapeTree plus its own child transform.
// Nested groups may go to arbitrary depth; shape_id uniqueness is
// enforced across the entire root tree, not per-group (spec §4.4).
type GroupShape struct {
	ShapeBase
	Children *ShapeTree
	// Child coordinate space, from <p:grpSpPr><a:xfrm chOff= chExt=.
	ChildOffX, ChildOffY, ChildExtX, ChildExtY Emu
	GroupFill *FillFormat // inherited by children using BackgroundFill()
}

// NewGroupShape returns an empty group whose child coordinate space
// matches its own extents.
func NewGroupShape() *GroupShape {
	return &GroupShape{Children: NewShapeTree()}
}

func (g *GroupShape) Kind() ShapeKind { return ShapeKindGroupShape }

// AddShape appends a shape to the group's tree. Ids are allocated
// against the group's own subtree, so callers attaching a standalone
// group to a slide afterwards should assign explicit ids from the
// slide's numbering space to keep root-wide uniqueness.
func (g *GroupShape) AddShape(s Shape) error {
	return g.Children.Add(s)
}

// XML renders the `<p:grpSp>` element.
func (g *GroupShape) XML() (string, error) {
	var sb strings.Builder
	sb.WriteString("<p:grpSp>")
	fmt.Fprintf(&sb, `<p:nvGrpSpPr><p:cNvPr id="%d" name="%s"/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`,
		g.ShapeID, xmlEscape(g.Name))

	sb.WriteString("<p:grpSpPr>")
	fmt.Fprintf(&sb, `<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/><a:chOff x="%d" y="%d"/><a:chExt cx="%d" cy="%d"/></a:xfrm>`,
		int64(g.Left), int64(g.Top), int64(g.Width), int64(g.Height),
		int64(g.ChildOffX), int64(g.ChildOffY), int64(g.ChildExtX), int64(g.ChildExtY))
	if g.GroupFill != nil {
		sb.WriteString(g.GroupFill.XML())
	}
	sb.WriteString("</p:grpSpPr>")

	childXML, err := g.Children.bodyXML()
	if err != nil {
		return "", err
	}
	sb.WriteString(childXML)

	sb.WriteString("</p:grpSp>")
	return sb.String(), nil
}
