package pptx

import (
	"fmt"
	"strings"
)

// ConnectorEndpoint is either a free point or an attachment to
// another shape's connection site (spec §4.4).
type ConnectorEndpoint struct {
	Attached       bool
	TargetShapeID  uint32
	ConnectionSite int
}

// Connector is a two-endpoint line whose endpoints are each either
// free or attached to another shape.
type Connector struct {
	ShapeBase
	Type  ConnectorType
	Begin ConnectorEndpoint
	End   ConnectorEndpoint
	Line  LineFormat
}

// NewConnector returns a straight connector with PowerPoint's default
// line.
func NewConnector(t ConnectorType) *Connector {
	return &Connector{Type: t, Line: NewLineFormat()}
}

func (c *Connector) Kind() ShapeKind { return ShapeKindConnector }

// XML renders the `<p:cxnSp>` element.
func (c *Connector) XML() (string, error) {
	var sb strings.Builder
	sb.WriteString("<p:cxnSp>")
	fmt.Fprintf(&sb, `<p:nvCxnSpPr><p:cNvPr id="%d" name="%s"/><p:cNvCxnSpPr>%s%s</p:cNvCxnSpPr><p:nvPr/></p:nvCxnSpPr>`,
		c.ShapeID, xmlEscape(c.Name), c.Begin.XML("a:stCxn"), c.End.XML("a:endCxn"))

	sb.WriteString("<p:spPr>")
	sb.WriteString(c.xfrmXML())
	fmt.Fprintf(&sb, `<a:prstGeom prst="%s"><a:avLst/></a:prstGeom>`, c.Type)
	sb.WriteString(c.Line.XML())
	sb.WriteString("</p:spPr>")
	sb.WriteString("</p:cxnSp>")
	return sb.String(), nil
}

// XML renders the endpoint's connection-site element
// ("a:stCxn"/"a:endCxn"), "" when the endpoint is free (position is
// carried by the shape's own xfrm in that case).
func (e ConnectorEndpoint) XML(elem string) string {
	if !e.Attached {
		return ""
	}
	return fmt.Sprintf(`<%s id="%d" idx="%d"/>`, elem, e.TargetShapeID, e.ConnectionSite)
}
