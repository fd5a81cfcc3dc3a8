package pptx

import "fmt"

// GraphicFrame hosts exactly one of Table or Chart (spec §3, §4.4); the
// two are mutually exclusive, enforced by NewTableGraphicFrame and
// NewChartGraphicFrame rather than by a runtime check on every access.
type GraphicFrame struct {
	ShapeBase
	Table *Table
	Chart *Chart
}

// NewTableGraphicFrame wraps t in a GraphicFrame sized to t's current
// column widths and row heights.
func NewTableGraphicFrame(t *Table) *GraphicFrame {
	f := &GraphicFrame{Table: t}
	for _, w := range t.colWidths {
		f.Width += w
	}
	for _, h := range t.rowHeights {
		f.Height += h
	}
	return f
}

// NewChartGraphicFrame wraps c in a GraphicFrame.
func NewChartGraphicFrame(c *Chart) *GraphicFrame {
	return &GraphicFrame{Chart: c}
}

func (f *GraphicFrame) Kind() ShapeKind { return ShapeKindGraphicFrame }

// XML renders the `<p:graphicFrame>` element.
func (f *GraphicFrame) XML() (string, error) {
	var inner string
	var uri string
	switch {
	case f.Table != nil:
		tblXML, err := f.Table.XML()
		if err != nil {
			return "", err
		}
		inner = tblXML
		uri = "http://schemas.openxmlformats.org/drawingml/2006/table"
	case f.Chart != nil:
		inner = fmt.Sprintf(`<c:chart xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" r:id="%s"/>`, f.Chart.relID)
		uri = "http://schemas.openxmlformats.org/drawingml/2006/chart"
	default:
		return "", fmt.Errorf("pptx: graphic frame has neither table nor chart")
	}

	return fmt.Sprintf(
		`<p:graphicFrame><p:nvGraphicFramePr><p:cNvPr id="%d" name="%s"/><p:cNvGraphicFramePr/><p:nvPr/></p:nvGraphicFramePr>`+
			`<p:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></p:xfrm>`+
			`<a:graphic><a:graphicData uri="%s">%s</a:graphicData></a:graphic></p:graphicFrame>`,
		f.ShapeID, xmlEscape(f.Name),
		int64(f.Left), int64(f.Top), int64(f.Width), int64(f.Height),
		uri, inner,
	), nil
}
