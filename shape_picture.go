package pptx

import (
	"fmt"
	"strings"
)

// Picture references an embedded or linked image by relationship id
// (spec §4.4). Crop values are fractions (0.0-1.0) of the source
// image, encoded as per-mille integers in the emitted `<a:srcRect>`.
type Picture struct {
	ShapeBase
	RelID                                  string
	CropLeft, CropTop, CropRight, CropBottom float64
	AlphaModFix                             float64 // 0.0 (opaque, default) to 1.0 (fully transparent)
	MaskGeometry                            PresetGeometry // "" means rectangular (no mask)
	Line                                    LineFormat
	Shadow                                  ShadowFormat
	HyperlinkRelID                          string
}

// NewPicture returns a Picture with no line, no shadow, and no crop.
func NewPicture(relID string) *Picture {
	return &Picture{RelID: relID, Line: LineFormat{NoLine: true}, Shadow: NoShadow()}
}

func (p *Picture) Kind() ShapeKind { return ShapeKindPicture }

// XML renders the `<p:pic>` element.
func (p *Picture) XML() (string, error) {
	var sb strings.Builder
	sb.WriteString("<p:pic>")
	if p.HyperlinkRelID != "" {
		fmt.Fprintf(&sb, `<p:nvPicPr><p:cNvPr id="%d" name="%s"><a:hlinkClick r:id="%s"/></p:cNvPr><p:cNvPicPr/><p:nvPr>%s</p:nvPr></p:nvPicPr>`,
			p.ShapeID, xmlEscape(p.Name), p.HyperlinkRelID, p.nvPrXML())
	} else {
		fmt.Fprintf(&sb, `<p:nvPicPr><p:cNvPr id="%d" name="%s"/><p:cNvPicPr/><p:nvPr>%s</p:nvPr></p:nvPicPr>`,
			p.ShapeID, xmlEscape(p.Name), p.nvPrXML())
	}

	sb.WriteString("<p:blipFill>")
	if p.AlphaModFix > 0 {
		fmt.Fprintf(&sb, `<a:blip r:embed="%s"><a:alphaModFix amt="%d"/></a:blip>`, p.RelID, int((1-p.AlphaModFix)*100000))
	} else {
		fmt.Fprintf(&sb, `<a:blip r:embed="%s"/>`, p.RelID)
	}
	if p.hasCrop() {
		fmt.Fprintf(&sb, `<a:srcRect l="%d" t="%d" r="%d" b="%d"/>`,
			int(p.CropLeft*1000), int(p.CropTop*1000), int(p.CropRight*1000), int(p.CropBottom*1000))
	}
	sb.WriteString(`<a:stretch><a:fillRect/></a:stretch></p:blipFill>`)

	geom := p.MaskGeometry
	if geom == "" {
		geom = GeomRect
	}
	sb.WriteString("<p:spPr>")
	sb.WriteString(p.xfrmXML())
	fmt.Fprintf(&sb, `<a:prstGeom prst="%s"><a:avLst/></a:prstGeom>`, geom)
	sb.WriteString(p.Line.XML())
	sb.WriteString(p.Shadow.XML())
	sb.WriteString("</p:spPr>")

	sb.WriteString("</p:pic>")
	return sb.String(), nil
}

func (p *Picture) hasCrop() bool {
	return p.CropLeft != 0 || p.CropTop != 0 || p.CropRight != 0 || p.CropBottom != 0
}
