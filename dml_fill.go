package pptx

import (
	"fmt"
	"strings"
)

// FillKind closes the set of DrawingML fill variants.
type FillKind int

// Supported FillKind values.
const (
	FillKindNone FillKind = iota
	FillKindSolid
	FillKindGradient
	FillKindPattern
	FillKindPicture
	FillKindBackground
)

// GradientStop is one stop of a gradient fill's stop list.
type GradientStop struct {
	Position float64 // 0.0-1.0 along the gradient
	Color    ColorFormat
}

// FillFormat is a tagged variant over the fill kinds a shape,
// table cell, or chart element can carry (spec §4.8).
type FillFormat struct {
	Kind FillKind

	// FillKindSolid
	Solid ColorFormat

	// FillKindGradient
	Stops []GradientStop
	Angle float64 // degrees, linear gradient direction

	// FillKindPattern
	PatternPreset string // ST_PresetPatternVal, e.g. "pct50"
	PatternFore   ColorFormat
	PatternBack   ColorFormat

	// FillKindPicture
	PictureRelID string // rId of the related image part
}

// NoFill returns a FillFormat that suppresses the fill entirely.
func NoFill() FillFormat { return FillFormat{Kind: FillKindNone} }

// SolidFill returns a solid-color FillFormat.
func SolidFill(c ColorFormat) FillFormat { return FillFormat{Kind: FillKindSolid, Solid: c} }

// GradientFill returns a linear gradient FillFormat. angle is in
// degrees, 0 = left-to-right.
func GradientFill(angle float64, stops ...GradientStop) FillFormat {
	return FillFormat{Kind: FillKindGradient, Angle: angle, Stops: stops}
}

// PatternFill returns a two-tone pattern FillFormat.
func PatternFill(preset string, fore, back ColorFormat) FillFormat {
	return FillFormat{Kind: FillKindPattern, PatternPreset: preset, PatternFore: fore, PatternBack: back}
}

// PictureFill returns a FillFormat that paints the shape with the
// image related by relID.
func PictureFill(relID string) FillFormat {
	return FillFormat{Kind: FillKindPicture, PictureRelID: relID}
}

// BackgroundFill returns a FillFormat that inherits the group's fill
// (`<a:grpFill/>`), valid only on a shape nested in a GroupShape.
func BackgroundFill() FillFormat { return FillFormat{Kind: FillKindBackground} }

// XML renders the fill element.
func (f FillFormat) XML() string {
	switch f.Kind {
	case FillKindNone:
		return `<a:noFill/>`
	case FillKindSolid:
		return f.Solid.XML("a:solidFill")
	case FillKindGradient:
		return f.gradientXML()
	case FillKindPattern:
		return fmt.Sprintf(`<a:pattFill prst="%s">%s%s</a:pattFill>`,
			f.PatternPreset, f.PatternFore.XML("a:fgClr"), f.PatternBack.XML("a:bgClr"))
	case FillKindPicture:
		return fmt.Sprintf(`<a:blipFill><a:blip r:embed="%s"/><a:stretch><a:fillRect/></a:stretch></a:blipFill>`, f.PictureRelID)
	case FillKindBackground:
		return `<a:grpFill/>`
	default:
		return `<a:noFill/>`
	}
}

func (f FillFormat) gradientXML() string {
	var sb strings.Builder
	sb.WriteString(`<a:gradFill><a:gsLst>`)
	for _, s := range f.Stops {
		sb.WriteString(fmt.Sprintf(`<a:gs pos="%d">%s</a:gs>`, int(s.Position*100000), s.Color.Element()))
	}
	sb.WriteString(`</a:gsLst>`)
	sb.WriteString(fmt.Sprintf(`<a:lin ang="%d" scaled="1"/>`, int(f.Angle*60000)))
	sb.WriteString(`</a:gradFill>`)
	return sb.String()
}
