package pptx

import "fmt"

// ShadowKind closes the set of shadow variants a shape's effect list
// can carry (spec §4.8).
type ShadowKind int

// Supported ShadowKind values.
const (
	ShadowKindNone ShadowKind = iota
	ShadowKindOuter
	ShadowKindInner
	ShadowKindPerspective
)

// ShadowFormat is a tagged variant over the shadow kinds applicable
// to `<a:effectLst>`.
type ShadowFormat struct {
	Kind      ShadowKind
	Color     ColorFormat
	Blur      Emu
	Distance  Emu
	Direction float64 // degrees
	Opacity   float64 // 0.0-1.0; 1.0 is fully opaque

	// ShadowKindPerspective only: the ST_PresetShadowVal name selecting
	// the preset projection ("shdw1".."shdw20"); "" picks shdw13, the
	// below-right perspective PowerPoint's UI applies.
	Preset string
}

// NoShadow returns a ShadowFormat that renders as an empty
// `<a:effectLst/>`, so the shape carries no shadow.
func NoShadow() ShadowFormat { return ShadowFormat{Kind: ShadowKindNone} }

// OuterShadow returns a default outer drop shadow.
func OuterShadow(c ColorFormat) ShadowFormat {
	return ShadowFormat{
		Kind: ShadowKindOuter, Color: c,
		Blur: Points(4), Distance: Points(3), Direction: 45, Opacity: 0.4,
	}
}

// XML renders the `<a:effectLst>` wrapper, empty if Kind is
// ShadowKindNone.
func (s ShadowFormat) XML() string {
	if s.Kind == ShadowKindNone {
		return `<a:effectLst/>`
	}
	alpha := int(s.Opacity * 100000)
	colorAttrs := s.alphaColorXML(alpha)
	switch s.Kind {
	case ShadowKindOuter:
		return fmt.Sprintf(`<a:effectLst><a:outerShdw blurRad="%d" dist="%d" dir="%d">%s</a:outerShdw></a:effectLst>`,
			int64(s.Blur), int64(s.Distance), int(s.Direction*60000), colorAttrs)
	case ShadowKindInner:
		return fmt.Sprintf(`<a:effectLst><a:innerShdw blurRad="%d" dist="%d" dir="%d">%s</a:innerShdw></a:effectLst>`,
			int64(s.Blur), int64(s.Distance), int(s.Direction*60000), colorAttrs)
	case ShadowKindPerspective:
		prst := s.Preset
		if prst == "" {
			prst = "shdw13"
		}
		return fmt.Sprintf(`<a:effectLst><a:prstShdw prst="%s" dist="%d" dir="%d">%s</a:prstShdw></a:effectLst>`,
			prst, int64(s.Distance), int(s.Direction*60000), colorAttrs)
	default:
		return `<a:effectLst/>`
	}
}

// alphaColorXML wraps the shadow's color element with an `<a:alpha>`
// modifier reflecting Opacity, matching the `<a:srgbClr
// val="..."><a:alpha val="..."/></a:srgbClr>` pattern shadows use.
func (s ShadowFormat) alphaColorXML(alphaVal int) string {
	return fmt.Sprintf(`<a:srgbClr val="%s"><a:alpha val="%d"/></a:srgbClr>`, colorHexOf(s.Color), alphaVal)
}

// colorHexOf extracts a plain 6-digit hex value from c for contexts
// (like shadow alpha wrapping) that require an srgbClr regardless of
// the original ColorFormat's kind; theme/preset colors fall back to
// black since they have no fixed RGB value without theme resolution.
func colorHexOf(c ColorFormat) string {
	if c.Kind == ColorKindRGB {
		return c.RGB
	}
	return "000000"
}
