package pptx

import (
	"fmt"
	"strings"
)

// ColorKind closes the set of DrawingML color source variants.
type ColorKind int

// Supported ColorKind values.
const (
	ColorKindRGB ColorKind = iota
	ColorKindTheme
	ColorKindHSL
	ColorKindSystem
	ColorKindPreset
)

// ThemeColor closes the set of theme color slots `<a:schemeClr>` can
// reference.
type ThemeColor string

// Supported ThemeColor values.
const (
	ThemeBackground1 ThemeColor = "bg1"
	ThemeText1       ThemeColor = "tx1"
	ThemeBackground2 ThemeColor = "bg2"
	ThemeText2       ThemeColor = "tx2"
	ThemeAccent1     ThemeColor = "accent1"
	ThemeAccent2     ThemeColor = "accent2"
	ThemeAccent3     ThemeColor = "accent3"
	ThemeAccent4     ThemeColor = "accent4"
	ThemeAccent5     ThemeColor = "accent5"
	ThemeAccent6     ThemeColor = "accent6"
	ThemeHyperlink   ThemeColor = "hlink"
	ThemeFolHlink    ThemeColor = "folHlink"
)

// ColorFormat is a tagged variant over the DrawingML color sources:
// an explicit RGB value, a theme slot (with an optional brightness
// adjustment), HSL, a system color, or a named preset. Exactly one
// variant's fields are meaningful at a time, selected by Kind.
type ColorFormat struct {
	Kind ColorKind

	// ColorKindRGB
	RGB string // 6 hex digits, no leading "#"

	// ColorKindTheme
	Theme      ThemeColor
	Brightness float64 // -1.0..1.0; >0 emits lumMod+lumOff (tint), <0 emits lumMod (shade)

	// ColorKindHSL
	Hue        float64 // degrees, 0-360
	Saturation float64 // 0.0-1.0
	Luminance  float64 // 0.0-1.0

	// ColorKindSystem
	System     string // ST_SystemColorVal, e.g. "window", "windowText"
	SystemLast string // lastClr fallback RGB, 6 hex digits

	// ColorKindPreset
	Preset string // ST_PresetColorVal, e.g. "aliceBlue"
}

// RGBColor returns a ColorFormat for an explicit 6-digit hex RGB
// value. A leading "#" is stripped.
func RGBColor(hex string) ColorFormat {
	return ColorFormat{Kind: ColorKindRGB, RGB: strings.ToUpper(strings.TrimPrefix(hex, "#"))}
}

// ThemeColorFormat returns a ColorFormat referencing a theme slot.
func ThemeColorFormat(t ThemeColor) ColorFormat {
	return ColorFormat{Kind: ColorKindTheme, Theme: t}
}

// WithBrightness returns a copy of a theme ColorFormat with a
// brightness adjustment applied (tint if positive, shade if
// negative).
func (c ColorFormat) WithBrightness(b float64) ColorFormat {
	if b > 1 {
		b = 1
	}
	if b < -1 {
		b = -1
	}
	c.Brightness = b
	return c
}

// PresetColorFormat returns a ColorFormat referencing a named preset
// color.
func PresetColorFormat(name string) ColorFormat {
	return ColorFormat{Kind: ColorKindPreset, Preset: name}
}

// Commonly used preset/RGB colors, mirroring the small convenience
// set most callers reach for first.
var (
	ColorBlack = RGBColor("000000")
	ColorWhite = RGBColor("FFFFFF")
	ColorRed   = RGBColor("FF0000")
	ColorGreen = RGBColor("00FF00")
	ColorBlue  = RGBColor("0000FF")
)

// XML renders the color element appropriate to c.Kind, wrapped in the
// given parent element name (e.g. "a:solidFill", "a:buClr").
func (c ColorFormat) XML(parentElem string) string {
	inner := c.Element()
	return fmt.Sprintf("<%s>%s</%s>", parentElem, inner, parentElem)
}

// Element renders the bare color element itself (e.g. `<a:srgbClr
// val="FF0000"/>`), with no enclosing parent, for contexts like
// `<a:gs>` that take the color element directly as a child.
func (c ColorFormat) Element() string {
	var inner string
	switch c.Kind {
	case ColorKindRGB:
		inner = fmt.Sprintf(`<a:srgbClr val="%s"/>`, c.RGB)
	case ColorKindTheme:
		inner = c.themeXML()
	case ColorKindHSL:
		inner = fmt.Sprintf(`<a:hslClr hue="%d" sat="%d%%" lum="%d%%"/>`,
			int(c.Hue*60000), int(c.Saturation*100), int(c.Luminance*100))
	case ColorKindSystem:
		if c.SystemLast != "" {
			inner = fmt.Sprintf(`<a:sysClr val="%s" lastClr="%s"/>`, c.System, c.SystemLast)
		} else {
			inner = fmt.Sprintf(`<a:sysClr val="%s"/>`, c.System)
		}
	case ColorKindPreset:
		inner = fmt.Sprintf(`<a:prstClr val="%s"/>`, c.Preset)
	}
	return inner
}

func (c ColorFormat) themeXML() string {
	if c.Brightness == 0 {
		return fmt.Sprintf(`<a:schemeClr val="%s"/>`, c.Theme)
	}
	if c.Brightness > 0 {
		lumMod := int((1 - c.Brightness) * 100000)
		lumOff := int(c.Brightness * 100000)
		return fmt.Sprintf(`<a:schemeClr val="%s"><a:lumMod val="%d"/><a:lumOff val="%d"/></a:schemeClr>`,
			c.Theme, lumMod, lumOff)
	}
	lumMod := int((1 + c.Brightness) * 100000)
	return fmt.Sprintf(`<a:schemeClr val="%s"><a:lumMod val="%d"/></a:schemeClr>`, c.Theme, lumMod)
}
