package pptx

import (
	"fmt"
	"strconv"
	"strings"
)

// Font carries the run-level text properties spec §4.5 maps onto
// `<a:rPr>`.
type Font struct {
	Size          float64 // points; must be positive once Size != 0
	Bold          bool
	Italic        bool
	Underline     UnderlineStyle
	Strikethrough bool
	Subscript     bool
	Superscript   bool
	Color         ColorFormat
	Name          string
	Hyperlink     *HyperlinkFormat
	hasColor      bool
}

// HyperlinkFormat is a run-level hyperlink, rendered as
// `<a:hlinkClick r:id="rIdN"/>`.
type HyperlinkFormat struct {
	RelID   string // relationship id of an external hyperlink
	Tooltip string
}

// NewFont returns a Font with PowerPoint's implicit defaults (no
// explicit size/color/name override emitted until set).
func NewFont() *Font { return &Font{} }

// SetSize sets the font size in points. Negative sizes are rejected at
// Run emission, not here, so callers building up a Font incrementally
// are not penalized for ordering. A size of 0 means unset: no sz
// attribute is emitted and it is not rejected.
func (f *Font) SetSize(pt float64) *Font { f.Size = pt; return f }

// SetColor sets an explicit run color.
func (f *Font) SetColor(c ColorFormat) *Font { f.Color = c; f.hasColor = true; return f }

// SetName sets the Latin typeface name.
func (f *Font) SetName(name string) *Font { f.Name = name; return f }

// SetBold sets the bold flag.
func (f *Font) SetBold(b bool) *Font { f.Bold = b; return f }

// SetItalic sets the italic flag.
func (f *Font) SetItalic(b bool) *Font { f.Italic = b; return f }

// SetUnderline sets the underline style.
func (f *Font) SetUnderline(u UnderlineStyle) *Font { f.Underline = u; return f }

// SetStrikethrough sets the single-strikethrough flag.
func (f *Font) SetStrikethrough(b bool) *Font { f.Strikethrough = b; return f }

// SetSubscript sets the subscript flag; mutually exclusive with
// Superscript (setting one clears the other).
func (f *Font) SetSubscript(b bool) *Font {
	f.Subscript = b
	if b {
		f.Superscript = false
	}
	return f
}

// SetSuperscript sets the superscript flag; mutually exclusive with
// Subscript.
func (f *Font) SetSuperscript(b bool) *Font {
	f.Superscript = b
	if b {
		f.Subscript = false
	}
	return f
}

// XML renders the Font as an `<a:rPr>` (or `<a:defRPr>`/`<a:endParaRPr>`
// when elem names a different wrapper) element. Returns
// ErrInvalidFontSize if Size is negative. A Size of 0 is treated as
// unset and emits no sz attribute; it is not rejected.
func (f *Font) XML(elem string) (string, error) {
	if f.Size != 0 && f.Size <= 0 {
		return "", ErrInvalidFontSize
	}

	var attrs strings.Builder
	if f.Size > 0 {
		fmt.Fprintf(&attrs, ` sz="%d"`, CentipointsFromPoints(f.Size))
	}
	if f.Bold {
		attrs.WriteString(` b="1"`)
	}
	if f.Italic {
		attrs.WriteString(` i="1"`)
	}
	if f.Underline != "" && f.Underline != UnderlineNone {
		fmt.Fprintf(&attrs, ` u="%s"`, f.Underline)
	}
	if f.Strikethrough {
		attrs.WriteString(` strike="sngStrike"`)
	}
	if f.Subscript {
		attrs.WriteString(` baseline="-25000"`)
	}
	if f.Superscript {
		attrs.WriteString(` baseline="30000"`)
	}

	var children strings.Builder
	if f.hasColor {
		children.WriteString(f.Color.XML("a:solidFill"))
	}
	if f.Hyperlink != nil {
		if f.Hyperlink.Tooltip != "" {
			fmt.Fprintf(&children, `<a:hlinkClick r:id="%s" tooltip="%s"/>`, f.Hyperlink.RelID, xmlEscape(f.Hyperlink.Tooltip))
		} else {
			fmt.Fprintf(&children, `<a:hlinkClick r:id="%s"/>`, f.Hyperlink.RelID)
		}
	}
	if f.Name != "" {
		fmt.Fprintf(&children, `<a:latin typeface="%s"/>`, xmlEscape(f.Name))
	}

	if children.Len() == 0 {
		return fmt.Sprintf("<%s%s/>", elem, attrs.String()), nil
	}
	return fmt.Sprintf("<%s%s>%s</%s>", elem, attrs.String(), children.String(), elem), nil
}

// xmlEscape escapes the five XML-reserved characters in s. Attribute
// and text content both use this; entity-reference and numeric
// character forms are never needed for the ASCII control set this
// package emits attributes from.
func xmlEscape(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			sb.WriteString("&amp;")
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '"':
			sb.WriteString("&quot;")
		case '\'':
			sb.WriteString("&apos;")
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// formatPercent renders a thousandths-of-a-percent OOXML integer
// (e.g. fontScale) from a float64 percentage.
func formatPercent(pct float64) string {
	return strconv.Itoa(int(pct * 1000))
}
