package pptx

// standardLayouts is the ordered set of layouts PowerPoint puts on a
// brand-new presentation's single default master (spec §4.2's "11
// standard layouts").
var standardLayouts = []struct {
	name string
	typ  LayoutType
}{
	{"Title Slide", LayoutTitleSlide},
	{"Title and Content", LayoutTitleAndContent},
	{"Section Header", LayoutSectionHeader},
	{"Two Content", LayoutTwoContent},
	{"Comparison", LayoutComparison},
	{"Title Only", LayoutTitleOnly},
	{"Blank", LayoutBlank},
	{"Content with Caption", LayoutContentWithCaption},
	{"Picture with Caption", LayoutPictureWithCaption},
	{"Title and Vertical Text", LayoutTitleAndVerticalText},
	{"Vertical Title and Text", LayoutVerticalTitleAndText},
}

// buildDefaultTemplate populates p's package and master/layout
// bookkeeping with one theme, one slide master, and the eleven
// standard layouts, each a minimal but schema-valid part (spec
// §4.2's `new()` contract).
func (p *Presentation) buildDefaultTemplate() error {
	themeURI := PackURI("/ppt/theme/theme1.xml")
	if err := p.pkg.AddPart(NewPart(themeURI, ContentTypeTheme, []byte(defaultThemeXML))); err != nil {
		return err
	}

	masterURI := PackURI("/ppt/slideMasters/slideMaster1.xml")
	master := &SlideMasterRef{uri: masterURI, Name: "Office Theme"}

	masterRels := NewRelationships()
	masterThemeRel := masterRels.Add(RelTypeTheme, themeURI.RelativeRef(masterURI.BaseURI()), TargetInternal)
	_ = masterThemeRel

	for i, def := range standardLayouts {
		layoutURI := PackURI(PathForIndex("/ppt/slideLayouts/slideLayout", i+1, ".xml"))
		layout := &SlideLayoutRef{
			uri:    layoutURI,
			Name:   def.name,
			Type:   def.typ,
			master: master,
			shapes: defaultLayoutShapes(def.typ),
		}
		master.Layouts = append(master.Layouts, layout)

		layoutXML, err := renderLayoutXML(layout)
		if err != nil {
			return err
		}
		layoutPart := NewPart(layoutURI, ContentTypeSlideLayout, []byte(layoutXML))
		if err := p.pkg.AddPart(layoutPart); err != nil {
			return err
		}
		layoutPart.Rels.Add(RelTypeSlideMaster, masterURI.RelativeRef(layoutURI.BaseURI()), TargetInternal)
		masterRels.Add(RelTypeSlideLayout, layoutURI.RelativeRef(masterURI.BaseURI()), TargetInternal)
	}

	master.placeholders = master.Layouts[0].shapes

	masterXML, err := renderMasterXML(master)
	if err != nil {
		return err
	}
	masterPart := NewPart(masterURI, ContentTypeSlideMaster, []byte(masterXML))
	masterPart.Rels = masterRels
	if err := p.pkg.AddPart(masterPart); err != nil {
		return err
	}

	p.Masters = append(p.Masters, master)
	p.Layouts = append(p.Layouts, master.Layouts...)
	return nil
}

// PathForIndex formats "<prefix><n><suffix>", e.g.
// ("/ppt/slides/slide", 3, ".xml") -> "/ppt/slides/slide3.xml".
func PathForIndex(prefix string, n int, suffix string) string {
	return prefix + itoa(n) + suffix
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// defaultLayoutShapes returns the placeholder shapes a fresh layout
// of the given type starts with: a title for every layout but Blank,
// plus a body placeholder for content-bearing layouts. Real
// PowerPoint templates carry richer per-type placeholder sets; this
// is the minimal subset `add_slide`'s placeholder-inheritance clone
// needs to be meaningful.
func defaultLayoutShapes(typ LayoutType) *ShapeTree {
	tree := NewShapeTree()
	if typ == LayoutBlank {
		return tree
	}

	title := NewAutoShape(GeomRect)
	title.Left, title.Top, title.Width, title.Height = Inches(0.5), Inches(0.3), Inches(9), Inches(1.25)
	title.Line = LineFormat{NoLine: true}
	if typ == LayoutTitleSlide {
		title.Placeholder = &PlaceholderRef{Type: PlaceholderCenterTtl}
	} else {
		title.Placeholder = &PlaceholderRef{Type: PlaceholderTitle}
	}
	title.TextFrame = NewTextFrame()
	tree.Add(title)

	switch typ {
	case LayoutTitleSlide, LayoutSectionHeader, LayoutTitleOnly:
		// title-only layouts: no body placeholder.
	case LayoutTwoContent, LayoutComparison:
		for idx, x := range []Emu{Inches(0.5), Inches(5.25)} {
			body := NewAutoShape(GeomRect)
			body.Left, body.Top, body.Width, body.Height = x, Inches(1.75), Inches(4.25), Inches(5)
			body.Line = LineFormat{NoLine: true}
			body.Placeholder = &PlaceholderRef{Type: PlaceholderBody, Idx: idx + 1}
			body.TextFrame = NewTextFrame()
			tree.Add(body)
		}
	default:
		body := NewAutoShape(GeomRect)
		body.Left, body.Top, body.Width, body.Height = Inches(0.5), Inches(1.75), Inches(9), Inches(5)
		body.Line = LineFormat{NoLine: true}
		body.Placeholder = &PlaceholderRef{Type: PlaceholderBody, Idx: 1}
		body.TextFrame = NewTextFrame()
		tree.Add(body)
	}
	return tree
}

func renderMasterXML(m *SlideMasterRef) (string, error) {
	body, err := m.Layouts[0].shapes.XML() // master carries its own placeholder set; reuse the title layout's as a stand-in
	if err != nil {
		return "", err
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
		`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
		`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
		`<p:cSld>` + body + `</p:cSld>` +
		`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" ` +
		`accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
		`<p:sldLayoutIdLst>` + sldLayoutIdList(len(m.Layouts)) + `</p:sldLayoutIdLst>` +
		`</p:sldMaster>`, nil
}

func sldLayoutIdList(n int) string {
	var s string
	for i := 0; i < n; i++ {
		s += `<p:sldLayoutId id="` + itoa(2147483649+i) + `" r:id="rId` + itoa(i+2) + `"/>`
	}
	return s
}

func renderLayoutXML(l *SlideLayoutRef) (string, error) {
	body, err := l.shapes.XML()
	if err != nil {
		return "", err
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:sldLayout xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
		`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
		`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main" type="` + string(l.Type) + `">` +
		`<p:cSld name="` + xmlEscape(l.Name) + `">` + body + `</p:cSld>` +
		`<p:clrMapOvr><a:overrideClrMapping/></p:clrMapOvr>` +
		`</p:sldLayout>`, nil
}

// defaultThemeXML is a minimal Office-default color/font theme,
// enough for a viewer to render placeholder text without a missing
// theme warning.
const defaultThemeXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Office Theme">` +
	`<a:themeElements>` +
	`<a:clrScheme name="Office"><a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>` +
	`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>` +
	`<a:dk2><a:srgbClr val="44546A"/></a:dk2><a:lt2><a:srgbClr val="E7E6E6"/></a:lt2>` +
	`<a:accent1><a:srgbClr val="4472C4"/></a:accent1><a:accent2><a:srgbClr val="ED7D31"/></a:accent2>` +
	`<a:accent3><a:srgbClr val="A5A5A5"/></a:accent3><a:accent4><a:srgbClr val="FFC000"/></a:accent4>` +
	`<a:accent5><a:srgbClr val="5B9BD5"/></a:accent5><a:accent6><a:srgbClr val="70AD47"/></a:accent6>` +
	`<a:hlink><a:srgbClr val="0563C1"/></a:hlink><a:folHlink><a:srgbClr val="954F72"/></a:folHlink></a:clrScheme>` +
	`<a:fontScheme name="Office"><a:majorFont><a:latin typeface="Calibri Light"/></a:majorFont>` +
	`<a:minorFont><a:latin typeface="Calibri"/></a:minorFont></a:fontScheme>` +
	`<a:fmtScheme name="Office"><a:fillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:fillStyleLst><a:lnStyleLst><a:ln w="6350"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="12700"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln>` +
	`<a:ln w="19050"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill></a:ln></a:lnStyleLst>` +
	`<a:effectStyleLst><a:effectStyle><a:effectLst/></a:effectStyle><a:effectStyle><a:effectLst/></a:effectStyle>` +
	`<a:effectStyle><a:effectLst/></a:effectStyle></a:effectStyleLst>` +
	`<a:bgFillStyleLst><a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`<a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:solidFill><a:schemeClr val="phClr"/></a:solidFill>` +
	`</a:bgFillStyleLst></a:fmtScheme></a:themeElements></a:theme>`
