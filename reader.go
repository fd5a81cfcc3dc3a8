package pptx

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Open reads an existing .pptx/.pptm file at path into a Presentation.
// Every shape already on a slide or layout is preserved verbatim by
// byte position (insertion mode, spec §4.3); only shapes added after
// Open returns are rendered from their in-memory representation.
// Slide transitions and animation timing are not reconstructed into
// Transition/Animation values on open, matching this library's other
// accepted reduced-fidelity areas (embedded EMF/WMF media, SmartArt,
// VBA project bytes).
func Open(path string) (*Presentation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pptx: opening %s: %w", path, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	return OpenReader(f, info.Size())
}

// OpenReader reads a .pptx/.pptm package from r, which must support
// random access (e.g. *os.File or bytes.NewReader's result).
func OpenReader(r io.ReaderAt, size int64) (*Presentation, error) {
	pkg, err := OpenPackage(r, size, Options{})
	if err != nil {
		return nil, err
	}

	presURI, err := resolvePresentationURI(pkg)
	if err != nil {
		return nil, err
	}
	presPart := pkg.Part(presURI)
	if presPart == nil {
		return nil, newPackageError(ErrKindMissingPart, string(presURI), fmt.Errorf("presentation part not found"))
	}

	var doc presentationXML
	if err := xml.Unmarshal(presPart.Blob, &doc); err != nil {
		return nil, newPackageError(ErrKindInvalidXML, string(presURI), err)
	}

	p := &Presentation{
		pkg:          pkg,
		Properties:   readDocProperties(pkg),
		PresProps:    NewPresentationProperties(),
		SlideWidth:   Emu(doc.SldSz.Cx),
		SlideHeight:  Emu(doc.SldSz.Cy),
		nextChartID:  1,
		macroEnabled: presPart.ContentType == ContentTypeMacroPresentation,
	}

	masterByURI := make(map[PackURI]*SlideMasterRef)
	for _, ref := range doc.SldMasterIdLst.Ids {
		rel := presPart.Rels.Get(ref.RID)
		if rel == nil {
			continue
		}
		masterURI, err := JoinRef(presURI.BaseURI(), rel.TargetURI)
		if err != nil {
			return nil, err
		}
		master, err := readMaster(pkg, masterURI)
		if err != nil {
			return nil, err
		}
		masterByURI[masterURI] = master
		p.Masters = append(p.Masters, master)
		p.Layouts = append(p.Layouts, master.Layouts...)
	}

	layoutByURI := make(map[PackURI]*SlideLayoutRef)
	for _, l := range p.Layouts {
		layoutByURI[l.uri] = l
	}

	maxID := uint32(255)
	for _, ref := range doc.SldIdLst.Ids {
		rel := presPart.Rels.Get(ref.RID)
		if rel == nil {
			continue
		}
		slideURI, err := JoinRef(presURI.BaseURI(), rel.TargetURI)
		if err != nil {
			return nil, err
		}
		slide, err := readSlide(pkg, slideURI, ref.ID, layoutByURI)
		if err != nil {
			return nil, err
		}
		p.Slides = append(p.Slides, slide)
		if ref.ID > maxID {
			maxID = ref.ID
		}
	}
	p.nextSlideID = maxID + 1
	p.writtenSlideCount = len(p.Slides)

	for _, chartURI := range pkg.partsWithContentType(ContentTypeChart) {
		n := chartPartNumber(chartURI)
		if n >= p.nextChartID {
			p.nextChartID = n + 1
		}
	}

	return p, nil
}

func resolvePresentationURI(pkg *Package) (PackURI, error) {
	for _, rel := range pkg.Rels().ByType(RelTypeOfficeDocument) {
		return JoinRef("/", rel.TargetURI)
	}
	return "", newPackageError(ErrKindMissingPart, string(PackageRelsURI), fmt.Errorf("no officeDocument relationship"))
}

// sldIdXML holds a <p:sldId> entry's plain "id" attribute and its
// relationships-namespaced "r:id" attribute. Both attributes share the
// local name "id", which encoding/xml's struct-tag matching cannot
// disambiguate by namespace, so this type decodes its attributes
// manually.
type sldIdXML struct {
	ID  uint32
	RID string
}

func (s *sldIdXML) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		switch {
		case a.Name.Local == "id" && a.Name.Space == "http://schemas.openxmlformats.org/officeDocument/2006/relationships":
			s.RID = a.Value
		case a.Name.Local == "id" && a.Name.Space == "":
			n, err := strconv.ParseUint(a.Value, 10, 32)
			if err != nil {
				return err
			}
			s.ID = uint32(n)
		}
	}
	return d.Skip()
}

type presentationXML struct {
	SldMasterIdLst struct {
		Ids []struct {
			RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
		} `xml:"sldMasterId"`
	} `xml:"sldMasterIdLst"`
	SldIdLst struct {
		Ids []sldIdXML `xml:"sldId"`
	} `xml:"sldIdLst"`
	SldSz struct {
		Cx int64 `xml:"cx,attr"`
		Cy int64 `xml:"cy,attr"`
	} `xml:"sldSz"`
}

func readMaster(pkg *Package, uri PackURI) (*SlideMasterRef, error) {
	part := pkg.Part(uri)
	if part == nil {
		return nil, newPackageError(ErrKindMissingPart, string(uri), fmt.Errorf("slide master part not found"))
	}
	name := cSldName(string(part.Blob))

	var doc struct {
		SldLayoutIdLst struct {
			Ids []struct {
				RID string `xml:"http://schemas.openxmlformats.org/officeDocument/2006/relationships id,attr"`
			} `xml:"sldLayoutId"`
		} `xml:"sldLayoutIdLst"`
	}
	if err := xml.Unmarshal(part.Blob, &doc); err != nil {
		return nil, newPackageError(ErrKindInvalidXML, string(uri), err)
	}

	master := &SlideMasterRef{uri: uri, Name: name, placeholders: parsePlaceholderShapes(part.Blob)}
	for _, ref := range doc.SldLayoutIdLst.Ids {
		rel := part.Rels.Get(ref.RID)
		if rel == nil {
			continue
		}
		layoutURI, err := JoinRef(uri.BaseURI(), rel.TargetURI)
		if err != nil {
			return nil, err
		}
		layout, err := readLayout(pkg, layoutURI, master)
		if err != nil {
			return nil, err
		}
		master.Layouts = append(master.Layouts, layout)
	}
	return master, nil
}

func readLayout(pkg *Package, uri PackURI, master *SlideMasterRef) (*SlideLayoutRef, error) {
	part := pkg.Part(uri)
	if part == nil {
		return nil, newPackageError(ErrKindMissingPart, string(uri), fmt.Errorf("slide layout part not found"))
	}
	blob := string(part.Blob)
	open, tail, err := splitSpTree(blob)
	if err != nil {
		return nil, err
	}
	return &SlideLayoutRef{
		uri:          uri,
		Name:         cSldName(blob),
		Type:         LayoutType(attrValue(blob, "<p:sldLayout", "type")),
		master:       master,
		shapes:       newInsertionShapeTree(open, tail),
		placeholders: parsePlaceholderShapes(part.Blob),
	}, nil
}

// phSpXML is the bounded slice of a `<p:sp>` element placeholder
// parsing needs: the shape's id and name, its `<p:ph>` marker, and
// its transform. Layout and master placeholder sets are small and
// well-known, so unlike arbitrary slide content they are parsed into
// real Shape structs on open (everything else in the part still
// round-trips as raw bytes).
type phSpXML struct {
	NvSpPr struct {
		CNvPr struct {
			ID   uint32 `xml:"id,attr"`
			Name string `xml:"name,attr"`
		} `xml:"cNvPr"`
		NvPr struct {
			Ph *struct {
				Type string `xml:"type,attr"`
				Idx  int    `xml:"idx,attr"`
			} `xml:"ph"`
		} `xml:"nvPr"`
	} `xml:"nvSpPr"`
	SpPr struct {
		Xfrm *struct {
			Off struct {
				X int64 `xml:"x,attr"`
				Y int64 `xml:"y,attr"`
			} `xml:"off"`
			Ext struct {
				Cx int64 `xml:"cx,attr"`
				Cy int64 `xml:"cy,attr"`
			} `xml:"ext"`
		} `xml:"xfrm"`
	} `xml:"spPr"`
}

// parsePlaceholderShapes extracts the placeholder `<p:sp>` elements of
// a layout or master part into AutoShape values carrying their
// original shape ids, placeholder type/idx, and geometry. A part with
// no placeholders (or unparseable XML) yields an empty tree rather
// than an error: placeholder access degrades, opening does not fail.
func parsePlaceholderShapes(blob []byte) *ShapeTree {
	var doc struct {
		Sps []phSpXML `xml:"cSld>spTree>sp"`
	}
	tree := NewShapeTree()
	if xml.Unmarshal(blob, &doc) != nil {
		return tree
	}
	for _, sp := range doc.Sps {
		ph := sp.NvSpPr.NvPr.Ph
		if ph == nil {
			continue
		}
		shape := NewAutoShape(GeomRect)
		shape.ShapeID = sp.NvSpPr.CNvPr.ID
		shape.Name = sp.NvSpPr.CNvPr.Name
		phType := ph.Type
		if phType == "" {
			// a bare <p:ph/> is a body placeholder per ECMA-376's
			// ST_PlaceholderType default
			phType = string(PlaceholderBody)
		}
		shape.Placeholder = &PlaceholderRef{Type: PlaceholderType(phType), Idx: ph.Idx}
		if x := sp.SpPr.Xfrm; x != nil {
			shape.Left, shape.Top = Emu(x.Off.X), Emu(x.Off.Y)
			shape.Width, shape.Height = Emu(x.Ext.Cx), Emu(x.Ext.Cy)
		}
		shape.Line = LineFormat{NoLine: true}
		shape.TextFrame = NewTextFrame()
		tree.shapes = append(tree.shapes, shape)
	}
	return tree
}

func readSlide(pkg *Package, uri PackURI, id uint32, layoutByURI map[PackURI]*SlideLayoutRef) (*Slide, error) {
	part := pkg.Part(uri)
	if part == nil {
		return nil, newPackageError(ErrKindMissingPart, string(uri), fmt.Errorf("slide part not found"))
	}
	blob := string(part.Blob)

	open, tail, err := splitSpTree(blob)
	if err != nil {
		return nil, err
	}

	var layout *SlideLayoutRef
	for _, rel := range part.Rels.ByType(RelTypeSlideLayout) {
		layoutURI, err := JoinRef(uri.BaseURI(), rel.TargetURI)
		if err == nil {
			layout = layoutByURI[layoutURI]
		}
	}

	slide := &Slide{
		id:       id,
		name:     cSldName(blob),
		layout:   layout,
		shapes:   newInsertionShapeTree(open, tail),
		hidden:   attrValue(blob, "<p:sld", "show") == "0",
		partRels: part.Rels,
	}
	if bg := extractBetween(blob, "<p:bg>", "</p:bg>"); bg != "" {
		slide.rawBackground = "<p:bg>" + bg + "</p:bg>"
	}

	for _, rel := range part.Rels.ByType(RelTypeNotesSlide) {
		notesURI, err := JoinRef(uri.BaseURI(), rel.TargetURI)
		if err == nil {
			if notesPart := pkg.Part(notesURI); notesPart != nil {
				slide.notes = extractNotesText(string(notesPart.Blob))
			}
		}
	}

	return slide, nil
}

// splitSpTree locates the slide or layout's `<p:spTree>` element and
// returns the prefix running from the opening tag through its last
// existing child (everything insertion mode needs to preserve) and
// the fixed tail `</p:spTree>`. Shapes already present are not parsed
// back into Go structs; they round-trip as opaque bytes.
func splitSpTree(xmlBody string) (open, tail string, err error) {
	start := strings.Index(xmlBody, "<p:spTree")
	if start == -1 {
		return "", "", fmt.Errorf("pptx: no <p:spTree> element found")
	}
	end := strings.LastIndex(xmlBody, "</p:spTree>")
	if end == -1 || end < start {
		return "", "", fmt.Errorf("pptx: unterminated <p:spTree> element")
	}
	return xmlBody[start:end], "</p:spTree>", nil
}

func cSldName(xmlBody string) string {
	return attrValue(xmlBody, "<p:cSld", "name")
}

// attrValue returns the value of attr on the first occurrence of tag
// in xmlBody, or "" if either is absent. This is a narrow, deliberate
// substitute for a full XML parse: the slide/layout/master bodies
// this library reads back are only ever scanned for a handful of
// top-level attributes, never for nested structure.
func attrValue(xmlBody, tag, attr string) string {
	i := strings.Index(xmlBody, tag)
	if i == -1 {
		return ""
	}
	end := strings.IndexByte(xmlBody[i:], '>')
	if end == -1 {
		return ""
	}
	openTag := xmlBody[i : i+end]
	needle := attr + `="`
	j := strings.Index(openTag, needle)
	if j == -1 {
		return ""
	}
	rest := openTag[j+len(needle):]
	k := strings.IndexByte(rest, '"')
	if k == -1 {
		return ""
	}
	return rest[:k]
}

func extractBetween(s, open, close string) string {
	i := strings.Index(s, open)
	if i == -1 {
		return ""
	}
	j := strings.Index(s[i+len(open):], close)
	if j == -1 {
		return ""
	}
	return s[i+len(open) : i+len(open)+j]
}

func extractNotesText(xmlBody string) string {
	var parts []string
	rest := xmlBody
	for {
		i := strings.Index(rest, "<a:t>")
		if i == -1 {
			break
		}
		rest = rest[i+len("<a:t>"):]
		j := strings.Index(rest, "</a:t>")
		if j == -1 {
			break
		}
		parts = append(parts, unescapeXMLText(rest[:j]))
		rest = rest[j+len("</a:t>"):]
	}
	return strings.Join(parts, "")
}

func unescapeXMLText(s string) string {
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&apos;", "'")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}

func readDocProperties(pkg *Package) *DocumentProperties {
	props := NewDocumentProperties()
	if part := pkg.Part(corePropsURI); part != nil {
		var doc struct {
			Title       string `xml:"http://purl.org/dc/elements/1.1/ title"`
			Subject     string `xml:"http://purl.org/dc/elements/1.1/ subject"`
			Creator     string `xml:"http://purl.org/dc/elements/1.1/ creator"`
			Description string `xml:"http://purl.org/dc/elements/1.1/ description"`
			Keywords    string `xml:"keywords"`
			LastModBy   string `xml:"lastModifiedBy"`
			Revision    string `xml:"revision"`
			Category    string `xml:"category"`
		}
		if xml.Unmarshal(part.Blob, &doc) == nil {
			props.Title, props.Subject, props.Creator = doc.Title, doc.Subject, doc.Creator
			props.Description, props.Keywords = doc.Description, doc.Keywords
			props.LastModifiedBy, props.Category = doc.LastModBy, doc.Category
			if rev, err := strconv.Atoi(doc.Revision); err == nil {
				props.Revision = rev
			}
		}
	}
	if part := pkg.Part(appPropsURI); part != nil {
		var doc struct {
			Company string `xml:"Company"`
		}
		if xml.Unmarshal(part.Blob, &doc) == nil {
			props.Company = doc.Company
		}
	}
	return props
}

func chartPartNumber(uri PackURI) int {
	name := string(uri)
	name = strings.TrimSuffix(strings.TrimPrefix(name, "/ppt/charts/chart"), ".xml")
	n, err := strconv.Atoi(name)
	if err != nil {
		return 0
	}
	return n
}

func (pkg *Package) partsWithContentType(contentType string) []PackURI {
	var uris []PackURI
	for u, p := range pkg.parts {
		if p.ContentType == contentType {
			uris = append(uris, u)
		}
	}
	return uris
}
