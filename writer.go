package pptx

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// presentationURI, presPropsURI, etc. are the fixed, well-known
// locations of the presentation-level parts this file generates fresh
// on every save.
const (
	presentationURI   = PackURI("/ppt/presentation.xml")
	corePropsURI      = PackURI("/docProps/core.xml")
	appPropsURI       = PackURI("/docProps/app.xml")
	presPropsURI      = PackURI("/ppt/presProps.xml")
	viewPropsURI      = PackURI("/ppt/viewProps.xml")
	tableStylesURI    = PackURI("/ppt/tableStyles.xml")
	commentAuthorsURI = PackURI("/ppt/commentAuthors.xml")
)

// Save writes the presentation to path as a complete .pptx/.pptm ZIP
// package.
func (p *Presentation) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pptx: creating %s: %w", path, err)
	}
	defer f.Close()
	if err := p.WriteTo(f); err != nil {
		return err
	}
	return nil
}

// Bytes serializes the presentation and returns the resulting ZIP
// bytes, without touching the filesystem.
func (p *Presentation) Bytes() ([]byte, error) {
	return p.pkgBytes()
}

func (p *Presentation) pkgBytes() ([]byte, error) {
	if err := p.sync(); err != nil {
		return nil, err
	}
	return p.pkg.Bytes()
}

// WriteTo assembles the presentation's current in-memory state into
// fresh presentation-level and slide-level parts on top of the
// package's already-stable master/layout/theme/chart/media parts, and
// serializes the whole package to w.
func (p *Presentation) WriteTo(w io.Writer) error {
	if err := p.sync(); err != nil {
		return err
	}
	return p.pkg.Save(w)
}

// sync rebuilds every generation-mode part (presentation.xml, slides,
// notes, comments, docProps, presProps) from the live Slides/Masters
// list. It is safe to call repeatedly: each call first removes the
// parts a previous call wrote.
func (p *Presentation) sync() error {
	p.clearGeneratedSlideParts()

	if err := p.writePresentationPart(); err != nil {
		return err
	}
	if err := p.writeDocPropsParts(); err != nil {
		return err
	}
	if err := p.writePresPropsPart(); err != nil {
		return err
	}
	if err := p.writeSlideParts(); err != nil {
		return err
	}
	if err := p.writeCommentAuthorsPart(); err != nil {
		return err
	}
	if err := p.writeThumbnailPart(); err != nil {
		return err
	}

	p.writtenSlideCount = len(p.Slides)
	return nil
}

func (p *Presentation) writeThumbnailPart() error {
	if p.PresProps == nil {
		return nil
	}
	path, data := p.PresProps.Thumbnail()
	if path == "" || len(data) == 0 {
		return nil
	}
	uri, err := NewPackURI(path)
	if err != nil {
		return err
	}
	p.pkg.RemovePart(uri)
	if err := p.pkg.AddPart(NewPart(uri, p.pkg.ContentTypes().ContentTypeFor(uri), data)); err != nil {
		return err
	}
	p.pkg.Rels().Add(RelTypeThumbnail, uri.RelativeRef("/"), TargetInternal)
	return nil
}

func (p *Presentation) clearGeneratedSlideParts() {
	n := p.writtenSlideCount
	if len(p.Slides) > n {
		n = len(p.Slides)
	}
	for i := 1; i <= n; i++ {
		slideURI := PackURI(PathForIndex("/ppt/slides/slide", i, ".xml"))
		p.pkg.RemovePart(slideURI)
		p.pkg.RemovePart(PackURI(PathForIndex("/ppt/notesSlides/notesSlide", i, ".xml")))
		p.pkg.RemovePart(PackURI(PathForIndex("/ppt/comments/modernComment", i, ".xml")))
	}
	p.pkg.RemovePart(presentationURI)
	p.pkg.RemovePart(corePropsURI)
	p.pkg.RemovePart(appPropsURI)
	p.pkg.RemovePart(presPropsURI)
	p.pkg.RemovePart(viewPropsURI)
	p.pkg.RemovePart(tableStylesURI)
	p.pkg.RemovePart(commentAuthorsURI)

	for _, relType := range []string{RelTypeOfficeDocument, RelTypeCoreProperties, RelTypeExtProperties, RelTypeCommentAuthors, RelTypeThumbnail} {
		for _, rel := range p.pkg.Rels().ByType(relType) {
			p.pkg.Rels().Remove(rel.ID)
		}
	}
}

func (p *Presentation) writePresentationPart() error {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<p:presentation xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" `)
	sb.WriteString(`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" `)
	sb.WriteString(`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)

	rels := NewRelationships()

	sb.WriteString(`<p:sldMasterIdLst>`)
	for i, m := range p.Masters {
		rel := rels.Add(RelTypeSlideMaster, m.URI().RelativeRef(presentationURI.BaseURI()), TargetInternal)
		fmt.Fprintf(&sb, `<p:sldMasterId id="%d" r:id="%s"/>`, 2147483648+i, rel.ID)
	}
	sb.WriteString(`</p:sldMasterIdLst>`)

	sb.WriteString(`<p:sldIdLst>`)
	for i, s := range p.Slides {
		slideURI := PackURI(PathForIndex("/ppt/slides/slide", i+1, ".xml"))
		rel := rels.Add(RelTypeSlide, slideURI.RelativeRef(presentationURI.BaseURI()), TargetInternal)
		fmt.Fprintf(&sb, `<p:sldId id="%d" r:id="%s"/>`, s.id, rel.ID)
	}
	sb.WriteString(`</p:sldIdLst>`)

	fmt.Fprintf(&sb, `<p:sldSz cx="%d" cy="%d"/>`, p.SlideWidth, p.SlideHeight)
	sb.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)

	rels.Add(RelTypePresProps, presPropsURI.RelativeRef(presentationURI.BaseURI()), TargetInternal)
	rels.Add(RelTypeViewProps, viewPropsURI.RelativeRef(presentationURI.BaseURI()), TargetInternal)
	rels.Add(RelTypeTableStyles, tableStylesURI.RelativeRef(presentationURI.BaseURI()), TargetInternal)
	theme := firstTheme(p.Masters)
	if theme != "" {
		rels.Add(RelTypeTheme, PackURI(theme).RelativeRef(presentationURI.BaseURI()), TargetInternal)
	}

	sb.WriteString(`</p:presentation>`)

	ct := ContentTypePresentation
	if p.macroEnabled {
		ct = ContentTypeMacroPresentation
	}
	part := NewPart(presentationURI, ct, []byte(sb.String()))
	part.Rels = rels
	if err := p.pkg.AddPart(part); err != nil {
		return err
	}

	p.pkg.Rels().Add(RelTypeOfficeDocument, presentationURI.RelativeRef("/"), TargetInternal)
	return nil
}

func firstTheme(masters []*SlideMasterRef) string {
	if len(masters) == 0 {
		return ""
	}
	return "/ppt/theme/theme1.xml"
}

func (p *Presentation) writeDocPropsParts() error {
	core := p.coreXML()
	corePart := NewPart(corePropsURI, ContentTypeCoreProps, []byte(core))
	if err := p.pkg.AddPart(corePart); err != nil {
		return err
	}
	p.pkg.Rels().Add(RelTypeCoreProperties, corePropsURI.RelativeRef("/"), TargetInternal)

	app := p.appXML()
	appPart := NewPart(appPropsURI, ContentTypeAppProps, []byte(app))
	if err := p.pkg.AddPart(appPart); err != nil {
		return err
	}
	p.pkg.Rels().Add(RelTypeExtProperties, appPropsURI.RelativeRef("/"), TargetInternal)
	return nil
}

func (p *Presentation) coreXML() string {
	props := p.Properties
	if props == nil {
		props = NewDocumentProperties()
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" ` +
		`xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" ` +
		`xmlns:dcmitype="http://purl.org/dc/dcmitype/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
		`<dc:title>` + xmlEscape(props.Title) + `</dc:title>` +
		`<dc:subject>` + xmlEscape(props.Subject) + `</dc:subject>` +
		`<dc:creator>` + xmlEscape(props.Creator) + `</dc:creator>` +
		`<cp:keywords>` + xmlEscape(props.Keywords) + `</cp:keywords>` +
		`<dc:description>` + xmlEscape(props.Description) + `</dc:description>` +
		`<cp:lastModifiedBy>` + xmlEscape(props.LastModifiedBy) + `</cp:lastModifiedBy>` +
		`<cp:revision>` + itoa(props.Revision) + `</cp:revision>` +
		`<dcterms:created xsi:type="dcterms:W3CDTF">` + formatW3CDTF(props.Created) + `</dcterms:created>` +
		`<dcterms:modified xsi:type="dcterms:W3CDTF">` + formatW3CDTF(props.Modified) + `</dcterms:modified>` +
		`<cp:category>` + xmlEscape(props.Category) + `</cp:category>` +
		`<cp:contentStatus>` + xmlEscape(props.ContentStatus) + `</cp:contentStatus>` +
		`</cp:coreProperties>`
}

func formatW3CDTF(t time.Time) string {
	if t.IsZero() {
		t = time.Unix(0, 0).UTC()
	}
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

func (p *Presentation) appXML() string {
	props := p.Properties
	if props == nil {
		props = NewDocumentProperties()
	}
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties" ` +
		`xmlns:vt="http://schemas.openxmlformats.org/officeDocument/2006/docPropsVTypes">` +
		`<Application>gopptx-core</Application>` +
		`<Company>` + xmlEscape(props.Company) + `</Company>` +
		`<Slides>` + itoa(len(p.Slides)) + `</Slides>` +
		`<Words>0</Words>` +
		`<Paragraphs>0</Paragraphs>` +
		`<PresentationFormat>On-screen Show</PresentationFormat>` +
		`</Properties>`
}

func (p *Presentation) writePresPropsPart() error {
	pp := p.PresProps
	if pp == nil {
		pp = NewPresentationProperties()
	}
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<p:presentationPr xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" `)
	sb.WriteString(`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" `)
	sb.WriteString(`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">`)
	if pp.markedAsFinal {
		sb.WriteString(`<p:extLst/>`)
	}
	sb.WriteString(`</p:presentationPr>`)

	presPropsPart := NewPart(presPropsURI, ContentTypePresProps, []byte(sb.String()))
	if err := p.pkg.AddPart(presPropsPart); err != nil {
		return err
	}

	viewProps := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:viewPr xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
		`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
		`<p:normalViewPr><p:restoredLeft sz="15620"/><p:restoredTop sz="94660"/></p:normalViewPr>` +
		`</p:viewPr>`
	if err := p.pkg.AddPart(NewPart(viewPropsURI, ContentTypeViewProps, []byte(viewProps))); err != nil {
		return err
	}

	tableStyles := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<a:tblStyleLst xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
		`def="{5C22544A-7EE6-4342-B048-85BDC9FD1C3A}"/>`
	return p.pkg.AddPart(NewPart(tableStylesURI, ContentTypeTableStyles, []byte(tableStyles)))
}

func (p *Presentation) writeSlideParts() error {
	for i, slide := range p.Slides {
		slideURI := PackURI(PathForIndex("/ppt/slides/slide", i+1, ".xml"))

		if slide.layout != nil && len(slide.rels().ByType(RelTypeSlideLayout)) == 0 {
			slide.rels().Add(RelTypeSlideLayout, slide.layout.URI().RelativeRef(slideURI.BaseURI()), TargetInternal)
		}

		if slide.notes != "" {
			notesURI := PackURI(PathForIndex("/ppt/notesSlides/notesSlide", i+1, ".xml"))
			if err := p.pkg.AddPart(NewPart(notesURI, ContentTypeNotesSlide, []byte(notesSlideXML(slide.notes)))); err != nil {
				return err
			}
			if len(slide.rels().ByType(RelTypeNotesSlide)) == 0 {
				slide.rels().Add(RelTypeNotesSlide, notesURI.RelativeRef(slideURI.BaseURI()), TargetInternal)
			}
		}

		if len(slide.comments) > 0 {
			commentsURI := PackURI(PathForIndex("/ppt/comments/modernComment", i+1, ".xml"))
			cXML, err := commentsXML(slide.comments)
			if err != nil {
				return err
			}
			if err := p.pkg.AddPart(NewPart(commentsURI, ContentTypeComments, []byte(cXML))); err != nil {
				return err
			}
			if len(slide.rels().ByType(RelTypeComments)) == 0 {
				slide.rels().Add(RelTypeComments, commentsURI.RelativeRef(slideURI.BaseURI()), TargetInternal)
			}
		}

		xmlBody, err := slide.XML()
		if err != nil {
			return err
		}
		part := NewPart(slideURI, ContentTypeSlide, []byte(xmlBody))
		part.Rels = slide.rels()
		if err := p.pkg.AddPart(part); err != nil {
			return err
		}
	}
	return nil
}

func notesSlideXML(notes string) string {
	return `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<p:notes xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
		`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
		`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">` +
		`<p:cSld><p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr/><p:sp><p:nvSpPr><p:cNvPr id="2" name="Notes Placeholder"/><p:cNvSpPr><a:spLocks noGrp="1"/></p:cNvSpPr>` +
		`<p:nvPr><p:ph type="body" idx="1"/></p:nvPr></p:nvSpPr><p:spPr/>` +
		`<p:txBody><a:bodyPr/><a:lstStyle/><a:p><a:r><a:t>` + xmlEscape(notes) + `</a:t></a:r></a:p></p:txBody>` +
		`</p:sp></p:spTree></p:cSld></p:notes>`
}

func commentsXML(comments []*Comment) (string, error) {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<p188:cmLst xmlns:p188="http://schemas.microsoft.com/office/powerpoint/2018/8/main">`)
	for i, c := range comments {
		fmt.Fprintf(&sb, `<p188:cm authorId="%d" dt="%s" idx="%d">`, c.Author.ID, formatW3CDTF(time.Time{}), i+1)
		fmt.Fprintf(&sb, `<p188:pos x="%d" y="%d"/>`, c.PosX, c.PosY)
		sb.WriteString(`<p188:text>` + xmlEscape(c.Text) + `</p188:text>`)
		sb.WriteString(`</p188:cm>`)
	}
	sb.WriteString(`</p188:cmLst>`)
	return sb.String(), nil
}

func (p *Presentation) writeCommentAuthorsPart() error {
	authors := p.collectCommentAuthors()
	if len(authors) == 0 {
		p.pkg.RemovePart(commentAuthorsURI)
		return nil
	}
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<p188:cmAuthorLst xmlns:p188="http://schemas.microsoft.com/office/powerpoint/2018/8/main">`)
	for _, a := range authors {
		fmt.Fprintf(&sb, `<p188:cmAuthor id="%d" name="%s" initials="%s" userId="{%s}" providerId="None"/>`,
			a.ID, xmlEscape(a.Name), xmlEscape(a.Initials), a.guid())
	}
	sb.WriteString(`</p188:cmAuthorLst>`)

	part := NewPart(commentAuthorsURI, ContentTypeCommentAuthors, []byte(sb.String()))
	if err := p.pkg.AddPart(part); err != nil {
		return err
	}
	p.pkg.Rels().Add(RelTypeCommentAuthors, commentAuthorsURI.RelativeRef("/"), TargetInternal)
	return nil
}

func (p *Presentation) collectCommentAuthors() []*CommentAuthor {
	seen := make(map[int]*CommentAuthor)
	var order []*CommentAuthor
	for _, slide := range p.Slides {
		for _, c := range slide.comments {
			if c.Author == nil {
				continue
			}
			if _, ok := seen[c.Author.ID]; !ok {
				seen[c.Author.ID] = c.Author
				order = append(order, c.Author)
			}
		}
	}
	return order
}
