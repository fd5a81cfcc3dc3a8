package pptx

import "fmt"

// Presentation is the root handle on a .pptx/.pptm document: its
// package of parts, document-level properties, default slide size,
// and the ordered slides, masters, and layouts that make it up (spec
// §4.2).
type Presentation struct {
	pkg *Package

	Properties *DocumentProperties
	PresProps  *PresentationProperties

	SlideWidth, SlideHeight Emu

	Slides  []*Slide
	Masters []*SlideMasterRef
	Layouts []*SlideLayoutRef

	Sections []*Section

	nextSlideID uint32
	nextChartID int

	// macroEnabled is set when the opened package's presentation part
	// carried the .pptm content type; the vbaProject.bin part itself
	// rides along opaquely in the package.
	macroEnabled bool

	writtenSlideCount int // high-water mark of slides written by a previous Save/WriteTo, so sync can purge stale parts
}

// New returns a minimal valid presentation: one theme, one slide
// master, the eleven standard layouts, and no slides (spec §4.2's
// `new()` contract).
func New() (*Presentation, error) {
	pkg, err := NewPackage(Options{})
	if err != nil {
		return nil, err
	}
	p := &Presentation{
		pkg:         pkg,
		Properties:  NewDocumentProperties(),
		PresProps:   NewPresentationProperties(),
		SlideWidth:  Inches(10),
		SlideHeight: Inches(7.5),
		nextSlideID: 256,
		nextChartID: 1,
	}
	if err := p.buildDefaultTemplate(); err != nil {
		return nil, err
	}
	return p, nil
}

// MacroEnabled reports whether this presentation came from a
// macro-enabled (.pptm) package. Its vbaProject.bin part and content
// type are preserved opaquely across save.
func (p *Presentation) MacroEnabled() bool { return p.macroEnabled }

// LayoutByName finds a layout across every master by display name.
func (p *Presentation) LayoutByName(name string) (*SlideLayoutRef, error) {
	for _, l := range p.Layouts {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, ErrUnknownLayout{Name: name}
}

// AddSlide creates a new slide cloning layout's placeholder shapes,
// allocates the next unused slide_id (starting at 256), and appends
// it to the presentation (spec §4.2's `add_slide`). The clone is a
// true deep copy: mutating the returned slide's shapes never affects
// the layout's own placeholder tree.
func (p *Presentation) AddSlide(layout *SlideLayoutRef) (*Slide, error) {
	if !p.ownsLayout(layout) {
		name := ""
		if layout != nil {
			name = layout.Name
		}
		return nil, ErrUnknownLayout{Name: name}
	}

	id := p.nextSlideID
	p.nextSlideID++

	slide := NewSlide(id, layout)
	slide.shapes = cloneLayoutPlaceholders(layout)
	p.Slides = append(p.Slides, slide)
	return slide, nil
}

func (p *Presentation) ownsLayout(layout *SlideLayoutRef) bool {
	for _, l := range p.Layouts {
		if l == layout {
			return true
		}
	}
	return false
}

func cloneLayoutPlaceholders(layout *SlideLayoutRef) *ShapeTree {
	return layout.placeholderSource().clone()
}

// DeleteSlide removes the slide with the given id, its slide-to-part
// relationship, and its `sldId` entry (spec §4.2's `delete_slide`).
// Media parts are not pruned: an image part the removed slide used
// stays in the package and is written again on the next Save, even
// when no remaining slide refers to it.
func (p *Presentation) DeleteSlide(id uint32) error {
	for i, s := range p.Slides {
		if s.id == id {
			p.Slides = append(p.Slides[:i], p.Slides[i+1:]...)
			p.pruneSections(id)
			return nil
		}
	}
	return ErrSlideNotExist{SlideID: int(id)}
}

func (p *Presentation) pruneSections(id uint32) {
	for _, sec := range p.Sections {
		kept := sec.SlideIDs[:0]
		for _, sid := range sec.SlideIDs {
			if sid != id {
				kept = append(kept, sid)
			}
		}
		sec.SlideIDs = kept
	}
}

// MoveSlide reorders the slide at fromIndex to toIndex. Relationships
// and slide ids are unchanged (spec §4.2's `move_slide`).
func (p *Presentation) MoveSlide(fromIndex, toIndex int) error {
	if fromIndex < 0 || fromIndex >= len(p.Slides) || toIndex < 0 || toIndex >= len(p.Slides) {
		return fmt.Errorf("pptx: slide index out of range (have %d slides)", len(p.Slides))
	}
	s := p.Slides[fromIndex]
	p.Slides = append(p.Slides[:fromIndex], p.Slides[fromIndex+1:]...)
	p.Slides = append(p.Slides[:toIndex], append([]*Slide{s}, p.Slides[toIndex:]...)...)
	return nil
}

// SlideByID returns the slide with the given slide_id.
func (p *Presentation) SlideByID(id uint32) (*Slide, bool) {
	for _, s := range p.Slides {
		if s.id == id {
			return s, true
		}
	}
	return nil, false
}

// SlideXML renders slide's current `<p:sld>` XML (spec §4.2's
// `slide_xml`). Mutations to the slide's shape tree take effect on
// the next call; there is no separate commit step.
func (p *Presentation) SlideXML(slide *Slide) (string, error) {
	return slide.XML()
}

// AddImageToSlide registers blob as a (possibly deduplicated) media
// part and adds a Picture shape referencing it to slide's shape tree.
func (p *Presentation) AddImageToSlide(slide *Slide, blob []byte, extHint string, left, top, width, height Emu) (*Picture, error) {
	uri, _, err := p.pkg.GetOrAddImagePart(blob, extHint)
	if err != nil {
		return nil, err
	}
	slideURI := p.slideURI(slide)
	rel := slide.rels().Add(RelTypeImage, uri.RelativeRef(slideURI.BaseURI()), TargetInternal)
	return slide.shapes.AddPicture(rel.ID, left, top, width, height), nil
}

// AddChartToSlide creates a chart part, its embedded spreadsheet
// part, the required relationships, and a GraphicFrame in slide's
// shape tree hosting it (spec §4.2's `add_chart_to_slide`, §4.7).
func (p *Presentation) AddChartToSlide(slide *Slide, chart *Chart, left, top, width, height Emu) (*GraphicFrame, error) {
	n := p.nextChartID
	p.nextChartID++

	chartURI := PackURI(PathForIndex("/ppt/charts/chart", n, ".xml"))
	xlsxURI := PackURI(PathForIndex("/ppt/embeddings/Microsoft_Excel_Worksheet", n, ".xlsx"))

	slideURI := p.slideURI(slide)
	rel := slide.rels().Add(RelTypeChart, chartURI.RelativeRef(slideURI.BaseURI()), TargetInternal)
	chart.relID = rel.ID

	chartXML, err := chart.PartXML(EmbeddedSheetName)
	if err != nil {
		return nil, err
	}
	chartPart := NewPart(chartURI, ContentTypeChart, []byte(chartXML))
	if err := p.pkg.AddPart(chartPart); err != nil {
		return nil, err
	}

	xlsxBytes, err := BuildEmbeddedWorkbook(chart)
	if err != nil {
		return nil, err
	}
	xlsxPart := NewPart(xlsxURI, ContentTypeXLSX, xlsxBytes)
	if err := p.pkg.AddPart(xlsxPart); err != nil {
		return nil, err
	}
	chartPart.Rels.Add(RelTypePackage, xlsxURI.RelativeRef(chartURI.BaseURI()), TargetInternal)

	return slide.shapes.AddChart(chart, left, top, width, height), nil
}

func (p *Presentation) slideURI(slide *Slide) PackURI {
	for i, s := range p.Slides {
		if s == slide {
			return PackURI(PathForIndex("/ppt/slides/slide", i+1, ".xml"))
		}
	}
	return PackURI("/ppt/slides/slide0.xml")
}

// AddSection appends a new, initially empty, named section (spec
// §4.2, supplemented feature).
func (p *Presentation) AddSection(name string) *Section {
	sec := &Section{Name: name}
	p.Sections = append(p.Sections, sec)
	return sec
}

// CopySlide deep-copies the slide at index, including its shapes,
// notes, transition, and comments, and appends the copy (teacher's
// `CopySlide`, kept per SPEC_FULL §C, now using a true deep clone
// instead of a shallow shape-slice copy).
func (p *Presentation) CopySlide(index int) (*Slide, error) {
	if index < 0 || index >= len(p.Slides) {
		return nil, fmt.Errorf("pptx: slide index %d out of range (0-%d)", index, len(p.Slides)-1)
	}
	src := p.Slides[index]
	dst := NewSlide(p.nextSlideID, src.layout)
	p.nextSlideID++
	dst.name = src.name
	dst.notes = src.notes
	dst.hidden = src.hidden
	if src.transition != nil {
		t := *src.transition
		dst.transition = &t
	}
	if src.background != nil {
		bg := *src.background
		dst.background = &bg
	}
	dst.rawBackground = src.rawBackground
	dst.shapes = src.shapes.clone()
	// Carry over the media/chart/hyperlink relationships the copied
	// shapes reference by rId; the structural layout/notes/comments
	// relationships are re-derived at save time.
	for _, rel := range src.rels().All() {
		switch rel.Type {
		case RelTypeSlideLayout, RelTypeNotesSlide, RelTypeComments:
			continue
		}
		if err := dst.rels().AddWithID(rel.ID, rel.Type, rel.TargetURI, rel.TargetMode); err != nil {
			return nil, err
		}
	}
	for _, c := range src.comments {
		cc := *c
		dst.comments = append(dst.comments, &cc)
	}
	dst.animations = append([]*Animation(nil), src.animations...)
	p.Slides = append(p.Slides, dst)
	return dst, nil
}

// ExtractText returns all text content from the presentation as a
// single newline-joined string, useful for search/indexing (teacher's
// `ExtractText`, kept per SPEC_FULL §C).
func (p *Presentation) ExtractText() string {
	var parts []string
	for _, slide := range p.Slides {
		if t := slide.ExtractText(); t != "" {
			parts = append(parts, t)
		}
		if slide.notes != "" {
			parts = append(parts, slide.notes)
		}
	}
	return joinNonEmpty(parts, "\n")
}
