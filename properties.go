package pptx

import "time"

// DocumentProperties mirrors `docProps/core.xml` and `docProps/app.xml`:
// the presentation's author/editor metadata plus an open-ended set of
// custom properties.
type DocumentProperties struct {
	Creator        string
	LastModifiedBy string
	Created        time.Time
	Modified       time.Time
	Title          string
	Subject        string
	Description    string
	Keywords       string
	Category       string
	Company        string
	ContentStatus  string
	Revision       int

	customProps map[string]*CustomProperty
}

// PropertyType closes the set of value kinds a custom property can
// hold, matching the `docProps/custom.xml` schema's typed variants.
type PropertyType int

// Supported PropertyType values.
const (
	PropertyTypeString PropertyType = iota
	PropertyTypeNumber
	PropertyTypeBool
	PropertyTypeDate
)

// CustomProperty is one typed custom property. Custom properties are
// held in memory only: Save writes no `docProps/custom.xml` part and
// Open does not read one.
type CustomProperty struct {
	Type  PropertyType
	Value interface{}
}

// NewDocumentProperties returns properties stamped with the current
// time as both Created and Modified.
func NewDocumentProperties() *DocumentProperties {
	now := time.Now()
	return &DocumentProperties{
		Created:     now,
		Modified:    now,
		Revision:    1,
		customProps: make(map[string]*CustomProperty),
	}
}

// SetCustomProperty sets a named custom property of the given type.
func (p *DocumentProperties) SetCustomProperty(name string, typ PropertyType, value interface{}) {
	if p.customProps == nil {
		p.customProps = make(map[string]*CustomProperty)
	}
	p.customProps[name] = &CustomProperty{Type: typ, Value: value}
}

// IsCustomPropertySet reports whether name has been set.
func (p *DocumentProperties) IsCustomPropertySet(name string) bool {
	_, ok := p.customProps[name]
	return ok
}

// GetCustomProperties returns the custom property table.
func (p *DocumentProperties) GetCustomProperties() map[string]*CustomProperty {
	return p.customProps
}

// GetCustomPropertyValue returns the value of name, or nil if unset.
func (p *DocumentProperties) GetCustomPropertyValue(name string) interface{} {
	if cp, ok := p.customProps[name]; ok {
		return cp.Value
	}
	return nil
}

// ViewType closes the set of PowerPoint view modes recorded in
// `presProps.xml`.
type ViewType int

// Supported ViewType values.
const (
	ViewSlide ViewType = iota
	ViewSlideMaster
	ViewNotes
	ViewOutline
	ViewSlideSorter
	ViewNotesMaster
)

// SlideshowType closes the set of slideshow presentation modes.
type SlideshowType int

// Supported SlideshowType values.
const (
	SlideshowPresent SlideshowType = iota
	SlideshowBrowse
	SlideshowKiosk
)

// PresentationProperties mirrors `ppt/presProps.xml`.
type PresentationProperties struct {
	zoom           int // percent
	lastView       ViewType
	slideshowType  SlideshowType
	commentVisible bool
	markedAsFinal  bool
	thumbnailPath  string
	thumbnailData  []byte
}

// NewPresentationProperties returns properties with PowerPoint's
// defaults: 100% zoom, normal view, present-mode slideshow.
func NewPresentationProperties() *PresentationProperties {
	return &PresentationProperties{zoom: 100, lastView: ViewSlide, slideshowType: SlideshowPresent}
}

func (p *PresentationProperties) Zoom() int                        { return p.zoom }
func (p *PresentationProperties) SetZoom(pct int)                  { p.zoom = pct }
func (p *PresentationProperties) LastView() ViewType                { return p.lastView }
func (p *PresentationProperties) SetLastView(v ViewType)            { p.lastView = v }
func (p *PresentationProperties) SlideshowType() SlideshowType      { return p.slideshowType }
func (p *PresentationProperties) SetSlideshowType(t SlideshowType)  { p.slideshowType = t }
func (p *PresentationProperties) CommentVisible() bool              { return p.commentVisible }
func (p *PresentationProperties) SetCommentVisible(v bool)          { p.commentVisible = v }
func (p *PresentationProperties) MarkedAsFinal() bool                { return p.markedAsFinal }
func (p *PresentationProperties) SetMarkedAsFinal(v bool)            { p.markedAsFinal = v }

// SetThumbnail attaches a `/docProps/thumbnail.<ext>` image, written
// alongside the package's root relationships on save.
func (p *PresentationProperties) SetThumbnail(path string, data []byte) {
	p.thumbnailPath, p.thumbnailData = path, data
}

// Thumbnail returns the presentation's thumbnail path and bytes, or
// ("", nil) if none was set.
func (p *PresentationProperties) Thumbnail() (string, []byte) {
	return p.thumbnailPath, p.thumbnailData
}

// LayoutType closes the set of PowerPoint's standard slide layout
// kinds (the `type` attribute of `<p:sldLayout>`), used to pick and
// label the eleven layouts a new presentation's default master ships
// with (spec §4.2).
type LayoutType string

// Supported LayoutType values.
const (
	LayoutTitleSlide           LayoutType = "title"
	LayoutTitleAndContent      LayoutType = "obj"
	LayoutSectionHeader        LayoutType = "secHead"
	LayoutTwoContent           LayoutType = "twoObj"
	LayoutComparison           LayoutType = "twoTxTwoObj"
	LayoutTitleOnly            LayoutType = "titleOnly"
	LayoutBlank                LayoutType = "blank"
	LayoutContentWithCaption   LayoutType = "objTx"
	LayoutPictureWithCaption   LayoutType = "picTx"
	LayoutTitleAndVerticalText LayoutType = "vertTx"
	LayoutVerticalTitleAndText LayoutType = "vertTitleAndTx"
)

// SlideMasterRef is a presentation's reference to a `<p:sldMaster>`
// part: its package location, display name, and the slide layouts
// that belong to it, in document order.
type SlideMasterRef struct {
	uri          PackURI
	Name         string
	Layouts      []*SlideLayoutRef
	placeholders *ShapeTree
}

// URI returns the master's part location.
func (m *SlideMasterRef) URI() PackURI { return m.uri }

// Placeholders returns the master's placeholder shapes as structured
// values, for consumers walking slide -> layout -> master to resolve
// inherited style. May be empty for a master with no placeholders.
func (m *SlideMasterRef) Placeholders() *ShapeTree {
	if m.placeholders == nil {
		m.placeholders = NewShapeTree()
	}
	return m.placeholders
}

// SlideLayoutRef is a presentation's reference to a `<p:sldLayout>`
// part: its package location, name, standard type, owning master, and
// the placeholder shape tree a new slide clones from it (spec §4.2's
// "placeholder inheritance").
type SlideLayoutRef struct {
	uri    PackURI
	Name   string
	Type   LayoutType
	master *SlideMasterRef
	shapes *ShapeTree

	// placeholders is the structured placeholder view of an opened
	// layout, parsed separately because `shapes` then holds only the
	// raw insertion-mode bytes. Nil for template-built layouts, whose
	// `shapes` tree is fully structured already.
	placeholders *ShapeTree
}

// URI returns the layout's part location.
func (l *SlideLayoutRef) URI() PackURI { return l.uri }

// Master returns the slide master this layout belongs to.
func (l *SlideLayoutRef) Master() *SlideMasterRef { return l.master }

// Shapes returns the layout's shape tree as stored: fully structured
// for a template-built layout, raw insertion-mode bytes for an opened
// one. Callers after the placeholder set specifically should use
// Placeholders.
func (l *SlideLayoutRef) Shapes() *ShapeTree { return l.shapes }

// Placeholders returns the layout's placeholder shapes as structured
// values, the source AddSlide clones from regardless of whether the
// layout was built fresh or read from an existing file.
func (l *SlideLayoutRef) Placeholders() *ShapeTree { return l.placeholderSource() }

func (l *SlideLayoutRef) placeholderSource() *ShapeTree {
	if l.placeholders != nil {
		return l.placeholders
	}
	return l.shapes
}

// Section groups a contiguous or scattered run of slide ids under a
// display name, mirroring real PresentationML's `p14:section`
// extension (spec §4.2, supplemented feature).
type Section struct {
	Name     string
	SlideIDs []uint32
}
