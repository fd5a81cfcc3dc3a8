package pptx

// Part owns a PackURI, a content-type string, an opaque binary blob,
// and its own Relationships table. A Part is created when its blob is
// first materialized and is destroyed along with the Package that
// holds it; it has no independent lifetime.
type Part struct {
	URI         PackURI
	ContentType string
	Blob        []byte
	Rels        *Relationships
}

// NewPart returns a Part with an empty relationship table.
func NewPart(uri PackURI, contentType string, blob []byte) *Part {
	return &Part{
		URI:         uri,
		ContentType: contentType,
		Blob:        blob,
		Rels:        NewRelationships(),
	}
}

// PartType closes the set of structural roles a Part can play,
// inferred from its content type, used to choose a default
// relationship type when a new part is added and wired to a parent.
type PartType int

// Supported PartType values.
const (
	PartTypeUnknown PartType = iota
	PartTypePresentation
	PartTypeSlide
	PartTypeSlideLayout
	PartTypeSlideMaster
	PartTypeNotesSlide
	PartTypeNotesMaster
	PartTypeTheme
	PartTypeChart
	PartTypeImage
	PartTypeCoreProperties
	PartTypeAppProperties
	PartTypeEmbeddedPackage
	PartTypeVBAProject
)

// partTypeByContentType maps a content type string to the structural
// role used by callers adding parts (e.g. Presentation.addSlide)
// that need to pick a matching relationship type.
var partTypeByContentType = map[string]PartType{
	ContentTypePresentation:      PartTypePresentation,
	ContentTypeMacroPresentation: PartTypePresentation,
	ContentTypeSlide:             PartTypeSlide,
	ContentTypeSlideLayout:       PartTypeSlideLayout,
	ContentTypeSlideMaster:       PartTypeSlideMaster,
	ContentTypeNotesSlide:        PartTypeNotesSlide,
	ContentTypeNotesMaster:       PartTypeNotesMaster,
	ContentTypeTheme:             PartTypeTheme,
	ContentTypeChart:             PartTypeChart,
	ContentTypeCoreProps:         PartTypeCoreProperties,
	ContentTypeAppProps:          PartTypeAppProperties,
	ContentTypeXLSX:              PartTypeEmbeddedPackage,
	ContentTypeVBAProject:        PartTypeVBAProject,
	ContentTypePNG:               PartTypeImage,
	ContentTypeJPEG:              PartTypeImage,
	ContentTypeGIF:               PartTypeImage,
	ContentTypeBMP:               PartTypeImage,
	ContentTypeTIFF:              PartTypeImage,
	ContentTypeSVG:               PartTypeImage,
	ContentTypeEMF:               PartTypeImage,
	ContentTypeWMF:               PartTypeImage,
}

// PartTypeFromContentType implements the spec's
// `part_type_from_content_type` closed mapping.
func PartTypeFromContentType(contentType string) PartType {
	if t, ok := partTypeByContentType[contentType]; ok {
		return t
	}
	return PartTypeUnknown
}

// relTypeForPartType returns the conventional relationship type URI
// used when wiring a newly added part of the given type into its
// parent's relationship table.
func relTypeForPartType(t PartType) string {
	switch t {
	case PartTypeSlide:
		return RelTypeSlide
	case PartTypeSlideLayout:
		return RelTypeSlideLayout
	case PartTypeSlideMaster:
		return RelTypeSlideMaster
	case PartTypeNotesSlide:
		return RelTypeNotesSlide
	case PartTypeNotesMaster:
		return RelTypeNotesMaster
	case PartTypeTheme:
		return RelTypeTheme
	case PartTypeChart:
		return RelTypeChart
	case PartTypeImage:
		return RelTypeImage
	case PartTypeEmbeddedPackage:
		return RelTypePackage
	case PartTypeCoreProperties:
		return RelTypeCoreProperties
	case PartTypeAppProperties:
		return RelTypeExtProperties
	case PartTypeVBAProject:
		return RelTypeVBAProject
	default:
		return ""
	}
}
