package pptx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
)

// Well-known content types used by a PresentationML package.
const (
	ContentTypeXML               = "application/xml"
	ContentTypeRels              = "application/vnd.openxmlformats-package.relationships+xml"
	ContentTypePresentation      = "application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"
	ContentTypeMacroPresentation = "application/vnd.ms-powerpoint.presentation.macroEnabled.main+xml"
	ContentTypeSlide             = "application/vnd.openxmlformats-officedocument.presentationml.slide+xml"
	ContentTypeSlideLayout       = "application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"
	ContentTypeSlideMaster       = "application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"
	ContentTypeNotesSlide        = "application/vnd.openxmlformats-officedocument.presentationml.notesSlide+xml"
	ContentTypeNotesMaster       = "application/vnd.openxmlformats-officedocument.presentationml.notesMaster+xml"
	ContentTypeTheme             = "application/vnd.openxmlformats-officedocument.theme+xml"
	ContentTypeChart             = "application/vnd.openxmlformats-officedocument.drawingml.chart+xml"
	ContentTypeCoreProps         = "application/vnd.openxmlformats-package.core-properties+xml"
	ContentTypeAppProps          = "application/vnd.openxmlformats-officedocument.extended-properties+xml"
	ContentTypeXLSX              = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypeXlsxWorkbook      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet.main+xml"
	ContentTypeXlsxWorksheet     = "application/vnd.openxmlformats-officedocument.spreadsheetml.worksheet+xml"
	ContentTypeXlsxStyles        = "application/vnd.openxmlformats-officedocument.spreadsheetml.styles+xml"
	ContentTypeVBAProject        = "application/vnd.ms-office.vbaProject"
	ContentTypePresProps         = "application/vnd.openxmlformats-officedocument.presentationml.presProps+xml"
	ContentTypeViewProps         = "application/vnd.openxmlformats-officedocument.presentationml.viewProps+xml"
	ContentTypeTableStyles       = "application/vnd.openxmlformats-officedocument.presentationml.tableStyles+xml"
	ContentTypeComments          = "application/vnd.openxmlformats-officedocument.presentationml.comments+xml"
	ContentTypeCommentAuthors    = "application/vnd.openxmlformats-officedocument.presentationml.commentAuthors+xml"
	ContentTypePNG               = "image/png"
	ContentTypeJPEG              = "image/jpeg"
	ContentTypeGIF               = "image/gif"
	ContentTypeBMP               = "image/bmp"
	ContentTypeTIFF              = "image/tiff"
	ContentTypeSVG               = "image/svg+xml"
	ContentTypeEMF               = "image/x-emf"
	ContentTypeWMF               = "image/x-wmf"
	ContentTypeOctetStream       = "application/octet-stream"
)

// defaultExtensionTypes seeds a fresh ContentTypes catalog's Default
// entries; additional extensions are added on demand as parts of an
// unrecognized extension are inserted.
var defaultExtensionTypes = map[string]string{
	"rels": ContentTypeRels,
	"xml":  ContentTypeXML,
	"png":  ContentTypePNG,
	"jpeg": ContentTypeJPEG,
	"jpg":  ContentTypeJPEG,
	"gif":  ContentTypeGIF,
	"bmp":  ContentTypeBMP,
	"tiff": ContentTypeTIFF,
	"svg":  ContentTypeSVG,
	"emf":  ContentTypeEMF,
	"wmf":  ContentTypeWMF,
}

// contentTypesXML mirrors `[Content_Types].xml`'s schema.
type contentTypesXML struct {
	XMLName   xml.Name             `xml:"http://schemas.openxmlformats.org/package/2006/content-types Types"`
	Defaults  []ctDefaultXML       `xml:"Default"`
	Overrides []ctOverrideXML      `xml:"Override"`
}

type ctDefaultXML struct {
	Extension   string `xml:"Extension,attr"`
	ContentType string `xml:"ContentType,attr"`
}

type ctOverrideXML struct {
	PartName    string `xml:"PartName,attr"`
	ContentType string `xml:"ContentType,attr"`
}

// ContentTypes is the package's content-type catalog: a default type
// per file extension, overridden per PackURI where the default does
// not apply (every part whose correct type cannot be inferred from
// its extension alone gets an explicit override, per OPC §4.1).
type ContentTypes struct {
	defaults  map[string]string    // extension (lower, no dot) -> content type
	overrides map[PackURI]string
}

// NewContentTypes returns a catalog seeded with the standard
// extension defaults.
func NewContentTypes() *ContentTypes {
	ct := &ContentTypes{
		defaults:  make(map[string]string, len(defaultExtensionTypes)),
		overrides: make(map[PackURI]string),
	}
	for ext, t := range defaultExtensionTypes {
		ct.defaults[ext] = t
	}
	return ct
}

// SetDefault registers or replaces the default content type for ext
// (without a leading dot).
func (ct *ContentTypes) SetDefault(ext, contentType string) {
	ct.defaults[ext] = contentType
}

// SetOverride registers an explicit content type for u, taking
// precedence over any extension default.
func (ct *ContentTypes) SetOverride(u PackURI, contentType string) {
	ct.overrides[u] = contentType
}

// RemoveOverride drops u's explicit content type, falling back to the
// extension default (used when a part is removed).
func (ct *ContentTypes) RemoveOverride(u PackURI) {
	delete(ct.overrides, u)
}

// ContentTypeFor resolves the content type that applies to u: an
// override if one is registered, otherwise the default for its
// extension, otherwise ContentTypeOctetStream.
func (ct *ContentTypes) ContentTypeFor(u PackURI) string {
	if t, ok := ct.overrides[u]; ok {
		return t
	}
	if t, ok := ct.defaults[u.Ext()]; ok {
		return t
	}
	return ContentTypeOctetStream
}

// MarshalXML serializes the catalog in `[Content_Types].xml` form,
// with defaults and overrides each emitted in a stable sorted order
// for deterministic ZIP output (spec §4.1).
func (ct *ContentTypes) MarshalXML() ([]byte, error) {
	doc := contentTypesXML{}

	exts := make([]string, 0, len(ct.defaults))
	for ext := range ct.defaults {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		doc.Defaults = append(doc.Defaults, ctDefaultXML{Extension: ext, ContentType: ct.defaults[ext]})
	}

	uris := make([]PackURI, 0, len(ct.overrides))
	for u := range ct.overrides {
		uris = append(uris, u)
	}
	sort.Slice(uris, func(i, j int) bool { return uris[i] < uris[j] })
	for _, u := range uris {
		doc.Overrides = append(doc.Overrides, ctOverrideXML{PartName: string(u), ContentType: ct.overrides[u]})
	}

	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("pptx: marshal content types: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// ParseContentTypes decodes `[Content_Types].xml` bytes.
func ParseContentTypes(data []byte) (*ContentTypes, error) {
	return parseContentTypesWith(data, nil)
}

// parseContentTypesWith decodes with an optional CharsetReader so
// packages written by legacy non-UTF-8 tools still open.
func parseContentTypesWith(data []byte, cr func(string, io.Reader) (io.Reader, error)) (*ContentTypes, error) {
	var doc contentTypesXML
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = cr
	if err := dec.Decode(&doc); err != nil {
		return nil, newPackageError(ErrKindInvalidXML, string(ContentTypesURI), err)
	}
	ct := &ContentTypes{
		defaults:  make(map[string]string, len(doc.Defaults)),
		overrides: make(map[PackURI]string, len(doc.Overrides)),
	}
	for _, d := range doc.Defaults {
		ct.defaults[d.Extension] = d.ContentType
	}
	for _, o := range doc.Overrides {
		ct.overrides[PackURI(o.PartName)] = o.ContentType
	}
	return ct, nil
}
