package pptx

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// TargetMode distinguishes a relationship that targets another Part
// in this Package from one that targets an external resource (a URL,
// typically).
type TargetMode int

// Supported TargetMode values.
const (
	TargetInternal TargetMode = iota
	TargetExternal
)

func (m TargetMode) String() string {
	if m == TargetExternal {
		return "External"
	}
	return "Internal"
}

// Well-known relationship type URIs used throughout the presentation
// part graph.
const (
	RelTypeOfficeDocument  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument"
	RelTypeSlide           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slide"
	RelTypeSlideLayout     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideLayout"
	RelTypeSlideMaster     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/slideMaster"
	RelTypeNotesSlide      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesSlide"
	RelTypeNotesMaster     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/notesMaster"
	RelTypeTheme           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/theme"
	RelTypeImage           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	RelTypeHyperlink       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink"
	RelTypeChart           = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/chart"
	RelTypePackage         = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/package"
	RelTypeCoreProperties  = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	RelTypeThumbnail       = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/thumbnail"
	RelTypeExtProperties   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/extended-properties"
	RelTypeVBAProject      = "http://schemas.microsoft.com/office/2006/relationships/vbaProject"
	RelTypeComments        = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
	RelTypeCommentAuthors  = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/commentAuthors"
	RelTypeWorksheet       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet"
	RelTypeStyles          = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/styles"
	RelTypePresProps       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/presProps"
	RelTypeViewProps       = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/viewProps"
	RelTypeTableStyles     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/tableStyles"
)

// Relationship is a typed, identified link from an owning Part (or
// the package itself) to a target PackURI or external URI.
type Relationship struct {
	ID         string
	Type       string
	TargetURI  string // internal: a PackURI string; external: an arbitrary URI
	TargetMode TargetMode
}

// relationshipXML / relationshipsXML mirror the persisted
// `*.rels` schema (ECMA-376 part 2, §9.2.2).
type relationshipXML struct {
	XMLName    xml.Name `xml:"Relationship"`
	ID         string   `xml:"Id,attr"`
	Type       string   `xml:"Type,attr"`
	Target     string   `xml:"Target,attr"`
	TargetMode string   `xml:"TargetMode,attr,omitempty"`
}

type relationshipsXML struct {
	XMLName xml.Name           `xml:"http://schemas.openxmlformats.org/package/2006/relationships Relationships"`
	Rels    []relationshipXML  `xml:"Relationship"`
}

// Relationships is the owned relationship table of a Part, or of the
// Package itself for the root `_rels/.rels` file. Ids follow the
// `rId<n>` pattern; adding a relationship allocates the smallest
// integer suffix not already in use.
type Relationships struct {
	byID map[string]*Relationship
}

// NewRelationships returns an empty relationship table.
func NewRelationships() *Relationships {
	return &Relationships{byID: make(map[string]*Relationship)}
}

// Add inserts a relationship and assigns it the next unused rId.
func (r *Relationships) Add(relType, targetURI string, mode TargetMode) *Relationship {
	id := r.nextID()
	rel := &Relationship{ID: id, Type: relType, TargetURI: targetURI, TargetMode: mode}
	r.byID[id] = rel
	return rel
}

// AddWithID inserts a relationship under a caller-chosen id, used
// when round-tripping a parsed `.rels` file so ids are preserved
// exactly. It is an error to reuse an id already present.
func (r *Relationships) AddWithID(id, relType, targetURI string, mode TargetMode) error {
	if _, exists := r.byID[id]; exists {
		return fmt.Errorf("pptx: relationship id %q already exists", id)
	}
	r.byID[id] = &Relationship{ID: id, Type: relType, TargetURI: targetURI, TargetMode: mode}
	return nil
}

// Get returns the relationship with the given id, or nil.
func (r *Relationships) Get(id string) *Relationship {
	return r.byID[id]
}

// Remove deletes the relationship with the given id. It does not
// renumber any other relationship's id.
func (r *Relationships) Remove(id string) {
	delete(r.byID, id)
}

// ByType returns all relationships of the given type, in id order.
func (r *Relationships) ByType(relType string) []*Relationship {
	var out []*Relationship
	for _, rel := range r.All() {
		if rel.Type == relType {
			out = append(out, rel)
		}
	}
	return out
}

// All returns every relationship sorted by numeric rId suffix.
func (r *Relationships) All() []*Relationship {
	out := make([]*Relationship, 0, len(r.byID))
	for _, rel := range r.byID {
		out = append(out, rel)
	}
	sort.Slice(out, func(i, j int) bool {
		return rIDNum(out[i].ID) < rIDNum(out[j].ID)
	})
	return out
}

// Empty reports whether the table has no relationships, in which
// case the owning `.rels` part is omitted entirely on save.
func (r *Relationships) Empty() bool { return len(r.byID) == 0 }

// nextID returns the smallest "rId<n>" not currently assigned.
func (r *Relationships) nextID() string {
	n := 1
	for {
		candidate := "rId" + strconv.Itoa(n)
		if _, exists := r.byID[candidate]; !exists {
			return candidate
		}
		n++
	}
}

// rIDNum extracts the numeric suffix of an "rId<n>" string; ids not
// matching the pattern sort last.
func rIDNum(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "rId"))
	if err != nil {
		return 1<<31 - 1
	}
	return n
}

// MarshalXML serializes the table in the `*.rels` schema.
func (r *Relationships) MarshalXML() ([]byte, error) {
	doc := relationshipsXML{}
	for _, rel := range r.All() {
		rx := relationshipXML{ID: rel.ID, Type: rel.Type, Target: rel.TargetURI}
		if rel.TargetMode == TargetExternal {
			rx.TargetMode = "External"
		}
		doc.Rels = append(doc.Rels, rx)
	}
	body, err := xml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("pptx: marshal relationships: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// ParseRelationships decodes a `*.rels` part's XML bytes.
func ParseRelationships(data []byte) (*Relationships, error) {
	return parseRelationshipsWith(data, nil)
}

func parseRelationshipsWith(data []byte, cr func(string, io.Reader) (io.Reader, error)) (*Relationships, error) {
	var doc relationshipsXML
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.CharsetReader = cr
	if err := dec.Decode(&doc); err != nil {
		return nil, newPackageError(ErrKindInvalidXML, "", err)
	}
	rels := NewRelationships()
	for _, rx := range doc.Rels {
		mode := TargetInternal
		if strings.EqualFold(rx.TargetMode, "External") {
			mode = TargetExternal
		}
		if err := rels.AddWithID(rx.ID, rx.Type, rx.Target, mode); err != nil {
			return nil, newPackageError(ErrKindInvalidXML, "", err)
		}
	}
	return rels, nil
}
