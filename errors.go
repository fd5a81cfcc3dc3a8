// Package pptx provides functionality to read, mutate, and write
// PowerPoint presentation files (.pptx / .pptm) in the Office Open XML
// "PresentationML" format.
package pptx

import (
	"errors"
	"fmt"
)

var (
	// ErrSlideNameBlank is returned when a blank slide name is supplied
	// where a name is required.
	ErrSlideNameBlank = errors.New("pptx: slide name cannot be blank")
	// ErrOptionsUnzipSizeLimit is returned when UnzipXMLSizeLimit exceeds
	// UnzipSizeLimit.
	ErrOptionsUnzipSizeLimit = errors.New("pptx: UnzipXMLSizeLimit must be less than or equal to UnzipSizeLimit")
	// ErrNilPresentation is returned by writer operations invoked on a nil
	// Presentation.
	ErrNilPresentation = errors.New("pptx: presentation is nil")
	// ErrEmptyTextFrame is returned when a TextFrame would be serialized
	// with zero paragraphs, which PowerPoint rejects.
	ErrEmptyTextFrame = errors.New("pptx: text frame must have at least one paragraph")
	// ErrInvalidFontSize is returned when a Font size is negative; a size
	// of 0 means unset and is not rejected.
	ErrInvalidFontSize = errors.New("pptx: font size must be positive")
	// ErrChartTypeImmutable is returned by ReplaceData when the caller
	// attempts to change a chart's type.
	ErrChartTypeImmutable = errors.New("pptx: chart type is immutable; create a new chart to change it")
	// ErrChartDataMismatch is returned by NewChart when the data
	// source's shape does not fit the requested chart family.
	ErrChartDataMismatch = errors.New("pptx: chart data source does not match the chart type's family")
)

// PackageErrorKind identifies the class of failure a PackageError
// represents, matching the closed set of failure modes in the OPC
// package contract.
type PackageErrorKind int

// Supported PackageError kinds.
const (
	ErrKindIO PackageErrorKind = iota
	ErrKindMalformedZip
	ErrKindInvalidXML
	ErrKindMissingContentType
	ErrKindMissingPart
	ErrKindDanglingRelationship
	ErrKindDuplicatePartName
	ErrKindUnsupportedImageFormat
	ErrKindCore
)

func (k PackageErrorKind) String() string {
	switch k {
	case ErrKindIO:
		return "Io"
	case ErrKindMalformedZip:
		return "MalformedZip"
	case ErrKindInvalidXML:
		return "InvalidXml"
	case ErrKindMissingContentType:
		return "MissingContentType"
	case ErrKindMissingPart:
		return "MissingPart"
	case ErrKindDanglingRelationship:
		return "DanglingRelationship"
	case ErrKindDuplicatePartName:
		return "DuplicatePartName"
	case ErrKindUnsupportedImageFormat:
		return "UnsupportedImageFormat"
	default:
		return "CoreError"
	}
}

// PackageError reports a failure while opening, mutating, or saving an
// OPC package. It always carries the offending part name or path so
// callers can act on it programmatically.
type PackageError struct {
	Kind PackageErrorKind
	Path string
	Err  error
}

func (e *PackageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("pptx: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("pptx: %s %q: %v", e.Kind, e.Path, e.Err)
}

func (e *PackageError) Unwrap() error { return e.Err }

func newPackageError(kind PackageErrorKind, path string, err error) *PackageError {
	return &PackageError{Kind: kind, Path: path, Err: err}
}

// ErrSlideNotExist reports that a requested slide id has no matching
// slide in the presentation.
type ErrSlideNotExist struct {
	SlideID int
}

func (e ErrSlideNotExist) Error() string {
	return fmt.Sprintf("pptx: slide %d does not exist", e.SlideID)
}

// ErrUnknownLayout reports that a requested slide layout is not part
// of this presentation's slide masters.
type ErrUnknownLayout struct {
	Name string
}

func (e ErrUnknownLayout) Error() string {
	return fmt.Sprintf("pptx: layout %q is not present in this presentation", e.Name)
}

// ErrInvalidShapeID reports a shape_id collision detected while turbo
// add (ShapeTree.EnableTurboAdd) is off.
type ErrInvalidShapeID struct {
	ShapeID uint32
}

func (e ErrInvalidShapeID) Error() string {
	return fmt.Sprintf("pptx: shape id %d is already in use in this shape tree", e.ShapeID)
}

// TableErrorKind closes the set of ways a table mutation can be
// rejected.
type TableErrorKind int

// Supported TableError kinds.
const (
	TableErrInvalidMerge TableErrorKind = iota
	TableErrOutOfRange
)

// TableError reports a rejected table mutation, such as a merge that
// overlaps an existing merged region.
type TableError struct {
	Kind TableErrorKind
	Msg  string
}

func (e *TableError) Error() string { return "pptx: table: " + e.Msg }

func newTableError(kind TableErrorKind, msg string) *TableError {
	return &TableError{Kind: kind, Msg: msg}
}

// newUnzipSizeLimitError reports that extracting a ZIP entry would
// exceed the configured size limit.
func newUnzipSizeLimitError(limit int64) error {
	return fmt.Errorf("pptx: unzip size exceeds the %d byte limit", limit)
}
