package pptx

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
)

// PackURI is an absolute in-package path, always beginning with "/",
// identifying a Part within a Package. PackURI values are immutable
// once constructed.
type PackURI string

// ContentTypesURI is the fixed, well-known location of the content
// type catalog.
const ContentTypesURI PackURI = "/[Content_Types].xml"

// PackageRelsURI is the fixed, well-known location of the package's
// own relationships file.
const PackageRelsURI PackURI = "/_rels/.rels"

// NewPackURI parses s into a PackURI. s must begin with "/"; a
// relative string is an error since every in-package path is
// absolute by construction.
func NewPackURI(s string) (PackURI, error) {
	if !strings.HasPrefix(s, "/") {
		return "", fmt.Errorf("pptx: pack uri %q must be absolute (start with /)", s)
	}
	return PackURI(path.Clean(s)), nil
}

// String returns the PackURI as a plain string.
func (u PackURI) String() string { return string(u) }

// BaseURI returns the directory component of u, i.e. u with its final
// path segment removed. The base URI of "/ppt/slides/slide1.xml" is
// "/ppt/slides".
func (u PackURI) BaseURI() PackURI {
	dir := path.Dir(string(u))
	return PackURI(dir)
}

// Ext returns the file extension of u, without the leading dot,
// lower-cased. "/ppt/media/image3.PNG" yields "png".
func (u PackURI) Ext() string {
	e := path.Ext(string(u))
	return strings.ToLower(strings.TrimPrefix(e, "."))
}

// RelsURI returns the PackURI of the relationships part that would
// describe the part at u, e.g. "/ppt/slides/slide1.xml" yields
// "/ppt/slides/_rels/slide1.xml.rels".
func (u PackURI) RelsURI() PackURI {
	dir := u.BaseURI()
	name := path.Base(string(u))
	if dir == "/" {
		return PackURI("/_rels/" + name + ".rels")
	}
	return PackURI(string(dir) + "/_rels/" + name + ".rels")
}

// MemberName returns u with the leading "/" stripped, the form used
// as a ZIP entry name.
func (u PackURI) MemberName() string {
	return strings.TrimPrefix(string(u), "/")
}

// RelativeRef returns the relative reference from baseURI to u, as it
// would be written as a relationship Target attribute when both the
// source and target are internal parts under the same tree. Packages
// conventionally use this to keep relationship targets short and
// portable when parts are relocated as a group.
func (u PackURI) RelativeRef(baseURI PackURI) string {
	rel, err := filepath.Rel(string(baseURI), string(u))
	if err != nil {
		return string(u)
	}
	return rel
}

// JoinRef resolves a relative reference found as a relationship
// Target attribute against the base URI of the part that owns the
// relationship, per OPC URI-resolution rules (RFC 3986 §5.3 applied
// to in-package paths).
func JoinRef(baseURI PackURI, ref string) (PackURI, error) {
	if strings.HasPrefix(ref, "/") {
		return NewPackURI(ref)
	}
	joined := path.Join(string(baseURI), ref)
	return NewPackURI(joined)
}
