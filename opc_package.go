package pptx

import (
	"archive/zip"
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/flate"
)

// Options configures package open/save behavior. The zero value is
// usable and applies the package's conservative defaults.
type Options struct {
	// UnzipSizeLimit caps the uncompressed size of any single ZIP
	// entry read from a package; 0 selects the default (256 MiB).
	UnzipSizeLimit int64
	// UnzipXMLSizeLimit further caps XML parts specifically, since
	// they are fully buffered before parsing; 0 selects the default
	// (64 MiB). Must be <= UnzipSizeLimit when both are set.
	UnzipXMLSizeLimit int64
	// TmpDir is accepted for configuration compatibility; Save writes
	// straight to the caller's writer and creates no temporary files,
	// so the field has no effect.
	TmpDir string
	// CharsetReader, if set, is used to decode XML parts declaring a
	// non-UTF-8 encoding. Defaults to golang.org/x/net/html/charset's
	// NewReaderLabel.
	CharsetReader func(charset string, input io.Reader) (io.Reader, error)
}

const (
	defaultUnzipSizeLimit    int64 = 256 << 20
	defaultUnzipXMLSizeLimit int64 = 64 << 20
)

func (o Options) normalize() (Options, error) {
	if o.UnzipSizeLimit == 0 {
		o.UnzipSizeLimit = defaultUnzipSizeLimit
	}
	if o.UnzipXMLSizeLimit == 0 {
		o.UnzipXMLSizeLimit = defaultUnzipXMLSizeLimit
	}
	if o.UnzipXMLSizeLimit > o.UnzipSizeLimit {
		return o, ErrOptionsUnzipSizeLimit
	}
	if o.CharsetReader == nil {
		o.CharsetReader = defaultCharsetReader
	}
	return o, nil
}

// Package owns the set of Parts keyed by PackURI, the package-level
// relationships, and the content-type catalog. It is the root of the
// OPC object graph (spec §4.1).
type Package struct {
	opts    Options
	parts   map[PackURI]*Part
	rels    *Relationships
	ctypes  *ContentTypes
}

// NewPackage returns an empty Package with a fresh content-type
// catalog and no parts.
func NewPackage(opts Options) (*Package, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	return &Package{
		opts:   opts,
		parts:  make(map[PackURI]*Part),
		rels:   NewRelationships(),
		ctypes: NewContentTypes(),
	}, nil
}

// OpenPackage parses a ZIP-backed OPC package from r, reading
// `[Content_Types].xml`, the root `_rels/.rels`, and every file as a
// Part. Each part's `_rels/*.xml.rels` file is parsed eagerly, while
// the part itself is loaded; relationship reading is not deferred.
func OpenPackage(r io.ReaderAt, size int64, opts Options) (*Package, error) {
	opts, err := opts.normalize()
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, newPackageError(ErrKindMalformedZip, "", err)
	}

	pkg := &Package{
		opts:  opts,
		parts: make(map[PackURI]*Part),
	}

	byName := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		byName["/"+f.Name] = f
	}

	ctData, err := pkg.readZipEntry(byName, string(ContentTypesURI))
	if err != nil {
		return nil, newPackageError(ErrKindMissingContentType, string(ContentTypesURI), err)
	}
	pkg.ctypes, err = parseContentTypesWith(ctData, opts.CharsetReader)
	if err != nil {
		return nil, err
	}

	if rootRelsData, err := pkg.readZipEntry(byName, string(PackageRelsURI)); err == nil {
		pkg.rels, err = parseRelationshipsWith(rootRelsData, opts.CharsetReader)
		if err != nil {
			return nil, err
		}
	} else {
		pkg.rels = NewRelationships()
	}

	for name, f := range byName {
		u := PackURI(name)
		if u == ContentTypesURI || isRelsEntry(name) || strings.HasSuffix(name, "/") {
			continue
		}
		blob, err := pkg.readZipFile(f)
		if err != nil {
			return nil, newPackageError(ErrKindIO, name, err)
		}
		p := NewPart(u, pkg.ctypes.ContentTypeFor(u), blob)
		if relsData, err := pkg.readZipEntry(byName, string(u.RelsURI())); err == nil {
			p.Rels, err = parseRelationshipsWith(relsData, opts.CharsetReader)
			if err != nil {
				return nil, err
			}
		}
		pkg.parts[u] = p
	}

	if err := pkg.checkDanglingRelationships(); err != nil {
		return nil, err
	}
	return pkg, nil
}

func isRelsEntry(name string) bool {
	return strings.HasSuffix(name, ".rels") && strings.Contains(name, "_rels/")
}

func (pkg *Package) readZipEntry(byName map[string]*zip.File, name string) ([]byte, error) {
	f, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("pptx: %s not found in package", name)
	}
	return pkg.readZipFile(f)
}

func (pkg *Package) readZipFile(f *zip.File) ([]byte, error) {
	limit := pkg.opts.UnzipSizeLimit
	if strings.HasSuffix(f.Name, ".xml") || strings.HasSuffix(f.Name, ".rels") {
		limit = pkg.opts.UnzipXMLSizeLimit
	}
	if int64(f.UncompressedSize64) > limit {
		return nil, newUnzipSizeLimitError(limit)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(io.LimitReader(rc, limit+1))
}

// checkDanglingRelationships verifies every internal relationship
// target, package-level and per-part, resolves to a Part actually
// present in the package.
func (pkg *Package) checkDanglingRelationships() error {
	check := func(owner string, rels *Relationships) error {
		for _, rel := range rels.All() {
			if rel.TargetMode == TargetExternal {
				continue
			}
			target, err := JoinRef(packURIForOwner(owner), rel.TargetURI)
			if err != nil {
				return newPackageError(ErrKindDanglingRelationship, owner, err)
			}
			if _, ok := pkg.parts[target]; !ok {
				return newPackageError(ErrKindDanglingRelationship, owner, fmt.Errorf("relationship %s targets missing part %s", rel.ID, target))
			}
		}
		return nil
	}
	if err := check("/", pkg.rels); err != nil {
		return err
	}
	for u, p := range pkg.parts {
		if err := check(string(u), p.Rels); err != nil {
			return err
		}
	}
	return nil
}

func packURIForOwner(owner string) PackURI {
	if owner == "/" {
		return "/"
	}
	return PackURI(owner).BaseURI()
}

// Part returns the part at u, or nil if no such part exists.
func (pkg *Package) Part(u PackURI) *Part { return pkg.parts[u] }

// AddPart registers a new Part, rejecting a PackURI already in use
// (spec's DuplicatePartName failure mode).
func (pkg *Package) AddPart(p *Part) error {
	if _, exists := pkg.parts[p.URI]; exists {
		return newPackageError(ErrKindDuplicatePartName, string(p.URI), fmt.Errorf("part already exists"))
	}
	pkg.parts[p.URI] = p
	pkg.ctypes.SetOverride(p.URI, p.ContentType)
	return nil
}

// RemovePart deletes the part at u and its content-type override.
// Callers are responsible for dropping the relationships that
// targeted it.
func (pkg *Package) RemovePart(u PackURI) {
	delete(pkg.parts, u)
	pkg.ctypes.RemoveOverride(u)
}

// Rels returns the package-level (root) relationship table.
func (pkg *Package) Rels() *Relationships { return pkg.rels }

// ContentTypes returns the package's content-type catalog.
func (pkg *Package) ContentTypes() *ContentTypes { return pkg.ctypes }

// GetOrAddImagePart hashes blob with SHA-1 and returns the PackURI of
// a matching existing image part, or allocates a new
// `/ppt/media/image<n>.<ext>` part if no match exists. n is one
// greater than the current maximum numeric suffix among existing
// `/ppt/media/image*` parts. The extension is chosen by magic-byte
// detection, falling back to extHint.
func (pkg *Package) GetOrAddImagePart(blob []byte, extHint string) (PackURI, string, error) {
	sum := sha1.Sum(blob)
	digest := hex.EncodeToString(sum[:])

	for u, p := range pkg.parts {
		if !strings.HasPrefix(string(u), "/ppt/media/image") {
			continue
		}
		if sha1Hex(p.Blob) == digest {
			return u, digest, nil
		}
	}

	ext := detectImageExt(blob)
	if ext == "" {
		ext = strings.TrimPrefix(extHint, ".")
	}
	if ext == "" {
		return "", "", newPackageError(ErrKindUnsupportedImageFormat, "", fmt.Errorf("no magic-byte match and no extension hint"))
	}

	n := 1
	for u := range pkg.parts {
		if !strings.HasPrefix(string(u), "/ppt/media/image") {
			continue
		}
		if num := imageNumSuffix(string(u)); num >= n {
			n = num + 1
		}
	}
	uri := PackURI(fmt.Sprintf("/ppt/media/image%d.%s", n, ext))
	ct := defaultExtensionTypes[ext]
	if ct == "" {
		ct = ContentTypeOctetStream
	}
	pkg.parts[uri] = NewPart(uri, ct, blob)
	pkg.ctypes.SetDefault(ext, ct)
	return uri, digest, nil
}

func sha1Hex(blob []byte) string {
	sum := sha1.Sum(blob)
	return hex.EncodeToString(sum[:])
}

func imageNumSuffix(uri string) int {
	base := strings.TrimPrefix(uri, "/ppt/media/image")
	dot := strings.IndexByte(base, '.')
	if dot < 0 {
		return 0
	}
	n, err := strconv.Atoi(base[:dot])
	if err != nil {
		return 0
	}
	return n
}

// detectImageExt uses magic-byte sniffing (gabriel-vasile/mimetype) to
// classify blob, returning a bare extension ("png", "jpeg", ...) for
// the formats the spec names, or "" if none match.
func detectImageExt(blob []byte) string {
	mt := mimetype.Detect(blob)
	switch {
	case mt.Is("image/png"):
		return "png"
	case mt.Is("image/jpeg"):
		return "jpeg"
	case mt.Is("image/gif"):
		return "gif"
	case mt.Is("image/bmp"):
		return "bmp"
	case mt.Is("image/tiff"):
		return "tiff"
	case mt.Is("image/svg+xml"):
		return "svg"
	default:
		return ""
	}
}

// storedExtensions are media extensions already compressed in their
// native format; the ZIP writer stores these rather than deflating
// them again.
var storedExtensions = map[string]bool{
	"png": true, "jpeg": true, "jpg": true, "gif": true,
	"emf": true, "wmf": true,
}

// Save serializes the package to w: `[Content_Types].xml`, the root
// `_rels/.rels` (if non-empty), every Part, and every non-empty
// per-part `.rels` file. Entries are written in the deterministic
// order the spec requires: content types, then parts sorted by
// PackURI, then relationship files. XML parts are deflated with a
// klauspost/compress-backed compressor; already-compressed media is
// stored.
func (pkg *Package) Save(w io.Writer) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	writeEntry := func(name string, data []byte, method uint16) error {
		hdr := &zip.FileHeader{Name: strings.TrimPrefix(name, "/"), Method: method}
		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}
		_, err = fw.Write(data)
		return err
	}

	ctData, err := pkg.ctypes.MarshalXML()
	if err != nil {
		return err
	}
	if err := writeEntry(string(ContentTypesURI), ctData, zip.Deflate); err != nil {
		return newPackageError(ErrKindIO, string(ContentTypesURI), err)
	}

	uris := make([]PackURI, 0, len(pkg.parts))
	for u := range pkg.parts {
		uris = append(uris, u)
	}
	sort.Slice(uris, func(i, j int) bool { return uris[i] < uris[j] })

	for _, u := range uris {
		p := pkg.parts[u]
		method := uint16(zip.Deflate)
		if storedExtensions[u.Ext()] {
			method = zip.Store
		}
		if err := writeEntry(string(u), p.Blob, method); err != nil {
			return newPackageError(ErrKindIO, string(u), err)
		}
	}

	if !pkg.rels.Empty() {
		relsData, err := pkg.rels.MarshalXML()
		if err != nil {
			return err
		}
		if err := writeEntry(string(PackageRelsURI), relsData, zip.Deflate); err != nil {
			return newPackageError(ErrKindIO, string(PackageRelsURI), err)
		}
	}

	for _, u := range uris {
		p := pkg.parts[u]
		if !p.Rels.Empty() {
			relsData, err := p.Rels.MarshalXML()
			if err != nil {
				return err
			}
			if err := writeEntry(string(u.RelsURI()), relsData, zip.Deflate); err != nil {
				return newPackageError(ErrKindIO, string(u.RelsURI()), err)
			}
		}
	}

	if err := zw.Close(); err != nil {
		return newPackageError(ErrKindIO, "", err)
	}
	return nil
}

// Bytes serializes the package and returns the resulting ZIP bytes.
func (pkg *Package) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := pkg.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
