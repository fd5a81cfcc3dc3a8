package pptx

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mohae/deepcopy"
)

// ShapeTree holds the ordered shapes of a slide, layout, master, or
// group (spec §4.3). It has two emission modes:
//
//   - generation mode (the default): XML re-emits every shape from its
//     in-memory representation, discarding any markup the tree didn't
//     model when it was read.
//   - insertion mode: entered when the reader parses an existing slide
//     or layout, preserves the raw bytes of the source `<p:spTree>` and
//     splices new shapes in by byte position, so unknown or unmodeled
//     child elements round-trip untouched. Slides added from an opened
//     layout do not inherit this mode: AddSlide clones the layout's
//     parsed placeholder tree, which is in generation mode.
type ShapeTree struct {
	shapes []Shape

	insertionMode   bool
	rawSpTreeOpen   string          // `<p:spTree>...nvGrpSpPr/grpSpPr...` prefix, preserved verbatim
	rawSpTreeTail   string          // unmodeled trailing children, preserved verbatim
	rawShapeIDs     map[uint32]bool // ids of shapes baked into rawSpTreeOpen, never parsed into structs
	turboAddEnabled bool
}

// NewShapeTree returns an empty tree in generation mode.
func NewShapeTree() *ShapeTree {
	return &ShapeTree{}
}

// newInsertionShapeTree returns a tree in insertion mode, seeded from
// a parsed slide's raw `<p:spTree>` prefix and tail, used by the
// reader when opening an existing presentation (spec §4.3). The raw
// bytes are scanned for the shape ids already present so id
// allocation and uniqueness checks stay collision-free against shapes
// that are preserved but never parsed into structs.
func newInsertionShapeTree(rawOpen, rawTail string) *ShapeTree {
	return &ShapeTree{
		insertionMode: true,
		rawSpTreeOpen: rawOpen,
		rawSpTreeTail: rawTail,
		rawShapeIDs:   scanRawShapeIDs(rawOpen),
	}
}

// scanRawShapeIDs collects the id attribute of every `<p:cNvPr>` in a
// preserved raw shape-tree prefix. The tree-level `<p:cNvPr id="1">`
// of the `<p:nvGrpSpPr>` wrapper is swept up too, which is harmless:
// id 1 is reserved for the tree itself in every real deck.
func scanRawShapeIDs(raw string) map[uint32]bool {
	ids := make(map[uint32]bool)
	rest := raw
	for {
		i := strings.Index(rest, "<p:cNvPr")
		if i == -1 {
			return ids
		}
		rest = rest[i+len("<p:cNvPr"):]
		end := strings.IndexByte(rest, '>')
		if end == -1 {
			return ids
		}
		tag := rest[:end]
		if j := strings.Index(tag, `id="`); j != -1 {
			v := tag[j+len(`id="`):]
			if k := strings.IndexByte(v, '"'); k != -1 {
				if n, err := strconv.ParseUint(v[:k], 10, 32); err == nil {
					ids[uint32(n)] = true
				}
			}
		}
		rest = rest[end:]
	}
}

// EnableTurboAdd toggles an append-only fast path: when enabled, Add
// skips the shape_id uniqueness scan for shapes that arrive with a
// non-zero id, leaving uniqueness to the caller, and appends them
// without walking the tree. Shapes with a zero id are still numbered
// max(existing)+1, which walks the tree as usual (spec §4.3).
func (t *ShapeTree) EnableTurboAdd(enabled bool) { t.turboAddEnabled = enabled }

// Shapes returns the tree's shapes in document order. The returned
// slice must not be mutated; use Add/Remove instead.
func (t *ShapeTree) Shapes() []Shape { return t.shapes }

// Len returns the number of shapes directly in this tree (not
// counting descendants of nested groups).
func (t *ShapeTree) Len() int { return len(t.shapes) }

// Add appends s, allocating a shape_id if s's is zero. A non-zero id
// is checked for uniqueness against the tree (including nested
// groups) unless turbo add is enabled, in which case the caller
// guarantees uniqueness and the scan is skipped. Shape ids are unique
// within the whole root tree (group nesting does not reset the
// numbering space), so callers building nested groups should route
// allocation through the slide's tree rather than calling Add
// directly on a detached GroupShape when id collisions matter.
func (t *ShapeTree) Add(s Shape) error {
	b := s.base()
	if b.ShapeID == 0 {
		b.ShapeID = t.nextShapeID()
		// a group arriving with already-numbered children must also
		// land above them
		if g, ok := AsGroupShape(s); ok {
			if gm := g.Children.maxShapeID(); gm >= b.ShapeID {
				b.ShapeID = gm + 1
			}
		}
	} else if !t.turboAddEnabled {
		if _, exists := t.ByID(b.ShapeID); exists || t.rawShapeIDs[b.ShapeID] {
			return ErrInvalidShapeID{ShapeID: b.ShapeID}
		}
	}
	t.shapes = append(t.shapes, s)
	return nil
}

// nextShapeID allocates above every id in use, flooring at 2: id 1
// belongs to the `<p:spTree>` wrapper's own cNvPr in every real deck.
func (t *ShapeTree) nextShapeID() uint32 {
	m := t.maxShapeID()
	if m < 1 {
		m = 1
	}
	return m + 1
}

func (t *ShapeTree) maxShapeID() uint32 {
	var max uint32
	for id := range t.rawShapeIDs {
		if id > max {
			max = id
		}
	}
	for _, s := range t.shapes {
		if id := s.base().ShapeID; id > max {
			max = id
		}
		if g, ok := AsGroupShape(s); ok {
			if gm := g.Children.maxShapeID(); gm > max {
				max = gm
			}
		}
	}
	return max
}

// AddAutoShape creates an AutoShape, positions and sizes it, adds it
// to the tree, and returns it (spec §4.3's add_shape).
func (t *ShapeTree) AddAutoShape(geom PresetGeometry, left, top, width, height Emu) *AutoShape {
	s := NewAutoShape(geom)
	s.Left, s.Top, s.Width, s.Height = left, top, width, height
	t.Add(s)
	return s
}

// AddTextBox creates a text-only AutoShape (rect geometry, no fill,
// no line) and adds it to the tree (spec §4.3's add_textbox).
func (t *ShapeTree) AddTextBox(left, top, width, height Emu) *AutoShape {
	s := t.AddAutoShape(GeomRect, left, top, width, height)
	s.Line = LineFormat{NoLine: true}
	s.TextFrame = NewTextFrame()
	return s
}

// AddPicture creates a Picture referencing relID and adds it to the
// tree (spec §4.3's add_picture).
func (t *ShapeTree) AddPicture(relID string, left, top, width, height Emu) *Picture {
	p := NewPicture(relID)
	p.Left, p.Top, p.Width, p.Height = left, top, width, height
	t.Add(p)
	return p
}

// AddConnector creates a Connector and adds it to the tree (spec
// §4.3's add_connector). Begin and End are free endpoints at the
// given coordinates; callers wanting attached endpoints set
// c.Begin/c.End after creation.
func (t *ShapeTree) AddConnector(typ ConnectorType, x1, y1, x2, y2 Emu) *Connector {
	c := NewConnector(typ)
	left, top := x1, y1
	if x2 < left {
		left = x2
	}
	if y2 < top {
		top = y2
	}
	c.Left, c.Top = left, top
	c.Width, c.Height = x2-x1, y2-y1
	t.Add(c)
	return c
}

// AddTable creates a GraphicFrame hosting an r-row, c-col Table and
// adds it to the tree (spec §4.3's add_table).
func (t *ShapeTree) AddTable(rows, cols int, left, top, width, height Emu) *GraphicFrame {
	tbl := NewTable(rows, cols, width, height)
	f := NewTableGraphicFrame(tbl)
	f.Left, f.Top, f.Width, f.Height = left, top, width, height
	t.Add(f)
	return f
}

// AddChart creates a GraphicFrame hosting chart and adds it to the
// tree (spec §4.3's add_chart).
func (t *ShapeTree) AddChart(chart *Chart, left, top, width, height Emu) *GraphicFrame {
	f := NewChartGraphicFrame(chart)
	f.Left, f.Top, f.Width, f.Height = left, top, width, height
	t.Add(f)
	return f
}

// AddGroupShape creates an empty GroupShape positioned at the union of
// members' extents (or zero-sized if no members are given), moves
// members out of this tree into the group's tree, and adds the group
// to this tree (spec §4.3's add_group_shape).
func (t *ShapeTree) AddGroupShape(members ...Shape) *GroupShape {
	g := NewGroupShape()
	if len(members) > 0 {
		left, top := members[0].base().Left, members[0].base().Top
		right, bottom := left+members[0].base().Width, top+members[0].base().Height
		for _, m := range members[1:] {
			b := m.base()
			if b.Left < left {
				left = b.Left
			}
			if b.Top < top {
				top = b.Top
			}
			if b.Left+b.Width > right {
				right = b.Left + b.Width
			}
			if b.Top+b.Height > bottom {
				bottom = b.Top + b.Height
			}
		}
		g.Left, g.Top, g.Width, g.Height = left, top, right-left, bottom-top
		g.ChildOffX, g.ChildOffY, g.ChildExtX, g.ChildExtY = g.Left, g.Top, g.Width, g.Height
		t.removeAll(members)
		for _, m := range members {
			g.Children.Add(m)
		}
	}
	t.Add(g)
	return g
}

func (t *ShapeTree) removeAll(members []Shape) {
	set := make(map[Shape]bool, len(members))
	for _, m := range members {
		set[m] = true
	}
	kept := t.shapes[:0]
	for _, s := range t.shapes {
		if !set[s] {
			kept = append(kept, s)
		}
	}
	t.shapes = kept
}

// Remove deletes the shape with the given shape_id from this tree
// (not descending into nested groups). It returns false if no such
// shape is present at this level.
func (t *ShapeTree) Remove(shapeID uint32) bool {
	for i, s := range t.shapes {
		if s.base().ShapeID == shapeID {
			t.shapes = append(t.shapes[:i], t.shapes[i+1:]...)
			return true
		}
	}
	return false
}

// ByID searches this tree and, recursively, every nested group for a
// shape with the given id.
func (t *ShapeTree) ByID(shapeID uint32) (Shape, bool) {
	for _, s := range t.shapes {
		if s.base().ShapeID == shapeID {
			return s, true
		}
		if g, ok := AsGroupShape(s); ok {
			if found, ok := g.Children.ByID(shapeID); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// clone deep-copies the tree and every shape in it, preserving
// insertion-mode raw bytes.
func (t *ShapeTree) clone() *ShapeTree {
	c := &ShapeTree{
		insertionMode:   t.insertionMode,
		rawSpTreeOpen:   t.rawSpTreeOpen,
		rawSpTreeTail:   t.rawSpTreeTail,
		turboAddEnabled: t.turboAddEnabled,
	}
	if len(t.rawShapeIDs) > 0 {
		c.rawShapeIDs = make(map[uint32]bool, len(t.rawShapeIDs))
		for id := range t.rawShapeIDs {
			c.rawShapeIDs[id] = true
		}
	}
	for _, s := range t.shapes {
		if cs := cloneShape(s); cs != nil {
			c.shapes = append(c.shapes, cs)
		}
	}
	return c
}

// cloneShape deep-copies one shape. Reflection-based copying covers
// the exported shape graph; the pieces it cannot reach (a hosted
// Table's grid, a group's subtree, a text frame's autosize
// bookkeeping) are rebuilt by hand afterwards.
func cloneShape(sh Shape) Shape {
	cloned, ok := deepcopy.Copy(sh).(Shape)
	if !ok {
		return nil
	}
	switch src := sh.(type) {
	case *AutoShape:
		if src.TextFrame != nil {
			cloned.(*AutoShape).TextFrame = src.TextFrame.clone()
		}
	case *GraphicFrame:
		dst := cloned.(*GraphicFrame)
		if src.Table != nil {
			dst.Table = src.Table.clone()
		}
		if src.Chart != nil {
			dst.Chart.relID = src.Chart.relID
		}
	case *GroupShape:
		cloned.(*GroupShape).Children = src.Children.clone()
	}
	return cloned
}

// XML renders the tree's shapes as the children of a `<p:spTree>`
// element. In generation mode the wrapper itself (`<p:spTree>` through
// its `<p:grpSpPr>`) is synthesized fresh; in insertion mode the
// preserved raw prefix and tail are spliced around the freshly
// rendered shapes that were added since the tree was read.
func (t *ShapeTree) XML() (string, error) {
	body, err := t.bodyXML()
	if err != nil {
		return "", err
	}

	if t.insertionMode {
		return t.rawSpTreeOpen + body + t.rawSpTreeTail, nil
	}

	return `<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
		`<p:grpSpPr><a:xfrm><a:off x="0" y="0"/><a:ext cx="0" cy="0"/><a:chOff x="0" y="0"/><a:chExt cx="0" cy="0"/></a:xfrm></p:grpSpPr>` +
		body + `</p:spTree>`, nil
}

// bodyXML renders the tree's shapes alone, with no wrapper: the form a
// nested `<p:grpSp>` embeds directly after its `<p:grpSpPr>`.
func (t *ShapeTree) bodyXML() (string, error) {
	var body strings.Builder
	for _, s := range t.shapes {
		x, err := s.XML()
		if err != nil {
			return "", fmt.Errorf("pptx: rendering shape %d: %w", s.base().ShapeID, err)
		}
		body.WriteString(x)
	}
	return body.String(), nil
}
