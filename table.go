package pptx

import (
	"fmt"
	"strings"
)

// Cell is one grid position of a Table. A merged region is represented
// by exactly one origin cell (GridSpan/RowSpan > 1, Spanned == false)
// plus covered cells marked Spanned with HMerge/VMerge set, mirroring
// ECMA-376's gridSpan/rowSpan/hMerge/vMerge attributes (spec §4.6).
type Cell struct {
	TextFrame *TextFrame
	Fill      FillFormat
	Borders   CellBorders
	Anchor    VerticalAnchor
	MarginLeft, MarginRight, MarginTop, MarginBottom Emu

	GridSpan, RowSpan int  // > 1 only on a merge origin
	Spanned           bool // true for a cell covered by another cell's merge
	HMerge, VMerge    bool // valid only when Spanned
}

// CellBorders holds the four edge lines of a cell. A nil edge is
// omitted from the emitted `<a:tcPr>` and inherits the table style's
// border.
type CellBorders struct {
	Left, Right, Top, Bottom *LineFormat
}

func newCell() *Cell {
	return &Cell{
		TextFrame:  NewTextFrame(),
		Fill:       NoFill(),
		Anchor:     AnchorTop,
		GridSpan:   1,
		RowSpan:    1,
		MarginLeft: Inches(0.1), MarginRight: Inches(0.1),
		MarginTop: Inches(0.05), MarginBottom: Inches(0.05),
	}
}

// Table is a grid of cells with independent column widths and row
// heights (spec §4.6). Rows and columns are append-only in the sense
// that the spec does not model row/column deletion; callers rebuild a
// table to remove structure.
type Table struct {
	rows, cols int
	colWidths  []Emu
	rowHeights []Emu
	cells      [][]*Cell // [row][col]
	firstRow, firstCol, lastRow, lastCol, bandRow, bandCol bool
	styleID string
}

// NewTable returns an r x c table whose column widths and row heights
// evenly divide width and height.
func NewTable(rows, cols int, width, height Emu) *Table {
	t := &Table{rows: rows, cols: cols, firstRow: true, bandRow: true}
	t.colWidths = make([]Emu, cols)
	cw := Emu(int64(width) / int64(cols))
	for i := range t.colWidths {
		t.colWidths[i] = cw
	}
	t.rowHeights = make([]Emu, rows)
	rh := Emu(int64(height) / int64(rows))
	for i := range t.rowHeights {
		t.rowHeights[i] = rh
	}
	t.cells = make([][]*Cell, rows)
	for r := range t.cells {
		t.cells[r] = make([]*Cell, cols)
		for c := range t.cells[r] {
			t.cells[r][c] = newCell()
		}
	}
	return t
}

// Rows returns the row count.
func (t *Table) Rows() int { return t.rows }

// Cols returns the column count.
func (t *Table) Cols() int { return t.cols }

// Cell returns the cell at (row, col). It panics if the coordinates
// are out of range, matching the teacher's indexing convention
// elsewhere in this package.
func (t *Table) Cell(row, col int) *Cell { return t.cells[row][col] }

// ColumnWidth reports the width of column c.
func (t *Table) ColumnWidth(c int) Emu { return t.colWidths[c] }

// SetColumnWidth sets the width of column c.
func (t *Table) SetColumnWidth(c int, w Emu) { t.colWidths[c] = w }

// RowHeight reports the height of row r.
func (t *Table) RowHeight(r int) Emu { return t.rowHeights[r] }

// SetRowHeight sets the height of row r.
func (t *Table) SetRowHeight(r int, h Emu) { t.rowHeights[r] = h }

// SetFirstRowBanding toggles first-row / first-column / banding style
// flags recorded in the table's `<a:tblPr>`.
func (t *Table) SetFirstRowBanding(firstRow, firstCol, lastRow, lastCol, bandRow, bandCol bool) {
	t.firstRow, t.firstCol, t.lastRow, t.lastCol, t.bandRow, t.bandCol = firstRow, firstCol, lastRow, lastCol, bandRow, bandCol
}

// MergeCells merges the rectangular region spanning (row1,col1) to
// (row2,col2) inclusive into a single cell. It rejects a region that
// overlaps any existing merge not fully contained within it (spec
// §4.6's InvalidMerge edge case).
func (t *Table) MergeCells(row1, col1, row2, col2 int) error {
	if row1 > row2 {
		row1, row2 = row2, row1
	}
	if col1 > col2 {
		col1, col2 = col2, col1
	}
	if row1 < 0 || col1 < 0 || row2 >= t.rows || col2 >= t.cols {
		return newTableError(TableErrOutOfRange, fmt.Sprintf("merge region (%d,%d)-(%d,%d) out of range", row1, col1, row2, col2))
	}
	if row1 == row2 && col1 == col2 {
		return newTableError(TableErrInvalidMerge, "merge region must span more than one cell")
	}

	for r := row1; r <= row2; r++ {
		for c := col1; c <= col2; c++ {
			cell := t.cells[r][c]
			if cell.Spanned {
				if !t.mergeOriginWithin(r, c, row1, col1, row2, col2) {
					return newTableError(TableErrInvalidMerge, fmt.Sprintf("cell (%d,%d) already belongs to another merge", r, c))
				}
			} else if cell.GridSpan > 1 || cell.RowSpan > 1 {
				if r+cell.RowSpan-1 > row2 || c+cell.GridSpan-1 > col2 {
					return newTableError(TableErrInvalidMerge, fmt.Sprintf("merge origin (%d,%d) extends outside the requested region", r, c))
				}
			}
		}
	}

	origin := t.cells[row1][col1]
	origin.GridSpan = col2 - col1 + 1
	origin.RowSpan = row2 - row1 + 1
	for r := row1; r <= row2; r++ {
		for c := col1; c <= col2; c++ {
			if r == row1 && c == col1 {
				continue
			}
			cell := t.cells[r][c]
			cell.Spanned = true
			cell.GridSpan, cell.RowSpan = 1, 1
			cell.HMerge = c > col1
			cell.VMerge = r > row1
		}
	}
	return nil
}

// mergeOriginWithin reports whether the merge origin covering (r, c)
// lies within the given region, meaning the cell's existing span is a
// subset of the new, larger merge being requested (an idempotent
// re-merge rather than an overlap).
func (t *Table) mergeOriginWithin(r, c, row1, col1, row2, col2 int) bool {
	for rr := r; rr >= row1; rr-- {
		for cc := c; cc >= col1; cc-- {
			origin := t.cells[rr][cc]
			if !origin.Spanned && origin.GridSpan > 1 || !origin.Spanned && origin.RowSpan > 1 {
				return rr+origin.RowSpan-1 <= row2 && cc+origin.GridSpan-1 <= col2
			}
		}
	}
	return false
}

// Split reverses a previous MergeCells call on the merge origin at
// (row, col), restoring every covered cell to an independent,
// unspanned cell (spec §4.6's split, the merge inverse).
func (t *Table) Split(row, col int) error {
	origin := t.cells[row][col]
	if origin.Spanned || (origin.GridSpan <= 1 && origin.RowSpan <= 1) {
		return newTableError(TableErrInvalidMerge, fmt.Sprintf("cell (%d,%d) is not a merge origin", row, col))
	}
	for r := row; r < row+origin.RowSpan; r++ {
		for c := col; c < col+origin.GridSpan; c++ {
			if r == row && c == col {
				continue
			}
			cell := t.cells[r][c]
			cell.Spanned, cell.HMerge, cell.VMerge = false, false, false
			cell.GridSpan, cell.RowSpan = 1, 1
		}
	}
	origin.GridSpan, origin.RowSpan = 1, 1
	return nil
}

// clone deep-copies the table grid, cell by cell.
func (t *Table) clone() *Table {
	c := &Table{
		rows: t.rows, cols: t.cols,
		firstRow: t.firstRow, firstCol: t.firstCol,
		lastRow: t.lastRow, lastCol: t.lastCol,
		bandRow: t.bandRow, bandCol: t.bandCol,
		styleID: t.styleID,
	}
	c.colWidths = append([]Emu(nil), t.colWidths...)
	c.rowHeights = append([]Emu(nil), t.rowHeights...)
	c.cells = make([][]*Cell, t.rows)
	for r := range t.cells {
		c.cells[r] = make([]*Cell, t.cols)
		for col, cell := range t.cells[r] {
			cc := *cell
			cc.TextFrame = cell.TextFrame.clone()
			c.cells[r][col] = &cc
		}
	}
	return c
}

// XML renders the `<a:tbl>` element.
func (t *Table) XML() (string, error) {
	var sb strings.Builder
	sb.WriteString("<a:tbl>")
	fmt.Fprintf(&sb, `<a:tblPr firstRow="%s" firstCol="%s" lastRow="%s" lastCol="%s" bandRow="%s" bandCol="%s">`,
		boolAttr(t.firstRow), boolAttr(t.firstCol), boolAttr(t.lastRow), boolAttr(t.lastCol), boolAttr(t.bandRow), boolAttr(t.bandCol))
	if t.styleID != "" {
		fmt.Fprintf(&sb, `<a:tableStyleId>%s</a:tableStyleId>`, t.styleID)
	}
	sb.WriteString("</a:tblPr>")

	sb.WriteString("<a:tblGrid>")
	for _, w := range t.colWidths {
		fmt.Fprintf(&sb, `<a:gridCol w="%d"/>`, int64(w))
	}
	sb.WriteString("</a:tblGrid>")

	for r := 0; r < t.rows; r++ {
		fmt.Fprintf(&sb, `<a:tr h="%d">`, int64(t.rowHeights[r]))
		for c := 0; c < t.cols; c++ {
			cellXML, err := t.cells[r][c].XML()
			if err != nil {
				return "", fmt.Errorf("pptx: rendering table cell (%d,%d): %w", r, c, err)
			}
			sb.WriteString(cellXML)
		}
		sb.WriteString("</a:tr>")
	}

	sb.WriteString("</a:tbl>")
	return sb.String(), nil
}

func boolAttr(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// XML renders the `<a:tc>` element.
func (c *Cell) XML() (string, error) {
	var attrs strings.Builder
	if c.GridSpan > 1 {
		fmt.Fprintf(&attrs, ` gridSpan="%d"`, c.GridSpan)
	}
	if c.RowSpan > 1 {
		fmt.Fprintf(&attrs, ` rowSpan="%d"`, c.RowSpan)
	}
	if c.HMerge {
		attrs.WriteString(` hMerge="1"`)
	}
	if c.VMerge {
		attrs.WriteString(` vMerge="1"`)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<a:tc%s>`, attrs.String())
	if !c.Spanned {
		txXML, err := c.TextFrame.xmlAs("a:txBody")
		if err != nil {
			return "", err
		}
		sb.WriteString(txXML)
	} else {
		sb.WriteString(`<a:txBody><a:bodyPr/><a:p/></a:txBody>`)
	}
	fmt.Fprintf(&sb, `<a:tcPr marL="%d" marR="%d" marT="%d" marB="%d" anchor="%s">`,
		int64(c.MarginLeft), int64(c.MarginRight), int64(c.MarginTop), int64(c.MarginBottom), c.Anchor)
	sb.WriteString(c.Borders.XML())
	sb.WriteString(c.Fill.XML())
	sb.WriteString(`</a:tcPr>`)
	sb.WriteString(`</a:tc>`)
	return sb.String(), nil
}

// XML renders the cell's set border-line children, in the
// left/right/top/bottom order ECMA-376 requires.
func (b CellBorders) XML() string {
	var sb strings.Builder
	if b.Left != nil {
		sb.WriteString(b.Left.xmlAs("a:lnL"))
	}
	if b.Right != nil {
		sb.WriteString(b.Right.xmlAs("a:lnR"))
	}
	if b.Top != nil {
		sb.WriteString(b.Top.xmlAs("a:lnT"))
	}
	if b.Bottom != nil {
		sb.WriteString(b.Bottom.xmlAs("a:lnB"))
	}
	return sb.String()
}
