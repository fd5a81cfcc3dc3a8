package pptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeCellsMarksOriginAndCovered(t *testing.T) {
	tbl := NewTable(3, 3, Inches(6), Inches(3))
	require.NoError(t, tbl.MergeCells(0, 0, 1, 1))

	origin := tbl.Cell(0, 0)
	assert.Equal(t, 2, origin.GridSpan)
	assert.Equal(t, 2, origin.RowSpan)
	assert.False(t, origin.Spanned)

	right := tbl.Cell(0, 1)
	assert.True(t, right.Spanned)
	assert.True(t, right.HMerge)
	assert.False(t, right.VMerge)

	below := tbl.Cell(1, 0)
	assert.True(t, below.Spanned)
	assert.False(t, below.HMerge)
	assert.True(t, below.VMerge)

	corner := tbl.Cell(1, 1)
	assert.True(t, corner.HMerge)
	assert.True(t, corner.VMerge)
}

func TestMergeCellsRejectsOverlap(t *testing.T) {
	tbl := NewTable(3, 3, Inches(6), Inches(3))
	require.NoError(t, tbl.MergeCells(0, 0, 1, 1))

	err := tbl.MergeCells(1, 1, 2, 2)
	require.Error(t, err)
	var tblErr *TableError
	require.ErrorAs(t, err, &tblErr)
	assert.Equal(t, TableErrInvalidMerge, tblErr.Kind)
}

func TestMergeCellsRejectsOutOfRange(t *testing.T) {
	tbl := NewTable(2, 2, Inches(4), Inches(2))
	err := tbl.MergeCells(0, 0, 5, 5)
	var tblErr *TableError
	require.ErrorAs(t, err, &tblErr)
	assert.Equal(t, TableErrOutOfRange, tblErr.Kind)
}

func TestSplitRestoresMergedRegion(t *testing.T) {
	tbl := NewTable(3, 3, Inches(6), Inches(3))
	require.NoError(t, tbl.MergeCells(0, 0, 1, 2))
	require.NoError(t, tbl.Split(0, 0))

	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			cell := tbl.Cell(r, c)
			assert.Equal(t, 1, cell.GridSpan, "cell (%d,%d)", r, c)
			assert.Equal(t, 1, cell.RowSpan, "cell (%d,%d)", r, c)
			assert.False(t, cell.Spanned, "cell (%d,%d)", r, c)
			assert.False(t, cell.HMerge, "cell (%d,%d)", r, c)
			assert.False(t, cell.VMerge, "cell (%d,%d)", r, c)
		}
	}

	err := tbl.Split(0, 1)
	assert.Error(t, err)
}

func TestTableXMLEmitsGridAndSpans(t *testing.T) {
	tbl := NewTable(2, 2, Inches(4), Inches(2))
	require.NoError(t, tbl.MergeCells(0, 0, 0, 1))
	tbl.Cell(1, 0).TextFrame.SetText("bottom left")

	xmlStr, err := tbl.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<a:tblGrid>`)
	assert.Contains(t, xmlStr, `gridSpan="2"`)
	assert.Contains(t, xmlStr, `hMerge="1"`)
	assert.Contains(t, xmlStr, `<a:txBody>`)
	assert.Contains(t, xmlStr, "bottom left")
	assert.NotContains(t, xmlStr, "<p:txBody>")
}

func TestCellBordersEmitOnlySetEdges(t *testing.T) {
	tbl := NewTable(1, 1, Inches(2), Inches(1))
	line := NewLineFormat()
	tbl.Cell(0, 0).Borders.Bottom = &line

	xmlStr, err := tbl.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<a:lnB`)
	assert.Contains(t, xmlStr, `</a:lnB>`)
	assert.NotContains(t, xmlStr, `<a:lnL`)
	assert.NotContains(t, xmlStr, `<a:lnT`)
}
