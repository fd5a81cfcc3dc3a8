package pptx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnClusteredChartXML(t *testing.T) {
	data := NewCategoryChartData([]string{"Q1", "Q2"}).
		AddSeries("Revenue", []float64{100, 150})
	chart, err := NewChart(ChartColumnClustered, data)
	require.NoError(t, err)
	chart.Title.SetText("Quarterly Revenue")

	xmlStr, err := chart.PartXML(EmbeddedSheetName)
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<c:barChart>`)
	assert.Contains(t, xmlStr, `<c:barDir val="col"/>`)
	assert.Contains(t, xmlStr, `<c:grouping val="clustered"/>`)
	assert.Contains(t, xmlStr, `Sheet1!$B$2:$B$3`)
	assert.Contains(t, xmlStr, `<c:v>100</c:v>`)
	assert.Contains(t, xmlStr, `<c:v>150</c:v>`)
	assert.Contains(t, xmlStr, `<c:catAx>`)
	assert.Contains(t, xmlStr, `<c:valAx>`)
	assert.Contains(t, xmlStr, "Quarterly Revenue")
}

func TestPieChartHasNoAxes(t *testing.T) {
	data := NewCategoryChartData([]string{"a", "b"}).AddSeries("s", []float64{1, 2})
	chart, err := NewChart(ChartPie, data)
	require.NoError(t, err)

	xmlStr, err := chart.PartXML(EmbeddedSheetName)
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<c:pieChart>`)
	assert.NotContains(t, xmlStr, `<c:catAx>`)
	assert.NotContains(t, xmlStr, `<c:valAx>`)
}

func TestScatterChartSeriesUseXYVals(t *testing.T) {
	data := NewXyChartData().AddSeries("pts", []XYPoint{{1, 2}, {3, 4}})
	chart, err := NewChart(ChartXYScatter, data)
	require.NoError(t, err)

	xmlStr, err := chart.PartXML(EmbeddedSheetName)
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<c:scatterChart>`)
	assert.Contains(t, xmlStr, `<c:xVal>`)
	assert.Contains(t, xmlStr, `<c:yVal>`)
}

func TestBubbleChartSeriesCarryBubbleSize(t *testing.T) {
	data := NewBubbleChartData().AddSeries("b", []BubblePoint{{1, 2, 10}})
	chart, err := NewChart(ChartBubble, data)
	require.NoError(t, err)

	xmlStr, err := chart.PartXML(EmbeddedSheetName)
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<c:bubbleChart>`)
	assert.Contains(t, xmlStr, `<c:bubbleSize>`)
}

func TestStockChartEmitsHiLowLines(t *testing.T) {
	data := NewCategoryChartData([]string{"d1"}).
		AddSeries("High", []float64{10}).
		AddSeries("Low", []float64{5}).
		AddSeries("Close", []float64{7})
	chart, err := NewChart(ChartStock, data)
	require.NoError(t, err)

	xmlStr, err := chart.PartXML(EmbeddedSheetName)
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<c:stockChart>`)
	assert.Contains(t, xmlStr, `<c:hiLowLines/>`)
	assert.Contains(t, xmlStr, `<c:upDownBars>`)
}

func TestEmptyCellOmitsCachedPoint(t *testing.T) {
	data := NewCategoryChartData([]string{"a", "b", "c"}).
		AddSeries("s", []float64{1, EmptyCell, 3})
	chart, err := NewChart(ChartLine, data)
	require.NoError(t, err)

	xmlStr, err := chart.PartXML(EmbeddedSheetName)
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<c:pt idx="0"><c:v>1</c:v></c:pt>`)
	// The category cache still lists "b" at idx 1; only the value
	// cache must skip it.
	_, numCache, found := strings.Cut(xmlStr, `<c:numCache>`)
	require.True(t, found)
	assert.NotContains(t, numCache, `<c:pt idx="1">`)
	assert.Contains(t, xmlStr, `<c:pt idx="2"><c:v>3</c:v></c:pt>`)
}

func TestHierarchicalCategoriesUseMultiLevelCache(t *testing.T) {
	data := NewCategoryChartData([]string{"Q1", "Q2", "Q1", "Q2"}).
		AddSeries("s", []float64{1, 2, 3, 4})
	data.CategoryLevels = [][]string{
		{"2024", "", "2025", ""},
		{"Q1", "Q2", "Q1", "Q2"},
	}
	chart, err := NewChart(ChartColumnClustered, data)
	require.NoError(t, err)

	xmlStr, err := chart.PartXML(EmbeddedSheetName)
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<c:multiLvlStrRef>`)
	assert.Contains(t, xmlStr, `<c:lvl>`)
	assert.Contains(t, xmlStr, "2025")
}

func TestNewChartRejectsMismatchedData(t *testing.T) {
	data := NewCategoryChartData([]string{"a"}).AddSeries("s", []float64{1})
	chart, err := NewChart(ChartXYScatter, data)
	assert.Nil(t, chart)
	assert.ErrorIs(t, err, ErrChartDataMismatch)
}

func TestReplaceDataKeepsTypeFixed(t *testing.T) {
	data := NewCategoryChartData([]string{"a"}).AddSeries("s", []float64{1})
	chart, err := NewChart(ChartColumnClustered, data)
	require.NoError(t, err)

	next := NewCategoryChartData([]string{"x", "y"}).AddSeries("s2", []float64{7, 8})
	require.NoError(t, chart.ReplaceData(next))
	assert.Same(t, chart.Data, ChartDataSource(next))

	assert.ErrorIs(t, chart.ReplaceData(NewXyChartData()), ErrChartTypeImmutable)
}

func TestEmbeddedWorkbookHoldsValues(t *testing.T) {
	data := NewCategoryChartData([]string{"Q1", "Q2"}).
		AddSeries("Revenue", []float64{100, 150})
	chart, err := NewChart(ChartColumnClustered, data)
	require.NoError(t, err)

	blob, err := BuildEmbeddedWorkbook(chart)
	require.NoError(t, err)

	pkg, err := OpenPackage(bytes.NewReader(blob), int64(len(blob)), Options{})
	require.NoError(t, err)

	sheet := pkg.Part(PackURI("/xl/worksheets/sheet1.xml"))
	require.NotNil(t, sheet)
	body := string(sheet.Blob)
	assert.Contains(t, body, "Revenue")
	assert.Contains(t, body, "<v>100</v>")
	assert.Contains(t, body, "<v>150</v>")
	assert.Contains(t, body, "Q2")

	workbook := pkg.Part(PackURI("/xl/workbook.xml"))
	require.NotNil(t, workbook)
	assert.Len(t, workbook.Rels.ByType(RelTypeWorksheet), 1)
}
