package pptx

import (
	"math"
	"time"
)

// ChartDataSource is the closed set of data shapes a Chart can plot
// (spec §4.7): category-keyed series for bar/line/pie/area/radar/
// stock/surface families, X-Y point series for scatter, bubble series
// adding a third size dimension, and date-categorized series sharing
// CategoryChartData's series shape but with a date axis.
type ChartDataSource interface {
	compatibleWith(f ChartFamily) bool
	numSeries() int
}

// CategorySeries is one named series of values plotted against a
// shared category or date axis. A NaN value marks an empty cell: no
// cached point is emitted for it and the embedded worksheet leaves
// the cell blank.
type CategorySeries struct {
	Name             string
	Values           []float64
	NumberFormat     string // Excel number format code; "" means General
	FillColor        *ColorFormat
	InvertIfNegative bool
}

// EmptyCell is the value AddSeries callers place at positions with no
// data.
var EmptyCell = math.NaN()

// CategoryChartData backs bar, line, pie, doughnut, area, radar,
// stock, and surface charts (spec §4.7). CategoryLevels, when set,
// carries hierarchical category labels: one entry per level, outermost
// first, each aligned index-by-index to the flattened leaf categories
// in Categories (blank strings continue the previous group).
type CategoryChartData struct {
	Categories     []string
	CategoryLevels [][]string
	SeriesList     []CategorySeries
}

// NewCategoryChartData returns an empty category data source.
func NewCategoryChartData(categories []string) *CategoryChartData {
	return &CategoryChartData{Categories: categories}
}

// AddSeries appends a series; len(values) should equal
// len(d.Categories), missing trailing values and EmptyCell entries
// are treated as empty cells.
func (d *CategoryChartData) AddSeries(name string, values []float64) *CategoryChartData {
	d.SeriesList = append(d.SeriesList, CategorySeries{Name: name, Values: values})
	return d
}

func (d *CategoryChartData) numSeries() int { return len(d.SeriesList) }

func (d *CategoryChartData) compatibleWith(f ChartFamily) bool {
	switch f {
	case ChartFamilyBar, ChartFamilyLine, ChartFamilyPie, ChartFamilyDoughnut,
		ChartFamilyArea, ChartFamilyRadar, ChartFamilyStock, ChartFamilySurface:
		return true
	default:
		return false
	}
}

// XYPoint is one (x, y) sample of an XySeries.
type XYPoint struct{ X, Y float64 }

// XySeries is one named series of X-Y samples.
type XySeries struct {
	Name   string
	Points []XYPoint
	Smooth bool
}

// XyChartData backs scatter charts (spec §4.7).
type XyChartData struct {
	SeriesList []XySeries
}

// NewXyChartData returns an empty X-Y data source.
func NewXyChartData() *XyChartData { return &XyChartData{} }

// AddSeries appends a series.
func (d *XyChartData) AddSeries(name string, points []XYPoint) *XyChartData {
	d.SeriesList = append(d.SeriesList, XySeries{Name: name, Points: points})
	return d
}

func (d *XyChartData) numSeries() int                      { return len(d.SeriesList) }
func (d *XyChartData) compatibleWith(f ChartFamily) bool { return f == ChartFamilyScatter }

// BubblePoint is one (x, y, size) sample of a BubbleSeries.
type BubblePoint struct{ X, Y, Size float64 }

// BubbleSeries is one named series of sized points.
type BubbleSeries struct {
	Name   string
	Points []BubblePoint
}

// BubbleChartData backs bubble charts (spec §4.7).
type BubbleChartData struct {
	SeriesList []BubbleSeries
}

// NewBubbleChartData returns an empty bubble data source.
func NewBubbleChartData() *BubbleChartData { return &BubbleChartData{} }

// AddSeries appends a series.
func (d *BubbleChartData) AddSeries(name string, points []BubblePoint) *BubbleChartData {
	d.SeriesList = append(d.SeriesList, BubbleSeries{Name: name, Points: points})
	return d
}

func (d *BubbleChartData) numSeries() int                      { return len(d.SeriesList) }
func (d *BubbleChartData) compatibleWith(f ChartFamily) bool { return f == ChartFamilyBubble }

// DateAxisChartData backs bar, line, and area charts whose category
// axis is a date axis rather than a text axis (spec §4.7).
type DateAxisChartData struct {
	Dates      []time.Time
	SeriesList []CategorySeries
}

// NewDateAxisChartData returns an empty date-axis data source.
func NewDateAxisChartData(dates []time.Time) *DateAxisChartData {
	return &DateAxisChartData{Dates: dates}
}

// AddSeries appends a series.
func (d *DateAxisChartData) AddSeries(name string, values []float64) *DateAxisChartData {
	d.SeriesList = append(d.SeriesList, CategorySeries{Name: name, Values: values})
	return d
}

func (d *DateAxisChartData) numSeries() int { return len(d.SeriesList) }

func (d *DateAxisChartData) compatibleWith(f ChartFamily) bool {
	switch f {
	case ChartFamilyBar, ChartFamilyLine, ChartFamilyArea:
		return true
	default:
		return false
	}
}
