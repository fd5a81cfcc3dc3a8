package pptx

// Chart is a single embedded chart, hosted by a GraphicFrame (spec
// §4.7). Its type is fixed at construction; ReplaceData swaps the
// plotted values without changing the type.
type Chart struct {
	relID string // relationship id of this chart's own chart{N}.xml part, assigned when attached to a slide

	Type   ChartType
	Data   ChartDataSource
	Title  *ChartTitle
	Legend *ChartLegend
	View3D *View3D

	CategoryAxis *ChartAxis
	ValueAxis    *ChartAxis

	GapWidthPercent int
	OverlapPercent  int
	HoleSizePercent int // doughnut only, 10-90
	Smooth          bool
	DisplayBlanksAs string
}

// Chart display-blank-as constants.
const (
	ChartBlankAsGap  = "gap"
	ChartBlankAsZero = "zero"
	ChartBlankAsSpan = "span"
)

// NewChart returns a chart of the given type plotting data, or
// ErrChartDataMismatch if data's shape does not fit t's family
// (CategoryChartData for bar/line/pie/doughnut/area/radar/stock/
// surface, XyChartData for scatter, BubbleChartData for bubble,
// DateAxisChartData for date-axis bar/line/area).
func NewChart(t ChartType, data ChartDataSource) (*Chart, error) {
	if !data.compatibleWith(t.Family) {
		return nil, ErrChartDataMismatch
	}
	return &Chart{
		Type:            t,
		Data:            data,
		Title:           NewChartTitle(),
		Legend:          NewChartLegend(),
		View3D:          NewView3D(),
		CategoryAxis:    NewChartAxis(),
		ValueAxis:       NewChartAxis(),
		GapWidthPercent: 150,
		HoleSizePercent: 50,
		DisplayBlanksAs: ChartBlankAsZero,
	}, nil
}

// ReplaceData swaps the chart's plotted data, keeping its type fixed
// (spec §4.7). It returns ErrChartTypeImmutable if data's shape does
// not match the chart's existing family.
func (c *Chart) ReplaceData(data ChartDataSource) error {
	if !data.compatibleWith(c.Type.Family) {
		return ErrChartTypeImmutable
	}
	c.Data = data
	return nil
}

// ChartTitle is a chart's own title, distinct from any slide text.
type ChartTitle struct {
	Text    string
	Visible bool
	Font    *Font
}

// NewChartTitle returns a visible, empty title using the default font.
func NewChartTitle() *ChartTitle {
	return &ChartTitle{Visible: true, Font: NewFont()}
}

// SetText sets the title text.
func (t *ChartTitle) SetText(s string) *ChartTitle { t.Text = s; return t }

// SetVisible toggles the title's visibility.
func (t *ChartTitle) SetVisible(v bool) *ChartTitle { t.Visible = v; return t }

// ChartLegend is a chart's series legend.
type ChartLegend struct {
	Visible  bool
	Position LegendPosition
	Font     *Font
}

// LegendPosition closes the set of legend placements.
type LegendPosition string

// Supported LegendPosition values.
const (
	LegendBottom   LegendPosition = "b"
	LegendTop      LegendPosition = "t"
	LegendLeft     LegendPosition = "l"
	LegendRight    LegendPosition = "r"
	LegendTopRight LegendPosition = "tr"
)

// NewChartLegend returns a visible legend positioned at the bottom.
func NewChartLegend() *ChartLegend {
	return &ChartLegend{Visible: true, Position: LegendBottom, Font: NewFont()}
}

// ChartAxis is either the category/date axis or the value axis of a
// two-axis chart.
type ChartAxis struct {
	Title          string
	Visible        bool
	MinBounds      *float64
	MaxBounds      *float64
	MinorUnit      *float64
	MajorUnit      *float64
	CrossesAt      string
	ReversedOrder  bool
	Font           *Font
	MajorGridlines *Gridlines
	MinorGridlines *Gridlines
	MajorTickMark  string
	MinorTickMark  string
	TickLabelPos   string
}

// Axis-crossing constants.
const (
	AxisCrossesAuto = "autoZero"
	AxisCrossesMin  = "min"
	AxisCrossesMax  = "max"
)

// Tick mark constants.
const (
	TickMarkNone    = "none"
	TickMarkInside  = "in"
	TickMarkOutside = "out"
	TickMarkCross   = "cross"
)

// Tick label position constants.
const (
	TickLabelPosNextTo = "nextTo"
	TickLabelPosHigh   = "high"
	TickLabelPosLow    = "low"
)

// NewChartAxis returns a visible axis with PowerPoint's defaults.
func NewChartAxis() *ChartAxis {
	return &ChartAxis{
		Visible:       true,
		CrossesAt:     AxisCrossesAuto,
		Font:          NewFont(),
		MajorTickMark: TickMarkNone,
		MinorTickMark: TickMarkNone,
		TickLabelPos:  TickLabelPosNextTo,
	}
}

// SetBounds sets the axis's explicit min and max; pass nil for either
// to restore automatic bounds.
func (a *ChartAxis) SetBounds(min, max *float64) *ChartAxis {
	a.MinBounds, a.MaxBounds = min, max
	return a
}

// SetMajorGridlines sets the axis's major gridlines, or nil for none.
func (a *ChartAxis) SetMajorGridlines(g *Gridlines) *ChartAxis {
	a.MajorGridlines = g
	return a
}

// Gridlines is a single gridline style applied to a ChartAxis.
type Gridlines struct {
	Width Emu
	Color ColorFormat
}

// NewGridlines returns a thin black gridline.
func NewGridlines() *Gridlines {
	return &Gridlines{Width: Points(0.75), Color: ColorBlack}
}

// View3D carries the 3D camera settings for ThreeD chart types.
type View3D struct {
	RotX, RotY     int
	DepthPercent   int
	HeightPercent  *int
	RightAngleAxes bool
}

// NewView3D returns PowerPoint's default 3D camera.
func NewView3D() *View3D {
	hp := 100
	return &View3D{RotX: 15, RotY: 20, DepthPercent: 100, HeightPercent: &hp, RightAngleAxes: true}
}
