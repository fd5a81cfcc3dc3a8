package pptx

// ShapeKind closes the set of shape variants the DrawingML shape tree
// can hold. Downcasts from the Shape interface are total: every Shape
// value is exactly one of these kinds.
type ShapeKind int

// Supported ShapeKind values.
const (
	ShapeKindAutoShape ShapeKind = iota
	ShapeKindPicture
	ShapeKindGraphicFrame
	ShapeKindGroupShape
	ShapeKindConnector
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeKindAutoShape:
		return "AutoShape"
	case ShapeKindPicture:
		return "Picture"
	case ShapeKindGraphicFrame:
		return "GraphicFrame"
	case ShapeKindGroupShape:
		return "GroupShape"
	case ShapeKindConnector:
		return "Connector"
	default:
		return "Unknown"
	}
}

// PlaceholderType closes the set of placeholder slot types a shape may
// inherit style from when it carries placeholder metadata.
type PlaceholderType string

// Supported PlaceholderType values.
const (
	PlaceholderTitle      PlaceholderType = "title"
	PlaceholderBody       PlaceholderType = "body"
	PlaceholderCenterTtl  PlaceholderType = "ctrTitle"
	PlaceholderSubTitle   PlaceholderType = "subTitle"
	PlaceholderDate       PlaceholderType = "dt"
	PlaceholderFooter     PlaceholderType = "ftr"
	PlaceholderHeader     PlaceholderType = "hdr"
	PlaceholderSlideNum   PlaceholderType = "sldNum"
	PlaceholderObject     PlaceholderType = "obj"
	PlaceholderChart      PlaceholderType = "chart"
	PlaceholderTable      PlaceholderType = "tbl"
	PlaceholderClipArt    PlaceholderType = "clipArt"
	PlaceholderMedia      PlaceholderType = "media"
	PlaceholderOrgChart   PlaceholderType = "dgm"
	PlaceholderPicture    PlaceholderType = "pic"
	PlaceholderVertBody   PlaceholderType = "vertBody"
	PlaceholderVertTitle  PlaceholderType = "vertTitle"
	PlaceholderVertObject PlaceholderType = "vertObj"
)

// ParagraphAlignment closes the set of horizontal text alignments.
type ParagraphAlignment string

// Supported ParagraphAlignment values.
const (
	AlignLeft    ParagraphAlignment = "l"
	AlignCenter  ParagraphAlignment = "ctr"
	AlignRight   ParagraphAlignment = "r"
	AlignJustify ParagraphAlignment = "just"
	AlignDistrib ParagraphAlignment = "dist"
)

// VerticalAnchor closes the set of vertical text-anchoring positions
// within a TextFrame's bounding box.
type VerticalAnchor string

// Supported VerticalAnchor values.
const (
	AnchorTop    VerticalAnchor = "t"
	AnchorMiddle VerticalAnchor = "ctr"
	AnchorBottom VerticalAnchor = "b"
)

// WordWrap closes the set of word-wrap behaviors for a TextFrame.
type WordWrap int

// Supported WordWrap values.
const (
	WordWrapNone WordWrap = iota
	WordWrapSquare
)

// AutoSize closes the set of auto-fit behaviors for a TextFrame.
type AutoSize int

// Supported AutoSize values.
const (
	AutoSizeNone AutoSize = iota
	AutoSizeShapeToFitText
	AutoSizeTextToFitShape
)

// UnderlineStyle closes the 18-value set of underline renderings
// PowerPoint recognizes on a run.
type UnderlineStyle string

// Supported UnderlineStyle values.
const (
	UnderlineNone          UnderlineStyle = "none"
	UnderlineWords         UnderlineStyle = "words"
	UnderlineSingle        UnderlineStyle = "sng"
	UnderlineDouble        UnderlineStyle = "dbl"
	UnderlineHeavy         UnderlineStyle = "heavy"
	UnderlineDotted        UnderlineStyle = "dotted"
	UnderlineHeavyDotted   UnderlineStyle = "dottedHeavy"
	UnderlineDash          UnderlineStyle = "dash"
	UnderlineHeavyDash     UnderlineStyle = "dashHeavy"
	UnderlineLongDash      UnderlineStyle = "dashLong"
	UnderlineHeavyLongDash UnderlineStyle = "dashLongHeavy"
	UnderlineDotDash       UnderlineStyle = "dotDash"
	UnderlineHeavyDotDash  UnderlineStyle = "dotDashHeavy"
	UnderlineDotDotDash    UnderlineStyle = "dotDotDash"
	UnderlineHeavyDotDot   UnderlineStyle = "dotDotDashHeavy"
	UnderlineWavy          UnderlineStyle = "wavy"
	UnderlineHeavyWavy     UnderlineStyle = "wavyHeavy"
	UnderlineDoubleWavy    UnderlineStyle = "wavyDbl"
)

// AutoNumberScheme closes the set of automatic bullet numbering
// schemes usable with BulletAutoNumbered.
type AutoNumberScheme string

// A representative subset of the ECMA-376 numbering schemes.
const (
	AutoNumArabicPeriod  AutoNumberScheme = "arabicPeriod"
	AutoNumArabicParenR  AutoNumberScheme = "arabicParenR"
	AutoNumAlphaLcPeriod AutoNumberScheme = "alphaLcPeriod"
	AutoNumAlphaUcPeriod AutoNumberScheme = "alphaUcPeriod"
	AutoNumRomanLcPeriod AutoNumberScheme = "romanLcPeriod"
	AutoNumRomanUcPeriod AutoNumberScheme = "romanUcPeriod"
)

// LineDashStyle closes the 11-value set of dash patterns LineFormat
// can emit.
type LineDashStyle string

// Supported LineDashStyle values.
const (
	DashSolid          LineDashStyle = "solid"
	DashDot            LineDashStyle = "dot"
	DashDash           LineDashStyle = "dash"
	DashLargeDash      LineDashStyle = "lgDash"
	DashDashDot        LineDashStyle = "dashDot"
	DashLargeDashDot   LineDashStyle = "lgDashDot"
	DashLargeDashDotD  LineDashStyle = "lgDashDotDot"
	DashSysDash        LineDashStyle = "sysDash"
	DashSysDot         LineDashStyle = "sysDot"
	DashSysDashDot     LineDashStyle = "sysDashDot"
	DashSysDashDotDot  LineDashStyle = "sysDashDotDot"
)

// LineCap closes the set of line cap styles.
type LineCap string

// Supported LineCap values.
const (
	CapFlat   LineCap = "flat"
	CapRound  LineCap = "rnd"
	CapSquare LineCap = "sq"
)

// LineJoin closes the set of line join styles.
type LineJoin string

// Supported LineJoin values.
const (
	JoinRound LineJoin = "round"
	JoinBevel LineJoin = "bevel"
	JoinMiter LineJoin = "miter"
)

// ConnectorType closes the set of preset connector geometries a
// Connector shape may use.
type ConnectorType string

// Supported ConnectorType values.
const (
	ConnectorStraight ConnectorType = "line"
	ConnectorElbow    ConnectorType = "bentConnector3"
	ConnectorCurved   ConnectorType = "curvedConnector3"
)

// ChartFamily closes the top-level plot element families the chart
// XML writer can produce.
type ChartFamily string

// Supported ChartFamily values.
const (
	ChartFamilyBar       ChartFamily = "bar"
	ChartFamilyLine      ChartFamily = "line"
	ChartFamilyPie       ChartFamily = "pie"
	ChartFamilyDoughnut  ChartFamily = "doughnut"
	ChartFamilyArea      ChartFamily = "area"
	ChartFamilyScatter   ChartFamily = "scatter"
	ChartFamilyBubble    ChartFamily = "bubble"
	ChartFamilyRadar     ChartFamily = "radar"
	ChartFamilyStock     ChartFamily = "stock"
	ChartFamilySurface   ChartFamily = "surface"
)

// ChartGrouping closes the set of series-grouping modes applicable to
// bar/line/area families.
type ChartGrouping string

// Supported ChartGrouping values.
const (
	GroupingClustered     ChartGrouping = "clustered"
	GroupingStacked       ChartGrouping = "stacked"
	GroupingPercentStack  ChartGrouping = "percentStacked"
	GroupingStandard      ChartGrouping = "standard"
)

// BarDirection closes the set of bar orientations.
type BarDirection string

// Supported BarDirection values.
const (
	BarDirectionColumn BarDirection = "col"
	BarDirectionBar    BarDirection = "bar"
)

// ChartType enumerates the full matrix of chart variants the writer
// supports, built from the family/grouping/dimension/direction axes
// named in the component design (~60 combinations in real use).
type ChartType struct {
	Family    ChartFamily
	Grouping  ChartGrouping
	Direction BarDirection // meaningful for ChartFamilyBar only
	ThreeD    bool
}

// Named constructors for the chart variants referenced most often.
var (
	ChartColumnClustered      = ChartType{Family: ChartFamilyBar, Grouping: GroupingClustered, Direction: BarDirectionColumn}
	ChartColumnStacked        = ChartType{Family: ChartFamilyBar, Grouping: GroupingStacked, Direction: BarDirectionColumn}
	ChartColumnPercentStacked = ChartType{Family: ChartFamilyBar, Grouping: GroupingPercentStack, Direction: BarDirectionColumn}
	ChartColumnClustered3D    = ChartType{Family: ChartFamilyBar, Grouping: GroupingClustered, Direction: BarDirectionColumn, ThreeD: true}
	ChartBarClustered         = ChartType{Family: ChartFamilyBar, Grouping: GroupingClustered, Direction: BarDirectionBar}
	ChartBarStacked           = ChartType{Family: ChartFamilyBar, Grouping: GroupingStacked, Direction: BarDirectionBar}
	ChartLine                 = ChartType{Family: ChartFamilyLine, Grouping: GroupingStandard}
	ChartLineStacked          = ChartType{Family: ChartFamilyLine, Grouping: GroupingStacked}
	ChartLine3D               = ChartType{Family: ChartFamilyLine, Grouping: GroupingStandard, ThreeD: true}
	ChartPie                  = ChartType{Family: ChartFamilyPie, Grouping: GroupingStandard}
	ChartPie3D                = ChartType{Family: ChartFamilyPie, Grouping: GroupingStandard, ThreeD: true}
	ChartDoughnut             = ChartType{Family: ChartFamilyDoughnut, Grouping: GroupingStandard}
	ChartAreaStacked          = ChartType{Family: ChartFamilyArea, Grouping: GroupingStacked}
	ChartArea3D               = ChartType{Family: ChartFamilyArea, Grouping: GroupingStandard, ThreeD: true}
	ChartXYScatter            = ChartType{Family: ChartFamilyScatter, Grouping: GroupingStandard}
	ChartBubble               = ChartType{Family: ChartFamilyBubble, Grouping: GroupingStandard}
	ChartRadar                = ChartType{Family: ChartFamilyRadar, Grouping: GroupingStandard}
	ChartStock                = ChartType{Family: ChartFamilyStock, Grouping: GroupingStandard}
	ChartSurface              = ChartType{Family: ChartFamilySurface, Grouping: GroupingStandard}
	ChartSurface3D            = ChartType{Family: ChartFamilySurface, Grouping: GroupingStandard, ThreeD: true}
)

// PresetGeometry closes the set of built-in AutoShape outlines. This
// is a representative subset of the ~192 names defined by
// ECMA-376 ST_ShapeType; uncommon presets can still be used by
// constructing the string value directly since the underlying type is
// a plain string.
type PresetGeometry string

// A representative subset of ST_ShapeType preset geometries.
const (
	GeomRect              PresetGeometry = "rect"
	GeomRoundRect         PresetGeometry = "roundRect"
	GeomEllipse           PresetGeometry = "ellipse"
	GeomTriangle          PresetGeometry = "triangle"
	GeomRtTriangle        PresetGeometry = "rtTriangle"
	GeomDiamond           PresetGeometry = "diamond"
	GeomParallelogram     PresetGeometry = "parallelogram"
	GeomTrapezoid         PresetGeometry = "trapezoid"
	GeomPentagon          PresetGeometry = "homePlate"
	GeomHexagon           PresetGeometry = "hexagon"
	GeomOctagon           PresetGeometry = "octagon"
	GeomStar4             PresetGeometry = "star4"
	GeomStar5             PresetGeometry = "star5"
	GeomStar6             PresetGeometry = "star6"
	GeomStar8             PresetGeometry = "star8"
	GeomStar12            PresetGeometry = "star12"
	GeomStar16            PresetGeometry = "star16"
	GeomStar24            PresetGeometry = "star24"
	GeomStar32            PresetGeometry = "star32"
	GeomArrowRight        PresetGeometry = "rightArrow"
	GeomArrowLeft         PresetGeometry = "leftArrow"
	GeomArrowUp           PresetGeometry = "upArrow"
	GeomArrowDown         PresetGeometry = "downArrow"
	GeomArrowLeftRight    PresetGeometry = "leftRightArrow"
	GeomArrowUpDown       PresetGeometry = "upDownArrow"
	GeomChevron           PresetGeometry = "chevron"
	GeomHeart             PresetGeometry = "heart"
	GeomLightningBolt     PresetGeometry = "lightningBolt"
	GeomCloud             PresetGeometry = "cloud"
	GeomSmileyFace        PresetGeometry = "smileyFace"
	GeomDonut             PresetGeometry = "donut"
	GeomNoSmoking         PresetGeometry = "noSmoking"
	GeomBlockArc          PresetGeometry = "blockArc"
	GeomCube              PresetGeometry = "cube"
	GeomCan               PresetGeometry = "can"
	GeomBevel             PresetGeometry = "bevel"
	GeomFoldedCorner      PresetGeometry = "foldedCorner"
	GeomFrame             PresetGeometry = "frame"
	GeomPlaque            PresetGeometry = "plaque"
	GeomPie               PresetGeometry = "pie"
	GeomArc               PresetGeometry = "arc"
	GeomFlowChartProcess  PresetGeometry = "flowChartProcess"
	GeomFlowChartDecision PresetGeometry = "flowChartDecision"
	GeomWedgeRoundRectCO  PresetGeometry = "wedgeRoundRectCallout"
	GeomWedgeEllipseCO    PresetGeometry = "wedgeEllipseCallout"
	GeomCustom            PresetGeometry = "custom" // sentinel: custom_geometry populated instead
)

// ShapeAction closes the set of click/hover action kinds a shape's
// mouse-down or mouse-over behavior can trigger.
type ShapeAction string

// Supported ShapeAction values.
const (
	ActionNone           ShapeAction = "none"
	ActionHyperlink      ShapeAction = "hlinkClick"
	ActionNextSlide      ShapeAction = "nextslide"
	ActionPreviousSlide  ShapeAction = "prevslide"
	ActionFirstSlide     ShapeAction = "firstslide"
	ActionLastSlide      ShapeAction = "lastslide"
	ActionEndShow        ShapeAction = "endshow"
)
