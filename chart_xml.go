package pptx

import (
	"fmt"
	"math"
	"strings"
)

// PartXML renders the chart's standalone `chart{N}.xml` part content,
// rooted at `<c:chartSpace>` (spec §4.7). sheetName identifies the
// embedded workbook's worksheet the cached values cite in their
// `<c:f>` formulas.
func (c *Chart) PartXML(sheetName string) (string, error) {
	plot, err := c.plotXML(sheetName)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<c:chartSpace xmlns:c="http://schemas.openxmlformats.org/drawingml/2006/chart" ` +
		`xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
		`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">`)
	sb.WriteString(`<c:chart>`)
	sb.WriteString(c.titleXML())
	sb.WriteString(`<c:plotArea><c:layout/>`)
	sb.WriteString(plot)
	if !isPieFamily(c.Type.Family) {
		sb.WriteString(c.CategoryAxis.xml("catAx", 111111111, 222222222, c.Type.Direction == BarDirectionBar))
		sb.WriteString(c.ValueAxis.xml("valAx", 222222222, 111111111, c.Type.Direction == BarDirectionBar))
	}
	sb.WriteString(`</c:plotArea>`)
	sb.WriteString(c.legendXML())
	fmt.Fprintf(&sb, `<c:plotVisOnly val="1"/><c:dispBlanksAs val="%s"/>`, c.DisplayBlanksAs)
	sb.WriteString(`</c:chart>`)
	sb.WriteString(`</c:chartSpace>`)
	return sb.String(), nil
}

func isPieFamily(f ChartFamily) bool { return f == ChartFamilyPie || f == ChartFamilyDoughnut }

func (c *Chart) titleXML() string {
	if !c.Title.Visible || c.Title.Text == "" {
		return `<c:autoTitleDeleted val="1"/>`
	}
	b := "0"
	if c.Title.Font.Bold {
		b = "1"
	}
	size := c.Title.Font.Size
	if size <= 0 {
		size = 18
	}
	return fmt.Sprintf(
		`<c:title><c:tx><c:rich><a:bodyPr/><a:lstStyle/><a:p><a:r><a:rPr lang="en-US" sz="%d" b="%s"/><a:t>%s</a:t></a:r></a:p></c:rich></c:tx><c:overlay val="0"/></c:title>`,
		CentipointsFromPoints(size), b, xmlEscape(c.Title.Text))
}

func (c *Chart) legendXML() string {
	if !c.Legend.Visible {
		return ""
	}
	return fmt.Sprintf(`<c:legend><c:legendPos val="%s"/><c:overlay val="0"/></c:legend>`, c.Legend.Position)
}

func (a *ChartAxis) xml(elem string, axID, crossID int, isValueFirst bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<c:%s><c:axId val="%d"/><c:scaling><c:orientation val="%s"/>`,
		elem, axID, a.orientation())
	if a.MaxBounds != nil {
		fmt.Fprintf(&sb, `<c:max val="%g"/>`, *a.MaxBounds)
	}
	if a.MinBounds != nil {
		fmt.Fprintf(&sb, `<c:min val="%g"/>`, *a.MinBounds)
	}
	sb.WriteString(`</c:scaling>`)
	fmt.Fprintf(&sb, `<c:delete val="%s"/><c:axPos val="%s"/>`, boolAttr(!a.Visible), axPosFor(elem, isValueFirst))
	if a.MajorGridlines != nil {
		fmt.Fprintf(&sb, `<c:majorGridlines><c:spPr><a:ln w="%d"><a:solidFill><a:srgbClr val="%s"/></a:solidFill></a:ln></c:spPr></c:majorGridlines>`,
			int64(a.MajorGridlines.Width), colorHexOf(a.MajorGridlines.Color))
	}
	if a.Title != "" {
		fmt.Fprintf(&sb, `<c:title><c:tx><c:rich><a:bodyPr/><a:lstStyle/><a:p><a:r><a:t>%s</a:t></a:r></a:p></c:rich></c:tx><c:overlay val="0"/></c:title>`, xmlEscape(a.Title))
	}
	fmt.Fprintf(&sb, `<c:majorTickMark val="%s"/><c:minorTickMark val="%s"/><c:tickLblPos val="%s"/>`,
		a.MajorTickMark, a.MinorTickMark, a.TickLabelPos)
	fmt.Fprintf(&sb, `<c:crossAx val="%d"/><c:crosses val="%s"/>`, crossID, a.CrossesAt)
	if a.MajorUnit != nil {
		fmt.Fprintf(&sb, `<c:majorUnit val="%g"/>`, *a.MajorUnit)
	}
	if a.MinorUnit != nil {
		fmt.Fprintf(&sb, `<c:minorUnit val="%g"/>`, *a.MinorUnit)
	}
	fmt.Fprintf(&sb, `</c:%s>`, elem)
	return sb.String()
}

func (a *ChartAxis) orientation() string {
	if a.ReversedOrder {
		return "maxMin"
	}
	return "minMax"
}

func axPosFor(elem string, isValueFirst bool) string {
	if elem == "catAx" {
		if isValueFirst {
			return "l"
		}
		return "b"
	}
	if isValueFirst {
		return "b"
	}
	return "l"
}

// plotXML dispatches to the family-specific `<c:xChart>` renderer.
func (c *Chart) plotXML(sheetName string) (string, error) {
	switch d := c.Data.(type) {
	case *CategoryChartData:
		return c.categoryPlotXML(d, sheetName)
	case *DateAxisChartData:
		return c.datePlotXML(d, sheetName)
	case *XyChartData:
		return c.xyPlotXML(d, sheetName)
	case *BubbleChartData:
		return c.bubblePlotXML(d, sheetName)
	default:
		return "", fmt.Errorf("pptx: unsupported chart data source %T", d)
	}
}

func (c *Chart) categoryPlotXML(d *CategoryChartData, sheetName string) (string, error) {
	var sers strings.Builder
	for idx, s := range d.SeriesList {
		sers.WriteString(c.categorySeriesXML(idx, s, d.Categories, d.CategoryLevels, sheetName))
	}
	return c.wrapFamily(sers.String())
}

func (c *Chart) datePlotXML(d *DateAxisChartData, sheetName string) (string, error) {
	cats := make([]string, len(d.Dates))
	for i, t := range d.Dates {
		cats[i] = t.Format("2006-01-02")
	}
	var sers strings.Builder
	for idx, s := range d.SeriesList {
		sers.WriteString(c.categorySeriesXML(idx, s, cats, nil, sheetName))
	}
	return c.wrapFamily(sers.String())
}

// categorySeriesXML renders one `<c:ser>`. The worksheet layout puts
// categories in column A and series values in B onward, so series idx
// maps to column idx+2.
func (c *Chart) categorySeriesXML(idx int, s CategorySeries, categories []string, levels [][]string, sheetName string) string {
	var sb strings.Builder
	colLetter := columnLetter(idx + 2)
	fmt.Fprintf(&sb, `<c:ser><c:idx val="%d"/><c:order val="%d"/>`, idx, idx)
	fmt.Fprintf(&sb, `<c:tx><c:strRef><c:f>%s!$%s$1</c:f><c:strCache><c:ptCount val="1"/><c:pt idx="0"><c:v>%s</c:v></c:pt></c:strCache></c:strRef></c:tx>`,
		sheetName, colLetter, xmlEscape(s.Name))
	if s.FillColor != nil {
		fmt.Fprintf(&sb, `<c:spPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill></c:spPr>`, colorHexOf(*s.FillColor))
	}
	if s.InvertIfNegative && c.Type.Family == ChartFamilyBar {
		sb.WriteString(`<c:invertIfNegative val="1"/>`)
	}
	if c.Type.Family == ChartFamilyLine || c.Type.Family == ChartFamilyRadar {
		if c.Type.Grouping == GroupingStacked || c.Type.Grouping == GroupingPercentStack {
			sb.WriteString(`<c:marker><c:symbol val="none"/></c:marker>`)
		}
	}

	if len(levels) > 0 {
		sb.WriteString(`<c:cat><c:multiLvlStrRef><c:f>` + sheetName + `!$A$2:$A$` + fmt.Sprint(len(categories)+1) + `</c:f><c:multiLvlStrCache>`)
		fmt.Fprintf(&sb, `<c:ptCount val="%d"/>`, len(categories))
		for _, lvl := range levels {
			sb.WriteString(`<c:lvl>`)
			for i, v := range lvl {
				if v == "" {
					continue
				}
				fmt.Fprintf(&sb, `<c:pt idx="%d"><c:v>%s</c:v></c:pt>`, i, xmlEscape(v))
			}
			sb.WriteString(`</c:lvl>`)
		}
		sb.WriteString(`</c:multiLvlStrCache></c:multiLvlStrRef></c:cat>`)
	} else {
		sb.WriteString(`<c:cat><c:strRef><c:f>` + sheetName + `!$A$2:$A$` + fmt.Sprint(len(categories)+1) + `</c:f><c:strCache>`)
		fmt.Fprintf(&sb, `<c:ptCount val="%d"/>`, len(categories))
		for i, cat := range categories {
			fmt.Fprintf(&sb, `<c:pt idx="%d"><c:v>%s</c:v></c:pt>`, i, xmlEscape(cat))
		}
		sb.WriteString(`</c:strCache></c:strRef></c:cat>`)
	}

	format := s.NumberFormat
	if format == "" {
		format = "General"
	}
	sb.WriteString(`<c:val><c:numRef><c:f>` + sheetName + `!$` + colLetter + `$2:$` + colLetter + `$` + fmt.Sprint(len(categories)+1) + `</c:f><c:numCache>`)
	sb.WriteString(`<c:formatCode>` + xmlEscape(format) + `</c:formatCode>`)
	fmt.Fprintf(&sb, `<c:ptCount val="%d"/>`, len(categories))
	for i := range categories {
		if v, ok := categoryValue(s, i); ok {
			fmt.Fprintf(&sb, `<c:pt idx="%d"><c:v>%g</c:v></c:pt>`, i, v)
		}
	}
	sb.WriteString(`</c:numCache></c:numRef></c:val>`)

	if c.Type.Family == ChartFamilyLine {
		fmt.Fprintf(&sb, `<c:smooth val="%s"/>`, boolAttr(c.Smooth))
	}
	sb.WriteString(`</c:ser>`)
	return sb.String()
}

// categoryValue returns the i-th value of s, reporting ok=false for a
// missing trailing value or an explicit NaN empty-cell marker; empty
// cells get no cached point at all, matching how Excel omits them.
func categoryValue(s CategorySeries, i int) (float64, bool) {
	if i >= len(s.Values) {
		return 0, false
	}
	v := s.Values[i]
	if math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

func (c *Chart) xyPlotXML(d *XyChartData, sheetName string) (string, error) {
	var sers strings.Builder
	for idx, s := range d.SeriesList {
		colLetter := columnLetter(idx*2 + 1)
		valColLetter := columnLetter(idx*2 + 2)
		fmt.Fprintf(&sers, `<c:ser><c:idx val="%d"/><c:order val="%d"/>`, idx, idx)
		fmt.Fprintf(&sers, `<c:tx><c:strRef><c:f>%s!$%s$1</c:f><c:strCache><c:ptCount val="1"/><c:pt idx="0"><c:v>%s</c:v></c:pt></c:strCache></c:strRef></c:tx>`,
			sheetName, colLetter, xmlEscape(s.Name))

		sers.WriteString(`<c:xVal><c:numRef><c:f>` + sheetName + `!$` + colLetter + `$2:$` + colLetter + `$` + fmt.Sprint(len(s.Points)+1) + `</c:f><c:numCache>`)
		fmt.Fprintf(&sers, `<c:formatCode>General</c:formatCode><c:ptCount val="%d"/>`, len(s.Points))
		for i, p := range s.Points {
			fmt.Fprintf(&sers, `<c:pt idx="%d"><c:v>%g</c:v></c:pt>`, i, p.X)
		}
		sers.WriteString(`</c:numCache></c:numRef></c:xVal>`)

		sers.WriteString(`<c:yVal><c:numRef><c:f>` + sheetName + `!$` + valColLetter + `$2:$` + valColLetter + `$` + fmt.Sprint(len(s.Points)+1) + `</c:f><c:numCache>`)
		fmt.Fprintf(&sers, `<c:formatCode>General</c:formatCode><c:ptCount val="%d"/>`, len(s.Points))
		for i, p := range s.Points {
			fmt.Fprintf(&sers, `<c:pt idx="%d"><c:v>%g</c:v></c:pt>`, i, p.Y)
		}
		sers.WriteString(`</c:numCache></c:numRef></c:yVal>`)

		fmt.Fprintf(&sers, `<c:smooth val="%s"/></c:ser>`, boolAttr(s.Smooth))
	}
	return fmt.Sprintf(`<c:scatterChart><c:scatterStyle val="lineMarker"/><c:varyColors val="0"/>%s<c:axId val="111111111"/><c:axId val="222222222"/></c:scatterChart>`,
		sers.String()), nil
}

func (c *Chart) bubblePlotXML(d *BubbleChartData, sheetName string) (string, error) {
	var sers strings.Builder
	for idx, s := range d.SeriesList {
		xCol := columnLetter(idx*3 + 1)
		yCol := columnLetter(idx*3 + 2)
		szCol := columnLetter(idx*3 + 3)
		fmt.Fprintf(&sers, `<c:ser><c:idx val="%d"/><c:order val="%d"/>`, idx, idx)
		fmt.Fprintf(&sers, `<c:tx><c:strRef><c:f>%s!$%s$1</c:f><c:strCache><c:ptCount val="1"/><c:pt idx="0"><c:v>%s</c:v></c:pt></c:strCache></c:strRef></c:tx>`,
			sheetName, xCol, xmlEscape(s.Name))

		n := len(s.Points)
		writeNumRef := func(col string, pick func(BubblePoint) float64) {
			fmt.Fprintf(&sers, `<c:numRef><c:f>%s!$%s$2:$%s$%d</c:f><c:numCache><c:formatCode>General</c:formatCode><c:ptCount val="%d"/>`,
				sheetName, col, col, n+1, n)
			for i, p := range s.Points {
				fmt.Fprintf(&sers, `<c:pt idx="%d"><c:v>%g</c:v></c:pt>`, i, pick(p))
			}
			sers.WriteString(`</c:numCache></c:numRef>`)
		}
		sers.WriteString(`<c:xVal>`)
		writeNumRef(xCol, func(p BubblePoint) float64 { return p.X })
		sers.WriteString(`</c:xVal><c:yVal>`)
		writeNumRef(yCol, func(p BubblePoint) float64 { return p.Y })
		sers.WriteString(`</c:yVal><c:bubbleSize>`)
		writeNumRef(szCol, func(p BubblePoint) float64 { return p.Size })
		sers.WriteString(`</c:bubbleSize></c:ser>`)
	}
	return fmt.Sprintf(`<c:bubbleChart><c:varyColors val="0"/>%s<c:axId val="111111111"/><c:axId val="222222222"/></c:bubbleChart>`,
		sers.String()), nil
}

// wrapFamily wraps series markup in the `<c:xChart>` element matching
// c.Type.Family, applying the family's own modifier children
// (barDir/grouping/gapWidth/holeSize/etc).
func (c *Chart) wrapFamily(seriesXML string) (string, error) {
	switch c.Type.Family {
	case ChartFamilyBar:
		elem := "barChart"
		if c.Type.ThreeD {
			elem = "bar3DChart"
		}
		return fmt.Sprintf(`<c:%s><c:barDir val="%s"/><c:grouping val="%s"/><c:varyColors val="0"/>%s<c:gapWidth val="%d"/><c:overlap val="%d"/><c:axId val="111111111"/><c:axId val="222222222"/></c:%s>`,
			elem, c.Type.Direction, c.Type.Grouping, seriesXML, c.GapWidthPercent, c.OverlapPercent, elem), nil
	case ChartFamilyLine:
		elem := "lineChart"
		if c.Type.ThreeD {
			elem = "line3DChart"
		}
		return fmt.Sprintf(`<c:%s><c:grouping val="%s"/><c:varyColors val="0"/>%s<c:marker val="1"/><c:axId val="111111111"/><c:axId val="222222222"/></c:%s>`,
			elem, c.Type.Grouping, seriesXML, elem), nil
	case ChartFamilyPie:
		elem := "pieChart"
		if c.Type.ThreeD {
			elem = "pie3DChart"
		}
		return fmt.Sprintf(`<c:%s><c:varyColors val="1"/>%s</c:%s>`, elem, seriesXML, elem), nil
	case ChartFamilyDoughnut:
		return fmt.Sprintf(`<c:doughnutChart><c:varyColors val="1"/>%s<c:holeSize val="%d"/></c:doughnutChart>`,
			seriesXML, c.HoleSizePercent), nil
	case ChartFamilyArea:
		elem := "areaChart"
		if c.Type.ThreeD {
			elem = "area3DChart"
		}
		return fmt.Sprintf(`<c:%s><c:grouping val="%s"/><c:varyColors val="0"/>%s<c:axId val="111111111"/><c:axId val="222222222"/></c:%s>`,
			elem, c.Type.Grouping, seriesXML, elem), nil
	case ChartFamilyRadar:
		return fmt.Sprintf(`<c:radarChart><c:radarStyle val="marker"/><c:varyColors val="0"/>%s<c:axId val="111111111"/><c:axId val="222222222"/></c:radarChart>`,
			seriesXML), nil
	case ChartFamilyStock:
		return fmt.Sprintf(`<c:stockChart>%s<c:hiLowLines/><c:upDownBars><c:gapWidth val="%d"/><c:upBars/><c:downBars/></c:upDownBars><c:axId val="111111111"/><c:axId val="222222222"/></c:stockChart>`,
			seriesXML, c.GapWidthPercent), nil
	case ChartFamilySurface:
		elem := "surfaceChart"
		if c.Type.ThreeD {
			elem = "surface3DChart"
		}
		return fmt.Sprintf(`<c:%s><c:wireframe val="0"/>%s<c:axId val="111111111"/><c:axId val="222222222"/></c:%s>`, elem, seriesXML, elem), nil
	default:
		return "", fmt.Errorf("pptx: chart family %q has no XML renderer", c.Type.Family)
	}
}

// columnLetter returns the 1-indexed spreadsheet column letter (1 ->
// "A", 2 -> "B", 27 -> "AA").
func columnLetter(n int) string {
	var sb strings.Builder
	for n > 0 {
		n--
		sb.WriteByte(byte('A' + n%26))
		n /= 26
	}
	s := sb.String()
	// digits were appended least-significant first
	runes := []byte(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
