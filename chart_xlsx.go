package pptx

import (
	"fmt"
	"strings"
)

// EmbeddedSheetName is the worksheet name every chart's cached-value
// formulas reference (spec §4.7: a chart's data is backed by a
// companion embedded spreadsheet part).
const EmbeddedSheetName = "Sheet1"

// BuildEmbeddedWorkbook renders the minimal .xlsx package backing a
// chart's cached values, itself an OPC package nested inside the
// presentation package (spec §4.7, §9's open question on embedded
// workbook fidelity: cell values only, no formulas or formatting
// beyond what a chart needs to redraw after Copy/Paste Special).
func BuildEmbeddedWorkbook(c *Chart) ([]byte, error) {
	pkg, err := NewPackage(Options{})
	if err != nil {
		return nil, err
	}

	sheetXML, err := c.worksheetXML()
	if err != nil {
		return nil, err
	}

	workbookURI := PackURI("/xl/workbook.xml")
	workbookPart := NewPart(workbookURI, ContentTypeXlsxWorkbook, []byte(xlsxWorkbookXML))
	if err := pkg.AddPart(workbookPart); err != nil {
		return nil, err
	}
	if err := pkg.AddPart(NewPart(PackURI("/xl/worksheets/sheet1.xml"), ContentTypeXlsxWorksheet, []byte(sheetXML))); err != nil {
		return nil, err
	}
	if err := pkg.AddPart(NewPart(PackURI("/xl/styles.xml"), ContentTypeXlsxStyles, []byte(xlsxStylesXML))); err != nil {
		return nil, err
	}

	if err := pkg.Rels().AddWithID("rId1", RelTypeOfficeDocument, "xl/workbook.xml", TargetInternal); err != nil {
		return nil, err
	}
	if err := workbookPart.Rels.AddWithID("rId1", RelTypeWorksheet, "worksheets/sheet1.xml", TargetInternal); err != nil {
		return nil, err
	}
	if err := workbookPart.Rels.AddWithID("rId2", RelTypeStyles, "styles.xml", TargetInternal); err != nil {
		return nil, err
	}

	return pkg.Bytes()
}

// worksheetXML renders `xl/worksheets/sheet1.xml` in the column layout
// chart_xml.go's c:f formulas assume: for category and date data, the
// categories in column A and one value column per series; for X-Y
// data, an X and a Y column per series; for bubble data, X, Y and
// size columns per series.
func (c *Chart) worksheetXML() (string, error) {
	rows, err := c.sheetRows()
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData>`)
	for rowIdx, row := range rows {
		fmt.Fprintf(&sb, `<row r="%d">`, rowIdx+1)
		for colIdx, cell := range row {
			if cell.empty {
				continue
			}
			ref := columnLetter(colIdx+1) + fmt.Sprint(rowIdx+1)
			if cell.isString {
				fmt.Fprintf(&sb, `<c r="%s" t="inlineStr"><is><t>%s</t></is></c>`, ref, xmlEscape(cell.str))
			} else {
				fmt.Fprintf(&sb, `<c r="%s"><v>%g</v></c>`, ref, cell.num)
			}
		}
		sb.WriteString(`</row>`)
	}
	sb.WriteString(`</sheetData></worksheet>`)
	return sb.String(), nil
}

type sheetCell struct {
	isString bool
	empty    bool
	str      string
	num      float64
}

func strCell(s string) sheetCell  { return sheetCell{isString: true, str: s} }
func numCell(v float64) sheetCell { return sheetCell{num: v} }

// valueCell maps the i-th value of s to a worksheet cell, leaving the
// cell empty where the series has no value (a missing trailing value
// or an explicit NaN marker).
func valueCell(s CategorySeries, i int) sheetCell {
	if v, ok := categoryValue(s, i); ok {
		return numCell(v)
	}
	return sheetCell{empty: true}
}

// sheetRows lays out the chart's data source as a row-major cell grid
// with a header row of series names, mirroring how a user would enter
// the same chart's data by hand in Excel.
func (c *Chart) sheetRows() ([][]sheetCell, error) {
	switch d := c.Data.(type) {
	case *CategoryChartData:
		header := []sheetCell{strCell("")}
		for _, s := range d.SeriesList {
			header = append(header, strCell(s.Name))
		}
		rows := [][]sheetCell{header}
		for i, cat := range d.Categories {
			row := []sheetCell{strCell(cat)}
			for _, s := range d.SeriesList {
				row = append(row, valueCell(s, i))
			}
			rows = append(rows, row)
		}
		return rows, nil
	case *DateAxisChartData:
		header := []sheetCell{strCell("")}
		for _, s := range d.SeriesList {
			header = append(header, strCell(s.Name))
		}
		rows := [][]sheetCell{header}
		for i, t := range d.Dates {
			row := []sheetCell{strCell(t.Format("2006-01-02"))}
			for _, s := range d.SeriesList {
				row = append(row, valueCell(s, i))
			}
			rows = append(rows, row)
		}
		return rows, nil
	case *XyChartData:
		var header []sheetCell
		maxLen := 0
		for _, s := range d.SeriesList {
			header = append(header, strCell(s.Name), strCell(s.Name+" Y"))
			if len(s.Points) > maxLen {
				maxLen = len(s.Points)
			}
		}
		rows := [][]sheetCell{header}
		for i := 0; i < maxLen; i++ {
			var row []sheetCell
			for _, s := range d.SeriesList {
				if i < len(s.Points) {
					row = append(row, numCell(s.Points[i].X), numCell(s.Points[i].Y))
				} else {
					row = append(row, numCell(0), numCell(0))
				}
			}
			rows = append(rows, row)
		}
		return rows, nil
	case *BubbleChartData:
		var header []sheetCell
		maxLen := 0
		for _, s := range d.SeriesList {
			header = append(header, strCell(s.Name), strCell(s.Name+" Y"), strCell(s.Name+" Size"))
			if len(s.Points) > maxLen {
				maxLen = len(s.Points)
			}
		}
		rows := [][]sheetCell{header}
		for i := 0; i < maxLen; i++ {
			var row []sheetCell
			for _, s := range d.SeriesList {
				if i < len(s.Points) {
					row = append(row, numCell(s.Points[i].X), numCell(s.Points[i].Y), numCell(s.Points[i].Size))
				} else {
					row = append(row, numCell(0), numCell(0), numCell(0))
				}
			}
			rows = append(rows, row)
		}
		return rows, nil
	default:
		return nil, fmt.Errorf("pptx: unsupported chart data source %T", d)
	}
}

const xlsxWorkbookXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">` +
	`<sheets><sheet name="Sheet1" sheetId="1" r:id="rId1"/></sheets></workbook>`

const xlsxStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
	`<styleSheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">` +
	`<fonts count="1"><font><sz val="11"/><name val="Calibri"/></font></fonts>` +
	`<fills count="1"><fill><patternFill patternType="none"/></fill></fills>` +
	`<borders count="1"><border/></borders>` +
	`<cellStyleXfs count="1"><xf/></cellStyleXfs>` +
	`<cellXfs count="1"><xf/></cellXfs></styleSheet>`
