package pptx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFreeformTriangle(t *testing.T) {
	geom := NewFreeformBuilder(100, 100).
		MoveTo(0, 0).
		LineTo(100, 0).
		LineTo(50, 100).
		Close().
		Build()

	xmlStr := geom.XML()
	assert.Contains(t, xmlStr, `<a:custGeom>`)
	assert.Contains(t, xmlStr, `<a:path w="100" h="100">`)
	assert.Contains(t, xmlStr, `<a:moveTo><a:pt x="0" y="0"/></a:moveTo>`)
	assert.Equal(t, 2, strings.Count(xmlStr, "<a:lnTo>"))
	assert.Contains(t, xmlStr, `<a:close/>`)
}

func TestCustomGeometryOverridesPreset(t *testing.T) {
	shape := NewAutoShape(GeomRect)
	shape.CustomGeom = NewFreeformBuilder(10, 10).MoveTo(0, 0).LineTo(10, 10).Build()
	shape.ShapeID = 2
	shape.Name = "freeform"

	xmlStr, err := shape.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<a:custGeom>`)
	assert.NotContains(t, xmlStr, `<a:prstGeom`)
}

func TestCurveToEmitsCubicBezier(t *testing.T) {
	geom := NewFreeformBuilder(100, 100).
		MoveTo(0, 0).
		CurveTo(10, 0, 90, 100, 100, 100).
		Build()

	xmlStr := geom.XML()
	assert.Contains(t, xmlStr, `<a:cubicBezTo><a:pt x="10" y="0"/><a:pt x="90" y="100"/><a:pt x="100" y="100"/></a:cubicBezTo>`)
}

func TestAutoShapeAdjustValuesSorted(t *testing.T) {
	shape := NewAutoShape(GeomRoundRect)
	shape.ShapeID = 2
	shape.AdjustValues = map[string]float64{"adj2": 25000, "adj1": 50000}

	xmlStr, err := shape.XML()
	require.NoError(t, err)
	assert.Less(t, strings.Index(xmlStr, `name="adj1"`), strings.Index(xmlStr, `name="adj2"`))
}

func TestAutoShapeClickActionInCNvPr(t *testing.T) {
	shape := NewAutoShape(GeomRect)
	shape.ShapeID = 2
	shape.ClickAction = ActionNextSlide

	xmlStr, err := shape.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `action="ppaction://hlinkshowjump?jump=nextslide"`)
}

func TestGroupShapeNestsChildrenWithoutSpTreeWrapper(t *testing.T) {
	tree := NewShapeTree()
	a := tree.AddAutoShape(GeomRect, 0, 0, Inches(1), Inches(1))
	b := tree.AddAutoShape(GeomEllipse, Inches(2), 0, Inches(1), Inches(1))
	group := tree.AddGroupShape(a, b)

	require.Equal(t, 2, group.Children.Len())
	assert.Equal(t, 1, tree.Len())

	xmlStr, err := group.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<p:grpSp>`)
	assert.Contains(t, xmlStr, `<a:chOff`)
	assert.Equal(t, 2, strings.Count(xmlStr, "<p:sp>"))
	assert.NotContains(t, xmlStr, `<p:spTree>`)
}

func TestConnectorAttachedEndpoints(t *testing.T) {
	tree := NewShapeTree()
	src := tree.AddAutoShape(GeomRect, 0, 0, Inches(1), Inches(1))
	dst := tree.AddAutoShape(GeomRect, Inches(3), 0, Inches(1), Inches(1))

	conn := tree.AddConnector(ConnectorElbow, Inches(1), Inches(0.5), Inches(3), Inches(0.5))
	conn.Begin = ConnectorEndpoint{Attached: true, TargetShapeID: src.ShapeID, ConnectionSite: 3}
	conn.End = ConnectorEndpoint{Attached: true, TargetShapeID: dst.ShapeID, ConnectionSite: 1}

	xmlStr, err := conn.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<p:cxnSp>`)
	assert.Contains(t, xmlStr, `<a:prstGeom prst="bentConnector3">`)
	assert.Contains(t, xmlStr, `<a:stCxn id="`+itoa(int(src.ShapeID))+`" idx="3"/>`)
	assert.Contains(t, xmlStr, `<a:endCxn id="`+itoa(int(dst.ShapeID))+`" idx="1"/>`)
}

func TestShapeIDCollisionRejectedUnlessTurbo(t *testing.T) {
	tree := NewShapeTree()
	first := NewAutoShape(GeomRect)
	first.ShapeID = 2
	require.NoError(t, tree.Add(first))

	dup := NewAutoShape(GeomRect)
	dup.ShapeID = 2
	err := tree.Add(dup)
	assert.IsType(t, ErrInvalidShapeID{}, err)
	assert.Equal(t, 1, tree.Len())

	tree.EnableTurboAdd(true)
	require.NoError(t, tree.Add(dup))
	assert.Equal(t, 2, tree.Len())
}
