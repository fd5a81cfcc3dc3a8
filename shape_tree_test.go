package pptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationModeRendersGroupProps(t *testing.T) {
	tree := NewShapeTree()
	tree.AddTextBox(Inches(1), Inches(1), Inches(2), Inches(1))

	xmlStr, err := tree.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<p:nvGrpSpPr>`)
	assert.Contains(t, xmlStr, `<p:spTree>`)
}

func TestInsertionModeSplicesAroundPreservedBody(t *testing.T) {
	open := `<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/></p:nvGrpSpPr><p:sp><p:nvSpPr><p:cNvPr id="2" name="Title"/></p:nvSpPr></p:sp>`
	tail := `</p:spTree>`
	tree := newInsertionShapeTree(open, tail)

	tree.AddTextBox(Inches(1), Inches(1), Inches(2), Inches(1))

	xmlStr, err := tree.XML()
	require.NoError(t, err)
	assert.True(t, len(xmlStr) > len(open)+len(tail))
	assert.Contains(t, xmlStr, `id="2" name="Title"`)
	assert.Contains(t, xmlStr, open)
	assert.Contains(t, xmlStr, tail)
	assert.True(t, indexOf(xmlStr, tail) > indexOf(xmlStr, `id="2" name="Title"`))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestInsertionModeSeedsShapeIDsFromRaw(t *testing.T) {
	open := `<p:spTree><p:nvGrpSpPr><p:cNvPr id="1" name=""/></p:nvGrpSpPr>` +
		`<p:sp><p:nvSpPr><p:cNvPr id="2" name="Title"/></p:nvSpPr></p:sp>` +
		`<p:pic><p:nvPicPr><p:cNvPr id="5" name="Logo"/></p:nvPicPr></p:pic>`
	tree := newInsertionShapeTree(open, `</p:spTree>`)

	first := tree.AddTextBox(0, 0, Inches(1), Inches(1))
	second := tree.AddTextBox(0, Inches(2), Inches(1), Inches(1))
	assert.Equal(t, uint32(6), first.ShapeID)
	assert.Equal(t, uint32(7), second.ShapeID)

	dup := NewAutoShape(GeomRect)
	dup.ShapeID = 5
	err := tree.Add(dup)
	assert.IsType(t, ErrInvalidShapeID{}, err)
}

func TestNextShapeIDSkipsExistingAndNestedGroups(t *testing.T) {
	tree := NewShapeTree()
	a := tree.AddAutoShape(GeomRect, 0, 0, Inches(1), Inches(1))
	a.ShapeID = 5

	group := tree.AddGroupShape()
	require.NotNil(t, group)
	child := group.Children.AddAutoShape(GeomRect, 0, 0, Inches(1), Inches(1))
	child.ShapeID = 9

	box := tree.AddTextBox(0, 0, Inches(1), Inches(1))
	assert.Equal(t, uint32(10), box.ShapeID)
}

func TestRemoveDropsShapeByID(t *testing.T) {
	tree := NewShapeTree()
	box := tree.AddTextBox(0, 0, Inches(1), Inches(1))
	assert.True(t, tree.Remove(box.ShapeID))
	assert.Equal(t, 0, tree.Len())
	assert.False(t, tree.Remove(box.ShapeID))
}

func TestByIDFindsShape(t *testing.T) {
	tree := NewShapeTree()
	box := tree.AddTextBox(0, 0, Inches(1), Inches(1))
	found, ok := tree.ByID(box.ShapeID)
	require.True(t, ok)
	assert.Same(t, box, found)

	_, ok = tree.ByID(9999)
	assert.False(t, ok)
}
