package pptx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlideSetNameRejectsBlank(t *testing.T) {
	s := NewSlide(256, nil)
	assert.Error(t, s.SetName("   "))
	assert.NoError(t, s.SetName("Agenda"))
	assert.Equal(t, "Agenda", s.Name())
}

func TestSlideHiddenRendersShowAttribute(t *testing.T) {
	s := NewSlide(256, nil)
	s.SetHidden(true)
	xmlStr, err := s.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `show="0"`)
}

func TestSlideTransitionXML(t *testing.T) {
	s := NewSlide(256, nil)
	s.SetTransition(Transition{Type: TransitionFade, Speed: TransitionSpeedSlow})
	xmlStr, err := s.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<p:transition spd="slow"><p:fade/></p:transition>`)
	assert.Equal(t, TransitionFade, s.GetTransition().Type)
}

func TestSlideAnimationsXML(t *testing.T) {
	s := NewSlide(256, nil)
	s.AddAnimation(Animation{ShapeID: 2, Effect: AnimationFadeIn, Trigger: TriggerOnClick})
	s.AddAnimation(Animation{ShapeID: 3, Effect: AnimationWipeIn, Trigger: TriggerAfterPrev})
	assert.Len(t, s.Animations(), 2)

	xmlStr, err := s.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, `<p:timing>`)
	assert.Contains(t, xmlStr, `spid="2"`)
	assert.Contains(t, xmlStr, `spid="3"`)
}

func TestSlideBackgroundPrefersStructuredOverRaw(t *testing.T) {
	s := NewSlide(256, nil)
	s.rawBackground = `<p:bg><p:bgPr><a:noFill/></p:bgPr></p:bg>`

	xmlStr, err := s.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, "noFill")

	fill := SolidFill(ColorFormat{Kind: ColorKindRGB, RGB: "336699"})
	s.SetBackground(fill)
	assert.Empty(t, s.rawBackground)

	xmlStr, err = s.XML()
	require.NoError(t, err)
	assert.Contains(t, xmlStr, "336699")
	assert.NotContains(t, xmlStr, "noFill")
}

func TestSlideAddCommentAndExtractText(t *testing.T) {
	s := NewSlide(256, nil)
	author := &CommentAuthor{ID: 0, Name: "Reviewer", Initials: "R"}
	c := s.AddComment(author, "looks good", Inches(1), Inches(1))
	require.Len(t, s.Comments(), 1)
	assert.Equal(t, "looks good", c.Text)

	box := s.shapes.AddTextBox(0, 0, Inches(2), Inches(1))
	box.TextFrame.SetText("slide body")
	assert.Equal(t, "slide body", s.ExtractText())
}
