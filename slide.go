package pptx

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Slide is one slide part of a presentation: a shape tree, optional
// speaker notes, and the handful of slide-level properties PowerPoint
// persists alongside `<p:sld>` (background, visibility, transition,
// animation timing, and modern comments).
type Slide struct {
	id     uint32
	name   string
	layout *SlideLayoutRef

	shapes *ShapeTree

	background    *FillFormat
	rawBackground string // verbatim `<p:bg>...</p:bg>` from an opened slide, used until SetBackground/ClearBackground override it
	hidden        bool

	notes string

	transition *Transition
	animations []*Animation
	comments   []*Comment

	partRels *Relationships // images, charts, hyperlinks; the slide-layout relationship is added at save time
}

// Transition describes the `<p:transition>` PowerPoint plays when
// advancing onto this slide.
type Transition struct {
	Type     TransitionType
	Duration Emu // wipe/push/etc duration isn't EMU in the schema (milliseconds); reused here as a plain integer-ish carrier
	Speed    TransitionSpeed
}

// TransitionType closes the set of transition effects this library
// can emit. Real PresentationML supports many more; only the common
// subset the teacher modeled is carried forward.
type TransitionType string

// Supported TransitionType values.
const (
	TransitionNone    TransitionType = ""
	TransitionFade    TransitionType = "fade"
	TransitionPush    TransitionType = "push"
	TransitionWipe    TransitionType = "wipe"
	TransitionSplit   TransitionType = "split"
	TransitionCut     TransitionType = "cut"
	TransitionDissolve TransitionType = "dissolve"
)

// TransitionSpeed closes the set of `<p:transition spd="...">` values.
type TransitionSpeed string

// Supported TransitionSpeed values.
const (
	TransitionSpeedFast   TransitionSpeed = "fast"
	TransitionSpeedMedium TransitionSpeed = "med"
	TransitionSpeedSlow   TransitionSpeed = "slow"
)

// Animation is a single `<p:timing>` entry: an effect applied to a
// shape, triggered either on click or immediately after the previous
// animation in the sequence.
type Animation struct {
	ShapeID uint32
	Effect  AnimationEffect
	Trigger AnimationTrigger
}

// AnimationEffect closes the set of animation presets this library
// emits.
type AnimationEffect string

// Supported AnimationEffect values.
const (
	AnimationAppear  AnimationEffect = "appear"
	AnimationFadeIn  AnimationEffect = "fade"
	AnimationFlyIn   AnimationEffect = "flyIn"
	AnimationWipeIn  AnimationEffect = "wipe"
	AnimationZoomIn  AnimationEffect = "zoom"
)

// AnimationTrigger closes the set of ways an animation starts.
type AnimationTrigger string

// Supported AnimationTrigger values.
const (
	TriggerOnClick    AnimationTrigger = "onClick"
	TriggerWithPrev   AnimationTrigger = "withPrev"
	TriggerAfterPrev  AnimationTrigger = "afterPrev"
)

// CommentAuthor is one entry in the presentation-wide comment author
// table (`commentAuthors.xml`). Real PresentationML identifies authors
// by a small integer id plus a GUID-bearing color index; this library
// mints the GUID once per author via google/uuid.
type CommentAuthor struct {
	ID        int
	GUID      uuid.UUID
	Name      string
	Initials  string
	ColorIdx  int
}

// guid returns the author's stable GUID, minting one on first use so
// callers constructing a CommentAuthor literal need not supply it.
func (a *CommentAuthor) guid() uuid.UUID {
	if a.GUID == uuid.Nil {
		a.GUID = uuid.New()
	}
	return a.GUID
}

// Comment is a single modern comment anchored to a position on a
// slide (`modernComment<N>.xml`).
type Comment struct {
	Author  *CommentAuthor
	Text    string
	PosX    Emu
	PosY    Emu
}

// NewSlide returns an empty slide bound to layout, with an empty shape
// tree in generation mode. Presentation.AddSlide is the usual caller;
// it additionally clones the layout's placeholder shapes.
func NewSlide(id uint32, layout *SlideLayoutRef) *Slide {
	return &Slide{
		id:       id,
		layout:   layout,
		shapes:   NewShapeTree(),
		partRels: NewRelationships(),
	}
}

// rels returns the slide's own relationship table (images, charts,
// hyperlinks). The structural slide->layout relationship is added
// separately when the slide's part is written.
func (s *Slide) rels() *Relationships {
	if s.partRels == nil {
		s.partRels = NewRelationships()
	}
	return s.partRels
}

// ID returns the slide's presentation-wide unique slide_id (spec
// §4.2: allocated starting at 256).
func (s *Slide) ID() uint32 { return s.id }

// Name returns the slide's display name, empty by default.
func (s *Slide) Name() string { return s.name }

// SetName sets the slide's display name. A blank name is rejected
// since PowerPoint's slide-name API has no concept of an unnamed
// slide once named.
func (s *Slide) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrSlideNameBlank
	}
	s.name = name
	return nil
}

// Shapes returns the slide's shape tree.
func (s *Slide) Shapes() *ShapeTree { return s.shapes }

// Layout returns the slide layout this slide was created from.
func (s *Slide) Layout() *SlideLayoutRef { return s.layout }

// Notes returns the slide's speaker notes text, empty if none.
func (s *Slide) Notes() string { return s.notes }

// SetNotes sets the slide's speaker notes text.
func (s *Slide) SetNotes(text string) { s.notes = text }

// Hidden reports whether the slide is marked hidden (skipped during
// normal slideshow playback).
func (s *Slide) Hidden() bool { return s.hidden }

// SetHidden sets the slide's hidden flag.
func (s *Slide) SetHidden(hidden bool) { s.hidden = hidden }

// Background returns the slide's background fill override, or nil if
// it inherits from its layout.
func (s *Slide) Background() *FillFormat { return s.background }

// SetBackground overrides the slide's background fill, replacing any
// raw background markup preserved from an opened slide.
func (s *Slide) SetBackground(fill FillFormat) {
	s.background = &fill
	s.rawBackground = ""
}

// ClearBackground removes the slide's background override, reverting
// to layout inheritance.
func (s *Slide) ClearBackground() {
	s.background = nil
	s.rawBackground = ""
}

// SetTransition sets the slide's advance transition.
func (s *Slide) SetTransition(t Transition) { s.transition = &t }

// GetTransition returns the slide's transition, or nil if none is set.
func (s *Slide) GetTransition() *Transition { return s.transition }

// AddAnimation appends an animation step to the slide's timing
// sequence.
func (s *Slide) AddAnimation(a Animation) { s.animations = append(s.animations, &a) }

// Animations returns the slide's animation sequence in order.
func (s *Slide) Animations() []*Animation { return s.animations }

// AddComment appends a comment anchored at (x, y).
func (s *Slide) AddComment(author *CommentAuthor, text string, x, y Emu) *Comment {
	c := &Comment{Author: author, Text: text, PosX: x, PosY: y}
	s.comments = append(s.comments, c)
	return c
}

// Comments returns the slide's comments in order.
func (s *Slide) Comments() []*Comment { return s.comments }

// ExtractText concatenates the text of every paragraph in every shape
// that carries one, in shape-tree order. For a slide read from an
// existing file, the preserved raw shape markup is scanned for its
// text runs first, since those shapes are not parsed back into Go
// structs (spec §4.3's insertion mode).
func (s *Slide) ExtractText() string {
	var parts []string
	if s.shapes.insertionMode {
		if t := extractNotesText(s.shapes.rawSpTreeOpen); t != "" {
			parts = append(parts, t)
		}
	}
	collectShapeText(s.shapes.Shapes(), &parts)
	return joinNonEmpty(parts, "\n")
}

func collectShapeText(shapes []Shape, parts *[]string) {
	for _, sh := range shapes {
		switch v := sh.(type) {
		case *AutoShape:
			if v.TextFrame != nil {
				if t := v.TextFrame.Text(); t != "" {
					*parts = append(*parts, t)
				}
			}
		case *GroupShape:
			collectShapeText(v.Children.Shapes(), parts)
		case *GraphicFrame:
			if v.Table != nil {
				for r := 0; r < v.Table.Rows(); r++ {
					for c := 0; c < v.Table.Cols(); c++ {
						if t := v.Table.Cell(r, c).TextFrame.Text(); t != "" {
							*parts = append(*parts, t)
						}
					}
				}
			}
		}
	}
}

// XML renders the slide's `<p:sld>` part body.
func (s *Slide) XML() (string, error) {
	treeXML, err := s.shapes.XML()
	if err != nil {
		return "", fmt.Errorf("pptx: rendering slide %d: %w", s.id, err)
	}

	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	sb.WriteString(`<p:sld xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" `)
	sb.WriteString(`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" `)
	sb.WriteString(`xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main"`)
	if s.hidden {
		sb.WriteString(` show="0"`)
	}
	sb.WriteString(`>`)
	if s.name != "" {
		sb.WriteString(`<p:cSld name="` + xmlEscape(s.name) + `">`)
	} else {
		sb.WriteString(`<p:cSld>`)
	}
	if s.background != nil {
		sb.WriteString(`<p:bg><p:bgPr>`)
		sb.WriteString(s.background.XML())
		sb.WriteString(`<a:effectLst/></p:bgPr></p:bg>`)
	} else if s.rawBackground != "" {
		sb.WriteString(s.rawBackground)
	}
	sb.WriteString(treeXML)
	sb.WriteString(`</p:cSld>`)
	if s.transition != nil {
		sb.WriteString(s.transition.xml())
	}
	if len(s.animations) > 0 {
		sb.WriteString(animationsXML(s.animations))
	}
	sb.WriteString(`</p:sld>`)
	return sb.String(), nil
}

func (t *Transition) xml() string {
	spd := ""
	if t.Speed != "" {
		spd = fmt.Sprintf(` spd="%s"`, t.Speed)
	}
	if t.Type == TransitionNone {
		return fmt.Sprintf(`<p:transition%s/>`, spd)
	}
	return fmt.Sprintf(`<p:transition%s><p:%s/></p:transition>`, spd, t.Type)
}

func animationsXML(anims []*Animation) string {
	var sb strings.Builder
	sb.WriteString(`<p:timing><p:tnLst><p:par><p:cTn id="1" dur="indefinite"><p:childTnLst>`)
	for i, a := range anims {
		sb.WriteString(fmt.Sprintf(
			`<p:par><p:cTn id="%d" presetClass="entr" nodeType="%s"><p:stCondLst><p:cond delay="0"/></p:stCondLst>`+
				`<p:childTnLst><p:animEffect transition="in" filter="%s"><p:cBhvr><p:cTn id="%d" dur="500"/>`+
				`<p:tgtEl><p:spTgt spid="%d"/></p:tgtEl></p:cBhvr></p:animEffect></p:childTnLst></p:cTn></p:par>`,
			i*2+2, a.Trigger, a.Effect, i*2+3, a.ShapeID))
	}
	sb.WriteString(`</p:childTnLst></p:cTn></p:par></p:tnLst></p:timing>`)
	return sb.String()
}

func joinNonEmpty(parts []string, sep string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
