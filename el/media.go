package el

import (
	"github.com/vango-dev/vbind/pkg/attr"
	"github.com/vango-dev/vbind/pkg/reactive"
)

// Linking holds the hyperlink attributes.
type Linking[E any] struct {
	c *core[E]
}

func (l *Linking[E]) wire(c *core[E]) { l.c = c }

func (l Linking[E]) Href(v reactive.Value[attr.URL]) E      { return setAttr(l.c, attr.Href, v) }
func (l Linking[E]) Target(v reactive.Value[attr.Target]) E { return setAttr(l.c, attr.TargetAttr, v) }
func (l Linking[E]) Rel(v reactive.Value[attr.Rels]) E      { return setAttr(l.c, attr.RelAttr, v) }
func (l Linking[E]) Download(v reactive.Value[string]) E    { return setAttr(l.c, attr.Download, v) }
func (l Linking[E]) HrefLang(v reactive.Value[string]) E    { return setAttr(l.c, attr.HrefLang, v) }

// Sourced holds the src attribute of embedded content.
type Sourced[E any] struct {
	c *core[E]
}

func (s *Sourced[E]) wire(c *core[E]) { s.c = c }

func (s Sourced[E]) hasSource() {}

func (s Sourced[E]) Src(v reactive.Value[attr.URL]) E { return setAttr(s.c, attr.Src, v) }

// Dimensioned holds the width and height attributes of replaced content.
// The style properties of the same names are set through Width and Height.
type Dimensioned[E any] struct {
	c *core[E]
}

func (d *Dimensioned[E]) wire(c *core[E]) { d.c = c }

// Dimensions binds the width and height attributes.
func (d Dimensioned[E]) Dimensions(width, height reactive.Value[attr.NonNegative]) E {
	setAttr(d.c, attr.Width, width)
	return setAttr(d.c, attr.Height, height)
}

// Media holds the playback attributes of audio and video.
type Media[E any] struct {
	c *core[E]
}

func (m *Media[E]) wire(c *core[E]) { m.c = c }

func (m Media[E]) Controls(v reactive.Value[bool]) E { return setAttr(m.c, attr.Controls, v) }
func (m Media[E]) Autoplay(v reactive.Value[bool]) E { return setAttr(m.c, attr.Autoplay, v) }
func (m Media[E]) Loop(v reactive.Value[bool]) E     { return setAttr(m.c, attr.Loop, v) }
func (m Media[E]) Muted(v reactive.Value[bool]) E    { return setAttr(m.c, attr.Muted, v) }

func (m Media[E]) Preload(v reactive.Value[attr.Preload]) E {
	return setAttr(m.c, attr.PreloadAttr, v)
}
