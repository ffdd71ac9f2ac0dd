package blockmodel

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/carpenter/pkg/scene"
)

// MissingTexture is the reference written for faces without a resolved texture.
const MissingTexture = "#missing"

// Rotation is the single-axis rotation of an element.
type Rotation struct {
	Angle   float64    `json:"angle"`
	Axis    string     `json:"axis"`
	Origin  mgl64.Vec3 `json:"origin"`
	Rescale bool       `json:"rescale,omitempty"`
}

// Face is the exported form of one cube face.
type Face struct {
	UV        *[4]float64 `json:"uv,omitempty"`
	Rotation  int         `json:"rotation,omitempty"`
	Texture   string      `json:"texture"`
	CullFace  string      `json:"cullface,omitempty"`
	TintIndex *int        `json:"tintindex,omitempty"`
}

// Element is the exported form of one cube.
type Element struct {
	Name     string             `json:"name,omitempty"`
	From     mgl64.Vec3         `json:"from"`
	To       mgl64.Vec3         `json:"to"`
	Shade    *bool              `json:"shade,omitempty"`
	Rotation *Rotation          `json:"rotation,omitempty"`
	Rotated  bool               `json:"rotated,omitempty"` // Rotation drops at least one non-zero axis
	Color    *int               `json:"color,omitempty"`
	Faces    *OrderedMap[*Face] `json:"faces"`
}

// Document is the block model produced for one top-level group.
// Nil fields are left out of the encoded model. Elements is present when
// non-nil, so an empty non-nil slice encodes as an empty list.
type Document struct {
	Credit           *string
	AmbientOcclusion *bool
	Textures         *OrderedMap[string]
	Elements         []*Element
	GUILight         string
	Display          *OrderedMap[*scene.DisplayTransform]

	extra *OrderedMap[any]
}

// Set adds a top-level field. Fields named like a built-in field replace it
// at its position; other fields are written after the built-in ones.
func (d *Document) Set(key string, value any) {
	if d.extra == nil {
		d.extra = NewOrderedMap[any]()
	}
	d.extra.Add(key, value)
}

// Extra returns a field added with Set.
func (d *Document) Extra(key string) (any, bool) {
	return d.extra.Get(key)
}

// Fields returns the document as an ordered field map.
func (d *Document) Fields() *OrderedMap[any] {
	out := NewOrderedMap[any]()
	if d.Credit != nil {
		out.Add("credit", *d.Credit)
	}
	if d.AmbientOcclusion != nil {
		out.Add("ambientocclusion", *d.AmbientOcclusion)
	}
	if d.Textures != nil {
		out.Add("textures", d.Textures)
	}
	if d.Elements != nil {
		out.Add("elements", d.Elements)
	}
	if d.GUILight != "" {
		out.Add("gui_light", d.GUILight)
	}
	if d.Display != nil {
		out.Add("display", d.Display)
	}
	if d.extra != nil {
		for _, kv := range d.extra.Order {
			out.Add(kv.Key, kv.Value)
		}
	}
	return out
}

// Has returns true if the encoded document contains key.
func (d *Document) Has(key string) bool {
	_, ok := d.Fields().Get(key)
	return ok
}

// MarshalJSON encodes the document with a fixed field order.
func (d *Document) MarshalJSON() ([]byte, error) {
	return marshal(d.Fields())
}
