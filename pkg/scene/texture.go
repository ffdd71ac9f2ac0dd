package scene

import (
	"strconv"
	"strings"
)

// Resolution is a UV space size in texels.
type Resolution struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// DefaultResolution is the UV size of a single block texture.
var DefaultResolution = Resolution{Width: 16, Height: 16}

// Axis returns the width for even UV indices and the height for odd ones.
func (r Resolution) Axis(i int) int {
	if i%2 == 0 {
		return r.Width
	}
	return r.Height
}

// Valid returns true if both dimensions are positive.
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// Texture is an entry of the project's texture atlas.
type Texture struct {
	ID           string
	UUID         string
	Name         string
	Folder       string
	Namespace    string
	LinkOverride string
	UVWidth      int
	UVHeight     int
}

// Resolution returns the texture's UV size.
func (t *Texture) Resolution() Resolution {
	return Resolution{Width: t.UVWidth, Height: t.UVHeight}
}

// Link returns the path a model uses to refer to the texture.
// A link of the form "#other" makes the texture an alias of another one.
func (t *Texture) Link() string {
	if t.LinkOverride != "" {
		return t.LinkOverride
	}
	if t.Name == "" {
		return t.ID
	}
	link := strings.TrimSuffix(t.Name, ".png")
	if t.Folder != "" {
		link = t.Folder + "/" + link
	}
	if t.Namespace != "" && t.Namespace != "minecraft" {
		link = t.Namespace + ":" + link
	}
	return link
}

// Atlas is the ordered set of textures shared by all faces of a project.
type Atlas struct {
	textures []*Texture
}

// NewAtlas returns an atlas holding the given textures in order.
func NewAtlas(textures ...*Texture) *Atlas {
	return &Atlas{textures: textures}
}

// Add appends a texture.
func (a *Atlas) Add(t *Texture) {
	a.textures = append(a.textures, t)
}

// All returns the textures in project order.
func (a *Atlas) All() []*Texture {
	if a == nil {
		return nil
	}
	return a.textures
}

// Len returns the number of textures.
func (a *Atlas) Len() int {
	if a == nil {
		return 0
	}
	return len(a.textures)
}

// Lookup resolves a face reference by uuid, then by id, then by index.
func (a *Atlas) Lookup(ref string) (*Texture, bool) {
	if a == nil || ref == "" {
		return nil, false
	}
	for _, t := range a.textures {
		if t.UUID != "" && t.UUID == ref {
			return t, true
		}
	}
	for _, t := range a.textures {
		if t.ID == ref {
			return t, true
		}
	}
	if i, err := strconv.Atoi(ref); err == nil && i >= 0 && i < len(a.textures) {
		return a.textures[i], true
	}
	return nil, false
}
