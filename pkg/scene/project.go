package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	vmath "github.com/Faultbox/carpenter/pkg/math"
)

// DisplaySlots lists the recognized display contexts in output order.
var DisplaySlots = []string{
	"thirdperson_righthand",
	"thirdperson_lefthand",
	"firstperson_righthand",
	"firstperson_lefthand",
	"ground",
	"gui",
	"head",
	"fixed",
}

// IsDisplaySlot returns true if name is a recognized display slot.
func IsDisplaySlot(name string) bool {
	for _, s := range DisplaySlots {
		if s == name {
			return true
		}
	}
	return false
}

// DisplaySlot holds the item transform for one display context.
type DisplaySlot struct {
	Rotation    mgl64.Vec3
	Translation mgl64.Vec3
	Scale       mgl64.Vec3
	Mirror      [3]bool
}

// NewDisplaySlot returns an identity transform.
func NewDisplaySlot() *DisplaySlot {
	return &DisplaySlot{Scale: mgl64.Vec3{1, 1, 1}}
}

// DisplayTransform is the exported form of a display slot. Nil parts are
// left at their defaults by the game.
type DisplayTransform struct {
	Rotation    *mgl64.Vec3 `json:"rotation,omitempty"`
	Translation *mgl64.Vec3 `json:"translation,omitempty"`
	Scale       *mgl64.Vec3 `json:"scale,omitempty"`
}

// Export returns the parts of the slot that differ from the identity
// transform, or nil if none do. Mirrored axes are written as negative scale.
func (s *DisplaySlot) Export() *DisplayTransform {
	if s == nil {
		return nil
	}
	var out DisplayTransform
	empty := true
	if !vmath.AllEqual(s.Rotation, 0) {
		r := s.Rotation
		out.Rotation = &r
		empty = false
	}
	if !vmath.AllEqual(s.Translation, 0) {
		t := s.Translation
		out.Translation = &t
		empty = false
	}
	mirrored := s.Mirror[0] || s.Mirror[1] || s.Mirror[2]
	if !vmath.AllEqual(s.Scale, 1) || mirrored {
		sc := s.Scale
		for i, m := range s.Mirror {
			if m {
				sc[i] = -sc[i]
			}
		}
		out.Scale = &sc
		empty = false
	}
	if empty {
		return nil
	}
	return &out
}

// FurnitureProps are the export choices remembered by a project.
type FurnitureProps struct {
	Destination string `json:"destination"`
	Textures    bool   `json:"textures"`
	ItemModel   string `json:"item_model"`
}

// DefaultFurnitureProps returns the props of a project that was never exported.
func DefaultFurnitureProps() FurnitureProps {
	return FurnitureProps{Textures: true, ItemModel: "none"}
}

// Project is a loaded model with its textures and settings.
type Project struct {
	Name             string
	Format           string
	Root             []Node
	Textures         *Atlas
	AmbientOcclusion bool
	FrontGUILight    bool
	Resolution       Resolution
	Display          map[string]*DisplaySlot
	Furniture        FurnitureProps
}

// NewProject returns an empty project with default settings.
func NewProject(name string) *Project {
	return &Project{
		Name:             name,
		Textures:         NewAtlas(),
		AmbientOcclusion: true,
		Resolution:       DefaultResolution,
		Display:          make(map[string]*DisplaySlot),
		Furniture:        DefaultFurnitureProps(),
	}
}

// CubeCount returns the number of cubes in the project.
func (p *Project) CubeCount() int {
	n := 0
	Walk(p.Root, func(*Group, *Cube) { n++ })
	return n
}
