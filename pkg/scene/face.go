package scene

import "fmt"

// Direction identifies one of the six faces of a cube.
type Direction int

const (
	North Direction = iota
	East
	South
	West
	Up
	Down
	NumDirections
)

var directionNames = [NumDirections]string{"north", "east", "south", "west", "up", "down"}

// String returns the face key used in model files.
func (d Direction) String() string {
	if d < 0 || d >= NumDirections {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// ParseDirection returns the direction for a face key.
func ParseDirection(s string) (Direction, bool) {
	for i, name := range directionNames {
		if name == s {
			return Direction(i), true
		}
	}
	return 0, false
}

// TextureState tells how a face refers to the atlas.
type TextureState int

const (
	// TextureUnset means no texture was assigned; the face still exists.
	TextureUnset TextureState = iota
	// TextureNone marks the face as removed. It is never exported.
	TextureNone
	// TextureAssigned means Ref names an atlas entry.
	TextureAssigned
)

// FaceTexture is a face's reference into the texture atlas.
type FaceTexture struct {
	State TextureState
	Ref   string
}

// Assigned returns a reference to the atlas entry ref.
func Assigned(ref string) FaceTexture {
	return FaceTexture{State: TextureAssigned, Ref: ref}
}

// Face is one side of a cube.
type Face struct {
	UV       [4]float64
	Rotation int    // 0, 90, 180 or 270
	CullFace string // Empty when the face is never culled
	Tint     int    // -1 when untinted
	Enabled  bool
	Texture  FaceTexture
}

// NewFace returns an enabled, untinted face without a texture.
func NewFace() *Face {
	return &Face{Tint: -1, Enabled: true}
}
