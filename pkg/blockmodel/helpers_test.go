package blockmodel

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/carpenter/pkg/scene"
)

// box returns a cube spanning from..to with every face removed.
func box(name string, from, to mgl64.Vec3) *scene.Cube {
	c := scene.NewCube(name)
	c.From = from
	c.To = to
	for _, f := range c.Faces {
		f.Texture = scene.FaceTexture{State: scene.TextureNone}
	}
	return c
}

// withFace gives c a face in direction d using texture ref and uv.
func withFace(c *scene.Cube, d scene.Direction, ref string, uv [4]float64) *scene.Cube {
	f := scene.NewFace()
	f.UV = uv
	if ref != "" {
		f.Texture = scene.Assigned(ref)
	}
	c.Faces[d] = f
	return c
}

func group(name string, origin mgl64.Vec3, children ...scene.Node) *scene.Group {
	return &scene.Group{Name: name, Origin: origin, Children: children}
}
