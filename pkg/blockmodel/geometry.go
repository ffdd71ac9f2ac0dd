package blockmodel

import (
	"github.com/go-gl/mathgl/mgl64"

	vmath "github.com/Faultbox/carpenter/pkg/math"
	"github.com/Faultbox/carpenter/pkg/scene"
)

// transformCube fills the geometry fields of an element: from/to re-centered
// on origin with inflate applied, the rotation descriptor and the shade and
// rotated flags.
func transformCube(c *scene.Cube, origin mgl64.Vec3) *Element {
	from, to := c.From, c.To
	if c.Inflate != 0 {
		from, to = vmath.Grow(from, to, c.Inflate)
	}

	el := &Element{
		From: from.Sub(origin),
		To:   to.Sub(origin),
	}

	pivot := c.Origin.Sub(origin)

	if !c.Shade {
		el.Shade = Bool(false)
	}
	if !vmath.AllEqual(c.Rotation, 0) || !vmath.AllEqual(pivot, 0) {
		axis := rotationAxis(c)
		el.Rotation = &Rotation{
			Angle:  c.Rotation[vmath.AxisIndex(axis)],
			Axis:   axis,
			Origin: pivot,
		}
	}
	if c.Rescale {
		if el.Rotation != nil {
			el.Rotation.Rescale = true
		} else {
			el.Rotation = &Rotation{
				Angle:   0,
				Axis:    storedAxis(c),
				Origin:  pivot,
				Rescale: true,
			}
		}
	}
	if vmath.NonZeroCount(c.Rotation) >= 2 {
		el.Rotated = true
	}
	return el
}

// rotationAxis returns the first rotated axis in x, y, z order, falling back
// to the axis the cube was last rotated around.
func rotationAxis(c *scene.Cube) string {
	if i, ok := vmath.FirstNonZero(c.Rotation); ok {
		return vmath.AxisLetter(i)
	}
	return storedAxis(c)
}

func storedAxis(c *scene.Cube) string {
	if vmath.AxisIndex(c.RotationAxis) < 0 {
		return "y"
	}
	return c.RotationAxis
}

// exportName returns the element name to write, or "" if it is omitted.
func exportName(c *scene.Cube, opts Options, s Settings) string {
	if !include(opts.CubeName, !s.Minified) {
		return ""
	}
	if c.Name == scene.DefaultCubeName {
		return ""
	}
	return c.Name
}
