package blockmodel

import (
	"go.uber.org/zap"

	"github.com/Faultbox/carpenter/pkg/scene"
)

// component accumulates the output of one top-level group.
type component struct {
	group    *scene.Group
	elements []*Element
	textures []*scene.Texture
}

func (c *component) useTexture(t *scene.Texture) {
	if !c.uses(t) {
		c.textures = append(c.textures, t)
	}
}

func (c *component) uses(t *scene.Texture) bool {
	for _, u := range c.textures {
		if u == t {
			return true
		}
	}
	return false
}

// walker visits the cubes of one top-level group.
type walker struct {
	faces    *faceResolver
	settings Settings
	opts     Options
	log      *zap.Logger
}

// walk visits nodes depth first. Cubes of nested groups are placed relative
// to the top-level group's origin.
func (w *walker) walk(comp *component, nodes []scene.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *scene.Cube:
			w.computeCube(comp, n)
		case *scene.Group:
			w.walk(comp, n.Children)
		}
	}
}

func (w *walker) computeCube(comp *component, c *scene.Cube) {
	if !c.Export {
		return
	}

	el := transformCube(c, comp.group.Origin)
	el.Name = exportName(c, w.opts, w.settings)
	if el.Rotated {
		w.log.Warn("cube rotates around more than one axis, only one is exported",
			zap.String("group", comp.group.Name),
			zap.String("cube", c.Name),
			zap.String("axis", el.Rotation.Axis))
	}

	faces := NewOrderedMap[*Face]()
	textured := false
	for d := scene.North; d < scene.NumDirections; d++ {
		out, tex := w.faces.resolve(c.Face(d))
		if out == nil {
			continue
		}
		if tex != nil {
			comp.useTexture(tex)
			textured = true
		}
		faces.Add(d.String(), out)
	}
	if !textured {
		color := c.Color
		el.Color = &color
	}
	el.Faces = faces

	if faces.Len() == 0 {
		w.log.Debug("cube has no faces, skipped",
			zap.String("group", comp.group.Name),
			zap.String("cube", c.Name))
		return
	}
	comp.elements = append(comp.elements, el)
}
