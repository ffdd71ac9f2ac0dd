// Package scene describes the input of the block model compiler: a tree of
// groups and cubes, the texture atlas they reference and the project-wide
// settings stored alongside them.
package scene

import "github.com/go-gl/mathgl/mgl64"

// DefaultCubeName is the placeholder name given to new cubes.
const DefaultCubeName = "cube"

// Node is either a *Group or a *Cube.
type Node interface {
	node()
}

// Group is a named container. Top-level groups become output documents.
type Group struct {
	Name     string
	UUID     string
	Origin   mgl64.Vec3
	Children []Node
}

func (*Group) node() {}

// Cube is a textured box.
type Cube struct {
	Name         string
	UUID         string
	From         mgl64.Vec3
	To           mgl64.Vec3
	Origin       mgl64.Vec3 // Rotation pivot
	Rotation     mgl64.Vec3 // Degrees around x, y, z
	RotationAxis string     // Last axis the cube was rotated around
	Inflate      float64
	Shade        bool
	Rescale      bool
	Export       bool
	Color        int
	Faces        [NumDirections]*Face
}

func (*Cube) node() {}

// NewCube returns a cube with default flags and six empty faces.
func NewCube(name string) *Cube {
	c := &Cube{
		Name:         name,
		RotationAxis: "y",
		Shade:        true,
		Export:       true,
	}
	for d := range c.Faces {
		c.Faces[d] = NewFace()
	}
	return c
}

// Face returns the face in the given direction, or nil.
func (c *Cube) Face(d Direction) *Face {
	if d < 0 || d >= NumDirections {
		return nil
	}
	return c.Faces[d]
}

// Size returns the box dimensions, ignoring inflate.
func (c *Cube) Size() mgl64.Vec3 {
	return c.To.Sub(c.From)
}

// Walk calls fn for every cube below the given nodes, depth first, with the
// top-level group the cube belongs to. Cubes outside any group get a nil group.
func Walk(nodes []Node, fn func(top *Group, c *Cube)) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Group:
			walkGroup(n, n.Children, fn)
		case *Cube:
			fn(nil, n)
		}
	}
}

func walkGroup(top *Group, nodes []Node, fn func(top *Group, c *Cube)) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *Group:
			walkGroup(top, n.Children, fn)
		case *Cube:
			fn(top, n)
		}
	}
}

// TopGroups returns the groups at the root of the tree, in order.
func TopGroups(nodes []Node) []*Group {
	var groups []*Group
	for _, n := range nodes {
		if g, ok := n.(*Group); ok {
			groups = append(groups, g)
		}
	}
	return groups
}
