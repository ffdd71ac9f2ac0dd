package blockmodel

import (
	"fmt"

	vmath "github.com/Faultbox/carpenter/pkg/math"
	"github.com/Faultbox/carpenter/pkg/scene"
)

// IssueKind classifies a Lint finding.
type IssueKind int

const (
	IssueOutOfBounds IssueKind = iota
	IssueMultiAxisRotation
	IssueIllegalAngle
)

// String returns a short name for the issue kind.
func (k IssueKind) String() string {
	switch k {
	case IssueOutOfBounds:
		return "out-of-bounds"
	case IssueMultiAxisRotation:
		return "multi-axis-rotation"
	case IssueIllegalAngle:
		return "illegal-angle"
	default:
		return fmt.Sprintf("IssueKind(%d)", int(k))
	}
}

// Issue is a cube that will not export faithfully.
type Issue struct {
	Group   string
	Cube    *scene.Cube
	Kind    IssueKind
	Message string
}

// LegalAngles are the rotation angles block models can encode.
var LegalAngles = []float64{-45, -22.5, 0, 22.5, 45}

func legalAngle(a float64) bool {
	for _, l := range LegalAngles {
		if a == l {
			return true
		}
	}
	return false
}

// Lint reports exportable cubes that leave the domain of l, rotate around
// more than one axis or use an angle outside LegalAngles.
func Lint(p *scene.Project, l Limiter) []Issue {
	var issues []Issue
	scene.Walk(p.Root, func(top *scene.Group, c *scene.Cube) {
		if !c.Export {
			return
		}
		group := ""
		if top != nil {
			group = top.Name
		}
		if l.Test(c, nil) {
			issues = append(issues, Issue{
				Group:   group,
				Cube:    c,
				Kind:    IssueOutOfBounds,
				Message: fmt.Sprintf("box %v..%v (inflate %g) leaves [%g, %g]", c.From, c.To, c.Inflate, l.Low, l.High),
			})
		}
		if vmath.NonZeroCount(c.Rotation) >= 2 {
			issues = append(issues, Issue{
				Group:   group,
				Cube:    c,
				Kind:    IssueMultiAxisRotation,
				Message: fmt.Sprintf("rotation %v is exported around %s only", c.Rotation, rotationAxis(c)),
			})
		}
		for i, a := range c.Rotation {
			if !legalAngle(a) {
				issues = append(issues, Issue{
					Group:   group,
					Cube:    c,
					Kind:    IssueIllegalAngle,
					Message: fmt.Sprintf("%s rotation %g is not one of %v", vmath.AxisLetter(i), a, LegalAngles),
				})
			}
		}
	})
	return issues
}
