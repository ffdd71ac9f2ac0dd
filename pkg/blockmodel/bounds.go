package blockmodel

import (
	"github.com/go-gl/mathgl/mgl64"

	vmath "github.com/Faultbox/carpenter/pkg/math"
	"github.com/Faultbox/carpenter/pkg/scene"
)

// Limiter keeps cubes inside the coordinate domain [Low, High].
type Limiter struct {
	Low  float64
	High float64
}

// DefaultLimiter is the domain block models accept.
var DefaultLimiter = Limiter{Low: -16, High: 32}

// BoxValues overrides the fields a Limiter reads from a cube. Nil fields
// fall back to the cube's own values. Move and Clamp modify whichever
// vectors were read.
type BoxValues struct {
	From    *mgl64.Vec3
	To      *mgl64.Vec3
	Inflate *float64
}

func (l Limiter) box(c *scene.Cube, v *BoxValues) (from, to *mgl64.Vec3, inflate float64) {
	if v != nil && v.From != nil {
		from = v.From
	} else {
		from = &c.From
	}
	if v != nil && v.To != nil {
		to = v.To
	} else {
		to = &c.To
	}
	if v != nil && v.Inflate != nil {
		inflate = *v.Inflate
	} else {
		inflate = c.Inflate
	}
	return from, to, inflate
}

// Test returns true if the inflated box leaves the domain on any axis.
func (l Limiter) Test(c *scene.Cube, v *BoxValues) bool {
	from, to, inflate := l.box(c, v)
	for i := 0; i < 3; i++ {
		if to[i]+inflate > l.High || to[i]+inflate < l.Low ||
			from[i]-inflate > l.High || from[i]-inflate < l.Low {
			return true
		}
	}
	return false
}

// Move shifts the box back into the domain, keeping its size. A box larger
// than the domain has its trailing edge pinned to the domain boundary.
func (l Limiter) Move(c *scene.Cube, v *BoxValues) {
	from, to, inflate := l.box(c, v)
	for i := 0; i < 3; i++ {
		if overlap := to[i] + inflate - l.High; overlap > 0 {
			from[i] -= overlap
			to[i] -= overlap
			if from[i]-inflate < l.Low {
				from[i] = l.Low + inflate
			}
			continue
		}
		if overlap := from[i] - inflate - l.Low; overlap < 0 {
			from[i] -= overlap
			to[i] -= overlap
			if to[i]+inflate > l.High {
				to[i] = l.High - inflate
			}
		}
	}
}

// Clamp limits both corners to the domain independently, which may shrink
// the box.
func (l Limiter) Clamp(c *scene.Cube, v *BoxValues) {
	from, to, inflate := l.box(c, v)
	for i := 0; i < 3; i++ {
		from[i] = vmath.Clamp(from[i]-inflate, l.Low, l.High) + inflate
		to[i] = vmath.Clamp(to[i]+inflate, l.Low, l.High) - inflate
	}
}
