package blockmodel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestLimiterTest(t *testing.T) {
	tests := []struct {
		name    string
		from    mgl64.Vec3
		to      mgl64.Vec3
		inflate float64
		want    bool
	}{
		{"inside", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{16, 16, 16}, 0, false},
		{"exactly at boundary", mgl64.Vec3{-16, -16, -16}, mgl64.Vec3{32, 32, 32}, 0, false},
		{"past high by epsilon", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{16, 32.0001, 16}, 0, true},
		{"past low by epsilon", mgl64.Vec3{0, 0, -16.0001}, mgl64.Vec3{16, 16, 16}, 0, true},
		{"inflate pushes out", mgl64.Vec3{-16, 0, 0}, mgl64.Vec3{8, 8, 8}, 0.5, true},
		{"deflate pulls in", mgl64.Vec3{-16.5, 0, 0}, mgl64.Vec3{8, 8, 8}, -0.5, false},
		{"entirely above", mgl64.Vec3{40, 0, 0}, mgl64.Vec3{48, 8, 8}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := box("cube", tt.from, tt.to)
			c.Inflate = tt.inflate
			assert.Equal(t, tt.want, DefaultLimiter.Test(c, nil))
		})
	}
}

func TestLimiterTest_DoesNotMutate(t *testing.T) {
	c := box("cube", mgl64.Vec3{-20, 0, 0}, mgl64.Vec3{40, 8, 8})
	DefaultLimiter.Test(c, nil)
	assert.Equal(t, mgl64.Vec3{-20, 0, 0}, c.From)
	assert.Equal(t, mgl64.Vec3{40, 8, 8}, c.To)
}

func TestLimiterMove(t *testing.T) {
	tests := []struct {
		name     string
		from     mgl64.Vec3
		to       mgl64.Vec3
		inflate  float64
		wantFrom mgl64.Vec3
		wantTo   mgl64.Vec3
	}{
		{"inside untouched", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 4, 4}, 0,
			mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 4, 4}},
		{"shift down", mgl64.Vec3{30, 0, 0}, mgl64.Vec3{36, 4, 4}, 0,
			mgl64.Vec3{26, 0, 0}, mgl64.Vec3{32, 4, 4}},
		{"shift up", mgl64.Vec3{0, -20, 0}, mgl64.Vec3{4, -10, 4}, 0,
			mgl64.Vec3{0, -16, 0}, mgl64.Vec3{4, -6, 4}},
		{"shift with inflate", mgl64.Vec3{0, 0, 28}, mgl64.Vec3{4, 4, 32}, 1,
			mgl64.Vec3{0, 0, 27}, mgl64.Vec3{4, 4, 31}},
		{"every axis", mgl64.Vec3{-18, 30, -17}, mgl64.Vec3{-10, 34, -1}, 0,
			mgl64.Vec3{-16, 28, -16}, mgl64.Vec3{-8, 32, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := box("cube", tt.from, tt.to)
			c.Inflate = tt.inflate
			size := c.Size()

			DefaultLimiter.Move(c, nil)

			assert.Equal(t, tt.wantFrom, c.From)
			assert.Equal(t, tt.wantTo, c.To)
			assert.Equal(t, size, c.Size())
			assert.False(t, DefaultLimiter.Test(c, nil))
		})
	}
}

func TestLimiterMove_Oversized(t *testing.T) {
	// 60 units along x cannot fit in a 48 unit domain.
	c := box("cube", mgl64.Vec3{-10, 0, 0}, mgl64.Vec3{50, 4, 4})

	DefaultLimiter.Move(c, nil)

	assert.Equal(t, mgl64.Vec3{-16, 0, 0}, c.From)
	assert.Equal(t, mgl64.Vec3{32, 4, 4}, c.To)

	low := box("cube", mgl64.Vec3{-40, 0, 0}, mgl64.Vec3{20, 4, 4})

	DefaultLimiter.Move(low, nil)

	assert.Equal(t, mgl64.Vec3{-16, 0, 0}, low.From)
	assert.Equal(t, mgl64.Vec3{32, 4, 4}, low.To)
}

func TestLimiterClamp(t *testing.T) {
	c := box("cube", mgl64.Vec3{-20, 0, 10}, mgl64.Vec3{40, 8, 12})
	before := c.Size()

	DefaultLimiter.Clamp(c, nil)

	assert.Equal(t, mgl64.Vec3{-16, 0, 10}, c.From)
	assert.Equal(t, mgl64.Vec3{32, 8, 12}, c.To)
	for i := 0; i < 3; i++ {
		assert.LessOrEqual(t, c.Size()[i], before[i])
	}
}

func TestLimiterClamp_Inflate(t *testing.T) {
	c := box("cube", mgl64.Vec3{-16, 0, 0}, mgl64.Vec3{32, 4, 4})
	c.Inflate = 1

	DefaultLimiter.Clamp(c, nil)

	assert.Equal(t, mgl64.Vec3{-15, 0, 0}, c.From)
	assert.Equal(t, mgl64.Vec3{31, 4, 4}, c.To)
	assert.False(t, DefaultLimiter.Test(c, nil))
}

func TestLimiter_ValuesOverride(t *testing.T) {
	c := box("cube", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 4, 4})
	from := mgl64.Vec3{30, 0, 0}
	to := mgl64.Vec3{36, 4, 4}
	inflate := 0.0
	v := &BoxValues{From: &from, To: &to, Inflate: &inflate}

	assert.False(t, DefaultLimiter.Test(c, nil))
	assert.True(t, DefaultLimiter.Test(c, v))

	DefaultLimiter.Move(c, v)

	assert.Equal(t, mgl64.Vec3{26, 0, 0}, from)
	assert.Equal(t, mgl64.Vec3{32, 4, 4}, to)
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, c.From, "cube must not change when values are given")

	// Only inflate overridden: the cube's own corners are read and moved.
	big := 18.0
	DefaultLimiter.Clamp(c, &BoxValues{Inflate: &big})
	assert.Equal(t, mgl64.Vec3{2, 2, 2}, c.From)
	assert.Equal(t, mgl64.Vec3{4, 4, 4}, c.To)
}

func TestLimiter_CustomDomain(t *testing.T) {
	l := Limiter{Low: 0, High: 16}
	c := box("cube", mgl64.Vec3{-2, 0, 0}, mgl64.Vec3{2, 2, 2})

	assert.True(t, l.Test(c, nil))
	l.Move(c, nil)
	assert.Equal(t, mgl64.Vec3{0, 0, 0}, c.From)
	assert.Equal(t, mgl64.Vec3{4, 2, 2}, c.To)
}
