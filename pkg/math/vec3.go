// Package math provides vector helpers for block model geometry.
package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis letters in scan order.
var axisLetters = [3]string{"x", "y", "z"}

// AxisLetter returns "x", "y" or "z" for axis index 0..2.
func AxisLetter(i int) string {
	if i < 0 || i > 2 {
		return ""
	}
	return axisLetters[i]
}

// AxisIndex returns the index for an axis letter, or -1 if unknown.
func AxisIndex(letter string) int {
	for i, l := range axisLetters {
		if l == letter {
			return i
		}
	}
	return -1
}

// AllEqual returns true if every component of v equals x.
func AllEqual(v mgl64.Vec3, x float64) bool {
	return v[0] == x && v[1] == x && v[2] == x
}

// NonZeroCount returns the number of non-zero components.
func NonZeroCount(v mgl64.Vec3) int {
	n := 0
	for _, c := range v {
		if c != 0 {
			n++
		}
	}
	return n
}

// FirstNonZero returns the index of the first non-zero component in x, y, z order.
func FirstNonZero(v mgl64.Vec3) (int, bool) {
	for i, c := range v {
		if c != 0 {
			return i, true
		}
	}
	return -1, false
}

// Grow returns from and to pushed apart by amount on every axis.
func Grow(from, to mgl64.Vec3, amount float64) (mgl64.Vec3, mgl64.Vec3) {
	d := mgl64.Vec3{amount, amount, amount}
	return from.Sub(d), to.Add(d)
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Round rounds x to the given number of decimal places.
func Round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
