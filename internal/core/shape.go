package core

import "math"

// Polygon is a closed outline given as vertices relative to its center.
type Polygon []Vec2

// MeanRadius returns the average vertex distance from the center.
func (p Polygon) MeanRadius() float64 {
	if len(p) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range p {
		sum += v.Len()
	}
	return sum / float64(len(p))
}

// MaxRadius returns the largest vertex distance from the center.
func (p Polygon) MaxRadius() float64 {
	r := 0.0
	for _, v := range p {
		r = math.Max(r, v.Len())
	}
	return r
}

// PolygonSpec bounds the random outline generator.
type PolygonSpec struct {
	MinSides, MaxSides   int
	MinRadius, MaxRadius int
	JitterMin, JitterMax float64 // per-vertex radius factor range
}

// RandomPolygon builds an irregular polygon: evenly spaced vertex angles, a base
// radius picked once, and every vertex radius scaled by its own jitter factor.
func RandomPolygon(r RNG, spec PolygonSpec) Polygon {
	sides := Between(r, spec.MinSides, spec.MaxSides)
	if sides < 3 {
		sides = 3
	}
	radius := float64(Between(r, spec.MinRadius, spec.MaxRadius))

	points := make(Polygon, sides)
	for i := range sides {
		angle := float64(i) / float64(sides) * 2 * math.Pi
		vr := radius * FloatBetween(r, spec.JitterMin, spec.JitterMax)
		points[i] = Vec2{X: math.Cos(angle) * vr, Y: math.Sin(angle) * vr}
	}
	return points
}
