// Package layout maps residues onto a circle and trims directed edges to
// marker boundaries. All functions are pure; the caller owns the canvas
// coordinate system.
package layout

import "math"

// Point is a position in canvas coordinates (y grows downward).
type Point struct {
	X, Y float64
}

// Config describes the drawing region: circle center and radius, plus the
// fixed radius of each residue marker.
type Config struct {
	CenterX      float64
	CenterY      float64
	Radius       float64
	MarkerRadius float64
}

// Angle returns the angle for a residue: residue 0 sits at the top of the
// circle and angles advance clockwise in screen coordinates.
func Angle(value, modulus int64) float64 {
	return float64(value)/float64(modulus)*2*math.Pi - math.Pi/2
}

// PointForResidue places a residue in [0, modulus) on the circle.
func PointForResidue(value, modulus int64, cfg Config) Point {
	a := Angle(value, modulus)
	return Point{
		X: cfg.CenterX + cfg.Radius*math.Cos(a),
		Y: cfg.CenterY + cfg.Radius*math.Sin(a),
	}
}

// EdgePoint returns the point on the marker boundary around center, in the
// direction of towards. A zero-distance request returns center unchanged so
// self-loop edges never divide by zero.
func EdgePoint(center, towards Point, markerRadius float64) Point {
	dx := towards.X - center.X
	dy := towards.Y - center.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return center
	}
	return Point{
		X: center.X + dx/dist*markerRadius,
		Y: center.Y + dy/dist*markerRadius,
	}
}

// barbAngle is the half-opening of an arrowhead.
const barbAngle = 0.45

// Arrowhead returns the two barb points of an arrow ending at tip, coming
// from the direction of from, with barbs of the given length. A degenerate
// zero-length edge yields both barbs at the tip.
func Arrowhead(tip, from Point, size float64) (Point, Point) {
	dx := from.X - tip.X
	dy := from.Y - tip.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return tip, tip
	}
	base := math.Atan2(dy, dx)
	a := Point{
		X: tip.X + size*math.Cos(base+barbAngle),
		Y: tip.Y + size*math.Sin(base+barbAngle),
	}
	b := Point{
		X: tip.X + size*math.Cos(base-barbAngle),
		Y: tip.Y + size*math.Sin(base-barbAngle),
	}
	return a, b
}
