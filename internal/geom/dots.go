package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// DefaultDotSpacing is the unitless density of the halftone field.
const DefaultDotSpacing = 16.0

// dotStepFactor converts spacing into a lattice step in degrees.
const dotStepFactor = 0.08

// StepSize returns the lattice step in degrees for a dot spacing.
func StepSize(dotSpacing float64) float64 {
	if dotSpacing <= 0 || math.IsNaN(dotSpacing) || math.IsInf(dotSpacing, 0) {
		dotSpacing = DefaultDotSpacing
	}
	return dotSpacing * dotStepFactor
}

// GenerateDots samples a regular lattice over the bounding box of g and
// keeps the points inside it. Lattice coordinates are computed from the
// box origin by index so the result does not depend on float accumulation.
func GenerateDots(g orb.Geometry, dotSpacing float64) []Dot {
	bb, ok := Bounds(g)
	if !ok {
		return nil
	}
	step := StepSize(dotSpacing)
	var dots []Dot
	for i := 0; ; i++ {
		lon := bb.MinX + float64(i)*step
		if lon > bb.MaxX {
			break
		}
		for j := 0; ; j++ {
			lat := bb.MinY + float64(j)*step
			if lat > bb.MaxY {
				break
			}
			if PointInFeature(orb.Point{lon, lat}, g) {
				dots = append(dots, Dot{Lon: lon, Lat: lat})
			}
		}
	}
	return dots
}

// GenerateAllDots concatenates the dot fields of every feature in order.
func GenerateAllDots(features []orb.Geometry, dotSpacing float64) []Dot {
	var all []Dot
	for _, g := range features {
		all = append(all, GenerateDots(g, dotSpacing)...)
	}
	return all
}
