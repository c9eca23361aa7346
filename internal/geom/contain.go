package geom

import "github.com/paulmach/orb"

// PointInPolygon reports whether p lies inside ring using even-odd ray
// casting. The ring is closed implicitly; a repeated closing vertex adds a
// zero-length edge and does not change the result. Longitudes are treated
// as planar, so rings crossing the antimeridian are not handled.
func PointInPolygon(p orb.Point, ring orb.Ring) bool {
	x, y := p[0], p[1]
	inside := false
	for i, j := 0, len(ring)-1; i < len(ring); j, i = i, i+1 {
		xi, yi := ring[i][0], ring[i][1]
		xj, yj := ring[j][0], ring[j][1]
		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// PointInFeature reports whether p is inside a Polygon or MultiPolygon,
// honouring holes. Every other geometry type yields false.
func PointInFeature(p orb.Point, g orb.Geometry) bool {
	switch g := g.(type) {
	case orb.Polygon:
		return inPolygon(p, g)
	case orb.MultiPolygon:
		for _, poly := range g {
			if inPolygon(p, poly) {
				return true
			}
		}
	}
	return false
}

// first ring outer, following rings holes
func inPolygon(p orb.Point, poly orb.Polygon) bool {
	if len(poly) == 0 || !PointInPolygon(p, poly[0]) {
		return false
	}
	for _, hole := range poly[1:] {
		if PointInPolygon(p, hole) {
			return false
		}
	}
	return true
}
