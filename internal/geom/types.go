package geom

import "github.com/paulmach/orb"

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Dot is one halftone sample in lon/lat degrees.
type Dot struct {
	Lon float64
	Lat float64
}

// Land is the loaded land outline set. Geometries keep their source order
// and are not modified after decoding.
type Land struct {
	Features []orb.Geometry
}

// Polygons returns every polygon of the land set, flattening multipolygons.
func (l Land) Polygons() []orb.Polygon {
	var out []orb.Polygon
	for _, g := range l.Features {
		switch g := g.(type) {
		case orb.Polygon:
			out = append(out, g)
		case orb.MultiPolygon:
			out = append(out, g...)
		}
	}
	return out
}

// Bounds returns the lon/lat extent of g. The extent is planar: features
// crossing the antimeridian get a box spanning the whole longitude range.
// Empty geometries have no extent.
func Bounds(g orb.Geometry) (BBox, bool) {
	if g == nil {
		return BBox{}, false
	}
	b := g.Bound()
	if b.IsEmpty() {
		return BBox{}, false
	}
	return BBox{MinX: b.Min[0], MinY: b.Min[1], MaxX: b.Max[0], MaxY: b.Max[1]}, true
}
