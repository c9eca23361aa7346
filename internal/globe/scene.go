package globe

import "globeview/internal/geom"

// Layers toggles the optional parts of a frame.
type Layers struct {
	Graticule bool
	Outlines  bool
	Dots      bool
}

// AllLayers shows everything.
var AllLayers = Layers{Graticule: true, Outlines: true, Dots: true}

// Scene is everything Render draws besides the view state. Land and Dots
// are fixed once loaded.
type Scene struct {
	Land    geom.Land
	Dots    []geom.Dot
	Markers []Marker
	Palette Palette
	Layers  Layers
	// Label returns the text drawn for a marker; nil draws Marker.Name.
	Label func(Marker) string

	rings [][][2]float64
}

// NewScene returns a scene without land data, showing the fixed markers.
func NewScene(t Theme) *Scene {
	return &Scene{
		Markers: Locations,
		Palette: PaletteFor(t),
		Layers:  AllLayers,
	}
}

// SetLand installs the land set and builds its halftone dot field. It is
// meant to run once, when the data arrives.
func (s *Scene) SetLand(land geom.Land, dotSpacing float64) {
	s.Land = land
	s.Dots = geom.GenerateAllDots(land.Features, dotSpacing)
	s.rings = s.rings[:0]
	for _, poly := range land.Polygons() {
		for _, ring := range poly {
			pts := make([][2]float64, 0, len(ring)+1)
			for _, p := range ring {
				pts = append(pts, [2]float64{p[0], p[1]})
			}
			if len(pts) > 0 && pts[0] != pts[len(pts)-1] {
				pts = append(pts, pts[0])
			}
			s.rings = append(s.rings, pts)
		}
	}
}

// Loaded reports whether land data has been installed.
func (s *Scene) Loaded() bool { return len(s.Land.Features) > 0 }

func (s *Scene) label(m Marker) string {
	if s.Label == nil {
		return m.Name
	}
	return s.Label(m)
}
