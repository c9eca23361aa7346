package globe

import (
	"math"
	"time"
)

// maximum angular gap between projected vertices of a drawn line, degrees
const densifyStep = 2.0

var graticuleLines = buildGraticule()

// Render draws one frame of st and sc onto c. It only reads its inputs.
func Render(st State, sc *Scene, c Canvas, now time.Time) {
	c.Clear()
	proj := st.Projection()
	sf := st.ScaleFactor()
	pal := sc.Palette

	c.StrokeCircle(st.Width/2, st.Height/2, st.Scale, Paint{Color: pal.Outline, Alpha: 1, Width: 2 * sf})

	if !sc.Loaded() {
		return
	}

	if sc.Layers.Graticule {
		p := Paint{Color: pal.Graticule, Alpha: 0.25, Width: 1 * sf}
		for _, line := range graticuleLines {
			drawGeoLine(c, proj, line, p)
		}
	}

	if sc.Layers.Outlines {
		p := Paint{Color: pal.Land, Alpha: 1, Width: 1 * sf}
		for _, ring := range sc.rings {
			drawGeoLine(c, proj, ring, p)
		}
	}

	if sc.Layers.Dots {
		p := Paint{Color: pal.Dot, Alpha: 1}
		r := 1.2 * sf
		for _, d := range sc.Dots {
			x, y, vis := proj.Project(d.Lon, d.Lat)
			if !vis || x < 0 || x > st.Width || y < 0 || y > st.Height {
				continue
			}
			c.FillCircle(x, y, r, p)
		}
	}

	t := float64(now.UnixNano()) / float64(time.Second)
	pulse := 1 + math.Sin(t*2)*0.3
	for _, m := range sc.Markers {
		if !proj.Visible(m.Lon, m.Lat) {
			continue
		}
		x, y, _ := proj.Project(m.Lon, m.Lat)
		c.FillCircle(x, y, 12*sf*pulse, Paint{Color: pal.Marker, Alpha: 0.2})
		c.FillCircle(x, y, 8*sf, Paint{Color: pal.Marker, Alpha: 0.5})
		c.FillCircle(x, y, 4*sf, Paint{Color: pal.Marker, Alpha: 1})
		c.Line(x, y, x, y-20*sf, Paint{Color: pal.Marker, Alpha: 1, Width: 2 * sf})
		c.Text(x, y-25*sf, sc.label(m), Paint{Color: pal.Text, Alpha: 1})
	}
}

// drawGeoLine projects a lon/lat polyline, densifying long edges and
// splitting it where it passes behind the horizon.
func drawGeoLine(c Canvas, proj Projection, line [][2]float64, p Paint) {
	var run [][2]float64
	flush := func() {
		if len(run) >= 2 {
			c.Polyline(run, p)
		}
		run = nil
	}
	visit := func(lon, lat float64) {
		x, y, vis := proj.Project(lon, lat)
		if !vis {
			flush()
			return
		}
		run = append(run, [2]float64{x, y})
	}
	for i, pt := range line {
		if i == 0 {
			visit(pt[0], pt[1])
			continue
		}
		prev := line[i-1]
		dLon, dLat := pt[0]-prev[0], pt[1]-prev[1]
		n := int(math.Ceil(math.Max(math.Abs(dLon), math.Abs(dLat)) / densifyStep))
		for k := 1; k < n; k++ {
			f := float64(k) / float64(n)
			visit(prev[0]+dLon*f, prev[1]+dLat*f)
		}
		visit(pt[0], pt[1])
	}
	flush()
}

// buildGraticule returns meridians every 10 degrees between +-80 latitude,
// full meridians every 90 degrees, parallels every 10 degrees up to +-80.
func buildGraticule() [][][2]float64 {
	var lines [][][2]float64
	for lon := -180.0; lon < 180; lon += 10 {
		lo, hi := -80.0, 80.0
		if math.Mod(lon, 90) == 0 {
			lo, hi = -90, 90
		}
		var l [][2]float64
		for lat := lo; lat <= hi; lat += densifyStep {
			l = append(l, [2]float64{lon, lat})
		}
		lines = append(lines, l)
	}
	for lat := -80.0; lat <= 80; lat += 10 {
		var l [][2]float64
		for lon := -180.0; lon <= 180; lon += densifyStep {
			l = append(l, [2]float64{lon, lat})
		}
		lines = append(lines, l)
	}
	return lines
}
