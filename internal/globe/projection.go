package globe

import (
	"math"

	"github.com/golang/geo/s2"
)

const (
	deg = math.Pi / 180
	// ClipAngle is the angular radius of the drawn hemisphere in degrees.
	ClipAngle = 90.0
)

// Projection is an orthographic projection with a two-axis rotation.
// Lambda rotates around the polar axis, Phi tilts toward the viewer, both
// in degrees. The point (-Lambda, -Phi) lands at the screen center.
type Projection struct {
	Lambda float64
	Phi    float64
	Scale  float64
	TX, TY float64
}

// rotate applies the view rotation to lon/lat (radians in, radians out).
func (p Projection) rotate(lon, lat float64) (float64, float64) {
	lon += p.Lambda * deg
	sinDPhi, cosDPhi := math.Sincos(p.Phi * deg)
	sinLon, cosLon := math.Sincos(lon)
	sinLat, cosLat := math.Sincos(lat)
	x := cosLon * cosLat
	y := sinLon * cosLat
	z := sinLat
	k := z*cosDPhi + x*sinDPhi
	return math.Atan2(y, x*cosDPhi-z*sinDPhi), math.Asin(clampUnit(k))
}

func (p Projection) unrotate(lon, lat float64) (float64, float64) {
	sinDPhi, cosDPhi := math.Sincos(p.Phi * deg)
	sinLon, cosLon := math.Sincos(lon)
	sinLat, cosLat := math.Sincos(lat)
	x := cosLon * cosLat
	y := sinLon * cosLat
	z := sinLat
	l := math.Atan2(y, x*cosDPhi+z*sinDPhi)
	return l - p.Lambda*deg, math.Asin(clampUnit(z*cosDPhi - x*sinDPhi))
}

// Project maps lon/lat degrees to screen coordinates. visible is false for
// points on the far hemisphere; their coordinates are still returned.
func (p Projection) Project(lon, lat float64) (x, y float64, visible bool) {
	l, f := p.rotate(lon*deg, lat*deg)
	sinL, cosL := math.Sincos(l)
	sinF, cosF := math.Sincos(f)
	x = p.TX + p.Scale*cosF*sinL
	y = p.TY - p.Scale*sinF
	return x, y, cosF*cosL > 0
}

// Invert maps a screen point back to lon/lat degrees. ok is false outside
// the globe disc.
func (p Projection) Invert(x, y float64) (lon, lat float64, ok bool) {
	if p.Scale <= 0 {
		return 0, 0, false
	}
	px := (x - p.TX) / p.Scale
	py := (p.TY - y) / p.Scale
	rho := math.Hypot(px, py)
	if rho > 1 {
		return 0, 0, false
	}
	var l, f float64
	if rho > 0 {
		c := math.Asin(rho)
		sinC, cosC := math.Sincos(c)
		l = math.Atan2(px*sinC, rho*cosC)
		f = math.Asin(clampUnit(py * sinC / rho))
	}
	l, f = p.unrotate(l, f)
	return wrapLon(l / deg), f / deg, true
}

// Center returns the lon/lat at the middle of the disc.
func (p Projection) Center() (lon, lat float64) {
	return wrapLon(-p.Lambda), -p.Phi
}

// Visible reports whether lon/lat is on the near hemisphere, judged by the
// great-circle distance from the view center.
func (p Projection) Visible(lon, lat float64) bool {
	clon, clat := p.Center()
	return AngularDistance(lon, lat, clon, clat) < ClipAngle*deg
}

// AngularDistance is the great-circle distance between two lon/lat points
// in radians.
func AngularDistance(lon1, lat1, lon2, lat2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians()
}

func wrapLon(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
