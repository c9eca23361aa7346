package geom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// ParseWKT parses one WKT geometry into a Land set.
// Supported: POLYGON, MULTIPOLYGON.
func ParseWKT(s string) (Land, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Land{}, errors.New("empty wkt")
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return Land{}, fmt.Errorf("wkt: %w", err)
	}
	switch g.(type) {
	case orb.Polygon, orb.MultiPolygon:
	default:
		return Land{}, fmt.Errorf("wkt: %s is not a land geometry", g.GeoJSONType())
	}
	return Land{Features: []orb.Geometry{g}}, nil
}
