package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

// DecodeLand parses a GeoJSON FeatureCollection, Feature or bare geometry.
// Features whose geometry cannot be decoded are skipped and counted.
func DecodeLand(data []byte) (Land, int, error) {
	var head struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Land{}, 0, fmt.Errorf("geojson: %w", err)
	}
	var land Land
	skipped := 0
	switch head.Type {
	case "FeatureCollection":
		for _, raw := range head.Features {
			f, err := geojson.UnmarshalFeature(raw)
			if err != nil || f.Geometry == nil {
				skipped++
				continue
			}
			land.Features = append(land.Features, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return Land{}, 0, fmt.Errorf("geojson feature: %w", err)
		}
		if f.Geometry != nil {
			land.Features = append(land.Features, f.Geometry)
		}
	case "":
		return Land{}, 0, errors.New("invalid geojson: missing type")
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return Land{}, 0, fmt.Errorf("geojson geometry: %w", err)
		}
		land.Features = append(land.Features, g.Geometry())
	}
	if len(land.Features) == 0 {
		return Land{}, skipped, errors.New("no geometries found")
	}
	return land, skipped, nil
}

// LoadGeo reads a GeoJSON file into a Land set.
func LoadGeo(path string) (Land, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Land{}, err
	}
	land, _, err := DecodeLand(data)
	return land, err
}
