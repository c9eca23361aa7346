// Package land loads the land outline set rendered by the globe, either
// over HTTP or from a local GeoJSON / WKT file.
package land

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"globeview/internal/geom"
)

// DefaultSource is the Natural Earth 1:110m land set.
const DefaultSource = "https://raw.githubusercontent.com/martynafford/natural-earth-geojson/refs/heads/master/110m/physical/ne_110m_land.json"

// ErrLandDataFetchFailed covers transport errors, non-2xx responses and
// undecodable payloads.
var ErrLandDataFetchFailed = errors.New("failed to load land map data")

// Fetcher loads land data. Requests are made once; there is no retry.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher returns a Fetcher whose HTTP requests time out after timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	c := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/geo+json, application/json")
	return &Fetcher{client: c}
}

// Load resolves source to a land set. Sources starting with http:// or
// https:// are fetched; *.wkt files are parsed as WKT; anything else is
// read as a GeoJSON file.
func (f *Fetcher) Load(ctx context.Context, source string) (geom.Land, error) {
	start := time.Now()
	var (
		land    geom.Land
		skipped int
		err     error
	)
	switch {
	case isURL(source):
		land, skipped, err = f.fetch(ctx, source)
	case strings.EqualFold(filepath.Ext(source), ".wkt"):
		land, err = loadWKT(source)
	default:
		land, skipped, err = loadGeoJSON(source)
	}
	if err != nil {
		log.Error().Err(err).Str("source", source).Msg("Land data load failed")
		return geom.Land{}, err
	}
	log.Info().
		Str("source", source).
		Int("features", len(land.Features)).
		Int("skipped", skipped).
		Dur("duration", time.Since(start)).
		Msg("Land data loaded")
	return land, nil
}

func (f *Fetcher) fetch(ctx context.Context, url string) (geom.Land, int, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return geom.Land{}, 0, fmt.Errorf("%w: %w", ErrLandDataFetchFailed, err)
	}
	if resp.IsError() {
		return geom.Land{}, 0, fmt.Errorf("%w: %s returned %d", ErrLandDataFetchFailed, url, resp.StatusCode())
	}
	land, skipped, err := geom.DecodeLand(resp.Body())
	if err != nil {
		return geom.Land{}, 0, fmt.Errorf("%w: %w", ErrLandDataFetchFailed, err)
	}
	return land, skipped, nil
}

func loadGeoJSON(path string) (geom.Land, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return geom.Land{}, 0, fmt.Errorf("%w: %w", ErrLandDataFetchFailed, err)
	}
	land, skipped, err := geom.DecodeLand(data)
	if err != nil {
		return geom.Land{}, 0, fmt.Errorf("%w: %s: %w", ErrLandDataFetchFailed, filepath.Base(path), err)
	}
	return land, skipped, nil
}

func loadWKT(path string) (geom.Land, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return geom.Land{}, fmt.Errorf("%w: %w", ErrLandDataFetchFailed, err)
	}
	land, err := geom.ParseWKT(string(data))
	if err != nil {
		return geom.Land{}, fmt.Errorf("%w: %s: %w", ErrLandDataFetchFailed, filepath.Base(path), err)
	}
	return land, nil
}

func isURL(s string) bool {
	l := strings.ToLower(s)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}
