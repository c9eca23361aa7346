package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"globeview/internal/globe"
	"globeview/internal/i18n"
	"globeview/internal/land"
	"globeview/internal/raster"
)

// snapshot loads the land set and writes a single frame as PNG.
func snapshot(path string, s settings, fetcher *land.Fetcher) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	data, err := fetcher.Load(ctx, s.land)
	if err != nil {
		return err
	}

	tr := i18n.New(s.lang)
	scene := globe.NewScene(s.theme)
	scene.Label = func(m globe.Marker) string { return tr.T("marker." + m.Name) }
	scene.SetLand(data, s.spacing)

	ctl := globe.NewController(float64(s.width), float64(s.height))
	ctl.SetAutoRotate(false)
	ctl.Nudge(s.lambda, s.phi)
	ctl.Zoom(s.zoom)

	canvas, err := raster.New(s.width, s.height, scene.Palette.Background)
	if err != nil {
		return err
	}
	start := time.Now()
	globe.Render(ctl.State(), scene, canvas, start)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := canvas.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Info().
		Str("file", path).
		Int("width", s.width).
		Int("height", s.height).
		Int("dots", len(scene.Dots)).
		Dur("duration", time.Since(start)).
		Msg("Snapshot written")
	return nil
}
