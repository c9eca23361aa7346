package main

import (
	"fmt"
	"time"

	"globeview/internal/config"
	"globeview/internal/geom"
	"globeview/internal/globe"
	"globeview/internal/i18n"
	"globeview/internal/land"
)

const (
	defaultFPS     = 30
	defaultTimeout = 30 * time.Second
	defaultWidth   = 800
	defaultHeight  = 600
)

// settings are the effective options: flags win over preferences, which win
// over the config file, which wins over built-in defaults.
type settings struct {
	land    string
	theme   globe.Theme
	lang    i18n.Language
	spacing float64
	fps     int
	timeout time.Duration

	width, height int
	lambda, phi   float64
	zoom          float64
}

// resolve computes the effective settings. isSet reports whether a flag was
// given by long name, so an explicit zero rotation still beats the config.
func resolve(opts Options, isSet func(long string) bool, cfg *config.Config, prefs config.Prefs) (settings, error) {
	s := settings{
		land:    first(opts.Land, cfg.Land, land.DefaultSource),
		spacing: first(opts.Spacing, cfg.Spacing, geom.DefaultDotSpacing),
		fps:     first(opts.FPS, cfg.FPS, defaultFPS),
		width:   first(opts.Width, cfg.Snapshot.Width, defaultWidth),
		height:  first(opts.Height, cfg.Snapshot.Height, defaultHeight),
		lambda:  cfg.Snapshot.Lambda,
		phi:     cfg.Snapshot.Phi,
		zoom:    first(opts.Zoom, cfg.Snapshot.Zoom, 1),
		timeout: defaultTimeout,
	}
	if isSet("lambda") {
		s.lambda = opts.Lambda
	}
	if isSet("phi") {
		s.phi = opts.Phi
	}

	var err error
	if s.theme, err = globe.ParseTheme(first(opts.Theme, prefs.Theme, cfg.Theme, string(globe.ThemeLight))); err != nil {
		return s, err
	}
	if s.lang, err = i18n.Parse(first(opts.Lang, prefs.Lang, cfg.Lang, string(i18n.English))); err != nil {
		return s, err
	}
	if t := first(opts.Timeout, cfg.Timeout); t != "" {
		if s.timeout, err = time.ParseDuration(t); err != nil {
			return s, fmt.Errorf("timeout: %w", err)
		}
	}
	if s.fps <= 0 {
		return s, fmt.Errorf("fps must be positive, got %d", s.fps)
	}
	return s, nil
}

// first returns the first non-zero value.
func first[T comparable](vs ...T) T {
	var zero T
	for _, v := range vs {
		if v != zero {
			return v
		}
	}
	return zero
}
