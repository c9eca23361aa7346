package main

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"globeview/internal/config"
	"globeview/internal/geom"
	"globeview/internal/globe"
	"globeview/internal/i18n"
	"globeview/internal/land"
	"globeview/internal/logger"
	"globeview/internal/tui"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile string  `short:"c" long:"config"   env:"GLOBEVIEW_CONFIG"  description:"Path to configuration file" default:"globeview.yaml"`
	Land       string  `short:"l" long:"land"     env:"GLOBEVIEW_LAND"    description:"Land data URL, GeoJSON file or WKT file"`
	Theme      string  `short:"t" long:"theme"    env:"GLOBEVIEW_THEME"   description:"Color theme (light, dark)"`
	Lang       string  `long:"lang"               env:"GLOBEVIEW_LANG"    description:"Language (en, de)"`
	Spacing    float64 `long:"spacing"            env:"GLOBEVIEW_SPACING" description:"Halftone dot spacing"`
	FPS        int     `long:"fps"                env:"GLOBEVIEW_FPS"     description:"Frames per second"`
	Timeout    string  `long:"timeout"            env:"GLOBEVIEW_TIMEOUT" description:"Land data load timeout"`

	Snapshot string  `short:"o" long:"snapshot" description:"Render one frame to this PNG file and exit"`
	Width    int     `long:"width"              description:"Snapshot width in pixels"`
	Height   int     `long:"height"             description:"Snapshot height in pixels"`
	Lambda   float64 `long:"lambda"             description:"Snapshot rotation lambda in degrees"`
	Phi      float64 `long:"phi"                description:"Snapshot rotation phi in degrees"`
	Zoom     float64 `long:"zoom"               description:"Snapshot zoom factor"`
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run returns the process exit code so deferred cleanup happens before exit.
func run(args []string) int {
	_ = godotenv.Load()

	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return 0
		}
		return 1
	}

	closer := opts.Logger.Setup()
	defer closer.Close()

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.Error().Err(err).Str("file", opts.ConfigFile).Msg("Failed to load configuration")
		return 1
	}

	prefsPath, err := config.PrefsPath()
	if err != nil {
		log.Warn().Err(err).Msg("No user config directory, preferences are not kept")
	}
	var prefs config.Prefs
	if prefsPath != "" {
		if prefs, err = config.LoadPrefs(prefsPath); err != nil {
			log.Warn().Err(err).Str("file", prefsPath).Msg("Failed to read preferences")
		}
	}

	s, err := resolve(opts, isSet(parser), cfg, prefs)
	if err != nil {
		log.Error().Err(err).Msg("Invalid options")
		return 1
	}

	log.Info().
		Str("land", s.land).
		Str("theme", string(s.theme)).
		Str("lang", string(s.lang)).
		Float64("spacing", s.spacing).
		Msg("Starting globeview")

	fetcher := land.NewFetcher(s.timeout)

	if opts.Snapshot != "" {
		if err := snapshot(opts.Snapshot, s, fetcher); err != nil {
			log.Error().Err(err).Str("file", opts.Snapshot).Msg("Snapshot failed")
			return 1
		}
		return 0
	}

	opts.Logger.Mute()
	m := tui.New(tui.Options{
		Theme:         s.theme,
		Lang:          s.lang,
		DotSpacing:    s.spacing,
		FrameInterval: time.Second / time.Duration(s.fps),
		Load: func(ctx context.Context) (geom.Land, error) {
			return fetcher.Load(ctx, s.land)
		},
		OnPrefs: func(theme globe.Theme, lang i18n.Language) {
			if prefsPath == "" {
				return
			}
			if err := config.SavePrefs(prefsPath, config.Prefs{Lang: string(lang), Theme: string(theme)}); err != nil {
				log.Error().Err(err).Str("file", prefsPath).Msg("Failed to save preferences")
			}
		},
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Error().Err(err).Msg("TUI failed")
		return 1
	}
	return 0
}

// isSet reports whether an option was given on the command line or through
// its environment variable.
func isSet(parser *flags.Parser) func(string) bool {
	return func(long string) bool {
		o := parser.FindOptionByLongName(long)
		return o != nil && o.IsSet()
	}
}
