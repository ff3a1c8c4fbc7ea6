package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/setanarut/allrgb"
	"github.com/setanarut/allrgb/utils"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	Width, Height int
	// Seeds defaults to the image center when empty.
	Seeds    []allrgb.Point
	RandSeed uint64
	Topology allrgb.Topology
	Out      string

	Swatch       string
	SwatchColors int
	SwatchMethod utils.PaletteMethod

	Animate string
	Frames  int
	Scale   int

	LogLevel string
}

func defineFlags(fs *pflag.FlagSet) {
	fs.Int("width", 512, "image width in pixels")
	fs.Int("height", 512, "image height in pixels; width*height must be a cube of at most 256")
	fs.StringSlice("seed", nil, "seed pixel as x:y, repeatable (default: image center)")
	fs.Uint64("rand-seed", 0, "palette shuffle seed, 0 picks one from the clock")
	fs.String("topology", "moore", "neighbor topology: moore (8) or vonneumann (4)")
	fs.String("out", "allrgb.ppm", "output file, .ppm or .png")
	fs.String("swatch", "", "write a swatch of the image's dominant colors to this PNG")
	fs.Int("swatch-colors", 7, "number of swatch colors")
	fs.String("swatch-method", "dominantcolor", "swatch extraction: dominantcolor or kmeans")
	fs.String("animate", "", "write a GIF of the image growing to this file")
	fs.Int("frames", 60, "number of animation frames")
	fs.Int("scale", 1, "integer upscale factor for PNG and GIF output")
	fs.String("log-level", "info", "log level: trace, debug, info, warn, error, none")
	fs.String("config", "", "optional config file (json, toml or yaml)")
}

// newConfigViper resolves every flag from, in order of precedence, the
// command line, ALLRGB_* environment variables, and the config file.
func newConfigViper(fs *pflag.FlagSet) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("allrgb")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(fs)
	return v
}

func loadConfig(v *viper.Viper) (config, error) {
	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("reading config %s: %w", file, err)
		}
	}

	cfg := config{
		Width:        v.GetInt("width"),
		Height:       v.GetInt("height"),
		RandSeed:     v.GetUint64("rand-seed"),
		Out:          v.GetString("out"),
		Swatch:       v.GetString("swatch"),
		SwatchColors: v.GetInt("swatch-colors"),
		Animate:      v.GetString("animate"),
		Frames:       v.GetInt("frames"),
		Scale:        v.GetInt("scale"),
		LogLevel:     v.GetString("log-level"),
	}

	var err error
	if cfg.Topology, err = allrgb.ParseTopology(v.GetString("topology")); err != nil {
		return config{}, err
	}
	if cfg.SwatchMethod, err = utils.ParsePaletteMethod(v.GetString("swatch-method")); err != nil {
		return config{}, err
	}
	if cfg.Seeds, err = parseSeeds(v.GetStringSlice("seed")); err != nil {
		return config{}, err
	}
	if len(cfg.Seeds) == 0 {
		cfg.Seeds = []allrgb.Point{{X: cfg.Width / 2, Y: cfg.Height / 2}}
	}
	switch strings.ToLower(filepath.Ext(cfg.Out)) {
	case ".ppm", ".png", "":
	default:
		return config{}, fmt.Errorf("unsupported output format %q", filepath.Ext(cfg.Out))
	}
	if cfg.Frames < 1 {
		return config{}, fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	return cfg, nil
}

// parseSeeds reads x:y pairs. Items may themselves hold several pairs
// separated by commas or spaces, as environment values do.
func parseSeeds(items []string) ([]allrgb.Point, error) {
	var seeds []allrgb.Point
	for _, item := range items {
		for _, field := range strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ' ' }) {
			xs, ys, ok := strings.Cut(field, ":")
			if !ok {
				return nil, fmt.Errorf("seed %q: want x:y", field)
			}
			x, err := strconv.Atoi(xs)
			if err != nil {
				return nil, fmt.Errorf("seed %q: %w", field, err)
			}
			y, err := strconv.Atoi(ys)
			if err != nil {
				return nil, fmt.Errorf("seed %q: %w", field, err)
			}
			seeds = append(seeds, allrgb.Point{X: x, Y: y})
		}
	}
	return seeds, nil
}
