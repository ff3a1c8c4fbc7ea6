package main

import (
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/setanarut/allrgb"
	"github.com/setanarut/allrgb/utils"
)

// progressReports is how many debug progress lines a run logs when no
// animation sets the cadence.
const progressReports = 20

func runGenerate(cfg config) error {
	n, err := allrgb.CubeSide(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	seed := cfg.RandSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	colors := allrgb.EquallySpacedColors(n)
	allrgb.Shuffle(colors, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))

	log.Info().
		Int("width", cfg.Width).
		Int("height", cfg.Height).
		Int("levels", n).
		Int("seeds", len(cfg.Seeds)).
		Str("topology", cfg.Topology.String()).
		Uint64("rand_seed", seed).
		Msg("generating")

	total := cfg.Width * cfg.Height
	every := total / progressReports
	var rec *utils.GrowthRecorder
	if cfg.Animate != "" {
		rec = utils.NewGrowthRecorder()
		rec.Scale = cfg.Scale
		every = total / cfg.Frames
	}

	start := time.Now()
	opt := allrgb.Options{
		Topology:      cfg.Topology,
		ProgressEvery: max(1, every),
		Progress: func(p allrgb.Progress) {
			if rec != nil {
				rec.Record(p)
			}
			log.Debug().
				Int("placed", p.Placed).
				Int("total", p.Total).
				Dur("elapsed", time.Since(start)).
				Msg("progress")
		},
	}
	img, err := allrgb.Generate(colors, cfg.Width, cfg.Height, cfg.Seeds, opt)
	if err != nil {
		return err
	}
	log.Info().Dur("took", time.Since(start)).Msg("generation complete")

	s := utils.Measure(img, cfg.Topology)
	log.Info().
		Float64("mean", s.Mean).
		Float64("stddev", s.StdDev).
		Float64("max", s.Max).
		Msg("neighbor color distance")

	if err := save(img, cfg.Out, cfg.Scale); err != nil {
		return fmt.Errorf("saving %s: %w", cfg.Out, err)
	}
	log.Info().Str("path", cfg.Out).Msg("image written")

	if cfg.Swatch != "" {
		palette := utils.ExtractPalette(allrgb.ToRGBA(img), cfg.SwatchColors, cfg.SwatchMethod)
		utils.SortPaletteByBrightness(palette)
		if err := utils.SavePalette(palette, 64, cfg.Swatch); err != nil {
			return fmt.Errorf("saving swatch %s: %w", cfg.Swatch, err)
		}
		log.Info().Str("path", cfg.Swatch).Int("colors", len(palette)).Str("method", cfg.SwatchMethod.String()).Msg("swatch written")
	}

	if rec != nil {
		if err := rec.SaveAnimation(cfg.Animate); err != nil {
			return fmt.Errorf("saving animation %s: %w", cfg.Animate, err)
		}
		log.Info().Str("path", cfg.Animate).Int("frames", rec.Frames()).Msg("animation written")
	}
	return nil
}

func save(img *allrgb.Image[allrgb.Rgb], filename string, scale int) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return utils.SaveImage(utils.Upscale(allrgb.ToRGBA(img), scale), filename)
	case ".ppm", "":
		return utils.SavePPM(img, filename)
	}
	return fmt.Errorf("unsupported output format %q", filepath.Ext(filename))
}
