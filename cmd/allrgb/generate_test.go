package main

import (
	"bytes"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/setanarut/allrgb"
	"github.com/stretchr/testify/require"
)

func TestRunGenerateWritesAllOutputs(t *testing.T) {
	setupLogging("error")
	dir := t.TempDir()
	cfg := config{
		Width:        8,
		Height:       8,
		Seeds:        []allrgb.Point{{X: 1, Y: 1}, {X: 6, Y: 6}},
		RandSeed:     5,
		Out:          filepath.Join(dir, "out.png"),
		Swatch:       filepath.Join(dir, "swatch.png"),
		SwatchColors: 3,
		Animate:      filepath.Join(dir, "growth.gif"),
		Frames:       4,
		Scale:        2,
	}
	require.NoError(t, runGenerate(cfg))

	f, err := os.Open(cfg.Out)
	require.NoError(t, err)
	img, err := png.Decode(f)
	f.Close()
	require.NoError(t, err)
	require.Equal(t, 16, img.Bounds().Dx())

	_, err = os.Stat(cfg.Swatch)
	require.NoError(t, err)

	f, err = os.Open(cfg.Animate)
	require.NoError(t, err)
	anim, err := gif.DecodeAll(f)
	f.Close()
	require.NoError(t, err)
	require.Len(t, anim.Image, 4)
}

func TestRunGenerateRejectsNonCubicSize(t *testing.T) {
	setupLogging("none")
	err := runGenerate(config{Width: 10, Height: 10, Seeds: []allrgb.Point{{}}, Frames: 1, Out: filepath.Join(t.TempDir(), "x.ppm")})
	require.ErrorIs(t, err, allrgb.ErrNotCubic)
}

func TestRootCommand(t *testing.T) {
	out := filepath.Join(t.TempDir(), "img.ppm")
	cmd := newRootCommand()
	cmd.SetArgs([]string{"--width", "4", "--height", "2", "--out", out, "--rand-seed", "1", "--log-level", "none"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("P6\n4 2\n255\n")))
	require.Len(t, data, len("P6\n4 2\n255\n")+4*2*3)
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	require.True(t, strings.HasPrefix(buf.String(), "allrgb v"+Version))
}
