package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/oksketch/sketch"
	"github.com/benoitkugler/oksketch/sketchio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "../../sketchio/testdata/sample.json"

func TestRunPNG(t *testing.T) {
	dir := t.TempDir()
	config := filepath.Join(dir, "sketch.toml")
	require.NoError(t, os.WriteFile(config, []byte("background = \"white\"\n"), 0o644))

	out := filepath.Join(dir, "out.png")
	require.NoError(t, run(options{in: sample, out: out, config: config, errMode: sketchio.StrictErrorMode}))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	// the sample extends to x = 100, y = 95
	assert.Equal(t, 110, img.Bounds().Dx())
	assert.Equal(t, 105, img.Bounds().Dy())
	_, _, _, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), a)
}

func TestRunPDF(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{"pdf", "pdf-alt"} {
		out := filepath.Join(dir, format+".pdf")
		require.NoError(t, run(options{in: sample, out: out, format: format, width: 200, height: 200}))
		content, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")), format)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, run(options{in: sample}))
	assert.Error(t, run(options{in: sample, out: filepath.Join(dir, "out.gif")}))
	assert.Error(t, run(options{in: "missing.json", out: filepath.Join(dir, "out.png")}))
	assert.Error(t, run(options{in: sample, out: filepath.Join(dir, "out.png"), config: "missing.toml"}))
}

func TestPageSize(t *testing.T) {
	w, h := pageSize(nil, 0, 0)
	assert.Equal(t, 10., w)
	assert.Equal(t, 10., h)

	drawables := []sketch.Drawable{{Sets: []sketch.OperationSet{{Ops: sketch.Path{
		sketch.MoveTo{X: 5, Y: 5}, sketch.LineTo{X: 50, Y: 20},
	}}}}}
	w, h = pageSize(drawables, 0, 300)
	assert.Equal(t, 60., w)
	assert.Equal(t, 300., h)
}

func TestDump(t *testing.T) {
	drawables, err := sketchio.ReadFile(sample, sketchio.StrictErrorMode)
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, dump(&b, drawables))
	assert.Equal(t, `0 polygon fillPath: M10.000,10.000 L90.000,10.000 L50.000,80.000
0 polygon path: M10.000,10.000 C30.000,5.000,70.000,5.000,90.000,10.000
1 line path: M0.000,95.000 L100.000,95.000
`, b.String())

	// no output file is needed
	require.NoError(t, run(options{in: sample, dump: true}))
}
