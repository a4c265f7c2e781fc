package render

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/noisegen/internal/graph"
)

func flatGrid(width, height int, v float64) [][]float64 {
	grid := make([][]float64, height)
	for y := range grid {
		row := make([]float64, width)
		for x := range row {
			row[x] = v
		}
		grid[y] = row
	}
	return grid
}

func TestGrayscaleMapping(t *testing.T) {
	cases := []struct {
		value float64
		want  uint8
	}{
		{-1, 0},
		{0, 127},
		{1, 255},
		{-3, 0},  // clamped
		{2, 255}, // clamped
	}

	for _, tc := range cases {
		img := Grayscale(flatGrid(2, 2, tc.value))
		if got := img.GrayAt(0, 0).Y; got != tc.want {
			t.Errorf("Grayscale(%v) = %d, want %d", tc.value, got, tc.want)
		}
	}
}

func TestGrayscaleShape(t *testing.T) {
	img := Grayscale(flatGrid(7, 3, 0))
	if img.Bounds().Dx() != 7 || img.Bounds().Dy() != 3 {
		t.Errorf("bounds %v, want 7x3", img.Bounds())
	}
}

func TestPaletteEndpointsAndOrdering(t *testing.T) {
	deep := Palette(flatGrid(1, 1, -1)).NRGBAAt(0, 0)
	snow := Palette(flatGrid(1, 1, 1)).NRGBAAt(0, 0)

	// Deep water is blue-dominant, snow is near white.
	assert.Greater(t, deep.B, deep.R, "deep water should be blue-dominant")
	assert.Greater(t, int(snow.R)+int(snow.G)+int(snow.B), 700, "snowcap should be near white")
	assert.EqualValues(t, 255, deep.A)
}

func TestApplyFiltersNoopWithZeroParams(t *testing.T) {
	img := Grayscale(flatGrid(4, 4, 0.5))
	out := ApplyFilters(img, FilterParams{})
	if out != image.Image(img) {
		t.Error("zeroed FilterParams should return the input image")
	}
}

func TestApplyFiltersBlursEdges(t *testing.T) {
	// A hard step edge should soften under gaussian blur.
	grid := flatGrid(8, 8, -1)
	for y := range grid {
		for x := 4; x < 8; x++ {
			grid[y][x] = 1
		}
	}
	img := Grayscale(grid)
	out := ApplyFilters(img, FilterParams{BlurSigma: 1.5})

	nrgba, ok := out.(*image.NRGBA)
	require.True(t, ok)
	edge := nrgba.NRGBAAt(4, 4).R
	assert.Greater(t, edge, uint8(0))
	assert.Less(t, edge, uint8(255))
}

func TestGrainDeterministicPerSeed(t *testing.T) {
	base := Palette(flatGrid(16, 16, 0))

	a := Grain(base, 7, 8, 0.5)
	b := Grain(base, 7, 8, 0.5)
	c := Grain(base, 8, 8, 0.5)

	require.Equal(t, a.Pix, b.Pix, "same seed must give identical grain")
	assert.NotEqual(t, a.Pix, c.Pix, "different seed should change grain")
}

func TestGrainZeroStrengthIsIdentity(t *testing.T) {
	base := Palette(flatGrid(8, 8, 0.2))
	if out := Grain(base, 1, 8, 0); out != base {
		t.Error("zero strength should return the input image")
	}
}

func TestDownscaleShape(t *testing.T) {
	img := Grayscale(flatGrid(32, 32, 0))
	out := Downscale(img, 8, 8)
	if out.Bounds().Dx() != 8 || out.Bounds().Dy() != 8 {
		t.Errorf("bounds %v, want 8x8", out.Bounds())
	}
}

func TestHeightmapDeterministic(t *testing.T) {
	g := graph.NewDefault()
	node := g.FBm(g.Simplex().Frequency(0.05), 3)

	p := HeightmapParams{Width: 24, Height: 16, Step: 1, Palette: true, GrainStrength: 0.3, GrainScale: 16}

	a, err := Heightmap(node, 1337, p)
	require.NoError(t, err)
	b, err := Heightmap(node, 1337, p)
	require.NoError(t, err)

	var bufA, bufB bytes.Buffer
	require.NoError(t, EncodePNG(&bufA, a))
	require.NoError(t, EncodePNG(&bufB, b))
	assert.Equal(t, bufA.Bytes(), bufB.Bytes(), "render must be deterministic for a fixed seed")
}

func TestHeightmapSupersampleKeepsTargetSize(t *testing.T) {
	g := graph.NewDefault()
	node := g.Simplex().Frequency(0.1)

	img, err := Heightmap(node, 1, HeightmapParams{Width: 20, Height: 10, Step: 1, Supersample: 3})
	require.NoError(t, err)
	assert.Equal(t, 20, img.Bounds().Dx())
	assert.Equal(t, 10, img.Bounds().Dy())
}

func TestHeightmapRejectsInvalidSize(t *testing.T) {
	g := graph.NewDefault()
	_, err := Heightmap(g.Simplex(), 1, HeightmapParams{Width: 0, Height: 10, Step: 1})
	assert.Error(t, err)
}

func TestEncodePNGRoundTrip(t *testing.T) {
	img := Grayscale(flatGrid(5, 4, 0.25))

	var buf bytes.Buffer
	require.NoError(t, EncodePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
}
