// Package terrain ships ready-made noise-graph compositions for common
// terrain and texture fields. Presets are plain graph builders: the returned
// node is immutable, seedless, and safe to share.
package terrain

import (
	"fmt"
	"sort"

	"github.com/MeKo-Tech/noisegen/internal/graph"
)

// MountainsParams tune the alpine preset.
type MountainsParams struct {
	BaseFrequency   float64 // broad mountain-range shape
	RidgeFrequency  float64 // sharp peak layer
	DetailFrequency float64 // erosion and surface detail
	WarpAmplitude   float64 // organic distortion strength
	HeightScale     float64 // overall height multiplier
}

// DefaultMountains are tuned for dramatic alpine relief at world scale.
func DefaultMountains() MountainsParams {
	return MountainsParams{
		BaseFrequency:   0.003,
		RidgeFrequency:  0.006,
		DetailFrequency: 0.02,
		WarpAmplitude:   80.0,
		HeightScale:     1.0,
	}
}

// Mountains builds alpine terrain: a smooth fBm base, ridged peaks gated by
// a mountain mask, hybrid-multifractal erosion detail, domain warping, and a
// fine surface layer, biased upward and clamped.
func Mountains(p MountainsParams) graph.Node {
	g := graph.NewDefault()

	baseShape := g.FBmWith(g.Simplex().Frequency(p.BaseFrequency), 4, 2.0, 0.5)

	ridges := g.RidgedWith(g.Simplex().Frequency(p.RidgeFrequency), 6, 2.2, 0.5, 0)

	erosion := graph.From(g.HybridMultiWith(g.Simplex().Frequency(p.DetailFrequency), 4, 2.0, 0.5)).
		MultiplyBy(0.15)

	// Mask mapped to roughly [0, 1]; high values grow peaks.
	mountainMask := graph.From(g.FBm(g.Simplex().Frequency(p.BaseFrequency*0.5), 3)).
		Clamp(-0.5, 1.0).
		MultiplyBy(0.5).
		Add(g.Constant(0.5))

	mountains := graph.From(baseShape).
		MultiplyBy(0.4).
		Add(graph.From(ridges).Multiply(mountainMask.Node).MultiplyBy(0.6).Node)

	detailed := mountains.Add(erosion.Node)

	warpSource := g.Simplex().Frequency(p.BaseFrequency * 0.7)
	warped := detailed.Warp(warpSource, p.WarpAmplitude)

	fineDetail := graph.From(g.FBmWith(g.Simplex().Frequency(p.DetailFrequency*3), 3, 2.0, 0.5)).
		MultiplyBy(0.05)

	return warped.
		Add(fineDetail.Node).
		MultiplyBy(p.HeightScale).
		Add(g.Constant(0.3)).
		Clamp(-0.2, 1.5).Node
}

// IslandsParams tune the continental preset.
type IslandsParams struct {
	ContinentalScale float64 // landmass frequency; lower means larger continents
	MountainScale    float64 // ridge frequency
	HillScale        float64 // rolling-hill frequency
	DetailScale      float64 // fine-detail frequency
	WarpAmplitude    float64 // coastline distortion strength
}

// DefaultIslands produce continent-sized landmasses with isolated ranges.
func DefaultIslands() IslandsParams {
	return IslandsParams{
		ContinentalScale: 0.002,
		MountainScale:    0.008,
		HillScale:        0.02,
		DetailScale:      0.1,
		WarpAmplitude:    50.0,
	}
}

// Islands builds layered continental terrain: a warped low-frequency land
// field, ridged mountains masked to the land, rolling hills, and subtle
// detail, clamped to [-1, 1].
func Islands(p IslandsParams) graph.Node {
	g := graph.NewDefault()

	continents := graph.From(g.FBmWith(g.Simplex().Frequency(p.ContinentalScale), 4, 2.0, 0.5)).
		Warp(g.Simplex().Frequency(p.ContinentalScale*0.7), p.WarpAmplitude)

	ridges := g.RidgedWith(g.Simplex().Frequency(p.MountainScale), 5, 2.2, 0.5, 0)
	mountainSelector := graph.From(g.FBm(g.Simplex().Frequency(p.ContinentalScale*1.5), 3)).
		Clamp(-1, 1).
		MultiplyBy(0.5).
		Add(g.Constant(0.5))
	mountains := graph.From(ridges).Multiply(mountainSelector.Node)

	hills := g.FBmWith(g.Simplex().Frequency(p.HillScale), 4, 2.0, 0.5)
	detail := graph.From(g.FBmWith(g.Simplex().Frequency(p.DetailScale), 3, 2.0, 0.5)).
		MultiplyBy(0.1)

	landMask := continents.Add(g.Constant(0.3)).Clamp(0, 1)
	maskedMountains := mountains.Multiply(landMask.Node).MultiplyBy(0.4)

	return continents.
		Add(maskedMountains.Node).
		Add(graph.From(hills).MultiplyBy(0.15).Node).
		Add(detail.Node).
		Clamp(-1, 1).Node
}

// NebulaParams tune the volumetric-cloud preset.
type NebulaParams struct {
	BaseFrequency      float64 // overall cloud density scale
	FilamentFrequency  float64 // ridged filament scale
	TurbulenceStrength float64 // warp amplitude for swirl
}

// DefaultNebula gives slowly varying density with strong turbulence.
func DefaultNebula() NebulaParams {
	return NebulaParams{
		BaseFrequency:      0.008,
		FilamentFrequency:  0.02,
		TurbulenceStrength: 40.0,
	}
}

// Nebula builds a turbulent density field: fBm clouds mixed with cellular
// structure, ridged filaments, and billowing emission blobs, all heavily
// domain warped.
func Nebula(p NebulaParams) graph.Node {
	g := graph.NewDefault()

	baseCloud := g.FBmWith(g.Simplex().Frequency(p.BaseFrequency), 4, 2.0, 0.5)
	cells := g.Cellular().Frequency(p.BaseFrequency * 0.5)
	density := graph.From(baseCloud).
		MultiplyBy(0.7).
		Add(graph.From(cells).MultiplyBy(0.3).Node).
		Warp(g.Simplex().Frequency(p.BaseFrequency*0.3), p.TurbulenceStrength)

	filaments := graph.From(g.RidgedWith(g.Simplex().Frequency(p.FilamentFrequency), 5, 2.2, 0.5, 0)).
		Add(graph.From(g.FBmWith(g.Simplex().Frequency(p.FilamentFrequency*3), 3, 2.0, 0.5)).MultiplyBy(0.3).Node).
		Warp(g.Simplex().Frequency(p.FilamentFrequency*0.5), p.TurbulenceStrength*1.5)

	emission := graph.From(g.BillowWith(g.Simplex().Frequency(p.BaseFrequency*1.5), 4, 2.0, 0.5, 0)).
		Clamp(0.2, 1.0).
		MultiplyBy(1.25).
		Add(g.Constant(-0.25))

	return density.
		MultiplyBy(0.6).
		Add(filaments.MultiplyBy(0.3).Node).
		Add(emission.MultiplyBy(0.1).Node).
		Clamp(-1, 1).Node
}

// Builder constructs a preset node from its default parameters.
type Builder func() graph.Node

var presets = map[string]Builder{
	"mountains": func() graph.Node { return Mountains(DefaultMountains()) },
	"islands":   func() graph.Node { return Islands(DefaultIslands()) },
	"nebula":    func() graph.Node { return Nebula(DefaultNebula()) },
}

// Preset returns the named preset's node, or an error listing the known
// preset names.
func Preset(name string) (graph.Node, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("terrain: unknown preset %q (available: %v)", name, Names())
	}
	return build(), nil
}

// Names lists the available presets in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
