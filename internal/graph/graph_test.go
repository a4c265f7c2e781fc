package graph

import (
	"math"
	"sync"
	"testing"

	"github.com/MeKo-Tech/noisegen/internal/noise"
	"github.com/MeKo-Tech/noisegen/internal/transform"
)

const testSeed int32 = 1337

func sampleNodes() map[string]Node {
	g := NewDefault()
	simplex := g.Simplex().Frequency(0.05)
	warp := g.Perlin().Frequency(0.1)

	return map[string]Node{
		"constant":     g.Constant(0.5),
		"simplex":      simplex,
		"perlin":       g.Perlin().Frequency(0.03),
		"value":        g.Value().Frequency(0.07),
		"value-cubic":  g.ValueCubic().Frequency(0.07),
		"cellular":     g.Cellular().Frequency(0.04),
		"simplex-4d":   g.Simplex4D().Frequency(0.05),
		"fbm":          g.FBm(simplex, 4),
		"ridged":       g.RidgedWith(simplex, 4, 2.0, 0.5, 0.3),
		"billow":       g.BillowWith(simplex, 4, 2.0, 0.5, 0.3),
		"hybrid-multi": g.HybridMulti(simplex, 4),
		"add":          NewAdd(simplex, warp),
		"blend":        NewBlend(simplex, warp, g.Constant(0.5)),
		"scale":        NewDomainScale(simplex, 2.5),
		"offset":       NewDomainOffset(simplex, 10, -5, 3),
		"clamp":        NewClamp(simplex, -0.5, 0.5),
		"abs":          NewAbsolute(simplex),
		"invert":       NewInvert(simplex),
		"warp":         NewDomainWarp(simplex, warp, 30),
	}
}

func TestNodesDeterministic(t *testing.T) {
	for name, node := range sampleNodes() {
		t.Run(name, func(t *testing.T) {
			a := node.Evaluate2D(testSeed, 12.5, -3.75)
			b := node.Evaluate2D(testSeed, 12.5, -3.75)
			if a != b {
				t.Errorf("Evaluate2D not deterministic: %v != %v", a, b)
			}

			a = node.Evaluate3D(testSeed, 12.5, -3.75, 8.25)
			b = node.Evaluate3D(testSeed, 12.5, -3.75, 8.25)
			if a != b {
				t.Errorf("Evaluate3D not deterministic: %v != %v", a, b)
			}
		})
	}
}

func TestNodesFinite(t *testing.T) {
	for name, node := range sampleNodes() {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				x := float64(i)*1.37 - 120
				y := float64(i)*0.91 + 45
				v := node.Evaluate2D(testSeed, x, y)
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("Evaluate2D(%v, %v) = %v", x, y, v)
				}
			}
		})
	}
}

func TestConcurrentEvaluationMatchesSequential(t *testing.T) {
	g := NewDefault()
	node := From(g.Simplex().Frequency(0.02)).
		FBm(5).
		Warp(g.Perlin().Frequency(0.05), 20).
		Clamp(-1, 1).Node

	coords := make([][2]float64, 64)
	want := make([]float64, len(coords))
	for i := range coords {
		coords[i] = [2]float64{float64(i) * 3.1, float64(i)*-1.7 + 40}
		want[i] = node.Evaluate2D(testSeed, coords[i][0], coords[i][1])
	}

	var wg sync.WaitGroup
	errs := make(chan string, 8)
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i, c := range coords {
				if got := node.Evaluate2D(testSeed, c[0], c[1]); got != want[i] {
					errs <- "concurrent evaluation diverged from sequential reference"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	if msg, ok := <-errs; ok {
		t.Fatal(msg)
	}
}

func TestSupports4DPropagation(t *testing.T) {
	g := NewDefault()
	s4d := g.Simplex4D()
	s2d := g.Simplex()
	c := g.Constant(1)

	cases := []struct {
		name string
		node Node
		want bool
	}{
		{"constant", c, true},
		{"simplex4d source", s4d, true},
		{"simplex source", s2d, false},
		{"add of capable", NewAdd(s4d, c), true},
		{"add of incapable", NewAdd(s4d, s2d), false},
		{"blend incapable control", NewBlend(s4d, c, s2d), false},
		{"fbm over capable", g.FBm(s4d, 3), true},
		{"fbm over incapable", g.FBm(s2d, 3), false},
		{"clamp passthrough", NewClamp(s4d, -1, 1), true},
		{"warp incapable warp node", NewDomainWarp(s4d, s2d, 10), false},
		{"warp capable", NewDomainWarp(s4d, c, 10), true},
	}

	for _, tc := range cases {
		if got := tc.node.Supports4D(); got != tc.want {
			t.Errorf("%s: Supports4D() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEvaluate4DPanicsWhenUnsupported(t *testing.T) {
	g := NewDefault()
	node := NewAdd(g.Simplex4D(), g.Simplex())

	defer func() {
		if recover() == nil {
			t.Error("Evaluate4D did not panic on an incapable graph")
		}
	}()
	node.Evaluate4D(testSeed, 1, 2, 3, 4)
}

func TestEvaluate4DOnCapableGraph(t *testing.T) {
	g := NewDefault()
	node := From(g.Simplex4D().Frequency(0.1)).FBm(3).Clamp(-1, 1).Node

	if !node.Supports4D() {
		t.Fatal("graph should support 4D")
	}
	v := node.Evaluate4D(testSeed, 1.5, 2.5, 3.5, 4.5)
	if math.IsNaN(v) || v < -1 || v > 1 {
		t.Fatalf("Evaluate4D = %v, want clamped finite value", v)
	}
}

func TestConstructionPanics(t *testing.T) {
	g := NewDefault()
	s := g.Simplex()

	cases := map[string]func(){
		"nil fbm child":       func() { NewFBm(nil, 3, 2, 0.5) },
		"zero octaves":        func() { NewFBm(s, 0, 2, 0.5) },
		"nil add child":       func() { NewAdd(s, nil) },
		"nil blend control":   func() { NewBlend(s, s, nil) },
		"clamp min above max": func() { NewClamp(s, 1, -1) },
		"nil transform":       func() { NewTransform(s, nil) },
		"nil warp node":       func() { NewDomainWarp(s, nil, 10) },
	}

	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("construction did not panic")
				}
			}()
			build()
		})
	}
}

func TestCombinerAlgebra(t *testing.T) {
	a := NewConstant(0.3)
	b := NewConstant(0.5)

	cases := []struct {
		name string
		node Node
		want float64
	}{
		{"add", NewAdd(a, b), 0.8},
		{"subtract", NewSubtract(a, b), -0.2},
		{"multiply", NewMultiply(a, b), 0.15},
		{"min", NewMin(a, b), 0.3},
		{"max", NewMax(a, b), 0.5},
	}

	for _, tc := range cases {
		got := tc.node.Evaluate2D(0, 0, 0)
		if math.Abs(got-tc.want) > 1e-15 {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
		if got3 := tc.node.Evaluate3D(0, 1, 2, 3); got3 != got {
			t.Errorf("%s: 3D result %v differs from 2D %v on constants", tc.name, got3, got)
		}
	}
}

func TestBlendBoundaryLaws(t *testing.T) {
	g := NewDefault()
	a := g.Simplex().Frequency(0.05)
	b := g.Perlin().Frequency(0.05)

	atZero := NewBlend(a, b, g.Constant(0))
	atOne := NewBlend(a, b, g.Constant(1))

	for i := 0; i < 50; i++ {
		x := float64(i)*2.3 - 50
		y := float64(i)*1.1 + 7

		if got, want := atZero.Evaluate2D(testSeed, x, y), a.Evaluate2D(testSeed, x, y); got != want {
			t.Fatalf("blend at control 0: got %v, want %v", got, want)
		}
		got, want := atOne.Evaluate2D(testSeed, x, y), b.Evaluate2D(testSeed, x, y)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("blend at control 1: got %v, want %v", got, want)
		}
	}

	mid := NewBlend(NewConstant(0), NewConstant(1), NewConstant(0.5))
	if got := mid.Evaluate2D(0, 0, 0); got != 0.5 {
		t.Errorf("blend midpoint: got %v, want exactly 0.5", got)
	}
}

func TestBlendExtrapolatesOutsideUnitControl(t *testing.T) {
	node := NewBlend(NewConstant(0), NewConstant(1), NewConstant(2))
	if got := node.Evaluate2D(0, 0, 0); got != 2 {
		t.Errorf("blend at control 2: got %v, want 2", got)
	}
}

func TestCoordinateTransformIdentities(t *testing.T) {
	g := NewDefault()
	src := g.Simplex().Frequency(0.05)

	scaled := NewDomainScale(src, 2.5)
	offset := NewDomainOffset(src, 12.5, -4.5, 0)
	doubleInvert := NewInvert(NewInvert(src))

	for i := 0; i < 50; i++ {
		x := float64(i)*1.7 - 30
		y := float64(i)*0.9 + 11

		if got, want := scaled.Evaluate2D(testSeed, x, y), src.Evaluate2D(testSeed, x*2.5, y*2.5); got != want {
			t.Fatalf("scale identity: got %v, want %v", got, want)
		}
		if got, want := offset.Evaluate2D(testSeed, x, y), src.Evaluate2D(testSeed, x+12.5, y-4.5); got != want {
			t.Fatalf("offset identity: got %v, want %v", got, want)
		}
		if got, want := doubleInvert.Evaluate2D(testSeed, x, y), src.Evaluate2D(testSeed, x, y); got != want {
			t.Fatalf("double-invert identity: got %v, want %v", got, want)
		}
	}
}

func TestWarpAmplitudeZeroIsIdentity(t *testing.T) {
	g := NewDefault()
	src := g.Simplex().Frequency(0.05)
	warp := NewDomainWarp(src, g.Perlin().Frequency(0.1), 0)

	for i := 0; i < 50; i++ {
		x := float64(i)*3.3 - 80
		y := float64(i)*2.1 + 19
		if got, want := warp.Evaluate2D(testSeed, x, y), src.Evaluate2D(testSeed, x, y); got != want {
			t.Fatalf("warp at amplitude 0: got %v, want %v", got, want)
		}
	}
}

func TestWarpDistortsWithAmplitude(t *testing.T) {
	g := NewDefault()
	src := g.Simplex().Frequency(0.05)
	warp := NewDomainWarp(src, g.Perlin().Frequency(0.1), 25)

	differs := false
	for i := 0; i < 50 && !differs; i++ {
		x := float64(i)*3.3 - 80
		y := float64(i)*2.1 + 19
		differs = warp.Evaluate2D(testSeed, x, y) != src.Evaluate2D(testSeed, x, y)
	}
	if !differs {
		t.Error("warp with amplitude 25 never changed the output")
	}
}

func TestFractalBoundedness(t *testing.T) {
	g := NewDefault()
	bounded := From(g.Simplex().Frequency(0.05)).Clamp(-1, 1).Node

	builders := map[string]func(octaves int) Node{
		"fbm":    func(o int) Node { return NewFBm(bounded, o, 2.0, 0.5) },
		"ridged": func(o int) Node { return NewRidged(bounded, o, 2.0, 0.5, 0) },
		"billow": func(o int) Node { return NewBillow(bounded, o, 2.0, 0.5, 0) },
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			for octaves := 1; octaves <= 10; octaves++ {
				node := build(octaves)
				for i := 0; i < 100; i++ {
					x := float64(i)*2.13 - 90
					y := float64(i)*1.77 + 33
					v := node.Evaluate2D(testSeed, x, y)
					if math.Abs(v) > 2 {
						t.Fatalf("octaves=%d: |%v| > 2 at (%v, %v)", octaves, v, x, y)
					}
				}
			}
		})
	}
}

func TestFractalSeedDecorrelatesOctaves(t *testing.T) {
	g := NewDefault()
	src := g.Simplex().Frequency(0.05)

	one := g.FBm(src, 1)
	five := g.FBm(src, 5)

	differs := false
	for i := 0; i < 20 && !differs; i++ {
		x := float64(i) * 4.7
		differs = one.Evaluate2D(testSeed, x, x) != five.Evaluate2D(testSeed, x, x)
	}
	if !differs {
		t.Error("octave count had no effect on output")
	}
}

func TestSourceFrequencyRebuild(t *testing.T) {
	src := NewSimplex(false, 0.5)
	rebuilt := src.Frequency(0.25)

	if rebuilt == src {
		t.Fatal("Frequency returned the receiver instead of a new node")
	}
	if src.GetFrequency() != 0.5 {
		t.Errorf("original frequency changed to %v", src.GetFrequency())
	}
	if rebuilt.GetFrequency() != 0.25 {
		t.Errorf("rebuilt frequency = %v, want 0.25", rebuilt.GetFrequency())
	}

	// Halving the frequency equals sampling the original at halved coords.
	if got, want := rebuilt.Evaluate2D(testSeed, 8, 12), src.Evaluate2D(testSeed, 4, 6); got != want {
		t.Errorf("frequency scaling: got %v, want %v", got, want)
	}
}

func TestCellularNodeRebuilders(t *testing.T) {
	n := NewCellular(noise.EuclideanSq, noise.Distance, 1, 0.1)

	m := n.WithReturnType(noise.CellValue).WithDistanceFunc(noise.Manhattan).WithJitter(0.5)
	if m.ReturnType() != noise.CellValue || m.DistanceFunc() != noise.Manhattan || m.Jitter() != 0.5 {
		t.Errorf("rebuilders lost settings: %v %v %v", m.DistanceFunc(), m.ReturnType(), m.Jitter())
	}
	if n.ReturnType() != noise.Distance || n.DistanceFunc() != noise.EuclideanSq {
		t.Error("rebuilders mutated the original node")
	}
}

func TestTypeTags(t *testing.T) {
	g := NewDefault()
	cases := []struct {
		node Node
		want string
	}{
		{g.Constant(1), "Constant"},
		{g.Simplex(), "Simplex"},
		{g.SimplexSmooth(), "SimplexSmooth"},
		{g.Perlin(), "Perlin"},
		{g.Value(), "Value"},
		{g.ValueCubic(), "ValueCubic"},
		{g.Cellular(), "Cellular"},
		{g.Simplex4D(), "Simplex4D"},
		{g.FBm(g.Simplex(), 2), "FBm"},
		{g.Ridged(g.Simplex(), 2), "Ridged"},
		{g.Billow(g.Simplex(), 2), "Billow"},
		{g.HybridMulti(g.Simplex(), 2), "HybridMulti"},
		{NewAdd(g.Simplex(), g.Perlin()), "Add"},
		{NewSubtract(g.Simplex(), g.Perlin()), "Subtract"},
		{NewMultiply(g.Simplex(), g.Perlin()), "Multiply"},
		{NewMin(g.Simplex(), g.Perlin()), "Min"},
		{NewMax(g.Simplex(), g.Perlin()), "Max"},
		{NewBlend(g.Simplex(), g.Perlin(), g.Constant(0.5)), "Blend"},
		{NewDomainScale(g.Simplex(), 2), "DomainScale"},
		{NewDomainOffset(g.Simplex(), 1, 2, 3), "DomainOffset"},
		{NewClamp(g.Simplex(), -1, 1), "Clamp"},
		{NewAbsolute(g.Simplex()), "Absolute"},
		{NewInvert(g.Simplex()), "Invert"},
		{NewDomainWarp(g.Simplex(), g.Perlin(), 10), "DomainWarp"},
	}

	for _, tc := range cases {
		if got := tc.node.Type(); got != tc.want {
			t.Errorf("Type() = %q, want %q", got, tc.want)
		}
	}
}

func TestValidate(t *testing.T) {
	g := NewDefault()
	good := From(g.Simplex().Frequency(0.01)).FBm(5).Warp(g.Perlin(), 10).Node
	if err := Validate(good); err != nil {
		t.Errorf("Validate on a well-formed graph: %v", err)
	}

	if err := Validate(nil); err == nil {
		t.Error("Validate(nil) returned no error")
	}

	loop := &selfLoopNode{}
	loop.child = loop
	if err := Validate(loop); err == nil {
		t.Error("Validate did not detect a cycle")
	}
}

// selfLoopNode is a hand-rolled node that illegally references itself.
type selfLoopNode struct {
	child Node
}

func (n *selfLoopNode) Evaluate2D(seed int32, x, y float64) float64 { return 0 }

func (n *selfLoopNode) Evaluate3D(seed int32, x, y, z float64) float64 { return 0 }

func (n *selfLoopNode) Evaluate4D(seed int32, x, y, z, w float64) float64 { return 0 }

func (n *selfLoopNode) Supports4D() bool { return false }

func (n *selfLoopNode) Type() string { return "SelfLoop" }

func (n *selfLoopNode) Children() []Node { return []Node{n.child} }

func TestTransformNodeNarrowsToFloat32(t *testing.T) {
	g := NewDefault()
	src := g.Simplex().Frequency(0.05)

	var seen float32
	capture := transform.Func{Fn: func(v float32) float32 {
		seen = v
		return v * 2
	}}
	node := NewTransform(src, capture)

	got := node.Evaluate2D(testSeed, 5.5, -2.5)
	want := src.Evaluate2D(testSeed, 5.5, -2.5)

	if seen != float32(want) {
		t.Errorf("transform received %v, want float32-narrowed %v", seen, float32(want))
	}
	if got != float64(float32(want)*2) {
		t.Errorf("transform output %v, want %v", got, float64(float32(want)*2))
	}
}

func TestEndToEndScenario(t *testing.T) {
	g := New(1337)
	node := g.FBm(g.Simplex().Frequency(0.01), 5)

	v1 := node.Evaluate2D(1337, 100.0, 200.0)
	v2 := node.Evaluate2D(1337, 100.0, 200.0)
	if v1 != v2 {
		t.Fatalf("end-to-end evaluation not deterministic: %v != %v", v1, v2)
	}
	if math.IsNaN(v1) || math.IsInf(v1, 0) || v1 < -2 || v1 > 2 {
		t.Fatalf("end-to-end value %v outside [-2, 2]", v1)
	}
}
