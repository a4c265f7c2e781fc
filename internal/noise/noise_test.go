package noise

import (
	"math"
	"testing"
)

func allGenerators() map[string]Generator {
	return map[string]Generator{
		"simplex":        Simplex{},
		"simplex-smooth": Simplex{Smooth: true},
		"perlin":         Perlin{},
		"value":          Value{},
		"value-cubic":    Value{Cubic: true},
		"cellular":       Cellular{DistanceFunc: EuclideanSq, ReturnType: Distance, Jitter: 1},
		"simplex-4d":     Simplex4D{},
	}
}

func TestGeneratorsDeterministic(t *testing.T) {
	for name, gen := range allGenerators() {
		t.Run(name, func(t *testing.T) {
			a := gen.Single2D(1337, 12.5, -3.75)
			b := gen.Single2D(1337, 12.5, -3.75)
			if a != b {
				t.Errorf("Single2D not deterministic: %v != %v", a, b)
			}

			a = gen.Single3D(1337, 12.5, -3.75, 0.25)
			b = gen.Single3D(1337, 12.5, -3.75, 0.25)
			if a != b {
				t.Errorf("Single3D not deterministic: %v != %v", a, b)
			}
		})
	}
}

func TestGeneratorsSeedChangesOutput(t *testing.T) {
	for name, gen := range allGenerators() {
		t.Run(name, func(t *testing.T) {
			same := 0
			total := 0
			for i := 0; i < 32; i++ {
				x := float32(i)*0.73 + 0.31
				y := float32(i)*1.19 - 4.2
				if gen.Single2D(1, x, y) == gen.Single2D(2, x, y) {
					same++
				}
				total++
			}
			if same == total {
				t.Errorf("seed had no effect on any of %d samples", total)
			}
		})
	}
}

func TestGeneratorsBounded(t *testing.T) {
	// Kernel scales are tuned empirically, so allow a little headroom
	// beyond the nominal [-1, 1] range.
	const bound = 1.5

	for name, gen := range allGenerators() {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 500; i++ {
				x := float32(i)*0.137 - 31.7
				y := float32(i)*0.291 + 12.3
				z := float32(i)*0.173 - 7.9

				if v := gen.Single2D(42, x, y); float32(math.Abs(float64(v))) > bound {
					t.Fatalf("Single2D(%v, %v) = %v, out of range", x, y, v)
				}
				if v := gen.Single3D(42, x, y, z); float32(math.Abs(float64(v))) > bound {
					t.Fatalf("Single3D(%v, %v, %v) = %v, out of range", x, y, z, v)
				}
			}
		})
	}
}

func TestSupports4D(t *testing.T) {
	for name, gen := range allGenerators() {
		want := name == "simplex-4d"
		if got := gen.Supports4D(); got != want {
			t.Errorf("%s: Supports4D() = %v, want %v", name, got, want)
		}
	}
}

func TestSingle4DPanicsWhenUnsupported(t *testing.T) {
	for name, gen := range allGenerators() {
		if gen.Supports4D() {
			continue
		}
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Single4D did not panic")
				}
			}()
			gen.Single4D(0, 0, 0, 0, 0)
		})
	}
}

func TestSimplex4DSliceConsistency(t *testing.T) {
	gen := Simplex4D{}
	for i := 0; i < 50; i++ {
		x := float32(i)*0.41 - 10
		y := float32(i)*0.67 + 3

		if got, want := gen.Single2D(7, x, y), gen.Single4D(7, x, y, 0, 0); got != want {
			t.Fatalf("Single2D(%v, %v) = %v, want 4D slice value %v", x, y, got, want)
		}
		z := float32(i) * 0.13
		if got, want := gen.Single3D(7, x, y, z), gen.Single4D(7, x, y, z, 0); got != want {
			t.Fatalf("Single3D(%v, %v, %v) = %v, want 4D slice value %v", x, y, z, got, want)
		}
	}
}

func TestCellularDistanceOrdering(t *testing.T) {
	// The second-closest distance can never beat the closest one, so
	// Distance2Sub output stays at or above -1.
	gen := Cellular{DistanceFunc: Euclidean, ReturnType: Distance2Sub, Jitter: 1}
	for i := 0; i < 200; i++ {
		x := float32(i)*0.37 - 20
		y := float32(i)*0.59 + 5
		if v := gen.Single2D(99, x, y); v < -1 {
			t.Fatalf("Distance2Sub(%v, %v) = %v, below -1", x, y, v)
		}
		if v := gen.Single3D(99, x, y, x*0.5); v < -1 {
			t.Fatalf("Distance2Sub 3D(%v, %v) = %v, below -1", x, y, v)
		}
	}
}

func TestCellularReturnTypesDiffer(t *testing.T) {
	base := Cellular{DistanceFunc: EuclideanSq, Jitter: 1}
	returns := []ReturnType{CellValue, Distance, Distance2, Distance2Add, Distance2Sub, Distance2Mul, Distance2Div}

	seen := make(map[float32]bool)
	for _, rt := range returns {
		gen := base
		gen.ReturnType = rt
		seen[gen.Single2D(1337, 3.7, -1.9)] = true
	}
	if len(seen) < 2 {
		t.Errorf("all return types produced the same output")
	}
}

func TestDistanceFuncStrings(t *testing.T) {
	cases := []struct {
		fn   DistanceFunc
		want string
	}{
		{Euclidean, "Euclidean"},
		{EuclideanSq, "EuclideanSq"},
		{Manhattan, "Manhattan"},
		{Hybrid, "Hybrid"},
		{DistanceFunc(99), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.fn.String(); got != tc.want {
			t.Errorf("DistanceFunc(%d).String() = %q, want %q", tc.fn, got, tc.want)
		}
	}
}
