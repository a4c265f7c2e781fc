package graph

import "math"

// Defaults applied by the Graph factory's fractal constructors.
const (
	DefaultLacunarity = 2.0
	DefaultGain       = 0.5
)

// fractal carries the octave parameters shared by every fractal node kind.
// fractalBounding normalizes the octave sum so output stays near [-1, 1].
type fractal struct {
	child            Node
	octaves          int
	lacunarity       float64
	gain             float64
	weightedStrength float64
	bounding         float64
	tag              string
}

func newFractal(tag string, child Node, octaves int, lacunarity, gain, weightedStrength float64) fractal {
	mustChildren(tag, child)
	if octaves < 1 {
		panic("graph: " + tag + " node requires at least 1 octave")
	}
	return fractal{
		child:            child,
		octaves:          octaves,
		lacunarity:       lacunarity,
		gain:             gain,
		weightedStrength: weightedStrength,
		bounding:         fractalBounding(octaves, gain),
		tag:              tag,
	}
}

// fractalBounding is 1 over the geometric amplitude sum of all octaves.
func fractalBounding(octaves int, gain float64) float64 {
	amp := gain
	ampFractal := 1.0
	for i := 1; i < octaves; i++ {
		ampFractal += amp
		amp *= gain
	}
	return 1.0 / ampFractal
}

func (f *fractal) Supports4D() bool { return f.child.Supports4D() }

func (f *fractal) Type() string { return f.tag }

func (f *fractal) Children() []Node { return []Node{f.child} }

// Octaves reports the number of noise layers combined.
func (f *fractal) Octaves() int { return f.octaves }

// Lacunarity reports the per-octave frequency multiplier.
func (f *fractal) Lacunarity() float64 { return f.lacunarity }

// Gain reports the per-octave amplitude multiplier.
func (f *fractal) Gain() float64 { return f.gain }

// FBmNode sums octaves of its child with geometrically decreasing amplitude,
// the classic fractional Brownian motion.
type FBmNode struct {
	fractal
}

// NewFBm creates a fractional Brownian motion node over child.
func NewFBm(child Node, octaves int, lacunarity, gain float64) *FBmNode {
	return &FBmNode{fractal: newFractal("FBm", child, octaves, lacunarity, gain, 0)}
}

func (n *FBmNode) Evaluate2D(seed int32, x, y float64) float64 {
	sum := 0.0
	amp := n.bounding

	for i := 0; i < n.octaves; i++ {
		sum += n.child.Evaluate2D(seed, x, y) * amp
		seed++
		x *= n.lacunarity
		y *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

func (n *FBmNode) Evaluate3D(seed int32, x, y, z float64) float64 {
	sum := 0.0
	amp := n.bounding

	for i := 0; i < n.octaves; i++ {
		sum += n.child.Evaluate3D(seed, x, y, z) * amp
		seed++
		x *= n.lacunarity
		y *= n.lacunarity
		z *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

func (n *FBmNode) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	must4D(n)

	sum := 0.0
	amp := n.bounding

	for i := 0; i < n.octaves; i++ {
		sum += n.child.Evaluate4D(seed, x, y, z, w) * amp
		seed++
		x *= n.lacunarity
		y *= n.lacunarity
		z *= n.lacunarity
		w *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

// RidgedNode builds sharp inverted-peak ridges by folding each octave around
// zero. weightedStrength dampens later octaves near ridge crests.
type RidgedNode struct {
	fractal
}

// NewRidged creates a ridged multifractal node over child.
func NewRidged(child Node, octaves int, lacunarity, gain, weightedStrength float64) *RidgedNode {
	return &RidgedNode{fractal: newFractal("Ridged", child, octaves, lacunarity, gain, weightedStrength)}
}

// WeightedStrength reports the octave weighting factor.
func (n *RidgedNode) WeightedStrength() float64 { return n.weightedStrength }

func (n *RidgedNode) Evaluate2D(seed int32, x, y float64) float64 {
	sum := 0.0
	amp := n.bounding

	for i := 0; i < n.octaves; i++ {
		v := math.Abs(n.child.Evaluate2D(seed, x, y))
		sum += (v*-2 + 1) * amp
		amp *= lerp(1, 1-v, n.weightedStrength)

		seed++
		x *= n.lacunarity
		y *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

func (n *RidgedNode) Evaluate3D(seed int32, x, y, z float64) float64 {
	sum := 0.0
	amp := n.bounding

	for i := 0; i < n.octaves; i++ {
		v := math.Abs(n.child.Evaluate3D(seed, x, y, z))
		sum += (v*-2 + 1) * amp
		amp *= lerp(1, 1-v, n.weightedStrength)

		seed++
		x *= n.lacunarity
		y *= n.lacunarity
		z *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

func (n *RidgedNode) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	must4D(n)

	sum := 0.0
	amp := n.bounding

	for i := 0; i < n.octaves; i++ {
		v := math.Abs(n.child.Evaluate4D(seed, x, y, z, w))
		sum += (v*-2 + 1) * amp
		amp *= lerp(1, 1-v, n.weightedStrength)

		seed++
		x *= n.lacunarity
		y *= n.lacunarity
		z *= n.lacunarity
		w *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

// BillowNode folds each octave to its magnitude before recentering, which
// rounds valleys into soft cloud-like hills.
type BillowNode struct {
	fractal
}

// NewBillow creates a billow fractal node over child.
func NewBillow(child Node, octaves int, lacunarity, gain, weightedStrength float64) *BillowNode {
	return &BillowNode{fractal: newFractal("Billow", child, octaves, lacunarity, gain, weightedStrength)}
}

// WeightedStrength reports the octave weighting factor.
func (n *BillowNode) WeightedStrength() float64 { return n.weightedStrength }

func (n *BillowNode) Evaluate2D(seed int32, x, y float64) float64 {
	sum := 0.0
	amp := n.bounding

	for i := 0; i < n.octaves; i++ {
		v := math.Abs(n.child.Evaluate2D(seed, x, y))*2 - 1
		sum += v * amp
		amp *= lerp(1, (v+1)*0.5, n.weightedStrength)

		seed++
		x *= n.lacunarity
		y *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

func (n *BillowNode) Evaluate3D(seed int32, x, y, z float64) float64 {
	sum := 0.0
	amp := n.bounding

	for i := 0; i < n.octaves; i++ {
		v := math.Abs(n.child.Evaluate3D(seed, x, y, z))*2 - 1
		sum += v * amp
		amp *= lerp(1, (v+1)*0.5, n.weightedStrength)

		seed++
		x *= n.lacunarity
		y *= n.lacunarity
		z *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

func (n *BillowNode) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	must4D(n)

	sum := 0.0
	amp := n.bounding

	for i := 0; i < n.octaves; i++ {
		v := math.Abs(n.child.Evaluate4D(seed, x, y, z, w))*2 - 1
		sum += v * amp
		amp *= lerp(1, (v+1)*0.5, n.weightedStrength)

		seed++
		x *= n.lacunarity
		y *= n.lacunarity
		z *= n.lacunarity
		w *= n.lacunarity
		amp *= n.gain
	}
	return sum
}

// HybridMultiNode blends octaves multiplicatively: the first octave is added
// directly and later octaves are weighted by the accumulated signal, so flat
// regions stay smooth while rough regions pick up detail. The running weight
// is capped at 1 but never floored.
type HybridMultiNode struct {
	fractal
}

// NewHybridMulti creates a hybrid multifractal node over child.
func NewHybridMulti(child Node, octaves int, lacunarity, gain float64) *HybridMultiNode {
	return &HybridMultiNode{fractal: newFractal("HybridMulti", child, octaves, lacunarity, gain, 0)}
}

func (n *HybridMultiNode) Evaluate2D(seed int32, x, y float64) float64 {
	// First octave shifted to [0, 2] seeds the weight.
	result := n.child.Evaluate2D(seed, x, y) + 1
	weight := result
	amp := n.gain
	seed++
	x *= n.lacunarity
	y *= n.lacunarity

	for i := 1; i < n.octaves; i++ {
		if weight > 1 {
			weight = 1
		}

		noise := (n.child.Evaluate2D(seed, x, y) + 1) * amp
		result += weight * noise
		weight *= noise

		seed++
		x *= n.lacunarity
		y *= n.lacunarity
		amp *= n.gain
	}
	return result*n.bounding - 1
}

func (n *HybridMultiNode) Evaluate3D(seed int32, x, y, z float64) float64 {
	result := n.child.Evaluate3D(seed, x, y, z) + 1
	weight := result
	amp := n.gain
	seed++
	x *= n.lacunarity
	y *= n.lacunarity
	z *= n.lacunarity

	for i := 1; i < n.octaves; i++ {
		if weight > 1 {
			weight = 1
		}

		noise := (n.child.Evaluate3D(seed, x, y, z) + 1) * amp
		result += weight * noise
		weight *= noise

		seed++
		x *= n.lacunarity
		y *= n.lacunarity
		z *= n.lacunarity
		amp *= n.gain
	}
	return result*n.bounding - 1
}

func (n *HybridMultiNode) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	must4D(n)

	result := n.child.Evaluate4D(seed, x, y, z, w) + 1
	weight := result
	amp := n.gain
	seed++
	x *= n.lacunarity
	y *= n.lacunarity
	z *= n.lacunarity
	w *= n.lacunarity

	for i := 1; i < n.octaves; i++ {
		if weight > 1 {
			weight = 1
		}

		noise := (n.child.Evaluate4D(seed, x, y, z, w) + 1) * amp
		result += weight * noise
		weight *= noise

		seed++
		x *= n.lacunarity
		y *= n.lacunarity
		z *= n.lacunarity
		w *= n.lacunarity
		amp *= n.gain
	}
	return result*n.bounding - 1
}
