// Package noise provides stateless lattice-noise generators.
//
// Every generator is a pure function of (seed, coordinates): the seed is a
// per-call parameter hashed together with primed lattice coordinates, so a
// single generator value can be shared freely across goroutines and reused
// with any number of seeds. All outputs are approximately in [-1, 1].
package noise

import "math"

// Generator is the contract consumed by graph source nodes.
//
// Single4D must only be called when Supports4D reports true; calling it on
// an incapable generator panics.
type Generator interface {
	Single2D(seed int32, x, y float32) float32
	Single3D(seed int32, x, y, z float32) float32
	Single4D(seed int32, x, y, z, w float32) float32
	Supports4D() bool
}

// Lattice coordinate primes. Multiplying integer lattice coordinates by
// large primes before hashing decorrelates neighboring cells.
const (
	primeX int32 = 501125321
	primeY int32 = 1136930381
	primeZ int32 = 1720413743
	primeW int32 = 1066037191
)

func hash2(seed, xPrimed, yPrimed int32) int32 {
	h := seed ^ xPrimed ^ yPrimed
	h *= 0x27d4eb2d
	return h
}

func hash3(seed, xPrimed, yPrimed, zPrimed int32) int32 {
	h := seed ^ xPrimed ^ yPrimed ^ zPrimed
	h *= 0x27d4eb2d
	return h
}

func hash4(seed, xPrimed, yPrimed, zPrimed, wPrimed int32) int32 {
	h := seed ^ xPrimed ^ yPrimed ^ zPrimed ^ wPrimed
	h *= 0x27d4eb2d
	return h
}

// valCoord2 maps a lattice corner to a pseudo-random value in [-1, 1].
func valCoord2(seed, xPrimed, yPrimed int32) float32 {
	h := hash2(seed, xPrimed, yPrimed)
	h *= h
	h ^= h << 19
	return float32(h) * (1.0 / 2147483648.0)
}

func valCoord3(seed, xPrimed, yPrimed, zPrimed int32) float32 {
	h := hash3(seed, xPrimed, yPrimed, zPrimed)
	h *= h
	h ^= h << 19
	return float32(h) * (1.0 / 2147483648.0)
}

var grad2 = [8][2]float32{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

var grad3 = [12][3]float32{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

var grad4 = [32][4]float32{
	{0, 1, 1, 1}, {0, 1, 1, -1}, {0, 1, -1, 1}, {0, 1, -1, -1},
	{0, -1, 1, 1}, {0, -1, 1, -1}, {0, -1, -1, 1}, {0, -1, -1, -1},
	{1, 0, 1, 1}, {1, 0, 1, -1}, {1, 0, -1, 1}, {1, 0, -1, -1},
	{-1, 0, 1, 1}, {-1, 0, 1, -1}, {-1, 0, -1, 1}, {-1, 0, -1, -1},
	{1, 1, 0, 1}, {1, 1, 0, -1}, {1, -1, 0, 1}, {1, -1, 0, -1},
	{-1, 1, 0, 1}, {-1, 1, 0, -1}, {-1, -1, 0, 1}, {-1, -1, 0, -1},
	{1, 1, 1, 0}, {1, 1, -1, 0}, {1, -1, 1, 0}, {1, -1, -1, 0},
	{-1, 1, 1, 0}, {-1, 1, -1, 0}, {-1, -1, 1, 0}, {-1, -1, -1, 0},
}

func gradCoord2(seed, xPrimed, yPrimed int32, xd, yd float32) float32 {
	h := hash2(seed, xPrimed, yPrimed)
	h ^= h >> 15
	g := grad2[uint32(h)&7]
	return xd*g[0] + yd*g[1]
}

func gradCoord3(seed, xPrimed, yPrimed, zPrimed int32, xd, yd, zd float32) float32 {
	h := hash3(seed, xPrimed, yPrimed, zPrimed)
	h ^= h >> 15
	g := grad3[uint32(h)%12]
	return xd*g[0] + yd*g[1] + zd*g[2]
}

func gradCoord4(seed, xPrimed, yPrimed, zPrimed, wPrimed int32, xd, yd, zd, wd float32) float32 {
	h := hash4(seed, xPrimed, yPrimed, zPrimed, wPrimed)
	h ^= h >> 15
	g := grad4[uint32(h)&31]
	return xd*g[0] + yd*g[1] + zd*g[2] + wd*g[3]
}

func fastFloor(f float32) int32 {
	if f >= 0 {
		return int32(f)
	}
	return int32(f) - 1
}

func fastRound(f float32) int32 {
	if f >= 0 {
		return int32(f + 0.5)
	}
	return int32(f - 0.5)
}

func lerpf(a, b, t float32) float32 { return a + (b-a)*t }

// interpHermite is the classic 3t^2 - 2t^3 smoothstep.
func interpHermite(t float32) float32 { return t * t * (3 - 2*t) }

// interpQuintic is Perlin's improved 6t^5 - 15t^4 + 10t^3 fade curve.
func interpQuintic(t float32) float32 { return t * t * t * (t*(t*6-15) + 10) }

// cubicLerp interpolates through four samples with a Catmull-Rom style cubic.
func cubicLerp(a, b, c, d, t float32) float32 {
	p := (d - c) - (a - b)
	return t*t*t*p + t*t*((a-b)-p) + t*(c-a) + b
}

func sqrtf(f float32) float32 { return float32(math.Sqrt(float64(f))) }

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
