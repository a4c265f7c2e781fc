// Package bulk fills arrays by repeated point evaluation of a noise graph.
//
// Bulk filling amortizes loop overhead only; every output element is exactly
// the value the node's own Evaluate method returns at the corresponding
// coordinate, so bulk and point evaluation never diverge numerically. An
// Evaluator holds nothing but a seed and may be shared across goroutines.
package bulk

import "github.com/MeKo-Tech/noisegen/internal/graph"

// Evaluator fills coordinate grids from a noise node with a fixed seed.
type Evaluator struct {
	seed int32
}

// New creates an evaluator using seed for every evaluation.
func New(seed int32) *Evaluator {
	return &Evaluator{seed: seed}
}

// Seed reports the evaluation seed.
func (e *Evaluator) Seed() int32 { return e.seed }

// Fill2D samples node over a width x height grid starting at (startX,
// startY) with uniform step. The result is indexed [y][x].
func (e *Evaluator) Fill2D(node graph.Node, width, height int, startX, startY, step float64) [][]float64 {
	result := make([][]float64, height)
	for y := 0; y < height; y++ {
		ny := startY + float64(y)*step
		row := make([]float64, width)
		for x := 0; x < width; x++ {
			nx := startX + float64(x)*step
			row[x] = node.Evaluate2D(e.seed, nx, ny)
		}
		result[y] = row
	}
	return result
}

// Fill2DRange samples node over a width x height grid spanning the inclusive
// rectangle [minX, maxX] x [minY, maxY]. The result is indexed [y][x].
func (e *Evaluator) Fill2DRange(node graph.Node, width, height int, minX, minY, maxX, maxY float64) [][]float64 {
	stepX := (maxX - minX) / float64(width-1)
	stepY := (maxY - minY) / float64(height-1)

	result := make([][]float64, height)
	for y := 0; y < height; y++ {
		ny := minY + float64(y)*stepY
		row := make([]float64, width)
		for x := 0; x < width; x++ {
			nx := minX + float64(x)*stepX
			row[x] = node.Evaluate2D(e.seed, nx, ny)
		}
		result[y] = row
	}
	return result
}

// Fill2DFlat samples node over a width x height grid into one contiguous
// buffer in row-major order (index y*width + x).
func (e *Evaluator) Fill2DFlat(node graph.Node, width, height int, startX, startY, step float64) []float64 {
	result := make([]float64, width*height)
	for y := 0; y < height; y++ {
		ny := startY + float64(y)*step
		rowOffset := y * width
		for x := 0; x < width; x++ {
			nx := startX + float64(x)*step
			result[rowOffset+x] = node.Evaluate2D(e.seed, nx, ny)
		}
	}
	return result
}

// Fill3D samples node over a width x height x depth grid. The result is
// indexed [z][y][x].
func (e *Evaluator) Fill3D(node graph.Node, width, height, depth int, startX, startY, startZ, step float64) [][][]float64 {
	result := make([][][]float64, depth)
	for z := 0; z < depth; z++ {
		nz := startZ + float64(z)*step
		slab := make([][]float64, height)
		for y := 0; y < height; y++ {
			ny := startY + float64(y)*step
			row := make([]float64, width)
			for x := 0; x < width; x++ {
				nx := startX + float64(x)*step
				row[x] = node.Evaluate3D(e.seed, nx, ny, nz)
			}
			slab[y] = row
		}
		result[z] = slab
	}
	return result
}

// Fill3DFlat samples node over a width x height x depth grid into one
// contiguous buffer (index z*height*width + y*width + x).
func (e *Evaluator) Fill3DFlat(node graph.Node, width, height, depth int, startX, startY, startZ, step float64) []float64 {
	result := make([]float64, width*height*depth)
	for z := 0; z < depth; z++ {
		nz := startZ + float64(z)*step
		slabOffset := z * height * width
		for y := 0; y < height; y++ {
			ny := startY + float64(y)*step
			rowOffset := y * width
			for x := 0; x < width; x++ {
				nx := startX + float64(x)*step
				result[slabOffset+rowOffset+x] = node.Evaluate3D(e.seed, nx, ny, nz)
			}
		}
	}
	return result
}

// Fill2DFloat32 is Fill2D for consumers working in single precision.
func (e *Evaluator) Fill2DFloat32(node graph.Node, width, height int, startX, startY, step float64) [][]float32 {
	result := make([][]float32, height)
	for y := 0; y < height; y++ {
		ny := startY + float64(y)*step
		row := make([]float32, width)
		for x := 0; x < width; x++ {
			nx := startX + float64(x)*step
			row[x] = float32(node.Evaluate2D(e.seed, nx, ny))
		}
		result[y] = row
	}
	return result
}

// FillLine2D samples node at length points stepping from (startX, startY)
// along the direction (stepX, stepY).
func (e *Evaluator) FillLine2D(node graph.Node, length int, startX, startY, stepX, stepY float64) []float64 {
	result := make([]float64, length)
	for i := 0; i < length; i++ {
		x := startX + float64(i)*stepX
		y := startY + float64(i)*stepY
		result[i] = node.Evaluate2D(e.seed, x, y)
	}
	return result
}
