// Package transform provides pure value transforms applied to noise output.
//
// Transforms operate in single precision, the representation used at the
// graph's transform boundary, and must be deterministic and stateless so a
// single transform can be shared across goroutines.
package transform

import (
	"fmt"
	"math"
	"strings"
)

// Transform maps one noise value to another. Apply must be pure; Description
// is a human-readable tag for diagnostics.
type Transform interface {
	Apply(value float32) float32
	Description() string
}

// Func adapts a plain function into a Transform.
type Func struct {
	Fn   func(float32) float32
	Desc string
}

func (f Func) Apply(value float32) float32 { return f.Fn(value) }

func (f Func) Description() string {
	if f.Desc == "" {
		return "Func"
	}
	return f.Desc
}

// Range linearly remaps input from [-1, 1] into [Min, Max].
type Range struct {
	Min, Max float32
}

// NewRange creates a linear remap onto [min, max].
func NewRange(min, max float32) Range {
	return Range{Min: min, Max: max}
}

func (r Range) Apply(value float32) float32 {
	return (value+1)*0.5*(r.Max-r.Min) + r.Min
}

func (r Range) Description() string {
	return fmt.Sprintf("Range[%g, %g]", r.Min, r.Max)
}

// Power raises the input's magnitude to Exponent while preserving sign,
// pushing values toward zero (exponent > 1) or the extremes (exponent < 1).
type Power struct {
	Exponent float32
}

// NewPower creates a sign-preserving power transform.
func NewPower(exponent float32) Power {
	return Power{Exponent: exponent}
}

func (p Power) Apply(value float32) float32 {
	mag := float32(math.Pow(math.Abs(float64(value)), float64(p.Exponent)))
	if value < 0 {
		return -mag
	}
	return mag
}

func (p Power) Description() string {
	return fmt.Sprintf("Power[%g]", p.Exponent)
}

// Bias skews the value distribution using Schlick's bias curve. Bias 0.5 is
// an identity; values above 0.5 pull the distribution upward.
type Bias struct {
	Bias float32
}

// NewBias creates a Schlick bias transform.
func NewBias(bias float32) Bias {
	return Bias{Bias: bias}
}

func (b Bias) Apply(value float32) float32 {
	// Operate on [0, 1], then recenter to [-1, 1].
	t := (value + 1) * 0.5
	t = t / ((1/b.Bias-2)*(1-t) + 1)
	return t*2 - 1
}

func (b Bias) Description() string {
	return fmt.Sprintf("Bias[%g]", b.Bias)
}

// Terrace quantizes the input into Steps discrete plateaus across [-1, 1].
type Terrace struct {
	Steps int
}

// NewTerrace creates a step-quantization transform; steps must be positive.
func NewTerrace(steps int) Terrace {
	if steps < 1 {
		panic("transform: Terrace requires at least 1 step")
	}
	return Terrace{Steps: steps}
}

func (t Terrace) Apply(value float32) float32 {
	norm := (value + 1) * 0.5
	stepped := float32(math.Floor(float64(norm)*float64(t.Steps))) / float32(t.Steps)
	return stepped*2 - 1
}

func (t Terrace) Description() string {
	return fmt.Sprintf("Terrace[%d]", t.Steps)
}

// Chain applies a sequence of transforms in order.
type Chain struct {
	transforms []Transform
}

// NewChain composes transforms; panics on a nil element.
func NewChain(transforms ...Transform) Chain {
	for _, tr := range transforms {
		if tr == nil {
			panic("transform: Chain requires non-nil transforms")
		}
	}
	return Chain{transforms: transforms}
}

func (c Chain) Apply(value float32) float32 {
	for _, tr := range c.transforms {
		value = tr.Apply(value)
	}
	return value
}

func (c Chain) Description() string {
	parts := make([]string, len(c.transforms))
	for i, tr := range c.transforms {
		parts[i] = tr.Description()
	}
	return "Chain[" + strings.Join(parts, " -> ") + "]"
}
