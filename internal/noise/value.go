package noise

// Value generates interpolated lattice value noise. The Cubic variant
// interpolates through a 4-point neighborhood for smoother results at the
// cost of a slightly wider output range, compensated by a bounding factor.
type Value struct {
	Cubic bool
}

func (v Value) Single2D(seed int32, x, y float32) float32 {
	if v.Cubic {
		return valueCubic2D(seed, x, y)
	}

	x0 := fastFloor(x)
	y0 := fastFloor(y)

	xs := interpHermite(x - float32(x0))
	ys := interpHermite(y - float32(y0))

	xp0 := x0 * primeX
	yp0 := y0 * primeY
	xp1 := xp0 + primeX
	yp1 := yp0 + primeY

	xf0 := lerpf(valCoord2(seed, xp0, yp0), valCoord2(seed, xp1, yp0), xs)
	xf1 := lerpf(valCoord2(seed, xp0, yp1), valCoord2(seed, xp1, yp1), xs)

	return lerpf(xf0, xf1, ys)
}

func (v Value) Single3D(seed int32, x, y, z float32) float32 {
	if v.Cubic {
		return valueCubic3D(seed, x, y, z)
	}

	x0 := fastFloor(x)
	y0 := fastFloor(y)
	z0 := fastFloor(z)

	xs := interpHermite(x - float32(x0))
	ys := interpHermite(y - float32(y0))
	zs := interpHermite(z - float32(z0))

	xp0 := x0 * primeX
	yp0 := y0 * primeY
	zp0 := z0 * primeZ
	xp1 := xp0 + primeX
	yp1 := yp0 + primeY
	zp1 := zp0 + primeZ

	xf00 := lerpf(valCoord3(seed, xp0, yp0, zp0), valCoord3(seed, xp1, yp0, zp0), xs)
	xf10 := lerpf(valCoord3(seed, xp0, yp1, zp0), valCoord3(seed, xp1, yp1, zp0), xs)
	xf01 := lerpf(valCoord3(seed, xp0, yp0, zp1), valCoord3(seed, xp1, yp0, zp1), xs)
	xf11 := lerpf(valCoord3(seed, xp0, yp1, zp1), valCoord3(seed, xp1, yp1, zp1), xs)

	yf0 := lerpf(xf00, xf10, ys)
	yf1 := lerpf(xf01, xf11, ys)

	return lerpf(yf0, yf1, zs)
}

func (v Value) Single4D(seed int32, x, y, z, w float32) float32 {
	panic("noise: 4D evaluation not supported by value generator")
}

func (v Value) Supports4D() bool { return false }

// Cubic interpolation can overshoot; 1/(1.5*1.5) keeps 2D output near [-1, 1].
const (
	valueCubicBound2D float32 = 1.0 / (1.5 * 1.5)
	valueCubicBound3D float32 = 1.0 / (1.5 * 1.5 * 1.5)
)

func valueCubic2D(seed int32, x, y float32) float32 {
	x1 := fastFloor(x)
	y1 := fastFloor(y)

	xs := x - float32(x1)
	ys := y - float32(y1)

	xp1 := x1 * primeX
	yp1 := y1 * primeY
	xp0 := xp1 - primeX
	yp0 := yp1 - primeY
	xp2 := xp1 + primeX
	yp2 := yp1 + primeY
	xp3 := xp1 + 2*primeX
	yp3 := yp1 + primeY + primeY

	row := func(yp int32) float32 {
		return cubicLerp(
			valCoord2(seed, xp0, yp), valCoord2(seed, xp1, yp),
			valCoord2(seed, xp2, yp), valCoord2(seed, xp3, yp), xs)
	}

	return cubicLerp(row(yp0), row(yp1), row(yp2), row(yp3), ys) * valueCubicBound2D
}

func valueCubic3D(seed int32, x, y, z float32) float32 {
	x1 := fastFloor(x)
	y1 := fastFloor(y)
	z1 := fastFloor(z)

	xs := x - float32(x1)
	ys := y - float32(y1)
	zs := z - float32(z1)

	xp := [4]int32{x1*primeX - primeX, x1 * primeX, x1*primeX + primeX, x1*primeX + 2*primeX}
	yp := [4]int32{y1*primeY - primeY, y1 * primeY, y1*primeY + primeY, y1*primeY + primeY + primeY}
	zp := [4]int32{z1*primeZ - primeZ, z1 * primeZ, z1*primeZ + primeZ, z1*primeZ + primeZ + primeZ}

	var slabs [4]float32
	for k := 0; k < 4; k++ {
		var rows [4]float32
		for j := 0; j < 4; j++ {
			rows[j] = cubicLerp(
				valCoord3(seed, xp[0], yp[j], zp[k]), valCoord3(seed, xp[1], yp[j], zp[k]),
				valCoord3(seed, xp[2], yp[j], zp[k]), valCoord3(seed, xp[3], yp[j], zp[k]), xs)
		}
		slabs[k] = cubicLerp(rows[0], rows[1], rows[2], rows[3], ys)
	}

	return cubicLerp(slabs[0], slabs[1], slabs[2], slabs[3], zs) * valueCubicBound3D
}
