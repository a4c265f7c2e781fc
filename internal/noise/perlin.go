package noise

// Perlin generates classic gradient noise with a quintic fade curve.
type Perlin struct{}

func (Perlin) Single2D(seed int32, x, y float32) float32 {
	x0 := fastFloor(x)
	y0 := fastFloor(y)

	xd0 := x - float32(x0)
	yd0 := y - float32(y0)
	xd1 := xd0 - 1
	yd1 := yd0 - 1

	xs := interpQuintic(xd0)
	ys := interpQuintic(yd0)

	xp0 := x0 * primeX
	yp0 := y0 * primeY
	xp1 := xp0 + primeX
	yp1 := yp0 + primeY

	xf0 := lerpf(gradCoord2(seed, xp0, yp0, xd0, yd0), gradCoord2(seed, xp1, yp0, xd1, yd0), xs)
	xf1 := lerpf(gradCoord2(seed, xp0, yp1, xd0, yd1), gradCoord2(seed, xp1, yp1, xd1, yd1), xs)

	return lerpf(xf0, xf1, ys) * 1.4247691104677813
}

func (Perlin) Single3D(seed int32, x, y, z float32) float32 {
	x0 := fastFloor(x)
	y0 := fastFloor(y)
	z0 := fastFloor(z)

	xd0 := x - float32(x0)
	yd0 := y - float32(y0)
	zd0 := z - float32(z0)
	xd1 := xd0 - 1
	yd1 := yd0 - 1
	zd1 := zd0 - 1

	xs := interpQuintic(xd0)
	ys := interpQuintic(yd0)
	zs := interpQuintic(zd0)

	xp0 := x0 * primeX
	yp0 := y0 * primeY
	zp0 := z0 * primeZ
	xp1 := xp0 + primeX
	yp1 := yp0 + primeY
	zp1 := zp0 + primeZ

	xf00 := lerpf(gradCoord3(seed, xp0, yp0, zp0, xd0, yd0, zd0), gradCoord3(seed, xp1, yp0, zp0, xd1, yd0, zd0), xs)
	xf10 := lerpf(gradCoord3(seed, xp0, yp1, zp0, xd0, yd1, zd0), gradCoord3(seed, xp1, yp1, zp0, xd1, yd1, zd0), xs)
	xf01 := lerpf(gradCoord3(seed, xp0, yp0, zp1, xd0, yd0, zd1), gradCoord3(seed, xp1, yp0, zp1, xd1, yd0, zd1), xs)
	xf11 := lerpf(gradCoord3(seed, xp0, yp1, zp1, xd0, yd1, zd1), gradCoord3(seed, xp1, yp1, zp1, xd1, yd1, zd1), xs)

	yf0 := lerpf(xf00, xf10, ys)
	yf1 := lerpf(xf01, xf11, ys)

	return lerpf(yf0, yf1, zs) * 0.9649214148521423
}

func (Perlin) Single4D(seed int32, x, y, z, w float32) float32 {
	panic("noise: 4D evaluation not supported by perlin generator")
}

func (Perlin) Supports4D() bool { return false }
