package noise

// Simplex4D generates 4D simplex noise, the only generator in this package
// with genuine 4D support. 2D and 3D calls evaluate the 4D field with the
// missing axes held at zero so that an animated (w-varying) field lines up
// with its static slices.
type Simplex4D struct{}

const (
	// 4D skew/unskew factors: (sqrt(5)-1)/4 and (5-sqrt(5))/20.
	skew4D   float32 = 0.30901699437494745
	unskew4D float32 = 0.1381966011250105
)

func (Simplex4D) Single2D(seed int32, x, y float32) float32 {
	return simplex4D(seed, x, y, 0, 0)
}

func (Simplex4D) Single3D(seed int32, x, y, z float32) float32 {
	return simplex4D(seed, x, y, z, 0)
}

func (Simplex4D) Single4D(seed int32, x, y, z, w float32) float32 {
	return simplex4D(seed, x, y, z, w)
}

func (Simplex4D) Supports4D() bool { return true }

func simplex4D(seed int32, x, y, z, w float32) float32 {
	skew := (x + y + z + w) * skew4D
	i := fastFloor(x + skew)
	j := fastFloor(y + skew)
	k := fastFloor(z + skew)
	l := fastFloor(w + skew)

	unskew := float32(i+j+k+l) * unskew4D
	x0 := x - (float32(i) - unskew)
	y0 := y - (float32(j) - unskew)
	z0 := z - (float32(k) - unskew)
	w0 := w - (float32(l) - unskew)

	// Rank the fractional coordinates; the traversal order of the four
	// intermediate corners follows the descending ranking.
	var rankX, rankY, rankZ, rankW int
	if x0 > y0 {
		rankX++
	} else {
		rankY++
	}
	if x0 > z0 {
		rankX++
	} else {
		rankZ++
	}
	if x0 > w0 {
		rankX++
	} else {
		rankW++
	}
	if y0 > z0 {
		rankY++
	} else {
		rankZ++
	}
	if y0 > w0 {
		rankY++
	} else {
		rankW++
	}
	if z0 > w0 {
		rankZ++
	} else {
		rankW++
	}

	step := func(rank, threshold int) int32 {
		if rank >= threshold {
			return 1
		}
		return 0
	}

	i1, j1, k1, l1 := step(rankX, 3), step(rankY, 3), step(rankZ, 3), step(rankW, 3)
	i2, j2, k2, l2 := step(rankX, 2), step(rankY, 2), step(rankZ, 2), step(rankW, 2)
	i3, j3, k3, l3 := step(rankX, 1), step(rankY, 1), step(rankZ, 1), step(rankW, 1)

	x1 := x0 - float32(i1) + unskew4D
	y1 := y0 - float32(j1) + unskew4D
	z1 := z0 - float32(k1) + unskew4D
	w1 := w0 - float32(l1) + unskew4D

	x2 := x0 - float32(i2) + 2*unskew4D
	y2 := y0 - float32(j2) + 2*unskew4D
	z2 := z0 - float32(k2) + 2*unskew4D
	w2 := w0 - float32(l2) + 2*unskew4D

	x3 := x0 - float32(i3) + 3*unskew4D
	y3 := y0 - float32(j3) + 3*unskew4D
	z3 := z0 - float32(k3) + 3*unskew4D
	w3 := w0 - float32(l3) + 3*unskew4D

	x4 := x0 - 1 + 4*unskew4D
	y4 := y0 - 1 + 4*unskew4D
	z4 := z0 - 1 + 4*unskew4D
	w4 := w0 - 1 + 4*unskew4D

	ip := i * primeX
	jp := j * primeY
	kp := k * primeZ
	lp := l * primeW

	var n float32
	if t := 0.6 - x0*x0 - y0*y0 - z0*z0 - w0*w0; t > 0 {
		t *= t
		n += t * t * gradCoord4(seed, ip, jp, kp, lp, x0, y0, z0, w0)
	}
	if t := 0.6 - x1*x1 - y1*y1 - z1*z1 - w1*w1; t > 0 {
		t *= t
		n += t * t * gradCoord4(seed, ip+i1*primeX, jp+j1*primeY, kp+k1*primeZ, lp+l1*primeW, x1, y1, z1, w1)
	}
	if t := 0.6 - x2*x2 - y2*y2 - z2*z2 - w2*w2; t > 0 {
		t *= t
		n += t * t * gradCoord4(seed, ip+i2*primeX, jp+j2*primeY, kp+k2*primeZ, lp+l2*primeW, x2, y2, z2, w2)
	}
	if t := 0.6 - x3*x3 - y3*y3 - z3*z3 - w3*w3; t > 0 {
		t *= t
		n += t * t * gradCoord4(seed, ip+i3*primeX, jp+j3*primeY, kp+k3*primeZ, lp+l3*primeW, x3, y3, z3, w3)
	}
	if t := 0.6 - x4*x4 - y4*y4 - z4*z4 - w4*w4; t > 0 {
		t *= t
		n += t * t * gradCoord4(seed, ip+primeX, jp+primeY, kp+primeZ, lp+primeW, x4, y4, z4, w4)
	}

	return n * 27.0
}
