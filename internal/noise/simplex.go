package noise

// Simplex generates 2D/3D simplex noise with hashed gradients. The Smooth
// variant uses a wider falloff kernel, trading sharpness for continuity of
// higher derivatives.
type Simplex struct {
	Smooth bool
}

const (
	// 2D skew/unskew factors: (sqrt(3)-1)/2 and (3-sqrt(3))/6.
	skew2D   float32 = 0.3660254037844386
	unskew2D float32 = 0.21132486540518713

	// 3D skew/unskew factors: 1/3 and 1/6.
	skew3D   float32 = 1.0 / 3.0
	unskew3D float32 = 1.0 / 6.0
)

func (s Simplex) kernel2D() (r2, scale float32) {
	if s.Smooth {
		return 0.6, 30.0
	}
	return 0.5, 70.0
}

func (s Simplex) kernel3D() (r2, scale float32) {
	if s.Smooth {
		return 0.7, 18.0
	}
	return 0.6, 32.0
}

func (s Simplex) Single2D(seed int32, x, y float32) float32 {
	r2, scale := s.kernel2D()

	skew := (x + y) * skew2D
	i := fastFloor(x + skew)
	j := fastFloor(y + skew)

	unskew := float32(i+j) * unskew2D
	x0 := x - (float32(i) - unskew)
	y0 := y - (float32(j) - unskew)

	// Offsets of the middle corner depend on which simplex triangle we
	// are in.
	var i1, j1 int32
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float32(i1) + unskew2D
	y1 := y0 - float32(j1) + unskew2D
	x2 := x0 - 1 + 2*unskew2D
	y2 := y0 - 1 + 2*unskew2D

	ip := i * primeX
	jp := j * primeY

	var n float32
	if t := r2 - x0*x0 - y0*y0; t > 0 {
		t *= t
		n += t * t * gradCoord2(seed, ip, jp, x0, y0)
	}
	if t := r2 - x1*x1 - y1*y1; t > 0 {
		t *= t
		n += t * t * gradCoord2(seed, ip+i1*primeX, jp+j1*primeY, x1, y1)
	}
	if t := r2 - x2*x2 - y2*y2; t > 0 {
		t *= t
		n += t * t * gradCoord2(seed, ip+primeX, jp+primeY, x2, y2)
	}

	return n * scale
}

func (s Simplex) Single3D(seed int32, x, y, z float32) float32 {
	r2, scale := s.kernel3D()

	skew := (x + y + z) * skew3D
	i := fastFloor(x + skew)
	j := fastFloor(y + skew)
	k := fastFloor(z + skew)

	unskew := float32(i+j+k) * unskew3D
	x0 := x - (float32(i) - unskew)
	y0 := y - (float32(j) - unskew)
	z0 := z - (float32(k) - unskew)

	// Rank the fractional coordinates to pick the simplex traversal order.
	var i1, j1, k1, i2, j2, k2 int32
	switch {
	case x0 >= y0 && y0 >= z0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 1, 0
	case x0 >= z0 && z0 >= y0:
		i1, j1, k1, i2, j2, k2 = 1, 0, 0, 1, 0, 1
	case z0 >= x0 && x0 >= y0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 1, 0, 1
	case z0 >= y0 && y0 >= x0:
		i1, j1, k1, i2, j2, k2 = 0, 0, 1, 0, 1, 1
	case y0 >= z0 && z0 >= x0:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 0, 1, 1
	default:
		i1, j1, k1, i2, j2, k2 = 0, 1, 0, 1, 1, 0
	}

	x1 := x0 - float32(i1) + unskew3D
	y1 := y0 - float32(j1) + unskew3D
	z1 := z0 - float32(k1) + unskew3D
	x2 := x0 - float32(i2) + 2*unskew3D
	y2 := y0 - float32(j2) + 2*unskew3D
	z2 := z0 - float32(k2) + 2*unskew3D
	x3 := x0 - 1 + 3*unskew3D
	y3 := y0 - 1 + 3*unskew3D
	z3 := z0 - 1 + 3*unskew3D

	ip := i * primeX
	jp := j * primeY
	kp := k * primeZ

	var n float32
	if t := r2 - x0*x0 - y0*y0 - z0*z0; t > 0 {
		t *= t
		n += t * t * gradCoord3(seed, ip, jp, kp, x0, y0, z0)
	}
	if t := r2 - x1*x1 - y1*y1 - z1*z1; t > 0 {
		t *= t
		n += t * t * gradCoord3(seed, ip+i1*primeX, jp+j1*primeY, kp+k1*primeZ, x1, y1, z1)
	}
	if t := r2 - x2*x2 - y2*y2 - z2*z2; t > 0 {
		t *= t
		n += t * t * gradCoord3(seed, ip+i2*primeX, jp+j2*primeY, kp+k2*primeZ, x2, y2, z2)
	}
	if t := r2 - x3*x3 - y3*y3 - z3*z3; t > 0 {
		t *= t
		n += t * t * gradCoord3(seed, ip+primeX, jp+primeY, kp+primeZ, x3, y3, z3)
	}

	return n * scale
}

func (s Simplex) Single4D(seed int32, x, y, z, w float32) float32 {
	panic("noise: 4D evaluation not supported by simplex generator")
}

func (s Simplex) Supports4D() bool { return false }
