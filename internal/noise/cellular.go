package noise

// DistanceFunc selects how cellular noise measures distance to feature points.
type DistanceFunc int

const (
	Euclidean DistanceFunc = iota
	EuclideanSq
	Manhattan
	Hybrid
)

func (d DistanceFunc) String() string {
	switch d {
	case Euclidean:
		return "Euclidean"
	case EuclideanSq:
		return "EuclideanSq"
	case Manhattan:
		return "Manhattan"
	case Hybrid:
		return "Hybrid"
	}
	return "Unknown"
}

// ReturnType selects which measurement cellular noise emits.
type ReturnType int

const (
	CellValue ReturnType = iota
	Distance
	Distance2
	Distance2Add
	Distance2Sub
	Distance2Mul
	Distance2Div
)

func (r ReturnType) String() string {
	switch r {
	case CellValue:
		return "CellValue"
	case Distance:
		return "Distance"
	case Distance2:
		return "Distance2"
	case Distance2Add:
		return "Distance2Add"
	case Distance2Sub:
		return "Distance2Sub"
	case Distance2Mul:
		return "Distance2Mul"
	case Distance2Div:
		return "Distance2Div"
	}
	return "Unknown"
}

// Cellular generates Worley/Voronoi noise from jittered feature points.
type Cellular struct {
	DistanceFunc DistanceFunc
	ReturnType   ReturnType
	Jitter       float32
}

// Maximum jitter values keeping feature points inside the searched
// neighborhood.
const (
	cellularJitter2D float32 = 0.43701595
	cellularJitter3D float32 = 0.39614353
)

var randVec2 = [8][2]float32{
	{0.9238795, 0.3826834}, {0.3826834, 0.9238795},
	{-0.3826834, 0.9238795}, {-0.9238795, 0.3826834},
	{-0.9238795, -0.3826834}, {-0.3826834, -0.9238795},
	{0.3826834, -0.9238795}, {0.9238795, -0.3826834},
}

var randVec3 = [12][3]float32{
	{0.7071068, 0.7071068, 0}, {-0.7071068, 0.7071068, 0},
	{0.7071068, -0.7071068, 0}, {-0.7071068, -0.7071068, 0},
	{0.7071068, 0, 0.7071068}, {-0.7071068, 0, 0.7071068},
	{0.7071068, 0, -0.7071068}, {-0.7071068, 0, -0.7071068},
	{0, 0.7071068, 0.7071068}, {0, -0.7071068, 0.7071068},
	{0, 0.7071068, -0.7071068}, {0, -0.7071068, -0.7071068},
}

func (c Cellular) distance2(vx, vy float32) float32 {
	switch c.DistanceFunc {
	case Manhattan:
		return absf(vx) + absf(vy)
	case Hybrid:
		return absf(vx) + absf(vy) + vx*vx + vy*vy
	default:
		return vx*vx + vy*vy
	}
}

func (c Cellular) distance3(vx, vy, vz float32) float32 {
	switch c.DistanceFunc {
	case Manhattan:
		return absf(vx) + absf(vy) + absf(vz)
	case Hybrid:
		return absf(vx) + absf(vy) + absf(vz) + vx*vx + vy*vy + vz*vz
	default:
		return vx*vx + vy*vy + vz*vz
	}
}

func (c Cellular) finish(distance0, distance1 float32, closestHash int32) float32 {
	if c.DistanceFunc == Euclidean && c.ReturnType != CellValue {
		distance0 = sqrtf(distance0)
		distance1 = sqrtf(distance1)
	}

	switch c.ReturnType {
	case CellValue:
		h := closestHash
		h *= h
		h ^= h << 19
		return float32(h) * (1.0 / 2147483648.0)
	case Distance:
		return distance0 - 1
	case Distance2:
		return distance1 - 1
	case Distance2Add:
		return (distance1+distance0)*0.5 - 1
	case Distance2Sub:
		return distance1 - distance0 - 1
	case Distance2Mul:
		return distance1*distance0*0.5 - 1
	case Distance2Div:
		return distance0/distance1 - 1
	}
	return 0
}

func (c Cellular) Single2D(seed int32, x, y float32) float32 {
	xr := fastRound(x)
	yr := fastRound(y)

	jitter := cellularJitter2D * c.Jitter
	distance0 := float32(1e10)
	distance1 := float32(1e10)
	var closestHash int32

	for xi := xr - 1; xi <= xr+1; xi++ {
		xp := xi * primeX
		for yi := yr - 1; yi <= yr+1; yi++ {
			h := hash2(seed, xp, yi*primeY)
			vec := randVec2[uint32(h)&7]

			vx := float32(xi) - x + vec[0]*jitter
			vy := float32(yi) - y + vec[1]*jitter

			d := c.distance2(vx, vy)
			distance1 = maxf(minf(distance1, d), distance0)
			if d < distance0 {
				distance0 = d
				closestHash = h
			}
		}
	}

	return c.finish(distance0, distance1, closestHash)
}

func (c Cellular) Single3D(seed int32, x, y, z float32) float32 {
	xr := fastRound(x)
	yr := fastRound(y)
	zr := fastRound(z)

	jitter := cellularJitter3D * c.Jitter
	distance0 := float32(1e10)
	distance1 := float32(1e10)
	var closestHash int32

	for xi := xr - 1; xi <= xr+1; xi++ {
		xp := xi * primeX
		for yi := yr - 1; yi <= yr+1; yi++ {
			yp := yi * primeY
			for zi := zr - 1; zi <= zr+1; zi++ {
				h := hash3(seed, xp, yp, zi*primeZ)
				vec := randVec3[uint32(h)%12]

				vx := float32(xi) - x + vec[0]*jitter
				vy := float32(yi) - y + vec[1]*jitter
				vz := float32(zi) - z + vec[2]*jitter

				d := c.distance3(vx, vy, vz)
				distance1 = maxf(minf(distance1, d), distance0)
				if d < distance0 {
					distance0 = d
					closestHash = h
				}
			}
		}
	}

	return c.finish(distance0, distance1, closestHash)
}

func (c Cellular) Single4D(seed int32, x, y, z, w float32) float32 {
	panic("noise: 4D evaluation not supported by cellular generator")
}

func (c Cellular) Supports4D() bool { return false }
