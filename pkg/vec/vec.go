// pkg/vec/vec.go
package vec

import "math"

// Vec3 is a point or direction in world space. Ground-plane games keep Y at
// zero; turrets that only yaw flatten it explicitly.
type Vec3 struct {
	X, Y, Z float64
}

var Zero = Vec3{}

func (v Vec3) Add(u Vec3) Vec3      { return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z} }
func (v Vec3) Sub(u Vec3) Vec3      { return Vec3{v.X - u.X, v.Y - u.Y, v.Z - u.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(u Vec3) float64   { return v.X*u.X + v.Y*u.Y + v.Z*u.Z }

func (v Vec3) Len() float64   { return math.Sqrt(v.Dot(v)) }
func (v Vec3) LenSq() float64 { return v.Dot(v) }

func (v Vec3) Dist(u Vec3) float64   { return v.Sub(u).Len() }
func (v Vec3) DistSq(u Vec3) float64 { return v.Sub(u).LenSq() }

// Norm returns the unit vector in v's direction, or Zero for a zero vector.
func (v Vec3) Norm() Vec3 {
	m := v.Len()
	if m == 0 {
		return Zero
	}
	return v.Scale(1 / m)
}

// Flat drops the vertical component.
func (v Vec3) Flat() Vec3 { return Vec3{v.X, 0, v.Z} }

// AngleTo returns the angle in radians between v and u, both treated as
// directions. Zero vectors yield zero.
func (v Vec3) AngleTo(u Vec3) float64 {
	vm, um := v.Len(), u.Len()
	if vm == 0 || um == 0 {
		return 0
	}
	cos := v.Dot(u) / (vm * um)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// Cross returns the cross product v x u.
func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		X: v.Y*u.Z - v.Z*u.Y,
		Y: v.Z*u.X - v.X*u.Z,
		Z: v.X*u.Y - v.Y*u.X,
	}
}

// perpendicular returns some unit vector orthogonal to v. Prefers staying in
// the ground plane so yaw-only turrets never pitch while reversing.
func (v Vec3) perpendicular() Vec3 {
	p := Vec3{X: -v.Z, Z: v.X} // cross with world up
	if p.LenSq() < 1e-12 {
		p = Vec3{X: 1}
	}
	return p.Norm()
}

// RotateToward turns direction v toward direction u by at most maxRadians,
// returning a unit vector. Reaching within maxRadians snaps to u.
func RotateToward(v, u Vec3, maxRadians float64) Vec3 {
	from, to := v.Norm(), u.Norm()
	if to == Zero {
		return from
	}
	if from == Zero {
		return to
	}
	angle := from.AngleTo(to)
	if angle <= maxRadians {
		return to
	}
	// Rotate in the plane spanned by from and to.
	ortho := to.Sub(from.Scale(from.Dot(to)))
	if ortho.LenSq() < 1e-12 {
		// Opposite directions leave the plane undefined; pick one to start
		// the turn.
		ortho = from.perpendicular()
	} else {
		ortho = ortho.Norm()
	}
	return from.Scale(math.Cos(maxRadians)).Add(ortho.Scale(math.Sin(maxRadians)))
}
