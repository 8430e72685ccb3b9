// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wide

import "cogentcore.org/phys/math32"

// Vec3 is a 3D vector with one float32 per lane in each component.
type Vec3 struct {
	X Float
	Y Float
	Z Float
}

// SplatVec3 returns a Vec3 with all lanes set to the given scalar vector.
func SplatVec3(v math32.Vector3) Vec3 {
	return Vec3{Splat(v.X), Splat(v.Y), Splat(v.Z)}
}

// Lane returns the scalar vector in the given lane.
func (v Vec3) Lane(i int) math32.Vector3 {
	return math32.Vec3(v.X[i], v.Y[i], v.Z[i])
}

// SetLane sets the given lane to the scalar vector.
func (v *Vec3) SetLane(i int, s math32.Vector3) {
	v.X[i] = s.X
	v.Y[i] = s.Y
	v.Z[i] = s.Z
}

// Add returns v + o per lane.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X.Add(o.X), v.Y.Add(o.Y), v.Z.Add(o.Z)}
}

// Sub returns v - o per lane.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X.Sub(o.X), v.Y.Sub(o.Y), v.Z.Sub(o.Z)}
}

// Mul returns the component-wise product of v and o per lane.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X.Mul(o.X), v.Y.Mul(o.Y), v.Z.Mul(o.Z)}
}

// Scale returns v scaled by s per lane.
func (v Vec3) Scale(s Float) Vec3 {
	return Vec3{v.X.Mul(s), v.Y.Mul(s), v.Z.Mul(s)}
}

// Negate returns -v per lane.
func (v Vec3) Negate() Vec3 {
	return Vec3{v.X.Negate(), v.Y.Negate(), v.Z.Negate()}
}

// Dot returns the dot product of v and o per lane.
func (v Vec3) Dot(o Vec3) Float {
	return v.X.Mul(o.X).Add(v.Y.Mul(o.Y)).Add(v.Z.Mul(o.Z))
}

// Cross returns the cross product of v and o per lane.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y.Mul(o.Z).Sub(v.Z.Mul(o.Y)),
		v.Z.Mul(o.X).Sub(v.X.Mul(o.Z)),
		v.X.Mul(o.Y).Sub(v.Y.Mul(o.X)),
	}
}

// Length returns the length of v per lane.
func (v Vec3) Length() Float {
	return v.Dot(v).Sqrt()
}

// SelectVec3 returns a where the mask is true, b elsewhere.
func SelectVec3(m Mask, a, b Vec3) Vec3 {
	return Vec3{Select(m, a.X, b.X), Select(m, a.Y, b.Y), Select(m, a.Z, b.Z)}
}

// NormalBasis is the lane-parallel form of [math32.NormalBasis]:
// it returns two unit tangents t1, t2 such that (t1, normal, t2) is a
// right-handed orthonormal basis in every lane, given unit normals.
func NormalBasis(normal Vec3) (t1, t2 Vec3) {
	one := Splat(1)
	sign := Select(normal.Z.Less(Splat(0)), Splat(-1), one)
	scale := one.Negate().Div(sign.Add(normal.Z))
	t1.X = normal.X.Mul(normal.Y).Mul(scale)
	t1.Y = sign.Add(normal.Y.Mul(normal.Y).Mul(scale))
	t1.Z = normal.Y.Negate()
	t2.X = one.Add(sign.Mul(normal.X).Mul(normal.X).Mul(scale))
	t2.Y = sign.Mul(t1.X)
	t2.Z = sign.Negate().Mul(normal.X)
	return
}

// Perpendicular is the lane-parallel form of [math32.Perpendicular],
// returning the first tangent of [NormalBasis] only.
func Perpendicular(normal Vec3) Vec3 {
	one := Splat(1)
	sign := Select(normal.Z.Less(Splat(0)), Splat(-1), one)
	scale := one.Negate().Div(sign.Add(normal.Z))
	return Vec3{
		normal.X.Mul(normal.Y).Mul(scale),
		sign.Add(normal.Y.Mul(normal.Y).Mul(scale)),
		normal.Y.Negate(),
	}
}
