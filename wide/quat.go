// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wide

import "cogentcore.org/phys/math32"

// Quat is a quaternion with one float32 per lane in each component.
type Quat struct {
	X Float
	Y Float
	Z Float
	W Float
}

// SplatQuat returns a Quat with all lanes set to the given scalar quaternion.
func SplatQuat(q math32.Quat) Quat {
	return Quat{Splat(q.X), Splat(q.Y), Splat(q.Z), Splat(q.W)}
}

// Lane returns the scalar quaternion in the given lane.
func (q Quat) Lane(i int) math32.Quat {
	return math32.NewQuat(q.X[i], q.Y[i], q.Z[i], q.W[i])
}

// SetLane sets the given lane to the scalar quaternion.
func (q *Quat) SetLane(i int, s math32.Quat) {
	q.X[i] = s.X
	q.Y[i] = s.Y
	q.Z[i] = s.Z
	q.W[i] = s.W
}

// Conjugate returns the per-lane conjugate of q.
func (q Quat) Conjugate() Quat {
	return Quat{q.X.Negate(), q.Y.Negate(), q.Z.Negate(), q.W}
}

// MulVec3 returns the vector rotated by the quaternion, per lane.
func (q Quat) MulVec3(v Vec3) Vec3 {
	// calculate quat * vector
	ix := q.W.Mul(v.X).Add(q.Y.Mul(v.Z)).Sub(q.Z.Mul(v.Y))
	iy := q.W.Mul(v.Y).Add(q.Z.Mul(v.X)).Sub(q.X.Mul(v.Z))
	iz := q.W.Mul(v.Z).Add(q.X.Mul(v.Y)).Sub(q.Y.Mul(v.X))
	iw := q.X.Mul(v.X).Add(q.Y.Mul(v.Y)).Add(q.Z.Mul(v.Z)).Negate()
	// calculate result * inverse quat
	return Vec3{
		ix.Mul(q.W).Sub(iw.Mul(q.X)).Sub(iy.Mul(q.Z)).Add(iz.Mul(q.Y)),
		iy.Mul(q.W).Sub(iw.Mul(q.Y)).Sub(iz.Mul(q.X)).Add(ix.Mul(q.Z)),
		iz.Mul(q.W).Sub(iw.Mul(q.Z)).Sub(ix.Mul(q.Y)).Add(iy.Mul(q.X)),
	}
}

// MulVec3Inverse returns the vector rotated by the inverse of the unit
// quaternion, per lane.
func (q Quat) MulVec3Inverse(v Vec3) Vec3 {
	return q.Conjugate().MulVec3(v)
}
