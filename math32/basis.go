// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// NormalBasis returns two unit tangents t1, t2 such that (t1, normal, t2)
// is a right-handed orthonormal basis, given a unit length normal.
// It uses the revised Frisvad construction, which is branch free apart
// from the sign selection and has no singularity at normal.Z near -1;
// the one remaining discontinuity is at normal.Z == 0.
func NormalBasis(normal Vector3) (t1, t2 Vector3) {
	sign := Sign(normal.Z)
	scale := -1 / (sign + normal.Z)
	t1.X = normal.X * normal.Y * scale
	t1.Y = sign + normal.Y*normal.Y*scale
	t1.Z = -normal.Y
	t2.X = 1 + sign*normal.X*normal.X*scale
	t2.Y = sign * t1.X
	t2.Z = -sign * normal.X
	return
}

// Perpendicular returns a unit vector perpendicular to the given unit
// length normal (the first tangent of [NormalBasis]).
func Perpendicular(normal Vector3) Vector3 {
	sign := Sign(normal.Z)
	scale := -1 / (sign + normal.Z)
	return Vec3(normal.X*normal.Y*scale, sign+normal.Y*normal.Y*scale, -normal.Y)
}
