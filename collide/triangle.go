// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"cogentcore.org/phys/math32"
	"cogentcore.org/phys/wide"
)

// rayTriangleEps rejects rays parallel to the triangle plane, where
// the Möller-Trumbore determinant degenerates.
const rayTriangleEps = 1.0e-7

// RayTriangle intersects a ray with the triangle (a, b, c) using the
// Möller-Trumbore algorithm, hitting either face. It returns the ray
// t in units of dir, the unnormalized geometric normal (b-a)x(c-a),
// and whether the ray hits at a nonnegative t. The normal is not
// reoriented toward the ray.
func RayTriangle(a, b, c, origin, dir math32.Vector3) (float32, math32.Vector3, bool) {
	ab := b.Sub(a)
	ac := c.Sub(a)
	pvec := dir.Cross(ac)
	det := ab.Dot(pvec)
	if det > -rayTriangleEps && det < rayTriangleEps {
		return 0, math32.Vector3{}, false
	}
	invDet := 1 / det
	tvec := origin.Sub(a)
	u := tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, math32.Vector3{}, false
	}
	qvec := tvec.Cross(ab)
	v := dir.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, math32.Vector3{}, false
	}
	t := ac.Dot(qvec) * invDet
	if t < 0 {
		return 0, math32.Vector3{}, false
	}
	return t, ab.Cross(ac), true
}

// TriangleWide is a lane-parallel triangle.
type TriangleWide struct {
	A wide.Vec3
	B wide.Vec3
	C wide.Vec3
}

// Broadcast fills all lanes with the given triangle.
func (t *TriangleWide) Broadcast(source math32.Triangle) {
	t.A = wide.SplatVec3(source.A)
	t.B = wide.SplatVec3(source.B)
	t.C = wide.SplatVec3(source.C)
}

// Gather writes the given triangle into the first lane.
func (t *TriangleWide) Gather(source math32.Triangle) {
	t.A.SetLane(0, source.A)
	t.B.SetLane(0, source.B)
	t.C.SetLane(0, source.C)
}
