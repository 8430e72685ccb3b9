// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"cogentcore.org/phys/math32"
	"cogentcore.org/phys/wide"
)

// MinimumWideBatch is the smallest ray batch for which the wide
// capsule path is worth dispatching over the scalar one.
const MinimumWideBatch = 2

// CapsuleWide is the lane-parallel form of [Capsule].
type CapsuleWide struct {
	Radius     wide.Float
	HalfLength wide.Float
}

// Broadcast fills all lanes with the given capsule.
func (c *CapsuleWide) Broadcast(source Capsule) {
	c.Radius = wide.Splat(source.Radius)
	c.HalfLength = wide.Splat(source.HalfLength)
}

// Gather writes the given capsule into the first lane.
func (c *CapsuleWide) Gather(source Capsule) {
	c.Radius[0] = source.Radius
	c.HalfLength[0] = source.HalfLength
}

// RayTest performs the capsule ray test lane-parallel, one pose and
// one ray per lane. All branches of the scalar test become selects
// over lane masks. Returned t values are in units of the given
// directions; normals are world-space; lanes are valid only where the
// returned mask is set.
func (c *CapsuleWide) RayTest(pos wide.Vec3, orientation wide.Quat, origin, dir wide.Vec3) (wide.Float, wide.Vec3, wide.Mask) {
	zero := wide.Float{}
	o := orientation.MulVec3Inverse(origin.Sub(pos))
	d := orientation.MulVec3Inverse(dir)
	inverseDLength := wide.Splat(1).Div(d.Length())
	d = d.Scale(inverseDLength)

	tOffset := zero.Max(o.Dot(d).Negate().Sub(c.HalfLength.Add(c.Radius)))
	o = o.Add(d.Scale(tOffset))

	a := d.X.Mul(d.X).Add(d.Z.Mul(d.Z))
	b := o.X.Mul(d.X).Add(o.Z.Mul(d.Z))
	radiusSquared := c.Radius.Mul(c.Radius)
	cylC := o.X.Mul(o.X).Add(o.Z.Mul(o.Z)).Sub(radiusSquared)
	candidate := b.Greater(zero).And(cylC.Greater(zero)).Not()

	axisParallel := a.Less(wide.Splat(capsuleAxisEps))
	// Keep degenerate lanes out of the division below.
	aSafe := wide.Select(axisParallel, wide.Splat(1), a)
	discriminant := b.Mul(b).Sub(a.Mul(cylC))
	cylinderIntersected := candidate.And(axisParallel.Not()).And(discriminant.GreaterEq(zero))
	tCylinder := tOffset.Negate().Max(b.Negate().Sub(discriminant.Max(zero).Sqrt()).Div(aSafe))
	hitY := o.Y.Add(d.Y.Mul(tCylinder))
	useCylinder := cylinderIntersected.And(hitY.Abs().LessEq(c.HalfLength))

	// Cap end selection: the end the cylindrical hit ran off, or for
	// axis-parallel lanes the end the ray heads toward.
	endY := wide.Select(hitY.Less(zero), c.HalfLength.Negate(), c.HalfLength)
	parallelEndY := wide.Select(d.Y.Greater(zero), c.HalfLength.Negate(), c.HalfLength)
	sphereY := wide.Select(axisParallel, parallelEndY, endY)

	os := o.Sub(wide.Vec3{Y: sphereY})
	capB := os.Dot(d)
	capC := os.Dot(os).Sub(radiusSquared)
	capPointingAway := capB.Greater(zero).And(capC.Greater(zero))
	capDiscriminant := capB.Mul(capB).Sub(capC)
	capEligible := cylinderIntersected.And(useCylinder.Not()).Or(candidate.And(axisParallel))
	capIntersected := capEligible.And(capPointingAway.Not()).And(capDiscriminant.GreaterEq(zero))
	tCap := tOffset.Negate().Max(capB.Negate().Sub(capDiscriminant.Max(zero).Sqrt()))

	inverseRadius := wide.Splat(1).Div(c.Radius)
	cylinderNormal := wide.Vec3{X: o.X.Add(d.X.Mul(tCylinder)).Mul(inverseRadius), Z: o.Z.Add(d.Z.Mul(tCylinder)).Mul(inverseRadius)}
	capNormal := os.Add(d.Scale(tCap)).Scale(inverseRadius)
	normal := orientation.MulVec3(wide.SelectVec3(useCylinder, cylinderNormal, capNormal))
	t := wide.Select(useCylinder, tCylinder, tCap).Add(tOffset).Mul(inverseDLength)
	return t, normal, useCylinder.Or(capIntersected)
}

// RayTestScalar runs the wide ray test with the capsule, pose, and ray
// broadcast to every lane, returning lane 0. It exists for parity
// testing against [Capsule.RayTest].
func (c *CapsuleWide) RayTestScalar(pose Pose, origin, dir math32.Vector3) (float32, math32.Vector3, bool) {
	t, normal, intersected := c.RayTest(wide.SplatVec3(pose.Pos), wide.SplatQuat(pose.Quat), wide.SplatVec3(origin), wide.SplatVec3(dir))
	return t[0], normal.Lane(0), intersected[0]
}
