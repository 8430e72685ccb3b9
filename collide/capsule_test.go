// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"math/rand"
	"testing"

	"cogentcore.org/phys/base/tolassert"
	"cogentcore.org/phys/math32"
	"cogentcore.org/phys/wide"
	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-5

func tolAssertEqualVector(t *testing.T, expected, actual math32.Vector3, tol float32) {
	tolassert.EqualTol(t, expected.X, actual.X, tol)
	tolassert.EqualTol(t, expected.Y, actual.Y, tol)
	tolassert.EqualTol(t, expected.Z, actual.Z, tol)
}

func TestCapsuleSideHit(t *testing.T) {
	c := Capsule{Radius: 0.5, HalfLength: 0.5}
	ht, normal, hit := c.RayTest(IdentityPose(), math32.Vec3(0, 0, -(c.Radius + 2)), math32.Vec3(0, 0, 1))
	assert.True(t, hit)
	tolassert.EqualTol(t, 2, ht, standardTol)
	tolAssertEqualVector(t, math32.Vec3(0, 0, -1), normal, standardTol)
}

func TestCapsuleCapHit(t *testing.T) {
	c := Capsule{Radius: 0.5, HalfLength: 0.5}
	ht, normal, hit := c.RayTest(IdentityPose(), math32.Vec3(0, c.HalfLength+c.Radius+1, 0), math32.Vec3(0, -1, 0))
	assert.True(t, hit)
	tolassert.EqualTol(t, 1, ht, standardTol)
	tolAssertEqualVector(t, math32.Vec3(0, 1, 0), normal, standardTol)

	// axis-parallel from below hits the bottom cap
	ht, normal, hit = c.RayTest(IdentityPose(), math32.Vec3(0, -(c.HalfLength+c.Radius+1), 0), math32.Vec3(0, 1, 0))
	assert.True(t, hit)
	tolassert.EqualTol(t, 1, ht, standardTol)
	tolAssertEqualVector(t, math32.Vec3(0, -1, 0), normal, standardTol)
}

func TestCapsulePointingAwayMiss(t *testing.T) {
	c := Capsule{Radius: 0.5, HalfLength: 0.5}
	_, _, hit := c.RayTest(IdentityPose(), math32.Vec3(c.Radius+1, 0, 0), math32.Vec3(1, 0, 0))
	assert.False(t, hit)
}

func TestCapsulePosedHit(t *testing.T) {
	c := Capsule{Radius: 0.5, HalfLength: 0.5}
	pose := NewPose(math32.Vec3(1, 2, 3), math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.Pi/2))
	ht, normal, hit := c.RayTest(pose, math32.Vec3(1, 2, 3-(c.Radius+2)), math32.Vec3(0, 0, 1))
	assert.True(t, hit)
	tolassert.EqualTol(t, 2, ht, standardTol)
	tolAssertEqualVector(t, math32.Vec3(0, 0, -1), normal, standardTol)
}

func TestCapsuleUnnormalizedDirection(t *testing.T) {
	c := Capsule{Radius: 0.5, HalfLength: 0.5}
	ht, _, hit := c.RayTest(IdentityPose(), math32.Vec3(0, 0, -(c.Radius + 2)), math32.Vec3(0, 0, 4))
	assert.True(t, hit)
	tolassert.EqualTol(t, 0.5, ht, standardTol)
}

func TestCapsuleBounds(t *testing.T) {
	c := Capsule{Radius: 0.5, HalfLength: 1}
	var identity math32.Quat
	identity.SetIdentity()
	bb := c.Bounds(identity)
	tolAssertEqualVector(t, math32.Vec3(-0.5, -1.5, -0.5), bb.Min, standardTol)
	tolAssertEqualVector(t, math32.Vec3(0.5, 1.5, 0.5), bb.Max, standardTol)

	// rotated 90 degrees about z, the long axis lies along x
	bb = c.Bounds(math32.NewQuatAxisAngle(math32.Vec3(0, 0, 1), math32.Pi/2))
	tolAssertEqualVector(t, math32.Vec3(1.5, 0.5, 0.5), bb.Max, standardTol)
}

func TestCapsuleAngularExpansion(t *testing.T) {
	c := Capsule{Radius: 0.5, HalfLength: 1}
	ae := c.AngularExpansion()
	assert.Equal(t, float32(1.5), ae.MaximumRadius)
	assert.Equal(t, float32(1), ae.MaximumAngularExpansion)
}

func TestCapsuleInertia(t *testing.T) {
	c := Capsule{Radius: 0.5, HalfLength: 1}
	inertia := c.Inertia(2)
	assert.Equal(t, float32(0.5), inertia.InverseMass)
	assert.Greater(t, inertia.InverseInertia.X, float32(0))
	assert.Greater(t, inertia.InverseInertia.Y, float32(0))
	assert.Equal(t, inertia.InverseInertia.X, inertia.InverseInertia.Z)
	// a capsule is longer than it is wide, so spinning about the long
	// axis is easier
	assert.Greater(t, inertia.InverseInertia.Y, inertia.InverseInertia.X)

	// doubling the mass halves the inverse inertia
	double := c.Inertia(4)
	tolassert.EqualTol(t, inertia.InverseInertia.X/2, double.InverseInertia.X, standardTol)
}

func randomRay(rnd *rand.Rand) (origin, dir math32.Vector3) {
	origin = math32.Vec3(rnd.Float32()*8-4, rnd.Float32()*8-4, rnd.Float32()*8-4)
	for {
		dir = math32.Vec3(rnd.Float32()*2-1, rnd.Float32()*2-1, rnd.Float32()*2-1)
		if dir.LengthSquared() > 1.0e-2 {
			return origin, dir
		}
	}
}

func TestCapsuleScalarWideAgreement(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	const agreementTol = 1.0e-4
	for iter := 0; iter < 200; iter++ {
		var capsules [wide.Lanes]Capsule
		var poses [wide.Lanes]Pose
		var origins, dirs [wide.Lanes]math32.Vector3
		var cw CapsuleWide
		var pos, origin, dir wide.Vec3
		var orientation wide.Quat
		for i := 0; i < wide.Lanes; i++ {
			capsules[i] = Capsule{Radius: rnd.Float32() + 0.1, HalfLength: rnd.Float32() + 0.1}
			axis := math32.Vec3(rnd.Float32()*2-1, rnd.Float32()*2-1, rnd.Float32()*2-1)
			if axis.LengthSquared() < 1.0e-2 {
				axis = math32.Vec3(0, 1, 0)
			}
			poses[i] = NewPose(
				math32.Vec3(rnd.Float32()*2-1, rnd.Float32()*2-1, rnd.Float32()*2-1),
				math32.NewQuatAxisAngle(axis.Normal(), rnd.Float32()*2*math32.Pi))
			origins[i], dirs[i] = randomRay(rnd)

			cw.Radius[i] = capsules[i].Radius
			cw.HalfLength[i] = capsules[i].HalfLength
			pos.SetLane(i, poses[i].Pos)
			orientation.SetLane(i, poses[i].Quat)
			origin.SetLane(i, origins[i])
			dir.SetLane(i, dirs[i])
		}
		wt, wn, wm := cw.RayTest(pos, orientation, origin, dir)
		for i := 0; i < wide.Lanes; i++ {
			st, sn, sh := capsules[i].RayTest(poses[i], origins[i], dirs[i])
			assert.Equal(t, sh, wm[i])
			if sh && wm[i] {
				tolassert.EqualTol(t, st, wt[i], agreementTol)
				tolAssertEqualVector(t, sn, wn.Lane(i), agreementTol)
			}
		}
	}
}

func TestCapsuleWideBroadcastGather(t *testing.T) {
	c := Capsule{Radius: 0.25, HalfLength: 0.75}
	var cw CapsuleWide
	cw.Broadcast(c)
	for i := 0; i < wide.Lanes; i++ {
		assert.Equal(t, c.Radius, cw.Radius[i])
		assert.Equal(t, c.HalfLength, cw.HalfLength[i])
	}
	var gw CapsuleWide
	gw.Gather(c)
	assert.Equal(t, c.Radius, gw.Radius[0])
	assert.Equal(t, c.HalfLength, gw.HalfLength[0])
	assert.Equal(t, float32(0), gw.Radius[1])
}

func TestPoseTransformRoundTrip(t *testing.T) {
	pose := NewPose(math32.Vec3(1, -2, 3), math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), 0.7))
	p := math32.Vec3(0.3, -0.9, 2.1)
	tolAssertEqualVector(t, p, pose.InverseTransform(pose.Transform(p)), standardTol)
	tolAssertEqualVector(t, pose.Pos, pose.Transform(math32.Vector3{}), standardTol)
}
