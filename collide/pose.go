// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package collide provides the collision shapes of the physics engine:
// the analytic convex [Capsule] in scalar and lane-parallel wide form,
// and the triangle-soup [Mesh] backed by a bounding-volume tree, with
// ray casts and local overlap queries driven by caller-supplied hit
// handlers. Shapes are immutable during queries and carry no shared
// mutable state, so independent queries can run concurrently.
package collide

import "cogentcore.org/phys/math32"

// Pose is the rigid pose of a body or shape: a position and an
// orientation. The zero value has a zero quaternion; use [NewPose] or
// [IdentityPose] to get a valid orientation.
type Pose struct {

	// Pos is the world-space position.
	Pos math32.Vector3

	// Quat is the world-space orientation.
	Quat math32.Quat
}

// NewPose returns a pose at the given position with the given
// orientation.
func NewPose(pos math32.Vector3, quat math32.Quat) Pose {
	return Pose{Pos: pos, Quat: quat}
}

// IdentityPose returns the pose at the origin with the identity
// orientation.
func IdentityPose() Pose {
	p := Pose{}
	p.Quat.SetIdentity()
	return p
}

// Transform returns the given shape-local point in world space.
func (p Pose) Transform(point math32.Vector3) math32.Vector3 {
	return point.MulQuat(p.Quat).Add(p.Pos)
}

// InverseTransform returns the given world-space point in the
// shape-local frame of the pose.
func (p Pose) InverseTransform(point math32.Vector3) math32.Vector3 {
	return point.Sub(p.Pos).MulQuatInverse(p.Quat)
}
