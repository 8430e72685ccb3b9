// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import "cogentcore.org/phys/math32"

// Shape type ids, used by external dispatch tables. Stable across
// releases.
const (
	CapsuleID = 1
	MeshID    = 8
)

// Shape is the capability common to all collision shapes.
type Shape interface {

	// TypeID returns the stable small-integer type id of the shape.
	TypeID() int

	// Bounds returns the axis-aligned bounds of the shape under the
	// given orientation, centered on the shape's local origin.
	Bounds(orientation math32.Quat) math32.Box3
}

// Convex is the capability of analytic convex shapes, which
// additionally know their rotational expansion and mass distribution.
type Convex interface {
	Shape

	// AngularExpansion returns the bounds-expansion data used by the
	// broadphase to account for rotation over a timestep.
	AngularExpansion() AngularExpansion

	// Inertia returns the inverse inertia of the shape for the given
	// mass.
	Inertia(mass float32) Inertia
}

// AngularExpansion bounds how far any point of a shape can move
// laterally due to rotation.
type AngularExpansion struct {

	// MaximumRadius is the radius of the tightest sphere centered on
	// the shape's local origin that contains the shape.
	MaximumRadius float32

	// MaximumAngularExpansion is the maximum lateral displacement of
	// any point of the shape during rotation.
	MaximumAngularExpansion float32
}

// Inertia is the inverse mass and the diagonal of the inverse inertia
// tensor of a shape, in the shape's local frame. Off-diagonals are
// zero for the shapes in this package.
type Inertia struct {

	// InverseMass is 1 / mass.
	InverseMass float32

	// InverseInertia is the diagonal of the inverse inertia tensor.
	InverseInertia math32.Vector3
}
