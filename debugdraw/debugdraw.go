// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package debugdraw projects contact-constraint prestep data into
// renderable world-space line segments, for debug visualization of
// the contacts a shape pair produced. Each contact yields one line
// along a surface tangent and one along the contact normal.
package debugdraw

import (
	"image/color"

	"cogentcore.org/phys/collide"
	"cogentcore.org/phys/contacts"
	"cogentcore.org/phys/math32"
)

// Line is one renderable world-space line segment.
type Line struct {
	Start math32.Vector3
	End   math32.Vector3
	Color color.RGBA
}

// BodySet is one set of body poses, indexed by body index.
type BodySet struct {
	Poses []collide.Pose
}

// Bodies is read-only body pose storage, grouped into sets.
type Bodies struct {
	Sets []BodySet
}

// ContactPrestep is the per-constraint contact data the solver
// prepares from a manifold before iterating: per-contact offsets from
// body A and depths, plus either one shared normal or one normal per
// contact.
type ContactPrestep struct {

	// Count is the number of contacts, in [1, 8] ([1, 4] when
	// Convex).
	Count int

	// Convex reports whether all contacts share Normal; otherwise
	// each contact uses its slot in Normals.
	Convex bool

	// Normal is the shared contact normal of a convex constraint.
	Normal math32.Vector3

	// Offsets are from body A's position to each contact point, in
	// world space.
	Offsets [contacts.MaxNonconvexContacts]math32.Vector3

	// Normals are the per-contact normals of a nonconvex constraint.
	Normals [contacts.MaxNonconvexContacts]math32.Vector3

	// Depths are the per-contact penetration depths; negative values
	// mean speculative (separated) contacts.
	Depths [contacts.MaxNonconvexContacts]float32
}

// PrestepFromManifold builds the prestep view of a manifold.
func PrestepFromManifold(m contacts.Manifold) ContactPrestep {
	p := ContactPrestep{Count: m.ContactCount(), Convex: m.Convex()}
	for i := 0; i < p.Count; i++ {
		offset, normal, depth, _ := m.Contact(i)
		p.Offsets[i] = offset
		p.Normals[i] = normal
		p.Depths[i] = depth
		if p.Convex {
			p.Normal = normal
		}
	}
	return p
}

// Line lengths, in world units.
const (
	tangentHalfLength = 0.25
	normalLength      = 0.5
)

// AddContactLines appends the two lines of one contact: a tangent
// line centered on the contact point and a normal line from it.
// Speculative contacts (negative depth) are drawn with the tint
// halved.
func AddContactLines(pose collide.Pose, offset, normal math32.Vector3, depth float32, tint color.RGBA, lines *[]Line) {
	c := tint
	if depth < 0 {
		c = color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
	}
	point := pose.Pos.Add(offset)
	tangent := math32.Perpendicular(normal).MulScalar(tangentHalfLength)
	*lines = append(*lines,
		Line{Start: point.Sub(tangent), End: point.Add(tangent), Color: c},
		Line{Start: point, End: point.Add(normal.MulScalar(normalLength)), Color: c})
}

// ExtractContactLines emits the debug lines of one contact
// constraint, two per contact, using body A's pose. The count must be
// within the manifold capacity for the constraint's kind.
func ExtractContactLines(prestep *ContactPrestep, poseA collide.Pose, tint color.RGBA, lines *[]Line) {
	limit := contacts.MaxNonconvexContacts
	if prestep.Convex {
		limit = contacts.MaxConvexContacts
	}
	if prestep.Count < 1 || prestep.Count > limit {
		panic("contact count is out of range")
	}
	for i := 0; i < prestep.Count; i++ {
		normal := prestep.Normals[i]
		if prestep.Convex {
			normal = prestep.Normal
		}
		AddContactLines(poseA, prestep.Offsets[i], normal, prestep.Depths[i], tint, lines)
	}
}

// ExtractConstraintLines looks up body A's pose and emits the debug
// lines of one contact constraint. Contact offsets are expressed from
// body A, so only the first body's pose is used.
func ExtractConstraintLines(prestep *ContactPrestep, bodies *Bodies, setIndex int, bodyIndices []int32, tint color.RGBA, lines *[]Line) {
	poseA := bodies.Sets[setIndex].Poses[bodyIndices[0]]
	ExtractContactLines(prestep, poseA, tint, lines)
}
