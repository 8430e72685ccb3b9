// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package contacts provides the contact points produced by one
// colliding shape pair in one frame and the fixed-capacity manifolds
// that group them. Convex manifolds share one normal across up to
// four contacts; nonconvex manifolds carry a normal per contact, up
// to eight. Manifolds are value types owned by their holder.
package contacts

import "cogentcore.org/phys/math32"

// Manifold capacities.
const (
	// MaxConvexContacts is the contact capacity of a [ConvexManifold].
	MaxConvexContacts = 4

	// MaxNonconvexContacts is the contact capacity of a
	// [NonconvexManifold].
	MaxNonconvexContacts = 8
)

// ConvexContact is one contact point of a convex manifold.
type ConvexContact struct {

	// Offset is from body A's position to the contact point.
	Offset math32.Vector3

	// Depth is the penetration depth; negative values mean
	// separation.
	Depth float32

	// FeatureID identifies the geometric features that produced the
	// contact, used to track contact persistence across frames.
	FeatureID uint32
}

// NonconvexContact is one contact point of a nonconvex manifold,
// carrying its own normal because the pair's contact surface is not
// planar.
type NonconvexContact struct {

	// Offset is from body A's position to the contact point.
	Offset math32.Vector3

	// Depth is the penetration depth; negative values mean
	// separation.
	Depth float32

	// Normal is the contact's own world-space surface normal.
	Normal math32.Vector3

	// FeatureID identifies the geometric features that produced the
	// contact.
	FeatureID uint32
}

// ConvexManifold is the contact set of a convex shape pair: up to
// four contacts sharing one normal. Only slots [0, Count) are valid;
// removed slots are not cleared.
type ConvexManifold struct {

	// OffsetB is from body A's position to body B's.
	OffsetB math32.Vector3

	// Count is the number of valid contacts.
	Count int

	// Normal is the shared world-space surface normal.
	Normal math32.Vector3

	// Contacts are the inline contact slots.
	Contacts [MaxConvexContacts]ConvexContact
}

// Add appends a contact. The manifold must not be full.
func (m *ConvexManifold) Add(contact ConvexContact) {
	if m.Count >= MaxConvexContacts {
		panic("convex manifold is full")
	}
	m.Contacts[m.Count] = contact
	m.Count++
}

// Allocate appends an unfilled contact slot and returns it for the
// caller to fill. The manifold must not be full.
func (m *ConvexManifold) Allocate() *ConvexContact {
	if m.Count >= MaxConvexContacts {
		panic("convex manifold is full")
	}
	c := &m.Contacts[m.Count]
	m.Count++
	return c
}

// FastRemoveAt removes the contact at index i by moving the last
// valid contact into its slot. Order is not preserved.
func (m *ConvexManifold) FastRemoveAt(i int) {
	if i < 0 || i >= m.Count {
		panic("contact index is out of range")
	}
	m.Count--
	if i < m.Count {
		m.Contacts[i] = m.Contacts[m.Count]
	}
}

// NonconvexManifold is the contact set of a nonconvex shape pair: up
// to eight contacts, each with its own normal. Only slots [0, Count)
// are valid; removed slots are not cleared.
type NonconvexManifold struct {

	// OffsetB is from body A's position to body B's.
	OffsetB math32.Vector3

	// Count is the number of valid contacts.
	Count int

	// Contacts are the inline contact slots.
	Contacts [MaxNonconvexContacts]NonconvexContact
}

// Add appends a convex contact with the given normal. The manifold
// must not be full.
func (m *NonconvexManifold) Add(contact ConvexContact, normal math32.Vector3) {
	if m.Count >= MaxNonconvexContacts {
		panic("nonconvex manifold is full")
	}
	m.Contacts[m.Count] = NonconvexContact{
		Offset:    contact.Offset,
		Depth:     contact.Depth,
		Normal:    normal,
		FeatureID: contact.FeatureID,
	}
	m.Count++
}

// Allocate appends an unfilled contact slot and returns it for the
// caller to fill. The manifold must not be full.
func (m *NonconvexManifold) Allocate() *NonconvexContact {
	if m.Count >= MaxNonconvexContacts {
		panic("nonconvex manifold is full")
	}
	c := &m.Contacts[m.Count]
	m.Count++
	return c
}

// FastRemoveAt removes the contact at index i by moving the last
// valid contact into its slot. Order is not preserved.
func (m *NonconvexManifold) FastRemoveAt(i int) {
	if i < 0 || i >= m.Count {
		panic("contact index is out of range")
	}
	m.Count--
	if i < m.Count {
		m.Contacts[i] = m.Contacts[m.Count]
	}
}

// Manifold is the polymorphic read view over convex and nonconvex
// manifolds, used by consumers that do not care which kind produced
// the contacts.
type Manifold interface {

	// ContactCount returns the number of valid contacts.
	ContactCount() int

	// Convex reports whether all contacts share one normal.
	Convex() bool

	// FeatureID returns the feature id of contact i.
	FeatureID(i int) uint32

	// Contact returns the offset, normal, depth, and feature id of
	// contact i. For convex manifolds the normal is the shared
	// manifold normal.
	Contact(i int) (offset, normal math32.Vector3, depth float32, featureID uint32)
}

// ContactCount returns the number of valid contacts.
func (m *ConvexManifold) ContactCount() int {
	return m.Count
}

// Convex returns true.
func (m *ConvexManifold) Convex() bool {
	return true
}

// FeatureID returns the feature id of contact i.
func (m *ConvexManifold) FeatureID(i int) uint32 {
	if i < 0 || i >= m.Count {
		panic("contact index is out of range")
	}
	return m.Contacts[i].FeatureID
}

// Contact returns contact i with the shared manifold normal.
func (m *ConvexManifold) Contact(i int) (offset, normal math32.Vector3, depth float32, featureID uint32) {
	if i < 0 || i >= m.Count {
		panic("contact index is out of range")
	}
	c := &m.Contacts[i]
	return c.Offset, m.Normal, c.Depth, c.FeatureID
}

// ContactCount returns the number of valid contacts.
func (m *NonconvexManifold) ContactCount() int {
	return m.Count
}

// Convex returns false.
func (m *NonconvexManifold) Convex() bool {
	return false
}

// FeatureID returns the feature id of contact i.
func (m *NonconvexManifold) FeatureID(i int) uint32 {
	if i < 0 || i >= m.Count {
		panic("contact index is out of range")
	}
	return m.Contacts[i].FeatureID
}

// Contact returns contact i with its own normal.
func (m *NonconvexManifold) Contact(i int) (offset, normal math32.Vector3, depth float32, featureID uint32) {
	if i < 0 || i >= m.Count {
		panic("contact index is out of range")
	}
	c := &m.Contacts[i]
	return c.Offset, c.Normal, c.Depth, c.FeatureID
}
