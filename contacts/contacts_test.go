// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package contacts

import (
	"math/rand"
	"testing"

	"cogentcore.org/phys/math32"
	"github.com/stretchr/testify/assert"
)

func featureSet(m Manifold) map[uint32]bool {
	set := map[uint32]bool{}
	for i := 0; i < m.ContactCount(); i++ {
		set[m.FeatureID(i)] = true
	}
	return set
}

func TestConvexManifoldAddRemove(t *testing.T) {
	m := &ConvexManifold{Normal: math32.Vec3(0, 1, 0)}
	for i := 0; i < MaxConvexContacts; i++ {
		m.Add(ConvexContact{Offset: math32.Vec3(float32(i), 0, 0), Depth: float32(i) * 0.1, FeatureID: uint32(i)})
	}
	assert.Equal(t, MaxConvexContacts, m.ContactCount())
	assert.True(t, m.Convex())
	assert.Panics(t, func() { m.Add(ConvexContact{}) })

	offset, normal, depth, featureID := m.Contact(2)
	assert.Equal(t, math32.Vec3(2, 0, 0), offset)
	assert.Equal(t, m.Normal, normal)
	assert.Equal(t, float32(0.2), depth)
	assert.Equal(t, uint32(2), featureID)

	before := featureSet(m)
	m.FastRemoveAt(1)
	assert.Equal(t, 3, m.Count)
	after := featureSet(m)
	delete(before, 1)
	assert.Equal(t, before, after)

	assert.Panics(t, func() { m.FastRemoveAt(3) })
}

func TestNonconvexManifoldAddRemove(t *testing.T) {
	m := &NonconvexManifold{}
	for i := 0; i < MaxNonconvexContacts; i++ {
		m.Add(ConvexContact{Offset: math32.Vec3(0, float32(i), 0), FeatureID: uint32(100 + i)}, math32.Vec3(0, 0, 1))
	}
	assert.Equal(t, MaxNonconvexContacts, m.ContactCount())
	assert.False(t, m.Convex())
	assert.Panics(t, func() { m.Allocate() })

	_, normal, _, featureID := m.Contact(5)
	assert.Equal(t, math32.Vec3(0, 0, 1), normal)
	assert.Equal(t, uint32(105), featureID)

	// removing the last slot touches nothing else
	before := featureSet(m)
	m.FastRemoveAt(m.Count - 1)
	delete(before, 107)
	assert.Equal(t, before, featureSet(m))
}

func TestConvexManifoldAllocate(t *testing.T) {
	m := &ConvexManifold{}
	c := m.Allocate()
	c.Offset = math32.Vec3(1, 2, 3)
	c.FeatureID = 7
	assert.Equal(t, 1, m.Count)
	assert.Equal(t, uint32(7), m.FeatureID(0))
}

func TestFastRemoveAtSetSemantics(t *testing.T) {
	rnd := rand.New(rand.NewSource(31))
	for iter := 0; iter < 100; iter++ {
		m := &NonconvexManifold{}
		n := rnd.Intn(MaxNonconvexContacts) + 1
		for i := 0; i < n; i++ {
			m.Add(ConvexContact{FeatureID: uint32(i)}, math32.Vec3(0, 1, 0))
		}
		for m.Count > 0 {
			before := featureSet(m)
			i := rnd.Intn(m.Count)
			removed := m.FeatureID(i)
			m.FastRemoveAt(i)
			delete(before, removed)
			assert.Equal(t, before, featureSet(m))
		}
	}
}
