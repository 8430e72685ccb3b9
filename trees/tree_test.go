// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trees

import (
	"math/rand"
	"sort"
	"testing"

	"cogentcore.org/phys/math32"
	"cogentcore.org/phys/pool"
	"github.com/stretchr/testify/assert"
)

func randomBoxes(rnd *rand.Rand, n int) []math32.Box3 {
	boxes := make([]math32.Box3, n)
	for i := range boxes {
		c := math32.Vec3(rnd.Float32()*20-10, rnd.Float32()*20-10, rnd.Float32()*20-10)
		h := math32.Vec3(rnd.Float32()+0.01, rnd.Float32()+0.01, rnd.Float32()+0.01)
		boxes[i] = math32.Box3{Min: c.Sub(h), Max: c.Add(h)}
	}
	return boxes
}

type recordingRayTester struct {
	leaves []int32
}

func (rt *recordingRayTester) TestLeaf(leaf int32, ray *Ray, maxT *float32) {
	rt.leaves = append(rt.leaves, leaf)
}

type recordingEnumerator struct {
	leaves []int32
	limit  int
}

func (re *recordingEnumerator) LoopBody(leaf int32) bool {
	re.leaves = append(re.leaves, leaf)
	return re.limit <= 0 || len(re.leaves) < re.limit
}

type recordingSweepTester struct {
	leaves []int32
}

func (st *recordingSweepTester) TestLeaf(leaf int32, maxT *float32) {
	st.leaves = append(st.leaves, leaf)
}

func sorted(leaves []int32) []int32 {
	s := append([]int32{}, leaves...)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

func TestSweepBuildStructure(t *testing.T) {
	p := &pool.Pool{}
	rnd := rand.New(rand.NewSource(1))
	for _, n := range []int{1, 2, 3, 7, 100} {
		boxes := randomBoxes(rnd, n)
		tr := &Tree{}
		tr.SweepBuild(p, boxes)
		assert.Equal(t, n, tr.LeafCount())

		// every leaf is reachable exactly once via a full overlap walk
		re := &recordingEnumerator{}
		all := tr.Bounds()
		GetOverlaps(tr, all.Min, all.Max, re)
		assert.Equal(t, n, len(re.leaves))
		seen := map[int32]bool{}
		for _, li := range re.leaves {
			assert.False(t, seen[li])
			seen[li] = true
		}
		tr.Dispose(p)
	}
}

func TestGetOverlapsBruteForce(t *testing.T) {
	p := &pool.Pool{}
	rnd := rand.New(rand.NewSource(2))
	boxes := randomBoxes(rnd, 200)
	tr := &Tree{}
	tr.SweepBuild(p, boxes)

	for q := 0; q < 50; q++ {
		query := randomBoxes(rnd, 1)[0]
		query.ExpandByScalar(rnd.Float32() * 3)
		re := &recordingEnumerator{}
		assert.True(t, GetOverlaps(tr, query.Min, query.Max, re))

		var expected []int32
		for i, bb := range boxes {
			if query.IntersectsBox(bb) {
				expected = append(expected, int32(i))
			}
		}
		assert.Equal(t, sorted(expected), sorted(re.leaves))
	}
	tr.Dispose(p)
}

func TestGetOverlapsEarlyTermination(t *testing.T) {
	p := &pool.Pool{}
	rnd := rand.New(rand.NewSource(3))
	boxes := randomBoxes(rnd, 50)
	tr := &Tree{}
	tr.SweepBuild(p, boxes)

	all := tr.Bounds()
	re := &recordingEnumerator{limit: 5}
	assert.False(t, GetOverlaps(tr, all.Min, all.Max, re))
	assert.Equal(t, 5, len(re.leaves))
	tr.Dispose(p)
}

func TestRayCastBruteForce(t *testing.T) {
	p := &pool.Pool{}
	rnd := rand.New(rand.NewSource(4))
	boxes := randomBoxes(rnd, 150)
	tr := &Tree{}
	tr.SweepBuild(p, boxes)

	for q := 0; q < 100; q++ {
		origin := math32.Vec3(rnd.Float32()*40-20, rnd.Float32()*40-20, rnd.Float32()*40-20)
		dir := math32.Vec3(rnd.Float32()*2-1, rnd.Float32()*2-1, rnd.Float32()*2-1)
		if dir.LengthSquared() < 0.01 {
			continue
		}
		maxT := float32(25)
		rt := &recordingRayTester{}
		RayCast(tr, origin, dir, &maxT, rt)

		var expected []int32
		for i, bb := range boxes {
			if tmin, ok := rayBox(origin, dir, bb); ok && tmin <= 25 {
				expected = append(expected, int32(i))
			}
		}
		assert.Equal(t, sorted(expected), sorted(rt.leaves))
	}
	tr.Dispose(p)
}

func TestSweepSupersetOfStaticOverlap(t *testing.T) {
	p := &pool.Pool{}
	rnd := rand.New(rand.NewSource(5))
	boxes := randomBoxes(rnd, 100)
	tr := &Tree{}
	tr.SweepBuild(p, boxes)

	for q := 0; q < 50; q++ {
		query := randomBoxes(rnd, 1)[0]
		sweep := math32.Vec3(rnd.Float32()*4-2, rnd.Float32()*4-2, rnd.Float32()*4-2)
		maxT := float32(2)

		st := &recordingSweepTester{}
		Sweep(tr, query.Min, query.Max, sweep, &maxT, st)
		swept := map[int32]bool{}
		for _, li := range st.leaves {
			swept[li] = true
		}

		// anything statically overlapped at t=0 must be in the swept set
		re := &recordingEnumerator{}
		GetOverlaps(tr, query.Min, query.Max, re)
		for _, li := range re.leaves {
			assert.True(t, swept[li])
		}
	}
	tr.Dispose(p)
}

func TestRayBox(t *testing.T) {
	bb := math32.B3(-1, -1, -1, 1, 1, 1)

	tmin, ok := rayBox(math32.Vec3(0, 0, -3), math32.Vec3(0, 0, 1), bb)
	assert.True(t, ok)
	assert.InDelta(t, 2, tmin, 1.0e-5)

	// from inside: entry clamps to 0
	tmin, ok = rayBox(math32.Vec3(0, 0, 0), math32.Vec3(0, 0, 1), bb)
	assert.True(t, ok)
	assert.Equal(t, float32(0), tmin)

	// pointing away
	_, ok = rayBox(math32.Vec3(0, 0, 3), math32.Vec3(0, 0, 1), bb)
	assert.False(t, ok)

	// axis-parallel miss
	_, ok = rayBox(math32.Vec3(2, 0, -3), math32.Vec3(0, 0, 1), bb)
	assert.False(t, ok)

	// zero direction inside the box: static containment
	tmin, ok = rayBox(math32.Vec3(0.5, 0.5, 0.5), math32.Vector3{}, bb)
	assert.True(t, ok)
	assert.Equal(t, float32(0), tmin)
}
