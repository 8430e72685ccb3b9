// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trees

import "cogentcore.org/phys/math32"

// Ray is the ray state handed to leaf testers during a [RayCast].
// Dir need not be unit length; t values are in units of Dir.
type Ray struct {
	Origin math32.Vector3
	Dir    math32.Vector3
}

// RayLeafTester is invoked for every leaf whose bounds a ray cast may
// hit. The tester may narrow *maxT to prune the remaining traversal.
type RayLeafTester interface {
	TestLeaf(leaf int32, ray *Ray, maxT *float32)
}

// SweepLeafTester is invoked for every leaf whose bounds a swept box
// may touch. The tester may narrow *maxT to prune the remaining
// traversal.
type SweepLeafTester interface {
	TestLeaf(leaf int32, maxT *float32)
}

// OverlapEnumerator is invoked for every leaf whose bounds intersect
// an overlap query box. Returning false terminates the enumeration.
type OverlapEnumerator interface {
	LoopBody(leaf int32) bool
}

// rayBoxEps guards against division by near-zero direction components
// in the slab test.
const rayBoxEps = 1.0e-6

// rayBox intersects a ray with a box using the slab method, returning
// the entry time clamped to 0 and whether the ray touches the box at
// any nonnegative time.
func rayBox(origin, dir math32.Vector3, bb math32.Box3) (float32, bool) {
	tmin := -math32.Infinity
	tmax := math32.Infinity

	if math32.Abs(dir.X) < rayBoxEps {
		if origin.X < bb.Min.X || origin.X > bb.Max.X {
			return 0, false
		}
	} else {
		t1 := (bb.Min.X - origin.X) / dir.X
		t2 := (bb.Max.X - origin.X) / dir.X
		if t1 > t2 {
			math32.Swap(&t1, &t2)
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	if math32.Abs(dir.Y) < rayBoxEps {
		if origin.Y < bb.Min.Y || origin.Y > bb.Max.Y {
			return 0, false
		}
	} else {
		t1 := (bb.Min.Y - origin.Y) / dir.Y
		t2 := (bb.Max.Y - origin.Y) / dir.Y
		if t1 > t2 {
			math32.Swap(&t1, &t2)
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	if math32.Abs(dir.Z) < rayBoxEps {
		if origin.Z < bb.Min.Z || origin.Z > bb.Max.Z {
			return 0, false
		}
	} else {
		t1 := (bb.Min.Z - origin.Z) / dir.Z
		t2 := (bb.Max.Z - origin.Z) / dir.Z
		if t1 > t2 {
			math32.Swap(&t1, &t2)
		}
		tmin = math32.Max(tmin, t1)
		tmax = math32.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}

	if tmax < 0 {
		return 0, false
	}
	return math32.Max(tmin, 0), true
}

// RayCast descends the tree along the given ray, invoking the tester
// at every leaf whose bounds the ray enters before *maxT. Children are
// visited nearest first, so a tester that narrows *maxT (e.g. one
// looking for the first hit) prunes most of the far side.
func RayCast[L RayLeafTester](t *Tree, origin, dir math32.Vector3, maxT *float32, tester L) {
	if t.leafCount == 0 {
		return
	}
	ray := Ray{Origin: origin, Dir: dir}
	stack := make([]int32, 0, 64)
	stack = append(stack, 0)
	for len(stack) > 0 {
		ni := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes.Data[ni]

		ta, hitA := rayBox(origin, dir, nd.A.Bounds)
		hitA = hitA && ta <= *maxT
		var tb float32
		hitB := nd.B.Index != noChild
		if hitB {
			tb, hitB = rayBox(origin, dir, nd.B.Bounds)
			hitB = hitB && tb <= *maxT
		}

		if hitA && isLeaf(nd.A.Index) {
			tester.TestLeaf(leafIndex(nd.A.Index), &ray, maxT)
			hitA = false
		}
		if hitB && isLeaf(nd.B.Index) {
			tester.TestLeaf(leafIndex(nd.B.Index), &ray, maxT)
			hitB = false
		}
		switch {
		case hitA && hitB:
			if ta <= tb {
				stack = append(stack, nd.B.Index, nd.A.Index)
			} else {
				stack = append(stack, nd.A.Index, nd.B.Index)
			}
		case hitA:
			stack = append(stack, nd.A.Index)
		case hitB:
			stack = append(stack, nd.B.Index)
		}
	}
}

// GetOverlaps invokes the enumerator for every leaf whose bounds
// intersect the query box. It returns false if the enumerator
// terminated the walk early.
func GetOverlaps[E OverlapEnumerator](t *Tree, min, max math32.Vector3, enum E) bool {
	if t.leafCount == 0 {
		return true
	}
	query := math32.Box3{Min: min, Max: max}
	stack := make([]int32, 0, 64)
	stack = append(stack, 0)
	for len(stack) > 0 {
		ni := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes.Data[ni]

		if query.IntersectsBox(nd.A.Bounds) {
			if isLeaf(nd.A.Index) {
				if !enum.LoopBody(leafIndex(nd.A.Index)) {
					return false
				}
			} else {
				stack = append(stack, nd.A.Index)
			}
		}
		if nd.B.Index != noChild && query.IntersectsBox(nd.B.Bounds) {
			if isLeaf(nd.B.Index) {
				if !enum.LoopBody(leafIndex(nd.B.Index)) {
					return false
				}
			} else {
				stack = append(stack, nd.B.Index)
			}
		}
	}
	return true
}

// Sweep descends the tree with the query box [min, max] swept along
// the sweep vector over t in [0, *maxT], invoking the tester at every
// leaf the swept box may touch. The test is the ray of the box center
// against node bounds expanded by the box half-extents.
func Sweep[L SweepLeafTester](t *Tree, min, max, sweep math32.Vector3, maxT *float32, tester L) {
	if t.leafCount == 0 {
		return
	}
	center := min.Add(max).MulScalar(0.5)
	halfExtent := max.Sub(min).MulScalar(0.5)
	stack := make([]int32, 0, 64)
	stack = append(stack, 0)
	for len(stack) > 0 {
		ni := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &t.nodes.Data[ni]

		for ci := 0; ci < 2; ci++ {
			ch := &nd.A
			if ci == 1 {
				ch = &nd.B
				if ch.Index == noChild {
					continue
				}
			}
			expanded := ch.Bounds
			expanded.ExpandByVector(halfExtent)
			tmin, hit := rayBox(center, sweep, expanded)
			if !hit || tmin > *maxT {
				continue
			}
			if isLeaf(ch.Index) {
				tester.TestLeaf(leafIndex(ch.Index), maxT)
			} else {
				stack = append(stack, ch.Index)
			}
		}
	}
}
