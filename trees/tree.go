// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trees provides a binary bounding-volume tree over leaf
// bounding boxes, with a surface-area-heuristic sweep builder and
// stack-based ray, overlap and swept-box queries driven by generic
// leaf testers.
package trees

import (
	"cmp"
	"slices"

	"cogentcore.org/phys/math32"
	"cogentcore.org/phys/pool"
)

// noChild marks the unused second child of a single-leaf tree.
const noChild int32 = -2147483648

// child is one branch of a node: the bounds of everything below it,
// and either another node index (>= 0) or an encoded leaf (^leaf).
type child struct {
	Bounds math32.Box3
	Index  int32
}

// isLeaf returns whether the child index encodes a leaf.
func isLeaf(index int32) bool {
	return index < 0
}

// leafIndex decodes a leaf child index.
func leafIndex(index int32) int32 {
	return ^index
}

// node is an internal tree node holding its two children inline.
type node struct {
	A child
	B child
}

// Tree is a binary bounding-volume hierarchy over externally owned
// leaves, addressed by their index in the bounds slice given to
// [Tree.SweepBuild]. A Tree is immutable after building; queries can
// run concurrently.
type Tree struct {
	nodes pool.Buffer[node]

	used      int32
	leafCount int
}

// LeafCount returns the number of leaves the tree was built over.
func (t *Tree) LeafCount() int {
	return t.leafCount
}

// Bounds returns the bounds of the whole tree.
func (t *Tree) Bounds() math32.Box3 {
	if t.leafCount == 0 {
		return math32.B3Empty()
	}
	bb := t.nodes.Data[0].A.Bounds
	if t.nodes.Data[0].B.Index != noChild {
		bb.ExpandByBox(t.nodes.Data[0].B.Bounds)
	}
	return bb
}

// SweepBuild builds the tree over the given leaf bounds using a full
// surface-area-heuristic sweep at every node: leaves are sorted by
// centroid along the longest centroid axis and split at the plane of
// minimum cost, each child's half area weighted by its leaf count.
// Build cost is O(n log^2 n); queries are
// what matter, since trees are built once over static geometry.
// Scratch buffers are taken from and returned to the given pool; the
// node storage stays with the tree until [Tree.Dispose].
func (t *Tree) SweepBuild(p *pool.Pool, bounds []math32.Box3) {
	n := len(bounds)
	t.leafCount = n
	t.used = 0
	if n == 0 {
		return
	}
	nodeCount := n - 1
	if nodeCount < 1 {
		nodeCount = 1
	}
	pool.Take(p, nodeCount, &t.nodes)

	if n == 1 {
		t.nodes.Data[0] = node{
			A: child{Bounds: bounds[0], Index: ^int32(0)},
			B: child{Bounds: math32.B3Empty(), Index: noChild},
		}
		t.used = 1
		return
	}

	var order pool.Buffer[int32]
	var centroids pool.Buffer[math32.Vector3]
	var suffix pool.Buffer[math32.Box3]
	pool.Take(p, n, &order)
	pool.Take(p, n, &centroids)
	pool.Take(p, n, &suffix)
	for i := 0; i < n; i++ {
		order.Data[i] = int32(i)
		centroids.Data[i] = bounds[i].Center()
	}
	t.buildNode(bounds, centroids.Data, order.Data, suffix.Data)
	pool.Return(p, &order)
	pool.Return(p, &centroids)
	pool.Return(p, &suffix)
}

// Dispose returns the tree's node storage to the pool.
func (t *Tree) Dispose(p *pool.Pool) {
	pool.Return(p, &t.nodes)
	t.used = 0
	t.leafCount = 0
}

// axisValue returns the given component of the vector.
func axisValue(v math32.Vector3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// longestAxis returns the axis of largest extent of the box.
func longestAxis(bb math32.Box3) int {
	sz := bb.Size()
	if sz.X >= sz.Y && sz.X >= sz.Z {
		return 0
	}
	if sz.Y >= sz.Z {
		return 1
	}
	return 2
}

// buildNode recursively builds the subtree over order, which indexes
// bounds and centroids; suffix is scratch aligned with order.
// It returns the new node's index.
func (t *Tree) buildNode(bounds []math32.Box3, centroids []math32.Vector3, order []int32, suffix []math32.Box3) int32 {
	ni := t.used
	t.used++
	n := len(order)

	centroidBounds := math32.B3Empty()
	for _, li := range order {
		centroidBounds.ExpandByPoint(centroids[li])
	}
	axis := longestAxis(centroidBounds)
	slices.SortFunc(order, func(a, b int32) int {
		return cmp.Compare(axisValue(centroids[a], axis), axisValue(centroids[b], axis))
	})

	suffix[n-1] = bounds[order[n-1]]
	for i := n - 2; i >= 1; i-- {
		suffix[i] = suffix[i+1]
		suffix[i].ExpandByBox(bounds[order[i]])
	}

	split := 1
	bestCost := math32.Infinity
	bestBoundsA := math32.B3Empty()
	bestBoundsB := math32.B3Empty()
	prefix := math32.B3Empty()
	for i := 1; i < n; i++ {
		prefix.ExpandByBox(bounds[order[i-1]])
		cost := prefix.HalfArea()*float32(i) + suffix[i].HalfArea()*float32(n-i)
		if cost < bestCost {
			bestCost = cost
			split = i
			bestBoundsA = prefix
			bestBoundsB = suffix[i]
		}
	}

	nd := node{
		A: child{Bounds: bestBoundsA},
		B: child{Bounds: bestBoundsB},
	}
	if split == 1 {
		nd.A.Index = ^order[0]
	}
	if n-split == 1 {
		nd.B.Index = ^order[split]
	}
	// Write the node before recursing so child nodes land after it;
	// child indices are patched in below.
	t.nodes.Data[ni] = nd
	if split > 1 {
		t.nodes.Data[ni].A.Index = t.buildNode(bounds, centroids, order[:split], suffix[:split])
	}
	if n-split > 1 {
		t.nodes.Data[ni].B.Index = t.buildNode(bounds, centroids, order[split:], suffix[split:])
	}
	return ni
}
