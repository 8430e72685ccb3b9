// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import (
	"cogentcore.org/phys/math32"
	"cogentcore.org/phys/pool"
	"cogentcore.org/phys/trees"
)

// Ray is an origin and a direction. The direction need not be unit
// length; reported t values are in units of its length.
type Ray struct {
	Origin math32.Vector3
	Dir    math32.Vector3
}

// Mesh is a triangle soup with a bounding-volume tree over the
// per-triangle bounds. Triangles are stored unscaled; the mesh scale
// is applied to queries and reported geometry. A Mesh is immutable
// once built, except for [Mesh.SetScale], and exclusively owns its
// triangle buffer and tree until [Mesh.Dispose].
type Mesh struct {
	triangles    pool.Buffer[math32.Triangle]
	tree         trees.Tree
	scale        math32.Vector3
	inverseScale math32.Vector3
}

// NewMesh builds a mesh over the given triangle buffer, which the
// mesh takes ownership of, with the given scale. The temporary
// per-triangle bounds buffer used by the tree build is taken from and
// returned to the pool before NewMesh returns.
func NewMesh(p *pool.Pool, triangles pool.Buffer[math32.Triangle], scale math32.Vector3) *Mesh {
	m := &Mesh{triangles: triangles}
	m.SetScale(scale)
	var bounds pool.Buffer[math32.Box3]
	pool.Take(p, triangles.Len(), &bounds)
	for i := range triangles.Data {
		bounds.Data[i] = triangles.Data[i].Bounds()
	}
	m.tree.SweepBuild(p, bounds.Data)
	pool.Return(p, &bounds)
	return m
}

// Dispose returns the mesh's triangle buffer and tree storage to the
// pool.
func (m *Mesh) Dispose(p *pool.Pool) {
	pool.Return(p, &m.triangles)
	m.tree.Dispose(p)
}

// TypeID returns [MeshID].
func (m *Mesh) TypeID() int {
	return MeshID
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return m.triangles.Len()
}

// Scale returns the mesh scale.
func (m *Mesh) Scale() math32.Vector3 {
	return m.scale
}

// SetScale sets the mesh scale and recomputes the cached component
// inverse. A zero axis maps to the largest finite value rather than
// infinity, so scaled queries stay finite.
func (m *Mesh) SetScale(scale math32.Vector3) {
	m.scale = scale
	m.inverseScale = math32.Vec3(inverseScale(scale.X), inverseScale(scale.Y), inverseScale(scale.Z))
}

func inverseScale(s float32) float32 {
	if s == 0 {
		return math32.MaxFloat32
	}
	return 1 / s
}

// LocalTriangle returns triangle i with the mesh scale applied, in
// the mesh-local frame.
func (m *Mesh) LocalTriangle(i int) math32.Triangle {
	return m.triangles.Data[i].Mul(m.scale)
}

// LocalTriangleWide writes triangle i, scaled, into the first lane of
// the given wide triangle.
func (m *Mesh) LocalTriangleWide(i int, tri *TriangleWide) {
	tri.Gather(m.triangles.Data[i].Mul(m.scale))
}

// Bounds returns the axis-aligned bounds of the scaled mesh under the
// given orientation. It visits every vertex; meshes are assumed
// static, with bounds computed once.
func (m *Mesh) Bounds(orientation math32.Quat) math32.Box3 {
	bb := math32.B3Empty()
	for i := range m.triangles.Data {
		tri := &m.triangles.Data[i]
		bb.ExpandByPoint(tri.A.Mul(m.scale).MulQuat(orientation))
		bb.ExpandByPoint(tri.B.Mul(m.scale).MulQuat(orientation))
		bb.ExpandByPoint(tri.C.Mul(m.scale).MulQuat(orientation))
	}
	return bb
}

// localRay pulls a world-space ray into the unscaled mesh-local frame.
func (m *Mesh) localRay(pose Pose, origin, dir math32.Vector3) (math32.Vector3, math32.Vector3) {
	localOrigin := origin.Sub(pose.Pos).MulQuatInverse(pose.Quat).Mul(m.inverseScale)
	localDir := dir.MulQuatInverse(pose.Quat).Mul(m.inverseScale)
	return localOrigin, localDir
}

// worldNormal transforms an unscaled-frame geometric normal to a unit
// world-space normal.
func (m *Mesh) worldNormal(pose Pose, normal math32.Vector3) math32.Vector3 {
	return normal.Mul(m.inverseScale).MulQuat(pose.Quat).Normal()
}

// firstHitTester records the nearest triangle hit during a ray
// traversal.
type firstHitTester struct {
	mesh     *Mesh
	minimumT float32
	normal   math32.Vector3
}

func (ft *firstHitTester) TestLeaf(leaf int32, ray *trees.Ray, maxT *float32) {
	tri := &ft.mesh.triangles.Data[leaf]
	t, normal, hit := RayTriangle(tri.A, tri.B, tri.C, ray.Origin, ray.Dir)
	if hit && t < ft.minimumT && t <= *maxT {
		ft.minimumT = t
		ft.normal = normal
	}
}

// RayTest intersects a ray with the mesh at the given pose, returning
// the nearest hit with t <= maxT. t is in units of the given
// direction; the normal is unit length in world space.
func (m *Mesh) RayTest(pose Pose, origin, dir math32.Vector3, maxT float32) (float32, math32.Vector3, bool) {
	localOrigin, localDir := m.localRay(pose, origin, dir)
	tester := firstHitTester{mesh: m, minimumT: math32.Infinity}
	trees.RayCast(&m.tree, localOrigin, localDir, &maxT, &tester)
	if tester.minimumT == math32.Infinity {
		return 0, math32.Vector3{}, false
	}
	return tester.minimumT, m.worldNormal(pose, tester.normal), true
}

// CompoundRayHitHandler receives every triangle hit of an all-hits ray
// test. The handler may narrow *maxT to prune the remaining
// traversal.
type CompoundRayHitHandler interface {
	OnRayHit(childIndex int, maxT *float32, t float32, normal math32.Vector3)
}

// allHitsTester forwards every triangle hit to a hit handler, with
// the normal already in world space.
type allHitsTester[H CompoundRayHitHandler] struct {
	mesh    *Mesh
	pose    Pose
	handler H
}

func (at *allHitsTester[H]) TestLeaf(leaf int32, ray *trees.Ray, maxT *float32) {
	tri := &at.mesh.triangles.Data[leaf]
	t, normal, hit := RayTriangle(tri.A, tri.B, tri.C, ray.Origin, ray.Dir)
	if hit && t <= *maxT {
		at.handler.OnRayHit(int(leaf), maxT, t, at.mesh.worldNormal(at.pose, normal))
	}
}

// RayTestAll intersects a ray with the mesh at the given pose and
// invokes the handler for every triangle hit with t <= *maxT, in
// traversal order. Narrowing *maxT from the handler prunes the
// remaining traversal.
func RayTestAll[H CompoundRayHitHandler](m *Mesh, pose Pose, origin, dir math32.Vector3, maxT *float32, handler H) {
	localOrigin, localDir := m.localRay(pose, origin, dir)
	tester := allHitsTester[H]{mesh: m, pose: pose, handler: handler}
	trees.RayCast(&m.tree, localOrigin, localDir, maxT, &tester)
}

// RayBatchHitHandler receives the nearest hit, if any, of each ray in
// a batch, identified by its index in the batch.
type RayBatchHitHandler interface {
	OnRayHit(i int, t float32, normal math32.Vector3)
}

// RayTestBatch runs a first-hit ray test for every ray in the batch
// and reports each hit to the handler with the ray's index.
func RayTestBatch[H RayBatchHitHandler](m *Mesh, pose Pose, rays []Ray, handler H) {
	for i := range rays {
		if t, normal, hit := m.RayTest(pose, rays[i].Origin, rays[i].Dir, math32.Infinity); hit {
			handler.OnRayHit(i, t, normal)
		}
	}
}

// BoundsQuery is one axis-aligned query box, in the scaled mesh-local
// frame.
type BoundsQuery struct {
	Min math32.Vector3
	Max math32.Vector3
}

// LeafList accumulates candidate triangle indices from an overlap
// query.
type LeafList struct {
	Indices []int32
}

// Add appends a triangle index to the list.
func (l *LeafList) Add(i int32) {
	l.Indices = append(l.Indices, i)
}

func (l *LeafList) LoopBody(i int32) bool {
	l.Add(i)
	return true
}

// OverlapBuckets hands out the per-query index bucket of an overlap
// query batch.
type OverlapBuckets interface {
	Bucket(query int) *LeafList
}

// FindLocalOverlaps enumerates, for each query box, every triangle
// whose bounds intersect it, appending triangle indices to the
// query's bucket. The walk never terminates early.
func FindLocalOverlaps[B OverlapBuckets](m *Mesh, queries []BoundsQuery, buckets B) {
	for qi := range queries {
		q := &queries[qi]
		trees.GetOverlaps(&m.tree, q.Min.Mul(m.inverseScale), q.Max.Mul(m.inverseScale), buckets.Bucket(qi))
	}
}

// sweepLeafCollector appends every candidate leaf of a swept-box
// traversal.
type sweepLeafCollector struct {
	list *LeafList
}

func (sc *sweepLeafCollector) TestLeaf(leaf int32, maxT *float32) {
	sc.list.Add(leaf)
}

// FindLocalSweepOverlaps enumerates every triangle the query box
// [min, max] may touch while swept along the sweep vector over
// t in [0, *maxT], appending triangle indices to the list. Box,
// sweep, and bounds are in the scaled mesh-local frame.
func FindLocalSweepOverlaps(m *Mesh, min, max, sweep math32.Vector3, maxT *float32, list *LeafList) {
	tester := sweepLeafCollector{list: list}
	trees.Sweep(&m.tree, min.Mul(m.inverseScale), max.Mul(m.inverseScale), sweep.Mul(m.inverseScale), maxT, &tester)
}
