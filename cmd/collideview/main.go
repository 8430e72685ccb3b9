// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command collideview is an interactive debug viewer: it draws a
// collision mesh as a wireframe, casts a ray from the mouse cursor
// and marks the hit, and renders the contact lines extracted from a
// synthetic contact manifold.
package main

import (
	"image/color"

	"cogentcore.org/phys/collide"
	"cogentcore.org/phys/contacts"
	"cogentcore.org/phys/debugdraw"
	"cogentcore.org/phys/math32"
	"cogentcore.org/phys/pool"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// boxTriangles returns the twelve triangles of an axis-aligned box.
func boxTriangles(half math32.Vector3) []math32.Triangle {
	v := func(sx, sy, sz float32) math32.Vector3 {
		return math32.Vec3(sx*half.X, sy*half.Y, sz*half.Z)
	}
	quads := [][4]math32.Vector3{
		{v(-1, -1, 1), v(1, -1, 1), v(1, 1, 1), v(-1, 1, 1)},     // +z
		{v(1, -1, -1), v(-1, -1, -1), v(-1, 1, -1), v(1, 1, -1)}, // -z
		{v(1, -1, 1), v(1, -1, -1), v(1, 1, -1), v(1, 1, 1)},     // +x
		{v(-1, -1, -1), v(-1, -1, 1), v(-1, 1, 1), v(-1, 1, -1)}, // -x
		{v(-1, 1, 1), v(1, 1, 1), v(1, 1, -1), v(-1, 1, -1)},     // +y
		{v(-1, -1, -1), v(1, -1, -1), v(1, -1, 1), v(-1, -1, 1)}, // -y
	}
	tris := make([]math32.Triangle, 0, 12)
	for _, q := range quads {
		tris = append(tris,
			math32.NewTriangle(q[0], q[1], q[2]),
			math32.NewTriangle(q[0], q[2], q[3]))
	}
	return tris
}

func rlVec(v math32.Vector3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

// contactLines builds the debug lines of a synthetic manifold resting
// on the top face of the box.
func contactLines(pose collide.Pose, top float32) []debugdraw.Line {
	manifold := &contacts.ConvexManifold{Normal: math32.Vec3(0, 1, 0)}
	manifold.Add(contacts.ConvexContact{Offset: math32.Vec3(0.5, top, 0.5), Depth: 0.05, FeatureID: 0})
	manifold.Add(contacts.ConvexContact{Offset: math32.Vec3(-0.5, top, 0.5), Depth: 0.02, FeatureID: 1})
	manifold.Add(contacts.ConvexContact{Offset: math32.Vec3(-0.5, top, -0.5), Depth: -0.01, FeatureID: 2})
	manifold.Add(contacts.ConvexContact{Offset: math32.Vec3(0.5, top, -0.5), Depth: 0.03, FeatureID: 3})
	prestep := debugdraw.PrestepFromManifold(manifold)
	var lines []debugdraw.Line
	debugdraw.ExtractContactLines(&prestep, pose, color.RGBA{R: 255, G: 200, B: 40, A: 255}, &lines)
	return lines
}

func main() {
	rl.InitWindow(1280, 720, "collideview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	var camera rl.Camera3D
	camera.Position = rl.NewVector3(4, 3, 4)
	camera.Target = rl.NewVector3(0, 0, 0)
	camera.Up = rl.NewVector3(0, 1, 0)
	camera.Fovy = 45
	camera.Projection = rl.CameraPerspective

	p := &pool.Pool{}
	tris := boxTriangles(math32.Vec3(1, 0.75, 1))
	var buf pool.Buffer[math32.Triangle]
	pool.Take(p, len(tris), &buf)
	copy(buf.Data, tris)
	mesh := collide.NewMesh(p, buf, math32.Vec3(1, 1, 1))
	defer mesh.Dispose(p)
	pose := collide.IdentityPose()
	lines := contactLines(pose, 0.75)

	for !rl.WindowShouldClose() {
		rl.UpdateCamera(&camera, rl.CameraOrbital)

		mouse := rl.GetMouseRay(rl.GetMousePosition(), camera)
		origin := math32.Vec3(mouse.Position.X, mouse.Position.Y, mouse.Position.Z)
		dir := math32.Vec3(mouse.Direction.X, mouse.Direction.Y, mouse.Direction.Z)
		hitT, hitNormal, hit := mesh.RayTest(pose, origin, dir, math32.Infinity)

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(18, 18, 24, 255))
		rl.BeginMode3D(camera)

		rl.DrawGrid(10, 0.5)
		wire := rl.NewColor(90, 160, 220, 255)
		for i := 0; i < mesh.TriangleCount(); i++ {
			tri := mesh.LocalTriangle(i)
			a, b, c := pose.Transform(tri.A), pose.Transform(tri.B), pose.Transform(tri.C)
			rl.DrawLine3D(rlVec(a), rlVec(b), wire)
			rl.DrawLine3D(rlVec(b), rlVec(c), wire)
			rl.DrawLine3D(rlVec(c), rlVec(a), wire)
		}

		for _, ln := range lines {
			rl.DrawLine3D(rlVec(ln.Start), rlVec(ln.End), rlColor(ln.Color))
		}

		if hit {
			point := origin.Add(dir.MulScalar(hitT))
			rl.DrawSphere(rlVec(point), 0.04, rl.Red)
			rl.DrawLine3D(rlVec(point), rlVec(point.Add(hitNormal.MulScalar(0.4))), rl.Green)
		}

		rl.EndMode3D()
		rl.DrawText("orbital camera; move the mouse to cast a ray", 12, 12, 18, rl.RayWhite)
		rl.EndDrawing()
	}
}
