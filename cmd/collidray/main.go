// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command collidray meshes a procedural solid with marching cubes,
// builds a collision mesh over the triangles, and fires a grid of
// rays at it, reporting hit counts and timings.
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/phys/collide"
	"cogentcore.org/phys/math32"
	"cogentcore.org/phys/pool"
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func main() {
	solid := flag.String("solid", "capsule", "solid to mesh: capsule or box")
	radius := flag.Float64("radius", 0.5, "capsule radius")
	length := flag.Float64("length", 2, "capsule length, including the end caps")
	size := flag.Float64("size", 1, "box edge length")
	cells := flag.Int("cells", 100, "marching cubes cells along the longest axis")
	grid := flag.Int("grid", 64, "rays per side of the query grid")
	flag.Parse()

	var s sdf.SDF3
	var err error
	switch *solid {
	case "capsule":
		s, err = sdf.Capsule3D(*length, *radius)
	case "box":
		s, err = sdf.Box3D(v3.Vec{X: *size, Y: *size, Z: *size}, 0)
	default:
		slog.Error("unknown solid", "solid", *solid)
		os.Exit(1)
	}
	if err != nil {
		slog.Error("building solid", "err", err)
		os.Exit(1)
	}

	start := time.Now()
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(*cells))
	slog.Info("meshed solid", "solid", *solid, "triangles", len(triangles), "duration", time.Since(start))

	p := &pool.Pool{}
	var buf pool.Buffer[math32.Triangle]
	pool.Take(p, len(triangles), &buf)
	for i, tri := range triangles {
		buf.Data[i] = math32.NewTriangle(
			math32.Vec3(float32(tri[0].X), float32(tri[0].Y), float32(tri[0].Z)),
			math32.Vec3(float32(tri[1].X), float32(tri[1].Y), float32(tri[1].Z)),
			math32.Vec3(float32(tri[2].X), float32(tri[2].Y), float32(tri[2].Z)))
	}
	start = time.Now()
	mesh := collide.NewMesh(p, buf, math32.Vec3(1, 1, 1))
	slog.Info("built collision mesh", "duration", time.Since(start))

	var identity math32.Quat
	identity.SetIdentity()
	bb := mesh.Bounds(identity)
	bbSize := bb.Size()
	pose := collide.IdentityPose()

	n := *grid
	hits := 0
	var nearest, farthest float32 = math32.Infinity, 0
	start = time.Now()
	for iy := 0; iy < n; iy++ {
		for ix := 0; ix < n; ix++ {
			fx := (float32(ix)+0.5)/float32(n) - 0.5
			fy := (float32(iy)+0.5)/float32(n) - 0.5
			origin := math32.Vec3(bb.Min.X+(fx+0.5)*bbSize.X, bb.Min.Y+(fy+0.5)*bbSize.Y, bb.Min.Z-1)
			if t, _, hit := mesh.RayTest(pose, origin, math32.Vec3(0, 0, 1), math32.Infinity); hit {
				hits++
				nearest = math32.Min(nearest, t)
				farthest = math32.Max(farthest, t)
			}
		}
	}
	elapsed := time.Since(start)
	slog.Info("cast ray grid", "rays", n*n, "hits", hits,
		"nearest", nearest, "farthest", farthest,
		"duration", elapsed, "perRay", elapsed/time.Duration(n*n))

	mesh.Dispose(p)
}
