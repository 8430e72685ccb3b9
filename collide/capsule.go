// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package collide

import "cogentcore.org/phys/math32"

// Capsule is the Minkowski sum of a Y-aligned line segment spanning
// [-HalfLength, +HalfLength] with a sphere of radius Radius.
type Capsule struct {

	// Radius is the radius of the capsule around its axis.
	Radius float32

	// HalfLength is half the length of the internal line segment.
	HalfLength float32
}

// NewCapsule returns a capsule with the given radius and full segment
// length.
func NewCapsule(radius, length float32) Capsule {
	return Capsule{Radius: radius, HalfLength: length * 0.5}
}

// Length returns the full length of the internal line segment.
func (c Capsule) Length() float32 {
	return 2 * c.HalfLength
}

// TypeID returns [CapsuleID].
func (c Capsule) TypeID() int {
	return CapsuleID
}

// AngularExpansion returns the rotational bounds-expansion data. The
// minimum radius of a capsule equals Radius, so the maximum lateral
// displacement of any point during rotation is HalfLength.
func (c Capsule) AngularExpansion() AngularExpansion {
	return AngularExpansion{
		MaximumRadius:           c.HalfLength + c.Radius,
		MaximumAngularExpansion: c.HalfLength,
	}
}

// Bounds returns the axis-aligned bounds of the capsule under the
// given orientation, centered on the local origin.
func (c Capsule) Bounds(orientation math32.Quat) math32.Box3 {
	segment := math32.Vec3(0, c.HalfLength, 0).MulQuat(orientation).Abs()
	max := segment.AddScalar(c.Radius)
	return math32.Box3{Min: max.Negate(), Max: max}
}

// Inertia returns the inverse inertia of the capsule for the given
// mass, composing a cylinder with two hemispheres weighted by their
// share of the total volume.
func (c Capsule) Inertia(mass float32) Inertia {
	r2 := c.Radius * c.Radius
	h2 := c.HalfLength * c.HalfLength
	cylinderVolume := 2 * c.HalfLength * r2 * math32.Pi
	sphereVolume := (4.0 / 3.0) * math32.Pi * r2 * c.Radius
	inverseTotal := 1 / (cylinderVolume + sphereVolume)
	cylinderVolume *= inverseTotal
	sphereVolume *= inverseTotal
	inverseMass := 1 / mass
	lateral := inverseMass / (cylinderVolume*(r2*0.25+h2/3) +
		sphereVolume*(r2*0.4+0.75*c.Radius*c.HalfLength+h2))
	axial := inverseMass / (cylinderVolume*r2*0.5 + sphereVolume*r2*0.4)
	return Inertia{
		InverseMass:    inverseMass,
		InverseInertia: math32.Vec3(lateral, axial, lateral),
	}
}

// capsuleAxisEps selects the axis-parallel fallback in the capsule ray
// test, where the cylindrical quadratic degenerates.
const capsuleAxisEps = 1.0e-8

// RayTest intersects a ray with the capsule at the given pose. It
// returns the ray t in units of the given (not necessarily unit)
// direction, the world-space unit surface normal at the hit, and
// whether the ray hits.
func (c Capsule) RayTest(pose Pose, origin, dir math32.Vector3) (float32, math32.Vector3, bool) {
	o := origin.Sub(pose.Pos).MulQuatInverse(pose.Quat)
	d := dir.MulQuatInverse(pose.Quat)
	inverseDLength := 1 / d.Length()
	d = d.MulScalar(inverseDLength)

	// Move the origin up to the earliest possible hit time. Starting
	// close to the surface keeps the quadratics well conditioned for
	// rays cast from far away.
	tOffset := math32.Max(0, -o.Dot(d)-(c.HalfLength+c.Radius))
	o = o.Add(d.MulScalar(tOffset))

	a := d.X*d.X + d.Z*d.Z
	b := o.X*d.X + o.Z*d.Z
	radiusSquared := c.Radius * c.Radius
	cylC := o.X*o.X + o.Z*o.Z - radiusSquared
	if b > 0 && cylC > 0 {
		// Outside the infinite cylinder and pointing away.
		return 0, math32.Vector3{}, false
	}

	var sphereY float32
	if a > capsuleAxisEps {
		discriminant := b*b - a*cylC
		if discriminant < 0 {
			return 0, math32.Vector3{}, false
		}
		t := math32.Max(-tOffset, (-b-math32.Sqrt(discriminant))/a)
		hit := o.Add(d.MulScalar(t))
		if hit.Y >= -c.HalfLength && hit.Y <= c.HalfLength {
			normal := math32.Vec3(hit.X/c.Radius, 0, hit.Z/c.Radius)
			return (t + tOffset) * inverseDLength, normal.MulQuat(pose.Quat), true
		}
		// Cylindrical hit is off the segment; test the cap on that end.
		sphereY = math32.Copysign(c.HalfLength, hit.Y)
	} else {
		// Axis-parallel ray; test the cap the ray heads toward.
		if d.Y > 0 {
			sphereY = -c.HalfLength
		} else {
			sphereY = c.HalfLength
		}
	}

	os := o.Sub(math32.Vec3(0, sphereY, 0))
	capB := os.Dot(d)
	capC := os.Dot(os) - radiusSquared
	if capB > 0 && capC > 0 {
		return 0, math32.Vector3{}, false
	}
	discriminant := capB*capB - capC
	if discriminant < 0 {
		return 0, math32.Vector3{}, false
	}
	t := math32.Max(-tOffset, -capB-math32.Sqrt(discriminant))
	normal := os.Add(d.MulScalar(t)).MulScalar(1 / c.Radius)
	return (t + tOffset) * inverseDLength, normal.MulQuat(pose.Quat), true
}
