// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wide

import (
	"math/rand"
	"testing"

	"cogentcore.org/phys/base/tolassert"
	"cogentcore.org/phys/math32"
	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-5

func randomVec3(rnd *rand.Rand) math32.Vector3 {
	return math32.Vec3(rnd.Float32()*2-1, rnd.Float32()*2-1, rnd.Float32()*2-1)
}

func randomUnitVec3(rnd *rand.Rand) math32.Vector3 {
	for {
		v := randomVec3(rnd)
		if lsq := v.LengthSquared(); lsq > 1.0e-4 {
			return v.DivScalar(math32.Sqrt(lsq))
		}
	}
}

func TestFloatOps(t *testing.T) {
	a := Float{1, -2, 3, -4}
	b := Float{2, 2, -2, -2}
	assert.Equal(t, Float{3, 0, 1, -6}, a.Add(b))
	assert.Equal(t, Float{-1, -4, 5, -2}, a.Sub(b))
	assert.Equal(t, Float{2, -4, -6, 8}, a.Mul(b))
	assert.Equal(t, Float{1, 2, 3, 4}, a.Abs())
	assert.Equal(t, Float{1, -2, -2, -4}, a.Min(b))
	assert.Equal(t, Float{2, 2, 3, -2}, a.Max(b))
	assert.Equal(t, Mask{true, true, false, true}, a.Less(b))
	assert.Equal(t, Float{1, -2, -2, -4}, Select(a.Less(b), a, b))
}

func TestMaskOps(t *testing.T) {
	a := Mask{true, true, false, false}
	b := Mask{true, false, true, false}
	assert.Equal(t, Mask{true, false, false, false}, a.And(b))
	assert.Equal(t, Mask{true, true, true, false}, a.Or(b))
	assert.Equal(t, Mask{false, false, true, true}, a.Not())
	assert.True(t, a.Any())
	assert.False(t, a.All())
	assert.False(t, Mask{}.Any())
	assert.True(t, Mask{true, true, true, true}.All())
}

func TestVec3LaneAgreement(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for n := 0; n < 100; n++ {
		var wa, wb Vec3
		var sa, sb [Lanes]math32.Vector3
		for i := 0; i < Lanes; i++ {
			sa[i] = randomVec3(rnd)
			sb[i] = randomVec3(rnd)
			wa.SetLane(i, sa[i])
			wb.SetLane(i, sb[i])
		}
		dot := wa.Dot(wb)
		cross := wa.Cross(wb)
		sum := wa.Add(wb)
		for i := 0; i < Lanes; i++ {
			tolassert.EqualTol(t, sa[i].Dot(sb[i]), dot[i], standardTol)
			assertVectorTol(t, sa[i].Cross(sb[i]), cross.Lane(i))
			assertVectorTol(t, sa[i].Add(sb[i]), sum.Lane(i))
		}
	}
}

func assertVectorTol(t *testing.T, expected, actual math32.Vector3) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, standardTol)
	tolassert.EqualTol(t, expected.Y, actual.Y, standardTol)
	tolassert.EqualTol(t, expected.Z, actual.Z, standardTol)
}

func TestQuatMulVec3LaneAgreement(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	for n := 0; n < 100; n++ {
		var wq Quat
		var wv Vec3
		var sq [Lanes]math32.Quat
		var sv [Lanes]math32.Vector3
		for i := 0; i < Lanes; i++ {
			sq[i] = math32.NewQuatAxisAngle(randomUnitVec3(rnd), rnd.Float32()*2*math32.Pi)
			sv[i] = randomVec3(rnd)
			wq.SetLane(i, sq[i])
			wv.SetLane(i, sv[i])
		}
		rot := wq.MulVec3(wv)
		inv := wq.MulVec3Inverse(rot)
		for i := 0; i < Lanes; i++ {
			assertVectorTol(t, sv[i].MulQuat(sq[i]), rot.Lane(i))
			assertVectorTol(t, sv[i], inv.Lane(i))
		}
	}
}

func TestNormalBasisLaneAgreement(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for n := 0; n < 100; n++ {
		var wn Vec3
		var sn [Lanes]math32.Vector3
		for i := 0; i < Lanes; i++ {
			sn[i] = randomUnitVec3(rnd)
			wn.SetLane(i, sn[i])
		}
		t1, t2 := NormalBasis(wn)
		p := Perpendicular(wn)
		for i := 0; i < Lanes; i++ {
			st1, st2 := math32.NormalBasis(sn[i])
			assertVectorTol(t, st1, t1.Lane(i))
			assertVectorTol(t, st2, t2.Lane(i))
			assertVectorTol(t, st1, p.Lane(i))
		}
	}
}
