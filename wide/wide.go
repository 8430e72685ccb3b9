// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wide provides lane-parallel float32 math in struct-of-arrays
// form, for batch geometry queries that process [Lanes] independent
// problems at once. All operations are element-wise over fixed arrays,
// which the compiler can unroll and vectorize; branches are expressed
// as masked selects so every lane runs the same instruction stream.
package wide

import "cogentcore.org/phys/math32"

// Lanes is the number of parallel lanes in every wide value.
const Lanes = 4

// Float is one float32 per lane.
type Float [Lanes]float32

// Mask is one boolean per lane, as produced by comparisons and
// consumed by [Select].
type Mask [Lanes]bool

// Splat returns a Float with all lanes set to v.
func Splat(v float32) Float {
	var f Float
	for i := range f {
		f[i] = v
	}
	return f
}

// Add returns f + o per lane.
func (f Float) Add(o Float) Float {
	for i := range f {
		f[i] += o[i]
	}
	return f
}

// Sub returns f - o per lane.
func (f Float) Sub(o Float) Float {
	for i := range f {
		f[i] -= o[i]
	}
	return f
}

// Mul returns f * o per lane.
func (f Float) Mul(o Float) Float {
	for i := range f {
		f[i] *= o[i]
	}
	return f
}

// Div returns f / o per lane.
func (f Float) Div(o Float) Float {
	for i := range f {
		f[i] /= o[i]
	}
	return f
}

// Negate returns -f per lane.
func (f Float) Negate() Float {
	for i := range f {
		f[i] = -f[i]
	}
	return f
}

// Abs returns the absolute value per lane.
func (f Float) Abs() Float {
	for i := range f {
		f[i] = math32.Abs(f[i])
	}
	return f
}

// Sqrt returns the square root per lane.
func (f Float) Sqrt() Float {
	for i := range f {
		f[i] = math32.Sqrt(f[i])
	}
	return f
}

// Min returns the per-lane minimum of f and o.
func (f Float) Min(o Float) Float {
	for i := range f {
		f[i] = math32.Min(f[i], o[i])
	}
	return f
}

// Max returns the per-lane maximum of f and o.
func (f Float) Max(o Float) Float {
	for i := range f {
		f[i] = math32.Max(f[i], o[i])
	}
	return f
}

// Less returns the mask f < o per lane.
func (f Float) Less(o Float) Mask {
	var m Mask
	for i := range f {
		m[i] = f[i] < o[i]
	}
	return m
}

// LessEq returns the mask f <= o per lane.
func (f Float) LessEq(o Float) Mask {
	var m Mask
	for i := range f {
		m[i] = f[i] <= o[i]
	}
	return m
}

// Greater returns the mask f > o per lane.
func (f Float) Greater(o Float) Mask {
	var m Mask
	for i := range f {
		m[i] = f[i] > o[i]
	}
	return m
}

// GreaterEq returns the mask f >= o per lane.
func (f Float) GreaterEq(o Float) Mask {
	var m Mask
	for i := range f {
		m[i] = f[i] >= o[i]
	}
	return m
}

// Select returns a where the mask is true, b elsewhere.
func Select(m Mask, a, b Float) Float {
	for i := range a {
		if !m[i] {
			a[i] = b[i]
		}
	}
	return a
}

// And returns the per-lane conjunction of the masks.
func (m Mask) And(o Mask) Mask {
	for i := range m {
		m[i] = m[i] && o[i]
	}
	return m
}

// Or returns the per-lane disjunction of the masks.
func (m Mask) Or(o Mask) Mask {
	for i := range m {
		m[i] = m[i] || o[i]
	}
	return m
}

// Not returns the per-lane negation of the mask.
func (m Mask) Not() Mask {
	for i := range m {
		m[i] = !m[i]
	}
	return m
}

// Any returns true if any lane of the mask is true.
func (m Mask) Any() bool {
	for i := range m {
		if m[i] {
			return true
		}
	}
	return false
}

// All returns true if every lane of the mask is true.
func (m Mask) All() bool {
	for i := range m {
		if !m[i] {
			return false
		}
	}
	return true
}
