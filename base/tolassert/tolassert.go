// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (i.e., below a certain difference).
package tolassert

import (
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

// Equal asserts that the two numbers are with a standard tolerance
// of 0.001 of each other.
func Equal(t assert.TestingT, expected float32, actual float32, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 0.001, msgAndArgs...)
}

// EqualTol asserts that the two numbers are within the given
// tolerance of each other.
func EqualTol(t assert.TestingT, expected float32, actual float32, tol float32, msgAndArgs ...any) bool {
	if math32.Abs(actual-expected) <= tol {
		return true
	}
	return assert.Equal(t, expected, actual, msgAndArgs...)
}
