// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapacityClass(t *testing.T) {
	assert.Equal(t, 0, capacityClass(0))
	assert.Equal(t, 0, capacityClass(1))
	assert.Equal(t, 1, capacityClass(2))
	assert.Equal(t, 2, capacityClass(3))
	assert.Equal(t, 2, capacityClass(4))
	assert.Equal(t, 3, capacityClass(5))
	assert.Equal(t, 10, capacityClass(1024))
	assert.Equal(t, 11, capacityClass(1025))
}

func TestTakeReturn(t *testing.T) {
	p := &Pool{}
	var buf Buffer[float32]
	Take(p, 100, &buf)
	assert.Equal(t, 100, buf.Len())
	assert.GreaterOrEqual(t, cap(buf.Data), 100)
	for i := range buf.Data {
		buf.Data[i] = float32(i)
	}
	Return(p, &buf)
	assert.Nil(t, buf.Data)

	// another element type in the same capacity class is pooled separately
	var buf2 Buffer[int]
	Take(p, 70, &buf2)
	assert.Equal(t, 70, buf2.Len())
	Return(p, &buf2)
}

func TestReturnEmpty(t *testing.T) {
	p := &Pool{}
	var buf Buffer[int]
	Return(p, &buf)
	assert.Nil(t, buf.Data)
}
