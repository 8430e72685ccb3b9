// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pool provides a typed buffer pool that recycles slices in
// power-of-two capacity classes, so that transient geometry buffers
// (triangle bounds during mesh construction, traversal scratch) do not
// churn the garbage collector.
package pool

import (
	"math/bits"
	"reflect"
	"sync"
)

// Buffer is a pooled slice of T. Take fills it, Return recycles it.
// A Buffer must not be used after it is returned.
type Buffer[T any] struct {
	Data []T
}

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int {
	return len(b.Data)
}

// Pool recycles buffers by element type and capacity class.
// The zero value is ready to use. A Pool is safe for concurrent use.
type Pool struct {
	classes sync.Map // poolKey -> *sync.Pool
}

type poolKey struct {
	typ   reflect.Type
	class int
}

// capacityClass returns the power-of-two class index holding n elements.
func capacityClass(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}

// Take fills buf with a slice of at least n elements, length n,
// reusing a previously returned slice of the same class when available.
// The contents are not zeroed.
func Take[T any](p *Pool, n int, buf *Buffer[T]) {
	key := poolKey{reflect.TypeOf((*T)(nil)).Elem(), capacityClass(n)}
	sp, _ := p.classes.LoadOrStore(key, &sync.Pool{})
	if got := sp.(*sync.Pool).Get(); got != nil {
		buf.Data = got.([]T)[:n]
		return
	}
	buf.Data = make([]T, n, 1<<key.class)
}

// Return recycles the buffer's slice and nils it out.
// Returning an empty buffer is a no-op.
func Return[T any](p *Pool, buf *Buffer[T]) {
	if buf.Data == nil {
		return
	}
	data := buf.Data[:cap(buf.Data)]
	buf.Data = nil
	key := poolKey{reflect.TypeOf((*T)(nil)).Elem(), capacityClass(cap(data))}
	sp, _ := p.classes.LoadOrStore(key, &sync.Pool{})
	sp.(*sync.Pool).Put(data)
}
