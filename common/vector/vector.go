// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package vector provides a contiguous, growable array with checked access.
//
// A Vector is not safe for concurrent use. Callers sharing one across
// goroutines must serialize every call.
package vector

import (
	"iter"
	"math"
	"unsafe"

	"github.com/juju/errors"
)

const (
	minCapacity = 4
	// maxAllocBytes is the largest single allocation the runtime accepts on 64-bit platforms.
	maxAllocBytes uint64 = 1 << 48
)

// Vector is a dynamic array. The zero value is an empty vector ready to use.
type Vector[T any] struct {
	data     []T
	gen      uint64
	reallocs int
}

// New creates an empty vector without a backing store.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// WithCapacity creates an empty vector whose backing store holds n elements.
func WithCapacity[T any](n int) (*Vector[T], error) {
	v := New[T]()
	if err := v.Reserve(n); err != nil {
		return nil, errors.Trace(err)
	}
	return v, nil
}

// From creates a vector holding a copy of values.
func From[T any](values ...T) *Vector[T] {
	v := New[T]()
	v.Append(values...)
	return v
}

// IsEmpty returns true if the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return len(v.data) == 0
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int {
	return len(v.data)
}

// Cap returns the number of elements the backing store holds without reallocation.
func (v *Vector[T]) Cap() int {
	return cap(v.data)
}

// MaxLen returns the upper bound on Len imposed by the address space.
func (v *Vector[T]) MaxLen() int {
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size == 0 {
		return math.MaxInt
	}
	n := maxAllocBytes / size
	if n > uint64(math.MaxInt) {
		return math.MaxInt
	}
	return int(n)
}

// Bytes returns the size of the backing store in bytes.
func (v *Vector[T]) Bytes() int {
	var zero T
	return cap(v.data) * int(unsafe.Sizeof(zero))
}

// Reallocations returns how many times the backing store has been replaced.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Append adds values at the end. The backing store doubles when it runs out of room,
// so a sequence of appends costs amortized O(1) each.
func (v *Vector[T]) Append(values ...T) {
	v.grow(len(v.data) + len(values))
	v.data = append(v.data, values...)
}

// Reserve grows the capacity to at least n. It never shrinks the capacity or changes Len.
func (v *Vector[T]) Reserve(n int) error {
	if err := checkSize("capacity", n, v.MaxLen()); err != nil {
		return err
	}
	if n > cap(v.data) {
		v.realloc(n)
	}
	return nil
}

// Resize sets the length to n. New elements are zero values and trailing elements are dropped.
func (v *Vector[T]) Resize(n int) error {
	if err := checkSize("length", n, v.MaxLen()); err != nil {
		return err
	}
	length := len(v.data)
	switch {
	case n < length:
		clear(v.data[n:])
		v.data = v.data[:n]
		v.gen++
	case n > length:
		v.grow(n)
		v.data = v.data[:n]
		clear(v.data[length:])
	}
	return nil
}

// Clear drops all elements and keeps the capacity.
func (v *Vector[T]) Clear() {
	clear(v.data)
	v.data = v.data[:0]
	v.gen++
}

// ShrinkToFit releases unused capacity.
func (v *Vector[T]) ShrinkToFit() {
	if cap(v.data) == len(v.data) {
		return
	}
	if len(v.data) == 0 {
		v.data = nil
		v.reallocs++
		v.gen++
		return
	}
	v.realloc(len(v.data))
}

// Assign replaces the contents with count copies of value.
func (v *Vector[T]) Assign(count int, value T) error {
	if err := checkSize("count", count, v.MaxLen()); err != nil {
		return err
	}
	clear(v.data)
	if count > cap(v.data) {
		v.data = make([]T, 0, count)
		v.reallocs++
	}
	v.data = v.data[:count]
	for i := range v.data {
		v.data[i] = value
	}
	v.gen++
	return nil
}

// At returns the element at index i. It fails with ErrOutOfRange instead of panicking.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero, outOfRangef("index %d out of range [0, %d)", i, len(v.data))
	}
	return v.data[i], nil
}

// Index returns the element at index i without a bounds check of its own.
// An invalid index panics like a slice access.
func (v *Vector[T]) Index(i int) T {
	return v.data[i]
}

// Set overwrites the element at index i. An invalid index panics like a slice access.
func (v *Vector[T]) Set(i int, value T) {
	v.data[i] = value
}

// Values returns a copy of the elements.
func (v *Vector[T]) Values() []T {
	values := make([]T, len(v.data))
	copy(values, v.data)
	return values
}

// All iterates over indices and elements in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, value := range v.data {
			if !yield(i, value) {
				return
			}
		}
	}
}

func (v *Vector[T]) grow(need int) {
	if need <= cap(v.data) {
		return
	}
	capacity := 2 * cap(v.data)
	if capacity < minCapacity {
		capacity = minCapacity
	}
	if capacity < need {
		capacity = need
	}
	if limit := v.MaxLen(); capacity > limit && need <= limit {
		capacity = limit
	}
	v.realloc(capacity)
}

func (v *Vector[T]) realloc(capacity int) {
	data := make([]T, len(v.data), capacity)
	copy(data, v.data)
	v.data = data
	v.reallocs++
	v.gen++
}
