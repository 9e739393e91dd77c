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

package vector

// Position marks a slot of one vector. A position goes stale once its vector
// reallocates or removes elements.
type Position struct {
	owner any
	index int
	gen   uint64
}

// Index returns the slot index the position refers to.
func (p Position) Index() int {
	return p.index
}

// Begin returns the position of the first element.
func (v *Vector[T]) Begin() Position {
	return Position{owner: v, index: 0, gen: v.gen}
}

// End returns the position one past the last element.
func (v *Vector[T]) End() Position {
	return Position{owner: v, index: len(v.data), gen: v.gen}
}

// PositionAt returns the position of index i, which may equal Len.
func (v *Vector[T]) PositionAt(i int) (Position, error) {
	if i < 0 || i > len(v.data) {
		return Position{}, outOfRangef("position %d out of range [0, %d]", i, len(v.data))
	}
	return Position{owner: v, index: i, gen: v.gen}, nil
}

// Erase removes the elements in [first, last) and shifts the tail left. It returns
// the position of the element that followed the removed range.
func (v *Vector[T]) Erase(first, last Position) (Position, error) {
	if err := v.checkPosition(first); err != nil {
		return Position{}, err
	}
	if err := v.checkPosition(last); err != nil {
		return Position{}, err
	}
	if first.index > last.index {
		return Position{}, invalidRangef("first position %d after last position %d", first.index, last.index)
	}
	if first.index == last.index {
		return first, nil
	}
	n := copy(v.data[first.index:], v.data[last.index:])
	clear(v.data[first.index+n:])
	v.data = v.data[:first.index+n]
	v.gen++
	return Position{owner: v, index: first.index, gen: v.gen}, nil
}

func (v *Vector[T]) checkPosition(p Position) error {
	if p.owner != any(v) {
		return invalidRangef("position does not belong to this vector")
	}
	if p.gen != v.gen {
		return invalidRangef("position %d is stale", p.index)
	}
	if p.index < 0 || p.index > len(v.data) {
		return invalidRangef("position %d out of range [0, %d]", p.index, len(v.data))
	}
	return nil
}
