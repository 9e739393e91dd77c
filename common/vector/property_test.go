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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAppendProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOf(rapid.IntRange(0, 99)).Draw(t, "values")
		v := New[int]()
		for _, value := range values {
			v.Append(value)
		}
		assert.Equal(t, len(values), v.Len())
		assert.GreaterOrEqual(t, v.Cap(), v.Len())
		assert.GreaterOrEqual(t, v.MaxLen(), v.Len())
		assert.Equal(t, v.Len() == 0, v.IsEmpty())
		if len(values) > 0 {
			assert.Equal(t, values, v.Values())
		}
	})
}

func TestResizeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOf(rapid.Int()).Draw(t, "values")
		n := rapid.IntRange(0, 64).Draw(t, "n")
		m := rapid.IntRange(0, n).Draw(t, "m")
		v := From(values...)
		require.NoError(t, v.Resize(n))
		expected := v.Values()
		require.NoError(t, v.Resize(m))
		assert.Equal(t, m, v.Len())
		assert.Equal(t, expected[:m], v.Values())
	})
}

func TestReserveProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := From(rapid.SliceOf(rapid.Int()).Draw(t, "values")...)
		n := rapid.IntRange(-8, 256).Draw(t, "n")
		capacity, length := v.Cap(), v.Len()
		err := v.Reserve(n)
		if n < 0 {
			assert.ErrorIs(t, err, ErrInvalidArgument)
		} else {
			assert.NoError(t, err)
			assert.GreaterOrEqual(t, v.Cap(), n)
		}
		assert.GreaterOrEqual(t, v.Cap(), capacity)
		assert.Equal(t, length, v.Len())
	})
}

// TestVectorStateMachine checks a vector against a plain slice model.
func TestVectorStateMachine(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := New[int]()
		var model []int
		t.Repeat(map[string]func(*rapid.T){
			"append": func(t *rapid.T) {
				value := rapid.Int().Draw(t, "value")
				v.Append(value)
				model = append(model, value)
			},
			"reserve": func(t *rapid.T) {
				n := rapid.IntRange(-4, 128).Draw(t, "n")
				capacity := v.Cap()
				err := v.Reserve(n)
				if n < 0 {
					assert.ErrorIs(t, err, ErrInvalidArgument)
				} else {
					assert.NoError(t, err)
				}
				assert.GreaterOrEqual(t, v.Cap(), capacity)
			},
			"resize": func(t *rapid.T) {
				n := rapid.IntRange(-4, 64).Draw(t, "n")
				err := v.Resize(n)
				if n < 0 {
					assert.ErrorIs(t, err, ErrInvalidArgument)
					return
				}
				assert.NoError(t, err)
				if n < len(model) {
					model = model[:n]
				} else {
					model = append(model, make([]int, n-len(model))...)
				}
			},
			"clear": func(t *rapid.T) {
				v.Clear()
				model = nil
			},
			"erase": func(t *rapid.T) {
				i := rapid.IntRange(0, len(model)).Draw(t, "first")
				j := rapid.IntRange(i, len(model)).Draw(t, "last")
				first, err := v.PositionAt(i)
				require.NoError(t, err)
				last, err := v.PositionAt(j)
				require.NoError(t, err)
				next, err := v.Erase(first, last)
				require.NoError(t, err)
				assert.Equal(t, i, next.Index())
				model = append(model[:i], model[j:]...)
			},
			"assign": func(t *rapid.T) {
				count := rapid.IntRange(0, 16).Draw(t, "count")
				value := rapid.Int().Draw(t, "value")
				require.NoError(t, v.Assign(count, value))
				model = make([]int, count)
				for k := range model {
					model[k] = value
				}
			},
			"at": func(t *rapid.T) {
				i := rapid.IntRange(-1, len(model)+1).Draw(t, "index")
				value, err := v.At(i)
				if i < 0 || i >= len(model) {
					assert.ErrorIs(t, err, ErrOutOfRange)
				} else {
					assert.NoError(t, err)
					assert.Equal(t, model[i], value)
				}
			},
			"": func(t *rapid.T) {
				require.Equal(t, len(model), v.Len())
				require.GreaterOrEqual(t, v.Cap(), v.Len())
				require.GreaterOrEqual(t, v.MaxLen(), v.Len())
				require.Equal(t, v.Len() == 0, v.IsEmpty())
				for i, value := range v.All() {
					require.Equal(t, model[i], value)
				}
			},
		})
	})
}
