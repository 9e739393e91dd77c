// Copyright 2020 gorse Project Authors
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

package base

import (
	"math/rand"
	"time"
)

// RandomGenerator is a random generator seeded explicitly by its owner.
type RandomGenerator struct {
	*rand.Rand
	seed int64
}

// NewRandomGenerator creates a RandomGenerator.
func NewRandomGenerator(seed int64) RandomGenerator {
	return RandomGenerator{Rand: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the generator was created with.
func (rng RandomGenerator) Seed() int64 {
	return rng.seed
}

// UniformInt returns a uniform random integer in [low, high).
func (rng RandomGenerator) UniformInt(low, high int) int {
	return rng.Intn(high-low) + low
}

// UniformInts makes a vector of n uniform random integers in [low, high).
func (rng RandomGenerator) UniformInts(n, low, high int) []int {
	ret := make([]int, n)
	for i := range ret {
		ret[i] = rng.UniformInt(low, high)
	}
	return ret
}

// TimeSeed derives a seed from the wall clock. Runs seeded this way are not
// reproducible unless the seed is logged.
func TimeSeed() int64 {
	return time.Now().UnixNano()
}
