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

import "github.com/juju/errors"

const (
	// ErrOutOfRange is returned by checked access outside [0, Len()).
	ErrOutOfRange = errors.ConstError("out of range")
	// ErrInvalidArgument is returned when a size, capacity or count cannot be realized.
	ErrInvalidArgument = errors.ConstError("invalid argument")
	// ErrInvalidRange is returned when an erase range is stale, foreign or misordered.
	ErrInvalidRange = errors.ConstError("invalid range")
)

func outOfRangef(format string, args ...any) error {
	return errors.WithType(errors.Errorf(format, args...), ErrOutOfRange)
}

func invalidArgumentf(format string, args ...any) error {
	return errors.WithType(errors.Errorf(format, args...), ErrInvalidArgument)
}

func invalidRangef(format string, args ...any) error {
	return errors.WithType(errors.Errorf(format, args...), ErrInvalidRange)
}

// checkSize validates a requested length, capacity or count.
func checkSize(name string, n, limit int) error {
	if n < 0 {
		return invalidArgumentf("negative %s %d", name, n)
	} else if n > limit {
		return invalidArgumentf("%s %d exceeds max size %d", name, n, limit)
	}
	return nil
}
