// seehuhn.de/go/figure - declarative 2D and 3D plots
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package figure

import (
	"errors"
	"fmt"
)

var (
	// ErrOrderingViolation indicates an explicit range with min > max.
	ErrOrderingViolation = errors.New("range minimum exceeds maximum")

	// ErrLengthMismatch indicates data vectors of different lengths.
	ErrLengthMismatch = errors.New("data vectors have different lengths")
)

// SaveError reports a failed rendering pass.
type SaveError struct {
	Path  string
	Phase string
	Err   error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("figure: save %s: %s: %v", e.Path, e.Phase, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
