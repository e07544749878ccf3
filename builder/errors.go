// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates a constructor was given fewer nodes (or leaves)
// than its minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrNilConstructor indicates BuildGraph was given a nil Constructor.
var ErrNilConstructor = errors.New("builder: nil constructor")

func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
