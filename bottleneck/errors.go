// SPDX-License-Identifier: MIT

package bottleneck

import "errors"

// ErrInvalidInterval indicates a NaN endpoint or a death before birth.
var ErrInvalidInterval = errors.New("bottleneck: invalid interval")
