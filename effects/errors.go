// SPDX-License-Identifier: EPL-2.0

package effects

import "errors"

var (
	// ErrNegativeDuration is returned for a fade shorter than zero seconds.
	ErrNegativeDuration = errors.New("duration must not be negative")

	// ErrNegativeHeadroom is returned when normalizing above full scale or
	// with a headroom that is not a number.
	ErrNegativeHeadroom = errors.New("headroom must not be negative")
)
