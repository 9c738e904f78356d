// SPDX-License-Identifier: EPL-2.0

package audedit

import "errors"

var (
	// ErrInvalidTrim is returned by ParseTrim for anything but "start,end".
	ErrInvalidTrim = errors.New("invalid trim format")

	// ErrNoFormat is returned when a conversion names no target format.
	ErrNoFormat = errors.New("no output format given")
)
