package aiff

import (
	"errors"
	"fmt"

	"github.com/ik5/audedit/audio"
)

var (
	// ErrNotAiffFile indicates the file is not a valid AIFF file
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth covers depths the go-audio decoder does not map
	// to signed integers reliably (8-bit, odd widths).
	ErrUnsupportedBitDepth = fmt.Errorf("unsupported AIFF bit depth: %w", audio.ErrUnsupported)

	// ErrUnsupportedAiffLayout indicates an unsupported AIFF layout
	ErrUnsupportedAiffLayout = errors.New("unsupported AIFF layout")
)
