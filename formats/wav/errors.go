package wav

import (
	"errors"
	"fmt"

	"github.com/ik5/audedit/audio"
)

var (
	ErrNotWavFile          = errors.New("not a WAV file")
	ErrUnsupportedBitDepth = fmt.Errorf("unsupported WAV bit depth: %w", audio.ErrUnsupported)
)
