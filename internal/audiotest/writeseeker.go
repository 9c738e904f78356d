// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"errors"
	"io"
)

// WriteSeeker is an in-memory io.WriteSeeker for encoders that patch headers.
type WriteSeeker struct {
	buf []byte
	pos int
}

func (w *WriteSeeker) Write(p []byte) (int, error) {
	end := w.pos + len(p)
	if end > len(w.buf) {
		w.buf = append(w.buf, make([]byte, end-len(w.buf))...)
	}
	copy(w.buf[w.pos:], p)
	w.pos = end
	return len(p), nil
}

func (w *WriteSeeker) Seek(offset int64, whence int) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = int64(w.pos) + offset
	case io.SeekEnd:
		next = int64(len(w.buf)) + offset
	default:
		return 0, errors.New("audiotest: invalid whence")
	}
	if next < 0 {
		return 0, errors.New("audiotest: negative position")
	}
	w.pos = int(next)
	return next, nil
}

// Bytes returns everything written so far.
func (w *WriteSeeker) Bytes() []byte {
	return w.buf
}
