// SPDX-License-Identifier: EPL-2.0

// Package overwrite guards output files: writing to a path that already
// exists needs confirmation, and the new content only replaces the old once
// it has been written completely.
package overwrite

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/Songmu/prompter"
)

// ErrDeclined is returned by Acquire when the user refuses to overwrite.
var ErrDeclined = errors.New("overwrite declined")

const defaultPerm fs.FileMode = 0o644

// Ask is the default confirmer. It prompts on the terminal and answers no
// when stdin is not interactive.
func Ask(path string) bool {
	return prompter.YN(fmt.Sprintf("File '%s' already exists. Overwrite?", path), false)
}

// Guard decides whether a path may be written.
type Guard struct {
	// Confirm is asked about existing files. Nil means Ask.
	Confirm func(path string) bool
	// Force skips the question.
	Force bool
}

// Acquire grants permission to write path. When path exists and the
// overwrite is refused it returns ErrDeclined and touches nothing.
// Otherwise the caller writes to the lease's temporary file and calls
// Commit; Release must always be called and is a no-op after Commit.
func (g Guard) Acquire(path string) (*Lease, error) {
	perm := defaultPerm

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if info.IsDir() {
			return nil, fmt.Errorf("%s: %w", path, fs.ErrExist)
		}
		if !g.Force && !g.confirm(path) {
			return nil, ErrDeclined
		}
		perm = info.Mode().Perm()
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	ext := filepath.Ext(base)
	pattern := "." + strings.TrimSuffix(base, ext) + ".*" + ext

	tmp, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("create temp file for %s: %w", path, err)
	}

	return &Lease{path: path, tmp: tmp, perm: perm}, nil
}

func (g Guard) confirm(path string) bool {
	if g.Confirm != nil {
		return g.Confirm(path)
	}
	return Ask(path)
}

// Lease is permission to replace one path.
type Lease struct {
	path string
	tmp  *os.File
	perm fs.FileMode
	done bool
}

// Path is the destination path.
func (l *Lease) Path() string { return l.path }

// File is the temporary file to write into. It is seekable, which the WAV
// and AIFF encoders need to patch their headers.
func (l *Lease) File() *os.File { return l.tmp }

// TempPath is the temporary file's name, for writers that need a path
// rather than a handle.
func (l *Lease) TempPath() string { return l.tmp.Name() }

// Commit moves the written content onto the destination path.
func (l *Lease) Commit() error {
	if l.done {
		return errors.New("lease already finished")
	}

	if err := l.tmp.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		return fmt.Errorf("close %s: %w", l.tmp.Name(), err)
	}
	if err := os.Chmod(l.tmp.Name(), l.perm); err != nil {
		return fmt.Errorf("chmod %s: %w", l.tmp.Name(), err)
	}
	if err := os.Rename(l.tmp.Name(), l.path); err != nil {
		return fmt.Errorf("rename onto %s: %w", l.path, err)
	}

	l.done = true

	return nil
}

// Release discards the temporary file unless Commit succeeded.
func (l *Lease) Release() error {
	if l.done {
		return nil
	}
	l.done = true

	_ = l.tmp.Close()
	if err := os.Remove(l.tmp.Name()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}
