// SPDX-License-Identifier: EPL-2.0

// Package effects implements the editing operations on decoded clips.
//
// Every function takes an *audio.Buffer and returns a new one; the input is
// never modified.
package effects
