// SPDX-FileCopyrightText: 2026 swaggen
// SPDX-License-Identifier: FSL-1.1-MIT

package loader

import (
	"errors"
	"fmt"
)

// Document kinds reported by LoadError.
const (
	KindInfo   = "info block"
	KindAction = "action"
	KindModel  = "model"
)

// ErrMissingSource is matched by errors.Is for a missing source directory.
var ErrMissingSource = errors.New("source directory is missing")

// LoadError reports a malformed or schema-mismatched document.
type LoadError struct {
	// Kind is the kind of document being loaded
	Kind string

	// Path is the offending file
	Path string

	// Err is the underlying cause
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("error loading %s (%s): %v", e.Kind, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MissingSourceError is returned when the source directory does not exist
// or is not a directory.
type MissingSourceError struct {
	Path string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingSource, e.Path)
}

func (e *MissingSourceError) Is(target error) bool {
	return target == ErrMissingSource
}
