// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"errors"
	"fmt"
)

// Kind identifies the launch step that failed. Every kind is fatal.
type Kind int

const (
	// KindUnknown is returned by [KindOf] for errors that did not
	// come from this package.
	KindUnknown Kind = iota

	// KindDecode: the payload is not valid base64, or was never
	// substituted into the launcher.
	KindDecode

	// KindDecompress: the decoded payload is not a valid gzip stream.
	KindDecompress

	// KindFileCreate: the temporary file could not be created.
	KindFileCreate

	// KindFileWrite: writing, syncing, or closing the temporary file
	// failed.
	KindFileWrite

	// KindPermission: the executable bit could not be set.
	KindPermission

	// KindSpawn: the extracted file could not be started.
	KindSpawn

	// KindWait: waiting for the child failed for a reason other than
	// the child exiting.
	KindWait
)

// String returns the human-readable name of a kind.
func (kind Kind) String() string {
	switch kind {
	case KindDecode:
		return "decode"
	case KindDecompress:
		return "decompress"
	case KindFileCreate:
		return "file-create"
	case KindFileWrite:
		return "file-write"
	case KindPermission:
		return "permission"
	case KindSpawn:
		return "spawn"
	case KindWait:
		return "wait"
	default:
		return fmt.Sprintf("unknown(%d)", int(kind))
	}
}

// Error is a failed launch step. Path is the temporary file involved,
// or the temporary directory for [KindFileCreate]; it is empty when
// no file was involved.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindDecode, KindDecompress:
		// The payload package already names the stage.
		return e.Err.Error()
	case KindFileCreate:
		return fmt.Sprintf("creating temporary file in %s: %v", e.Path, e.Err)
	case KindFileWrite:
		return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
	case KindPermission:
		return fmt.Sprintf("making %s executable: %v", e.Path, e.Err)
	case KindSpawn:
		return fmt.Sprintf("starting %s: %v", e.Path, e.Err)
	case KindWait:
		return fmt.Sprintf("waiting for %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("launch failed: %v", e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var launchErr *Error
	if errors.As(err, &launchErr) {
		return launchErr.Kind
	}
	return KindUnknown
}
