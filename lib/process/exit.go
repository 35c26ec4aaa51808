// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FailureCode is the exit status for any failure in the launcher
// itself, before or instead of a child exit status.
const FailureCode = 1

// exit is replaced in tests.
var exit = os.Exit

// Fatal writes "<program>: error: err" to stderr and exits with
// FailureCode.
func Fatal(err error) {
	report(os.Stderr, err)
	exit(FailureCode)
}

// Exit terminates the launcher with the child's exit code. Codes
// outside the platform range are truncated by the operating system.
func Exit(code int) {
	exit(code)
}

func report(writer io.Writer, err error) {
	fmt.Fprintf(writer, "%s: error: %v\n", programName(), err)
}

func programName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "selfextract-launcher"
	}
	return filepath.Base(os.Args[0])
}
