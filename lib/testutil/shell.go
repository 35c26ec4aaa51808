// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"runtime"
	"strings"
	"testing"
)

// ShellScript returns a /bin/sh script with the given body lines.
//
//	script := testutil.ShellScript("echo hello", "exit 3")
func ShellScript(lines ...string) []byte {
	return []byte("#!/bin/sh\n" + strings.Join(lines, "\n") + "\n")
}

// RequireShell skips the test unless /bin/sh is available to run
// scripts built by [ShellScript].
func RequireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script payloads require a POSIX platform")
	}
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skipf("/bin/sh not available: %v", err)
	}
}
