// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package launcher extracts an embedded payload to a temporary
// executable and runs it in place of the current process.
//
// [Launcher.Run] performs the whole sequence, strictly in order and on
// the calling goroutine:
//
//  1. create a uniquely named file in the temporary directory
//  2. decode and decompress the payload into it (see package payload)
//  3. sync and close the file
//  4. chmod it 0700, on every platform except Windows
//  5. start it with the caller's argument vector and the launcher's
//     own stdin, stdout, and stderr
//  6. wait for it to exit, with no timeout
//
// and returns the child's exit code for the caller to exit with. A
// child killed by a signal reports -1, which is returned unchanged.
//
// Failures before the child exits are returned as [*Error] with a
// [Kind] naming the step. None are retried. If extraction fails the
// partial file is removed and nothing is started. After a successful
// extraction the file is left in place once the child exits, unless
// [Options.Cleanup] is set.
//
// The platform check for step 4 happens at run time so the same
// binary behaves correctly wherever it is started; on Windows the
// file also gets an .exe suffix so CreateProcess will run it.
package launcher
