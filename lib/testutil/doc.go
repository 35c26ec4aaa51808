// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for selfextract
// packages.
//
// [EncodePayload] builds a launcher payload (base64 of a gzip stream)
// from raw bytes, the same transformation the external build step
// applies before substituting the payload into the launcher source.
// Tests use it to produce payloads for arbitrary content without
// checking encoded fixtures into the tree.
//
// [ShellScript] returns the bytes of a small POSIX shell script, and
// [RequireShell] skips tests that execute such scripts on platforms
// without /bin/sh.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no selfextract-internal dependencies.
package testutil
