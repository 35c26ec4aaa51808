// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash provides BLAKE3 content hashing for extracted
// binaries.
//
// The launcher digests the payload while writing it to the temporary
// file and logs the digest with [FormatDigest]. [HashFile] digests a
// file already on disk; tests use it to check that the logged digest
// matches the extracted file, and it gives the same result as b3sum
// for anyone matching a left-behind temporary file to its launcher by
// hand.
//
//   - [FormatDigest] -- canonical hex form used in log output
//   - [HashFile] -- streams a file through BLAKE3 with constant memory
//
// Digests are unkeyed 256-bit BLAKE3.
package binhash
