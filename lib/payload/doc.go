// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package payload decodes the embedded launcher payload.
//
// A payload is the standard base64 encoding of a gzip stream. The
// launcher carries it as a string constant that an external build
// step substitutes for the [Placeholder] token before compilation.
// [Extract] streams the constant through a base64 decoder and a gzip
// decompressor into an [io.Writer] without ever holding the whole
// decoded or decompressed payload in memory.
//
// Failures are classified by the stage that produced them:
//
//   - [*DecodeError] -- the constant is not valid base64, or it is
//     still the unsubstituted placeholder ([ErrPlaceholder])
//   - [*DecompressError] -- the decoded bytes are not a complete,
//     valid gzip stream (bad header, corrupt data, truncated input,
//     checksum mismatch, empty payload)
//
// Any other error returned by [Extract] came from the destination
// writer.
//
// This package has no dependencies on other selfextract packages.
package payload
