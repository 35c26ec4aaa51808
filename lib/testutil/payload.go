// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"encoding/base64"

	"github.com/klauspost/compress/gzip"
)

// EncodePayload returns base64(gzip(content)) using the standard
// base64 alphabet and the best gzip compression level.
func EncodePayload(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, content []byte) string {
	t.Helper()

	var compressed bytes.Buffer
	writer, err := gzip.NewWriterLevel(&compressed, gzip.BestCompression)
	if err != nil {
		t.Fatalf("creating gzip writer: %v", err)
	}
	if _, err := writer.Write(content); err != nil {
		t.Fatalf("compressing payload: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("finishing gzip stream: %v", err)
	}
	return base64.StdEncoding.EncodeToString(compressed.Bytes())
}
