// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"testing"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/selfextract/lib/testutil"
)

func TestExtractRoundTrip(t *testing.T) {
	large := make([]byte, 300*1024)
	for i := range large {
		large[i] = byte(i % 251) // Prime modulus to avoid simple patterns.
	}

	tests := []struct {
		name    string
		content []byte
	}{
		{"shell script", testutil.ShellScript("echo hello")},
		{"single byte", []byte{0}},
		{"binary", []byte{0x7f, 'E', 'L', 'F', 0xff, 0x00, 0x01, 0xfe}},
		{"larger than copy buffer", large},
		{"empty content", []byte{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			encoded := testutil.EncodePayload(t, test.content)

			var output bytes.Buffer
			result, err := Extract(encoded, &output)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if !bytes.Equal(output.Bytes(), test.content) {
				t.Errorf("extracted %d bytes, want %d bytes of original content", output.Len(), len(test.content))
			}
			if result.Size != int64(len(test.content)) {
				t.Errorf("Result.Size = %d, want %d", result.Size, len(test.content))
			}
			if want := blake3.Sum256(test.content); result.Digest != want {
				t.Errorf("Result.Digest = %x, want %x", result.Digest, want)
			}
		})
	}
}

func TestExtractDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{"invalid alphabet", "!!!not base64!!!"},
		{"url alphabet", "_-_-"},
		{"bad padding", "H4sI="},
		{"placeholder", Placeholder},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var output bytes.Buffer
			_, err := Extract(test.encoded, &output)
			if err == nil {
				t.Fatal("Extract should fail for malformed base64")
			}
			var decodeErr *DecodeError
			if !errors.As(err, &decodeErr) {
				t.Fatalf("error = %T (%v), want *DecodeError", err, err)
			}
		})
	}
}

func TestExtractPlaceholder(t *testing.T) {
	_, err := Extract(Placeholder, io.Discard)
	if !errors.Is(err, ErrPlaceholder) {
		t.Fatalf("error = %v, want ErrPlaceholder", err)
	}
}

func TestExtractDecompressErrors(t *testing.T) {
	valid := testutil.EncodePayload(t, bytes.Repeat([]byte("payload data "), 100))
	compressed, err := base64.StdEncoding.DecodeString(valid)
	if err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}

	corrupted := bytes.Clone(compressed)
	corrupted[len(corrupted)-6] ^= 0xff // Inside the CRC32 trailer.

	tests := []struct {
		name    string
		encoded string
	}{
		{"not gzip", base64.StdEncoding.EncodeToString([]byte("not-gzip-data"))},
		{"truncated stream", base64.StdEncoding.EncodeToString(compressed[:len(compressed)/2])},
		{"checksum mismatch", base64.StdEncoding.EncodeToString(corrupted)},
		{"header only", base64.StdEncoding.EncodeToString(compressed[:10])},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Extract(test.encoded, io.Discard)
			if err == nil {
				t.Fatal("Extract should fail for invalid gzip data")
			}
			var decompressErr *DecompressError
			if !errors.As(err, &decompressErr) {
				t.Fatalf("error = %T (%v), want *DecompressError", err, err)
			}
		})
	}
}

func TestExtractEmptyPayload(t *testing.T) {
	_, err := Extract("", io.Discard)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("error = %v, want ErrEmpty", err)
	}
	var decompressErr *DecompressError
	if !errors.As(err, &decompressErr) {
		t.Fatalf("error = %T, want *DecompressError", err)
	}
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestExtractWriteError(t *testing.T) {
	diskFull := errors.New("no space left on device")
	encoded := testutil.EncodePayload(t, []byte("some content"))

	_, err := Extract(encoded, failingWriter{err: diskFull})
	if !errors.Is(err, diskFull) {
		t.Fatalf("error = %v, want wrapped destination error", err)
	}
	var decodeErr *DecodeError
	var decompressErr *DecompressError
	if errors.As(err, &decodeErr) || errors.As(err, &decompressErr) {
		t.Errorf("destination failure misclassified as payload error: %v", err)
	}
}

func TestExtractWrappedLines(t *testing.T) {
	// Build tooling may wrap long base64 lines; the standard decoder
	// skips newlines.
	encoded := testutil.EncodePayload(t, bytes.Repeat([]byte("wrapped "), 64))
	var wrapped bytes.Buffer
	for start := 0; start < len(encoded); start += 76 {
		end := min(start+76, len(encoded))
		wrapped.WriteString(encoded[start:end])
		wrapped.WriteByte('\n')
	}

	var output bytes.Buffer
	if _, err := Extract(wrapped.String(), &output); err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !bytes.Equal(output.Bytes(), bytes.Repeat([]byte("wrapped "), 64)) {
		t.Error("extracted content does not match original")
	}
}
