// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/zeebo/blake3"
)

// Placeholder is the token the build step replaces with the encoded
// payload. A launcher still carrying it was built from the bare
// template.
const Placeholder = "__PAYLOAD__"

// copyBufferSize bounds the intermediate buffer between the
// decompressor and the destination.
const copyBufferSize = 8 * 1024

var (
	// ErrPlaceholder is wrapped in a [*DecodeError] when the payload
	// was never substituted.
	ErrPlaceholder = errors.New("launcher was built without a payload")

	// ErrEmpty is wrapped in a [*DecompressError] when the decoded
	// payload contains no bytes at all.
	ErrEmpty = errors.New("payload is empty")
)

// DecodeError reports that the payload is not valid standard base64.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding payload: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// DecompressError reports that the decoded payload is not a valid gzip
// stream.
type DecompressError struct {
	Err error
}

func (e *DecompressError) Error() string {
	return fmt.Sprintf("decompressing payload: %v", e.Err)
}

func (e *DecompressError) Unwrap() error { return e.Err }

// Result describes the bytes written by a successful [Extract].
type Result struct {
	// Size is the number of decompressed bytes written.
	Size int64

	// Digest is the BLAKE3 digest of the decompressed bytes.
	Digest [32]byte
}

// Extract decodes and decompresses encoded into destination. The
// destination receives the decompressed bytes in order; on error it
// may have received a prefix of them, and the caller is responsible
// for discarding it.
func Extract(encoded string, destination io.Writer) (Result, error) {
	if strings.TrimSpace(encoded) == Placeholder {
		return Result{}, &DecodeError{Err: ErrPlaceholder}
	}

	source := &trackingReader{reader: base64.NewDecoder(base64.StdEncoding, strings.NewReader(encoded))}
	decompressor, err := gzip.NewReader(source)
	if err != nil {
		if errors.Is(err, io.EOF) && source.err == nil {
			return Result{}, &DecompressError{Err: ErrEmpty}
		}
		return Result{}, source.classify(err)
	}

	hasher := blake3.New()
	sink := &trackingWriter{writer: io.MultiWriter(destination, hasher)}

	// The anonymous struct hides the decompressor's WriteTo so the
	// copy goes through the bounded buffer.
	written, copyErr := io.CopyBuffer(sink, struct{ io.Reader }{decompressor}, make([]byte, copyBufferSize))
	closeErr := decompressor.Close()

	if copyErr != nil {
		if sink.err != nil {
			return Result{}, fmt.Errorf("writing payload: %w", sink.err)
		}
		return Result{}, source.classify(copyErr)
	}
	if closeErr != nil {
		return Result{}, &DecompressError{Err: closeErr}
	}

	var result Result
	result.Size = written
	copy(result.Digest[:], hasher.Sum(nil))
	return result, nil
}

// trackingReader remembers the first error from the base64 decoder so
// a failure surfacing through the gzip reader can be attributed to the
// right stage.
type trackingReader struct {
	reader io.Reader
	err    error
}

func (r *trackingReader) Read(buffer []byte) (int, error) {
	n, err := r.reader.Read(buffer)
	if err != nil && err != io.EOF && r.err == nil {
		r.err = err
	}
	return n, err
}

func (r *trackingReader) classify(err error) error {
	if r.err != nil {
		return &DecodeError{Err: r.err}
	}
	return &DecompressError{Err: err}
}

// trackingWriter remembers the first error from the destination.
type trackingWriter struct {
	writer io.Writer
	err    error
}

func (w *trackingWriter) Write(buffer []byte) (int, error) {
	n, err := w.writer.Write(buffer)
	if err != nil && w.err == nil {
		w.err = err
	}
	return n, err
}
