// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package launcher

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/bureau-foundation/selfextract/lib/binhash"
	"github.com/bureau-foundation/selfextract/lib/payload"
)

// executableMode is owner read, write, and execute.
const executableMode os.FileMode = 0o700

// tempPrefix starts every extracted file name. CreateTemp appends a
// random suffix.
const tempPrefix = "selfextract-"

// goos is the platform used for the permission and naming decisions.
// Tests override it to exercise the Windows branch.
var goos = runtime.GOOS

// chmod is replaced in tests to simulate a permission failure.
var chmod = os.Chmod

// Options configures a Launcher.
type Options struct {
	// Payload is base64(gzip(binary)).
	Payload string

	// TempDir is where the payload is extracted. Empty means
	// os.TempDir().
	TempDir string

	// Cleanup removes the extracted file after the child exits.
	Cleanup bool

	// Logger receives debug records for each step. Nil discards.
	Logger *slog.Logger

	// Stdin, Stdout, and Stderr are handed to the child. Nil means
	// the launcher's own os.Stdin, os.Stdout, and os.Stderr, which
	// the child then inherits directly.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Launcher extracts and runs one payload.
type Launcher struct {
	payload string
	tempDir string
	cleanup bool
	logger  *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Extraction describes a payload written to disk.
type Extraction struct {
	// Path is the absolute path of the extracted file.
	Path string

	// Size is the number of bytes written.
	Size int64

	// Digest is the BLAKE3 digest of the written bytes.
	Digest [binhash.DigestSize]byte
}

// New returns a Launcher for options.
func New(options Options) *Launcher {
	launcher := &Launcher{
		payload: options.Payload,
		tempDir: options.TempDir,
		cleanup: options.Cleanup,
		logger:  options.Logger,
		stdin:   options.Stdin,
		stdout:  options.Stdout,
		stderr:  options.Stderr,
	}
	if launcher.tempDir == "" {
		launcher.tempDir = os.TempDir()
	}
	if launcher.logger == nil {
		launcher.logger = slog.New(slog.DiscardHandler)
	}
	if launcher.stdin == nil {
		launcher.stdin = os.Stdin
	}
	if launcher.stdout == nil {
		launcher.stdout = os.Stdout
	}
	if launcher.stderr == nil {
		launcher.stderr = os.Stderr
	}
	return launcher
}

// Run extracts the payload and runs it with argv, returning the
// child's exit code. argv[0] is passed to the child as its own
// argv[0]; the remaining elements are forwarded unchanged and in
// order. An empty argv runs the child with its path as argv[0] and no
// arguments.
//
// A non-nil error means the child never ran to completion under the
// launcher's control and the returned code is meaningless.
func (l *Launcher) Run(argv []string) (int, error) {
	extraction, err := l.Extract()
	if err != nil {
		return 0, err
	}

	code, err := l.execute(extraction.Path, argv)
	if l.cleanup {
		if removeErr := os.Remove(extraction.Path); removeErr != nil {
			l.logger.Warn("removing extracted payload", "path", extraction.Path, "error", removeErr)
		}
	}
	return code, err
}

// Extract writes the payload to a new temporary file and makes it
// executable. On error no file is left behind.
func (l *Launcher) Extract() (Extraction, error) {
	file, err := os.CreateTemp(l.tempDir, tempPattern())
	if err != nil {
		return Extraction{}, &Error{Kind: KindFileCreate, Path: l.tempDir, Err: err}
	}
	path := file.Name()
	if absolute, err := filepath.Abs(path); err == nil {
		path = absolute
	}

	result, err := payload.Extract(l.payload, file)
	if err == nil {
		err = file.Sync()
	}
	if closeErr := file.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return Extraction{}, classifyExtract(path, err)
	}

	if err := makeExecutable(path); err != nil {
		os.Remove(path)
		return Extraction{}, &Error{Kind: KindPermission, Path: path, Err: err}
	}

	extraction := Extraction{Path: path, Size: result.Size, Digest: result.Digest}
	l.logger.Debug("payload extracted",
		"path", extraction.Path,
		"bytes", extraction.Size,
		"blake3", binhash.FormatDigest(extraction.Digest),
	)
	return extraction, nil
}

// execute starts path as a child process and waits for it.
func (l *Launcher) execute(path string, argv []string) (int, error) {
	var forwarded []string
	if len(argv) > 1 {
		forwarded = argv[1:]
	}

	command := exec.Command(path, forwarded...)
	if len(argv) > 0 {
		command.Args[0] = argv[0]
	}
	command.Stdin = l.stdin
	command.Stdout = l.stdout
	command.Stderr = l.stderr

	if err := command.Start(); err != nil {
		return 0, &Error{Kind: KindSpawn, Path: path, Err: err}
	}
	l.logger.Debug("child started", "path", path, "pid", command.Process.Pid, "args", len(forwarded))

	if err := command.Wait(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return 0, &Error{Kind: KindWait, Path: path, Err: err}
		}
	}

	code := command.ProcessState.ExitCode()
	l.logger.Debug("child exited", "pid", command.Process.Pid, "code", code, "state", command.ProcessState.String())
	return code, nil
}

func classifyExtract(path string, err error) error {
	var decodeErr *payload.DecodeError
	if errors.As(err, &decodeErr) {
		return &Error{Kind: KindDecode, Path: path, Err: err}
	}
	var decompressErr *payload.DecompressError
	if errors.As(err, &decompressErr) {
		return &Error{Kind: KindDecompress, Path: path, Err: err}
	}
	return &Error{Kind: KindFileWrite, Path: path, Err: err}
}

// supportsFileMode reports whether the running platform has POSIX
// permission bits.
func supportsFileMode() bool {
	return goos != "windows"
}

func makeExecutable(path string) error {
	if !supportsFileMode() {
		return nil
	}
	return chmod(path, executableMode)
}

// tempPattern returns the CreateTemp pattern for the running
// platform. Windows only executes files with a known extension.
func tempPattern() string {
	if goos == "windows" {
		return tempPrefix + "*.exe"
	}
	return tempPrefix + "*"
}
