// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// selfextract-launcher is a self-extracting wrapper around one
// embedded binary. At run time it writes the binary to a new file in
// the temporary directory, makes it executable, runs it with the
// launcher's own arguments and standard streams, and exits with the
// child's exit code.
//
// The binary is embedded as the payload variable in main.go, holding
// base64(gzip(binary)). main.go is a template with two directives: a
// source comment line near the top, which the build step replaces
// with a generated-by comment block, and the payload placeholder
// token, which it replaces with the encoded binary. Each appears
// exactly once, source first. Alternatively the payload can be
// injected at link time:
//
//	go build -ldflags "-X main.payload=$(gzip -9c app | base64 -w0)" ./cmd/selfextract-launcher
//
// Every command-line argument belongs to the child; the launcher reads
// no flags. Its behavior can be adjusted through the environment:
//
//	SELFEXTRACT_DEBUG=true     debug logging to stderr
//	SELFEXTRACT_TMPDIR=<dir>   extract into <dir> instead of os.TempDir()
//	SELFEXTRACT_CLEANUP=true   remove the extracted file after the child exits
//
// Without SELFEXTRACT_CLEANUP the extracted file is left behind after
// the run. Any failure before the child exits is reported on stderr
// with the launcher's name as prefix, and the launcher exits 1 without
// starting the child.
package main
