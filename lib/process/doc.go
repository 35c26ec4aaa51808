// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process provides binary entrypoint helpers for the
// launcher. It is the only place that writes raw diagnostics to
// stderr or terminates the process:
//
//   - [Fatal] reports a launcher-side failure and exits with
//     [FailureCode].
//   - [Exit] terminates with the exit code collected from the child.
//
// Launcher diagnostics are prefixed with the program name so they can
// be told apart from the child's own stderr, which shares the stream.
package process
