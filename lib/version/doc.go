// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the
// launcher.
//
// Four package-level variables are injected at build time via
// -ldflags -X, alongside the payload itself:
//
//   - [GitCommit] -- short git SHA of the launcher template
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string
//
// They default to "unknown" / "0.1.0-dev" when not injected. The
// launcher has no --version flag (every argument belongs to the
// child), so the values only appear in debug logs.
package version
