// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// __SOURCE__

package main

import (
	"log/slog"
	"os"

	"github.com/bureau-foundation/selfextract/lib/config"
	"github.com/bureau-foundation/selfextract/lib/launcher"
	"github.com/bureau-foundation/selfextract/lib/process"
	"github.com/bureau-foundation/selfextract/lib/version"
)

// payload is replaced by the build step. Keep the token on this line
// only: the substitution expects exactly one occurrence in this file,
// after the single source directive near the top.
var payload = "__PAYLOAD__"

func main() {
	code, err := run(os.Args)
	if err != nil {
		process.Fatal(err)
	}
	process.Exit(code)
}

// run extracts and runs the payload with argv, returning the child's
// exit code.
func run(argv []string) (int, error) {
	cfg, err := config.Load()
	if err != nil {
		return 0, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel(),
	}))
	logger.Debug("launcher starting", version.Attr(), "args", len(argv))

	return launcher.New(launcher.Options{
		Payload: payload,
		TempDir: cfg.TempDir,
		Cleanup: cfg.Cleanup,
		Logger:  logger,
	}).Run(argv)
}
