// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads launcher configuration from the environment.
//
// The launcher forwards its whole command line to the extracted
// binary, so it cannot take flags of its own. The few knobs it has are
// environment variables with the SELFEXTRACT_ prefix, parsed into
// [Config] by [Load]. They are inherited by the child unchanged.
//
// There is no config file and no discovery. An unset variable takes
// its documented default; a malformed one is an error.
package config
