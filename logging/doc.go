// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package logging configures the process-wide slog logger.
//
// Output goes to stderr. The "auto" format writes human-readable text when
// stderr is a terminal and JSON lines otherwise, so the same binary reads well
// locally and ships structured logs in containers.
package logging
