// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package qr renders the voting link of a project as an SVG QR code.
//
// The payload is always <base URL>/votar/<id>. Encoding uses medium error
// correction; the document's <title> carries the payload so the code can be
// checked without a scanner.
package qr
