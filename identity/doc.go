// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity derives the voter id used for one-vote-per-device.

	voterID := identity.VoterID(r, cfg.TrustProxy)

The id is the MD5 hex digest of the client address followed by the
User-Agent header. It is a heuristic, not an authenticated identity:

  - people sharing an address and browser build collide (false positive)
  - one person changing network or browser looks new (false negative)

X-Forwarded-For and X-Real-IP are only read when the server runs behind
a trusted proxy (TRUST_PROXY).
*/
package identity
