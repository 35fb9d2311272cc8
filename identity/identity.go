// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"crypto/md5"
	"encoding/hex"
	"net"
	"net/http"
	"strings"
)

// ComputeVoterID derives a pseudo-identifier for a voting client.
// MD5 here is a fingerprint, not a security boundary: two people behind
// the same address and browser get the same id, and one person on a new
// network gets a new one.
func ComputeVoterID(sourceAddress, agentString string) string {
	sum := md5.Sum([]byte(sourceAddress + agentString))
	return hex.EncodeToString(sum[:])
}

// ClientAddress extracts the client address of a request.
// Proxy headers are only read when trustProxy is set.
func ClientAddress(r *http.Request, trustProxy bool) string {
	if trustProxy {
		// X-Forwarded-For (load balancers): first IP in chain
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); ip != "" {
				return ip
			}
		}

		// X-Real-IP (nginx)
		if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
			return xri
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// VoterID is ComputeVoterID applied to a request
func VoterID(r *http.Request, trustProxy bool) string {
	return ComputeVoterID(ClientAddress(r, trustProxy), r.UserAgent())
}
