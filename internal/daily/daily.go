// Package daily picks a shared root word per calendar day and keeps the
// per-player best score for it.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// RootIndex picks the shared root word for the UTC day of t. Every daily
// session started that day plays roots[RootIndex(t, salt, len(roots))].
// The index is HMAC-SHA256(salt, YYYY-MM-DD) mod n, so it cannot be
// guessed ahead of time without the salt.
func RootIndex(t time.Time, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(t)))
	sum := h.Sum(nil)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}
