// Package common provides shared utilities for Pulse
package common

import "time"

// Freshness TTLs for data components
const (
	// FreshnessSnapshot bounds how long a fetched financial snapshot is
	// served from the cache before a new provider fetch is made.
	FreshnessSnapshot = 5 * time.Minute
)

// IsFresh returns true if the given timestamp is within the TTL
func IsFresh(updated time.Time, ttl time.Duration) bool {
	if updated.IsZero() {
		return false
	}
	return time.Since(updated) < ttl
}
