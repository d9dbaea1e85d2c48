package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/strata-dev/strata/pkg/buildinfo"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// LayoutKey generates the cache key for a layout result. Two runs hit
// the same entry only when the graph content hash and every option
// affecting the result match. The build version is mixed in so entries
// computed by an older release are not reused after the ordering
// heuristics change.
func LayoutKey(graphHash string, sweeps int) string {
	return hashKey("layout", buildinfo.Version, graphHash, sweeps)
}
