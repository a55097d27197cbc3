package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache stores serialized analysis results so re-analyzing an unchanged
// document under an unchanged rule set is a lookup instead of a pipeline run.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives the cache key for a document analyzed under a rule-set version.
// Either a text edit or a rule-set change produces a different key, so a
// rules update can never serve stale results.
func Key(rulesVersion, text string) string {
	h := sha256.New()
	h.Write([]byte(rulesVersion))
	h.Write([]byte{0})
	h.Write([]byte(text))
	return "clausewise:v1:" + hex.EncodeToString(h.Sum(nil))
}
