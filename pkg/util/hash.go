package util

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
)

// DefaultLegacySalt is the suffix the legacy counter store appended to page ids
const DefaultLegacySalt = "guess_what"

// LegacyHasher maps a page id to the key of its legacy counter record.
// Implementations must stay bit-compatible with historical data.
type LegacyHasher interface {
	Hash(pageID string) string
}

// MD5Hasher reproduces the legacy key derivation: hex(md5(pageID + Salt))
type MD5Hasher struct {
	Salt string
}

// NewMD5Hasher creates a legacy hasher, falling back to the default salt
func NewMD5Hasher(salt string) *MD5Hasher {
	if salt == "" {
		salt = DefaultLegacySalt
	}
	return &MD5Hasher{Salt: salt}
}

// Hash returns the legacy storage key for pageID
func (h *MD5Hasher) Hash(pageID string) string {
	sum := md5.Sum([]byte(pageID + h.Salt))
	return hex.EncodeToString(sum[:])
}

// VisitorKey derives an opaque per-day visitor key so raw addresses are never stored
func VisitorKey(ip, day string) string {
	sum := sha256.Sum256([]byte(ip + ":" + day))
	return hex.EncodeToString(sum[:8])
}
