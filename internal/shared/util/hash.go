package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent returns the hex sha256 of data, used for content-addressed keys.
func HashContent(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
