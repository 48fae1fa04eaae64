package hash

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256Hex returns the hex-encoded SHA256 hash of the input string.
func SHA256Hex(input string) string {
	h := sha256.Sum256([]byte(input))
	return hex.EncodeToString(h[:])
}

// ShortHex returns the first n characters of SHA256(input). Used for
// privacy-preserving log correlation (IPs, owner IDs) without storing
// the raw value.
func ShortHex(input string, n int) string {
	full := SHA256Hex(input)
	if n > len(full) {
		return full
	}
	return full[:n]
}

// HashOwnerID hashes a raw owner identifier with a salt before it is
// persisted with saved searches.
func HashOwnerID(ownerID, salt string) string {
	return SHA256Hex(salt + ownerID)
}
