package hash

import (
	"crypto/sha256"
	"fmt"
	"github.com/google/uuid"
	"github.com/zeebo/xxh3"
)

// Sha256Hash returns the sha256 hash of the input string
func Sha256Hash(input string) string {
	hash := sha256.New()
	hash.Write([]byte(input))
	hashSum := hash.Sum(nil)
	return fmt.Sprintf("%x", hashSum)
}

// StableGuid derives a GUID from the 128 bit xxh3 hash of the input. The same input always returns
// the same GUID, which lets operations keyed by an operation id be repeated safely.
func StableGuid(input string) uuid.UUID {
	id := uuid.UUID(xxh3.HashString128(input).Bytes())

	// mark the value as a version 8 (custom) RFC 4122 UUID
	id[6] = (id[6] & 0x0f) | 0x80
	id[8] = (id[8] & 0x3f) | 0x80

	return id
}
