// Package checksum holds the digest functions address checksums are built from.
package checksum

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/sha3"
)

// Size is the number of checksum bytes carried by a Base58 address.
const Size = 4

// Func computes the checksum bytes for an address payload.
type Func func(payload []byte) []byte

// DoubleSHA256 returns the first Size bytes of sha256(sha256(payload)).
func DoubleSHA256(payload []byte) []byte {
	return chainhash.DoubleHashB(payload)[:Size:Size]
}

// Keccak256 returns the full legacy Keccak-256 digest of payload.
func Keccak256(payload []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(payload)
	return h.Sum(nil)
}

// EIP55Digest hashes the lowercased hex body of an Ethereum address and
// returns the digest as lowercase hex, one nibble per body character.
func EIP55Digest(body string) string {
	return hex.EncodeToString(Keccak256([]byte(strings.ToLower(body))))
}
