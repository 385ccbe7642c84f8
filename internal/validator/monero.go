package validator

import (
	"regexp"

	"github.com/piyushdaiya/wallet-classifier/internal/checksum"
	"github.com/piyushdaiya/wallet-classifier/internal/codec"
	"github.com/piyushdaiya/wallet-classifier/internal/core"
)

var moneroPattern = regexp.MustCompile(`^[48][0-9AB][1-9A-HJ-NP-Za-km-z]{93}$`)

type MoneroStrategy struct{}

func (m *MoneroStrategy) Name() core.Chain {
	return core.Monero
}

func (m *MoneroStrategy) IsValidSyntax(address string) bool {
	return moneroPattern.MatchString(address)
}

// Verify compares the leading 4 bytes of the Keccak-256 digest only.
// A 95 character address does not fit the Base58 decode buffer, so this
// currently reports an overflow for every syntactically valid input.
func (m *MoneroStrategy) Verify(address string) error {
	return Verify(address, codec.DecodeMoneroBase58, checksum.Keccak256)
}
