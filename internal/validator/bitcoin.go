package validator

import (
	"regexp"

	"github.com/piyushdaiya/wallet-classifier/internal/checksum"
	"github.com/piyushdaiya/wallet-classifier/internal/codec"
	"github.com/piyushdaiya/wallet-classifier/internal/core"
)

// Legacy (1...), Script (3...) and a loose Segwit/Taproot (bc1...) prefix.
var bitcoinPattern = regexp.MustCompile(`^(1|3|bc1)[a-zA-HJ-NP-Z0-9]{25,39}$`)

type BitcoinStrategy struct{}

func (b *BitcoinStrategy) Name() core.Chain {
	return core.Bitcoin
}

func (b *BitcoinStrategy) IsValidSyntax(address string) bool {
	return bitcoinPattern.MatchString(address)
}

// Verify checks the Base58Check checksum. bc1 addresses are Bech32, not
// Base58Check, and fail here.
func (b *BitcoinStrategy) Verify(address string) error {
	return Verify(address, codec.DecodeBase58, checksum.DoubleSHA256)
}
