package validator

import (
	"regexp"

	"github.com/piyushdaiya/wallet-classifier/internal/checksum"
	"github.com/piyushdaiya/wallet-classifier/internal/codec"
	"github.com/piyushdaiya/wallet-classifier/internal/core"
)

// Transparent P2PKH only (t1...).
var zcashPattern = regexp.MustCompile(`^t1[1-9A-HJ-NP-Za-km-z]{33}$`)

type ZCashStrategy struct{}

func (z *ZCashStrategy) Name() core.Chain {
	return core.ZCash
}

func (z *ZCashStrategy) IsValidSyntax(address string) bool {
	return zcashPattern.MatchString(address)
}

// Verify runs the shared Base58 decoder, whose 25-byte buffer is one byte
// short of a transparent address (2-byte prefix, 20-byte hash, checksum).
func (z *ZCashStrategy) Verify(address string) error {
	return Verify(address, codec.DecodeBase58, checksum.DoubleSHA256)
}
