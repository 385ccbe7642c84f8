package validator

import (
	"regexp"

	"github.com/piyushdaiya/wallet-classifier/internal/checksum"
	"github.com/piyushdaiya/wallet-classifier/internal/codec"
	"github.com/piyushdaiya/wallet-classifier/internal/core"
)

var ripplePattern = regexp.MustCompile(`^r[a-zA-Z0-9]{24,34}$`)

type RippleStrategy struct{}

func (r *RippleStrategy) Name() core.Chain {
	return core.Ripple
}

func (r *RippleStrategy) IsValidSyntax(address string) bool {
	return ripplePattern.MatchString(address)
}

// Verify decodes with the Bitcoin alphabet, not the XRP Ledger one.
func (r *RippleStrategy) Verify(address string) error {
	return Verify(address, codec.DecodeBase58, checksum.DoubleSHA256)
}
