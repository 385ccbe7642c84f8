package validator

import (
	"regexp"

	"github.com/piyushdaiya/wallet-classifier/internal/checksum"
	"github.com/piyushdaiya/wallet-classifier/internal/codec"
	"github.com/piyushdaiya/wallet-classifier/internal/core"
)

var dashPattern = regexp.MustCompile(`^X[1-9A-HJ-NP-Za-km-z]{33}$`)

type DashStrategy struct{}

func (d *DashStrategy) Name() core.Chain {
	return core.Dash
}

func (d *DashStrategy) IsValidSyntax(address string) bool {
	return dashPattern.MatchString(address)
}

func (d *DashStrategy) Verify(address string) error {
	return Verify(address, codec.DecodeBase58, checksum.DoubleSHA256)
}
