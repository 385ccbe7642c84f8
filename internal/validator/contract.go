package validator

import (
	"github.com/piyushdaiya/wallet-classifier/internal/core"
)

// ChainStrategy is one chain's classification rule: a structural pattern
// followed by the chain's checksum verification.
type ChainStrategy interface {
	Name() core.Chain
	IsValidSyntax(address string) bool
	Verify(address string) error
}

// DecodeFunc turns address text into the raw payload+checksum bytes.
type DecodeFunc func(address string) ([]byte, error)
