package validator

import (
	"errors"
	"fmt"
	"regexp"
	"unicode"

	"github.com/ethereum/go-ethereum/common"

	"github.com/piyushdaiya/wallet-classifier/internal/checksum"
	"github.com/piyushdaiya/wallet-classifier/internal/core"
)

var ethereumPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

var ErrCaseMismatch = errors.New("EIP-55 case mismatch")

type EthereumStrategy struct{}

func (e *EthereumStrategy) Name() core.Chain {
	return core.Ethereum
}

func (e *EthereumStrategy) IsValidSyntax(address string) bool {
	return ethereumPattern.MatchString(address)
}

func (e *EthereumStrategy) Verify(address string) error {
	return VerifyEIP55(address)
}

// VerifyEIP55 checks the mixed-case checksum of a 0x-prefixed hex address.
// A letter must be uppercase where the matching digest nibble is above 7 and
// lowercase otherwise; digits are unconstrained. The rule is applied strictly,
// so an all-lowercase address passes only if every letter maps to a low nibble.
func VerifyEIP55(address string) error {
	if !ethereumPattern.MatchString(address) {
		return fmt.Errorf("%w: not a 0x-prefixed 40 digit hex address", ErrCaseMismatch)
	}

	body := address[2:]
	digest := checksum.EIP55Digest(body)

	for i, c := range body {
		if !unicode.IsLetter(c) {
			continue
		}
		high := digest[i] > '7'
		if unicode.IsUpper(c) != high {
			return fmt.Errorf("%w at position %d (%q)", ErrCaseMismatch, i+2, c)
		}
	}
	return nil
}

// IsEIP55 reports whether address passes VerifyEIP55.
func IsEIP55(address string) bool {
	return VerifyEIP55(address) == nil
}

// ChecksumAddress renders a hex address in its EIP-55 form.
func ChecksumAddress(address string) string {
	return common.HexToAddress(address).Hex()
}
