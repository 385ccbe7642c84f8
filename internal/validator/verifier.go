package validator

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/piyushdaiya/wallet-classifier/internal/checksum"
)

var (
	ErrTooShort         = errors.New("decoded address shorter than its checksum")
	ErrChecksumMismatch = errors.New("checksum mismatch")
)

// Verify decodes address, splits off the trailing checksum.Size bytes and
// compares them against the first checksum.Size bytes of sum(payload).
func Verify(address string, decode DecodeFunc, sum checksum.Func) error {
	decoded, err := decode(address)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(decoded) < checksum.Size {
		return fmt.Errorf("%w: %d bytes", ErrTooShort, len(decoded))
	}

	split := len(decoded) - checksum.Size
	payload, claimed := decoded[:split], decoded[split:]

	computed := sum(payload)
	if len(computed) < checksum.Size || !bytes.Equal(claimed, computed[:checksum.Size]) {
		return fmt.Errorf("%w: have %x, want %x", ErrChecksumMismatch, claimed, computed)
	}
	return nil
}

// VerifyChecksum reports whether address passes Verify.
func VerifyChecksum(address string, decode DecodeFunc, sum checksum.Func) bool {
	return Verify(address, decode, sum) == nil
}
