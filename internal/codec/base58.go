// Package codec decodes the Base58 text used by wallet addresses.
package codec

import (
	"errors"
	"fmt"

	"github.com/mr-tron/base58"
)

// Alphabet is the Bitcoin Base58 alphabet (excludes 0, O, I, l).
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// BufferSize is the decode buffer: a 21-byte payload plus a 4-byte checksum.
const BufferSize = 25

var (
	ErrInvalidCharacter = errors.New("invalid base58 character")
	ErrOverflow         = errors.New("invalid base58 encoding: value overflows decode buffer")
)

var alphabetIndex [256]int8

func init() {
	for i := range alphabetIndex {
		alphabetIndex[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		alphabetIndex[Alphabet[i]] = int8(i)
	}
}

// DecodeBase58 decodes text as a big-endian base-58 number into a fixed
// BufferSize buffer. Leading zero bytes of the buffer are dropped and one zero
// byte is restored for each leading '1' of the input.
func DecodeBase58(text string) ([]byte, error) {
	var buf [BufferSize]byte

	for pos := 0; pos < len(text); pos++ {
		carry := int(alphabetIndex[text[pos]])
		if carry < 0 {
			return nil, fmt.Errorf("%w %q at position %d", ErrInvalidCharacter, text[pos], pos)
		}

		for i := len(buf) - 1; i >= 0; i-- {
			carry += int(buf[i]) * 58
			buf[i] = byte(carry % 256)
			carry /= 256
		}

		if carry != 0 {
			return nil, fmt.Errorf("%w (position %d)", ErrOverflow, pos)
		}
	}

	start := 0
	for start < len(buf) && buf[start] == 0 {
		start++
	}

	zeros := 0
	for zeros < len(text) && text[zeros] == Alphabet[0] {
		zeros++
	}

	out := make([]byte, zeros, zeros+len(buf)-start)
	return append(out, buf[start:]...), nil
}

// DecodeMoneroBase58 is the decode entry point used by the Monero rule.
// It is plain whole-string Base58, not Monero's 8-character block encoding,
// so genuine 95-character Monero addresses overflow the buffer.
var DecodeMoneroBase58 = DecodeBase58

// EncodeBase58 renders b with the same alphabet.
func EncodeBase58(b []byte) string {
	return base58.Encode(b)
}
