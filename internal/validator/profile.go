package validator

import (
	"github.com/piyushdaiya/wallet-classifier/internal/core"
)

// Profile classifies address and wraps the outcome for CLI and engine output.
// explain attaches a trace of every rule.
func (c *Classifier) Profile(address string, explain bool) *core.ValidationResult {
	network := c.Classify(address)

	result := &core.ValidationResult{
		Address: address,
		Network: network,
		IsValid: network.IsKnown(),
	}

	if result.IsValid {
		result.ValidationDetails = "Structure and checksum verified"
	} else {
		result.ValidationDetails = "Invalid Format or No Matching Chain Strategy"
	}

	if ethereumPattern.MatchString(address) {
		result.ChecksumAddress = ChecksumAddress(address)
	}

	if explain {
		result.Rules = c.Explain(address)
	}
	return result
}
