package core

// Chain is the classification outcome for a wallet address.
type Chain string

const (
	Bitcoin  Chain = "Bitcoin"
	Ethereum Chain = "Ethereum"
	Ripple   Chain = "Ripple"
	Monero   Chain = "Monero"
	Dash     Chain = "Dash"
	ZCash    Chain = "ZCash"

	// Unknown covers both unrecognised and checksum-invalid input.
	Unknown Chain = "Unknown or Invalid Address"
)

// Chains returns the supported chains in classification priority order.
func Chains() []Chain {
	return []Chain{Bitcoin, Ethereum, Ripple, Monero, Dash, ZCash}
}

func (c Chain) String() string {
	return string(c)
}

// IsKnown reports whether c names one of the supported chains.
func (c Chain) IsKnown() bool {
	for _, known := range Chains() {
		if c == known {
			return true
		}
	}
	return false
}

// ValidationResult is the standardized output for ANY classified address
type ValidationResult struct {
	Address           string `json:"address"`
	Network           Chain  `json:"network"`
	IsValid           bool   `json:"is_valid"`
	ValidationDetails string `json:"validation_details,omitempty"`

	// Ethereum only: the EIP-55 rendering of the address
	ChecksumAddress string `json:"checksum_address,omitempty"`

	// Watchlist data (if the engine was consulted)
	Sanctioned *bool  `json:"sanctioned,omitempty"`
	Currency   string `json:"currency,omitempty"`
	Source     string `json:"source,omitempty"`

	Rules []RuleTrace `json:"rules,omitempty"`
}

// RuleTrace records how a single chain rule judged an address.
type RuleTrace struct {
	Chain       Chain  `json:"chain"`
	SyntaxMatch bool   `json:"syntax_match"`
	Passed      bool   `json:"passed"`
	Error       string `json:"error,omitempty"`
}
