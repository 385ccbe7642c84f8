package validator

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piyushdaiya/wallet-classifier/internal/checksum"
	"github.com/piyushdaiya/wallet-classifier/internal/codec"
	"github.com/piyushdaiya/wallet-classifier/internal/core"
)

var hash160 = bytes.Repeat([]byte{0x5e}, 20)

// rippleFixture finds a version byte whose Base58Check rendering starts with 'r'.
func rippleFixture(t *testing.T) string {
	t.Helper()
	for v := 0; v < 256; v++ {
		addr := base58.CheckEncode(hash160, byte(v))
		if strings.HasPrefix(addr, "r") {
			return addr
		}
	}
	t.Fatal("no version byte renders with an 'r' prefix")
	return ""
}

func mutateLast(address string) string {
	last := address[len(address)-1]
	idx := strings.IndexByte(codec.Alphabet, last)
	return address[:len(address)-1] + string(codec.Alphabet[(idx+1)%len(codec.Alphabet)])
}

func TestClassifyWalletAddress_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
	}{
		{"bitcoin p2pkh", "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2", "Bitcoin"},
		{"bitcoin p2sh", "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", "Bitcoin"},
		{"ethereum eip55", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", "Ethereum"},
		{"ethereum lowercased", "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", "Unknown or Invalid Address"},
		{"ethereum all lower vector", "0xde709f2102306220921060314715629080e2fb77", "Ethereum"},
		{"free text", "not an address", "Unknown or Invalid Address"},
		{"bitcoin last char changed", "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN3", "Unknown or Invalid Address"},
		{"bitcoin truncated", "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN", "Unknown or Invalid Address"},
		{"empty", "", "Unknown or Invalid Address"},
		{"surrounding whitespace", " 1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2 ", "Unknown or Invalid Address"},
		{"bech32", "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", "Unknown or Invalid Address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyWalletAddress(tt.address))
		})
	}
}

func TestClassify_GeneratedBase58Chains(t *testing.T) {
	tests := []struct {
		chain   core.Chain
		address string
		prefix  string
	}{
		{core.Bitcoin, base58.CheckEncode(hash160, 0x00), "1"},
		{core.Bitcoin, base58.CheckEncode(hash160, 0x05), "3"},
		{core.Ripple, rippleFixture(t), "r"},
		{core.Dash, base58.CheckEncode(hash160, 0x4c), "X"},
	}

	c := NewClassifier()
	for _, tt := range tests {
		require.True(t, strings.HasPrefix(tt.address, tt.prefix), tt.address)
		assert.Equal(t, tt.chain, c.Classify(tt.address), tt.address)

		// checksum round trip
		decoded, err := codec.DecodeBase58(tt.address)
		require.NoError(t, err)
		split := len(decoded) - checksum.Size
		assert.Equal(t, decoded[split:], checksum.DoubleSHA256(decoded[:split]))

		assert.Equal(t, core.Unknown, c.Classify(mutateLast(tt.address)), tt.address)
	}
}

func TestClassify_ZCashAndMoneroOverflow(t *testing.T) {
	zcash := base58.CheckEncode(append([]byte{0xb8}, hash160...), 0x1c)
	require.True(t, strings.HasPrefix(zcash, "t1"), zcash)
	require.Len(t, zcash, 35)

	s := &ZCashStrategy{}
	assert.True(t, s.IsValidSyntax(zcash))
	assert.ErrorIs(t, s.Verify(zcash), codec.ErrOverflow)
	assert.Equal(t, core.Unknown, NewClassifier().Classify(zcash))

	monero := "4A" + strings.Repeat("x", 93)
	m := &MoneroStrategy{}
	assert.True(t, m.IsValidSyntax(monero))
	assert.ErrorIs(t, m.Verify(monero), codec.ErrOverflow)
	assert.Equal(t, core.Unknown, NewClassifier().Classify(monero))
}

type stubStrategy struct {
	chain  core.Chain
	calls  int
	accept bool
}

func (s *stubStrategy) Name() core.Chain                  { return s.chain }
func (s *stubStrategy) IsValidSyntax(address string) bool { return true }
func (s *stubStrategy) Verify(address string) error {
	s.calls++
	if s.accept {
		return nil
	}
	return ErrChecksumMismatch
}

func TestClassify_FirstMatchWins(t *testing.T) {
	first := &stubStrategy{chain: core.Dash, accept: true}
	second := &stubStrategy{chain: core.ZCash, accept: true}

	c := NewClassifier(WithStrategies(first, second))
	assert.Equal(t, core.Dash, c.Classify("anything"))
	assert.Equal(t, 1, first.calls)
	assert.Zero(t, second.calls)

	rejecting := &stubStrategy{chain: core.Monero}
	c = NewClassifier(WithStrategies(rejecting, second))
	assert.Equal(t, core.ZCash, c.Classify("anything"))
	assert.Equal(t, 1, rejecting.calls)
}

func TestStrategies_PriorityOrder(t *testing.T) {
	var names []core.Chain
	for _, s := range Strategies() {
		names = append(names, s.Name())
	}
	assert.Equal(t, core.Chains(), names)
}

func TestExplain(t *testing.T) {
	c := NewClassifier()

	traces := c.Explain("1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN3")
	require.Len(t, traces, 6)
	assert.Equal(t, core.Bitcoin, traces[0].Chain)
	assert.True(t, traces[0].SyntaxMatch)
	assert.False(t, traces[0].Passed)
	assert.Contains(t, traces[0].Error, "checksum mismatch")

	traces = c.Explain("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")
	assert.True(t, traces[1].Passed)
	for i, trace := range traces {
		if i != 1 {
			assert.False(t, trace.SyntaxMatch, trace.Chain)
		}
	}
}

func TestProfile(t *testing.T) {
	c := NewClassifier()

	p := c.Profile("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed", false)
	assert.False(t, p.IsValid)
	assert.Equal(t, core.Unknown, p.Network)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", p.ChecksumAddress)
	assert.Empty(t, p.Rules)

	p = c.Profile("1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2", true)
	assert.True(t, p.IsValid)
	assert.Equal(t, core.Bitcoin, p.Network)
	assert.Empty(t, p.ChecksumAddress)
	assert.Len(t, p.Rules, 6)
}

func TestClassify_Concurrent(t *testing.T) {
	c := NewClassifier()
	inputs := map[string]core.Chain{
		"1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2":         core.Bitcoin,
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359": core.Ethereum,
		"not an address":                             core.Unknown,
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		for in, want := range inputs {
			wg.Add(1)
			go func(in string, want core.Chain) {
				defer wg.Done()
				assert.Equal(t, want, c.Classify(in))
			}(in, want)
		}
	}
	wg.Wait()
}
