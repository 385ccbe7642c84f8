package validator

import (
	log "github.com/sirupsen/logrus"

	"github.com/piyushdaiya/wallet-classifier/internal/core"
)

// Strategies returns the chain rules in priority order. Earlier rules win.
func Strategies() []ChainStrategy {
	return []ChainStrategy{
		&BitcoinStrategy{},
		&EthereumStrategy{},
		&RippleStrategy{},
		&MoneroStrategy{},
		&DashStrategy{},
		&ZCashStrategy{},
	}
}

// Classifier runs an ordered list of chain strategies against an address.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	strategies []ChainStrategy
	logger     *log.Entry
}

type Option func(*Classifier)

// WithLogger sets the entry rule outcomes are traced to at debug level.
func WithLogger(logger *log.Entry) Option {
	return func(c *Classifier) {
		c.logger = logger
	}
}

// WithStrategies replaces the default rule list.
func WithStrategies(strategies ...ChainStrategy) Option {
	return func(c *Classifier) {
		c.strategies = strategies
	}
}

func NewClassifier(opts ...Option) *Classifier {
	c := &Classifier{
		strategies: Strategies(),
		logger:     log.WithField("component", "classifier"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify returns the first chain whose pattern and checksum both accept
// address, or core.Unknown.
func (c *Classifier) Classify(address string) core.Chain {
	for _, strategy := range c.strategies {
		if !strategy.IsValidSyntax(address) {
			continue
		}
		err := strategy.Verify(address)
		if err == nil {
			return strategy.Name()
		}
		c.logger.WithFields(log.Fields{
			"chain":   strategy.Name(),
			"address": address,
		}).WithError(err).Debug("syntax matched, checksum rejected")
	}
	return core.Unknown
}

// Explain evaluates every rule without short-circuiting. The outcome of
// Classify is the first trace with Passed set.
func (c *Classifier) Explain(address string) []core.RuleTrace {
	traces := make([]core.RuleTrace, 0, len(c.strategies))
	for _, strategy := range c.strategies {
		trace := core.RuleTrace{Chain: strategy.Name()}
		if strategy.IsValidSyntax(address) {
			trace.SyntaxMatch = true
			if err := strategy.Verify(address); err != nil {
				trace.Error = err.Error()
			} else {
				trace.Passed = true
			}
		}
		traces = append(traces, trace)
	}
	return traces
}

var defaultClassifier = NewClassifier()

// ClassifyWalletAddress returns the chain name for address, or
// "Unknown or Invalid Address".
func ClassifyWalletAddress(address string) string {
	return defaultClassifier.Classify(address).String()
}
