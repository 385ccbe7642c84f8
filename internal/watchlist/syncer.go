package watchlist

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/piyushdaiya/wallet-classifier/internal/core"
	"github.com/piyushdaiya/wallet-classifier/internal/metrics"
)

// Classifier assigns a chain to an imported address.
type Classifier interface {
	Classify(address string) core.Chain
}

// Syncer keeps a Store in step with the remote sanctions feed.
type Syncer struct {
	store      *Store
	classifier Classifier
	feedURL    string
	interval   time.Duration
	client     *retryablehttp.Client
	onUpdate   func()
	logger     *log.Entry
}

type SyncerOption func(*Syncer)

// WithHTTPClient replaces the default retrying client.
func WithHTTPClient(client *retryablehttp.Client) SyncerOption {
	return func(s *Syncer) {
		s.client = client
	}
}

// WithOnUpdate registers a callback run after new data is committed.
func WithOnUpdate(fn func()) SyncerOption {
	return func(s *Syncer) {
		s.onUpdate = fn
	}
}

func NewSyncer(store *Store, classifier Classifier, feedURL string, interval time.Duration, opts ...SyncerOption) *Syncer {
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil
	client.HTTPClient.Timeout = 5 * time.Minute

	s := &Syncer{
		store:      store,
		classifier: classifier,
		feedURL:    feedURL,
		interval:   interval,
		client:     client,
		onUpdate:   func() {},
		logger:     log.WithField("component", "sync"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run syncs immediately and then every interval until ctx is done.
func (s *Syncer) Run(ctx context.Context) {
	for {
		s.runOnce(ctx)

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.interval):
		}
	}
}

func (s *Syncer) runOnce(ctx context.Context) {
	if !s.ShouldUpdate(ctx) {
		s.logger.Info("Database is up to date")
		metrics.RecordSync("unchanged")
		return
	}

	s.logger.Info("Update detected, downloading feed")
	stats, err := s.Sync(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Download failed")
		metrics.RecordSync("failed")
		return
	}
	metrics.RecordSync("updated")
	s.logger.WithFields(log.Fields{
		"parties":   stats.Parties,
		"addresses": stats.Addresses,
	}).Info("Database update complete")

	if stats.Addresses == 0 {
		s.logger.Warn("0 addresses loaded, double check feature type ids")
	}
}

// ShouldUpdate compares the remote Last-Modified header with the stored one.
// It fails open: if the header cannot be fetched an update is attempted.
func (s *Syncer) ShouldUpdate(ctx context.Context) bool {
	local, err := s.store.LastModified(ctx)
	if err != nil {
		s.logger.WithError(err).Warn("Could not read local last_modified")
		return true
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodHead, s.feedURL, nil)
	if err != nil {
		return true
	}
	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.WithError(err).Warn("Could not check remote headers")
		return true
	}
	defer resp.Body.Close()

	remote := resp.Header.Get("Last-Modified")
	return remote == "" || local != remote
}

// Sync downloads the feed, classifies every listed address and stores it.
func (s *Syncer) Sync(ctx context.Context) (FeedStats, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.feedURL, nil)
	if err != nil {
		return FeedStats{}, errors.Wrap(err, "build request")
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return FeedStats{}, errors.Wrap(err, "download feed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FeedStats{}, errors.Errorf("download feed: HTTP %d", resp.StatusCode)
	}

	lastMod := resp.Header.Get("Last-Modified")
	s.logger.WithField("last_modified", lastMod).Debug("Parsing feed")

	now := time.Now().UTC()
	var entries []Entry
	stats, err := ParseFeed(resp.Body, func(address, currency string) error {
		entries = append(entries, Entry{
			Address:   address,
			Currency:  currency,
			Network:   s.classifier.Classify(address),
			Source:    "OFAC",
			UpdatedAt: now,
		})
		return nil
	})
	if err != nil {
		return stats, err
	}

	if _, err := s.store.Upsert(ctx, entries); err != nil {
		return stats, err
	}
	if err := s.store.SetLastModified(ctx, lastMod); err != nil {
		return stats, err
	}

	if n, err := s.store.Count(ctx); err == nil {
		metrics.SetWatchlistSize(n)
	}
	s.onUpdate()
	return stats, nil
}
