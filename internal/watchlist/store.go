// Package watchlist keeps a local copy of sanctioned wallet addresses.
package watchlist

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/piyushdaiya/wallet-classifier/internal/core"
)

var ErrNotFound = errors.New("address not on watchlist")

// Entry is one sanctioned address.
type Entry struct {
	Address   string
	Currency  string
	Network   core.Chain
	Source    string
	UpdatedAt time.Time
}

// Lookuper finds a watchlist entry by exact address.
type Lookuper interface {
	Lookup(ctx context.Context, address string) (*Entry, error)
}

type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS sanctioned_addresses (
	address TEXT PRIMARY KEY,
	currency TEXT,
	network TEXT,
	source TEXT,
	updated_at DATETIME
);
CREATE INDEX IF NOT EXISTS idx_network ON sanctioned_addresses(network);
CREATE TABLE IF NOT EXISTS metadata (key TEXT PRIMARY KEY, value TEXT);
`

// Open opens (or creates) the sqlite database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	// one connection: sqlite has a single writer and :memory: is per connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping")
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "create tables")
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Lookup(ctx context.Context, address string) (*Entry, error) {
	e := Entry{Address: address}
	var network sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT currency, network, source, updated_at FROM sanctioned_addresses WHERE address = ?", address).
		Scan(&e.Currency, &network, &e.Source, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "lookup %s", address)
	}
	e.Network = core.Chain(network.String)
	return &e, nil
}

// Upsert writes entries in a single transaction and returns how many were stored.
func (s *Store) Upsert(ctx context.Context, entries []Entry) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.Wrap(err, "begin")
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR REPLACE INTO sanctioned_addresses(address, currency, network, source, updated_at) VALUES(?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return 0, errors.Wrap(err, "prepare")
	}
	defer stmt.Close()

	loaded := 0
	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, e.Address, e.Currency, string(e.Network), e.Source, e.UpdatedAt); err != nil {
			tx.Rollback()
			return 0, errors.Wrapf(err, "insert %s", e.Address)
		}
		loaded++
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.Wrap(err, "commit")
	}
	return loaded, nil
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM sanctioned_addresses").Scan(&n); err != nil {
		return 0, errors.Wrap(err, "count")
	}
	return n, nil
}

// LastModified returns the feed Last-Modified header seen at the last sync,
// or "" if the feed was never synced.
func (s *Store) LastModified(ctx context.Context) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM metadata WHERE key='last_modified'").Scan(&v)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "read last_modified")
	}
	return v, nil
}

func (s *Store) SetLastModified(ctx context.Context, v string) error {
	_, err := s.db.ExecContext(ctx, "INSERT OR REPLACE INTO metadata(key, value) VALUES('last_modified', ?)", v)
	return errors.Wrap(err, "write last_modified")
}
