package store

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	bolt "go.etcd.io/bbolt"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var defaultBucket = []byte("hntrie")

// BoltStore is a Store backed by a single bbolt database file. Values are
// compressed opportunistically (compressValue) before being written and
// decompressed transparently on read; callers never see the tag byte.
type BoltStore struct {
	db     *bolt.DB
	bucket []byte
	log    *slog.Logger
}

// BoltOption configures a BoltStore at open time.
type BoltOption func(*boltConfig)

type boltConfig struct {
	bucket  []byte
	log     *slog.Logger
	timeout time.Duration
}

// WithBucket overrides the default bucket name ("hntrie").
func WithBucket(name string) BoltOption {
	return func(c *boltConfig) { c.bucket = []byte(name) }
}

// WithStoreLogger attaches a logger; Put logs a debug record with the raw
// and stored sizes of each value.
func WithStoreLogger(l *slog.Logger) BoltOption {
	return func(c *boltConfig) { c.log = l }
}

// OpenBolt opens (creating if necessary) a bbolt database at path and
// ensures the configured bucket exists.
func OpenBolt(path string, opts ...BoltOption) (*BoltStore, error) {
	cfg := boltConfig{bucket: defaultBucket, timeout: time.Second}
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: cfg.timeout})
	if err != nil {
		return nil, fmt.Errorf("store: open bolt database %q: %w", path, err)
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(cfg.bucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create bucket %q: %w", cfg.bucket, err)
	}

	s := &BoltStore{db: db, bucket: cfg.bucket, log: cfg.log}
	if s.log == nil {
		s.log = discardLogger()
	}
	return s, nil
}

func (s *BoltStore) Get(key []byte) ([]byte, error) {
	var blob []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		v := b.Get(key)
		if v == nil {
			return ErrKeyNotFound
		}
		blob = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	value, err := decompressValue(blob)
	if err != nil {
		return nil, fmt.Errorf("store: decode %q: %w", key, err)
	}
	return value, nil
}

func (s *BoltStore) Put(key, value []byte) error {
	blob, err := compressValue(value)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put(key, blob)
	})
	if err != nil {
		return fmt.Errorf("store: put %q: %w", key, err)
	}
	s.log.Debug("store put", "key", string(key), "raw_bytes", len(value), "stored_bytes", len(blob))
	return nil
}

func (s *BoltStore) Delete(key []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Delete(key)
	})
	if err != nil {
		return fmt.Errorf("store: delete %q: %w", key, err)
	}
	return nil
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
