// Pawfeed - Social Feed Personalization and Experimentation Engine
// Copyright 2026 openann19
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/openann19/pawfeed

package analytics

import (
	"context"
	"fmt"
	"time"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// eventPrefix namespaces event keys inside the badger keyspace.
const eventPrefix = "ev:"

// keyTimeLayout is a fixed-width timestamp layout so lexicographic key
// order matches chronological order.
const keyTimeLayout = "2006-01-02T15:04:05.000000000Z"

// BadgerStore persists events in an embedded badger database. Keys embed
// the event timestamp, so iteration order is chronological and retention
// sweeps can stop at the cutoff. Safe for concurrent use.
type BadgerStore struct {
	db     *badger.DB
	logger zerolog.Logger
}

var _ Store = (*BadgerStore)(nil)

// NewBadgerStore opens (or creates) the event database at path. An empty
// path opens an in-memory database.
func NewBadgerStore(path string, logger zerolog.Logger) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open event store: %w", err)
	}

	return &BadgerStore{
		db:     db,
		logger: logger.With().Str("component", "event_store").Logger(),
	}, nil
}

// eventKey builds the chronological key for an event.
func eventKey(ev *Event) []byte {
	return []byte(eventPrefix + ev.Timestamp.UTC().Format(keyTimeLayout) + ":" + ev.ID)
}

// Append records one event.
func (s *BadgerStore) Append(_ context.Context, ev Event) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(eventKey(&ev), value)
	})
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}
	return nil
}

// Query returns events matching the filter, oldest first.
func (s *BadgerStore) Query(ctx context.Context, f Filter) ([]Event, error) {
	var out []Event

	err := s.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(eventPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			err := it.Item().Value(func(value []byte) error {
				var ev Event
				if err := json.Unmarshal(value, &ev); err != nil {
					return fmt.Errorf("decode event: %w", err)
				}
				if f.matches(&ev) {
					out = append(out, ev)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return out, nil
}

// Sweep deletes events older than the cutoff. The chronological key layout
// lets the scan stop at the first surviving event.
func (s *BadgerStore) Sweep(ctx context.Context, olderThan time.Time) (int, error) {
	cutoff := eventPrefix + olderThan.UTC().Format(keyTimeLayout)

	var stale [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(eventPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			key := it.Item().KeyCopy(nil)
			if string(key) >= cutoff {
				break
			}
			stale = append(stale, key)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("scan stale events: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, key := range stale {
		if err := wb.Delete(key); err != nil {
			return 0, fmt.Errorf("delete stale event: %w", err)
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, fmt.Errorf("flush retention sweep: %w", err)
	}

	s.logger.Debug().Int("removed", len(stale)).Msg("Swept stale events")
	return len(stale), nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
