// Package repository implements the repositories for savings sources,
// financial records and expenses on top of a storage medium.
//
// All repositories created from the same Store share its lock. Every
// operation is a read-modify-write of whole collections and never
// interleaves with another operation.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/envelope-zero/networth/internal/models"
	"github.com/envelope-zero/networth/internal/storage"
	"github.com/rs/zerolog/log"
)

// Store gives the repositories access to the storage medium.
type Store struct {
	mu        sync.Mutex
	medium    storage.Medium
	now       func() time.Time
	protectNA bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the function used to determine the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithNAProtection rejects updates and deletes of the fallback savings
// source with a forbidden error when enabled.
func WithNAProtection(enabled bool) Option {
	return func(s *Store) {
		s.protectNA = enabled
	}
}

// NewStore creates a Store for a medium.
func NewStore(medium storage.Medium, opts ...Option) *Store {
	s := &Store{
		medium: medium,
		now:    models.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Ping verifies that the storage medium is available.
func (s *Store) Ping(ctx context.Context) error {
	return s.medium.Ping(ctx)
}

// timestamp returns the current time.
func (s *Store) timestamp() time.Time {
	return models.Timestamp(s.now())
}

// loadSources returns all savings sources.
//
// If no savings sources have ever been stored, the fallback source is
// created and persisted.
func (s *Store) loadSources(ctx context.Context) ([]models.SavingsSource, error) {
	data, ok, err := s.medium.Load(ctx, storage.KeySavingsSources)
	if err != nil {
		return nil, err
	}

	if !ok {
		sources := []models.SavingsSource{models.NewNASource(s.timestamp())}
		entry, err := encode(storage.KeySavingsSources, sources)
		if err != nil {
			return nil, err
		}

		err = s.medium.Save(ctx, entry)
		if err != nil {
			return nil, err
		}

		log.Info().Str("id", models.NASourceID).Msg("initialized savings sources with fallback source")
		return sources, nil
	}

	var sources []models.SavingsSource
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, integrityError(string(storage.KeySavingsSources), err)
	}

	if sources == nil {
		sources = []models.SavingsSource{}
	}

	for i := range sources {
		sources[i].Normalize()
	}

	return sources, nil
}

// loadRecords returns all financial records in the order they are stored.
func (s *Store) loadRecords(ctx context.Context) ([]models.FinancialRecord, error) {
	data, ok, err := s.medium.Load(ctx, storage.KeyFinancialRecords)
	if err != nil {
		return nil, err
	}

	if !ok {
		return []models.FinancialRecord{}, nil
	}

	var records []models.FinancialRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, integrityError(string(storage.KeyFinancialRecords), err)
	}

	if records == nil {
		records = []models.FinancialRecord{}
	}

	for i := range records {
		records[i].Normalize()
	}

	return records, nil
}

// save encodes the collections and writes them in one operation.
func (s *Store) save(ctx context.Context, sources []models.SavingsSource, records []models.FinancialRecord) error {
	var entries []storage.Entry

	if sources != nil {
		entry, err := encode(storage.KeySavingsSources, sources)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	if records != nil {
		entry, err := encode(storage.KeyFinancialRecords, records)
		if err != nil {
			return err
		}
		entries = append(entries, entry)
	}

	return s.medium.Save(ctx, entries...)
}

func encode[T any](key storage.Key, collection []T) (storage.Entry, error) {
	data, err := json.Marshal(collection)
	if err != nil {
		return storage.Entry{}, fmt.Errorf("encoding %s failed: %w", key, err)
	}

	return storage.Entry{Key: key, Value: data}, nil
}
