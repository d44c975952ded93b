// Package storage provides the key-value media the repositories persist
// their collections in.
package storage

import (
	"context"
	"errors"
)

// Key identifies a collection in a storage medium.
type Key string

const (
	KeySavingsSources   Key = "savingsSources"
	KeyFinancialRecords Key = "financialRecords"
)

var ErrGeneral = errors.New("an error occurred in the storage medium")

// Entry is a value to be written for a key.
type Entry struct {
	Key   Key
	Value []byte
}

// Medium is a durable, synchronous key-value byte store.
//
// Save writes all entries or none of them.
type Medium interface {
	Load(ctx context.Context, key Key) ([]byte, bool, error)
	Save(ctx context.Context, entries ...Entry) error
	Ping(ctx context.Context) error
	Close() error
}
