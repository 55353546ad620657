// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package annotations

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// BadgerBackend stores the annotation mapping in BadgerDB.
type BadgerBackend struct {
	db     *badger.DB
	ownsDB bool
}

// NewBadgerBackend opens a BadgerDB at path. The backend closes the
// database on Close.
func NewBadgerBackend(path string) (*BadgerBackend, error) {
	if path == "" {
		return nil, errors.New("badger backend requires a path")
	}
	opts := badger.DefaultOptions(path)
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for annotations: %w", err)
	}
	return &BadgerBackend{db: db, ownsDB: true}, nil
}

// NewBadgerBackendFromDB wraps an already open database. Close leaves the
// database open.
func NewBadgerBackendFromDB(db *badger.DB) *BadgerBackend {
	return &BadgerBackend{db: db}
}

// GetAll implements Backend.
func (b *BadgerBackend) GetAll(ctx context.Context) ([]byte, error) {
	var data []byte

	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(StorageKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get annotations: %w", err)
		}

		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrDBClosed) {
		return nil, ErrBackendClosed
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// SetAll implements Backend.
func (b *BadgerBackend) SetAll(ctx context.Context, data []byte) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(StorageKey), data); err != nil {
			return fmt.Errorf("set annotations: %w", err)
		}
		return nil
	})
	if errors.Is(err, badger.ErrDBClosed) {
		return ErrBackendClosed
	}
	return err
}

// Delete implements Backend.
func (b *BadgerBackend) Delete(ctx context.Context) error {
	err := b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(StorageKey)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete annotations: %w", err)
		}
		return nil
	})
	if errors.Is(err, badger.ErrDBClosed) {
		return ErrBackendClosed
	}
	return err
}

// DefaultGCDiscardRatio is the value log discard ratio used by RunGC.
const DefaultGCDiscardRatio = 0.5

// RunGC reclaims value log space, repeating until badger reports there is
// nothing left to rewrite.
func (b *BadgerBackend) RunGC() error {
	for {
		err := b.db.RunValueLogGC(DefaultGCDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) {
			return nil
		}
		if errors.Is(err, badger.ErrDBClosed) {
			return ErrBackendClosed
		}
		if err != nil {
			return fmt.Errorf("run value log gc: %w", err)
		}
	}
}

// Close implements Backend.
func (b *BadgerBackend) Close() error {
	if b.ownsDB {
		return b.db.Close()
	}
	return nil
}
