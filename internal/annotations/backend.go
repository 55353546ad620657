// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package annotations

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// StorageKey is the well-known key holding the annotation mapping.
const StorageKey = "restaurantTrackerData"

// ErrBackendClosed is returned by backends used after Close.
var ErrBackendClosed = errors.New("annotation backend is closed")

// Backend persists the serialized annotation mapping under StorageKey.
type Backend interface {
	// GetAll returns the stored value, or nil with no error when nothing is stored.
	GetAll(ctx context.Context) ([]byte, error)

	// SetAll replaces the stored value.
	SetAll(ctx context.Context, data []byte) error

	// Delete removes the key entirely.
	Delete(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// BackendType selects a Backend implementation.
type BackendType string

const (
	// BackendMemory keeps data in process memory only.
	BackendMemory BackendType = "memory"

	// BackendFile stores data in a JSON file.
	BackendFile BackendType = "file"

	// BackendBadger stores data in BadgerDB.
	BackendBadger BackendType = "badger"
)

// OpenBackend creates the backend named by backendType rooted at path.
// Path is ignored for the memory backend.
func OpenBackend(backendType BackendType, path string) (Backend, error) {
	switch backendType {
	case BackendMemory, "":
		return NewMemoryBackend(), nil
	case BackendFile:
		b, err := NewFileBackend(path)
		if err != nil {
			return nil, err
		}
		return b, nil
	case BackendBadger:
		b, err := NewBadgerBackend(path)
		if err != nil {
			return nil, err
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown annotation backend %q", backendType)
	}
}

// MemoryBackend is an in-process Backend.
type MemoryBackend struct {
	mu     sync.RWMutex
	data   []byte
	closed bool
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// GetAll implements Backend.
func (m *MemoryBackend) GetAll(ctx context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return nil, ErrBackendClosed
	}
	if m.data == nil {
		return nil, nil
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

// SetAll implements Backend.
func (m *MemoryBackend) SetAll(ctx context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrBackendClosed
	}
	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}

// Delete implements Backend.
func (m *MemoryBackend) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrBackendClosed
	}
	m.data = nil
	return nil
}

// Close implements Backend.
func (m *MemoryBackend) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
