// Restotrack - Personal Restaurant Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/restotrack

package catalog

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/restotrack/internal/models"
)

// FileLoader reads the catalog from a JSON file.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader for the file at path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Source implements Loader.
func (l *FileLoader) Source() string {
	return "file"
}

// Load implements Loader.
func (l *FileLoader) Load(ctx context.Context) (*models.CatalogDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", l.path, err)
	}
	return decodeDocument(data)
}

// decodeDocument parses a catalog document. A body with no content is
// ErrEmptySource.
func decodeDocument(data []byte) (*models.CatalogDocument, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptySource
	}

	var doc models.CatalogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return &doc, nil
}
