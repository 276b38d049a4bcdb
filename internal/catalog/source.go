// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrNoLocation is returned by NewSource when no catalog location is configured.
var ErrNoLocation = errors.New("catalog: no location configured")

// Version is an opaque change token for a catalog source. Two reads with
// equal versions yield the same bytes.
type Version string

// Source provides the raw catalog CSV.
type Source interface {
	// Open returns a reader over the CSV. The caller must close it.
	Open(ctx context.Context) (io.ReadCloser, error)

	// Stat returns the current version without reading the content.
	Stat(ctx context.Context) (Version, error)

	// String describes the source for logs.
	String() string
}

// SourceConfig selects and configures a Source.
type SourceConfig struct {
	// Location is a filesystem path or an s3://bucket/key URI.
	Location string

	S3 S3Config
}

// NewSource returns an S3Source for s3:// locations and a FileSource otherwise.
func NewSource(ctx context.Context, cfg SourceConfig) (Source, error) {
	loc := strings.TrimSpace(cfg.Location)
	if loc == "" {
		return nil, ErrNoLocation
	}
	if strings.HasPrefix(loc, "s3://") {
		bucket, key, err := parseS3Location(loc)
		if err != nil {
			return nil, err
		}
		s3cfg := cfg.S3
		s3cfg.Bucket = bucket
		s3cfg.Key = key
		return NewS3Source(ctx, s3cfg)
	}
	return FileSource{Path: loc}, nil
}

// Load stats src, reads it and builds a catalog.
func Load(ctx context.Context, src Source) (*Catalog, Version, error) {
	version, err := src.Stat(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("stat %s: %w", src, err)
	}

	rc, err := src.Open(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", src, err)
	}
	defer func() { _ = rc.Close() }()

	table, err := ReadCSV(rc)
	if err != nil {
		return nil, "", fmt.Errorf("parse %s: %w", src, err)
	}
	cat, err := Build(table)
	if err != nil {
		return nil, "", fmt.Errorf("build %s: %w", src, err)
	}
	return cat, version, nil
}

// FileSource reads a catalog from the local filesystem.
type FileSource struct {
	Path string
}

// Open implements Source.
func (f FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// Stat implements Source. The version combines modification time and size.
func (f FileSource) Stat(_ context.Context) (Version, error) {
	info, err := os.Stat(f.Path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return "", fmt.Errorf("%s is a directory", f.Path)
	}
	return Version(fmt.Sprintf("%d-%d", info.ModTime().UnixNano(), info.Size())), nil
}

func (f FileSource) String() string {
	return "file:" + f.Path
}
