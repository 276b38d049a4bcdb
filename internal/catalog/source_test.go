// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package catalog

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const sampleCSV = "Assessment_Name,Assessment_Url,Test_Type\n" +
	"Java 8 (New),https://example.com/java-8-new/,K\n" +
	"OPQ32r,https://example.com/opq32r/,P\n"

func TestFileSource_LoadAndVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "catalog.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o600); err != nil {
		t.Fatal(err)
	}

	src, err := NewSource(context.Background(), SourceConfig{Location: path})
	if err != nil {
		t.Fatalf("NewSource() error = %v", err)
	}
	if _, ok := src.(FileSource); !ok {
		t.Fatalf("NewSource() = %T, want FileSource", src)
	}

	cat, v1, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cat.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cat.Len())
	}

	later := time.Now().Add(time.Hour)
	if err := os.WriteFile(path, []byte(sampleCSV+"Verify,https://example.com/verify/,A\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	v2, err := src.Stat(context.Background())
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if v1 == v2 {
		t.Error("version should change when the file changes")
	}
}

func TestFileSource_Missing(t *testing.T) {
	t.Parallel()

	src := FileSource{Path: filepath.Join(t.TempDir(), "nope.csv")}
	if _, _, err := Load(context.Background(), src); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_SchemaError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("Query,Assessment_url\nq,u\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(context.Background(), FileSource{Path: path})
	if !errors.Is(err, ErrSchema) {
		t.Errorf("Load() error = %v, want ErrSchema", err)
	}
}

func TestNewSource_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		location string
	}{
		{"empty", "  "},
		{"s3 without key", "s3://bucket"},
		{"s3 without bucket", "s3:///key.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := NewSource(context.Background(), SourceConfig{Location: tt.location}); err == nil {
				t.Errorf("NewSource(%q) expected error", tt.location)
			}
		})
	}
}

type fakeObjectAPI struct {
	body    string
	etag    string
	getErr  error
	headErr error
	gets    int
}

func (f *fakeObjectAPI) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.gets++
	if f.getErr != nil {
		return nil, f.getErr
	}
	if aws.ToString(in.Key) != "catalog/latest.csv" {
		return nil, errors.New("unexpected key " + aws.ToString(in.Key))
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func (f *fakeObjectAPI) HeadObject(_ context.Context, _ *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if f.headErr != nil {
		return nil, f.headErr
	}
	return &s3.HeadObjectOutput{ETag: aws.String(f.etag)}, nil
}

func TestS3Source(t *testing.T) {
	t.Parallel()

	api := &fakeObjectAPI{body: sampleCSV, etag: `"abc123"`}
	src := NewS3SourceWithClient(api, "assessments", "catalog/latest.csv")

	if got := src.String(); got != "s3://assessments/catalog/latest.csv" {
		t.Errorf("String() = %q", got)
	}

	cat, version, err := Load(context.Background(), src)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if version != "abc123" {
		t.Errorf("version = %q, want abc123 (quotes trimmed)", version)
	}
	if cat.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cat.Len())
	}
}

func TestS3Source_HeadError(t *testing.T) {
	t.Parallel()

	api := &fakeObjectAPI{headErr: errors.New("forbidden")}
	src := NewS3SourceWithClient(api, "b", "catalog/latest.csv")

	if _, _, err := Load(context.Background(), src); err == nil {
		t.Fatal("Load() expected error")
	}
	if api.gets != 0 {
		t.Error("object should not be fetched when stat fails")
	}
}

func TestParseS3Location(t *testing.T) {
	t.Parallel()

	bucket, key, err := parseS3Location("s3://assessments/catalog/latest.csv")
	if err != nil {
		t.Fatalf("parseS3Location() error = %v", err)
	}
	if bucket != "assessments" || key != "catalog/latest.csv" {
		t.Errorf("got %q %q", bucket, key)
	}
}
