// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package catalog

// UnknownCategory is stored when a table has no Test_Type column or the
// cell is empty.
const UnknownCategory = "-"

// Record is one assessment product.
type Record struct {
	// Name is the stored assessment name. It may be empty.
	Name string `json:"name"`

	// URL identifies the record within a catalog.
	URL string `json:"url"`

	// Category is the stored Test_Type value, e.g. "K" or "K, P".
	Category string `json:"category"`

	// RemoteSupport is the stored Remote_Testing flag, "" when absent.
	RemoteSupport string `json:"remote_support,omitempty"`

	// AdaptiveSupport is the stored Adaptive_Irt flag, "" when absent.
	AdaptiveSupport string `json:"adaptive_support,omitempty"`

	// Description is free text, "" when absent.
	Description string `json:"description,omitempty"`

	// Duration is the completion time in minutes, nil when absent.
	Duration *float64 `json:"duration,omitempty"`
}

// Catalog is an ordered, URL-unique sequence of records.
type Catalog struct {
	records []Record
}

// New builds a catalog from already-typed records, dropping duplicate URLs
// (first occurrence wins). The input slice is not retained.
func New(records []Record) *Catalog {
	seen := make(map[string]struct{}, len(records))
	out := make([]Record, 0, len(records))
	for i := range records {
		if _, dup := seen[records[i].URL]; dup {
			continue
		}
		seen[records[i].URL] = struct{}{}
		r := records[i]
		if r.Duration != nil {
			d := *r.Duration
			r.Duration = &d
		}
		out = append(out, r)
	}
	return &Catalog{records: out}
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// At returns the record at position i.
func (c *Catalog) At(i int) Record {
	return c.records[i]
}

// Records returns a copy of the records in catalog order.
func (c *Catalog) Records() []Record {
	if c == nil {
		return nil
	}
	out := make([]Record, len(c.records))
	copy(out, c.records)
	return out
}

// Names returns the record names in catalog order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.records))
	for i := range c.records {
		names[i] = c.records[i].Name
	}
	return names
}
