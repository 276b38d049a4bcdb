// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package recommend

import (
	"fmt"
	"strings"
)

// Config contains engine configuration.
type Config struct {
	// DefaultTopK is applied by callers such as the HTTP API when a request
	// omits top_k. The engine itself uses TopK as given.
	DefaultTopK int `json:"default_top_k"`

	// MaxTopK caps top_k at the HTTP boundary.
	MaxTopK int `json:"max_top_k"`

	// PrimaryCode and SecondaryCode are the two category codes the diversity
	// balance guarantees representation for.
	PrimaryCode   string `json:"primary_code"`
	SecondaryCode string `json:"secondary_code"`
}

// DefaultConfig returns the production defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultTopK:   10,
		MaxTopK:       50,
		PrimaryCode:   "K",
		SecondaryCode: "P",
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.DefaultTopK <= 0 {
		return fmt.Errorf("default_top_k must be positive, got %d", c.DefaultTopK)
	}
	if c.MaxTopK < c.DefaultTopK {
		return fmt.Errorf("max_top_k (%d) must be >= default_top_k (%d)", c.MaxTopK, c.DefaultTopK)
	}
	for _, code := range []string{c.PrimaryCode, c.SecondaryCode} {
		if len(code) != 1 || !strings.Contains("ABCDEKPS", strings.ToUpper(code)) {
			return fmt.Errorf("balance code %q must be one of A B C D E K P S", code)
		}
	}
	if strings.EqualFold(c.PrimaryCode, c.SecondaryCode) {
		return fmt.Errorf("primary_code and secondary_code must differ, both %q", c.PrimaryCode)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
