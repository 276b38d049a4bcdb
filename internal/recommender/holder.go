// Skillmatch - Assessment Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillmatch

package recommender

import (
	"errors"
	"sync/atomic"
)

// ErrNotReady is returned when no recommender has been installed yet.
var ErrNotReady = errors.New("recommender not ready")

// Holder publishes the current Recommender to concurrent readers.
type Holder struct {
	current atomic.Pointer[Recommender]
}

// NewHolder returns a Holder serving r, which may be nil.
func NewHolder(r *Recommender) *Holder {
	h := &Holder{}
	if r != nil {
		h.current.Store(r)
	}
	return h
}

// Load returns the current recommender or nil.
func (h *Holder) Load() *Recommender {
	return h.current.Load()
}

// Get returns the current recommender or ErrNotReady.
func (h *Holder) Get() (*Recommender, error) {
	r := h.current.Load()
	if r == nil {
		return nil, ErrNotReady
	}
	return r, nil
}

// Swap installs next and returns the previous recommender.
func (h *Holder) Swap(next *Recommender) *Recommender {
	return h.current.Swap(next)
}
