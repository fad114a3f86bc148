// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"crypto/rand"
	"sync"
)

const continuationIDLen = 16

// ContinuationPoint is a paused browse, owned by exactly one session.
type ContinuationPoint struct {
	Identifier    []byte
	Description   BrowseDescription
	MaxReferences uint32
	Cursor        BrowseCursor
}

// ContinuationRegistry is the per-session store of active continuation
// points, bounded by a configured slot count.
type ContinuationRegistry struct {
	mu        sync.Mutex
	slots     int
	available int
	entries   map[string]*ContinuationPoint
}

// NewContinuationRegistry returns a registry that allows at most slots live
// continuation points at a time.
func NewContinuationRegistry(slots int) *ContinuationRegistry {
	return &ContinuationRegistry{
		slots:     slots,
		available: slots,
		entries:   make(map[string]*ContinuationPoint),
	}
}

// Available reports the number of continuation points this session may
// still create; it equals cap minus the number of live entries.
func (r *ContinuationRegistry) Available() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.available
}

// create allocates a new entry for a truncated browse, deep-copying desc
// and assigning it a fresh random identifier. It returns ok=false when the
// session has no free slots.
func (r *ContinuationRegistry) create(desc BrowseDescription, maxReferences uint32, cursor BrowseCursor) (*ContinuationPoint, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.available <= 0 {
		return nil, false
	}

	id := make([]byte, continuationIDLen)
	if _, err := rand.Read(id); err != nil {
		return nil, false
	}

	cp := &ContinuationPoint{
		Identifier:    id,
		Description:   desc.clone(),
		MaxReferences: maxReferences,
		Cursor:        cursor,
	}
	r.entries[string(id)] = cp
	r.available--
	return cp, true
}

// find performs a lookup by opaque identifier.
func (r *ContinuationRegistry) find(id []byte) (*ContinuationPoint, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp, ok := r.entries[string(id)]
	return cp, ok
}

// complete removes cp, returning its slot to the pool. Called when a
// resumed browse runs to completion.
func (r *ContinuationRegistry) complete(id []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[string(id)]; ok {
		delete(r.entries, string(id))
		r.available++
	}
}

// update overwrites the stored cursor of an entry that is still truncated
// after a resumed browse.
func (r *ContinuationRegistry) update(id []byte, cursor BrowseCursor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cp, ok := r.entries[string(id)]; ok {
		cp.Cursor = cursor
	}
}

// release unconditionally removes an entry on client request, returning
// ok=false if no such continuation point exists.
func (r *ContinuationRegistry) release(id []byte) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[string(id)]; !ok {
		return false
	}
	delete(r.entries, string(id))
	r.available++
	return true
}

// releaseAll drops every entry, used when a session is destroyed.
func (r *ContinuationRegistry) releaseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]*ContinuationPoint)
	r.available = r.slots
}
