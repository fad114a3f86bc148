// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinuationRegistryCreateConsumesSlot(t *testing.T) {
	r := NewContinuationRegistry(2)
	assert.Equal(t, 2, r.Available())

	cp, ok := r.create(BrowseDescription{}, 10, BrowseCursor{ReferenceKindIndex: 1})
	require.True(t, ok)
	assert.Equal(t, 1, r.Available())
	assert.Len(t, cp.Identifier, continuationIDLen)

	found, ok := r.find(cp.Identifier)
	require.True(t, ok)
	assert.Equal(t, cp.Cursor, found.Cursor)
}

func TestContinuationRegistryExhaustion(t *testing.T) {
	r := NewContinuationRegistry(1)

	_, ok := r.create(BrowseDescription{}, 10, BrowseCursor{})
	require.True(t, ok)

	_, ok = r.create(BrowseDescription{}, 10, BrowseCursor{})
	assert.False(t, ok, "a second continuation point must be refused once the slot budget is spent")
}

func TestContinuationRegistryCompleteFreesSlot(t *testing.T) {
	r := NewContinuationRegistry(1)
	cp, _ := r.create(BrowseDescription{}, 10, BrowseCursor{})

	r.complete(cp.Identifier)
	assert.Equal(t, 1, r.Available())

	_, ok := r.find(cp.Identifier)
	assert.False(t, ok)
}

func TestContinuationRegistryReleaseUnknownIsNoop(t *testing.T) {
	r := NewContinuationRegistry(3)
	assert.False(t, r.release([]byte("does-not-exist")))
	assert.Equal(t, 3, r.Available())
}

func TestContinuationRegistryReleaseAllResetsAvailability(t *testing.T) {
	r := NewContinuationRegistry(2)
	r.create(BrowseDescription{}, 10, BrowseCursor{})
	r.create(BrowseDescription{}, 10, BrowseCursor{})
	require.Equal(t, 0, r.Available())

	r.releaseAll()
	assert.Equal(t, 2, r.Available())
}

func TestContinuationRegistryUpdateCursor(t *testing.T) {
	r := NewContinuationRegistry(1)
	cp, _ := r.create(BrowseDescription{}, 10, BrowseCursor{})

	r.update(cp.Identifier, BrowseCursor{ReferenceKindIndex: 5, TargetIndex: 9})
	found, ok := r.find(cp.Identifier)
	require.True(t, ok)
	assert.Equal(t, BrowseCursor{ReferenceKindIndex: 5, TargetIndex: 9}, found.Cursor)
}
