// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAssignsDenseIntegers(t *testing.T) {
	ix := NewIndex()

	assert.Equal(t, 0, ix.Add("http://example.org/a"))
	assert.Equal(t, 1, ix.Add("http://example.org/b"))
	assert.Equal(t, 2, ix.Add("http://example.org/c"))
	assert.Equal(t, 3, ix.Len())
}

func TestIndexAddIsIdempotent(t *testing.T) {
	ix := NewIndex()

	first := ix.Add("http://example.org/a")
	ix.Add("http://example.org/b")
	again := ix.Add("http://example.org/a")

	assert.Equal(t, first, again)
	assert.Equal(t, 2, ix.Len())
}

func TestIndexLookup(t *testing.T) {
	ix := NewIndex()
	ix.Add("http://example.org/a")

	i, ok := ix.Lookup("http://example.org/a")
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	_, ok = ix.Lookup("http://example.org/missing")
	assert.False(t, ok)
}

func TestIndexURIsMatchAssignmentOrder(t *testing.T) {
	ix := NewIndex()
	uris := []string{"http://example.org/c", "http://example.org/a", "http://example.org/b"}
	for _, u := range uris {
		ix.Add(u)
	}

	assert.Equal(t, uris, ix.URIs())
}
