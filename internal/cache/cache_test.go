package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanaai/job-assistant/internal/types"
)

func entryFor(text string) *types.CacheEntry {
	facts := types.NewFactSet()
	facts.Skills.Add("python")
	return &types.CacheEntry{
		Fingerprint:    Fingerprint(text),
		NormalizedText: text,
		Facts:          facts,
	}
}

func TestFingerprint_Deterministic(t *testing.T) {
	assert.Equal(t, Fingerprint("resume text"), Fingerprint("resume text"))
	assert.NotEqual(t, Fingerprint("resume text"), Fingerprint("resume text "))
	assert.Len(t, Fingerprint(""), 64)
}

func TestStore_PutGet(t *testing.T) {
	s := New(4)
	entry := entryFor("doc one")

	s.Put(entry)

	got, ok := s.Get(entry.Fingerprint)
	require.True(t, ok)
	assert.Same(t, entry, got)
	assert.True(t, got.Facts.Skills.Contains("python"))
}

func TestStore_GetMiss(t *testing.T) {
	s := New(4)

	got, ok := s.Get(Fingerprint("never stored"))
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestStore_UpdateExisting(t *testing.T) {
	s := New(4)
	first := entryFor("same doc")
	s.Put(first)

	replacement := &types.CacheEntry{
		Fingerprint:    first.Fingerprint,
		NormalizedText: "normalized differently",
		Facts:          types.NewFactSet(),
	}
	s.Put(replacement)

	got, ok := s.Get(first.Fingerprint)
	require.True(t, ok)
	assert.Same(t, replacement, got)
	assert.Equal(t, 1, s.Len())
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	s := New(2)
	a := entryFor("doc a")
	b := entryFor("doc b")
	c := entryFor("doc c")

	s.Put(a)
	s.Put(b)

	// Touch a so b becomes the eviction candidate.
	_, ok := s.Get(a.Fingerprint)
	require.True(t, ok)

	s.Put(c)

	_, ok = s.Get(b.Fingerprint)
	assert.False(t, ok)
	_, ok = s.Get(a.Fingerprint)
	assert.True(t, ok)
	_, ok = s.Get(c.Fingerprint)
	assert.True(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestStore_IgnoresNilAndEmpty(t *testing.T) {
	s := New(4)

	s.Put(nil)
	s.Put(&types.CacheEntry{})

	assert.Equal(t, 0, s.Len())
}

func TestStore_DefaultCapacity(t *testing.T) {
	s := New(0)

	for i := 0; i < DefaultCapacity+10; i++ {
		s.Put(entryFor(fmt.Sprintf("doc %d", i)))
	}

	assert.Equal(t, DefaultCapacity, s.Len())
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New(16)
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				text := fmt.Sprintf("doc %d-%d", n, j%4)
				s.Put(entryFor(text))
				s.Get(Fingerprint(text))
			}
		}(i)
	}

	wg.Wait()
	assert.LessOrEqual(t, s.Len(), 16)
}
