// Package cache provides a concurrency-safe, bounded store mapping document
// fingerprints to previously extracted fact sets.
//
// Repeated calls presenting byte-identical source text hit the cache and
// skip re-extraction. Eviction is LRU with a fixed capacity so the store
// cannot grow without bound over the process lifetime.
package cache

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"sync"

	"github.com/sanaai/job-assistant/internal/types"
)

// DefaultCapacity is the default maximum number of cached documents.
const DefaultCapacity = 128

// Fingerprint returns the content-derived identifier of a raw document.
func Fingerprint(rawText string) string {
	sum := sha256.Sum256([]byte(rawText))
	return hex.EncodeToString(sum[:])
}

// Store is a mutex-guarded LRU cache of document metadata.
type Store struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
}

// New creates a Store with the given capacity. Non-positive capacities
// fall back to DefaultCapacity.
func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		capacity: capacity,
		entries:  make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Get returns the cached entry for a fingerprint, marking it recently used.
func (s *Store) Get(fingerprint string) (*types.CacheEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.entries[fingerprint]
	if !ok {
		return nil, false
	}
	s.order.MoveToFront(elem)
	return elem.Value.(*types.CacheEntry), true
}

// Put stores an entry under its fingerprint, evicting the least recently
// used entry when the store is full.
func (s *Store) Put(entry *types.CacheEntry) {
	if entry == nil || entry.Fingerprint == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.entries[entry.Fingerprint]; ok {
		elem.Value = entry
		s.order.MoveToFront(elem)
		return
	}

	s.entries[entry.Fingerprint] = s.order.PushFront(entry)
	if s.order.Len() > s.capacity {
		oldest := s.order.Back()
		s.order.Remove(oldest)
		delete(s.entries, oldest.Value.(*types.CacheEntry).Fingerprint)
	}
}

// Len returns the number of cached entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order.Len()
}
