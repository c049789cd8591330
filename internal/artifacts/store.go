// Package artifacts keeps rendered media (generated images, upload previews,
// caption and summary files) addressable by id so the page can show and
// download them. It is the only cached state of the UI; Purge backs the
// reset control.
package artifacts

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Defaults for NewStore.
const (
	DefaultCapacity = 256
	DefaultTTL      = time.Hour
)

// Artifact is one stored file.
type Artifact struct {
	ID       string
	FileName string
	MIMEType string
	Data     []byte
	Created  time.Time
}

// Store is a size- and age-bounded artifact cache, safe for concurrent use.
type Store struct {
	lru *expirable.LRU[string, Artifact]
}

// NewStore creates a store. Non-positive values fall back to the defaults.
func NewStore(capacity int, ttl time.Duration) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{lru: expirable.NewLRU[string, Artifact](capacity, nil, ttl)}
}

// Put stores data and returns the new artifact.
func (s *Store) Put(fileName, mimeType string, data []byte) Artifact {
	a := Artifact{
		ID:       uuid.NewString(),
		FileName: fileName,
		MIMEType: mimeType,
		Data:     data,
		Created:  time.Now(),
	}
	s.lru.Add(a.ID, a)
	return a
}

// Get returns the artifact with the given id.
func (s *Store) Get(id string) (Artifact, bool) {
	return s.lru.Get(id)
}

// Len returns the number of live artifacts.
func (s *Store) Len() int {
	return s.lru.Len()
}

// Purge drops every artifact.
func (s *Store) Purge() {
	s.lru.Purge()
}
