// Package memory provides an in-process Store used by tests and by the
// API server when no MongoDB DSN is configured.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/charan-kumar-kamasani/authentik/internal/formconfig"
)

// Store keeps configuration documents in memory. Multiple documents are
// representable so that the ambiguity fault path stays testable.
type Store struct {
	mu   sync.Mutex
	docs []formconfig.FormConfig
}

func NewStore() *Store { return &Store{} }

// Put inserts a raw document, bypassing upsert semantics. Test helper.
func (s *Store) Put(cfg formconfig.FormConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = append(s.docs, cfg)
}

// Len reports the number of persisted documents. Test helper for
// asserting that synthesized defaults are never written.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

func (s *Store) ActiveGlobal(ctx context.Context) (formconfig.FormConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var found []formconfig.FormConfig
	for _, d := range s.docs {
		if d.IsGlobal && d.IsActive {
			found = append(found, d)
		}
	}
	switch {
	case len(found) == 0:
		return formconfig.DefaultConfig(), nil
	case len(found) > 1:
		return formconfig.FormConfig{}, formconfig.ErrAmbiguousConfig
	}
	return found[0], nil
}

func (s *Store) FindGlobal(ctx context.Context) (formconfig.FormConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.docs {
		if d.IsGlobal {
			return d, nil
		}
	}
	return formconfig.FormConfig{}, formconfig.ErrNotFound
}

func (s *Store) UpsertGlobal(ctx context.Context, patch formconfig.FormConfig, actor string) (formconfig.FormConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	for i, d := range s.docs {
		if !d.IsGlobal {
			continue
		}
		if patch.Version != 0 && patch.Version != d.Version {
			return formconfig.FormConfig{}, formconfig.ErrVersionConflict
		}
		d.FormName = patch.FormName
		d.Description = patch.Description
		d.CustomFields = patch.CustomFields
		d.Variants = patch.Variants
		d.StaticFields = patch.StaticFields
		d.UpdatedBy = actor
		d.UpdatedAt = now
		d.Version++
		s.docs[i] = d
		return d, nil
	}
	doc := patch
	doc.ID = "global"
	doc.IsGlobal = true
	doc.IsActive = true
	doc.Version = 1
	doc.CreatedBy = actor
	doc.UpdatedBy = actor
	doc.CreatedAt = now
	doc.UpdatedAt = now
	s.docs = append(s.docs, doc)
	return doc, nil
}
