// Package state holds the live, in-memory overlay state. It is not a
// persistence layer: entries live for the lifetime of the process and
// are created lazily on first write.
package state

import (
	"sync"

	"github.com/shihan84/cg-overlay/internal/domain"
)

// Store maps an overlay id to its current content and its current
// template config. Both maps are last-write-wins single-slot stores; a
// single lock covers them, which also serializes the read-modify-write
// in SetVisible.
type Store struct {
	mu      sync.RWMutex
	data    map[string]domain.OverlayData
	configs map[string]domain.TemplateConfig
}

func NewStore() *Store {
	return &Store{
		data:    make(map[string]domain.OverlayData),
		configs: make(map[string]domain.TemplateConfig),
	}
}

// Content returns a copy of the current content for overlayID, or an
// empty OverlayData when nothing has been set. Never fails.
func (s *Store) Content(overlayID string) domain.OverlayData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[overlayID].Clone()
}

// SetContent fully replaces the stored content for overlayID. Callers
// wanting a partial update must read, merge, and write back themselves.
func (s *Store) SetContent(overlayID string, data domain.OverlayData) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[overlayID] = data.Clone()
}

// SetVisible flips the visibility field on the stored content and
// returns the resulting state. The read-modify-write happens under the
// write lock so concurrent toggles on the same overlay cannot lose a
// write.
func (s *Store) SetVisible(overlayID string, visible bool) domain.OverlayData {
	s.mu.Lock()
	defer s.mu.Unlock()
	data := s.data[overlayID].Clone()
	data[domain.FieldVisible] = visible
	s.data[overlayID] = data
	return data.Clone()
}

// Config returns the current template config for overlayID, or the
// system default when nothing has been set. Never fails.
func (s *Store) Config(overlayID string) domain.TemplateConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cfg, ok := s.configs[overlayID]; ok {
		return cfg
	}
	return domain.DefaultTemplateConfig()
}

// SetConfig fully replaces the stored template config for overlayID.
func (s *Store) SetConfig(overlayID string, cfg domain.TemplateConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.configs[overlayID] = cfg
}
