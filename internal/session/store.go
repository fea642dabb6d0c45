// Package session remembers which featured item was on screen between runs.
package session

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	objectKey  = "carousel"
	propertyID = "last"
)

// Record is the persisted carousel position.
type Record struct {
	ItemID string `yaml:"itemId"`
	// Index is the original slide index, used when the item is gone.
	Index int `yaml:"index"`
}

// Store persists a Record through gdata. A nil manager keeps it in memory
// only.
type Store struct {
	m   *gdata.Manager
	rec Record
}

// Open creates a store in the per-user data directory of appName.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open data dir: %w", err)
	}
	s := NewStore(m)
	if err := s.Load(); err != nil {
		log.Printf("session: %v (starting fresh)", err)
	}
	return s, nil
}

// NewStore wraps m without loading anything.
func NewStore(m *gdata.Manager) *Store {
	return &Store{m: m}
}

// Load reads the saved record. A missing record is not an error.
func (s *Store) Load() error {
	if s.m == nil || !s.m.ObjectPropExists(objectKey, propertyID) {
		return nil
	}
	data, err := s.m.LoadObjectProp(objectKey, propertyID)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode session: %w", err)
	}
	s.rec = rec
	return nil
}

// Last returns the most recent record.
func (s *Store) Last() Record { return s.rec }

// Save records rec and writes it out.
func (s *Store) Save(rec Record) error {
	s.rec = rec
	if s.m == nil {
		return nil
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.m.SaveObjectProp(objectKey, propertyID, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// StartIndex resolves the saved record against the ids of the current
// slides. The saved item wins; otherwise the saved index if it is still in
// range; otherwise 0.
func (s *Store) StartIndex(ids []string) int {
	if s.rec.ItemID != "" {
		for i, id := range ids {
			if id == s.rec.ItemID {
				return i
			}
		}
	}
	if s.rec.Index >= 0 && s.rec.Index < len(ids) {
		return s.rec.Index
	}
	return 0
}
