// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package item

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	cnserrors "github.com/NVIDIA/cicd-comparison-api/pkg/errors"
)

// ErrNotFound is the cause of every not-found error returned by a Store.
var ErrNotFound = errors.New("item not found")

// Store is the authoritative item collection.
type Store interface {
	// List returns all items in insertion order.
	List() []Item
	// Get returns the item with the given id.
	Get(id int64) (Item, error)
	// Create assigns the next id and stores a new item.
	Create(f Fields) Item
	// Update applies the non-nil fields of p.
	Update(id int64, p Patch) (Item, error)
	// Delete removes the item. Its id is never handed out again.
	Delete(id int64) error
}

// Option configures a MemoryStore.
type Option func(*MemoryStore)

// WithClock overrides the time source used for created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

// MemoryStore is an in-process Store. Ids start at 1, increase by one per
// create and are not reused within the lifetime of the store.
type MemoryStore struct {
	mu     sync.RWMutex
	items  map[int64]Item
	order  []int64
	lastID int64
	now    func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		items: make(map[int64]Item),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) List() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id].clone())
	}
	return out
}

func (s *MemoryStore) Get(id int64) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	it, ok := s.items[id]
	if !ok {
		return Item{}, notFound(id)
	}
	return it.clone(), nil
}

func (s *MemoryStore) Create(f Fields) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := Item{
		ID:          s.nextID(),
		Name:        f.Name,
		Description: f.Description,
		CreatedAt:   s.now().UTC(),
	}
	s.items[it.ID] = it
	s.order = append(s.order, it.ID)
	itemsStored.Set(float64(len(s.items)))

	return it.clone()
}

// Update stamps updated_at only when a supplied field differs from the
// stored value; a no-op patch returns the item unchanged.
func (s *MemoryStore) Update(id int64, p Patch) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return Item{}, notFound(id)
	}

	changed := false
	if p.Name != nil && *p.Name != it.Name {
		it.Name = *p.Name
		changed = true
	}
	if p.Description != nil && *p.Description != it.Description {
		it.Description = *p.Description
		changed = true
	}

	if changed {
		now := s.now().UTC()
		it.UpdatedAt = &now
		s.items[id] = it
	}
	return it.clone(), nil
}

func (s *MemoryStore) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return notFound(id)
	}
	delete(s.items, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	itemsStored.Set(float64(len(s.items)))
	return nil
}

// nextID must be called with mu held for writing.
func (s *MemoryStore) nextID() int64 {
	s.lastID++
	return s.lastID
}

func notFound(id int64) error {
	return cnserrors.WrapWithContext(cnserrors.ErrCodeNotFound,
		fmt.Sprintf("Item ID %d not found", id), ErrNotFound,
		map[string]any{"id": id})
}
