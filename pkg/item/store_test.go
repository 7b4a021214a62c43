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
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cnserrors "github.com/NVIDIA/cicd-comparison-api/pkg/errors"
)

// fakeClock returns a clock that advances by one second on every call.
func fakeClock() func() time.Time {
	var mu sync.Mutex
	t := time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t = t.Add(time.Second)
		return t
	}
}

func strPtr(s string) *string { return &s }

func TestMemoryStore_CreateAssignsSequentialIDs(t *testing.T) {
	s := NewMemoryStore(WithClock(fakeClock()))

	for want := int64(1); want <= 3; want++ {
		it := s.Create(Fields{Name: fmt.Sprintf("item-%d", want), Description: "d"})
		assert.Equal(t, want, it.ID)
		assert.Nil(t, it.UpdatedAt)
		assert.False(t, it.CreatedAt.IsZero())
		assert.Equal(t, time.UTC, it.CreatedAt.Location())
	}
}

func TestMemoryStore_IDsAreNotReused(t *testing.T) {
	s := NewMemoryStore()

	first := s.Create(Fields{Name: "a", Description: "a"})
	second := s.Create(Fields{Name: "b", Description: "b"})
	require.NoError(t, s.Delete(second.ID))
	require.NoError(t, s.Delete(first.ID))

	third := s.Create(Fields{Name: "c", Description: "c"})
	assert.Equal(t, int64(3), third.ID)
}

func TestMemoryStore_ListPreservesInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	assert.Empty(t, s.List())

	for _, name := range []string{"one", "two", "three", "four"} {
		s.Create(Fields{Name: name, Description: "d"})
	}
	require.NoError(t, s.Delete(2))

	var names []string
	for _, it := range s.List() {
		names = append(names, it.Name)
	}
	assert.Equal(t, []string{"one", "three", "four"}, names)
}

func TestMemoryStore_Get(t *testing.T) {
	s := NewMemoryStore()
	created := s.Create(Fields{Name: "A", Description: "B"})

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.Get(999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var se *cnserrors.StructuredError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, cnserrors.ErrCodeNotFound, se.Code)
	assert.Contains(t, se.Message, "999")
	assert.Equal(t, int64(999), se.Context["id"])
}

func TestMemoryStore_Update(t *testing.T) {
	tests := []struct {
		name        string
		patch       Patch
		wantName    string
		wantDesc    string
		wantStamped bool
	}{
		{
			name:        "name only",
			patch:       Patch{Name: strPtr("X")},
			wantName:    "X",
			wantDesc:    "orig",
			wantStamped: true,
		},
		{
			name:        "description only",
			patch:       Patch{Description: strPtr("new")},
			wantName:    "A",
			wantDesc:    "new",
			wantStamped: true,
		},
		{
			name:        "both",
			patch:       Patch{Name: strPtr("X"), Description: strPtr("Y")},
			wantName:    "X",
			wantDesc:    "Y",
			wantStamped: true,
		},
		{
			name:     "empty patch",
			patch:    Patch{},
			wantName: "A",
			wantDesc: "orig",
		},
		{
			name:     "same values",
			patch:    Patch{Name: strPtr("A"), Description: strPtr("orig")},
			wantName: "A",
			wantDesc: "orig",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewMemoryStore(WithClock(fakeClock()))
			created := s.Create(Fields{Name: "A", Description: "orig"})

			got, err := s.Update(created.ID, tt.patch)
			require.NoError(t, err)

			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantDesc, got.Description)
			assert.Equal(t, created.CreatedAt, got.CreatedAt)
			if !tt.wantStamped {
				assert.Nil(t, got.UpdatedAt)
				return
			}
			require.NotNil(t, got.UpdatedAt)
			assert.True(t, got.UpdatedAt.After(got.CreatedAt))

			stored, err := s.Get(created.ID)
			require.NoError(t, err)
			assert.Equal(t, got, stored)
		})
	}
}

func TestMemoryStore_UpdateRefreshesTimestamp(t *testing.T) {
	s := NewMemoryStore(WithClock(fakeClock()))
	created := s.Create(Fields{Name: "A", Description: "B"})

	first, err := s.Update(created.ID, Patch{Name: strPtr("X")})
	require.NoError(t, err)
	second, err := s.Update(created.ID, Patch{Name: strPtr("Y")})
	require.NoError(t, err)

	require.NotNil(t, first.UpdatedAt)
	require.NotNil(t, second.UpdatedAt)
	assert.True(t, second.UpdatedAt.After(*first.UpdatedAt))
}

func TestMemoryStore_UpdateMissing(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Update(7, Patch{Name: strPtr("X")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_Delete(t *testing.T) {
	s := NewMemoryStore()
	created := s.Create(Fields{Name: "A", Description: "B"})

	require.NoError(t, s.Delete(created.ID))
	_, err := s.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(created.ID), ErrNotFound)
	assert.Empty(t, s.List())
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore(WithClock(fakeClock()))
	created := s.Create(Fields{Name: "A", Description: "B"})
	updated, err := s.Update(created.ID, Patch{Name: strPtr("X")})
	require.NoError(t, err)

	*updated.UpdatedAt = time.Time{}
	updated.Name = "mutated"

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", got.Name)
	assert.False(t, got.UpdatedAt.IsZero())

	list := s.List()
	list[0].Name = "mutated"
	got, err = s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", got.Name)
}

func TestMemoryStore_ConcurrentCreate(t *testing.T) {
	s := NewMemoryStore()

	const workers = 16
	const perWorker = 50

	var wg sync.WaitGroup
	ids := make(chan int64, workers*perWorker)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				it := s.Create(Fields{Name: "n", Description: "d"})
				ids <- it.ID
				_ = s.List()
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool, workers*perWorker)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers*perWorker)
	assert.Len(t, s.List(), workers*perWorker)
	for id := int64(1); id <= workers*perWorker; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}
}

func TestMemoryStore_ConcurrentUpdateDelete(t *testing.T) {
	s := NewMemoryStore()

	const n = 64
	for i := 0; i < n; i++ {
		s.Create(Fields{Name: "n", Description: "d"})
	}

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := int64(1); id <= n; id++ {
				name := fmt.Sprintf("w%d-%d", w, id)
				it, err := s.Update(id, Patch{Name: &name})
				if err != nil {
					assert.ErrorIs(t, err, ErrNotFound)
					continue
				}
				assert.Equal(t, id, it.ID)
				assert.NotNil(t, it.UpdatedAt)
			}
		}()
	}
	for w := 0; w < 2; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := int64(2); id <= n; id += 2 {
				if err := s.Delete(id); err != nil {
					assert.ErrorIs(t, err, ErrNotFound)
					continue
				}
				for _, it := range s.List() {
					assert.NotEqual(t, id, it.ID, "deleted id %d still listed", id)
				}
			}
		}()
	}
	wg.Wait()

	list := s.List()
	require.Len(t, list, n/2)
	for i, it := range list {
		assert.Equal(t, int64(2*i+1), it.ID)
		_, err := s.Get(it.ID + 1)
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func storedGauge(t *testing.T) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == "cicd_items_stored" {
			require.Len(t, mf.GetMetric(), 1)
			return mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatal("cicd_items_stored not registered")
	return 0
}

func TestMemoryStore_StoredGauge(t *testing.T) {
	s := NewMemoryStore()
	a := s.Create(Fields{Name: "A", Description: "a"})
	s.Create(Fields{Name: "B", Description: "b"})
	assert.Equal(t, float64(2), storedGauge(t))

	require.NoError(t, s.Delete(a.ID))
	assert.Equal(t, float64(1), storedGauge(t))

	require.Error(t, s.Delete(a.ID))
	assert.Equal(t, float64(1), storedGauge(t))
}

func TestWithClock_IgnoresNil(t *testing.T) {
	s := NewMemoryStore(WithClock(nil))
	it := s.Create(Fields{Name: "A", Description: "B"})
	assert.False(t, it.CreatedAt.IsZero())
}

func TestPatch_IsEmpty(t *testing.T) {
	assert.True(t, Patch{}.IsEmpty())
	assert.False(t, Patch{Name: strPtr("")}.IsEmpty())
	assert.False(t, Patch{Description: strPtr("d")}.IsEmpty())
}

func BenchmarkMemoryStore_Create(b *testing.B) {
	s := NewMemoryStore()
	f := Fields{Name: "bench", Description: "bench"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Create(f)
	}
}

func BenchmarkMemoryStore_Get(b *testing.B) {
	s := NewMemoryStore()
	for i := 0; i < 1000; i++ {
		s.Create(Fields{Name: "bench", Description: "bench"})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Get(int64(i%1000) + 1); err != nil && !errors.Is(err, ErrNotFound) {
			b.Fatal(err)
		}
	}
}
