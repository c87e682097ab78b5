// Copyright 2019 - 2025 The Samply Community
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

package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/samply/qmctl/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openInMemory(t *testing.T) *Store {
	s, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKey(t *testing.T) {
	type params struct{ StepSize float64 }

	a, err := Key("double-well", 0, params{0.1})
	require.NoError(t, err)
	b, err := Key("double-well", 0, params{0.1})
	require.NoError(t, err)
	c, err := Key("double-well", 0, params{0.2})
	require.NoError(t, err)
	d, err := Key("double-well", 1, params{0.1})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.Contains(t, string(a), "result/double-well/0/")

	_, err = Key("x", 0, make(chan int))
	assert.Error(t, err)
}

func TestNewRecord(t *testing.T) {
	record, err := NewRecord(1.5, 12, []physics.Point{{X: 0, Psi: 1}})
	require.NoError(t, err)

	_, err = uuid.Parse(record.RunID)
	assert.NoError(t, err)
	assert.False(t, record.SolvedAt.IsZero())
	assert.Equal(t, 12, record.Iterations)
}

func TestStore(t *testing.T) {
	s := openInMemory(t)
	key := []byte("result/test/0/abc")

	t.Run("Miss", func(t *testing.T) {
		_, err := s.Get(key)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("PutGet", func(t *testing.T) {
		record, err := NewRecord(4.93, 42, []physics.Point{{X: -0.5, Psi: 0}, {X: 0, Psi: 1}})
		require.NoError(t, err)
		require.NoError(t, s.Put(key, record))

		got, err := s.Get(key)
		require.NoError(t, err)
		assert.Equal(t, record.RunID, got.RunID)
		assert.Equal(t, record.Energy, got.Energy)
		assert.Equal(t, record.Points, got.Points)
		assert.True(t, record.SolvedAt.Equal(got.SolvedAt))
	})

	t.Run("Keys", func(t *testing.T) {
		require.NoError(t, s.Put([]byte("result/test/1/def"), Record{}))
		require.NoError(t, s.Put([]byte("other/key"), Record{}))

		keys, err := s.Keys([]byte("result/"))
		require.NoError(t, err)
		assert.Equal(t, [][]byte{[]byte("result/test/0/abc"), []byte("result/test/1/def")}, keys)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, s.Delete(key))
		_, err := s.Get(key)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	key := []byte("result/persisted/0/1")

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Put(key, Record{Energy: 1.5}))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()
	record, err := s.Get(key)
	require.NoError(t, err)
	assert.Equal(t, 1.5, record.Energy)
}
