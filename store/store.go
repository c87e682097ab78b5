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

// Package store caches solved eigenstates on disk, so that repeated runs of
// an unchanged scenario skip the solvers.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samply/qmctl/physics"
)

// ErrNotFound is returned by Get for keys without a record.
var ErrNotFound = errors.New("result not found")

// Record is a cached solver result.
type Record struct {
	RunID      string          `json:"runId"`
	SolvedAt   time.Time       `json:"solvedAt"`
	Energy     float64         `json:"energy"`
	Iterations int             `json:"iterations"`
	Points     []physics.Point `json:"points"`
}

// NewRecord creates a record with a fresh run id.
func NewRecord(energy float64, iterations int, points []physics.Point) (Record, error) {
	runID, err := uuid.NewRandom()
	if err != nil {
		return Record{}, err
	}
	return Record{
		RunID:      runID.String(),
		SolvedAt:   time.Now().UTC(),
		Energy:     energy,
		Iterations: iterations,
		Points:     points,
	}, nil
}

// Key derives the cache key of one series of a scenario. Parameters has to
// be JSON serializable. Any change of it results in a new key.
func Key(scenario string, series int, parameters interface{}) ([]byte, error) {
	b, err := json.Marshal(parameters)
	if err != nil {
		return nil, fmt.Errorf("error while encoding the cache key parameters: %w", err)
	}
	return []byte(fmt.Sprintf("result/%s/%d/%016x", scenario, series, xxhash.Sum64(b))), nil
}

type Store struct {
	db *badger.DB
}

// Open opens or creates the store in dir.
func Open(dir string) (*Store, error) {
	return open(badger.DefaultOptions(dir).WithLogger(nil))
}

// OpenInMemory opens a store that keeps everything in memory.
func OpenInMemory() (*Store, error) {
	return open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
}

func open(opts badger.Options) (*Store, error) {
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("error while opening the result cache: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Put(key []byte, record Record) error {
	value, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (s *Store) Get(key []byte) (Record, error) {
	var record Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	return record, err
}

func (s *Store) Delete(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// Keys returns all keys with prefix in lexicographical order.
func (s *Store) Keys(prefix []byte) ([][]byte, error) {
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	return keys, err
}
