package store

import (
	"encoding/binary"
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys. Solved positions are keyed by their hash under the
// solvePrefix; run history is a single JSON blob under keyRunHistory.
const (
	solvePrefix   = "solve/"
	keyRunHistory = "run_history"
)

// SolveRecord is a cached solver result for a single position hash.
// It durably extends the in-process TranspositionTable: the table
// only bounds a score to one signed byte and is discarded at process
// exit, while a SolveRecord keeps the exact score and recommended
// column across runs.
type SolveRecord struct {
	Score    int       `json:"score"`
	Column   int       `json:"column"`
	SolvedAt time.Time `json:"solved_at"`
}

// RunRecord summarizes one benchmark harness run.
type RunRecord struct {
	File        string        `json:"file"`
	Positions   int           `json:"positions"`
	Mismatches  int           `json:"mismatches"`
	Duration    time.Duration `json:"duration"`
	RanAt       time.Time     `json:"ran_at"`
	AverageNode uint64        `json:"average_nodes"`
}

// RunHistory is the persisted list of past benchmark runs.
type RunHistory struct {
	Runs []RunRecord `json:"runs"`
}

// Store wraps a BadgerDB handle used to persist solved positions and
// benchmark run history across CLI invocations.
type Store struct {
	db *badger.DB
}

// Open opens (creating if absent) the BadgerDB database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func solveKey(hash uint64) []byte {
	key := make([]byte, len(solvePrefix)+8)
	copy(key, solvePrefix)
	binary.BigEndian.PutUint64(key[len(solvePrefix):], hash)
	return key
}

// SaveSolve persists the solver's result for the position with the
// given hash.
func (s *Store) SaveSolve(hash uint64, rec SolveRecord) error {
	rec.SolvedAt = time.Now()

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(solveKey(hash), data)
	})
}

// LoadSolve returns a previously cached result for hash, if any.
func (s *Store) LoadSolve(hash uint64) (SolveRecord, bool, error) {
	var rec SolveRecord
	found := false

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(solveKey(hash))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})

	return rec, found, err
}

// SaveRunHistory appends run to the persisted benchmark run history.
func (s *Store) SaveRunHistory(run RunRecord) error {
	history, err := s.LoadRunHistory()
	if err != nil {
		return err
	}

	history.Runs = append(history.Runs, run)

	data, err := json.Marshal(history)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyRunHistory), data)
	})
}

// LoadRunHistory loads the persisted benchmark run history, returning
// an empty history if none has been recorded yet.
func (s *Store) LoadRunHistory() (RunHistory, error) {
	var history RunHistory

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyRunHistory))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &history)
		})
	})

	return history, err
}
