// Package memory implements the repository interfaces on mutex-guarded
// in-process maps. State lives for the lifetime of the process; there is
// no persistence layer behind it.
package memory

import (
	"sort"
	"sync"
)

// table is a map keyed by a monotonic id counter. Ids start at 1 and are
// never reused after deletion. Rows are stored and returned by value so
// callers never share memory with the table.
type table[T any] struct {
	mu     sync.RWMutex
	rows   map[int64]T
	nextID int64
}

func newTable[T any]() *table[T] {
	return &table[T]{
		rows:   make(map[int64]T),
		nextID: 1,
	}
}

// create assigns the next id under the lock, so concurrent creates can
// never observe the same id. fill receives the fresh id and returns the
// row to store.
func (t *table[T]) create(fill func(id int64) T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := t.nextID
	t.nextID++

	row := fill(id)
	t.rows[id] = row
	return row
}

func (t *table[T]) get(id int64) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	row, ok := t.rows[id]
	return row, ok
}

// update replaces the stored row. Last write wins; there is no version
// check.
func (t *table[T]) update(id int64, row T) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.rows[id] = row
	return true
}

func (t *table[T]) delete(id int64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

// list returns all rows in ascending id order.
func (t *table[T]) list() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := make([]int64, 0, len(t.rows))
	for id := range t.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rows := make([]T, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, t.rows[id])
	}
	return rows
}

func (t *table[T]) count() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
