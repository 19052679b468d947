// Package table implements the server-side object table: a process-wide
// mapping from handle id to an owned value, plus a name-to-object export
// table (spec.md §3, §4.6). It is the Go counterpart of the kernel's
// resource tracker: a single mutex-guarded map, safe under concurrent
// handlers (spec.md §5).
package table

import (
	"sync"

	"github.com/google/uuid"
)

// Table is the server's process-wide object table. It owns every value
// referenced by a handle for the lifetime of the process; entries are
// removed only by Release. The zero value is not usable — use New.
type Table struct {
	mu      sync.RWMutex
	refs    map[uuid.UUID]any
	exports map[string]any
}

// New returns an empty Table.
func New() *Table {
	return &Table{
		refs:    make(map[uuid.UUID]any),
		exports: make(map[string]any),
	}
}

// Export binds name to value so a later Fetch(name) can hand out a fresh
// handle aliasing it. Exporting the same name twice replaces the binding.
func (t *Table) Export(name string, value any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.exports[name] = value
}

// Fetch looks up an exported name and returns a freshly minted id aliasing
// the bound object. Every call mints a new id even for the same name
// (spec.md §3 invariant d): multiple fetches alias the same underlying
// value under distinct ids.
func (t *Table) Fetch(name string) (uuid.UUID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	value, ok := t.exports[name]
	if !ok {
		return uuid.Nil, newUnknownNameError(name)
	}
	id := uuid.New()
	t.refs[id] = value
	return id, nil
}

// Store places value under a freshly minted id and returns it.
func (t *Table) Store(value any) uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()

	id := uuid.New()
	t.refs[id] = value
	return id
}

// Access returns the value bound to id, or an access-error if id is
// unknown (spec.md §3 invariant a).
func (t *Table) Access(id uuid.UUID) (any, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	value, ok := t.refs[id]
	if !ok {
		return nil, newUnknownIDError(id)
	}
	return value, nil
}

// Release removes id from the table, or returns an access-error if it was
// never present (spec.md §3 invariant b).
func (t *Table) Release(id uuid.UUID) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.refs[id]; !ok {
		return newUnknownIDError(id)
	}
	delete(t.refs, id)
	return nil
}

// Size returns the number of live references, for metrics and tests.
func (t *Table) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.refs)
}

// ExportCount returns the number of exported names, for metrics and tests.
func (t *Table) ExportCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.exports)
}
