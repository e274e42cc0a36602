// Package catalog provides concrete implementations of the Analyzer's
// Catalog collaborator: an in-memory map for tests, a Go-struct-derived
// adapter, and a live database/sql-backed adapter over three real
// drivers.
package catalog

import (
	"sync"

	"github.com/sqlplan/logicplan/pkg/compileerr"
	"github.com/sqlplan/logicplan/pkg/plan"
)

// Memory is an in-process catalog backed by a name -> *plan.Relation
// map. Grounded on the teacher's pkg/resource/memory in-process table
// store, stripped of MVCC and persistence since the Analyzer only ever
// needs a schema lookup.
type Memory struct {
	mu        sync.RWMutex
	relations map[string]*plan.Relation
}

// NewMemory builds an empty Memory catalog.
func NewMemory() *Memory {
	return &Memory{relations: make(map[string]*plan.Relation)}
}

// Register adds or replaces the schema for name.
func (m *Memory) Register(rel *plan.Relation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.relations[rel.Name] = rel
}

// LookupRelation implements analyzer.Catalog.
func (m *Memory) LookupRelation(name string) (*plan.Relation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rel, ok := m.relations[name]
	if !ok {
		return nil, compileerr.NewTableNotFound(name)
	}
	return rel, nil
}
