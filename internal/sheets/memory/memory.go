// Package memory is an in-process TablePublisher used in tests and when no
// spreadsheet target is configured.
package memory

import (
	"context"
	"fmt"
	"sync"

	"pendingboard/internal/core"
	ports "pendingboard/internal/sheets"
)

type Store struct {
	mu     sync.Mutex
	tables []core.Table
}

var _ ports.TablePublisher = (*Store)(nil)

func New() *Store {
	return &Store{}
}

// PublishTable records the table and returns a synthetic reference.
func (s *Store) PublishTable(_ context.Context, t core.Table) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = append(s.tables, t)
	return fmt.Sprintf("mem:%d", len(s.tables)), nil
}

// Published returns copies of everything published so far.
func (s *Store) Published() []core.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Table, len(s.tables))
	copy(out, s.tables)
	return out
}
