package storage

import (
	"context"
	"fmt"
	"sync"

	"hearth/internal/domain"
	"hearth/pkg/platform/sentinel"
	"hearth/pkg/requestcontext"
)

// InMemoryStore keeps one map per entity kind, scoped to process lifetime.
// It is intentionally dumb: no foreign-key or uniqueness enforcement beyond
// duplicate identity. Those rules live in the service layer, which is why
// they hold for this backend and the database-backed one alike.
//
// Records are cloned on the way in and on the way out so callers never
// alias the stored copy.
type InMemoryStore struct {
	mu      sync.RWMutex
	txMu    sync.Mutex
	records map[domain.Kind]map[string]domain.Record
}

func NewInMemoryStore() *InMemoryStore {
	records := make(map[domain.Kind]map[string]domain.Record)
	for _, kind := range domain.Kinds() {
		records[kind] = make(map[string]domain.Record)
	}
	return &InMemoryStore{records: records}
}

func (s *InMemoryStore) GetAll(_ context.Context, kind domain.Kind) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byID, ok := s.records[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	all := make([]domain.Record, 0, len(byID))
	for _, record := range byID {
		all = append(all, record.Clone())
	}
	return all, nil
}

func (s *InMemoryStore) Get(_ context.Context, kind domain.Kind, id string) (domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byID, ok := s.records[kind]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
	record, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("get %s %s: %w", kind, id, sentinel.ErrNotFound)
	}
	return record.Clone(), nil
}

func (s *InMemoryStore) Save(_ context.Context, record domain.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	byID, ok := s.records[record.RecordKind()]
	if !ok {
		return fmt.Errorf("unknown kind %q", record.RecordKind())
	}
	if _, exists := byID[record.RecordID()]; exists {
		return fmt.Errorf("save %s %s: %w", record.RecordKind(), record.RecordID(), sentinel.ErrConflict)
	}
	byID[record.RecordID()] = record.Clone()
	return nil
}

func (s *InMemoryStore) Update(ctx context.Context, record domain.Record) (domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byID, ok := s.records[record.RecordKind()]
	if !ok {
		return nil, fmt.Errorf("unknown kind %q", record.RecordKind())
	}
	if _, exists := byID[record.RecordID()]; !exists {
		return nil, fmt.Errorf("update %s %s: %w", record.RecordKind(), record.RecordID(), sentinel.ErrNotFound)
	}
	stored := record.Clone()
	stored.Touch(requestcontext.Now(ctx))
	byID[record.RecordID()] = stored
	return stored.Clone(), nil
}

func (s *InMemoryStore) Delete(_ context.Context, record domain.Record) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	byID, ok := s.records[record.RecordKind()]
	if !ok {
		return false, fmt.Errorf("unknown kind %q", record.RecordKind())
	}
	if _, exists := byID[record.RecordID()]; !exists {
		return false, nil
	}
	delete(byID, record.RecordID())
	return true, nil
}

// Reload is a no-op; process memory has nothing to resync.
func (s *InMemoryStore) Reload(context.Context) error { return nil }

// RunInTx serializes transactional sections with a dedicated mutex. A
// uniqueness scan followed by a save inside fn is atomic with respect to
// every other RunInTx section; the per-record mutex alone would let two
// concurrent creates both pass the scan.
func (s *InMemoryStore) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}
