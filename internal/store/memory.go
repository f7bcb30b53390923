package store

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/roomly-app/backend/internal/apperrors"
)

// MemoryStore is an in-memory Store with the same conditional-write and
// set-delta semantics as MongoStore. It backs tests and ephemeral runs.
// Items round-trip through bson so stored state never aliases caller memory.
type MemoryStore struct {
	mu     sync.Mutex
	tables map[string]map[string]bson.M
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{tables: make(map[string]map[string]bson.M)}
}

var _ Store = (*MemoryStore)(nil)

func toDoc(item interface{}) (bson.M, error) {
	raw, err := bson.Marshal(item)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func fromDoc(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func (s *MemoryStore) table(name string) map[string]bson.M {
	t, ok := s.tables[name]
	if !ok {
		t = make(map[string]bson.M)
		s.tables[name] = t
	}
	return t
}

func (s *MemoryStore) Get(ctx context.Context, table, key string, out interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.table(table)[key]
	if !ok {
		return apperrors.NotFound("Item not found")
	}
	if err := fromDoc(doc, out); err != nil {
		return apperrors.Unavailable("Store read failed", err)
	}
	return nil
}

func (s *MemoryStore) Put(ctx context.Context, table, key string, item interface{}, failIfExists bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(table)
	if _, exists := t[key]; exists && failIfExists {
		return apperrors.Conflict("Item already exists")
	}
	doc, err := toDoc(item)
	if err != nil {
		return apperrors.Unavailable("Store write failed", err)
	}
	t[key] = doc
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, table, key string, mut Mutation, failIfAbsent bool) error {
	if mut.empty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table(table)
	doc, exists := t[key]
	guarded := failIfAbsent || mut.Require != ""
	if !exists {
		if guarded {
			return apperrors.NotFound("Item not found")
		}
		doc = bson.M{"_id": key}
		t[key] = doc
	}
	if mut.Require != "" {
		if _, ok := doc[mut.Require]; !ok {
			return apperrors.NotFound("Item not found")
		}
	}

	for field, value := range mut.Set {
		doc[field] = value
	}
	for _, field := range mut.Unset {
		delete(doc, field)
	}
	for field, member := range mut.Add {
		doc[field] = addToSet(asArray(doc[field]), member)
	}
	for field, member := range mut.Remove {
		if existing, ok := doc[field]; ok {
			doc[field] = pull(asArray(existing), member)
		}
	}
	for field, member := range mut.Push {
		doc[field] = append(asArray(doc[field]), member)
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, table, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.table(table), key)
	return nil
}

func asArray(value interface{}) bson.A {
	arr, ok := value.(bson.A)
	if !ok {
		return bson.A{}
	}
	return arr
}

func addToSet(arr bson.A, member string) bson.A {
	for _, existing := range arr {
		if existing == member {
			return arr
		}
	}
	return append(arr, member)
}

func pull(arr bson.A, member string) bson.A {
	kept := make(bson.A, 0, len(arr))
	for _, existing := range arr {
		if existing != member {
			kept = append(kept, existing)
		}
	}
	return kept
}
