package docstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type memoryCollection struct {
	order []string
	docs  map[string]map[string]any
}

type memorySubscriber struct {
	notify chan struct{}
}

// MemoryStore keeps collections in process. Documents are listed in
// insertion order. Used for tests and STORE_DRIVER=memory.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memoryCollection
	subscribers map[string]map[*memorySubscriber]struct{}
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string]*memoryCollection),
		subscribers: make(map[string]map[*memorySubscriber]struct{}),
	}
}

func (s *MemoryStore) collection(name string) *memoryCollection {
	c, ok := s.collections[name]
	if !ok {
		c = &memoryCollection{docs: make(map[string]map[string]any)}
		s.collections[name] = c
	}
	return c
}

func (s *MemoryStore) List(ctx context.Context, collection string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collection]
	if !ok {
		return []Document{}, nil
	}
	docs := make([]Document, 0, len(c.order))
	for _, id := range c.order {
		docs = append(docs, Document{ID: id, Fields: Clone(c.docs[id])})
	}
	return docs, nil
}

func (s *MemoryStore) ListWhere(ctx context.Context, collection, field, value string) ([]Document, error) {
	docs, err := s.List(ctx, collection)
	if err != nil {
		return nil, err
	}
	matched := make([]Document, 0, len(docs))
	for _, doc := range docs {
		if v, ok := doc.Fields[field].(string); ok && v == value {
			matched = append(matched, doc)
		}
	}
	return matched, nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[collection]
	if !ok {
		return nil, ErrNotFound
	}
	fields, ok := c.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &Document{ID: id, Fields: Clone(fields)}, nil
}

func (s *MemoryStore) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	id := uuid.NewString()

	s.mu.Lock()
	c := s.collection(collection)
	c.order = append(c.order, id)
	c.docs[id] = Clone(fields)
	s.mu.Unlock()

	s.notify(collection)
	return id, nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	c, ok := s.collections[collection]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	doc, ok := c.docs[id]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	for k, v := range Clone(fields) {
		doc[k] = v
	}
	s.mu.Unlock()

	s.notify(collection)
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	c, ok := s.collections[collection]
	if !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	if _, ok := c.docs[id]; !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	s.mu.Unlock()

	s.notify(collection)
	return nil
}

func (s *MemoryStore) Count(ctx context.Context, collection string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.collections[collection]; ok {
		return int64(len(c.order)), nil
	}
	return 0, nil
}

// Subscribe delivers snapshots from a dedicated goroutine. Bursts of
// writes coalesce into a single re-scan.
func (s *MemoryStore) Subscribe(ctx context.Context, collection string, onSnapshot func([]Document)) (Subscription, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sub := &memorySubscriber{notify: make(chan struct{}, 1)}
	sub.notify <- struct{}{}

	s.mu.Lock()
	if s.subscribers[collection] == nil {
		s.subscribers[collection] = make(map[*memorySubscriber]struct{})
	}
	s.subscribers[collection][sub] = struct{}{}
	s.mu.Unlock()

	listener, lctx := NewListener(ctx)
	go func() {
		err := s.deliver(lctx, collection, sub, onSnapshot)

		s.mu.Lock()
		delete(s.subscribers[collection], sub)
		s.mu.Unlock()

		listener.Finish(err)
	}()
	return listener, nil
}

func (s *MemoryStore) deliver(ctx context.Context, collection string, sub *memorySubscriber, onSnapshot func([]Document)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-sub.notify:
			docs, err := s.List(ctx, collection)
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			onSnapshot(docs)
		}
	}
}

func (s *MemoryStore) notify(collection string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for sub := range s.subscribers[collection] {
		select {
		case sub.notify <- struct{}{}:
		default:
		}
	}
}

// Subscribers reports live listeners on a collection.
func (s *MemoryStore) Subscribers(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers[collection])
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close(ctx context.Context) error {
	return nil
}
