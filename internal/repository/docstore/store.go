// Package docstore is the document store client contract used by the
// typed repositories. Backends live in sibling packages.
package docstore

import (
	"context"
	"errors"
	"sync"
)

// Collection names used by the service.
const (
	Candidates  = "candidatos"
	Vacancies   = "vacantes"
	Assignments = "asignaciones"
)

var ErrNotFound = errors.New("docstore: document not found")

// Document is a store record: an id assigned by the store plus its fields.
type Document struct {
	ID     string
	Fields map[string]any
}

// Store is implemented by every backend. Update merges top-level fields;
// a nil value stores null.
type Store interface {
	List(ctx context.Context, collection string) ([]Document, error)
	// ListWhere returns documents whose top-level string field equals value.
	ListWhere(ctx context.Context, collection, field, value string) ([]Document, error)
	Get(ctx context.Context, collection, id string) (*Document, error)
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
	Count(ctx context.Context, collection string) (int64, error)
	// Subscribe calls onSnapshot with the full collection immediately and
	// after every change, until the subscription is cancelled or ctx ends.
	Subscribe(ctx context.Context, collection string, onSnapshot func([]Document)) (Subscription, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type Subscription interface {
	Cancel()
	Done() <-chan struct{}
	Err() error
}

// Listener is the Subscription shared by all backends. The backend's
// delivery goroutine calls finish when it returns.
type Listener struct {
	cancel   context.CancelFunc
	done     chan struct{}
	once     sync.Once
	mu       sync.Mutex
	err      error
	canceled bool
}

// NewListener derives the listener context from parent.
func NewListener(parent context.Context) (*Listener, context.Context) {
	ctx, cancel := context.WithCancel(parent)
	return &Listener{cancel: cancel, done: make(chan struct{})}, ctx
}

// Cancel stops delivery. It does not wait; use Done for that.
func (l *Listener) Cancel() {
	l.mu.Lock()
	l.canceled = true
	l.mu.Unlock()
	l.cancel()
}

func (l *Listener) Done() <-chan struct{} {
	return l.done
}

func (l *Listener) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.canceled {
		return nil
	}
	return l.err
}

// Finish records the terminal error and releases Done. Only the first call counts.
func (l *Listener) Finish(err error) {
	l.once.Do(func() {
		l.mu.Lock()
		if !errors.Is(err, context.Canceled) {
			l.err = err
		}
		l.mu.Unlock()
		l.cancel()
		close(l.done)
	})
}
