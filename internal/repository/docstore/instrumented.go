package docstore

import (
	"context"
	"errors"
	"time"
)

// Recorder receives one observation per store call. pkg/metrics.Collector
// implements it.
type Recorder interface {
	RecordStoreOp(collection, op, outcome string, duration time.Duration)
	SubscriptionOpened(collection string)
	SubscriptionClosed(collection string)
}

type instrumented struct {
	next     Store
	recorder Recorder
}

// Instrument wraps a store so every call is observed by recorder.
func Instrument(next Store, recorder Recorder) Store {
	if recorder == nil {
		return next
	}
	return &instrumented{next: next, recorder: recorder}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}

func (s *instrumented) observe(collection, op string, start time.Time, err error) {
	s.recorder.RecordStoreOp(collection, op, outcome(err), time.Since(start))
}

func (s *instrumented) List(ctx context.Context, collection string) ([]Document, error) {
	start := time.Now()
	docs, err := s.next.List(ctx, collection)
	s.observe(collection, "list", start, err)
	return docs, err
}

func (s *instrumented) ListWhere(ctx context.Context, collection, field, value string) ([]Document, error) {
	start := time.Now()
	docs, err := s.next.ListWhere(ctx, collection, field, value)
	s.observe(collection, "list_where", start, err)
	return docs, err
}

func (s *instrumented) Get(ctx context.Context, collection, id string) (*Document, error) {
	start := time.Now()
	doc, err := s.next.Get(ctx, collection, id)
	s.observe(collection, "get", start, err)
	return doc, err
}

func (s *instrumented) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	start := time.Now()
	id, err := s.next.Create(ctx, collection, fields)
	s.observe(collection, "create", start, err)
	return id, err
}

func (s *instrumented) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	start := time.Now()
	err := s.next.Update(ctx, collection, id, fields)
	s.observe(collection, "update", start, err)
	return err
}

func (s *instrumented) Delete(ctx context.Context, collection, id string) error {
	start := time.Now()
	err := s.next.Delete(ctx, collection, id)
	s.observe(collection, "delete", start, err)
	return err
}

func (s *instrumented) Count(ctx context.Context, collection string) (int64, error) {
	start := time.Now()
	n, err := s.next.Count(ctx, collection)
	s.observe(collection, "count", start, err)
	return n, err
}

func (s *instrumented) Subscribe(ctx context.Context, collection string, onSnapshot func([]Document)) (Subscription, error) {
	start := time.Now()
	sub, err := s.next.Subscribe(ctx, collection, onSnapshot)
	s.observe(collection, "subscribe", start, err)
	if err != nil {
		return nil, err
	}
	s.recorder.SubscriptionOpened(collection)
	go func() {
		<-sub.Done()
		s.recorder.SubscriptionClosed(collection)
	}()
	return sub, nil
}

func (s *instrumented) Ping(ctx context.Context) error {
	return s.next.Ping(ctx)
}

func (s *instrumented) Close(ctx context.Context) error {
	return s.next.Close(ctx)
}
