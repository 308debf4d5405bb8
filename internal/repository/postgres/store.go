// Package postgres implements the document store on a single JSONB table.
// Live subscriptions rely on LISTEN/NOTIFY fired by a row trigger.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-hr-backend/internal/repository/docstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// NotifyChannel is the channel the documents trigger publishes to. The
// payload is the collection name.
const NotifyChannel = "documents_changed"

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) query(ctx context.Context, sql string, args ...any) ([]docstore.Document, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]docstore.Document, 0)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		doc, err := decodeRow(id, raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (s *Store) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	return s.query(ctx,
		`SELECT id, fields FROM documents WHERE collection = $1 ORDER BY created_at, id`,
		collection)
}

func (s *Store) ListWhere(ctx context.Context, collection, field, value string) ([]docstore.Document, error) {
	return s.query(ctx,
		`SELECT id, fields FROM documents WHERE collection = $1 AND fields->>$2 = $3 ORDER BY created_at, id`,
		collection, field, value)
}

func (s *Store) Get(ctx context.Context, collection, id string) (*docstore.Document, error) {
	var raw []byte
	err := s.db.QueryRow(ctx,
		`SELECT fields FROM documents WHERE collection = $1 AND id = $2`,
		collection, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	doc, err := decodeRow(id, raw)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Store) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	payload, err := encodeFields(fields)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	_, err = s.db.Exec(ctx,
		`INSERT INTO documents (collection, id, fields) VALUES ($1, $2, $3::jsonb)`,
		collection, id, string(payload))
	if err != nil {
		return "", err
	}
	return id, nil
}

// Update merges fields into the stored object; keys not present are kept.
func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	payload, err := encodeFields(fields)
	if err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx,
		`UPDATE documents SET fields = fields || $3::jsonb, updated_at = now()
		 WHERE collection = $1 AND id = $2`,
		collection, id, string(payload))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM documents WHERE collection = $1 AND id = $2`,
		collection, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	var n int64
	err := s.db.QueryRow(ctx,
		`SELECT count(*) FROM documents WHERE collection = $1`, collection).Scan(&n)
	return n, err
}

// Subscribe holds a dedicated pool connection for LISTEN until the
// subscription ends. LISTEN is issued before the first snapshot is read.
func (s *Store) Subscribe(ctx context.Context, collection string, onSnapshot func([]docstore.Document)) (docstore.Subscription, error) {
	conn, err := s.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := conn.Exec(ctx, "LISTEN "+pq.QuoteIdentifier(NotifyChannel)); err != nil {
		conn.Release()
		return nil, err
	}

	listener, lctx := docstore.NewListener(ctx)
	go func() {
		err := s.deliver(lctx, conn, collection, onSnapshot)
		// The connection goes back to the pool, so it must stop listening first.
		_, _ = conn.Exec(context.Background(), "UNLISTEN "+pq.QuoteIdentifier(NotifyChannel))
		conn.Release()
		listener.Finish(err)
	}()
	return listener, nil
}

func (s *Store) deliver(ctx context.Context, conn *pgxpool.Conn, collection string, onSnapshot func([]docstore.Document)) error {
	docs, err := s.List(ctx, collection)
	if err != nil {
		return err
	}
	onSnapshot(docs)

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		if n.Payload != collection {
			continue
		}
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

func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) Close(context.Context) error {
	s.db.Close()
	return nil
}

func encodeFields(fields map[string]any) ([]byte, error) {
	clean := make(map[string]any, len(fields))
	for k, v := range fields {
		if k == "id" {
			continue
		}
		clean[k] = v
	}
	payload, err := json.Marshal(clean)
	if err != nil {
		return nil, fmt.Errorf("postgres: encode fields: %w", err)
	}
	return payload, nil
}

func decodeRow(id string, raw []byte) (docstore.Document, error) {
	fields := map[string]any{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &fields); err != nil {
			return docstore.Document{}, fmt.Errorf("postgres: decode document %s: %w", id, err)
		}
	}
	return docstore.Document{ID: id, Fields: fields}, nil
}
