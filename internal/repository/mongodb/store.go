// Package mongodb implements the document store on MongoDB. Live
// subscriptions use change streams and therefore need a replica set.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-hr-backend/internal/repository/docstore"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewStore(client *mongo.Client, dbName string) *Store {
	return &Store{client: client, db: client.Database(dbName)}
}

func objectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		// Ids are store-assigned, so anything malformed cannot exist.
		return bson.ObjectID{}, docstore.ErrNotFound
	}
	return oid, nil
}

func (s *Store) find(ctx context.Context, collection string, filter bson.M) ([]docstore.Document, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, err
	}
	docs := make([]docstore.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, toDocument(m))
	}
	return docs, nil
}

func (s *Store) List(ctx context.Context, collection string) ([]docstore.Document, error) {
	return s.find(ctx, collection, bson.M{})
}

func (s *Store) ListWhere(ctx context.Context, collection, field, value string) ([]docstore.Document, error) {
	return s.find(ctx, collection, bson.M{field: value})
}

func (s *Store) Get(ctx context.Context, collection, id string) (*docstore.Document, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var raw bson.M
	err = s.db.Collection(collection).FindOne(ctx, bson.M{"_id": oid}).Decode(&raw)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, docstore.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	doc := toDocument(raw)
	return &doc, nil
}

func (s *Store) Create(ctx context.Context, collection string, fields map[string]any) (string, error) {
	doc := bson.M{}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		doc[k] = v
	}
	doc["_id"] = bson.NewObjectID()

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("mongodb: unexpected inserted id %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	set := bson.M{}
	for k, v := range fields {
		if k == "_id" {
			continue
		}
		set[k] = v
	}
	if len(set) == 0 {
		_, err := s.Get(ctx, collection, id)
		return err
	}

	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return docstore.ErrNotFound
	}
	return nil
}

func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	return s.db.Collection(collection).CountDocuments(ctx, bson.D{})
}

// Subscribe opens the change stream before reading the first snapshot so
// no write between the two is missed. Every change event triggers a full
// re-scan of the collection.
func (s *Store) Subscribe(ctx context.Context, collection string, onSnapshot func([]docstore.Document)) (docstore.Subscription, error) {
	stream, err := s.db.Collection(collection).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, fmt.Errorf("mongodb: watch %s: %w", collection, err)
	}

	listener, lctx := docstore.NewListener(ctx)
	go func() {
		defer func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = stream.Close(closeCtx)
		}()
		listener.Finish(s.deliver(lctx, collection, stream, onSnapshot))
	}()
	return listener, nil
}

func (s *Store) deliver(ctx context.Context, collection string, stream *mongo.ChangeStream, onSnapshot func([]docstore.Document)) error {
	docs, err := s.List(ctx, collection)
	if err != nil {
		return err
	}
	onSnapshot(docs)

	for stream.Next(ctx) {
		docs, err := s.List(ctx, collection)
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		onSnapshot(docs)
	}
	if err := stream.Err(); err != nil {
		return err
	}
	return ctx.Err()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// toDocument lifts the _id out of a raw document and converts driver
// types into plain Go values the JSON codec understands.
func toDocument(raw bson.M) docstore.Document {
	doc := docstore.Document{Fields: make(map[string]any, len(raw))}
	for k, v := range raw {
		if k == "_id" {
			doc.ID = idString(v)
			continue
		}
		doc.Fields[k] = normalize(v)
	}
	return doc
}

func idString(v any) string {
	switch id := v.(type) {
	case bson.ObjectID:
		return id.Hex()
	case string:
		return id
	default:
		return fmt.Sprint(id)
	}
}

func normalize(v any) any {
	switch val := v.(type) {
	case bson.D:
		m := make(map[string]any, len(val))
		for _, e := range val {
			m[e.Key] = normalize(e.Value)
		}
		return m
	case bson.M:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalize(e)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, e := range val {
			m[k] = normalize(e)
		}
		return m
	case bson.A:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = normalize(e)
		}
		return out
	case bson.ObjectID:
		return val.Hex()
	case bson.DateTime:
		return val.Time().UTC()
	default:
		return val
	}
}
