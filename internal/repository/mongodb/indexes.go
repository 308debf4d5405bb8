package mongodb

import (
	"context"

	"go-hr-backend/internal/repository/docstore"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureIndexes creates the secondary indexes used by ListWhere lookups.
func EnsureIndexes(ctx context.Context, s *Store) error {
	_, err := s.db.Collection(docstore.Candidates).Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "idVacante", Value: 1}},
			Options: options.Index().SetName("idx_candidatos_idVacante").SetSparse(true),
		},
	)
	if err != nil {
		return err
	}

	_, err = s.db.Collection(docstore.Vacancies).Indexes().CreateOne(ctx,
		mongo.IndexModel{
			Keys:    bson.D{{Key: "estado", Value: 1}},
			Options: options.Index().SetName("idx_vacantes_estado"),
		},
	)
	return err
}
