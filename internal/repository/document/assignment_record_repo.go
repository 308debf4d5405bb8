package document

import (
	"context"

	"go-hr-backend/internal/domain"
	"go-hr-backend/internal/repository/docstore"
)

type assignmentRecordRepo struct {
	store docstore.Store
}

func NewAssignmentRecordRepository(store docstore.Store) domain.AssignmentRecordRepository {
	return &assignmentRecordRepo{store: store}
}

func (r *assignmentRecordRepo) Count(ctx context.Context) (int64, error) {
	return r.store.Count(ctx, docstore.Assignments)
}
