package document

import (
	"context"

	"go-hr-backend/internal/domain"
	"go-hr-backend/internal/repository/docstore"
	"go-hr-backend/pkg/logger"
)

type candidateRepo struct {
	store docstore.Store
}

func NewCandidateRepository(store docstore.Store) domain.CandidateRepository {
	return &candidateRepo{store: store}
}

func decodeCandidates(docs []docstore.Document) []domain.Candidate {
	candidates := make([]domain.Candidate, 0, len(docs))
	for _, doc := range docs {
		var c domain.Candidate
		if err := docstore.Decode(doc, &c); err != nil {
			logger.Log.Warn("skipping undecodable candidate", "id", doc.ID, "error", err)
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates
}

func (r *candidateRepo) List(ctx context.Context) ([]domain.Candidate, error) {
	docs, err := r.store.List(ctx, docstore.Candidates)
	if err != nil {
		return nil, err
	}
	return decodeCandidates(docs), nil
}

func (r *candidateRepo) ListByVacancy(ctx context.Context, vacancyID string) ([]domain.Candidate, error) {
	docs, err := r.store.ListWhere(ctx, docstore.Candidates, "idVacante", vacancyID)
	if err != nil {
		return nil, err
	}
	return decodeCandidates(docs), nil
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, error) {
	doc, err := r.store.Get(ctx, docstore.Candidates, id)
	if err != nil {
		return nil, mapErr(err)
	}
	var c domain.Candidate
	if err := docstore.Decode(*doc, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepo) Create(ctx context.Context, candidate *domain.Candidate) error {
	fields, err := docstore.Encode(candidate)
	if err != nil {
		return err
	}
	id, err := r.store.Create(ctx, docstore.Candidates, fields)
	if err != nil {
		return err
	}
	candidate.ID = id
	return nil
}

func (r *candidateRepo) Update(ctx context.Context, id string, patch *domain.CandidatePatch) error {
	fields, err := docstore.Encode(patch)
	if err != nil {
		return err
	}
	return mapErr(r.store.Update(ctx, docstore.Candidates, id, fields))
}

func (r *candidateRepo) SetAssignment(ctx context.Context, id string, assignment *domain.Assignment) error {
	fields := map[string]any{"puestoAsignado": nil, "idVacante": nil}
	if assignment != nil {
		fields["puestoAsignado"] = assignment.VacancyTitle
		fields["idVacante"] = assignment.VacancyID
	}
	return mapErr(r.store.Update(ctx, docstore.Candidates, id, fields))
}

func (r *candidateRepo) Delete(ctx context.Context, id string) error {
	return mapErr(r.store.Delete(ctx, docstore.Candidates, id))
}
