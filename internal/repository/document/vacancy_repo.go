package document

import (
	"context"

	"go-hr-backend/internal/domain"
	"go-hr-backend/internal/repository/docstore"
	"go-hr-backend/pkg/logger"
)

type vacancyRepo struct {
	store docstore.Store
}

func NewVacancyRepository(store docstore.Store) domain.VacancyRepository {
	return &vacancyRepo{store: store}
}

// decodeVacancies drops documents that no longer fit the schema. List and
// Watch share it so one-shot reads and live snapshots see the same set.
func decodeVacancies(docs []docstore.Document) []domain.Vacancy {
	vacancies := make([]domain.Vacancy, 0, len(docs))
	for _, doc := range docs {
		var v domain.Vacancy
		if err := docstore.Decode(doc, &v); err != nil {
			logger.Log.Warn("skipping undecodable vacancy", "id", doc.ID, "error", err)
			continue
		}
		vacancies = append(vacancies, v)
	}
	return vacancies
}

func (r *vacancyRepo) List(ctx context.Context) ([]domain.Vacancy, error) {
	docs, err := r.store.List(ctx, docstore.Vacancies)
	if err != nil {
		return nil, err
	}
	return decodeVacancies(docs), nil
}

func (r *vacancyRepo) GetByID(ctx context.Context, id string) (*domain.Vacancy, error) {
	doc, err := r.store.Get(ctx, docstore.Vacancies, id)
	if err != nil {
		return nil, mapErr(err)
	}
	var v domain.Vacancy
	if err := docstore.Decode(*doc, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *vacancyRepo) Create(ctx context.Context, vacancy *domain.Vacancy) error {
	fields, err := docstore.Encode(vacancy)
	if err != nil {
		return err
	}
	id, err := r.store.Create(ctx, docstore.Vacancies, fields)
	if err != nil {
		return err
	}
	vacancy.ID = id
	return nil
}

func (r *vacancyRepo) Update(ctx context.Context, id string, patch *domain.VacancyPatch) error {
	fields, err := docstore.Encode(patch)
	if err != nil {
		return err
	}
	return mapErr(r.store.Update(ctx, docstore.Vacancies, id, fields))
}

func (r *vacancyRepo) Delete(ctx context.Context, id string) error {
	return mapErr(r.store.Delete(ctx, docstore.Vacancies, id))
}

func (r *vacancyRepo) Watch(ctx context.Context, onSnapshot func([]domain.Vacancy)) (domain.Subscription, error) {
	return r.store.Subscribe(ctx, docstore.Vacancies, func(docs []docstore.Document) {
		onSnapshot(decodeVacancies(docs))
	})
}
