package usecase

import (
	"context"
	"fmt"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
	"go-hr-backend/pkg/audit"

	"github.com/go-playground/validator/v10"
)

const vacancyNotFound = "Vacancy not found"

type vacancyUsecase struct {
	repo          domain.VacancyRepository
	candidateRepo domain.CandidateRepository
	validate      *validator.Validate
	audit         *audit.Logger
}

func NewVacancyUsecase(repo domain.VacancyRepository, candidateRepo domain.CandidateRepository, validate *validator.Validate, auditLog *audit.Logger) domain.VacancyUsecase {
	return &vacancyUsecase{
		repo:          repo,
		candidateRepo: candidateRepo,
		validate:      validate,
		audit:         auditLog,
	}
}

func invalidStatus(status domain.VacancyStatus) error {
	return apperror.Validation("Validation failed", []string{
		fmt.Sprintf("Estado: Debe ser %q o %q (recibido %q)", domain.StatusAvailable, domain.StatusUnavailable, status),
	})
}

func (u *vacancyUsecase) ListVacancies(ctx context.Context) ([]domain.Vacancy, error) {
	vacancies, err := u.repo.List(ctx)
	if err != nil {
		return nil, storeError(err, vacancyNotFound)
	}
	return vacancies, nil
}

func (u *vacancyUsecase) GetVacancy(ctx context.Context, id string) (*domain.Vacancy, error) {
	vacancy, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, vacancyNotFound)
	}
	return vacancy, nil
}

func (u *vacancyUsecase) RegisterVacancy(ctx context.Context, vacancy *domain.Vacancy) error {
	if err := u.validate.Struct(vacancy); err != nil {
		return validationError(err)
	}

	// New vacancies always open as available; status changes go through
	// toggle or update.
	vacancy.ID = ""
	vacancy.Status = domain.StatusAvailable
	if err := u.repo.Create(ctx, vacancy); err != nil {
		return storeError(err, vacancyNotFound)
	}

	u.audit.Log(ctx, audit.Event{
		Action:     audit.VacancyCreated,
		Collection: "vacantes",
		DocumentID: vacancy.ID,
	})
	return nil
}

func (u *vacancyUsecase) UpdateVacancy(ctx context.Context, id string, patch *domain.VacancyPatch) (*domain.Vacancy, error) {
	if patch == nil || patch.Empty() {
		return nil, apperror.BadRequest("No fields to update")
	}
	if err := u.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, invalidStatus(*patch.Status)
	}

	if err := u.repo.Update(ctx, id, patch); err != nil {
		return nil, storeError(err, vacancyNotFound)
	}

	u.audit.Log(ctx, audit.Event{
		Action:     audit.VacancyUpdated,
		Collection: "vacantes",
		DocumentID: id,
	})
	return u.GetVacancy(ctx, id)
}

// ToggleStatus flips Disponible to No Disponible and anything else back to
// Disponible. Two concurrent toggles may both read the same state.
func (u *vacancyUsecase) ToggleStatus(ctx context.Context, id string) (*domain.Vacancy, error) {
	vacancy, err := u.GetVacancy(ctx, id)
	if err != nil {
		return nil, err
	}

	previous := vacancy.Status
	next := previous.Toggle()
	if err := u.repo.Update(ctx, id, &domain.VacancyPatch{Status: &next}); err != nil {
		return nil, storeError(err, vacancyNotFound)
	}
	vacancy.Status = next

	u.audit.Log(ctx, audit.Event{
		Action:     audit.VacancyStatusToggled,
		Collection: "vacantes",
		DocumentID: id,
		Details:    map[string]any{"from": string(previous), "to": string(next)},
	})
	return vacancy, nil
}

// DeleteVacancy does not touch candidates that reference the vacancy.
func (u *vacancyUsecase) DeleteVacancy(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return storeError(err, vacancyNotFound)
	}

	u.audit.Log(ctx, audit.Event{
		Action:     audit.VacancyDeleted,
		Collection: "vacantes",
		DocumentID: id,
	})
	return nil
}

func (u *vacancyUsecase) ListVacancyCandidates(ctx context.Context, id string) ([]domain.Candidate, error) {
	if _, err := u.GetVacancy(ctx, id); err != nil {
		return nil, err
	}
	candidates, err := u.candidateRepo.ListByVacancy(ctx, id)
	if err != nil {
		return nil, storeError(err, candidateNotFound)
	}
	return candidates, nil
}
