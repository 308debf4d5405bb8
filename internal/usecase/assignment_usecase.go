package usecase

import (
	"context"
	"strings"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
	"go-hr-backend/pkg/audit"
)

type assignmentUsecase struct {
	candidateRepo domain.CandidateRepository
	vacancyRepo   domain.VacancyRepository
	audit         *audit.Logger
}

func NewAssignmentUsecase(candidateRepo domain.CandidateRepository, vacancyRepo domain.VacancyRepository, auditLog *audit.Logger) domain.AssignmentUsecase {
	return &assignmentUsecase{
		candidateRepo: candidateRepo,
		vacancyRepo:   vacancyRepo,
		audit:         auditLog,
	}
}

// Assign reads the vacancy and then writes its title and id onto the
// candidate. The two documents are not updated atomically; a failed write
// leaves nothing to roll back because the read has no side effect.
func (u *assignmentUsecase) Assign(ctx context.Context, candidateID, vacancyID string) (*domain.Assignment, error) {
	var details []string
	if strings.TrimSpace(candidateID) == "" {
		details = append(details, "Candidato: Es obligatorio")
	}
	if strings.TrimSpace(vacancyID) == "" {
		details = append(details, "Vacante: Es obligatorio")
	}
	if len(details) > 0 {
		return nil, apperror.Validation("Validation failed", details)
	}

	vacancy, err := u.vacancyRepo.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, storeError(err, vacancyNotFound)
	}

	assignment := &domain.Assignment{
		CandidateID:  candidateID,
		VacancyID:    vacancy.ID,
		VacancyTitle: vacancy.Title,
	}
	if err := u.candidateRepo.SetAssignment(ctx, candidateID, assignment); err != nil {
		return nil, storeError(err, candidateNotFound)
	}

	u.audit.Log(ctx, audit.Event{
		Action:     audit.CandidateAssigned,
		Collection: "candidatos",
		DocumentID: candidateID,
		Details:    map[string]any{"vacancy_id": vacancy.ID, "vacancy_title": vacancy.Title},
	})
	return assignment, nil
}

func (u *assignmentUsecase) Unassign(ctx context.Context, candidateID string) error {
	if err := u.candidateRepo.SetAssignment(ctx, candidateID, nil); err != nil {
		return storeError(err, candidateNotFound)
	}

	u.audit.Log(ctx, audit.Event{
		Action:     audit.CandidateUnassigned,
		Collection: "candidatos",
		DocumentID: candidateID,
	})
	return nil
}

// ListAssignments returns every assigned candidate. Dangling marks
// references to vacancies that were deleted after the assignment.
func (u *assignmentUsecase) ListAssignments(ctx context.Context) ([]domain.AssignmentView, error) {
	candidates, err := u.candidateRepo.List(ctx)
	if err != nil {
		return nil, storeError(err, candidateNotFound)
	}
	vacancies, err := u.vacancyRepo.List(ctx)
	if err != nil {
		return nil, storeError(err, vacancyNotFound)
	}

	existing := make(map[string]struct{}, len(vacancies))
	for _, v := range vacancies {
		existing[v.ID] = struct{}{}
	}

	views := make([]domain.AssignmentView, 0)
	for i := range candidates {
		a := candidates[i].Assignment()
		if a == nil {
			continue
		}
		_, ok := existing[a.VacancyID]
		views = append(views, domain.AssignmentView{
			Assignment:    *a,
			CandidateName: candidates[i].Name,
			Dangling:      !ok,
		})
	}
	return views, nil
}
