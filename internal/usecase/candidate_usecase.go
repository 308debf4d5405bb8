package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
	"go-hr-backend/pkg/audit"
	"go-hr-backend/pkg/imaging"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const candidateNotFound = "Candidate not found"

type candidateUsecase struct {
	repo     domain.CandidateRepository
	storage  domain.FileStorage
	validate *validator.Validate
	audit    *audit.Logger
}

// NewCandidateUsecase wires the candidate operations. storage may be nil,
// in which case profile image uploads are rejected.
func NewCandidateUsecase(repo domain.CandidateRepository, storage domain.FileStorage, validate *validator.Validate, auditLog *audit.Logger) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		storage:  storage,
		validate: validate,
		audit:    auditLog,
	}
}

func (u *candidateUsecase) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	candidates, err := u.repo.List(ctx)
	if err != nil {
		return nil, storeError(err, candidateNotFound)
	}
	return candidates, nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(err, candidateNotFound)
	}
	return candidate, nil
}

func (u *candidateUsecase) RegisterCandidate(ctx context.Context, candidate *domain.Candidate) error {
	if err := u.validate.Struct(candidate); err != nil {
		return validationError(err)
	}

	// The back-reference is owned by the assignment workflow
	candidate.ID = ""
	candidate.AssignedPosition = nil
	candidate.AssignedVacancyID = nil

	if err := u.repo.Create(ctx, candidate); err != nil {
		return storeError(err, candidateNotFound)
	}

	u.audit.Log(ctx, audit.Event{
		Action:     audit.CandidateCreated,
		Collection: "candidatos",
		DocumentID: candidate.ID,
	})
	return nil
}

func (u *candidateUsecase) UpdateCandidate(ctx context.Context, id string, patch *domain.CandidatePatch) (*domain.Candidate, error) {
	if patch == nil || patch.Empty() {
		return nil, apperror.BadRequest("No fields to update")
	}
	if err := u.validate.Struct(patch); err != nil {
		return nil, validationError(err)
	}

	if err := u.repo.Update(ctx, id, patch); err != nil {
		return nil, storeError(err, candidateNotFound)
	}

	u.audit.Log(ctx, audit.Event{
		Action:     audit.CandidateUpdated,
		Collection: "candidatos",
		DocumentID: id,
	})
	return u.GetCandidate(ctx, id)
}

func (u *candidateUsecase) DeleteCandidate(ctx context.Context, id string) error {
	if err := u.repo.Delete(ctx, id); err != nil {
		return storeError(err, candidateNotFound)
	}

	u.audit.Log(ctx, audit.Event{
		Action:     audit.CandidateDeleted,
		Collection: "candidatos",
		DocumentID: id,
	})
	return nil
}

func (u *candidateUsecase) UploadProfileImage(ctx context.Context, id string, image []byte) (*domain.Candidate, error) {
	if u.storage == nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "Image storage is not configured", nil)
	}
	if _, err := u.repo.GetByID(ctx, id); err != nil {
		return nil, storeError(err, candidateNotFound)
	}

	compressed, err := imaging.Downscale(image, imaging.ProfileMaxDimension, imaging.ProfileQuality)
	if err != nil {
		if errors.Is(err, imaging.ErrTooLarge) {
			return nil, apperror.New(http.StatusRequestEntityTooLarge, "Image dimensions are too large", nil)
		}
		if errors.Is(err, imaging.ErrNotAnImage) {
			return nil, apperror.BadRequest("File must be a JPEG or PNG image")
		}
		return nil, apperror.Internal(err)
	}

	key := fmt.Sprintf("candidates/%s/profile-%s.jpg", id, uuid.NewString())
	if err := u.storage.Upload(ctx, key, "image/jpeg", compressed); err != nil {
		return nil, apperror.New(http.StatusBadGateway, "Failed to upload image", err)
	}

	uri := u.storage.ObjectURL(key)
	if err := u.repo.Update(ctx, id, &domain.CandidatePatch{ImageURI: &uri}); err != nil {
		return nil, storeError(err, candidateNotFound)
	}

	u.audit.Log(ctx, audit.Event{
		Action:     audit.CandidateImageUpdated,
		Collection: "candidatos",
		DocumentID: id,
		Details:    map[string]any{"key": key},
	})
	return u.GetCandidate(ctx, id)
}
