package usecase

import (
	"errors"

	"go-hr-backend/internal/domain"
	"go-hr-backend/pkg/apperror"
	"go-hr-backend/pkg/validation"
)

// storeError classifies a repository failure. notFound is the message used
// when the referenced document does not exist.
func storeError(err error, notFound string) error {
	if err == nil {
		return nil
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, domain.ErrNotFound) {
		return apperror.NotFound(notFound)
	}
	return apperror.StoreUnavailable(err)
}

func validationError(err error) error {
	return apperror.Validation("Validation failed", validation.FormatValidationErrors(err))
}
