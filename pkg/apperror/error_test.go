package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreUnavailableUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("listing: %w", StoreUnavailable(cause))

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
	assert.ErrorIs(t, err, cause)
}

func TestValidationCarriesDetails(t *testing.T) {
	err := Validation("Datos inválidos", []string{"Email es obligatorio"})
	assert.Equal(t, http.StatusUnprocessableEntity, err.Code)
	assert.Equal(t, []string{"Email es obligatorio"}, err.Details)
	assert.Equal(t, "Datos inválidos", err.Error())
}
