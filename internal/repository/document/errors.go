// Package document implements the typed repositories on top of the
// document store port.
package document

import (
	"errors"

	"go-hr-backend/internal/domain"
	"go-hr-backend/internal/repository/docstore"
)

func mapErr(err error) error {
	if errors.Is(err, docstore.ErrNotFound) {
		return domain.ErrNotFound
	}
	return err
}
