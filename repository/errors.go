package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sufiyan0000/nike-ecommerce/models"
)

// translate maps GORM errors onto the shared error taxonomy. Requires the
// connection to be opened with TranslateError so duplicate-key violations
// surface as gorm.ErrDuplicatedKey.
func translate(err error, op, resource, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.NewNotFoundError(resource, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return models.NewConflictError(resource)
	default:
		return models.NewStorageError(op, err)
	}
}
