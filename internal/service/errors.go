package service

import (
	"errors"

	"gorm.io/gorm"

	"poi-be-svc/pkg/apperror"
)

// lookupError maps a missing row to NotFound and anything else to StoreFailure
func lookupError(err error, notFoundMessage string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.Wrap(err, apperror.NotFound, notFoundMessage)
	}
	return apperror.Store(err)
}
