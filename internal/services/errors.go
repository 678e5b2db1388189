package services

import (
	"context"
	"errors"

	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/validator"
	"jobboard_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// storeError maps repository sentinels to NOT_FOUND and every other store
// failure to STORE_UNAVAILABLE. Store failures are logged here once.
func storeError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, repositories.ErrJobNotFound):
		return errJobNotFound()
	case errors.Is(err, repositories.ErrCompanyNotFound):
		return errCompanyNotFound()
	case errors.Is(err, repositories.ErrUserNotFound):
		return apperrors.ErrNotFound("user", "User not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.ErrConflict("store", "Record conflicts with an existing one")
	}
	logger.CtxWithError(ctx, "store operation failed", err, "op", op)
	return apperrors.ErrStoreUnavailable(err)
}

func errJobNotFound() error {
	return apperrors.ErrNotFound("job", "Job posting not found")
}

func errCompanyNotFound() error {
	return apperrors.ErrNotFound("company", "Company not found")
}

// validateRequest runs struct-tag validation and reports field errors as VALIDATION_FAILED.
func validateRequest(v *validator.Validator, req interface{}) error {
	err := v.Validate(req)
	if err == nil {
		return nil
	}
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return apperrors.ValidationError(verr.Errors)
	}
	return apperrors.InternalError(err)
}
