package services

import (
	"errors"

	"autozar_backend/internal/metrics"
	"autozar_backend/internal/repositories"
	"autozar_backend/internal/validator"
	"autozar_backend/pkg/apperrors"
)

// validationFailure converts a validator result into the API error shape.
func validationFailure(err error) error {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		return apperrors.ValidationError(verr.Errors)
	}
	return apperrors.InternalError(err)
}

// translateRepoError maps repository sentinels to API errors and wraps the rest.
func translateRepoError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	if errors.Is(err, repositories.ErrListingNotFound) || errors.Is(err, repositories.ErrMalformedRecord) {
		return apperrors.ErrListingNotFound
	}
	return apperrors.StorageError(err)
}

func errorCode(err error) apperrors.ErrorCode {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr.Code
	}
	return apperrors.CodeInternalError
}

func observeTransition(op lifecycleOp, err error) {
	result := "ok"
	if err != nil {
		switch errorCode(err) {
		case apperrors.CodeInvalidTransition:
			result = "invalid"
		case apperrors.CodeNotFound:
			result = "not_found"
		case apperrors.CodeForbidden:
			result = "forbidden"
		default:
			result = "error"
		}
	}
	metrics.LifecycleTransitions.WithLabelValues(string(op), result).Inc()
}
