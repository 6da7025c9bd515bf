package benefitconfigerrors

import (
	"net/http"

	"school-admin/internal/shared/apperror"
)

var (
	ErrBenefitNotFound = apperror.New(
		apperror.CodeNotFound,
		"benefit configuration not found",
		http.StatusNotFound,
	)
	ErrInvalidBenefitType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid benefit type",
		http.StatusBadRequest,
	)
	ErrInvalidAppliesTo = apperror.New(
		apperror.CodeInvalidInput,
		"applies_to must be all, teacher, administrative or laborer",
		http.StatusBadRequest,
	)
	ErrNegativeValue = apperror.New(
		apperror.CodeInvalidInput,
		"benefit values cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidBenefitID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid benefit configuration id",
		http.StatusBadRequest,
	)
)
