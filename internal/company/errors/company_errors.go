package companyerrors

import (
	"net/http"

	"staffhub/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"company not found",
		http.StatusNotFound,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrContactNotFound = apperror.New(
		apperror.CodeNotFound,
		"client contact not found",
		http.StatusNotFound,
	)
	ErrNoPrimaryContact = apperror.New(
		apperror.CodeNotFound,
		"company has no active client contact",
		http.StatusNotFound,
	)
	ErrContactEmailExists = apperror.New(
		apperror.CodeConflict,
		"a client contact with this email already exists",
		http.StatusConflict,
	)
)
