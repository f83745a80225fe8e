package stafferrors

import (
	"net/http"

	"staffhub/internal/shared/apperror"
)

var (
	ErrInvalidStaffID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid staff id",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrStaffNotFound = apperror.New(
		apperror.CodeNotFound,
		"staff not found",
		http.StatusNotFound,
	)
	ErrStaffAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"staff with this email already exists",
		http.StatusConflict,
	)
	ErrStaffNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"staff number already exists",
		http.StatusConflict,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid start_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrStartDateImmutable = apperror.New(
		apperror.CodeInvalidState,
		"start_date cannot be changed once set",
		http.StatusBadRequest,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"employment status can only move forward",
		http.StatusBadRequest,
	)
)
