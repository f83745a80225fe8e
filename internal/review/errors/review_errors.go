package reviewerrors

import (
	"net/http"

	"staffhub/internal/shared/apperror"
)

var (
	ErrInvalidReviewID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid review id",
		http.StatusBadRequest,
	)
	ErrInvalidStaffID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid staff id",
		http.StatusBadRequest,
	)
	ErrReviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"review not found",
		http.StatusNotFound,
	)
	ErrMissingStartDate = apperror.New(
		apperror.CodeInvalidState,
		"staff has no start date, reviews cannot be scheduled",
		http.StatusConflict,
	)
	ErrReviewAlreadySubmitted = apperror.New(
		apperror.CodeInvalidState,
		"review has already been submitted",
		http.StatusConflict,
	)
	ErrReviewNotSubmitted = apperror.New(
		apperror.CodeInvalidState,
		"review must be submitted before it can be processed",
		http.StatusConflict,
	)
	ErrReviewTerminal = apperror.New(
		apperror.CodeInvalidState,
		"review is already under review and cannot change state",
		http.StatusConflict,
	)
	ErrAutoCreationInProgress = apperror.New(
		apperror.CodeConflict,
		"review auto-creation is already running",
		http.StatusConflict,
	)
)
