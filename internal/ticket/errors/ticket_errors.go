package ticketerrors

import (
	"net/http"

	"staffhub/internal/shared/apperror"
)

var (
	ErrTicketNotFound = apperror.New(
		apperror.CodeNotFound,
		"ticket not found",
		http.StatusNotFound,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrNoRoutingTarget = apperror.New(
		apperror.CodeInvalidState,
		"no department is configured for this ticket category",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"ticket status cannot move backwards",
		http.StatusBadRequest,
	)
	ErrTicketClosed = apperror.New(
		apperror.CodeInvalidState,
		"ticket is closed",
		http.StatusConflict,
	)
)
