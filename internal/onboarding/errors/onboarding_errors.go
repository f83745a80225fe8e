package onboardingerrors

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
	ErrOnboardingNotFound = apperror.New(
		apperror.CodeNotFound,
		"onboarding record not found",
		http.StatusNotFound,
	)
	ErrUnknownSection = apperror.New(
		apperror.CodeInvalidInput,
		"unknown onboarding section",
		http.StatusBadRequest,
	)
	ErrInvalidVerdict = apperror.New(
		apperror.CodeInvalidInput,
		"verdict must be APPROVED or REJECTED",
		http.StatusBadRequest,
	)
	ErrSectionNotSubmitted = apperror.New(
		apperror.CodeInvalidState,
		"section has not been submitted yet",
		http.StatusConflict,
	)
	ErrSectionsNotApproved = apperror.New(
		apperror.CodeInvalidState,
		"all sections must be approved before onboarding can be completed",
		http.StatusConflict,
	)
)
