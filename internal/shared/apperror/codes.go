package apperror

// Stable machine-readable codes carried in the error envelope. Clients
// branch on these, so renaming one is a breaking API change.
const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	// CodeInvalidState marks a request that is well-formed but illegal for
	// the resource's current lifecycle state (e.g. reviewing an
	// unsubmitted review, completing an unapproved onboarding).
	CodeInvalidState = "INVALID_STATE"

	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
