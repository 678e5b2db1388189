package apperrors

// ErrorCode - тип для кодов ошибок
type ErrorCode string

const (
	// System
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
	CodeStoreUnavailable ErrorCode = "STORE_UNAVAILABLE"
	CodeRateLimited      ErrorCode = "RATE_LIMITED"

	// Business logic
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidFilter    ErrorCode = "INVALID_FILTER"
	CodeConflict         ErrorCode = "CONFLICT"

	// Auth
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
)
