package i18n

// Error message translation keys.
const (
	ErrKeyInvalidRequest     = "error.invalid_request"
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	ErrKeyInternalError      = "error.internal_error"
	ErrKeyUnauthorized       = "error.unauthorized"
	// ErrKeyInvalidCredentials covers both an unknown email and a wrong password.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	ErrKeyAPIKeyRequired     = "error.api_key_required"
	ErrKeyInvalidAPIKey      = "error.invalid_api_key"
	ErrKeyNotFound           = "error.not_found"
	ErrKeyRateLimitExceeded  = "error.rate_limit_exceeded"
	ErrKeyConflict           = "error.conflict"
	ErrKeyInvalidToken       = "error.invalid_token"
	ErrKeyTokenRequired      = "error.token_required"
	ErrKeyTimeout            = "error.timeout"
	ErrKeyServiceUnavailable = "error.service_unavailable"
)

// Sampling and inspection keys.
const (
	ErrKeyInvalidLotShape     = "error.validation.lot_shape"
	ErrKeyLotSizeTooSmall     = "error.validation.lot_size_too_small"
	ErrKeyInvalidQualityLevel = "error.validation.quality_level"
	ErrKeyInvalidDefectCount  = "error.validation.defects_found"
	ErrKeyNoSamplingPlan      = "error.sampling.no_plan"
	ErrKeyContainerTooSmall   = "error.sampling.container_too_small"
	ErrKeyInspectionNotFound  = "error.inspection.not_found"
	ErrKeyPhotoNotFound       = "error.photo.not_found"
	ErrKeyPhotoLimitReached   = "error.photo.limit_reached"
	ErrKeyPhotoNotImage       = "error.photo.not_image"
	ErrKeyPhotoTooLarge       = "error.photo.too_large"
	ErrKeyPhotoMissing        = "error.photo.missing"
	ErrKeyEmailAlreadyInUse   = "error.auth.email_in_use"
	ErrKeyInvalidEmail        = "error.validation.email"
	ErrKeyInvalidPassword     = "error.validation.password"
)
