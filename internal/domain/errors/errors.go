package errors

import "errors"

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções estão em internal/infrastructure/i18n/locales/*.json
var (
	ErrPointNotFound  = errors.New("error.point_not_found")
	ErrNoItems        = errors.New("error.no_items")
	ErrImageRequired  = errors.New("error.image_required")
	ErrImageTooLarge  = errors.New("error.image_too_large")
	ErrStorageFailure = errors.New("error.storage_failure")
)

// Domain errors
var (
	ErrInvalidItemIDs = errors.New("error.invalid_item_ids")
	ErrInvalidUF      = errors.New("error.invalid_uf")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base vem de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation  = "/problems/validation-error"
	ProblemTypeNotFound    = "/problems/not-found"
	ProblemTypeInternal    = "/problems/internal-error"
	ProblemTypeBadRequest  = "/problems/bad-request"
	ProblemTypeRateLimited = "/problems/rate-limited"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
