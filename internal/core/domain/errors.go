// internal/core/domain/errors.go
package domain

import "webchain/internal/platform/errors"

// Errores de dominio comunes. Todos envuelven errors.ErrInvalidInput.
var (
	ErrEmptyTarget   = errors.Wrap(errors.ErrInvalidInput, "target cannot be empty")
	ErrInvalidDomain = errors.Wrap(errors.ErrInvalidInput, "invalid domain format")
	ErrPublicSuffix  = errors.Wrap(errors.ErrInvalidInput, "target is a public suffix")
)
