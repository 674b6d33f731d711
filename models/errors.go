package models

import "errors"

// Domain errors surfaced by the lifecycle engine. Handlers translate
// these into HTTP statuses; none of them is retried internally.
var (
	// ErrInvalidState: the operation is not allowed in the entity's
	// current lifecycle state (e.g. finishing a trip that never started).
	ErrInvalidState = errors.New("operação não permitida no status atual")

	// ErrTripConflict: the driver already has another trip em andamento.
	ErrTripConflict = errors.New("motorista já possui uma viagem em andamento")

	// ErrValidation: malformed or constraint-violating input.
	ErrValidation = errors.New("dados inválidos")
)
