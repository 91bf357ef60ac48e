package reservation

import "github.com/LocalizaAeServices/rental-api/internal/httperr"

// ===============================
// Reservation Status
// ===============================

type Status string

const (
	StatusActive    Status = "Ativa"
	StatusCompleted Status = "Concluída"
	StatusCancelled Status = "Cancelada"
)

func IsValid(s Status) bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Concluída e Cancelada são estados terminais
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled
}

// ===============================
// Validations
// ===============================

// CanTransition valida a mudança de status. As únicas transições
// permitidas são Ativa → Concluída e Ativa → Cancelada.
func CanTransition(from, to Status) error {
	if to != StatusCompleted && to != StatusCancelled {
		return httperr.ErrBusiness("invalid_status")
	}
	if from != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusActive
}
