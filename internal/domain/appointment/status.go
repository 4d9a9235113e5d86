package appointment

import "github.com/agendabi/bi-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusNoShow    Status = "NO_SHOW"
)

// ParseStatus valida um status vindo de fora (API).
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusScheduled, StatusCompleted, StatusCancelled, StatusNoShow:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// IsTerminal: só SCHEDULED admite transições.
func IsTerminal(s Status) bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanMarkNoShow define se um agendamento pode ser marcado como falta
func CanMarkNoShow(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanTransition valida a transição para o novo status.
func CanTransition(current, next Status) error {
	switch next {
	case StatusCancelled:
		return CanCancel(current)
	case StatusCompleted:
		return CanComplete(current)
	case StatusNoShow:
		return CanMarkNoShow(current)
	case StatusScheduled:
		return httperr.ErrBusiness("invalid_state")
	}
	return httperr.ErrBusiness("invalid_status")
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusScheduled
}
