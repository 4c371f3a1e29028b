package booking

import "github.com/samuelgomeslima/aibarber-sub001/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	// StatusActive: persistido, ocupa seu intervalo na agenda.
	StatusActive Status = "active"
	// StatusConfirmed: barbeiro marcou como realizado. Terminal.
	StatusConfirmed Status = "confirmed"
	// StatusCancelled: removido da agenda. Terminal.
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

// CanCancel: só agendamento ativo pode ser cancelado. Cancelar um
// confirmado é proibido.
func CanCancel(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanConfirm: confirma a partir de ativo; reconfirmar um já confirmado
// não é erro (tratado como no-op pelo chamador).
func CanConfirm(current Status) error {
	if current != StatusActive && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus é o estado com que todo agendamento entra na agenda.
func InitialStatus() Status {
	return StatusActive
}
