package booking

import (
	"time"

	"github.com/samuelgomeslima/aibarber-sub001/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

// Confirm marca o agendamento como realizado. ConfirmedAt é monotônico:
// uma vez setado nunca muda; reconfirmar devolve nil sem efeito.
func Confirm(b *models.Booking, now time.Time) error {
	if err := CanConfirm(Status(b.Status)); err != nil {
		return err
	}

	if b.ConfirmedAt != nil {
		// já confirmado → no-op
		return nil
	}

	b.Status = string(StatusConfirmed)
	b.ConfirmedAt = &now
	return nil
}
