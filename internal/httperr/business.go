package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// ===============================
// Slot conflict
// ===============================

// SlotConflictError: outro agendamento ativo já ocupa o intervalo
// pedido. Carrega o id do vencedor para o chamador decidir o próximo
// passo (re-seleção a partir de disponibilidade recalculada).
type SlotConflictError struct {
	BookingID uint
}

func (e SlotConflictError) Error() string {
	return "slot_conflict"
}

func ErrSlotConflict(bookingID uint) error {
	return SlotConflictError{BookingID: bookingID}
}

func IsSlotConflict(err error) (uint, bool) {
	var sc SlotConflictError
	if errors.As(err, &sc) {
		return sc.BookingID, true
	}
	return 0, false
}

// IsExclusionConflict detecta violação de constraint de exclusão do
// Postgres (23P01) vinda do driver.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
