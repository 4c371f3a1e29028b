package booking

import (
	"context"
	"time"

	"github.com/samuelgomeslima/aibarber-sub001/internal/models"
)

// Store é o conjunto de colaboradores de persistência do motor de
// agenda. O motor nunca guarda esse estado entre chamadas: cada
// operação trabalha sobre um snapshot buscado na hora.
type Store interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	// -------- Service catalog --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		barbershopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Booking (create / conflict) --------

	// CreateBookingIfFree revalida o intervalo contra o estado vivo da
	// agenda (sob lock) e só então persiste. Perdeu a corrida →
	// httperr.SlotConflictError com o id do agendamento vencedor.
	CreateBookingIfFree(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Booking (state change) --------
	GetBookingForBarber(
		ctx context.Context,
		bookingID uint,
		barberID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Availability --------
	GetWorkingHours(
		ctx context.Context,
		barberID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListBookingsForDay(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		barberID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)
}
