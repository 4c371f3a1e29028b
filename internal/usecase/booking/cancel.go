package booking

import (
	"context"

	"github.com/samuelgomeslima/aibarber-sub001/internal/audit"
	domain "github.com/samuelgomeslima/aibarber-sub001/internal/domain/booking"
	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
	"github.com/samuelgomeslima/aibarber-sub001/internal/models"
	"github.com/samuelgomeslima/aibarber-sub001/internal/timezone"
)

type CancelBooking struct {
	store domain.Store
	audit *audit.Dispatcher
	clock domain.Clock
}

func NewCancelBooking(
	store domain.Store,
	audit *audit.Dispatcher,
	clock domain.Clock,
) *CancelBooking {
	return &CancelBooking{
		store: store,
		audit: audit,
		clock: clock,
	}
}

// Execute cancela um agendamento ativo: sai do conjunto ativo e o
// intervalo volta a ficar livre na hora. Agendamento confirmado não
// cancela.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	barbershopID uint,
	barberID uint,
	bookingID uint,
) (*models.Booking, error) {

	shop, err := uc.store.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	b, err := uc.store.GetBookingForBarber(ctx, bookingID, barberID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	now := uc.clock.Now().In(timezone.Location(shop.Timezone))
	if err := domain.Cancel(b, now); err != nil {
		return nil, err
	}

	if err := uc.store.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "booking_cancelled",
		Entity:       "booking",
		EntityID:     &b.ID,
	})

	return b, nil
}
