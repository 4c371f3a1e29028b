package booking

import (
	"context"

	"github.com/samuelgomeslima/aibarber-sub001/internal/audit"
	domain "github.com/samuelgomeslima/aibarber-sub001/internal/domain/booking"
	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
	"github.com/samuelgomeslima/aibarber-sub001/internal/models"
	"github.com/samuelgomeslima/aibarber-sub001/internal/timezone"
)

type ConfirmBooking struct {
	store domain.Store
	audit *audit.Dispatcher
	clock domain.Clock
}

func NewConfirmBooking(
	store domain.Store,
	audit *audit.Dispatcher,
	clock domain.Clock,
) *ConfirmBooking {
	return &ConfirmBooking{
		store: store,
		audit: audit,
		clock: clock,
	}
}

// Execute marca o agendamento como realizado. Confirmar de novo um
// agendamento já confirmado devolve o registro sem efeito colateral.
func (uc *ConfirmBooking) Execute(
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

	alreadyConfirmed := b.ConfirmedAt != nil

	now := uc.clock.Now().In(timezone.Location(shop.Timezone))
	if err := domain.Confirm(b, now); err != nil {
		return nil, err
	}

	if alreadyConfirmed {
		// no-op: nada para persistir nem auditar
		return b, nil
	}

	if err := uc.store.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "booking_confirmed",
		Entity:       "booking",
		EntityID:     &b.ID,
	})

	return b, nil
}
