package booking

import (
	"context"
	"time"

	domain "github.com/samuelgomeslima/aibarber-sub001/internal/domain/booking"
	"github.com/samuelgomeslima/aibarber-sub001/internal/dto"
	"github.com/samuelgomeslima/aibarber-sub001/internal/timezone"
)

type ListBookingsByMonth struct {
	store domain.Store
}

func NewListBookingsByMonth(store domain.Store) *ListBookingsByMonth {
	return &ListBookingsByMonth{store: store}
}

func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	barberID uint,
	barbershopID uint,
	year int,
	month int,
) ([]dto.BookingListDTO, error) {

	shop, err := uc.store.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	bookings, err := uc.store.ListBookingsForPeriod(ctx, barberID, start, end)
	if err != nil {
		return nil, err
	}

	return toListDTOs(bookings), nil
}
