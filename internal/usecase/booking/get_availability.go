package booking

import (
	"context"
	"time"

	domain "github.com/samuelgomeslima/aibarber-sub001/internal/domain/booking"
	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
	"github.com/samuelgomeslima/aibarber-sub001/internal/timezone"
)

type GetAvailability struct {
	store domain.Store
	clock domain.Clock
}

func NewGetAvailability(store domain.Store, clock domain.Clock) *GetAvailability {
	return &GetAvailability{store: store, clock: clock}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	shop, err := uc.store.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	svc, err := uc.store.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	weekday := int(in.Date.Weekday())

	wh, err := uc.store.GetWorkingHours(ctx, in.BarberID, weekday)
	if err != nil || !wh.Active {
		// dia sem expediente → agenda vazia, não é erro
		return []domain.TimeSlot{}, nil
	}

	window, err := windowFromWorkingHours(wh.StartTime, wh.EndTime, shop.SlotGranularityMin)
	if err != nil {
		return nil, err
	}

	// A grade é fixa por barbearia; a duração do serviço só corta
	// candidatos depois.
	slots, err := domain.GenerateSlots(window)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)
	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		loc,
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	bookings, err := uc.store.ListBookingsForDay(ctx, in.BarberID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	busy := make([]domain.Interval, 0, len(bookings))
	for _, b := range bookings {
		busy = append(busy, domain.Interval{
			Start:     domain.MinuteOfDay(b.StartTime, loc),
			End:       domain.MinuteOfDay(b.EndTime, loc),
			BookingID: b.ID,
		})
	}

	avail := domain.ComputeAvailability(slots, svc.DurationMin, window, busy)

	avail = uc.dropTooSoon(avail, shop.MinAdvanceMinutes, dayStart, loc)

	out := make([]domain.TimeSlot, 0, len(avail))
	for _, start := range avail {
		out = append(out, domain.TimeSlot{
			Start: domain.FormatTime(start),
			End:   domain.FormatTime(start + domain.TimeOfDay(svc.DurationMin)),
		})
	}

	return out, nil
}

// dropTooSoon corta, apenas no dia corrente, os inícios que caem dentro
// da antecedência mínima. As funções puras do domínio não conhecem o
// relógio; o corte acontece aqui.
func (uc *GetAvailability) dropTooSoon(
	avail []domain.TimeOfDay,
	minAdvanceMinutes int,
	dayStart time.Time,
	loc *time.Location,
) []domain.TimeOfDay {

	now := uc.clock.Now().In(loc)
	if domain.DateKey(now, loc) != domain.DateKey(dayStart, loc) {
		return avail
	}

	if minAdvanceMinutes <= 0 {
		minAdvanceMinutes = 120
	}

	cutoff := now.Add(time.Duration(minAdvanceMinutes) * time.Minute)
	if domain.DateKey(cutoff, loc) != domain.DateKey(dayStart, loc) {
		// antecedência estoura o dia inteiro
		return []domain.TimeOfDay{}
	}

	cutMin := domain.MinuteOfDay(cutoff, loc)

	out := avail[:0]
	for _, start := range avail {
		if start >= cutMin {
			out = append(out, start)
		}
	}
	return out
}

// windowFromWorkingHours valida a configuração no ponto de construção:
// janela quebrada é erro de configuração, nunca clamp.
func windowFromWorkingHours(startHM, endHM string, granularityMin int) (domain.OperatingWindow, error) {
	open, err := domain.ParseTime(startHM)
	if err != nil {
		return domain.OperatingWindow{}, httperr.ErrBusiness("invalid_window_configuration")
	}

	close_, err := domain.ParseTime(endHM)
	if err != nil {
		return domain.OperatingWindow{}, httperr.ErrBusiness("invalid_window_configuration")
	}

	w := domain.OperatingWindow{
		OpenMinute:         open,
		CloseMinute:        close_,
		SlotGranularityMin: granularityMin,
	}

	if err := w.Validate(); err != nil {
		return domain.OperatingWindow{}, err
	}

	return w, nil
}
