package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/samuelgomeslima/aibarber-sub001/internal/audit"
	domain "github.com/samuelgomeslima/aibarber-sub001/internal/domain/booking"
	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
	"github.com/samuelgomeslima/aibarber-sub001/internal/models"
	"github.com/samuelgomeslima/aibarber-sub001/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	BarbershopID uint
	BarberID     uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreateBooking é a transição Proposed → Active. A disponibilidade é
// revalidada contra o estado vivo da agenda DENTRO do commit
// (Store.CreateBookingIfFree, sob lock): snapshot do cliente nunca é
// confiável — dois clientes podem correr pelo mesmo horário.
type CreateBooking struct {
	store domain.Store
	audit *audit.Dispatcher
	clock domain.Clock
}

func NewCreateBooking(
	store domain.Store,
	audit *audit.Dispatcher,
	clock domain.Clock,
) *CreateBooking {
	return &CreateBooking{
		store: store,
		audit: audit,
		clock: clock,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	shop, err := uc.store.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// antecedência mínima
	minAdvance := shop.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := uc.clock.Now().In(loc)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	svc, err := uc.store.GetService(ctx, in.BarbershopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// fim sempre derivado da duração do serviço
	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	if err := uc.assertFitsWindow(ctx, shop, in.BarberID, start, svc.DurationMin, loc); err != nil {
		return nil, err
	}

	client, err := uc.store.GetOrCreateClient(
		ctx,
		in.BarbershopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		PublicRef:    uuid.NewString(),
		BarbershopID: in.BarbershopID,
		BarberID:     in.BarberID,
		ClientID:     client.ID,
		ServiceID:    svc.ID,
		StartTime:    start,
		EndTime:      end,
		Status:       string(domain.InitialStatus()),
		Notes:        in.Notes,
	}

	// revalidação no commit: checagem de conflito e INSERT na mesma
	// transação, sob lock
	if err := uc.store.CreateBookingIfFree(ctx, b); err != nil {
		if conflictID, ok := httperr.IsSlotConflict(err); ok {
			uc.audit.Dispatch(audit.Event{
				BarbershopID: in.BarbershopID,
				UserID:       &in.BarberID,
				Action:       "booking_conflict",
				Entity:       "booking",
				Metadata: map[string]any{
					"start":         start,
					"end":           end,
					"conflict_with": conflictID,
				},
			})
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &in.BarberID,
		Action:       "booking_created",
		Entity:       "booking",
		EntityID:     &b.ID,
	})

	return b, nil
}

// assertFitsWindow valida expediente e alinhamento à grade: só inícios
// que a grade de disponibilidade oferece podem virar agendamento.
func (uc *CreateBooking) assertFitsWindow(
	ctx context.Context,
	shop *models.Barbershop,
	barberID uint,
	start time.Time,
	durationMin int,
	loc *time.Location,
) error {

	weekday := int(start.Weekday())

	wh, err := uc.store.GetWorkingHours(ctx, barberID, weekday)
	if err != nil || !wh.Active {
		return httperr.ErrBusiness("outside_working_hours")
	}

	window, err := windowFromWorkingHours(wh.StartTime, wh.EndTime, shop.SlotGranularityMin)
	if err != nil {
		return err
	}

	startMin := domain.MinuteOfDay(start, loc)

	// fim por aritmética de minutos: serviço que atravessa a meia-noite
	// estoura o dia e é rejeitado, nunca dá a volta
	endMin, err := domain.AddMinutes(startMin, durationMin)
	if err != nil {
		return err
	}

	if startMin < window.OpenMinute || endMin > window.CloseMinute {
		return httperr.ErrBusiness("outside_working_hours")
	}

	if int(startMin-window.OpenMinute)%window.SlotGranularityMin != 0 {
		return httperr.ErrBusiness("slot_not_on_grid")
	}

	return nil
}
