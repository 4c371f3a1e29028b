package booking

import (
	"context"
	"time"

	domain "github.com/samuelgomeslima/aibarber-sub001/internal/domain/booking"
	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
	"github.com/samuelgomeslima/aibarber-sub001/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type RepeatBookingInput struct {
	BarbershopID uint
	BarberID     uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	ServiceID uint

	StartDate string // YYYY-MM-DD (primeira ocorrência)
	Time      string // HH:MM, igual em todas as ocorrências
	Notes     string

	Count   int
	Spacing domain.RepeatSpacing
}

type RepeatDayResult struct {
	Date         string `json:"date"`
	Status       string `json:"status"` // created | conflict | rejected
	BookingID    uint   `json:"booking_id,omitempty"`
	PublicRef    string `json:"public_ref,omitempty"`
	ConflictWith uint   `json:"conflict_with,omitempty"`
	ErrorCode    string `json:"error_code,omitempty"`
}

// ======================================================
// USE CASE
// ======================================================

// RepeatBooking cria uma série de até 10 ocorrências no mesmo horário,
// com espaçamento diário ou semanal a critério do chamador. Cada dia
// passa pela MESMA validação de commit do create: falha no dia 3 não
// desfaz os dias 1–2 já gravados (semântica de falha parcial, nunca
// tudo-ou-nada).
type RepeatBooking struct {
	create *CreateBooking
	store  domain.Store
}

func NewRepeatBooking(create *CreateBooking, store domain.Store) *RepeatBooking {
	return &RepeatBooking{create: create, store: store}
}

func (uc *RepeatBooking) Execute(
	ctx context.Context,
	in RepeatBookingInput,
) ([]RepeatDayResult, error) {

	if in.Count < 1 || in.Count > domain.MaxRepeatCount {
		return nil, httperr.ErrBusiness("invalid_repeat_count")
	}
	if !in.Spacing.Valid() {
		return nil, httperr.ErrBusiness("invalid_repeat_spacing")
	}

	shop, err := uc.store.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	base, err := time.ParseInLocation("2006-01-02", in.StartDate, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	step := in.Spacing.Days()
	results := make([]RepeatDayResult, 0, in.Count)

	for i := 0; i < in.Count; i++ {
		day := base.AddDate(0, 0, i*step)
		dateStr := domain.DateKey(day, loc)

		b, err := uc.create.Execute(ctx, CreateBookingInput{
			BarbershopID: in.BarbershopID,
			BarberID:     in.BarberID,
			ClientName:   in.ClientName,
			ClientPhone:  in.ClientPhone,
			ClientEmail:  in.ClientEmail,
			ServiceID:    in.ServiceID,
			Date:         dateStr,
			Time:         in.Time,
			Notes:        in.Notes,
		})

		switch {
		case err == nil:
			results = append(results, RepeatDayResult{
				Date:      dateStr,
				Status:    "created",
				BookingID: b.ID,
				PublicRef: b.PublicRef,
			})

		default:
			if conflictID, ok := httperr.IsSlotConflict(err); ok {
				results = append(results, RepeatDayResult{
					Date:         dateStr,
					Status:       "conflict",
					ConflictWith: conflictID,
				})
				continue
			}

			code := "internal_error"
			if bc, ok := httperr.BusinessCode(err); ok {
				code = bc
			}

			results = append(results, RepeatDayResult{
				Date:      dateStr,
				Status:    "rejected",
				ErrorCode: code,
			})
		}
	}

	return results, nil
}
