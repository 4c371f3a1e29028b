package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/samuelgomeslima/aibarber-sub001/internal/domain/booking"
	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
)

func repeatInput(count int, spacing domain.RepeatSpacing) RepeatBookingInput {
	return RepeatBookingInput{
		BarbershopID: 1,
		BarberID:     2,
		ClientName:   "João",
		ClientPhone:  "11999990000",
		ServiceID:    10,
		StartDate:    "2026-05-05",
		Time:         "10:00",
		Count:        count,
		Spacing:      spacing,
	}
}

func TestRepeatBookingDaily(t *testing.T) {
	fs := newFakeStore()
	clock := mondayMorning(t)
	uc := NewRepeatBooking(newCreateUC(fs, clock), fs)

	results, err := uc.Execute(context.Background(), repeatInput(3, domain.RepeatDaily))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "2026-05-05", results[0].Date)
	assert.Equal(t, "2026-05-06", results[1].Date)
	assert.Equal(t, "2026-05-07", results[2].Date)

	for _, r := range results {
		assert.Equal(t, "created", r.Status)
		assert.NotZero(t, r.BookingID)
		assert.NotEmpty(t, r.PublicRef)
	}

	require.Len(t, fs.bookings, 3)
}

func TestRepeatBookingWeeklySpacing(t *testing.T) {
	fs := newFakeStore()
	clock := mondayMorning(t)
	uc := NewRepeatBooking(newCreateUC(fs, clock), fs)

	results, err := uc.Execute(context.Background(), repeatInput(3, domain.RepeatWeekly))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "2026-05-05", results[0].Date)
	assert.Equal(t, "2026-05-12", results[1].Date)
	assert.Equal(t, "2026-05-19", results[2].Date)
}

// Conflito no meio da série não desfaz os dias já criados.
func TestRepeatBookingPartialFailure(t *testing.T) {
	fs := newFakeStore()
	clock := mondayMorning(t)
	createUC := newCreateUC(fs, clock)
	uc := NewRepeatBooking(createUC, fs)

	// ocupa o horário do segundo dia antes da série
	blocker := baseInput()
	blocker.ClientPhone = "11888880000"
	blocker.Date = "2026-05-06"
	winner, err := createUC.Execute(context.Background(), blocker)
	require.NoError(t, err)

	results, err := uc.Execute(context.Background(), repeatInput(3, domain.RepeatDaily))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, "created", results[0].Status)

	assert.Equal(t, "conflict", results[1].Status)
	assert.Equal(t, winner.ID, results[1].ConflictWith)
	assert.Zero(t, results[1].BookingID)

	// o dia 3 ainda foi tentado e criado
	assert.Equal(t, "created", results[2].Status)

	// bloqueador + dias 1 e 3
	require.Len(t, fs.bookings, 3)
}

// Dia sem expediente entra no relatório como rejeitado, com o código
// do motivo.
func TestRepeatBookingRejectedDay(t *testing.T) {
	fs := newFakeStore()
	wh := fs.hours[3] // quarta
	wh.Active = false
	fs.hours[3] = wh

	clock := mondayMorning(t)
	uc := NewRepeatBooking(newCreateUC(fs, clock), fs)

	results, err := uc.Execute(context.Background(), repeatInput(3, domain.RepeatDaily))
	require.NoError(t, err)

	assert.Equal(t, "created", results[0].Status)
	assert.Equal(t, "rejected", results[1].Status)
	assert.Equal(t, "outside_working_hours", results[1].ErrorCode)
	assert.Equal(t, "created", results[2].Status)
}

func TestRepeatBookingValidatesInput(t *testing.T) {
	fs := newFakeStore()
	uc := NewRepeatBooking(newCreateUC(fs, mondayMorning(t)), fs)

	_, err := uc.Execute(context.Background(), repeatInput(0, domain.RepeatDaily))
	assert.True(t, httperr.IsBusiness(err, "invalid_repeat_count"))

	_, err = uc.Execute(context.Background(), repeatInput(domain.MaxRepeatCount+1, domain.RepeatDaily))
	assert.True(t, httperr.IsBusiness(err, "invalid_repeat_count"))

	_, err = uc.Execute(context.Background(), repeatInput(3, domain.RepeatSpacing("monthly")))
	assert.True(t, httperr.IsBusiness(err, "invalid_repeat_spacing"))

	in := repeatInput(3, domain.RepeatDaily)
	in.StartDate = "05/05/2026"
	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))
}

func TestRepeatBookingMaxCount(t *testing.T) {
	fs := newFakeStore()
	uc := NewRepeatBooking(newCreateUC(fs, mondayMorning(t)), fs)

	results, err := uc.Execute(context.Background(), repeatInput(domain.MaxRepeatCount, domain.RepeatDaily))
	require.NoError(t, err)
	assert.Len(t, results, domain.MaxRepeatCount)
}
