package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/samuelgomeslima/aibarber-sub001/internal/domain/booking"
)

func availabilityInput(date time.Time) domain.AvailabilityInput {
	return domain.AvailabilityInput{
		BarbershopID: 1,
		BarberID:     2,
		ServiceID:    10,
		Date:         date,
	}
}

func tuesday(t *testing.T) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return time.Date(2026, 5, 5, 0, 0, 0, 0, loc)
}

func TestGetAvailabilityFullDay(t *testing.T) {
	fs := newFakeStore()
	uc := NewGetAvailability(fs, mondayMorning(t))

	slots, err := uc.Execute(context.Background(), availabilityInput(tuesday(t)))
	require.NoError(t, err)

	// 09:00–18:00, passo 30, serviço 30min → 18 inícios
	require.Len(t, slots, 18)
	assert.Equal(t, domain.TimeSlot{Start: "09:00", End: "09:30"}, slots[0])
	assert.Equal(t, domain.TimeSlot{Start: "17:30", End: "18:00"}, slots[17])
}

func TestGetAvailabilityExcludesBookedSlot(t *testing.T) {
	fs := newFakeStore()
	clock := mondayMorning(t)
	createUC := newCreateUC(fs, clock)
	uc := NewGetAvailability(fs, clock)

	_, err := createUC.Execute(context.Background(), baseInput()) // 10:00–10:30
	require.NoError(t, err)

	slots, err := uc.Execute(context.Background(), availabilityInput(tuesday(t)))
	require.NoError(t, err)

	starts := make([]string, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.Start)
	}

	assert.NotContains(t, starts, "10:00")
	// vizinhos encostados continuam livres
	assert.Contains(t, starts, "09:30")
	assert.Contains(t, starts, "10:30")
}

func TestGetAvailabilityInactiveDayIsEmpty(t *testing.T) {
	fs := newFakeStore()
	wh := fs.hours[2]
	wh.Active = false
	fs.hours[2] = wh

	uc := NewGetAvailability(fs, mondayMorning(t))

	slots, err := uc.Execute(context.Background(), availabilityInput(tuesday(t)))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

// No dia corrente os inícios dentro da antecedência mínima somem.
func TestGetAvailabilityTrimsTodayByMinAdvance(t *testing.T) {
	fs := newFakeStore()
	clock := mondayMorning(t) // 08:00, antecedência 120min → corte às 10:00
	uc := NewGetAvailability(fs, clock)

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	today := time.Date(2026, 5, 4, 0, 0, 0, 0, loc)

	slots, err := uc.Execute(context.Background(), availabilityInput(today))
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	assert.Equal(t, "10:00", slots[0].Start)
}

func TestGetAvailabilityLongServiceStopsEarlier(t *testing.T) {
	fs := newFakeStore()
	uc := NewGetAvailability(fs, mondayMorning(t))

	in := availabilityInput(tuesday(t))
	in.ServiceID = 11 // 60min

	slots, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// último início 17:00: termina exatamente no fechamento
	assert.Equal(t, domain.TimeSlot{Start: "17:00", End: "18:00"}, slots[len(slots)-1])
}
