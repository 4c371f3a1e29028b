package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
)

func TestConfirmBookingUsecase(t *testing.T) {
	fs := newFakeStore()
	clock := mondayMorning(t)
	createUC := newCreateUC(fs, clock)
	confirmUC := NewConfirmBooking(fs, testDispatcher(), clock)

	b, err := createUC.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	confirmed, err := confirmUC.Execute(context.Background(), 1, 2, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)
	require.NotNil(t, confirmed.ConfirmedAt)

	// reconfirmar é no-op: mesmo timestamp, nenhum erro
	again, err := confirmUC.Execute(context.Background(), 1, 2, b.ID)
	require.NoError(t, err)
	assert.Equal(t, *confirmed.ConfirmedAt, *again.ConfirmedAt)
}

func TestCancelBookingUsecase(t *testing.T) {
	fs := newFakeStore()
	clock := mondayMorning(t)
	createUC := newCreateUC(fs, clock)
	cancelUC := NewCancelBooking(fs, testDispatcher(), clock)

	b, err := createUC.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	cancelled, err := cancelUC.Execute(context.Background(), 1, 2, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
}

// Cancelamento devolve o intervalo na hora: o mesmo horário aceita um
// novo agendamento.
func TestCancelFreesSlot(t *testing.T) {
	fs := newFakeStore()
	clock := mondayMorning(t)
	createUC := newCreateUC(fs, clock)
	cancelUC := NewCancelBooking(fs, testDispatcher(), clock)

	b, err := createUC.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	_, err = cancelUC.Execute(context.Background(), 1, 2, b.ID)
	require.NoError(t, err)

	replacement, err := createUC.Execute(context.Background(), baseInput())
	require.NoError(t, err)
	assert.NotEqual(t, b.ID, replacement.ID)
}

func TestCancelConfirmedBookingRejected(t *testing.T) {
	fs := newFakeStore()
	clock := mondayMorning(t)
	createUC := newCreateUC(fs, clock)
	confirmUC := NewConfirmBooking(fs, testDispatcher(), clock)
	cancelUC := NewCancelBooking(fs, testDispatcher(), clock)

	b, err := createUC.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	_, err = confirmUC.Execute(context.Background(), 1, 2, b.ID)
	require.NoError(t, err)

	_, err = cancelUC.Execute(context.Background(), 1, 2, b.ID)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestLifecycleUnknownBooking(t *testing.T) {
	fs := newFakeStore()
	clock := mondayMorning(t)
	confirmUC := NewConfirmBooking(fs, testDispatcher(), clock)
	cancelUC := NewCancelBooking(fs, testDispatcher(), clock)

	_, err := confirmUC.Execute(context.Background(), 1, 2, 12345)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))

	_, err = cancelUC.Execute(context.Background(), 1, 2, 12345)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

// Agendamento de outro barbeiro não aparece nem pode ser alterado.
func TestLifecycleScopedToBarber(t *testing.T) {
	fs := newFakeStore()
	clock := mondayMorning(t)
	createUC := newCreateUC(fs, clock)
	cancelUC := NewCancelBooking(fs, testDispatcher(), clock)

	b, err := createUC.Execute(context.Background(), baseInput())
	require.NoError(t, err)

	_, err = cancelUC.Execute(context.Background(), 1, 99, b.ID)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
