package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
)

func TestParseTime(t *testing.T) {
	cases := []struct {
		in   string
		want TimeOfDay
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:05", 545},
		{"12:30", 750},
		{"23:59", 1439},
	}

	for _, tc := range cases {
		got, err := ParseTime(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestParseTimeRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"9:00",    // hora sem zero à esquerda
		"09:5",    // minuto sem zero à esquerda
		"0900",    // sem separador
		"09-00",   // separador errado
		"24:00",   // hora fora do dia
		"12:60",   // minuto inválido
		"ab:cd",   // não numérico
		" 09:00",  // espaço
		"09:00 ",  // espaço
		"123:456", // longo demais
	}

	for _, in := range bad {
		_, err := ParseTime(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, httperr.IsBusiness(err, "invalid_time_format"), "input %q", in)
	}
}

// FormatTime precisa ser a inversa total de ParseTime em todo o dia.
func TestFormatTimeRoundTrip(t *testing.T) {
	for m := 0; m < MinutesPerDay; m++ {
		text := FormatTime(TimeOfDay(m))
		back, err := ParseTime(text)
		require.NoError(t, err, text)
		require.Equal(t, TimeOfDay(m), back, text)
	}
}

func TestAddMinutes(t *testing.T) {
	got, err := AddMinutes(540, 45)
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(585), got)

	got, err = AddMinutes(60, -60)
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(0), got)

	// não dá a volta no dia
	_, err = AddMinutes(1439, 1)
	assert.True(t, httperr.IsBusiness(err, "time_out_of_range"))

	_, err = AddMinutes(0, -1)
	assert.True(t, httperr.IsBusiness(err, "time_out_of_range"))
}

func TestIntervalsOverlap(t *testing.T) {
	// sobreposição parcial
	assert.True(t, IntervalsOverlap(540, 600, 570, 630))
	assert.True(t, IntervalsOverlap(570, 630, 540, 600))

	// contenção total
	assert.True(t, IntervalsOverlap(540, 720, 600, 630))

	// intervalos idênticos
	assert.True(t, IntervalsOverlap(540, 600, 540, 600))

	// encostados NÃO conflitam: [a, b) e [b, c)
	assert.False(t, IntervalsOverlap(540, 600, 600, 660))
	assert.False(t, IntervalsOverlap(600, 660, 540, 600))

	// disjuntos
	assert.False(t, IntervalsOverlap(540, 600, 720, 780))
}

// Perto da meia-noite o dia UTC e o dia local divergem; a chave de
// agrupamento é sempre o calendário local.
func TestDateKeyUsesLocalCalendar(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	// 01:30 UTC de 10/03 ainda é 22:30 de 09/03 em São Paulo (UTC-3)
	instant := time.Date(2026, 3, 10, 1, 30, 0, 0, time.UTC)

	assert.Equal(t, "2026-03-09", DateKey(instant, sp))
	assert.Equal(t, "2026-03-10", DateKey(instant, time.UTC))
}

func TestMinuteOfDay(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	instant := time.Date(2026, 3, 10, 1, 30, 0, 0, time.UTC)

	// 22:30 local
	assert.Equal(t, TimeOfDay(22*60+30), MinuteOfDay(instant, sp))
	assert.Equal(t, TimeOfDay(90), MinuteOfDay(instant, time.UTC))
}
