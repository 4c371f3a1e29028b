package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
)

func window(open, close TimeOfDay, step int) OperatingWindow {
	return OperatingWindow{
		OpenMinute:         open,
		CloseMinute:        close,
		SlotGranularityMin: step,
	}
}

func TestWindowValidate(t *testing.T) {
	assert.NoError(t, window(540, 1080, 30).Validate())

	// abertura depois do fechamento
	err := window(1080, 540, 30).Validate()
	assert.True(t, httperr.IsBusiness(err, "invalid_window_configuration"))

	// passo inválido
	err = window(540, 1080, 0).Validate()
	assert.True(t, httperr.IsBusiness(err, "invalid_window_configuration"))

	err = window(540, 1080, -15).Validate()
	assert.True(t, httperr.IsBusiness(err, "invalid_window_configuration"))

	// fechamento fora do dia
	err = window(540, MinutesPerDay, 30).Validate()
	assert.True(t, httperr.IsBusiness(err, "invalid_window_configuration"))
}

func TestGenerateSlots(t *testing.T) {
	// 09:00–18:00, passo 30 → inícios 09:00, 09:30, ..., 17:30
	slots, err := GenerateSlots(window(540, 1080, 30))
	require.NoError(t, err)

	require.Len(t, slots, 18)
	assert.Equal(t, TimeOfDay(540), slots[0])
	assert.Equal(t, TimeOfDay(1050), slots[len(slots)-1])

	for i := 1; i < len(slots); i++ {
		assert.Equal(t, TimeOfDay(30), slots[i]-slots[i-1])
	}
}

// O último início é o maior t com t+passo <= fechamento: janela que não
// divide exato pelo passo não gera slot parcial.
func TestGenerateSlotsUnevenClose(t *testing.T) {
	// 09:00–17:50, passo 30 → último início 17:20? não: 17:20+30=17:50 ok
	slots, err := GenerateSlots(window(540, 1070, 30))
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(1040), slots[len(slots)-1])

	// 09:00–17:45, passo 30 → último início 17:00 (17:30+30 estouraria)
	slots, err = GenerateSlots(window(540, 1065, 30))
	require.NoError(t, err)
	assert.Equal(t, TimeOfDay(1020), slots[len(slots)-1])
}

func TestGenerateSlotsDegenerate(t *testing.T) {
	// janela vazia (abre e fecha juntos) → grade vazia, não erro
	slots, err := GenerateSlots(window(540, 540, 30))
	require.NoError(t, err)
	assert.Empty(t, slots)

	// janela menor que um passo → grade vazia
	slots, err = GenerateSlots(window(540, 555, 30))
	require.NoError(t, err)
	assert.Empty(t, slots)
}
