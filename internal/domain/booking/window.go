package booking

import "github.com/samuelgomeslima/aibarber-sub001/internal/httperr"

// ===============================
// Operating Window
// ===============================

// OperatingWindow é a janela de expediente de um dia: abertura,
// fechamento e o passo fixo da grade de horários. O passo é da
// barbearia, não do serviço pedido.
type OperatingWindow struct {
	OpenMinute         TimeOfDay
	CloseMinute        TimeOfDay
	SlotGranularityMin int
}

func (w OperatingWindow) Validate() error {
	if w.SlotGranularityMin <= 0 {
		return httperr.ErrBusiness("invalid_window_configuration")
	}
	if w.OpenMinute < 0 || w.CloseMinute >= MinutesPerDay || w.OpenMinute > w.CloseMinute {
		return httperr.ErrBusiness("invalid_window_configuration")
	}
	return nil
}

// GenerateSlots devolve a grade de inícios candidatos, crescente, a
// partir da abertura, parando no último t com t+passo <= fechamento.
// Função pura: mesma janela, mesma grade.
func GenerateSlots(w OperatingWindow) ([]TimeOfDay, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	step := TimeOfDay(w.SlotGranularityMin)

	slots := make([]TimeOfDay, 0, int((w.CloseMinute-w.OpenMinute))/w.SlotGranularityMin)
	for t := w.OpenMinute; t+step <= w.CloseMinute; t += step {
		slots = append(slots, t)
	}

	return slots, nil
}
