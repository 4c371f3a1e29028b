package booking

// ===============================
// Availability Filter
// ===============================

// Interval é um intervalo ocupado [Start, End) de um agendamento ativo.
type Interval struct {
	Start     TimeOfDay
	End       TimeOfDay
	BookingID uint
}

// ComputeAvailability filtra a grade: mantém um início candidato quando o
// serviço termina até o fechamento e não cruza nenhum intervalo ocupado.
// A ordem de saída é a ordem (crescente) da grade de entrada. Snapshot
// imutável de busy: sem efeitos colaterais, seguro para chamadas
// concorrentes.
func ComputeAvailability(
	slots []TimeOfDay,
	serviceDurationMin int,
	w OperatingWindow,
	busy []Interval,
) []TimeOfDay {

	out := make([]TimeOfDay, 0, len(slots))

	for _, start := range slots {
		end := start + TimeOfDay(serviceDurationMin)

		// serviço precisa terminar até o fechamento
		if end > w.CloseMinute {
			continue
		}

		if conflictingInterval(start, end, busy) != nil {
			continue
		}

		out = append(out, start)
	}

	return out
}

// conflictingInterval devolve o primeiro intervalo ocupado que cruza
// [start, end), ou nil. O(n) por slot é suficiente na escala
// dia × barbeiro.
func conflictingInterval(start, end TimeOfDay, busy []Interval) *Interval {
	for i := range busy {
		if IntervalsOverlap(start, end, busy[i].Start, busy[i].End) {
			return &busy[i]
		}
	}
	return nil
}

// FirstConflict expõe a checagem pontual usada na revalidação de commit.
func FirstConflict(start, end TimeOfDay, busy []Interval) (uint, bool) {
	if iv := conflictingInterval(start, end, busy); iv != nil {
		return iv.BookingID, true
	}
	return 0, false
}
