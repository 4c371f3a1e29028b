package booking

import (
	"fmt"
	"time"

	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
)

// ===============================
// TimeOfDay
// ===============================

// TimeOfDay é o minuto do dia (0..1439). Toda a aritmética de horário
// do motor de agenda usa esse inteiro; "HH:MM" só existe na borda.
type TimeOfDay int

const MinutesPerDay = 1440

// ParseTime converte "HH:MM" (zero à esquerda obrigatório) em TimeOfDay.
func ParseTime(text string) (TimeOfDay, error) {
	if len(text) != 5 || text[2] != ':' {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	var hh, mm int
	if _, err := fmt.Sscanf(text, "%02d:%02d", &hh, &mm); err != nil {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	if !isDigits(text[:2]) || !isDigits(text[3:]) {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, httperr.ErrBusiness("invalid_time_format")
	}

	return TimeOfDay(hh*60 + mm), nil
}

// FormatTime é a inversa total de ParseTime para qualquer valor válido.
func FormatTime(t TimeOfDay) string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// AddMinutes soma delta sem dar a volta no dia: sair de [0,1439] é erro,
// nunca clamp silencioso.
func AddMinutes(t TimeOfDay, delta int) (TimeOfDay, error) {
	r := int(t) + delta
	if r < 0 || r >= MinutesPerDay {
		return 0, httperr.ErrBusiness("time_out_of_range")
	}
	return TimeOfDay(r), nil
}

// IntervalsOverlap aplica a convenção meio-aberta [start, end):
// intervalos encostados (aEnd == bStart) NÃO conflitam.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return max(aStart, bStart) < min(aEnd, bEnd)
}

// DateKey agrupa agendamentos por dia-calendário LOCAL da barbearia
// ("YYYY-MM-DD"). Nunca usa UTC: perto da meia-noite o dia UTC e o dia
// local divergem.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02")
}

// MinuteOfDay projeta um instante no minuto do dia-calendário local.
func MinuteOfDay(t time.Time, loc *time.Location) TimeOfDay {
	lt := t.In(loc)
	return TimeOfDay(lt.Hour()*60 + lt.Minute())
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
