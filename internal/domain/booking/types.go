package booking

import "time"

type AvailabilityInput struct {
	BarbershopID uint
	BarberID     uint
	ServiceID    uint
	Date         time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ===============================
// Repeat preview
// ===============================

// RepeatSpacing é política do chamador, não do motor.
type RepeatSpacing string

const (
	RepeatDaily  RepeatSpacing = "daily"
	RepeatWeekly RepeatSpacing = "weekly"
)

func (s RepeatSpacing) Valid() bool {
	return s == RepeatDaily || s == RepeatWeekly
}

// Days é o passo em dias entre ocorrências.
func (s RepeatSpacing) Days() int {
	if s == RepeatWeekly {
		return 7
	}
	return 1
}

const MaxRepeatCount = 10
