package models

import "time"

// WorkingHours é a janela de expediente de um barbeiro num dia da
// semana. Horários em "HH:MM"; o passo da grade vem da barbearia.
type WorkingHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `json:"barber_id"`

	Weekday int `json:"weekday"`

	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
