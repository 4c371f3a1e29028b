package models

import "time"

// Sale é um lançamento do caixa: venda já liquidada no balcão
// (dinheiro, pix, cartão). Nenhum pagamento é iniciado pelo sistema.
type Sale struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `json:"barbershop_id"`
	UserID       uint `json:"user_id"`

	BookingID *uint `json:"booking_id"`
	ServiceID *uint `json:"service_id"`

	Description   string  `gorm:"size:255" json:"description"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `gorm:"size:20" json:"payment_method"`

	CreatedAt time.Time `json:"created_at"`
}
