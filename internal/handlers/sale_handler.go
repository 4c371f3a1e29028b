package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/samuelgomeslima/aibarber-sub001/internal/audit"
	"github.com/samuelgomeslima/aibarber-sub001/internal/middleware"
	"github.com/samuelgomeslima/aibarber-sub001/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

// SaleHandler registra o caixa do dia: vendas já liquidadas no balcão.
// Nenhum pagamento é iniciado aqui.
type SaleHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSaleHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *SaleHandler {
	return &SaleHandler{db: db, audit: dispatcher}
}

type CreateSaleRequest struct {
	BookingID     *uint   `json:"booking_id"`
	ServiceID     *uint   `json:"service_id"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
}

var allowedPaymentMethods = map[string]bool{
	"cash": true,
	"pix":  true,
	"card": true,
}

// ======================================================
// CREATE
// ======================================================

func (h *SaleHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !allowedPaymentMethods[req.PaymentMethod] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_payment_method"})
		return
	}

	// venda vinculada a agendamento precisa apontar para um registro
	// da própria barbearia
	if req.BookingID != nil {
		var booking models.Booking
		if err := h.db.
			Where("id = ? AND barbershop_id = ?", *req.BookingID, barbershopID).
			First(&booking).Error; err != nil {

			c.JSON(http.StatusBadRequest, gin.H{"error": "booking_not_found"})
			return
		}
	}

	sale := models.Sale{
		BarbershopID:  barbershopID,
		UserID:        userID,
		BookingID:     req.BookingID,
		ServiceID:     req.ServiceID,
		Description:   req.Description,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	}

	if err := h.db.Create(&sale).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_sale"})
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "sale_created",
		Entity:       "sale",
		EntityID:     &sale.ID,
	})

	c.JSON(http.StatusCreated, sale)
}

// ======================================================
// DAILY SUMMARY
// ======================================================

type paymentMethodTotal struct {
	PaymentMethod string  `json:"payment_method"`
	Count         int64   `json:"count"`
	Total         float64 `json:"total"`
}

func (h *SaleHandler) DailySummary(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barbershop_not_found"})
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = time.Now().In(locationFromShop(&shop)).Format("2006-01-02")
	}

	dayStart, err := parseDateInShop(&shop, dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_date"})
		return
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	var sales []models.Sale
	if err := h.db.
		Where("barbershop_id = ? AND created_at >= ? AND created_at < ?",
			barbershopID, dayStart, dayEnd).
		Order("created_at ASC").
		Find(&sales).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_sales"})
		return
	}

	var byMethod []paymentMethodTotal
	if err := h.db.Model(&models.Sale{}).
		Select("payment_method, COUNT(*) AS count, SUM(amount) AS total").
		Where("barbershop_id = ? AND created_at >= ? AND created_at < ?",
			barbershopID, dayStart, dayEnd).
		Group("payment_method").
		Order("payment_method ASC").
		Scan(&byMethod).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_summarize_sales"})
		return
	}

	var grandTotal float64
	for _, m := range byMethod {
		grandTotal += m.Total
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      dateStr,
		"sales":     sales,
		"by_method": byMethod,
		"total":     grandTotal,
	})
}
