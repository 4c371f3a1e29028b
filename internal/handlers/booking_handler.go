package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/samuelgomeslima/aibarber-sub001/internal/domain/booking"
	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
	"github.com/samuelgomeslima/aibarber-sub001/internal/httpresp"
	"github.com/samuelgomeslima/aibarber-sub001/internal/middleware"
	usecase "github.com/samuelgomeslima/aibarber-sub001/internal/usecase/booking"
)

type BookingHandler struct {
	availability *usecase.GetAvailability
	create       *usecase.CreateBooking
	cancel       *usecase.CancelBooking
	confirm      *usecase.ConfirmBooking
	repeat       *usecase.RepeatBooking
	listByDate   *usecase.ListBookingsByDate
	listByMonth  *usecase.ListBookingsByMonth
}

func NewBookingHandler(
	availability *usecase.GetAvailability,
	create *usecase.CreateBooking,
	cancel *usecase.CancelBooking,
	confirm *usecase.ConfirmBooking,
	repeat *usecase.RepeatBooking,
	listByDate *usecase.ListBookingsByDate,
	listByMonth *usecase.ListBookingsByMonth,
) *BookingHandler {
	return &BookingHandler{
		availability: availability,
		create:       create,
		cancel:       cancel,
		confirm:      confirm,
		repeat:       repeat,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email"`
	ServiceID   uint   `json:"service_id" binding:"required"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:MM
	Notes       string `json:"notes"`
}

type RepeatBookingRequest struct {
	CreateBookingRequest
	Count   int    `json:"count" binding:"required"`
	Spacing string `json:"spacing" binding:"required"` // daily | weekly
}

// ======================================================
// HANDLERS
// ======================================================

func (h *BookingHandler) GetAvailability(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	serviceID, err := strconv.ParseUint(c.Query("service_id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "service_id inválido")
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "data inválida, use YYYY-MM-DD")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID: barbershopID,
		BarberID:     barberID,
		ServiceID:    uint(serviceID),
		Date:         date,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, slots)
}

func (h *BookingHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	b, err := h.create.Execute(c.Request.Context(), usecase.CreateBookingInput{
		BarbershopID: barbershopID,
		BarberID:     barberID,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		ClientEmail:  req.ClientEmail,
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) Repeat(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req RepeatBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	results, err := h.repeat.Execute(c.Request.Context(), usecase.RepeatBookingInput{
		BarbershopID: barbershopID,
		BarberID:     barberID,
		ClientName:   req.ClientName,
		ClientPhone:  req.ClientPhone,
		ClientEmail:  req.ClientEmail,
		ServiceID:    req.ServiceID,
		StartDate:    req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
		Count:        req.Count,
		Spacing:      domain.RepeatSpacing(req.Spacing),
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	// o relatório sempre volta 200: cada dia carrega o próprio status
	httpresp.List(c, results)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "id inválido")
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), barbershopID, barberID, uint(bookingID))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Confirm(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "id inválido")
		return
	}

	b, err := h.confirm.Execute(c.Request.Context(), barbershopID, barberID, uint(bookingID))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) ListByDate(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "data inválida, use YYYY-MM-DD")
		return
	}

	bookings, err := h.listByDate.Execute(c.Request.Context(), barberID, barbershopID, date)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "invalid_year", "ano inválido")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "mês inválido")
		return
	}

	bookings, err := h.listByMonth.Execute(c.Request.Context(), barberID, barbershopID, year, month)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// ERROR MAPPING
// ======================================================

// writeBookingError traduz erros de negócio para status HTTP. Conflito
// de horário vira 409 e carrega o agendamento vencedor no corpo, para
// o cliente recalcular a disponibilidade antes de tentar de novo.
func writeBookingError(c *gin.Context, err error) {
	if conflictID, ok := httperr.IsSlotConflict(err); ok {
		c.JSON(http.StatusConflict, gin.H{
			"error_code":    "slot_conflict",
			"message":       "Horário já ocupado por outro agendamento.",
			"conflict_with": conflictID,
		})
		return
	}

	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch code {
	case "booking_not_found", "service_not_found":
		httperr.NotFound(c, code, "Registro não encontrado.")
	case "too_soon":
		httperr.BadRequest(c, code, "Horário dentro da antecedência mínima.")
	case "outside_working_hours":
		httperr.BadRequest(c, code, "Horário fora do expediente.")
	case "slot_not_on_grid":
		httperr.BadRequest(c, code, "Horário desalinhado da grade de agendamento.")
	case "invalid_state":
		httperr.Conflict(c, code, "Transição de status não permitida.")
	case "invalid_window_configuration":
		httperr.Internal(c, code, "Expediente configurado de forma inválida.")
	default:
		httperr.BadRequest(c, code, "Requisição inválida.")
	}
}
