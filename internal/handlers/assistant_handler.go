package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/samuelgomeslima/aibarber-sub001/internal/assistant"
	"github.com/samuelgomeslima/aibarber-sub001/internal/audit"
	domain "github.com/samuelgomeslima/aibarber-sub001/internal/domain/booking"
	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
	"github.com/samuelgomeslima/aibarber-sub001/internal/middleware"
	"github.com/samuelgomeslima/aibarber-sub001/internal/models"
	"github.com/samuelgomeslima/aibarber-sub001/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

// AssistantHandler encaminha a conversa para o provedor de IA. A cota
// diária por barbearia é debitada ANTES da chamada: mensagem sem saldo
// nem chega ao provedor.
type AssistantHandler struct {
	db     *gorm.DB
	client *assistant.Client
	quota  *assistant.Quota
	audit  *audit.Dispatcher
	clock  domain.Clock
}

func NewAssistantHandler(
	db *gorm.DB,
	client *assistant.Client,
	quota *assistant.Quota,
	dispatcher *audit.Dispatcher,
	clock domain.Clock,
) *AssistantHandler {
	return &AssistantHandler{
		db:     db,
		client: client,
		quota:  quota,
		audit:  dispatcher,
		clock:  clock,
	}
}

type ChatRequest struct {
	Messages []assistant.ChatMessage `json:"messages" binding:"required,min=1"`
}

// ======================================================
// CHAT
// ======================================================

func (h *AssistantHandler) Chat(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Mensagens inválidas.")
		return
	}

	for _, m := range req.Messages {
		if m.Role != assistant.RoleUser && m.Role != assistant.RoleAssistant {
			httperr.BadRequest(c, "invalid_role", "Papel de mensagem inválido.")
			return
		}
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	loc := timezone.Location(shop.Timezone)
	dateKey := domain.DateKey(h.clock.Now(), loc)

	remaining, err := h.quota.Consume(c.Request.Context(), barbershopID, dateKey)
	if err != nil {
		if httperr.IsBusiness(err, "quota_exceeded") {
			httperr.TooManyRequests(c, "quota_exceeded", "Limite diário de mensagens atingido.")
			return
		}
		httperr.Internal(c, "quota_store_unavailable", "Erro ao verificar cota.")
		return
	}

	messages := make([]assistant.ChatMessage, 0, len(req.Messages)+1)
	messages = append(messages, assistant.ChatMessage{
		Role:    assistant.RoleSystem,
		Content: assistant.SystemPrompt(shop.Name),
	})
	messages = append(messages, req.Messages...)

	reply, err := h.client.Complete(c.Request.Context(), messages)
	if err != nil {
		if httperr.IsBusiness(err, "assistant_not_configured") {
			httperr.Internal(c, "assistant_not_configured", "Assistente não configurado.")
			return
		}
		httperr.BadGateway(c, "assistant_unavailable", "Assistente indisponível no momento.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &userID,
		Action:       "assistant_message",
		Entity:       "assistant",
		Metadata: map[string]any{
			"total_tokens": reply.Usage.TotalTokens,
			"remaining":    remaining,
		},
	})

	c.JSON(http.StatusOK, gin.H{
		"reply":     reply.Text,
		"usage":     reply.Usage,
		"remaining": remaining,
	})
}

// Remaining informa o saldo do dia sem consumir.
func (h *AssistantHandler) Remaining(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	loc := timezone.Location(shop.Timezone)
	dateKey := domain.DateKey(h.clock.Now(), loc)

	remaining, err := h.quota.Remaining(c.Request.Context(), barbershopID, dateKey)
	if err != nil {
		httperr.Internal(c, "quota_store_unavailable", "Erro ao consultar cota.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"remaining": remaining})
}
