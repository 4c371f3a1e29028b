package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/samuelgomeslima/aibarber-sub001/internal/config"
	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
)

// ======================================================
// Proxy fino para API de chat compatível com OpenAI.
// O backend só repassa: prompt do sistema + histórico do cliente vão,
// texto da resposta volta. Nada de estado de conversa no servidor.
// ======================================================

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type Reply struct {
	Text  string
	Usage Usage
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.AssistantTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    cfg.OpenAIBaseURL,
		apiKey:     cfg.OpenAIAPIKey,
		model:      cfg.OpenAIModel,
	}
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Usage Usage `json:"usage"`
}

// Complete encaminha a conversa e devolve a resposta do modelo. Falha
// do upstream vira assistant_unavailable: quem decide repetir é o
// chamador, nunca este proxy (repetição automática duplicaria custo).
func (c *Client) Complete(ctx context.Context, messages []ChatMessage) (*Reply, error) {
	if c.apiKey == "" {
		return nil, httperr.ErrBusiness("assistant_not_configured")
	}

	body, err := json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.4,
		MaxTokens:   512,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseURL+"/chat/completions",
		bytes.NewReader(body),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, httperr.ErrBusiness("assistant_unavailable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, httperr.ErrBusiness("assistant_unavailable")
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, httperr.ErrBusiness("assistant_unavailable")
	}

	if len(out.Choices) == 0 {
		return nil, httperr.ErrBusiness("assistant_unavailable")
	}

	return &Reply{
		Text:  out.Choices[0].Message.Content,
		Usage: out.Usage,
	}, nil
}

// SystemPrompt monta o contexto fixo da barbearia enviado em toda
// conversa.
func SystemPrompt(shopName string) string {
	return fmt.Sprintf(
		"Você é o assistente virtual da barbearia %s. "+
			"Responda em português, de forma curta e cordial, sobre "+
			"serviços, horários e agendamentos. Não invente preços nem "+
			"horários: quando não souber, oriente o cliente a consultar "+
			"a agenda.",
		shopName,
	)
}
