package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hugohenrick/chatbot-varejo/pkg/logger"
)

const (
	// DefaultEndpoint é o endpoint de inferência usado quando LLM_API_URL
	// não está configurada
	DefaultEndpoint = "https://api-inference.huggingface.co/models/EleutherAI/gpt-neo-2.7B"

	apologyMessage = "Sorry, I am having trouble understanding you right now."
	defaultMessage = "I don't understand that."

	requestTimeout = 15 * time.Second
)

// FallbackClient consulta o modelo de linguagem externo quando nenhuma
// intenção conhecida casa com a mensagem
type FallbackClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   logger.Logger
}

// NewFallbackClient cria um novo cliente de fallback
func NewFallbackClient(endpoint, apiKey string, log logger.Logger) *FallbackClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &FallbackClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: requestTimeout},
		logger:   log,
	}
}

// generateRequest é o corpo enviado ao endpoint de inferência
type generateRequest struct {
	Inputs string `json:"inputs"`
}

// generateResponse é o corpo esperado na resposta do endpoint
type generateResponse struct {
	GeneratedText string `json:"generated_text"`
}

// FetchFallback retorna o texto gerado pelo modelo para a mensagem. Total:
// erro de transporte, status fora de 2xx ou corpo malformado degradam para a
// mensagem fixa de desculpas; sucesso sem texto gerado vira a resposta padrão.
func (c *FallbackClient) FetchFallback(ctx context.Context, message string) string {
	text, err := c.generate(ctx, message)
	if err != nil {
		c.logger.Error("Erro ao consultar o modelo de linguagem", "error", err)
		return apologyMessage
	}

	if text == "" {
		return defaultMessage
	}

	return text
}

// generate faz uma chamada ao endpoint de inferência e extrai o texto gerado
func (c *FallbackClient) generate(ctx context.Context, message string) (string, error) {
	reqJSON, err := json.Marshal(generateRequest{Inputs: message})
	if err != nil {
		return "", fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(reqJSON))
	if err != nil {
		return "", fmt.Errorf("erro ao criar requisição HTTP: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na chamada da API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Error("API de inferência retornou erro",
			"status", resp.Status,
			"body", string(respBody))
		return "", fmt.Errorf("API error: %s", resp.Status)
	}

	c.logger.Debug("Resposta da API de inferência", "body", string(respBody))

	// O endpoint responde ora um objeto, ora um array com um elemento
	var single generateResponse
	if err := json.Unmarshal(respBody, &single); err == nil {
		return single.GeneratedText, nil
	}

	var many []generateResponse
	if err := json.Unmarshal(respBody, &many); err == nil {
		if len(many) == 0 {
			return "", nil
		}
		return many[0].GeneratedText, nil
	}

	return "", fmt.Errorf("erro ao interpretar resposta: %s", string(respBody))
}
