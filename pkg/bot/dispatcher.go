package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/chatbot-varejo/pkg/bot/intent"
	"github.com/hugohenrick/chatbot-varejo/pkg/chat"
	"github.com/hugohenrick/chatbot-varejo/pkg/logger"
)

// historyWriteTimeout limita a gravação destacada do histórico
const historyWriteTimeout = 5 * time.Second

// Dispatcher orquestra o pipeline de uma mensagem: classificação, consulta e
// formatação para as intenções conhecidas, fallback do modelo de linguagem
// para o resto, e gravação best-effort do histórico ao final
type Dispatcher struct {
	store    Store
	fallback Fallback
	history  chat.Repository
	logger   logger.Logger
}

// NewDispatcher cria uma nova instância do Dispatcher
func NewDispatcher(store Store, fallback Fallback, history chat.Repository, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		store:    store,
		fallback: fallback,
		history:  history,
		logger:   log,
	}
}

// Handle processa uma mensagem e retorna o texto final da resposta. Nenhum
// fault escapa como panic: o que não foi tratado nos passos 1 a 4 vira
// MsgServerError com err não-nulo, para o transporte responder com status de
// falha mantendo o mesmo corpo. Cada mensagem gera exatamente um registro de
// histórico, gravado depois que a resposta está pronta.
func (d *Dispatcher) Handle(ctx context.Context, message string) (string, error) {
	operationID := uuid.New().String()

	response, err := d.respond(ctx, message, operationID)
	d.record(message, response, operationID)

	return response, err
}

// respond executa os passos 1 a 4 do pipeline com recuperação de panics
func (d *Dispatcher) respond(ctx context.Context, message string, operationID string) (response string, err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Panic no pipeline de despacho",
				"operation_id", operationID,
				"panic", r)
			response = MsgServerError
			err = fmt.Errorf("falha inesperada no pipeline: %v", r)
		}
	}()

	detected := intent.Classify(message)

	// A extração roda em toda mensagem mas nada a consome depois; mantida
	// por paridade de contrato com o comportamento original
	entities := intent.ExtractEntities(message)

	d.logger.Info("Processing message",
		"operation_id", operationID,
		"intent", detected,
		"categories", len(entities.Categories))

	tpl, ok := Resolve(detected)
	if !ok {
		return d.fallback.FetchFallback(ctx, message), nil
	}

	rows, runErr := d.store.RunQuery(ctx, tpl)
	if runErr != nil {
		d.logger.Error("Erro ao executar consulta",
			"operation_id", operationID,
			"query", tpl.Name,
			"error", runErr)
		return MsgQueryError, nil
	}

	if len(rows) == 0 {
		return MsgNoData, nil
	}

	return Format(detected, rows), nil
}

// record grava o par (entrada, resposta) no histórico em uma goroutine
// destacada. Falha de persistência é apenas logada, nunca chega ao usuário.
func (d *Dispatcher) record(userInput, botResponse, operationID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), historyWriteTimeout)
		defer cancel()

		if err := d.history.SaveMessage(ctx, userInput, botResponse); err != nil {
			d.logger.Error("Erro ao salvar histórico de conversa",
				"operation_id", operationID,
				"error", err)
		}
	}()
}
