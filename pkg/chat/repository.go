package chat

import (
	"context"
)

// Repository define a interface para operações sobre o histórico de conversa.
// O histórico é append-only: o dispatcher apenas grava, nunca lê de volta.
type Repository interface {
	// SaveMessage grava um novo par (entrada, resposta) no histórico
	SaveMessage(ctx context.Context, userInput, botResponse string) error

	// ListHistory retorna os registros mais recentes do histórico
	ListHistory(ctx context.Context, limit, offset int) ([]Message, error)

	// CountMessages conta quantos registros existem no histórico
	CountMessages(ctx context.Context) (int, error)

	// DeleteHistory remove todo o histórico de conversa
	DeleteHistory(ctx context.Context) error
}
