package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/chatbot-varejo/pkg/chat"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatRepository persiste o histórico de conversa no PostgreSQL
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository cria um novo repositório de histórico de conversa
func NewChatRepository(db *pgxpool.Pool) chat.Repository {
	return &ChatRepository{
		db: db,
	}
}

// SaveMessage grava um novo par (entrada, resposta); id e timestamp são
// atribuídos pelo banco
func (r *ChatRepository) SaveMessage(ctx context.Context, userInput, botResponse string) error {
	query := `
		INSERT INTO chat_history (user_input, bot_response)
		VALUES ($1, $2)
	`

	_, err := r.db.Exec(ctx, query, userInput, botResponse)
	if err != nil {
		return fmt.Errorf("erro ao salvar mensagem: %w", err)
	}

	return nil
}

// ListHistory retorna os registros mais recentes do histórico
func (r *ChatRepository) ListHistory(ctx context.Context, limit, offset int) ([]chat.Message, error) {
	query := `
		SELECT id, user_input, bot_response, timestamp
		FROM chat_history
		ORDER BY timestamp DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar histórico: %w", err)
	}
	defer rows.Close()

	var messages []chat.Message
	for rows.Next() {
		var msg chat.Message
		if err := rows.Scan(&msg.ID, &msg.UserInput, &msg.BotResponse, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("erro ao ler mensagem: %w", err)
		}
		messages = append(messages, msg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas: %w", err)
	}

	return messages, nil
}

// CountMessages conta quantos registros existem no histórico
func (r *ChatRepository) CountMessages(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM chat_history`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar mensagens: %w", err)
	}

	return count, nil
}

// DeleteHistory remove todo o histórico de conversa
func (r *ChatRepository) DeleteHistory(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `DELETE FROM chat_history`)
	if err != nil {
		return fmt.Errorf("erro ao deletar histórico: %w", err)
	}

	return nil
}
