package chat

import "time"

// Message representa um registro do histórico de conversa: a pergunta do
// usuário e a resposta dada pelo bot em um mesmo turno
type Message struct {
	ID          int64     `json:"id"`
	UserInput   string    `json:"user_input"`
	BotResponse string    `json:"bot_response"`
	Timestamp   time.Time `json:"timestamp"`
}
