package dto

import (
	"github.com/hugohenrick/chatbot-varejo/pkg/chat"
)

// ChatRequest representa uma mensagem enviada ao bot
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse representa a resposta do bot
type ChatResponse struct {
	Response string `json:"response"`
}

// ChatHistoryResponse representa uma página do histórico de conversa
type ChatHistoryResponse struct {
	History []chat.Message `json:"history"`
	Total   int            `json:"total"`
}

// NewChatHistoryResponse cria uma resposta de histórico paginada
func NewChatHistoryResponse(history []chat.Message, total int) ChatHistoryResponse {
	if history == nil {
		history = []chat.Message{}
	}

	return ChatHistoryResponse{
		History: history,
		Total:   total,
	}
}
