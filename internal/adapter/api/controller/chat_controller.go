package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/chatbot-varejo/internal/adapter/api/dto"
	"github.com/hugohenrick/chatbot-varejo/pkg/bot"
	"github.com/hugohenrick/chatbot-varejo/pkg/chat"
	"github.com/hugohenrick/chatbot-varejo/pkg/logger"
)

// ChatController trata as requisições do chat e do histórico
type ChatController struct {
	dispatcher *bot.Dispatcher
	history    chat.Repository
	logger     logger.Logger
}

// NewChatController cria um novo controller de chat
func NewChatController(dispatcher *bot.Dispatcher, history chat.Repository, log logger.Logger) *ChatController {
	return &ChatController{
		dispatcher: dispatcher,
		history:    history,
		logger:     log,
	}
}

// ProcessMessage godoc
// @Summary Processa uma mensagem do usuário
// @Description Classifica a mensagem, executa a consulta correspondente ou o fallback do modelo de linguagem e retorna a resposta
// @Tags Chat
// @Accept json
// @Produce json
// @Param message body dto.ChatRequest true "Mensagem a processar"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ChatResponse
// @Router /chat [post]
func (c *ChatController) ProcessMessage(ctx *gin.Context) {
	var req dto.ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			http.StatusBadRequest,
			"Requisição inválida",
			err.Error(),
		))
		return
	}

	// O dispatcher sempre devolve um texto de resposta; err não-nulo marca
	// um fault inesperado, respondido com o mesmo corpo e status 500
	response, err := c.dispatcher.Handle(ctx.Request.Context(), req.Message)
	if err != nil {
		c.logger.Error("Falha inesperada ao processar mensagem", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ChatResponse{Response: response})
		return
	}

	ctx.JSON(http.StatusOK, dto.ChatResponse{Response: response})
}

// GetHistory godoc
// @Summary Lista o histórico de conversa
// @Description Retorna os registros mais recentes do histórico, paginados
// @Tags Chat
// @Produce json
// @Param page query int false "Página" default(1)
// @Param page_size query int false "Tamanho da página" default(10)
// @Success 200 {object} dto.ChatHistoryResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/history [get]
func (c *ChatController) GetHistory(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("page_size", "10"))
	pagination := dto.GetPagination(page, pageSize)

	messages, err := c.history.ListHistory(ctx.Request.Context(), pagination.PageSize, pagination.Offset())
	if err != nil {
		c.logger.Error("Erro ao buscar histórico", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError,
			"Erro ao buscar histórico",
			"",
		))
		return
	}

	total, err := c.history.CountMessages(ctx.Request.Context())
	if err != nil {
		c.logger.Error("Erro ao contar mensagens", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError,
			"Erro ao contar mensagens",
			"",
		))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewChatHistoryResponse(messages, total))
}

// DeleteHistory godoc
// @Summary Remove todo o histórico de conversa
// @Description Apaga todos os registros do histórico. Requer token JWT.
// @Tags Chat
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /chat/history [delete]
func (c *ChatController) DeleteHistory(ctx *gin.Context) {
	if err := c.history.DeleteHistory(ctx.Request.Context()); err != nil {
		c.logger.Error("Erro ao deletar histórico", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(
			http.StatusInternalServerError,
			"Erro ao deletar histórico",
			"",
		))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Histórico removido", nil))
}
