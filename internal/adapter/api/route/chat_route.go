package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/chatbot-varejo/internal/adapter/api/controller"
	"github.com/hugohenrick/chatbot-varejo/pkg/auth"
)

// ConfigureChatRoutes configura as rotas do chat
func ConfigureChatRoutes(router *gin.RouterGroup, chatController *controller.ChatController) {
	chatGroup := router.Group("/chat")
	{
		chatGroup.POST("", chatController.ProcessMessage)
		chatGroup.GET("/history", chatController.GetHistory)

		// Apagar o histórico é destrutivo; exige token JWT de operação
		chatGroup.DELETE("/history", auth.JWTAuthMiddleware(), chatController.DeleteHistory)
	}
}
