package main

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hugohenrick/chatbot-varejo/docs"
	"github.com/hugohenrick/chatbot-varejo/internal/adapter/api/controller"
	"github.com/hugohenrick/chatbot-varejo/internal/adapter/api/route"
	"github.com/hugohenrick/chatbot-varejo/internal/adapter/repository"
	"github.com/hugohenrick/chatbot-varejo/internal/infrastructure/database"
	"github.com/hugohenrick/chatbot-varejo/pkg/bot"
	"github.com/hugohenrick/chatbot-varejo/pkg/llm"
	"github.com/hugohenrick/chatbot-varejo/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App representa a aplicação e suas dependências
type App struct {
	router         *gin.Engine
	db             *pgxpool.Pool
	chatController *controller.ChatController
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar banco de dados
	config := database.NewPostgresConfigFromEnv()

	// Aplicar migrações antes de abrir o pool (cria as tabelas na primeira execução)
	if err := database.RunMigrations(config, os.Getenv("MIGRATIONS_PATH")); err != nil {
		return nil, err
	}

	db, err := database.NewPostgresDB(config)
	if err != nil {
		return nil, err
	}

	// Criar repositórios
	chatRepo := repository.NewChatRepository(db)
	retailRepo := repository.NewRetailRepository(db)

	// Criar cliente de fallback do modelo de linguagem
	fallback := llm.NewFallbackClient(os.Getenv("LLM_API_URL"), os.Getenv("LLM_API_KEY"), log)

	// Criar o dispatcher de mensagens
	dispatcher := bot.NewDispatcher(retailRepo, fallback, chatRepo, log)

	// Criar controllers
	chatController := controller.NewChatController(dispatcher, chatRepo, log)

	// Configurar router
	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	app := &App{
		router:         router,
		db:             db,
		chatController: chatController,
	}
	app.setupRoutes("/api/v1")

	return app, nil
}

// setupRoutes configura as rotas da aplicação
func (a *App) setupRoutes(basePath string) {
	api := a.router.Group(basePath)

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.ConfigureChatRoutes(api, a.chatController)

	// Documentação Swagger
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start inicia o servidor HTTP
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	return a.router.Run(":" + port)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
