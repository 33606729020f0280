package main

import (
	"log"
	"os"

	"github.com/hugohenrick/chatbot-varejo/internal/infrastructure/database"
	"github.com/joho/godotenv"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	config := database.NewPostgresConfigFromEnv()

	// Executar as migrações
	if err := database.RunMigrations(config, os.Getenv("MIGRATIONS_PATH")); err != nil {
		log.Fatalf("Erro ao executar migrações: %v", err)
	}

	log.Println("Migrações executadas com sucesso!")
}
