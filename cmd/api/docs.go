package main

// @title           Chatbot Varejo API
// @version         1.0
// @description     API de chatbot para consultas sobre dados de varejo

// @contact.name   API Support

// @host      localhost:5000
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
