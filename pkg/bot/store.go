package bot

import "context"

// Row é uma linha de resultado como mapa coluna -> valor. O formato das
// colunas depende da intenção que selecionou a consulta.
type Row map[string]interface{}

// Store executa as consultas fixas do catálogo contra a base de varejo
type Store interface {
	RunQuery(ctx context.Context, tpl QueryTemplate) ([]Row, error)
}

// Fallback é o modelo de linguagem atrás de uma interface estreita texto ->
// texto. FetchFallback é total: degrada internamente para uma resposta fixa,
// nunca devolve erro ao dispatcher.
type Fallback interface {
	FetchFallback(ctx context.Context, message string) string
}
