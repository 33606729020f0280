package intent

import "strings"

// phrase associa uma frase fixa a uma intenção conhecida
type phrase struct {
	text   string
	intent Intent
}

// phrases é a tabela fechada de frases reconhecidas, em ordem de prioridade.
// A primeira que aparecer na mensagem vence.
var phrases = []phrase{
	{"top-selling products", TopSellingProducts},
	{"product details", ProductDetails},
	{"sales details", SalesDetails},
	{"customer details", CustomerDetails},
}

// Classify mapeia o texto da mensagem para uma das intenções conhecidas.
// A comparação é por substring, sem diferenciar maiúsculas de minúsculas.
// Função pura: sempre retorna um valor, nunca falha.
func Classify(message string) Intent {
	lowered := strings.ToLower(message)

	for _, p := range phrases {
		if strings.Contains(lowered, p.text) {
			return p.intent
		}
	}

	return Unknown
}
