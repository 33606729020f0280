package intent

import (
	"strings"
	"unicode"
)

// stopwords são tokens que nunca contam como substantivo: artigos, pronomes,
// preposições e os verbos mais comuns em perguntas
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "of": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "from": {}, "with": {}, "by": {}, "about": {},
	"me": {}, "my": {}, "you": {}, "your": {}, "i": {}, "we": {}, "it": {},
	"is": {}, "are": {}, "was": {}, "be": {}, "do": {}, "does": {}, "did": {},
	"can": {}, "could": {}, "will": {}, "would": {}, "show": {}, "give": {},
	"get": {}, "tell": {}, "list": {}, "what": {}, "which": {}, "who": {},
	"how": {}, "when": {}, "where": {}, "why": {}, "please": {}, "want": {},
	"need": {}, "all": {}, "some": {}, "this": {}, "that": {}, "there": {},
	"and": {}, "or": {}, "not": {}, "top": {}, "selling": {},
}

// ExtractEntities extrai da mensagem os tokens com cara de substantivo.
// Categories fica em nil quando nada foi encontrado, marcando "rodou mas
// não achou nada" em vez de uma lista vazia.
func ExtractEntities(message string) EntitySet {
	tokens := strings.FieldsFunc(message, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	})

	var categories []string
	for _, token := range tokens {
		normalized := strings.ToLower(strings.Trim(token, "-"))
		if len(normalized) < 3 {
			continue
		}
		if _, skip := stopwords[normalized]; skip {
			continue
		}
		categories = append(categories, normalized)
	}

	return EntitySet{Categories: categories}
}
