package intent

// Intent representa a intenção detectada em uma mensagem do usuário
type Intent string

const (
	// TopSellingProducts consulta os produtos mais vendidos no último mês
	TopSellingProducts Intent = "topSellingProducts"

	// ProductDetails consulta o catálogo completo de produtos
	ProductDetails Intent = "productDetails"

	// SalesDetails consulta as vendas com o nome do produto
	SalesDetails Intent = "salesDetails"

	// CustomerDetails consulta a lista completa de clientes
	CustomerDetails Intent = "customerDetails"

	// Unknown indica que nenhuma frase conhecida foi encontrada na mensagem
	Unknown Intent = "unknown"
)

// EntitySet contém as entidades extraídas de uma mensagem.
// Categories em nil indica que a extração rodou mas não encontrou nada,
// diferente de uma lista vazia.
type EntitySet struct {
	Categories []string `json:"categories"`
}
