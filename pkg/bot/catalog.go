package bot

import (
	"github.com/hugohenrick/chatbot-varejo/pkg/bot/intent"
)

// QueryTemplate é uma consulta fixa e sem parâmetros do catálogo.
// Apenas a intenção seleciona o template; nenhum dado do usuário entra no SQL.
type QueryTemplate struct {
	Name string
	SQL  string
}

// pipeline amarra uma intenção conhecida ao seu par consulta/formatador
type pipeline struct {
	query  QueryTemplate
	format func(rows []Row) string
}

// pipelines é a tabela fechada de despacho: intenção -> {consulta, formatador}.
// Unknown não aparece aqui de propósito; a ausência manda o dispatcher para o
// fallback do modelo de linguagem.
var pipelines = map[intent.Intent]pipeline{
	intent.TopSellingProducts: {
		query: QueryTemplate{
			Name: "top_selling_products",
			SQL: `
				SELECT p.name AS product_name, SUM(s.quantity * p.price) AS total_sales
				FROM sales s
				JOIN products p ON s.product_id = p.product_id
				WHERE s.sale_date BETWEEN CURRENT_DATE - INTERVAL '30 days' AND CURRENT_DATE
				GROUP BY p.name
				ORDER BY total_sales DESC
				LIMIT 10`,
		},
		format: formatTopSellingProducts,
	},
	intent.ProductDetails: {
		query: QueryTemplate{
			Name: "product_details",
			SQL:  `SELECT product_id, name, price, category FROM products`,
		},
		format: formatProductDetails,
	},
	intent.SalesDetails: {
		query: QueryTemplate{
			Name: "sales_details",
			SQL: `
				SELECT s.sale_id, p.name AS product_name, s.quantity, s.sale_date, s.total
				FROM sales s
				JOIN products p ON s.product_id = p.product_id`,
		},
		format: formatSalesDetails,
	},
	intent.CustomerDetails: {
		query: QueryTemplate{
			Name: "customer_details",
			SQL:  `SELECT customer_id, name, email, join_date FROM customers`,
		},
		format: formatCustomerDetails,
	},
}

// Resolve retorna o template de consulta da intenção, quando existir.
// Unknown (e qualquer valor fora da tabela) resolve para ausente.
func Resolve(it intent.Intent) (QueryTemplate, bool) {
	p, ok := pipelines[it]
	return p.query, ok
}
