package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hugohenrick/chatbot-varejo/pkg/bot/intent"
)

// Respostas fixas do pipeline de despacho
const (
	MsgNoData         = "No data found for your request."
	MsgQueryError     = "Error retrieving data."
	MsgServerError    = "Error connecting to the server"
	MsgDontUnderstand = "I don't understand that."
)

// dateLayout reproduz a data curta en-US sem zeros à esquerda (M/D/YYYY)
const dateLayout = "1/2/2006"

// Format renderiza as linhas do resultado no formato da intenção.
// Resultado vazio sempre vira MsgNoData, antes de qualquer ramo por intenção;
// intenção sem formatador vira MsgDontUnderstand. Função total: campos
// numéricos malformados são coagidos para zero, nunca há panic.
func Format(it intent.Intent, rows []Row) string {
	if len(rows) == 0 {
		return MsgNoData
	}

	p, ok := pipelines[it]
	if !ok {
		return MsgDontUnderstand
	}

	return p.format(rows)
}

func formatTopSellingProducts(rows []Row) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%v: $%.2f",
			row["product_name"], toFloat(row["total_sales"])))
	}
	return strings.Join(lines, "\n ")
}

func formatProductDetails(rows []Row) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("ID: %v, Name: %v, Price: $%.2f, Category: %v",
			row["product_id"], row["name"], toFloat(row["price"]), row["category"]))
	}
	return strings.Join(lines, "\n ")
}

func formatSalesDetails(rows []Row) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("Sale ID: %v, Product: %v, Quantity: %v, Date: %s, Total: $%.2f",
			row["sale_id"], row["product_name"], row["quantity"],
			toDate(row["sale_date"]), toFloat(row["total"])))
	}
	return strings.Join(lines, "\n ")
}

func formatCustomerDetails(rows []Row) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("Customer ID: %v, Name: %v, Email: %v, Join Date: %s",
			row["customer_id"], row["name"], row["email"], toDate(row["join_date"])))
	}
	return strings.Join(lines, "\n ")
}

// toFloat coage um valor de coluna para float64; o que não for numérico vira 0
func toFloat(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// toDate renderiza um valor de coluna de data como data curta en-US
func toDate(value interface{}) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format(dateLayout)
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t.Format(dateLayout)
		}
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return t.Format(dateLayout)
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}
