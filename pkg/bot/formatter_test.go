package bot

import (
	"testing"
	"time"

	"github.com/hugohenrick/chatbot-varejo/pkg/bot/intent"
	"github.com/stretchr/testify/assert"
)

func TestFormatEmptyRows(t *testing.T) {
	intents := []intent.Intent{
		intent.TopSellingProducts,
		intent.ProductDetails,
		intent.SalesDetails,
		intent.CustomerDetails,
		intent.Unknown,
	}

	for _, it := range intents {
		t.Run(string(it), func(t *testing.T) {
			assert.Equal(t, MsgNoData, Format(it, nil))
			assert.Equal(t, MsgNoData, Format(it, []Row{}))
		})
	}
}

func TestFormatTopSellingProducts(t *testing.T) {
	tests := []struct {
		name     string
		rows     []Row
		expected string
	}{
		{
			name:     "single row",
			rows:     []Row{{"product_name": "Widget", "total_sales": 150.5}},
			expected: "Widget: $150.50",
		},
		{
			name: "rounding is plain two-decimal formatting",
			rows: []Row{{"product_name": "Widget", "total_sales": 19.995}},
			// 19.995 em float64 fica abaixo de 19.995; %.2f rende 19.99
			expected: "Widget: $19.99",
		},
		{
			name:     "non-numeric total coerced to zero",
			rows:     []Row{{"product_name": "X", "total_sales": "abc"}},
			expected: "X: $0.00",
		},
		{
			name: "multiple rows joined with newline and space",
			rows: []Row{
				{"product_name": "A", "total_sales": int64(10)},
				{"product_name": "B", "total_sales": "2.5"},
			},
			expected: "A: $10.00\n B: $2.50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(intent.TopSellingProducts, tt.rows))
		})
	}
}

func TestFormatProductDetails(t *testing.T) {
	rows := []Row{
		{"product_id": int64(1), "name": "Arroz 5kg", "price": 24.9, "category": "Mercearia"},
		{"product_id": int64(2), "name": "Feijão 1kg", "price": "bogus", "category": "Mercearia"},
	}

	expected := "ID: 1, Name: Arroz 5kg, Price: $24.90, Category: Mercearia\n " +
		"ID: 2, Name: Feijão 1kg, Price: $0.00, Category: Mercearia"
	assert.Equal(t, expected, Format(intent.ProductDetails, rows))
}

func TestFormatSalesDetails(t *testing.T) {
	saleDate := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	rows := []Row{
		{
			"sale_id":      int64(7),
			"product_name": "Café 500g",
			"quantity":     int32(2),
			"sale_date":    saleDate,
			"total":        37.8,
		},
	}

	expected := "Sale ID: 7, Product: Café 500g, Quantity: 2, Date: 3/5/2024, Total: $37.80"
	assert.Equal(t, expected, Format(intent.SalesDetails, rows))
}

func TestFormatCustomerDetails(t *testing.T) {
	joinDate := time.Date(2023, time.November, 21, 0, 0, 0, 0, time.UTC)
	rows := []Row{
		{"customer_id": int64(1), "name": "A", "email": "a@x.com", "join_date": joinDate},
	}

	expected := "Customer ID: 1, Name: A, Email: a@x.com, Join Date: 11/21/2023"
	assert.Equal(t, expected, Format(intent.CustomerDetails, rows))
}

func TestFormatUnknownIntent(t *testing.T) {
	rows := []Row{{"whatever": 1}}
	assert.Equal(t, MsgDontUnderstand, Format(intent.Unknown, rows))
	assert.Equal(t, MsgDontUnderstand, Format(intent.Intent("other"), rows))
}

func TestToFloatCoercion(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected float64
	}{
		{"float64", 1.5, 1.5},
		{"float32", float32(2), 2},
		{"int", 3, 3},
		{"int32", int32(4), 4},
		{"int64", int64(5), 5},
		{"numeric string", "6.25", 6.25},
		{"non-numeric string", "abc", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, toFloat(tt.value))
		})
	}
}

func TestToDate(t *testing.T) {
	assert.Equal(t, "1/2/2006", toDate(time.Date(2006, time.January, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "12/31/2020", toDate("2020-12-31"))
	assert.Equal(t, "not-a-date", toDate("not-a-date"))
}
