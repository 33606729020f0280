package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/chatbot-varejo/pkg/bot"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RetailRepository executa as consultas fixas do catálogo contra as tabelas
// de varejo (products, sales, customers)
type RetailRepository struct {
	db *pgxpool.Pool
}

// NewRetailRepository cria um novo repositório de consultas de varejo
func NewRetailRepository(db *pgxpool.Pool) bot.Store {
	return &RetailRepository{
		db: db,
	}
}

// RunQuery executa um template do catálogo e devolve as linhas como mapas
// coluna -> valor. O formato das colunas varia por template; nenhum parâmetro
// do usuário entra na consulta.
func (r *RetailRepository) RunQuery(ctx context.Context, tpl bot.QueryTemplate) ([]bot.Row, error) {
	rows, err := r.db.Query(ctx, tpl.SQL)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar consulta %s: %w", tpl.Name, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()

	var result []bot.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("erro ao ler linha da consulta %s: %w", tpl.Name, err)
		}

		row := make(bot.Row, len(fields))
		for i, field := range fields {
			row[field.Name] = normalizeValue(values[i])
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao ler linhas da consulta %s: %w", tpl.Name, err)
	}

	return result, nil
}

// normalizeValue converte tipos do pgx para valores Go simples, para que o
// formatador enxergue apenas números, strings e time.Time
func normalizeValue(value interface{}) interface{} {
	switch v := value.(type) {
	case pgtype.Numeric:
		f, err := v.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	default:
		return value
	}
}
