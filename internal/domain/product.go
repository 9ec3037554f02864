package domain

import "github.com/shopspring/decimal"

// Product representa um produto do estoque. Qtde é mutada apenas pelo fluxo
// de venda (decremento) e pela atualização direta do produto (substituição).
type Product struct {
	ID    int             `json:"id"`
	Nome  string          `json:"nome"`
	Preco decimal.Decimal `json:"preco"`
	Qtde  int             `json:"qtde"`
}

type UpdateProductRequest struct {
	ID    int              `json:"id"`
	Nome  *string          `json:"nome"`
	Preco *decimal.Decimal `json:"preco"`
	Qtde  *int             `json:"qtde"`
}
