package domain

import "github.com/shopspring/decimal"

// Service representa um serviço oferecido pela loja. Não há estoque.
type Service struct {
	ID    int             `json:"id"`
	Nome  string          `json:"nome"`
	Preco decimal.Decimal `json:"preco"`
}

type UpdateServiceRequest struct {
	ID    int              `json:"id"`
	Nome  *string          `json:"nome"`
	Preco *decimal.Decimal `json:"preco"`
}
