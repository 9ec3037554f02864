package domain

import "github.com/shopspring/decimal"

// Employee representa um funcionário; obrigatório apenas em vendas de serviços
type Employee struct {
	ID            int             `json:"id"`
	Nome          string          `json:"nome"`
	CPF           string          `json:"cpf"`
	Especialidade string          `json:"especialidade"`
	Salario       decimal.Decimal `json:"salario"`
}

type UpdateEmployeeRequest struct {
	ID            int              `json:"id"`
	Nome          *string          `json:"nome"`
	CPF           *string          `json:"cpf"`
	Especialidade *string          `json:"especialidade"`
	Salario       *decimal.Decimal `json:"salario"`
}
