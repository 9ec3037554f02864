package catalog

import "errors"

var (
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrNegativePrice       = errors.New("preço não pode ser negativo")
	ErrNegativeQuantity    = errors.New("quantidade não pode ser negativa")
	ErrDatabaseOperation   = errors.New("erro de operação de banco de dados")
)
