package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Códigos de erro estáveis expostos aos clientes da API
const (
	// Erros de entidade (ENT)
	ErrClientNotFound   = "ENT_001" // Cliente não encontrado
	ErrProductNotFound  = "ENT_002" // Produto não encontrado
	ErrServiceNotFound  = "ENT_003" // Serviço não encontrado
	ErrEmployeeNotFound = "ENT_004" // Funcionário não encontrado
	ErrDuplicateCPF     = "ENT_005" // CPF já cadastrado

	// Erros de venda (SALE)
	ErrOutOfStock = "SALE_001" // Produto sem estoque

	// Erros de validação (VAL)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido

	// Erros do servidor (SRV)
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrClientNotFound:      http.StatusNotFound,
	ErrProductNotFound:     http.StatusNotFound,
	ErrServiceNotFound:     http.StatusNotFound,
	ErrEmployeeNotFound:    http.StatusNotFound,
	ErrDuplicateCPF:        http.StatusBadRequest,
	ErrOutOfStock:          http.StatusBadRequest,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
