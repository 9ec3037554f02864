package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/selling"
	"github.com/JohnnyAlysson/store-manager-api/pkg/apiErrors"
)

// ProductSaleRequest é o corpo esperado em POST /v1/sales/products
type ProductSaleRequest struct {
	ClientID  int `json:"id_cliente"`
	ProductID int `json:"id_produto"`
}

// ServiceSaleRequest é o corpo esperado em POST /v1/sales/services
type ServiceSaleRequest struct {
	ClientID   int `json:"id_cliente"`
	ServiceID  int `json:"id_servico"`
	EmployeeID int `json:"id_funcionario"`
}

func ListProductSales(service selling.SellingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.ListProductSales(r.Context())
		if err != nil {
			logrus.Error("Erro ao listar vendas de produtos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar vendas no banco de dados", nil)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	})
}

func ListServiceSales(service selling.SellingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sales, err := service.ListServiceSales(r.Context())
		if err != nil {
			logrus.Error("Erro ao listar vendas de serviços:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar vendas no banco de dados", nil)
			return
		}

		writeJSON(w, http.StatusOK, sales)
	})
}

func RecordProductSale(service selling.SellingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ProductSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if req.ClientID < 1 || req.ProductID < 1 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "id_cliente e id_produto são obrigatórios", nil)
			return
		}

		sale, err := service.RecordProductSale(r.Context(), req.ClientID, req.ProductID)
		if err != nil {
			writeSellingError(w, err, "Erro ao registrar venda de produto")
			return
		}

		writeJSON(w, http.StatusCreated, sale)
	})
}

func RecordServiceSale(service selling.SellingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ServiceSaleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if req.ClientID < 1 || req.ServiceID < 1 || req.EmployeeID < 1 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "id_cliente, id_servico e id_funcionario são obrigatórios", nil)
			return
		}

		sale, err := service.RecordServiceSale(r.Context(), req.ClientID, req.ServiceID, req.EmployeeID)
		if err != nil {
			writeSellingError(w, err, "Erro ao registrar venda de serviço")
			return
		}

		writeJSON(w, http.StatusCreated, sale)
	})
}

// writeSellingError traduz erros do fluxo de venda para os códigos da API. A
// entidade ausente é identificada pelo tipo para que o cliente saiba qual
// referência corrigir.
func writeSellingError(w http.ResponseWriter, err error, fallbackMessage string) {
	logrus.Error(fallbackMessage+":", err)

	var notFound *selling.EntityNotFoundError
	if errors.As(err, &notFound) {
		apiErrors.WriteError(w, notFoundCode(notFound.Kind), notFound.Error(), nil)
		return
	}

	var outOfStock *selling.OutOfStockError
	if errors.As(err, &outOfStock) {
		apiErrors.WriteError(w, apiErrors.ErrOutOfStock, outOfStock.Error(), map[string]int{
			"id_produto": outOfStock.ProductID,
		})
		return
	}

	switch {
	case errors.Is(err, selling.ErrStorageUnavailable):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro de comunicação com o banco de dados", nil)

	case errors.Is(err, selling.ErrTransactionFailed):
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao concluir a transação de venda", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}

func notFoundCode(kind string) string {
	switch kind {
	case selling.EntityClient:
		return apiErrors.ErrClientNotFound
	case selling.EntityProduct:
		return apiErrors.ErrProductNotFound
	case selling.EntityService:
		return apiErrors.ErrServiceNotFound
	case selling.EntityEmployee:
		return apiErrors.ErrEmployeeNotFound
	}

	// Não deveria acontecer; toda entidade validada tem código próprio
	logrus.Warn(fmt.Sprintf("tipo de entidade sem código de erro mapeado: %s", kind))
	return apiErrors.ErrInternalServer
}
