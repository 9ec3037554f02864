package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/catalog"
	"github.com/JohnnyAlysson/store-manager-api/pkg/apiErrors"
)

func ListProducts(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		products, err := service.ListProducts(r.Context())
		if err != nil {
			logrus.Error("Erro ao listar produtos:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar produtos no banco de dados", nil)
			return
		}

		writeJSON(w, http.StatusOK, products)
	})
}

func GetProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeInvalidID(w)
			return
		}

		product, err := service.GetProduct(r.Context(), id)
		if err != nil {
			logrus.Error("Erro ao buscar produto:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar produto no banco de dados", nil)
			return
		}

		if product == nil {
			apiErrors.WriteError(w, apiErrors.ErrProductNotFound, "Produto não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, product)
	})
}

func CreateProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var product domain.Product
		if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateProduct(r.Context(), &product)
		if err != nil {
			writeCatalogError(w, err, "Erro ao cadastrar produto")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeInvalidID(w)
			return
		}

		var req domain.UpdateProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		req.ID = id

		if err := service.UpdateProduct(r.Context(), &req); err != nil {
			writeCatalogError(w, err, "Erro ao atualizar produto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeInvalidID(w)
			return
		}

		if err := service.DeleteProduct(r.Context(), id); err != nil {
			logrus.Error("Erro ao excluir produto:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir produto no banco de dados", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeCatalogError traduz erros do catálogo para os códigos da API
func writeCatalogError(w http.ResponseWriter, err error, fallbackMessage string) {
	logrus.Error(fallbackMessage+":", err)

	switch {
	case errors.Is(err, catalog.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, catalog.ErrNegativePrice), errors.Is(err, catalog.ErrNegativeQuantity):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, catalog.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro de operação de banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}
