package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/catalog"
	"github.com/JohnnyAlysson/store-manager-api/pkg/apiErrors"
)

func ListServices(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		services, err := service.ListServices(r.Context())
		if err != nil {
			logrus.Error("Erro ao listar serviços:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar serviços no banco de dados", nil)
			return
		}

		writeJSON(w, http.StatusOK, services)
	})
}

func GetService(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeInvalidID(w)
			return
		}

		svc, err := service.GetService(r.Context(), id)
		if err != nil {
			logrus.Error("Erro ao buscar serviço:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar serviço no banco de dados", nil)
			return
		}

		if svc == nil {
			apiErrors.WriteError(w, apiErrors.ErrServiceNotFound, "Serviço não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, svc)
	})
}

func CreateService(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var svc domain.Service
		if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateService(r.Context(), &svc)
		if err != nil {
			writeCatalogError(w, err, "Erro ao cadastrar serviço")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateService(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeInvalidID(w)
			return
		}

		var req domain.UpdateServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		req.ID = id

		if err := service.UpdateService(r.Context(), &req); err != nil {
			writeCatalogError(w, err, "Erro ao atualizar serviço")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteService(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeInvalidID(w)
			return
		}

		if err := service.DeleteService(r.Context(), id); err != nil {
			logrus.Error("Erro ao excluir serviço:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir serviço no banco de dados", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
