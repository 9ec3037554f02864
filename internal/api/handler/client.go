package handler

import (
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/registering"
	"github.com/JohnnyAlysson/store-manager-api/pkg/apiErrors"
)

func ListClients(service registering.RegisteringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clients, err := service.ListClients(r.Context())
		if err != nil {
			logrus.Error("Erro ao listar clientes:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar clientes no banco de dados", nil)
			return
		}

		writeJSON(w, http.StatusOK, clients)
	})
}

func GetClient(service registering.RegisteringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeInvalidID(w)
			return
		}

		client, err := service.GetClient(r.Context(), id)
		if err != nil {
			logrus.Error("Erro ao buscar cliente:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar cliente no banco de dados", nil)
			return
		}

		if client == nil {
			apiErrors.WriteError(w, apiErrors.ErrClientNotFound, "Cliente não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, client)
	})
}

func CreateClient(service registering.RegisteringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var client domain.Client
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateClient(r.Context(), &client)
		if err != nil {
			writeRegisteringError(w, err, "Erro ao cadastrar cliente")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateClient(service registering.RegisteringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeInvalidID(w)
			return
		}

		var req domain.UpdateClientRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		req.ID = id

		if err := service.UpdateClient(r.Context(), &req); err != nil {
			writeRegisteringError(w, err, "Erro ao atualizar cliente")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteClient(service registering.RegisteringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeInvalidID(w)
			return
		}

		if err := service.DeleteClient(r.Context(), id); err != nil {
			logrus.Error("Erro ao excluir cliente:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir cliente no banco de dados", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeRegisteringError traduz erros do cadastro para os códigos da API
func writeRegisteringError(w http.ResponseWriter, err error, fallbackMessage string) {
	logrus.Error(fallbackMessage+":", err)

	switch {
	case errors.Is(err, registering.ErrMissingRequiredData):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.Is(err, registering.ErrInvalidCPF), errors.Is(err, registering.ErrNegativeSalary):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)

	case errors.Is(err, registering.ErrDuplicateCPF):
		apiErrors.WriteError(w, apiErrors.ErrDuplicateCPF, err.Error(), nil)

	case errors.Is(err, registering.ErrDatabaseOperation):
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro de operação de banco de dados", nil)

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}
