package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/registering"
	"github.com/JohnnyAlysson/store-manager-api/pkg/apiErrors"
)

func ListEmployees(service registering.RegisteringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		employees, err := service.ListEmployees(r.Context())
		if err != nil {
			logrus.Error("Erro ao listar funcionários:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar funcionários no banco de dados", nil)
			return
		}

		writeJSON(w, http.StatusOK, employees)
	})
}

func GetEmployee(service registering.RegisteringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeInvalidID(w)
			return
		}

		employee, err := service.GetEmployee(r.Context(), id)
		if err != nil {
			logrus.Error("Erro ao buscar funcionário:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar funcionário no banco de dados", nil)
			return
		}

		if employee == nil {
			apiErrors.WriteError(w, apiErrors.ErrEmployeeNotFound, "Funcionário não encontrado", nil)
			return
		}

		writeJSON(w, http.StatusOK, employee)
	})
}

func CreateEmployee(service registering.RegisteringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var employee domain.Employee
		if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		created, err := service.CreateEmployee(r.Context(), &employee)
		if err != nil {
			writeRegisteringError(w, err, "Erro ao cadastrar funcionário")
			return
		}

		writeJSON(w, http.StatusCreated, created)
	})
}

func UpdateEmployee(service registering.RegisteringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeInvalidID(w)
			return
		}

		var req domain.UpdateEmployeeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		req.ID = id

		if err := service.UpdateEmployee(r.Context(), &req); err != nil {
			writeRegisteringError(w, err, "Erro ao atualizar funcionário")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func DeleteEmployee(service registering.RegisteringService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeInvalidID(w)
			return
		}

		if err := service.DeleteEmployee(r.Context(), id); err != nil {
			logrus.Error("Erro ao excluir funcionário:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao excluir funcionário no banco de dados", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
