package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/JohnnyAlysson/store-manager-api/internal/scheduler"
	"github.com/JohnnyAlysson/store-manager-api/pkg/apiErrors"
)

// RunLowStockReport dispara a execução manual do relatório de estoque baixo.
// A execução acontece em background; execuções sobrepostas são ignoradas pelo
// próprio serviço.
func RunLowStockReport(service *scheduler.LowStockReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunLowStockReport")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de relatório de estoque baixo não disponível", nil)
			return
		}

		// O contexto da requisição morre junto com a resposta; o relatório
		// roda em background com contexto próprio.
		go service.RunReport(context.Background())

		writeJSON(w, http.StatusAccepted, map[string]string{
			"status":  "accepted",
			"message": "Relatório de estoque baixo iniciado",
		})
	}
}

// GetCronStatus retorna o estado atual do agendador
func GetCronStatus(service *scheduler.LowStockReportService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de relatório de estoque baixo não disponível", nil)
			return
		}

		writeJSON(w, http.StatusOK, service.Status())
	}
}
