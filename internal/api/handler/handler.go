package handler

import (
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/JohnnyAlysson/store-manager-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// pathID extrai o parâmetro :id da URL como inteiro
func pathID(r *http.Request) (int, bool) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if raw == "" {
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, false
	}

	return id, true
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

func writeInvalidID(w http.ResponseWriter) {
	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID deve ser um inteiro positivo", nil)
}
