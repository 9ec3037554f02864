package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/JohnnyAlysson/store-manager-api/internal/domain"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/selling"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/selling/mocks"
	"github.com/JohnnyAlysson/store-manager-api/pkg/apiErrors"
)

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	return apiErr
}

func TestRecordProductSale(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(service *mocks.MockSellingService)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Venda registrada retorna 201 com recibo",
			body: `{"id_cliente": 1, "id_produto": 7}`,
			setup: func(service *mocks.MockSellingService) {
				service.EXPECT().
					RecordProductSale(gomock.Any(), 1, 7).
					Return(&domain.ProductSale{
						ID:        42,
						Recibo:    "Ab3xYz",
						DataVenda: time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC),
						ClientID:  1,
						ProductID: 7,
					}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)

				var sale domain.ProductSale
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&sale))
				assert.Equal(t, 42, sale.ID)
				assert.Equal(t, "Ab3xYz", sale.Recibo)
			},
		},
		{
			name: "Cliente inexistente retorna 404 com código próprio",
			body: `{"id_cliente": 999, "id_produto": 7}`,
			setup: func(service *mocks.MockSellingService) {
				service.EXPECT().
					RecordProductSale(gomock.Any(), 999, 7).
					Return(nil, &selling.EntityNotFoundError{Kind: selling.EntityClient, ID: 999})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Equal(t, apiErrors.ErrClientNotFound, decodeAPIError(t, rec).Code)
			},
		},
		{
			name: "Produto sem estoque retorna 400",
			body: `{"id_cliente": 1, "id_produto": 7}`,
			setup: func(service *mocks.MockSellingService) {
				service.EXPECT().
					RecordProductSale(gomock.Any(), 1, 7).
					Return(nil, &selling.OutOfStockError{ProductID: 7})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrOutOfStock, decodeAPIError(t, rec).Code)
			},
		},
		{
			name: "Falha de armazenamento retorna 500 genérico",
			body: `{"id_cliente": 1, "id_produto": 7}`,
			setup: func(service *mocks.MockSellingService) {
				service.EXPECT().
					RecordProductSale(gomock.Any(), 1, 7).
					Return(nil, selling.ErrStorageUnavailable)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Equal(t, apiErrors.ErrDatabaseOperation, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:  "Corpo sem id_produto retorna 400",
			body:  `{"id_cliente": 1}`,
			setup: func(service *mocks.MockSellingService) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:  "Corpo malformado retorna 400",
			body:  `{"id_cliente": `,
			setup: func(service *mocks.MockSellingService) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrInvalidRequest, decodeAPIError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockSellingService(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodPost, "/v1/sales/products", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			RecordProductSale(service).ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestRecordServiceSale(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		setup    func(service *mocks.MockSellingService)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Venda de serviço registrada retorna 201",
			body: `{"id_cliente": 1, "id_servico": 2, "id_funcionario": 3}`,
			setup: func(service *mocks.MockSellingService) {
				service.EXPECT().
					RecordServiceSale(gomock.Any(), 1, 2, 3).
					Return(&domain.ServiceSale{
						ID:         9,
						Recibo:     "Zx9QwE",
						DataVenda:  time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC),
						ClientID:   1,
						ServiceID:  2,
						EmployeeID: 3,
					}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)

				var sale domain.ServiceSale
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&sale))
				assert.Equal(t, 9, sale.ID)
				assert.Equal(t, 3, sale.EmployeeID)
			},
		},
		{
			name: "Funcionário inexistente retorna 404",
			body: `{"id_cliente": 1, "id_servico": 2, "id_funcionario": 999}`,
			setup: func(service *mocks.MockSellingService) {
				service.EXPECT().
					RecordServiceSale(gomock.Any(), 1, 2, 999).
					Return(nil, &selling.EntityNotFoundError{Kind: selling.EntityEmployee, ID: 999})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Equal(t, apiErrors.ErrEmployeeNotFound, decodeAPIError(t, rec).Code)
			},
		},
		{
			name:  "Corpo sem id_funcionario retorna 400",
			body:  `{"id_cliente": 1, "id_servico": 2}`,
			setup: func(service *mocks.MockSellingService) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeAPIError(t, rec).Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := mocks.NewMockSellingService(ctrl)
			tt.setup(service)

			req := httptest.NewRequest(http.MethodPost, "/v1/sales/services", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			RecordServiceSale(service).ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}

func TestListProductSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := mocks.NewMockSellingService(ctrl)
	service.EXPECT().
		ListProductSales(gomock.Any()).
		Return([]*domain.ProductSale{
			{ID: 42, Recibo: "Ab3xYz", ClientID: 1, ProductID: 7},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/sales/products", nil)
	rec := httptest.NewRecorder()

	ListProductSales(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var sales []*domain.ProductSale
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sales))
	require.Len(t, sales, 1)
	assert.Equal(t, "Ab3xYz", sales[0].Recibo)
}
