package handler

import (
	"net/http"

	"github.com/JohnnyAlysson/store-manager-api/internal/api/handler/router"
	"github.com/JohnnyAlysson/store-manager-api/internal/scheduler"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/catalog"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/registering"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/selling"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Clients(service registering.RegisteringService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(service),
		},
		{
			Path:    "/v1/clients",
			Method:  http.MethodPost,
			Handler: CreateClient(service),
		},
		{
			Path:    "/v1/clients/:id",
			Method:  http.MethodGet,
			Handler: GetClient(service),
		},
		{
			Path:    "/v1/clients/:id",
			Method:  http.MethodPut,
			Handler: UpdateClient(service),
		},
		{
			Path:    "/v1/clients/:id",
			Method:  http.MethodDelete,
			Handler: DeleteClient(service),
		},
	}
}

func Employees(service registering.RegisteringService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/employees",
			Method:  http.MethodGet,
			Handler: ListEmployees(service),
		},
		{
			Path:    "/v1/employees",
			Method:  http.MethodPost,
			Handler: CreateEmployee(service),
		},
		{
			Path:    "/v1/employees/:id",
			Method:  http.MethodGet,
			Handler: GetEmployee(service),
		},
		{
			Path:    "/v1/employees/:id",
			Method:  http.MethodPut,
			Handler: UpdateEmployee(service),
		},
		{
			Path:    "/v1/employees/:id",
			Method:  http.MethodDelete,
			Handler: DeleteEmployee(service),
		},
	}
}

func Products(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/v1/products",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodGet,
			Handler: GetProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodPut,
			Handler: UpdateProduct(service),
		},
		{
			Path:    "/v1/products/:id",
			Method:  http.MethodDelete,
			Handler: DeleteProduct(service),
		},
	}
}

func Services(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/services",
			Method:  http.MethodGet,
			Handler: ListServices(service),
		},
		{
			Path:    "/v1/services",
			Method:  http.MethodPost,
			Handler: CreateService(service),
		},
		{
			Path:    "/v1/services/:id",
			Method:  http.MethodGet,
			Handler: GetService(service),
		},
		{
			Path:    "/v1/services/:id",
			Method:  http.MethodPut,
			Handler: UpdateService(service),
		},
		{
			Path:    "/v1/services/:id",
			Method:  http.MethodDelete,
			Handler: DeleteService(service),
		},
	}
}

// Sales expõe apenas criação e listagem; vendas são append-only, sem rota de
// atualização ou exclusão.
func Sales(service selling.SellingService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales/products",
			Method:  http.MethodGet,
			Handler: ListProductSales(service),
		},
		{
			Path:    "/v1/sales/products",
			Method:  http.MethodPost,
			Handler: RecordProductSale(service),
		},
		{
			Path:    "/v1/sales/services",
			Method:  http.MethodGet,
			Handler: ListServiceSales(service),
		},
		{
			Path:    "/v1/sales/services",
			Method:  http.MethodPost,
			Handler: RecordServiceSale(service),
		},
	}
}

func CronJobs(lowStockService *scheduler.LowStockReportService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/low-stock/run",
			Method:  http.MethodPost,
			Handler: RunLowStockReport(lowStockService),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(lowStockService),
		},
	}
}
