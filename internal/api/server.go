package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"

	"github.com/JohnnyAlysson/store-manager-api/internal/api/handler"
	"github.com/JohnnyAlysson/store-manager-api/internal/api/handler/router"
	"github.com/JohnnyAlysson/store-manager-api/internal/config"
	"github.com/JohnnyAlysson/store-manager-api/internal/scheduler"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/catalog"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/registering"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/selling"
	"github.com/JohnnyAlysson/store-manager-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	registeringService registering.RegisteringService,
	catalogService catalog.CatalogService,
	sellingService selling.SellingService,
	lowStockReportService *scheduler.LowStockReportService,
) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Clients(registeringService)...),
		router.WithRoutes(handler.Employees(registeringService)...),
		router.WithRoutes(handler.Products(catalogService)...),
		router.WithRoutes(handler.Services(catalogService)...),
		router.WithRoutes(handler.Sales(sellingService)...),
		router.WithRoutes(handler.CronJobs(lowStockReportService)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
	}

	chain := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chain,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
