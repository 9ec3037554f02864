package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/JohnnyAlysson/store-manager-api/infrastructure/database/postgres"
	"github.com/JohnnyAlysson/store-manager-api/infrastructure/repository"
	"github.com/JohnnyAlysson/store-manager-api/internal/api"
	"github.com/JohnnyAlysson/store-manager-api/internal/config"
	"github.com/JohnnyAlysson/store-manager-api/internal/scheduler"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/catalog"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/registering"
	"github.com/JohnnyAlysson/store-manager-api/internal/usecases/selling"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	clientRepo := repository.NewClientRepository(pgConn)
	employeeRepo := repository.NewEmployeeRepository(pgConn)
	productRepo := repository.NewProductRepository(pgConn)
	serviceRepo := repository.NewServiceRepository(pgConn)
	saleRepo := repository.NewSaleRepository(pgConn)

	registeringService := registering.NewService(clientRepo, employeeRepo)
	catalogService := catalog.NewService(productRepo, serviceRepo)

	validator := selling.NewEntityValidator(clientRepo, serviceRepo, employeeRepo)
	sellingService := selling.NewService(pgConn, pgConn, validator, productRepo, saleRepo)

	lowStockReportService := scheduler.NewLowStockReportService(productRepo, cfg)
	if err := lowStockReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório de estoque baixo")
	} else {
		logrus.Info("Agendador do relatório de estoque baixo iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		registeringService,
		catalogService,
		sellingService,
		lowStockReportService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
