package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/JohnnyAlysson/store-manager-api/infrastructure/repository"
	"github.com/JohnnyAlysson/store-manager-api/internal/config"
	"github.com/JohnnyAlysson/store-manager-api/pkg/utils"
)

// LowStockReportConfig representa a configuração do relatório de estoque baixo
type LowStockReportConfig struct {
	CronSchedule string
	Threshold    int
	Enabled      bool
}

// LowStockReportService agenda e executa o relatório periódico de produtos com
// estoque abaixo do limite. Somente leitura: nunca mexe no estoque.
type LowStockReportService struct {
	scheduler           *gocron.Scheduler
	config              LowStockReportConfig
	productRepo         repository.ProductRepository
	reportRunning       bool
	reportMutex         sync.Mutex
	lastReportStartedAt time.Time
	lastReportEndedAt   time.Time
}

func NewLowStockReportService(
	productRepo repository.ProductRepository,
	appConfig *config.Config,
) *LowStockReportService {
	reportConfig := LowStockReportConfig{
		CronSchedule: appConfig.LowStockReport.CronSchedule,
		Threshold:    appConfig.LowStockReport.Threshold,
		Enabled:      appConfig.LowStockReport.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"threshold":     reportConfig.Threshold,
		"enabled":       reportConfig.Enabled,
	}).Info("Configuração do relatório de estoque baixo carregada")

	return &LowStockReportService{
		scheduler:   scheduler,
		config:      reportConfig,
		productRepo: productRepo,
	}
}

// Start inicia o agendador
func (s *LowStockReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório de estoque baixo desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do relatório de estoque baixo")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunReport(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório de estoque baixo: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do relatório de estoque baixo")
		s.scheduler.Stop()
	}()

	return nil
}

// RunReport executa o relatório imediatamente. Também é acionado manualmente
// pela rota de cron.
func (s *LowStockReportService) RunReport(ctx context.Context) {
	s.reportMutex.Lock()
	if s.reportRunning {
		s.reportMutex.Unlock()
		logrus.Info("Relatório de estoque baixo já em andamento, ignorando")
		return
	}
	s.reportRunning = true
	s.lastReportStartedAt = time.Now()
	s.reportMutex.Unlock()

	defer func() {
		s.reportMutex.Lock()
		s.reportRunning = false
		s.lastReportEndedAt = time.Now()
		s.reportMutex.Unlock()
	}()

	products, err := s.productRepo.ListBelowQuantity(ctx, s.config.Threshold)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar produtos com estoque baixo")
		return
	}

	if len(products) == 0 {
		logrus.WithField("threshold", s.config.Threshold).Info("Nenhum produto com estoque baixo")
		return
	}

	stockValue := 0.0
	for _, product := range products {
		unitPrice, _ := product.Preco.Float64()
		stockValue += unitPrice * float64(product.Qtde)

		logrus.WithFields(logrus.Fields{
			"product_id": product.ID,
			"nome":       product.Nome,
			"qtde":       product.Qtde,
		}).Warn("Produto com estoque baixo")
	}

	logrus.WithFields(logrus.Fields{
		"threshold":         s.config.Threshold,
		"products":          len(products),
		"remaining_value":   utils.RoundWithTwoDecimalPlace(stockValue),
		"report_started_at": s.lastReportStartedAt.Format(time.RFC3339),
	}).Info("Relatório de estoque baixo concluído")
}

// Status retorna o estado atual do agendador para a rota de status
func (s *LowStockReportService) Status() map[string]interface{} {
	s.reportMutex.Lock()
	defer s.reportMutex.Unlock()

	status := map[string]interface{}{
		"enabled":   s.config.Enabled,
		"cron":      s.config.CronSchedule,
		"threshold": s.config.Threshold,
		"running":   s.reportRunning,
	}

	if !s.lastReportStartedAt.IsZero() {
		status["last_started_at"] = s.lastReportStartedAt.Format(time.RFC3339)
	}
	if !s.lastReportEndedAt.IsZero() {
		status["last_ended_at"] = s.lastReportEndedAt.Format(time.RFC3339)
	}

	return status
}
