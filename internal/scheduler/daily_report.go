// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/pedromms/vendas-dashboard-api/internal/config"
	"github.com/pedromms/vendas-dashboard-api/internal/usecases/reporting"
)

type DailyReportConfig struct {
	CronSchedule string
	Enabled      bool
}

// DailyReportService publica nos logs, uma vez por dia, os KPIs do
// dashboard (faturamento, ticket médio, conversão e top produtos). Não
// persiste nada: as métricas continuam sendo calculadas sob demanda.
type DailyReportService struct {
	scheduler          *gocron.Scheduler
	reportingService   reporting.ReportingService
	config             DailyReportConfig
	reportRunning      bool
	reportMutex        sync.Mutex
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
}

func NewDailyReportService(
	reportingService reporting.ReportingService,
	cfg *config.Config,
) *DailyReportService {
	reportConfig := DailyReportConfig{
		CronSchedule: cfg.DailyReport.CronSchedule, // Default: 7h da manhã todos os dias
		Enabled:      cfg.DailyReport.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
	}).Info("Configuração do relatório diário de vendas carregada")

	return &DailyReportService{
		scheduler:        scheduler,
		reportingService: reportingService,
		config:           reportConfig,
	}
}

func (s *DailyReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório diário de vendas desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do relatório diário de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunDailyReport(); err != nil {
			logrus.WithError(err).Error("Erro na geração do relatório diário de vendas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório diário de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do relatório diário de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DailyReportService) RunDailyReport() error {
	s.reportMutex.Lock()
	defer s.reportMutex.Unlock()

	if s.reportRunning {
		logrus.Warn("Relatório diário de vendas já está em execução")
		return nil
	}

	s.reportRunning = true
	s.lastRunStartedAt = time.Now()
	defer func() {
		s.reportRunning = false
		s.lastRunCompletedAt = time.Now()
	}()

	logrus.Info("Gerando relatório diário de vendas")

	metricas, err := s.reportingService.GetDashboardMetrics()
	if err != nil {
		return fmt.Errorf("erro ao calcular métricas do relatório diário: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"faturamento_total": metricas.Formatados.FaturamentoTotal,
		"ticket_medio":      metricas.Formatados.TicketMedio,
		"taxa_conversao":    metricas.Formatados.TaxaDeConversao,
		"total_vendas":      metricas.TotalProdutosVendidos,
	}).Info("Relatório diário: métricas gerais")

	topProdutos, err := s.reportingService.GetTopProductsByRevenue()
	if err != nil {
		return fmt.Errorf("erro ao calcular top produtos do relatório diário: %w", err)
	}

	for i, produto := range topProdutos {
		logrus.WithFields(logrus.Fields{
			"posicao":    i + 1,
			"produto_id": produto.ID,
			"titulo":     produto.Titulo,
			"quantidade": produto.Quantidade,
			"receita":    produto.Valor,
		}).Info("Relatório diário: produto por receita")
	}

	logrus.Info("Relatório diário de vendas concluído")

	return nil
}
