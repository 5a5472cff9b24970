package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/pedromms/vendas-dashboard-api/infrastructure/database/postgres"
	"github.com/pedromms/vendas-dashboard-api/infrastructure/repository"
	"github.com/pedromms/vendas-dashboard-api/internal/api"
	"github.com/pedromms/vendas-dashboard-api/internal/config"
	"github.com/pedromms/vendas-dashboard-api/internal/scheduler"
	"github.com/pedromms/vendas-dashboard-api/internal/usecases/catalog"
	"github.com/pedromms/vendas-dashboard-api/internal/usecases/reporting"
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	productRepo := repository.NewProductRepository(pgConn)
	purchaseRepo := repository.NewPurchaseRepository(pgConn)

	catalogService := catalog.NewService(productRepo, purchaseRepo)
	reportingService := reporting.NewService(cfg, purchaseRepo, productRepo)

	dailyReportService := scheduler.NewDailyReportService(reportingService, cfg)
	if err := dailyReportService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do relatório diário de vendas")
	}

	server, err := api.New(cfg, catalogService, reportingService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria a conexão com o banco de dados e valida com um ping
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
