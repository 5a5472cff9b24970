package handler

import (
	"net/http"

	"github.com/pedromms/vendas-dashboard-api/internal/usecases/reporting"
	"github.com/pedromms/vendas-dashboard-api/pkg/apiErrors"
	"github.com/pedromms/vendas-dashboard-api/pkg/log"
)

// GetDashboardMetrics retorna as métricas gerais de vendas do dashboard.
// Falha no banco responde 500 genérico: zero e erro são coisas distintas.
func GetDashboardMetrics(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metricas, err := service.GetDashboardMetrics()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao buscar métricas")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro interno ao consultar o banco de dados.", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(metricas); err != nil {
			logger.WithError(err).Error("dashboard: erro ao enviar resposta")
		}
	})
}

// GetTopProductsByRevenue retorna os 3 produtos com maior receita
func GetTopProductsByRevenue(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		produtos, err := service.GetTopProductsByRevenue()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao buscar top produtos por receita")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro interno ao consultar o banco de dados.", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(produtos); err != nil {
			logger.WithError(err).Error("dashboard: erro ao enviar resposta")
		}
	})
}

// GetMonthlyRevenueChart retorna a série mensal do gráfico de linha
func GetMonthlyRevenueChart(service reporting.ReportingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		grafico, err := service.GetMonthlyRevenueChart()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao buscar vendas mensais")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor ao processar vendas.", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(grafico); err != nil {
			logger.WithError(err).Error("dashboard: erro ao enviar resposta")
		}
	})
}
