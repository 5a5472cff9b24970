package scheduler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/pedromms/vendas-dashboard-api/internal/domain"
	"github.com/pedromms/vendas-dashboard-api/internal/usecases/reporting/mocks"
)

func TestDailyReportService_RunDailyReport(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(service *mocks.MockReportingService)
		expectErr bool
	}{
		{
			name: "publica métricas e top produtos nos logs",
			setup: func(service *mocks.MockReportingService) {
				service.EXPECT().GetDashboardMetrics().Return(&domain.DashboardMetrics{
					TotalProdutosVendidos: 10,
					Formatados: domain.MetricasFormatadas{
						FaturamentoTotal: "R$ 1500,00",
						TicketMedio:      "R$ 150,00",
						TaxaDeConversao:  "0,20%",
					},
				}, nil)
				service.EXPECT().GetTopProductsByRevenue().Return([]*domain.ProdutoReceita{
					{ID: "aB3xYz", Titulo: "Curso de Go", Quantidade: 6, Valor: "R$ 900,00"},
				}, nil)
			},
			expectErr: false,
		},
		{
			name: "falha ao calcular métricas interrompe o relatório",
			setup: func(service *mocks.MockReportingService) {
				service.EXPECT().GetDashboardMetrics().Return(nil, errors.New("conexão recusada"))
			},
			expectErr: true,
		},
		{
			name: "falha ao calcular top produtos interrompe o relatório",
			setup: func(service *mocks.MockReportingService) {
				service.EXPECT().GetDashboardMetrics().Return(&domain.DashboardMetrics{}, nil)
				service.EXPECT().GetTopProductsByRevenue().Return(nil, errors.New("timeout"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reportingService := mocks.NewMockReportingService(ctrl)
			tt.setup(reportingService)

			service := &DailyReportService{
				reportingService: reportingService,
			}

			err := service.RunDailyReport()

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.False(t, service.reportRunning)
			assert.False(t, service.lastRunCompletedAt.IsZero())
		})
	}
}

func TestDailyReportService_RunDailyReport_NaoExecutaConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	reportingService := mocks.NewMockReportingService(ctrl)

	service := &DailyReportService{
		reportingService: reportingService,
		reportRunning:    true,
	}

	// Com uma execução em andamento a chamada retorna sem consultar o
	// serviço de métricas
	err := service.RunDailyReport()

	assert.NoError(t, err)
}
