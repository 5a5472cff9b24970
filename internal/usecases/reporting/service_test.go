package reporting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/pedromms/vendas-dashboard-api/infrastructure/repository/mocks"
	"github.com/pedromms/vendas-dashboard-api/internal/domain"
)

const testTotalLeads = 5000

func newTestService(t *testing.T) (*Service, *mocks.MockPurchaseRepository, *mocks.MockProductRepository) {
	ctrl := gomock.NewController(t)

	purchaseRepo := mocks.NewMockPurchaseRepository(ctrl)
	productRepo := mocks.NewMockProductRepository(ctrl)

	service := &Service{
		purchaseRepository: purchaseRepo,
		productRepository:  productRepo,
		totalLeads:         testTotalLeads,
	}

	return service, purchaseRepo, productRepo
}

func TestService_GetDashboardMetrics(t *testing.T) {
	t.Run("sem vendas retorna métricas zeradas", func(t *testing.T) {
		service, purchaseRepo, _ := newTestService(t)

		purchaseRepo.EXPECT().Count().Return(0, nil)
		purchaseRepo.EXPECT().SumCurrentProductPrice().Return(0.0, nil)

		metricas, err := service.GetDashboardMetrics()

		assert.NoError(t, err)
		assert.Equal(t, &domain.DashboardMetrics{
			TicketMedio:           0,
			FaturamentoTotal:      0,
			TotalProdutosVendidos: 0,
			TaxaDeConversao:       0,
			Formatados: domain.MetricasFormatadas{
				FaturamentoTotal: "R$ 0,00",
				TicketMedio:      "R$ 0,00",
				TaxaDeConversao:  "0,00%",
			},
		}, metricas)
	})

	t.Run("calcula ticket médio e taxa de conversão", func(t *testing.T) {
		service, purchaseRepo, _ := newTestService(t)

		purchaseRepo.EXPECT().Count().Return(10, nil)
		purchaseRepo.EXPECT().SumCurrentProductPrice().Return(1500.0, nil)

		metricas, err := service.GetDashboardMetrics()

		assert.NoError(t, err)
		assert.Equal(t, 1500.0, metricas.FaturamentoTotal)
		assert.Equal(t, 150.0, metricas.TicketMedio)
		assert.Equal(t, 10, metricas.TotalProdutosVendidos)
		// 10 vendas sobre 5000 leads
		assert.Equal(t, 0.2, metricas.TaxaDeConversao)
		assert.Equal(t, "R$ 1500,00", metricas.Formatados.FaturamentoTotal)
		assert.Equal(t, "R$ 150,00", metricas.Formatados.TicketMedio)
		assert.Equal(t, "0,20%", metricas.Formatados.TaxaDeConversao)
	})

	t.Run("zero leads configurados não divide por zero", func(t *testing.T) {
		service, purchaseRepo, _ := newTestService(t)
		service.totalLeads = 0

		purchaseRepo.EXPECT().Count().Return(7, nil)
		purchaseRepo.EXPECT().SumCurrentProductPrice().Return(700.0, nil)

		metricas, err := service.GetDashboardMetrics()

		assert.NoError(t, err)
		assert.Equal(t, 0.0, metricas.TaxaDeConversao)
	})

	t.Run("erro do repositório é propagado", func(t *testing.T) {
		service, purchaseRepo, _ := newTestService(t)

		purchaseRepo.EXPECT().Count().Return(0, errors.New("conexão recusada"))

		metricas, err := service.GetDashboardMetrics()

		assert.Error(t, err)
		assert.Nil(t, metricas)
	})
}

func TestService_GetTopProductsByRevenue(t *testing.T) {
	t.Run("resolve títulos preservando a ordem por receita", func(t *testing.T) {
		service, purchaseRepo, productRepo := newTestService(t)

		purchaseRepo.EXPECT().GroupRevenueByProduct(uint64(3)).Return([]*domain.ReceitaAgrupada{
			{ProdutoID: "aB3xYz", Receita: 900.00, Quantidade: 6},
			{ProdutoID: "Qw9RtK", Receita: 450.50, Quantidade: 3},
		}, nil)
		productRepo.EXPECT().GetByID("aB3xYz").Return(&domain.Produto{ID: "aB3xYz", Titulo: "Curso de Go"}, nil)
		productRepo.EXPECT().GetByID("Qw9RtK").Return(&domain.Produto{ID: "Qw9RtK", Titulo: "Curso de SQL"}, nil)

		produtos, err := service.GetTopProductsByRevenue()

		assert.NoError(t, err)
		assert.Equal(t, []*domain.ProdutoReceita{
			{ID: "aB3xYz", Titulo: "Curso de Go", Quantidade: 6, Valor: "R$ 900,00"},
			{ID: "Qw9RtK", Titulo: "Curso de SQL", Quantidade: 3, Valor: "R$ 450,50"},
		}, produtos)
	})

	t.Run("produto removido do catálogo usa rótulo de fallback", func(t *testing.T) {
		service, purchaseRepo, productRepo := newTestService(t)

		purchaseRepo.EXPECT().GroupRevenueByProduct(uint64(3)).Return([]*domain.ReceitaAgrupada{
			{ProdutoID: "gOnE01", Receita: 120.00, Quantidade: 2},
		}, nil)
		productRepo.EXPECT().GetByID("gOnE01").Return(nil, nil)

		produtos, err := service.GetTopProductsByRevenue()

		assert.NoError(t, err)
		assert.Len(t, produtos, 1)
		assert.Equal(t, "Produto Removido", produtos[0].Titulo)
		assert.Equal(t, "R$ 120,00", produtos[0].Valor)
	})

	t.Run("falha ao resolver um título derruba a consulta inteira", func(t *testing.T) {
		service, purchaseRepo, productRepo := newTestService(t)

		purchaseRepo.EXPECT().GroupRevenueByProduct(uint64(3)).Return([]*domain.ReceitaAgrupada{
			{ProdutoID: "aB3xYz", Receita: 900.00, Quantidade: 6},
			{ProdutoID: "Qw9RtK", Receita: 450.50, Quantidade: 3},
		}, nil)
		productRepo.EXPECT().GetByID("aB3xYz").Return(&domain.Produto{ID: "aB3xYz", Titulo: "Curso de Go"}, nil)
		productRepo.EXPECT().GetByID("Qw9RtK").Return(nil, errors.New("timeout"))

		produtos, err := service.GetTopProductsByRevenue()

		assert.Error(t, err)
		assert.Nil(t, produtos)
	})

	t.Run("menos de três produtos retorna apenas os existentes", func(t *testing.T) {
		service, purchaseRepo, _ := newTestService(t)

		purchaseRepo.EXPECT().GroupRevenueByProduct(uint64(3)).Return([]*domain.ReceitaAgrupada{}, nil)

		produtos, err := service.GetTopProductsByRevenue()

		assert.NoError(t, err)
		assert.Empty(t, produtos)
	})
}

func TestService_GetMonthlyRevenueChart(t *testing.T) {
	t.Run("agrupa as vendas retornadas pelo repositório", func(t *testing.T) {
		service, purchaseRepo, _ := newTestService(t)

		preco := 100.0
		purchaseRepo.EXPECT().ListVendasOrderedByDate().Return([]domain.Venda{
			{Date: time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC), PrecoVenda: &preco},
			{Date: time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC), PrecoVenda: &preco},
		}, nil)

		serie, err := service.GetMonthlyRevenueChart()

		assert.NoError(t, err)
		assert.Equal(t, []domain.ReceitaMensal{
			{Mes: "Jan", Receita: 200.00, Vendas: 2},
		}, serie)
	})

	t.Run("erro do repositório é propagado", func(t *testing.T) {
		service, purchaseRepo, _ := newTestService(t)

		purchaseRepo.EXPECT().ListVendasOrderedByDate().Return(nil, errors.New("conexão recusada"))

		serie, err := service.GetMonthlyRevenueChart()

		assert.Error(t, err)
		assert.Nil(t, serie)
	})
}
