package reporting

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/pedromms/vendas-dashboard-api/infrastructure/repository"
	"github.com/pedromms/vendas-dashboard-api/internal/config"
	"github.com/pedromms/vendas-dashboard-api/internal/domain"
	"github.com/pedromms/vendas-dashboard-api/pkg/utils"
)

const (
	topProdutosLimit = 3

	// Rótulo usado quando a compra referencia um produto que não existe
	// mais no catálogo
	produtoRemovidoLabel = "Produto Removido"
)

// ReportingService computa as métricas do dashboard de vendas
type ReportingService interface {
	GetDashboardMetrics() (*domain.DashboardMetrics, error)
	GetTopProductsByRevenue() ([]*domain.ProdutoReceita, error)
	GetMonthlyRevenueChart() ([]domain.ReceitaMensal, error)
}

type Service struct {
	purchaseRepository repository.PurchaseRepository
	productRepository  repository.ProductRepository
	totalLeads         int
}

func NewService(
	cfg *config.Config,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
) ReportingService {
	return &Service{
		purchaseRepository: purchaseRepo,
		productRepository:  productRepo,
		totalLeads:         cfg.Dashboard.TotalLeads,
	}
}

// GetDashboardMetrics calcula faturamento total, ticket médio e taxa de
// conversão. O faturamento soma o preço ATUAL do produto de cada compra
// (join com o catálogo), não o preço congelado da venda. Semântica
// herdada do dashboard original.
func (s *Service) GetDashboardMetrics() (*domain.DashboardMetrics, error) {
	totalVendas, err := s.purchaseRepository.Count()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao contar vendas")
	}

	faturamentoTotal, err := s.purchaseRepository.SumCurrentProductPrice()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao somar faturamento")
	}

	ticketMedio := 0.0
	if totalVendas > 0 {
		ticketMedio = faturamentoTotal / float64(totalVendas)
	}

	taxaDeConversao := 0.0
	if s.totalLeads > 0 {
		taxaDeConversao = (float64(totalVendas) / float64(s.totalLeads)) * 100
	}

	faturamentoTotal = utils.RoundWithTwoDecimalPlace(faturamentoTotal)
	ticketMedio = utils.RoundWithTwoDecimalPlace(ticketMedio)
	taxaDeConversao = utils.RoundWithTwoDecimalPlace(taxaDeConversao)

	return &domain.DashboardMetrics{
		TicketMedio:           ticketMedio,
		FaturamentoTotal:      faturamentoTotal,
		TotalProdutosVendidos: totalVendas,
		TaxaDeConversao:       taxaDeConversao,
		Formatados: domain.MetricasFormatadas{
			FaturamentoTotal: utils.FormatBRL(faturamentoTotal),
			TicketMedio:      utils.FormatBRL(ticketMedio),
			TaxaDeConversao:  utils.FormatPercent(taxaDeConversao),
		},
	}, nil
}

// GetTopProductsByRevenue retorna os 3 produtos com maior receita somada
// pelo preço de venda congelado. Os títulos são resolvidos de forma
// concorrente, um por grupo; qualquer falha de resolução derruba a
// requisição inteira (tudo ou nada).
func (s *Service) GetTopProductsByRevenue() ([]*domain.ProdutoReceita, error) {
	grupos, err := s.purchaseRepository.GroupRevenueByProduct(topProdutosLimit)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao agrupar receita por produto")
	}

	resultados := make([]*domain.ProdutoReceita, len(grupos))
	erros := make([]error, len(grupos))

	wg := sync.WaitGroup{}
	for i, grupo := range grupos {
		wg.Add(1)
		go func(i int, grupo *domain.ReceitaAgrupada) {
			defer wg.Done()

			produto, err := s.productRepository.GetByID(grupo.ProdutoID)
			if err != nil {
				erros[i] = errors.Wrapf(err, "erro ao resolver título do produto %s", grupo.ProdutoID)
				return
			}

			titulo := produtoRemovidoLabel
			if produto != nil {
				titulo = produto.Titulo
			}

			resultados[i] = &domain.ProdutoReceita{
				ID:         grupo.ProdutoID,
				Titulo:     titulo,
				Quantidade: grupo.Quantidade,
				Valor:      utils.FormatBRL(grupo.Receita),
			}
		}(i, grupo)
	}
	wg.Wait()

	for _, err := range erros {
		if err != nil {
			return nil, err
		}
	}

	return resultados, nil
}

// GetMonthlyRevenueChart busca todas as vendas em ordem cronológica e
// devolve a série mensal do gráfico de linha
func (s *Service) GetMonthlyRevenueChart() ([]domain.ReceitaMensal, error) {
	vendas, err := s.purchaseRepository.ListVendasOrderedByDate()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar vendas mensais")
	}

	return AgruparVendasPorMes(vendas), nil
}
