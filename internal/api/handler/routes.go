package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pedromms/vendas-dashboard-api/internal/api/handler/router"
	"github.com/pedromms/vendas-dashboard-api/internal/usecases/catalog"
	"github.com/pedromms/vendas-dashboard-api/internal/usecases/reporting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Produtos retorna as rotas do catálogo e do registro de compras. Os
// caminhos preservam o contrato do frontend existente, incluindo o GET
// com corpo em /listarProduto.
func Produtos(service catalog.CatalogService) []router.Route {
	return []router.Route{
		{
			Path:    "/produtoCriar",
			Method:  http.MethodPost,
			Handler: CreateProduct(service),
		},
		{
			Path:    "/listarProdutos",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:    "/listarProduto",
			Method:  http.MethodGet,
			Handler: GetProduct(service),
		},
		{
			Path:    "/produtoComprado",
			Method:  http.MethodPost,
			Handler: CreatePurchase(service),
		},
		{
			Path:    "/listarProdutosComprados",
			Method:  http.MethodGet,
			Handler: ListPurchases(service),
		},
	}
}

func Dashboard(service reporting.ReportingService) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboard/metricas",
			Method:  http.MethodGet,
			Handler: GetDashboardMetrics(service),
		},
		{
			Path:    "/dashboard/cursosPorReceita",
			Method:  http.MethodGet,
			Handler: GetTopProductsByRevenue(service),
		},
		{
			Path:    "/dashboard/graficoLinha",
			Method:  http.MethodGet,
			Handler: GetMonthlyRevenueChart(service),
		},
	}
}
