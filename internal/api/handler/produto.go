package handler

import (
	"net/http"

	"github.com/pedromms/vendas-dashboard-api/internal/domain"
	"github.com/pedromms/vendas-dashboard-api/internal/usecases/catalog"
	"github.com/pedromms/vendas-dashboard-api/pkg/apiErrors"
	"github.com/pedromms/vendas-dashboard-api/pkg/log"
)

// CreateProduct cria um novo produto no catálogo
func CreateProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var novo domain.NovoProduto
		if err := json.NewDecoder(r.Body).Decode(&novo); err != nil {
			logger.WithError(err).Warn("produtos: corpo de criação inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição inválida", nil)
			return
		}

		produto, err := service.CreateProduct(novo)
		if err != nil {
			logger.WithError(err).Error("produtos: erro ao criar produto")
			// Mensagem genérica: não expomos qual constraint falhou
			apiErrors.WriteError(w, apiErrors.ErrProdutoCreate, "Não foi possível criar o produto.", nil)
			return
		}

		logger.WithFields(log.Fields{
			"produto_id": produto.ID,
			"titulo":     produto.Titulo,
		}).Info("produtos: produto criado")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(produto); err != nil {
			logger.WithError(err).Error("produtos: erro ao enviar resposta")
		}
	})
}

// ListProducts lista todos os produtos do catálogo
func ListProducts(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		produtos, err := service.ListProducts()
		if err != nil {
			logger.WithError(err).Error("produtos: erro ao listar produtos")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro interno ao consultar o banco de dados.", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(produtos); err != nil {
			logger.WithError(err).Error("produtos: erro ao enviar resposta")
		}
	})
}

// GetProduct busca um produto pelo ID. O contrato herdado do frontend
// manda o ID no corpo de um GET; aceitamos também ?produtoId= como query
// string. Produto inexistente responde o literal null, não 404.
func GetProduct(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req struct {
			ProdutoID string `json:"produtoId"`
		}
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req)
		}
		if req.ProdutoID == "" {
			req.ProdutoID = r.URL.Query().Get("produtoId")
		}

		if req.ProdutoID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe o produtoId", nil)
			return
		}

		produto, err := service.GetProduct(req.ProdutoID)
		if err != nil {
			logger.WithError(err).WithField("produto_id", req.ProdutoID).Error("produtos: erro ao buscar produto")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro interno ao consultar o banco de dados.", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(produto); err != nil {
			logger.WithError(err).Error("produtos: erro ao enviar resposta")
		}
	})
}
