package handler

import (
	"errors"
	"net/http"

	"github.com/pedromms/vendas-dashboard-api/internal/usecases/catalog"
	"github.com/pedromms/vendas-dashboard-api/pkg/apiErrors"
	"github.com/pedromms/vendas-dashboard-api/pkg/log"
	"github.com/pedromms/vendas-dashboard-api/pkg/utils"
)

// CreatePurchase registra um produto como comprado, congelando o preço
// atual do produto na venda
func CreatePurchase(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req struct {
			ProdutoID string `json:"produto_id"`
			DateBody  string `json:"dateBody"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("compras: corpo de compra inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição inválida", nil)
			return
		}

		date, err := utils.ParseDate(req.DateBody)
		if err != nil {
			logger.WithFields(log.Fields{
				"produto_id": req.ProdutoID,
				"date_body":  req.DateBody,
				"error":      err.Error(),
			}).Warn("compras: data de compra inválida")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data da compra inválida", nil)
			return
		}

		// Venda sem data quebraria o agregador mensal
		if date.IsZero() {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe a data da compra", nil)
			return
		}

		compra, err := service.CreatePurchase(req.ProdutoID, *date)
		if err != nil {
			logger.WithError(err).WithField("produto_id", req.ProdutoID).Error("compras: erro ao registrar compra")

			if errors.Is(err, catalog.ErrProdutoNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrProdutoNotFound, "Produto não encontrado", nil)
				return
			}
			if errors.Is(err, catalog.ErrCreateCompra) {
				apiErrors.WriteError(w, apiErrors.ErrCompraCreate, "Não foi possível registrar a compra.", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao consultar o banco de dados.", nil)
			return
		}

		logger.WithFields(log.Fields{
			"compra_id":  compra.ID,
			"produto_id": compra.ProdutoID,
		}).Info("compras: compra registrada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(compra); err != nil {
			logger.WithError(err).Error("compras: erro ao enviar resposta")
		}
	})
}

// ListPurchases lista todos os produtos comprados
func ListPurchases(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		compras, err := service.ListPurchases()
		if err != nil {
			logger.WithError(err).Error("compras: erro ao listar compras")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro interno ao consultar o banco de dados.", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(compras); err != nil {
			logger.WithError(err).Error("compras: erro ao enviar resposta")
		}
	})
}
