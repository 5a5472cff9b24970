package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/pedromms/vendas-dashboard-api/internal/domain"
	"github.com/pedromms/vendas-dashboard-api/internal/usecases/catalog"
	"github.com/pedromms/vendas-dashboard-api/internal/usecases/catalog/mocks"
	"github.com/pedromms/vendas-dashboard-api/pkg/log"
)

func TestCreateProduct(t *testing.T) {
	log.SetupTestLogger()

	t.Run("cria o produto e responde 201", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCatalogService(ctrl)

		service.EXPECT().CreateProduct(domain.NovoProduto{
			Titulo: "Curso de Go",
			Preco:  249.90,
		}).Return(&domain.Produto{
			ID:     "aB3xYz",
			Titulo: "Curso de Go",
			Preco:  249.90,
		}, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/produtoCriar",
			strings.NewReader(`{"titulo": "Curso de Go", "preco": 249.90}`))

		CreateProduct(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"aB3xYz"`)
	})

	t.Run("corpo inválido responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCatalogService(ctrl)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/produtoCriar",
			strings.NewReader(`{"titulo": `))

		CreateProduct(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "VAL_001")
	})

	t.Run("falha do serviço responde 400 com mensagem genérica", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCatalogService(ctrl)

		service.EXPECT().CreateProduct(gomock.Any()).Return(nil, catalog.ErrCreateProduto)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodPost, "/produtoCriar",
			strings.NewReader(`{"titulo": "Curso de Go"}`))

		CreateProduct(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Não foi possível criar o produto.")
	})
}

func TestGetProduct(t *testing.T) {
	log.SetupTestLogger()

	t.Run("busca pelo ID enviado no corpo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCatalogService(ctrl)

		service.EXPECT().GetProduct("aB3xYz").Return(&domain.Produto{ID: "aB3xYz", Titulo: "Curso de Go"}, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/listarProduto",
			strings.NewReader(`{"produtoId": "aB3xYz"}`))

		GetProduct(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Curso de Go")
	})

	t.Run("busca pelo ID enviado na query string", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCatalogService(ctrl)

		service.EXPECT().GetProduct("aB3xYz").Return(&domain.Produto{ID: "aB3xYz", Titulo: "Curso de Go"}, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/listarProduto?produtoId=aB3xYz", nil)

		GetProduct(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("produto inexistente responde o literal null", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCatalogService(ctrl)

		service.EXPECT().GetProduct("naoExi").Return(nil, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/listarProduto?produtoId=naoExi", nil)

		GetProduct(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "null", strings.TrimSpace(recorder.Body.String()))
	})

	t.Run("sem produtoId responde 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCatalogService(ctrl)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/listarProduto", nil)

		GetProduct(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "VAL_002")
	})
}

func TestListProducts(t *testing.T) {
	log.SetupTestLogger()

	t.Run("lista os produtos do catálogo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCatalogService(ctrl)

		service.EXPECT().ListProducts().Return([]*domain.Produto{
			{ID: "aB3xYz", Titulo: "Curso de Go"},
			{ID: "Qw9RtK", Titulo: "Curso de SQL"},
		}, nil)

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/listarProdutos", nil)

		ListProducts(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Curso de Go")
		assert.Contains(t, recorder.Body.String(), "Curso de SQL")
	})

	t.Run("falha no banco responde 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := mocks.NewMockCatalogService(ctrl)

		service.EXPECT().ListProducts().Return(nil, errors.New("conexão recusada"))

		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/listarProdutos", nil)

		ListProducts(service).ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
