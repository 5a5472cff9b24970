package catalog

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/pedromms/vendas-dashboard-api/infrastructure/repository/mocks"
	"github.com/pedromms/vendas-dashboard-api/internal/domain"
)

func newTestService(t *testing.T) (*Service, *mocks.MockProductRepository, *mocks.MockPurchaseRepository) {
	ctrl := gomock.NewController(t)

	productRepo := mocks.NewMockProductRepository(ctrl)
	purchaseRepo := mocks.NewMockPurchaseRepository(ctrl)

	service := &Service{
		productRepository:  productRepo,
		purchaseRepository: purchaseRepo,
	}

	return service, productRepo, purchaseRepo
}

func TestService_CreateProduct(t *testing.T) {
	t.Run("gera ID e persiste o produto", func(t *testing.T) {
		service, productRepo, _ := newTestService(t)

		var persistido *domain.Produto
		productRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *domain.Produto) error {
			persistido = p
			return nil
		})

		produto, err := service.CreateProduct(domain.NovoProduto{
			Titulo:    "Curso de Go",
			Preco:     249.90,
			Descricao: "Do zero ao deploy",
			Tag:       "backend",
			Image:     "https://cdn.exemplo.com/go.png",
		})

		assert.NoError(t, err)
		assert.Equal(t, persistido, produto)
		assert.Len(t, produto.ID, 6)
		assert.Equal(t, "Curso de Go", produto.Titulo)
		assert.Equal(t, 249.90, produto.Preco)
		assert.False(t, produto.CreatedAt.IsZero())
	})

	t.Run("falha de persistência vira erro de criação", func(t *testing.T) {
		service, productRepo, _ := newTestService(t)

		productRepo.EXPECT().Create(gomock.Any()).Return(errors.New("tabela inexistente"))

		produto, err := service.CreateProduct(domain.NovoProduto{Titulo: "Curso de Go"})

		assert.ErrorIs(t, err, ErrCreateProduto)
		assert.Nil(t, produto)
	})
}

func TestService_CreatePurchase(t *testing.T) {
	date := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	t.Run("congela o preço atual do produto na compra", func(t *testing.T) {
		service, productRepo, purchaseRepo := newTestService(t)

		productRepo.EXPECT().GetByID("aB3xYz").Return(&domain.Produto{
			ID:     "aB3xYz",
			Titulo: "Curso de Go",
			Preco:  249.90,
		}, nil)

		var persistida *domain.ProdutoComprado
		purchaseRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(pc *domain.ProdutoComprado) error {
			persistida = pc
			return nil
		})

		compra, err := service.CreatePurchase("aB3xYz", date)

		assert.NoError(t, err)
		assert.Equal(t, persistida, compra)
		assert.Len(t, compra.ID, 6)
		assert.Equal(t, "aB3xYz", compra.ProdutoID)
		assert.Equal(t, date, compra.Date)
		if assert.NotNil(t, compra.PrecoVenda) {
			assert.Equal(t, 249.90, *compra.PrecoVenda)
		}
	})

	t.Run("produto inexistente retorna erro de não encontrado", func(t *testing.T) {
		service, productRepo, _ := newTestService(t)

		productRepo.EXPECT().GetByID("naoExi").Return(nil, nil)

		compra, err := service.CreatePurchase("naoExi", date)

		assert.ErrorIs(t, err, ErrProdutoNotFound)
		assert.Nil(t, compra)
	})

	t.Run("falha ao buscar o produto é propagada", func(t *testing.T) {
		service, productRepo, _ := newTestService(t)

		productRepo.EXPECT().GetByID("aB3xYz").Return(nil, errors.New("conexão recusada"))

		compra, err := service.CreatePurchase("aB3xYz", date)

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrProdutoNotFound)
		assert.Nil(t, compra)
	})

	t.Run("falha de persistência vira erro de registro de compra", func(t *testing.T) {
		service, productRepo, purchaseRepo := newTestService(t)

		productRepo.EXPECT().GetByID("aB3xYz").Return(&domain.Produto{ID: "aB3xYz", Preco: 100}, nil)
		purchaseRepo.EXPECT().Create(gomock.Any()).Return(errors.New("tabela inexistente"))

		compra, err := service.CreatePurchase("aB3xYz", date)

		assert.ErrorIs(t, err, ErrCreateCompra)
		assert.Nil(t, compra)
	})
}

func TestService_GetProduct(t *testing.T) {
	t.Run("produto inexistente retorna nil sem erro", func(t *testing.T) {
		service, productRepo, _ := newTestService(t)

		productRepo.EXPECT().GetByID("naoExi").Return(nil, nil)

		produto, err := service.GetProduct("naoExi")

		assert.NoError(t, err)
		assert.Nil(t, produto)
	})
}
