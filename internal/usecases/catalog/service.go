package catalog

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/pedromms/vendas-dashboard-api/infrastructure/repository"
	"github.com/pedromms/vendas-dashboard-api/internal/domain"
	"github.com/pedromms/vendas-dashboard-api/pkg/utils"
)

// CatalogService gerencia produtos e o registro de compras
type CatalogService interface {
	CreateProduct(novo domain.NovoProduto) (*domain.Produto, error)
	ListProducts() ([]*domain.Produto, error)
	GetProduct(id string) (*domain.Produto, error)
	CreatePurchase(produtoID string, date time.Time) (*domain.ProdutoComprado, error)
	ListPurchases() ([]*domain.ProdutoComprado, error)
}

type Service struct {
	productRepository  repository.ProductRepository
	purchaseRepository repository.PurchaseRepository
}

func NewService(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
) CatalogService {
	return &Service{
		productRepository:  productRepo,
		purchaseRepository: purchaseRepo,
	}
}

func (s *Service) CreateProduct(novo domain.NovoProduto) (*domain.Produto, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID do produto")
	}

	produto := &domain.Produto{
		ID:        id,
		Titulo:    novo.Titulo,
		Preco:     novo.Preco,
		Descricao: novo.Descricao,
		Tag:       novo.Tag,
		Image:     novo.Image,
		CreatedAt: time.Now(),
	}

	if err := s.productRepository.Create(produto); err != nil {
		logrus.WithError(err).WithField("titulo", novo.Titulo).Error("Erro ao criar produto")
		return nil, ErrCreateProduto
	}

	return produto, nil
}

func (s *Service) ListProducts() ([]*domain.Produto, error) {
	return s.productRepository.List()
}

// GetProduct retorna (nil, nil) quando o produto não existe; o handler
// responde null nesse caso
func (s *Service) GetProduct(id string) (*domain.Produto, error) {
	return s.productRepository.GetByID(id)
}

// CreatePurchase registra uma venda copiando o preço atual do produto
// para PrecoVenda. O preço fica congelado na compra: mudanças futuras no
// catálogo não afetam o histórico.
func (s *Service) CreatePurchase(produtoID string, date time.Time) (*domain.ProdutoComprado, error) {
	produto, err := s.productRepository.GetByID(produtoID)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao buscar produto da compra")
	}

	if produto == nil {
		return nil, ErrProdutoNotFound
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID da compra")
	}

	precoVenda := produto.Preco
	compra := &domain.ProdutoComprado{
		ID:         id,
		Date:       date,
		ProdutoID:  produtoID,
		PrecoVenda: &precoVenda,
		CreatedAt:  time.Now(),
	}

	if err := s.purchaseRepository.Create(compra); err != nil {
		logrus.WithError(err).WithField("produto_id", produtoID).Error("Erro ao registrar compra")
		return nil, ErrCreateCompra
	}

	return compra, nil
}

func (s *Service) ListPurchases() ([]*domain.ProdutoComprado, error) {
	return s.purchaseRepository.List()
}
