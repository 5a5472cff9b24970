package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pedromms/vendas-dashboard-api/infrastructure/database/postgres"
	"github.com/pedromms/vendas-dashboard-api/internal/domain"
)

const (
	produtosCompradosTable = "produtos_comprados pc"
)

type PurchaseRepository interface {
	Create(compra *domain.ProdutoComprado) error
	List() ([]*domain.ProdutoComprado, error)
	Count() (int, error)
	SumCurrentProductPrice() (float64, error)
	ListVendasOrderedByDate() ([]domain.Venda, error)
	GroupRevenueByProduct(limit uint64) ([]*domain.ReceitaAgrupada, error)
}

type purchaseRepository struct {
	conn *postgres.Connection
}

func NewPurchaseRepository(conn *postgres.Connection) PurchaseRepository {
	return &purchaseRepository{
		conn: conn,
	}
}

func (r *purchaseRepository) Create(compra *domain.ProdutoComprado) error {
	query, args, err := squirrel.
		Insert("produtos_comprados").
		Columns("id", "date", "produto_id", "preco_venda").
		Values(
			compra.ID,
			compra.Date,
			compra.ProdutoID,
			compra.PrecoVenda,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *purchaseRepository) List() ([]*domain.ProdutoComprado, error) {
	query, args, err := squirrel.
		Select("pc.id, pc.date, pc.produto_id, pc.preco_venda, pc.created_at").
		From(produtosCompradosTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	compras := make([]*domain.ProdutoComprado, 0)
	for rows.Next() {
		compra, err := scanCompra(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear compra: %w", err)
		}
		compras = append(compras, compra)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return compras, nil
}

func (r *purchaseRepository) Count() (int, error) {
	query, _, err := squirrel.
		Select("COUNT(pc.id)").
		From(produtosCompradosTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar compras: %w", err)
	}

	return total, nil
}

// SumCurrentProductPrice soma o preço ATUAL dos produtos de todas as
// compras, via join com o catálogo. Produtos removidos contribuem com 0.
// Intencionalmente diferente do preco_venda congelado usado no ranking.
func (r *purchaseRepository) SumCurrentProductPrice() (float64, error) {
	query, _, err := squirrel.
		Select("COALESCE(SUM(p.preco), 0)").
		From(produtosCompradosTable).
		LeftJoin("produtos p ON p.id = pc.produto_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar faturamento: %w", err)
	}

	return total, nil
}

// ListVendasOrderedByDate retorna a projeção (date, preco_venda) de todas
// as compras em ordem cronológica, filtrando linhas sem data; o agregador
// mensal exige data preenchida
func (r *purchaseRepository) ListVendasOrderedByDate() ([]domain.Venda, error) {
	query, args, err := squirrel.
		Select("pc.date, pc.preco_venda").
		From(produtosCompradosTable).
		Where("pc.date IS NOT NULL").
		OrderBy("pc.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	vendas := make([]domain.Venda, 0)
	for rows.Next() {
		var venda domain.Venda
		var precoVenda sql.NullFloat64

		if err := rows.Scan(&venda.Date, &precoVenda); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		if precoVenda.Valid {
			venda.PrecoVenda = &precoVenda.Float64
		}
		vendas = append(vendas, venda)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return vendas, nil
}

// GroupRevenueByProduct agrupa as compras por produto somando o preço de
// venda congelado, em ordem decrescente de receita. Empates ficam na ordem
// que o banco retornar.
func (r *purchaseRepository) GroupRevenueByProduct(limit uint64) ([]*domain.ReceitaAgrupada, error) {
	query, args, err := squirrel.
		Select("pc.produto_id, COALESCE(SUM(pc.preco_venda), 0) AS receita, COUNT(pc.id) AS quantidade").
		From(produtosCompradosTable).
		GroupBy("pc.produto_id").
		OrderBy("receita DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	grupos := make([]*domain.ReceitaAgrupada, 0)
	for rows.Next() {
		grupo := &domain.ReceitaAgrupada{}
		if err := rows.Scan(&grupo.ProdutoID, &grupo.Receita, &grupo.Quantidade); err != nil {
			return nil, fmt.Errorf("erro ao escanear grupo de receita: %w", err)
		}
		grupos = append(grupos, grupo)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return grupos, nil
}

func scanCompra(rows *sql.Rows) (*domain.ProdutoComprado, error) {
	compra := &domain.ProdutoComprado{}
	var precoVenda sql.NullFloat64

	err := rows.Scan(
		&compra.ID,
		&compra.Date,
		&compra.ProdutoID,
		&precoVenda,
		&compra.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if precoVenda.Valid {
		compra.PrecoVenda = &precoVenda.Float64
	}

	return compra, nil
}
