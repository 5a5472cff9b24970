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
	produtosTable = "produtos p"
)

type ProductRepository interface {
	Create(produto *domain.Produto) error
	GetByID(id string) (*domain.Produto, error)
	List() ([]*domain.Produto, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) Create(produto *domain.Produto) error {
	query, args, err := squirrel.
		Insert("produtos").
		Columns("id", "titulo", "preco", "descricao", "tag", "image").
		Values(
			produto.ID,
			produto.Titulo,
			produto.Preco,
			produto.Descricao,
			produto.Tag,
			produto.Image,
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

// GetByID retorna o produto ou nil quando não existe
func (r *productRepository) GetByID(id string) (*domain.Produto, error) {
	query, args, err := squirrel.
		Select("p.id, p.titulo, p.preco, p.descricao, p.tag, p.image, p.created_at").
		From(produtosTable).
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	produto, err := scanProduto(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return produto, nil
}

func (r *productRepository) List() ([]*domain.Produto, error) {
	query, args, err := squirrel.
		Select("p.id, p.titulo, p.preco, p.descricao, p.tag, p.image, p.created_at").
		From(produtosTable).
		OrderBy("p.created_at ASC").
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

	produtos := make([]*domain.Produto, 0)
	for rows.Next() {
		produto := &domain.Produto{}
		err := rows.Scan(
			&produto.ID,
			&produto.Titulo,
			&produto.Preco,
			&produto.Descricao,
			&produto.Tag,
			&produto.Image,
			&produto.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		produtos = append(produtos, produto)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return produtos, nil
}

func scanProduto(row *sql.Row) (*domain.Produto, error) {
	produto := &domain.Produto{}

	err := row.Scan(
		&produto.ID,
		&produto.Titulo,
		&produto.Preco,
		&produto.Descricao,
		&produto.Tag,
		&produto.Image,
		&produto.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return produto, nil
}
