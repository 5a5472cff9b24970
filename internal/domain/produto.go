package domain

import "time"

// Produto representa um item do catálogo vendável, com o preço vigente
type Produto struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Preco     float64   `json:"preco"`
	Descricao string    `json:"descricao"`
	Tag       string    `json:"tag"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

// NovoProduto carrega os dados de criação de um produto
type NovoProduto struct {
	Titulo    string  `json:"titulo"`
	Preco     float64 `json:"preco"`
	Descricao string  `json:"descricao"`
	Tag       string  `json:"tag"`
	Image     string  `json:"image"`
}
