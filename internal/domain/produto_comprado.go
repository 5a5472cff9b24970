package domain

import "time"

// ProdutoComprado registra um evento de venda de um produto.
// PrecoVenda é copiado de Produto.Preco no momento da compra e nunca é
// recalculado, para que o faturamento histórico não mude quando o preço
// do produto mudar.
type ProdutoComprado struct {
	ID         string    `json:"id"`
	Date       time.Time `json:"date"`
	ProdutoID  string    `json:"produto_id"`
	PrecoVenda *float64  `json:"preco_venda"`
	CreatedAt  time.Time `json:"created_at"`
}

// Venda é a projeção mínima de uma compra usada pelas agregações do
// dashboard. Date nunca pode ser zero: o repositório só retorna linhas
// com data preenchida.
type Venda struct {
	Date       time.Time
	PrecoVenda *float64
}
