package catalog

import "errors"

// Erros específicos para o contexto de catálogo e compras
var (
	ErrProdutoNotFound = errors.New("produto não encontrado")
	ErrCreateProduto   = errors.New("não foi possível criar o produto")
	ErrCreateCompra    = errors.New("não foi possível registrar a compra")
)
