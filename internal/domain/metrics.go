package domain

// MetricasFormatadas carrega as representações de exibição das métricas,
// com vírgula como separador decimal e prefixo de moeda
type MetricasFormatadas struct {
	FaturamentoTotal string `json:"faturamentoTotal"`
	TicketMedio      string `json:"ticketMedio"`
	TaxaDeConversao  string `json:"taxaDeConversao"`
}

// DashboardMetrics é o payload do endpoint de métricas gerais do dashboard
type DashboardMetrics struct {
	TicketMedio           float64            `json:"ticketMedio"`
	FaturamentoTotal      float64            `json:"faturamentoTotal"`
	TotalProdutosVendidos int                `json:"totalProdutosVendidos"`
	TaxaDeConversao       float64            `json:"taxaDeConversao"`
	Formatados            MetricasFormatadas `json:"formatados"`
}

// ProdutoReceita é uma entrada do ranking de produtos por receita
type ProdutoReceita struct {
	ID         string `json:"id"`
	Titulo     string `json:"titulo"`
	Quantidade int    `json:"quantidade"`
	Valor      string `json:"valor"`
}

// ReceitaMensal é um ponto do gráfico de linha: receita e quantidade de
// vendas de um mês. Mes carrega apenas a abreviação ("Jan".."Dez"), sem o
// ano: dois anos distintos com o mesmo mês produzem duas entradas com o
// mesmo rótulo.
type ReceitaMensal struct {
	Mes     string  `json:"mes"`
	Receita float64 `json:"receita"`
	Vendas  int     `json:"vendas"`
}

// ReceitaAgrupada é o resultado bruto do agrupamento por produto no banco
type ReceitaAgrupada struct {
	ProdutoID  string
	Receita    float64
	Quantidade int
}
