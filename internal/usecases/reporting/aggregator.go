package reporting

import (
	"fmt"
	"sort"

	"github.com/pedromms/vendas-dashboard-api/internal/domain"
	"github.com/pedromms/vendas-dashboard-api/pkg/utils"
)

// Abreviações dos meses em português, indexadas de 0 (Jan) a 11 (Dez)
var nomesMeses = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

type acumuladorMensal struct {
	receita float64
	vendas  int
	mes     string
}

// AgruparVendasPorMes agrupa as vendas por (ano, mês) do campo Date e soma
// receita e quantidade por grupo. A chave "ANO-MM" usa o índice do mês com
// zero à esquerda, então a ordenação lexicográfica das chaves é a ordem
// cronológica. O resultado é determinístico independentemente da ordem de
// entrada. Preço de venda nulo soma 0 mas ainda conta como venda.
//
// Pré-condição: toda venda tem Date preenchido; o repositório filtra
// linhas sem data antes de chegar aqui.
func AgruparVendasPorMes(vendas []domain.Venda) []domain.ReceitaMensal {
	mapaMensal := make(map[string]*acumuladorMensal)

	for _, venda := range vendas {
		preco := 0.0
		if venda.PrecoVenda != nil {
			preco = *venda.PrecoVenda
		}

		ano := venda.Date.Year()
		mesIndex := int(venda.Date.Month()) - 1 // 0 (Jan) a 11 (Dez)
		chave := fmt.Sprintf("%d-%02d", ano, mesIndex)

		acumulador, existe := mapaMensal[chave]
		if !existe {
			acumulador = &acumuladorMensal{mes: nomesMeses[mesIndex]}
			mapaMensal[chave] = acumulador
		}

		acumulador.receita += preco
		acumulador.vendas++
	}

	chaves := make([]string, 0, len(mapaMensal))
	for chave := range mapaMensal {
		chaves = append(chaves, chave)
	}
	sort.Strings(chaves)

	resultados := make([]domain.ReceitaMensal, 0, len(chaves))
	for _, chave := range chaves {
		acumulador := mapaMensal[chave]
		resultados = append(resultados, domain.ReceitaMensal{
			Mes:     acumulador.mes,
			Receita: utils.RoundWithTwoDecimalPlace(acumulador.receita),
			Vendas:  acumulador.vendas,
		})
	}

	return resultados
}
