package utils

import (
	"fmt"
	"math"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatBRL formata um valor monetário no padrão usado pelo dashboard:
// prefixo "R$" e vírgula como separador decimal
func FormatBRL(v float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}

// FormatPercent formata um percentual com duas casas e vírgula decimal
func FormatPercent(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1) + "%"
}
