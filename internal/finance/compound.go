package finance

import (
	"fmt"
	"math"
)

const (
	// limites do horizonte de simulação, em meses
	minMesesProjecao = 1
	maxMesesProjecao = 600
)

// PontoProjecao é um ponto da série de juros compostos.
type PontoProjecao struct {
	Mes   int     `json:"mes"`
	Valor float64 `json:"valor"`
	Label string  `json:"label"`
}

// Projecao é o resultado completo da simulação.
type Projecao struct {
	Pontos         []PontoProjecao `json:"pontos"`
	ValorFinal     float64         `json:"valor_final"`
	TotalAportado  float64         `json:"total_aportado"` // inicial + aporte × meses
	Rendimento     float64         `json:"rendimento"`     // valor final - total aportado
	TaxaMensal     float64         `json:"taxa_mensal"`    // efetiva, em fração
	MesesSimulados int             `json:"meses_simulados"`
}

// ProjetarJurosCompostos simula aportes mensais fixos com capitalização
// composta. A taxa anual vira taxa mensal efetiva por equivalência,
// (1 + a/100)^(1/12) - 1 — não é divisão ingênua por 12. A série tem
// meses+1 pontos: o índice 0 é "hoje", sem rendimento aplicado.
//
// Acumula em float64 de ponta a ponta; arredondamento só na exibição.
func ProjetarJurosCompostos(aporteMensal, taxaAnualPercent float64, meses int, valorInicial float64) Projecao {
	if meses < minMesesProjecao {
		meses = minMesesProjecao
	}
	if meses > maxMesesProjecao {
		meses = maxMesesProjecao
	}

	taxaMensal := math.Pow(1+taxaAnualPercent/100, 1.0/12) - 1

	pontos := make([]PontoProjecao, 0, meses+1)
	pontos = append(pontos, PontoProjecao{Mes: 0, Valor: valorInicial, Label: "Hoje"})

	total := valorInicial
	for i := 1; i <= meses; i++ {
		total = total*(1+taxaMensal) + aporteMensal
		pontos = append(pontos, PontoProjecao{
			Mes:   i,
			Valor: total,
			Label: fmt.Sprintf("Mês %d", i),
		})
	}

	aportado := valorInicial + aporteMensal*float64(meses)
	return Projecao{
		Pontos:         pontos,
		ValorFinal:     total,
		TotalAportado:  aportado,
		Rendimento:     total - aportado,
		TaxaMensal:     taxaMensal,
		MesesSimulados: meses,
	}
}
