package service

import (
	"github.com/PhabloC/oakio-backend/internal/finance"
)

// SimuladorInput são os parâmetros do simulador de juros compostos.
type SimuladorInput struct {
	AporteMensal float64 `json:"aporte_mensal"`
	TaxaAnual    float64 `json:"taxa_anual"` // em %, ex. 10.5
	Meses        int     `json:"meses"`
	ValorInicial float64 `json:"valor_inicial"`
}

type SimuladorService interface {
	Projetar(input *SimuladorInput) finance.Projecao
}

type simuladorService struct{}

func NewSimuladorService() SimuladorService {
	return &simuladorService{}
}

func (s *simuladorService) Projetar(input *SimuladorInput) finance.Projecao {
	return finance.ProjetarJurosCompostos(input.AporteMensal, input.TaxaAnual, input.Meses, input.ValorInicial)
}
