package finance

import (
	"github.com/shopspring/decimal"

	"github.com/PhabloC/oakio-backend/internal/models"
)

// MetaAlocacao é a tabela de referência de alocação por classe, em %.
// Aproximadamente uniforme entre as seis classes, fechando em 100.
var MetaAlocacao = map[models.AtivoTipo]decimal.Decimal{
	models.AtivoTipoAcoes:         decimal.NewFromInt(17),
	models.AtivoTipoFIIs:          decimal.NewFromInt(17),
	models.AtivoTipoTesouroSelic:  decimal.NewFromInt(17),
	models.AtivoTipoAcoesExterior: decimal.NewFromInt(17),
	models.AtivoTipoETFExterior:   decimal.NewFromInt(16),
	models.AtivoTipoCripto:        decimal.NewFromInt(16),
}

var cem = decimal.NewFromInt(100)

// PatrimonioTotal soma o valor de mercado de todos os ativos.
func PatrimonioTotal(ativos []models.Ativo) decimal.Decimal {
	total := decimal.Zero
	for _, a := range ativos {
		total = total.Add(a.ValorAtual)
	}
	return total
}

// TotalInvestido soma o capital aportado acumulado.
func TotalInvestido(ativos []models.Ativo) decimal.Decimal {
	total := decimal.Zero
	for _, a := range ativos {
		total = total.Add(a.ValorInvestido)
	}
	return total
}

// AlocacaoAtual soma o valor atual por classe.
func AlocacaoAtual(ativos []models.Ativo) map[models.AtivoTipo]decimal.Decimal {
	atual := make(map[models.AtivoTipo]decimal.Decimal)
	for _, a := range ativos {
		atual[a.Tipo] = atual[a.Tipo].Add(a.ValorAtual)
	}
	return atual
}

// AlocacaoPercentuais retorna a fatia de cada classe no patrimônio, em %.
// Mapa vazio quando o total é zero ou negativo (nunca divide por zero).
func AlocacaoPercentuais(ativos []models.Ativo) map[models.AtivoTipo]float64 {
	percentuais := make(map[models.AtivoTipo]float64)
	total := PatrimonioTotal(ativos)
	if total.Sign() <= 0 {
		return percentuais
	}
	for tipo, valor := range AlocacaoAtual(ativos) {
		percentuais[tipo] = valor.Div(total).Mul(cem).InexactFloat64()
	}
	return percentuais
}

// LucroPrejuizo = patrimônio total - total investido. Única forma válida
// de derivar o resultado; ValorAtual é a fonte da verdade.
func LucroPrejuizo(ativos []models.Ativo) decimal.Decimal {
	return PatrimonioTotal(ativos).Sub(TotalInvestido(ativos))
}

// PercentualVariacao é o lucro sobre o investido, em %. Zero quando
// nada foi investido.
func PercentualVariacao(ativos []models.Ativo) float64 {
	investido := TotalInvestido(ativos)
	if investido.Sign() == 0 {
		return 0
	}
	return LucroPrejuizo(ativos).Div(investido).Mul(cem).InexactFloat64()
}

// SugestaoRebalanceamento indica quanto aportar numa classe abaixo da meta.
type SugestaoRebalanceamento struct {
	Tipo         models.AtivoTipo `json:"tipo"`
	AtualPercent float64          `json:"atual_percent"`
	MetaPercent  float64          `json:"meta_percent"`
	Aporte       decimal.Decimal  `json:"aporte"` // meta_frac × patrimônio - valor atual da classe
}

// SugestoesRebalanceamento compara a alocação atual com a tabela de
// referência e sugere aporte apenas para classes mais de 2 pontos
// percentuais abaixo da meta.
func SugestoesRebalanceamento(ativos []models.Ativo) []SugestaoRebalanceamento {
	total := PatrimonioTotal(ativos)
	if total.Sign() <= 0 {
		return nil
	}

	atual := AlocacaoAtual(ativos)
	percentuais := AlocacaoPercentuais(ativos)

	var sugestoes []SugestaoRebalanceamento
	for _, tipo := range models.AtivoTipos {
		meta := MetaAlocacao[tipo]
		atualPct := percentuais[tipo]
		if atualPct >= meta.InexactFloat64()-2 {
			continue
		}
		aporte := meta.Div(cem).Mul(total).Sub(atual[tipo])
		sugestoes = append(sugestoes, SugestaoRebalanceamento{
			Tipo:         tipo,
			AtualPercent: atualPct,
			MetaPercent:  meta.InexactFloat64(),
			Aporte:       aporte,
		})
	}
	return sugestoes
}
