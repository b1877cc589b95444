package finance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhabloC/oakio-backend/internal/models"
)

func ativo(tipo models.AtivoTipo, investido, atual float64) models.Ativo {
	return models.Ativo{
		Tipo:           tipo,
		ValorInvestido: decimal.NewFromFloat(investido),
		ValorAtual:     decimal.NewFromFloat(atual),
	}
}

func TestPatrimonioTotalELucro(t *testing.T) {
	ativos := []models.Ativo{
		ativo(models.AtivoTipoAcoes, 1000, 1200),
		ativo(models.AtivoTipoFIIs, 500, 450),
	}

	assert.True(t, PatrimonioTotal(ativos).Equal(decimal.NewFromInt(1650)))
	assert.True(t, TotalInvestido(ativos).Equal(decimal.NewFromInt(1500)))
	assert.True(t, LucroPrejuizo(ativos).Equal(decimal.NewFromInt(150)))
	assert.InDelta(t, 10.0, PercentualVariacao(ativos), 0.0001)
}

func TestPercentualVariacao_SemInvestimento(t *testing.T) {
	ativos := []models.Ativo{ativo(models.AtivoTipoCripto, 0, 100)}
	assert.Equal(t, 0.0, PercentualVariacao(ativos), "denominador zero vira zero, nunca Inf")
}

func TestAlocacaoPercentuais_SomaCem(t *testing.T) {
	ativos := []models.Ativo{
		ativo(models.AtivoTipoAcoes, 0, 300),
		ativo(models.AtivoTipoFIIs, 0, 500),
		ativo(models.AtivoTipoCripto, 0, 133.33),
		ativo(models.AtivoTipoTesouroSelic, 0, 66.67),
	}

	percentuais := AlocacaoPercentuais(ativos)
	require.Len(t, percentuais, 4)

	soma := 0.0
	for _, p := range percentuais {
		soma += p
	}
	assert.InDelta(t, 100.0, soma, 0.01)
}

func TestAlocacaoPercentuais_SemPatrimonio(t *testing.T) {
	assert.Empty(t, AlocacaoPercentuais(nil))
	assert.Empty(t, AlocacaoPercentuais([]models.Ativo{ativo(models.AtivoTipoAcoes, 100, 0)}))
}

func TestMetaAlocacao_Fecha100(t *testing.T) {
	soma := decimal.Zero
	for _, tipo := range models.AtivoTipos {
		meta, ok := MetaAlocacao[tipo]
		require.True(t, ok, "classe %s sem meta", tipo)
		soma = soma.Add(meta)
	}
	assert.True(t, soma.Equal(decimal.NewFromInt(100)))
}

func TestSugestoesRebalanceamento(t *testing.T) {
	// tudo em ações: as outras cinco classes estão muito abaixo da meta
	ativos := []models.Ativo{ativo(models.AtivoTipoAcoes, 0, 10000)}

	sugestoes := SugestoesRebalanceamento(ativos)
	require.Len(t, sugestoes, 5)

	for _, s := range sugestoes {
		assert.NotEqual(t, models.AtivoTipoAcoes, s.Tipo)
		// aporte sugerido = fração da meta × patrimônio - valor da classe (aqui zero)
		esperado := MetaAlocacao[s.Tipo].Div(decimal.NewFromInt(100)).Mul(decimal.NewFromInt(10000))
		assert.True(t, s.Aporte.Equal(esperado), "classe %s", s.Tipo)
	}
}

func TestSugestoesRebalanceamento_DentroDaFaixa(t *testing.T) {
	// alocação quase uniforme: ninguém está mais de 2 pontos abaixo da meta
	var ativos []models.Ativo
	for _, tipo := range models.AtivoTipos {
		ativos = append(ativos, ativo(tipo, 0, 1000))
	}
	assert.Empty(t, SugestoesRebalanceamento(ativos))
}

func TestSugestoesRebalanceamento_SemPatrimonio(t *testing.T) {
	assert.Nil(t, SugestoesRebalanceamento(nil))
}
