package finance

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PhabloC/oakio-backend/internal/models"
)

// Classificações de viabilidade de uma meta, ordenadas por esforço.
const (
	FeasibilityIndefinida   = "indefinida"            // sem prazo
	FeasibilityVencida      = "vencida"               // prazo no passado
	FeasibilityAlcancada    = "alcancada"             // valor atual >= alvo
	FeasibilityViavel       = "viavel"                // aporte mensal <= limite viável
	FeasibilityComprometida = "exige_comprometimento" // até o limite de comprometimento
	FeasibilityDesafiadora  = "desafiadora"           // acima disso
)

// FeasibilityThresholds são os cortes de classificação em moeda (BRL por
// padrão). Injetáveis para portar a outra moeda sem recompilar a regra.
type FeasibilityThresholds struct {
	Viavel       decimal.Decimal // aporte mensal até aqui: "viavel"
	Comprometida decimal.Decimal // até aqui: "exige_comprometimento"
}

func DefaultFeasibilityThresholds() FeasibilityThresholds {
	return FeasibilityThresholds{
		Viavel:       decimal.NewFromInt(2000),
		Comprometida: decimal.NewFromInt(5000),
	}
}

// diasPorMes é a aproximação de dias por mês usada no cálculo de meses
// restantes. Escolha deliberada: aritmética exata de calendário não é
// necessária aqui, e trocar isso muda a classificação das metas.
const diasPorMes = 30.44

func truncaDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MesesRestantes até o prazo. nil sem prazo; 0 quando o prazo já passou
// (comparação só de data, sem horário); senão ceil(dias/30.44), mínimo 1.
func MesesRestantes(deadline *time.Time, agora time.Time) *int {
	if deadline == nil {
		return nil
	}

	hoje := truncaDia(agora)
	prazo := truncaDia(*deadline)

	if !prazo.After(hoje) {
		zero := 0
		return &zero
	}

	dias := prazo.Sub(hoje).Hours() / 24
	meses := int(math.Ceil(dias / diasPorMes))
	if meses < 1 {
		meses = 1
	}
	return &meses
}

// AporteMensalNecessario para fechar a meta no prazo. nil sem prazo ou
// vencida; zero se já alcançada.
func AporteMensalNecessario(meta models.Meta, agora time.Time) *decimal.Decimal {
	meses := MesesRestantes(meta.Deadline, agora)
	if meses == nil || *meses == 0 {
		return nil
	}

	if meta.CurrentValue.GreaterThanOrEqual(meta.TargetValue) {
		zero := decimal.Zero
		return &zero
	}

	aporte := meta.TargetValue.Sub(meta.CurrentValue).Div(decimal.NewFromInt(int64(*meses)))
	return &aporte
}

// ClassificarMeta aplica a ordem fixa: sem prazo, vencida, alcançada e
// então as faixas de aporte mensal.
func ClassificarMeta(meta models.Meta, agora time.Time, th FeasibilityThresholds) string {
	meses := MesesRestantes(meta.Deadline, agora)
	if meses == nil {
		return FeasibilityIndefinida
	}
	if *meses == 0 {
		return FeasibilityVencida
	}
	if meta.CurrentValue.GreaterThanOrEqual(meta.TargetValue) {
		return FeasibilityAlcancada
	}

	aporte := meta.TargetValue.Sub(meta.CurrentValue).Div(decimal.NewFromInt(int64(*meses)))
	switch {
	case aporte.LessThanOrEqual(th.Viavel):
		return FeasibilityViavel
	case aporte.LessThanOrEqual(th.Comprometida):
		return FeasibilityComprometida
	default:
		return FeasibilityDesafiadora
	}
}

// ProgressoMeta em %, limitado a 100. Zero quando a meta não tem alvo.
func ProgressoMeta(meta models.Meta) float64 {
	if meta.TargetValue.Sign() <= 0 {
		return 0
	}
	p := meta.CurrentValue.Div(meta.TargetValue).Mul(cem).InexactFloat64()
	if p > 100 {
		return 100
	}
	return p
}
