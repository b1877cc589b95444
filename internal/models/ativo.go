package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AtivoTipo string

const (
	AtivoTipoAcoes         AtivoTipo = "acoes"
	AtivoTipoFIIs          AtivoTipo = "fiis"
	AtivoTipoTesouroSelic  AtivoTipo = "tesouro_selic"
	AtivoTipoAcoesExterior AtivoTipo = "acoes_exterior"
	AtivoTipoETFExterior   AtivoTipo = "etf_exterior"
	AtivoTipoCripto        AtivoTipo = "cripto"
)

// AtivoTipos lista as seis classes na ordem de exibição.
var AtivoTipos = []AtivoTipo{
	AtivoTipoAcoes,
	AtivoTipoFIIs,
	AtivoTipoTesouroSelic,
	AtivoTipoAcoesExterior,
	AtivoTipoETFExterior,
	AtivoTipoCripto,
}

func (t AtivoTipo) Valid() bool {
	for _, tipo := range AtivoTipos {
		if t == tipo {
			return true
		}
	}
	return false
}

type Ativo struct {
	ID             uuid.UUID        `json:"id" db:"id"`
	UserID         uuid.UUID        `json:"user_id" db:"user_id"`
	Nome           string           `json:"nome" db:"nome"`
	Ticker         *string          `json:"ticker" db:"ticker"`
	Tipo           AtivoTipo        `json:"tipo" db:"tipo"`
	ValorInvestido decimal.Decimal  `json:"valor_investido" db:"valor_investido"` // capital aportado acumulado
	ValorAtual     decimal.Decimal  `json:"valor_atual" db:"valor_atual"`         // valor de mercado, fonte da verdade
	Quantidade     decimal.Decimal  `json:"quantidade" db:"quantidade"`
	DataCompra     time.Time        `json:"data_compra" db:"data_compra"`
	TaxaSelicAnual *decimal.Decimal `json:"taxa_selic_anual" db:"taxa_selic_anual"` // só para tesouro_selic
	Emergencia     bool             `json:"emergencia" db:"emergencia"`             // conta para a reserva de emergência
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`

	// derivados, preenchidos pelo service (nunca persistidos)
	Lucro         decimal.Decimal `json:"lucro" db:"-"`         // ValorAtual - ValorInvestido
	Rentabilidade float64         `json:"rentabilidade" db:"-"` // lucro / investido em %
}

type AtivoCreate struct {
	Nome           string           `json:"nome" binding:"required"`
	Ticker         *string          `json:"ticker"`
	Tipo           AtivoTipo        `json:"tipo" binding:"required"`
	ValorInvestido decimal.Decimal  `json:"valor_investido"`
	ValorAtual     decimal.Decimal  `json:"valor_atual"`
	Quantidade     decimal.Decimal  `json:"quantidade"`
	DataCompra     time.Time        `json:"data_compra" time_format:"2006-01-02"`
	TaxaSelicAnual *decimal.Decimal `json:"taxa_selic_anual"`
	Emergencia     bool             `json:"emergencia"`
}

type AtivoUpdate struct {
	Nome           *string          `json:"nome"`
	Ticker         *string          `json:"ticker"`
	Tipo           *AtivoTipo       `json:"tipo"`
	ValorAtual     *decimal.Decimal `json:"valor_atual"`
	Quantidade     *decimal.Decimal `json:"quantidade"`
	TaxaSelicAnual *decimal.Decimal `json:"taxa_selic_anual"`
	Emergencia     *bool            `json:"emergencia"`
}
