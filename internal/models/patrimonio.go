package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PatrimonioSnapshot guarda o total dos ativos num ponto do tempo.
// Uma linha por (user_id, mes, ano) — upsert nessa chave composta.
type PatrimonioSnapshot struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	UserID          uuid.UUID       `json:"user_id" db:"user_id"`
	Mes             string          `json:"mes" db:"mes"` // nome do mês, mesmo formato de Transaction.Month
	Ano             int             `json:"ano" db:"ano"`
	TotalPatrimonio decimal.Decimal `json:"total_patrimonio" db:"total_patrimonio"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}
