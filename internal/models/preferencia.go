package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Preferencias são os três ajustes do usuário que a reserva de emergência
// e o dashboard consomem. Uma linha por usuário.
type Preferencias struct {
	UserID            uuid.UUID       `json:"user_id" db:"user_id"`
	GastoMensalManual decimal.Decimal `json:"gasto_mensal_manual" db:"gasto_mensal_manual"` // 0 = usar média automática
	ReservaMeses      int             `json:"reserva_meses" db:"reserva_meses"`             // 6 ou 12
	ValoresOcultos    bool            `json:"valores_ocultos" db:"valores_ocultos"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
}

// DefaultPreferencias para usuário que nunca salvou nada.
func DefaultPreferencias(userID uuid.UUID) *Preferencias {
	return &Preferencias{
		UserID:       userID,
		ReservaMeses: 6,
		UpdatedAt:    time.Now(),
	}
}

type PreferenciasUpdate struct {
	GastoMensalManual *decimal.Decimal `json:"gasto_mensal_manual"`
	ReservaMeses      *int             `json:"reserva_meses"`
	ValoresOcultos    *bool            `json:"valores_ocultos"`
}
