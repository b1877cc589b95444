package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Meta struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	UserID       uuid.UUID       `json:"user_id" db:"user_id"`
	Title        string          `json:"title" db:"title"`
	TargetValue  decimal.Decimal `json:"target_value" db:"target_value"`
	CurrentValue decimal.Decimal `json:"current_value" db:"current_value"`
	Deadline     *time.Time      `json:"deadline" db:"deadline"`
	Category     string          `json:"category" db:"category"`
	ImageURL     *string         `json:"image_url" db:"image_url"`
	// Completed é decisão do usuário: nunca vira true automaticamente ao
	// atingir 100% (diferente de Divida.IsPaid). Chegar na meta só gera sugestão.
	Completed   bool       `json:"completed" db:"completed"`
	CompletedAt *time.Time `json:"completed_at" db:"completed_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`

	// derivados, preenchidos pelo service
	Progress         float64          `json:"progress" db:"-"`
	MonthsRemaining  *int             `json:"months_remaining" db:"-"`
	RequiredMonthly  *decimal.Decimal `json:"required_monthly" db:"-"`
	Feasibility      string           `json:"feasibility" db:"-"`
	SuggestCompleted bool             `json:"suggest_completed" db:"-"` // progress >= 100 e ainda aberta
}

type MetaCreate struct {
	Title        string          `json:"title" binding:"required"`
	TargetValue  decimal.Decimal `json:"target_value" binding:"required"`
	CurrentValue decimal.Decimal `json:"current_value"`
	Deadline     *time.Time      `json:"deadline" time_format:"2006-01-02"`
	Category     string          `json:"category"`
	ImageURL     *string         `json:"image_url"`
}

type MetaUpdate struct {
	Title       *string          `json:"title"`
	TargetValue *decimal.Decimal `json:"target_value"`
	Deadline    *time.Time       `json:"deadline"`
	Category    *string          `json:"category"`
	ImageURL    *string          `json:"image_url"`
}
