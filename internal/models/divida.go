package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Divida struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	Title       string          `json:"title" db:"title"`
	TotalValue  decimal.Decimal `json:"total_value" db:"total_value"`
	PaidValue   decimal.Decimal `json:"paid_value" db:"paid_value"`
	DueDate     *time.Time      `json:"due_date" db:"due_date"`
	Creditor    string          `json:"creditor" db:"creditor"`
	Category    string          `json:"category" db:"category"`
	Description string          `json:"description" db:"description"`
	// IsPaid vira true automaticamente quando PaidValue >= TotalValue
	// no momento em que um pagamento é aplicado (assimetria proposital com Meta.Completed).
	IsPaid    bool       `json:"is_paid" db:"is_paid"`
	PaidAt    *time.Time `json:"paid_at" db:"paid_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`

	// derivados, preenchidos pelo service
	Progress  float64         `json:"progress" db:"-"`
	Remaining decimal.Decimal `json:"remaining" db:"-"`
	Overdue   bool            `json:"overdue" db:"-"`
}

type DividaCreate struct {
	Title       string          `json:"title" binding:"required"`
	TotalValue  decimal.Decimal `json:"total_value" binding:"required"`
	PaidValue   decimal.Decimal `json:"paid_value"`
	DueDate     *time.Time      `json:"due_date" time_format:"2006-01-02"`
	Creditor    string          `json:"creditor"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

type DividaUpdate struct {
	Title       *string          `json:"title"`
	TotalValue  *decimal.Decimal `json:"total_value"`
	DueDate     *time.Time       `json:"due_date"`
	Creditor    *string          `json:"creditor"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
}
