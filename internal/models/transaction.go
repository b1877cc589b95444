package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeGanho        TransactionType = "Ganho"        // entrada de dinheiro
	TransactionTypeGasto        TransactionType = "Gasto"        // saída de dinheiro
	TransactionTypeInvestimento TransactionType = "Investimento" // capital alocado, não conta como despesa
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeGanho, TransactionTypeGasto, TransactionTypeInvestimento:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodBoleto PaymentMethod = "Boleto"
	PaymentMethodPix    PaymentMethod = "Pix"
	PaymentMethodCartao PaymentMethod = "Cartão"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodBoleto, PaymentMethodPix, PaymentMethodCartao:
		return true
	}
	return false
}

type Transaction struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	Title       string          `json:"title" db:"title"`
	Value       decimal.Decimal `json:"value" db:"value"` // magnitude; o sinal vem do Type
	Type        TransactionType `json:"type" db:"type"`
	Method      PaymentMethod   `json:"method" db:"method"`
	Date        time.Time       `json:"date" db:"date"`
	Month       string          `json:"month" db:"month"` // sempre derivado de Date, nunca setado pelo caller
	Category    *string         `json:"category" db:"category"`
	Description *string         `json:"description" db:"description"`
	Paga        bool            `json:"paga" db:"paga"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

type TransactionCreate struct {
	Title       string          `json:"title" binding:"required"`
	Value       decimal.Decimal `json:"value" binding:"required"`
	Type        TransactionType `json:"type" binding:"required"`
	Method      PaymentMethod   `json:"method" binding:"required"`
	Date        time.Time       `json:"date" binding:"required" time_format:"2006-01-02"`
	Category    *string         `json:"category"`
	Description *string         `json:"description"`
	Paga        bool            `json:"paga"`
}

type TransactionUpdate struct {
	Title       *string          `json:"title"`
	Value       *decimal.Decimal `json:"value"`
	Type        *TransactionType `json:"type"`
	Method      *PaymentMethod   `json:"method"`
	Date        *time.Time       `json:"date"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
}

var monthNames = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthName retorna o nome do mês em português, capitalizado ("Março").
func MonthName(date time.Time) string {
	return monthNames[int(date.Month())-1]
}

// MonthNumber resolve o nome do mês de volta para time.Month; false se desconhecido.
func MonthNumber(name string) (time.Month, bool) {
	for i, n := range monthNames {
		if n == name {
			return time.Month(i + 1), true
		}
	}
	return 0, false
}

// NewTransaction monta a transação derivando Month de Date.
// Único lugar que escreve Month: o caller nunca seta os dois separadamente.
func NewTransaction(userID uuid.UUID, input *TransactionCreate) *Transaction {
	return &Transaction{
		UserID:      userID,
		Title:       input.Title,
		Value:       input.Value,
		Type:        input.Type,
		Method:      input.Method,
		Date:        input.Date,
		Month:       MonthName(input.Date),
		Category:    input.Category,
		Description: input.Description,
		Paga:        input.Paga,
	}
}
