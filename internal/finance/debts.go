package finance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/PhabloC/oakio-backend/internal/models"
)

// ProgressoDivida em %, limitado a 100. Zero quando o total é zero.
func ProgressoDivida(d models.Divida) float64 {
	if d.TotalValue.Sign() == 0 {
		return 0
	}
	p := d.PaidValue.Div(d.TotalValue).Mul(cem).InexactFloat64()
	if p > 100 {
		return 100
	}
	return p
}

// RestanteDivida = total - pago.
func RestanteDivida(d models.Divida) decimal.Decimal {
	return d.TotalValue.Sub(d.PaidValue)
}

// DividaVencida: vencimento no passado (só data) e ainda não quitada.
func DividaVencida(d models.Divida, agora time.Time) bool {
	if d.DueDate == nil || d.IsPaid {
		return false
	}
	return truncaDia(*d.DueDate).Before(truncaDia(agora))
}

// AplicarPagamento soma o valor ao pago e quita automaticamente quando
// o pago alcança o total — ao contrário de Meta.Completed, que nunca
// vira sozinho. O valor deve ser positivo; a validação acontece no
// service antes de qualquer efeito colateral.
func AplicarPagamento(d models.Divida, valor decimal.Decimal, agora time.Time) models.Divida {
	d.PaidValue = d.PaidValue.Add(valor)
	if d.PaidValue.GreaterThanOrEqual(d.TotalValue) && !d.IsPaid {
		d.IsPaid = true
		t := agora
		d.PaidAt = &t
	}
	return d
}

// QuitarDivida força o fechamento: pago = total (nunca passa disso),
// quitada, com carimbo de hora. Idempotente.
func QuitarDivida(d models.Divida, agora time.Time) models.Divida {
	d.PaidValue = d.TotalValue
	if !d.IsPaid {
		d.IsPaid = true
		t := agora
		d.PaidAt = &t
	}
	return d
}
