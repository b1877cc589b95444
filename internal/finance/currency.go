// Package finance é o motor de agregação: funções puras que transformam
// as coleções do usuário (transações, ativos, metas, dívidas) nos valores
// derivados exibidos em cards, gráficos e barras de progresso.
//
// Nenhuma função aqui faz I/O, guarda estado ou retorna NaN/Inf: entrada
// degenerada produz sentinela definido (0, nil, mapa vazio).
package finance

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatInputCurrency trata o input como um fluxo de dígitos em centavos:
// digitar "1234" significa R$12,34. Formata em pt-BR (vírgula decimal,
// ponto de milhar). Sem dígitos retorna string vazia, não "0,00".
func FormatInputCurrency(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	s := digits.String()
	if s == "" {
		return ""
	}

	// zeros à esquerda colapsam naturalmente
	s = strings.TrimLeft(s, "0")
	for len(s) < 3 {
		s = "0" + s
	}

	intPart := s[:len(s)-2]
	centPart := s[len(s)-2:]

	// ponto de milhar a cada três dígitos, da direita para a esquerda
	var grouped strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	return grouped.String() + "," + centPart
}

// ParseCurrencyToNumber é a inversa à esquerda de FormatInputCurrency:
// remove pontos de milhar, troca vírgula por ponto e converte. Input
// vazio ou não numérico vira zero, nunca erro.
func ParseCurrencyToNumber(display string) decimal.Decimal {
	s := strings.TrimSpace(display)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	if s == "" {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return value
}
