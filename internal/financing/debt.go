// Package financing ведёт обслуживание долга и расчёт налога по годам проекта.
package financing

import (
	"github.com/cloud-ru/feasibility-go/internal/calculations"
)

// DefaultLoanTerm - срок кредита, если он не задан
const DefaultLoanTerm = 10

// Service - обслуживание долга за год по всем кредитам
type Service struct {
	Interest  float64
	Principal float64
	// Balance - суммарный остаток долга на конец года
	Balance float64
}

// Total возвращает платёж года: проценты и погашение основного долга
func (s Service) Total() float64 {
	return s.Interest + s.Principal
}

// Debt - основной кредит, выданный в году 0, и дополнительные кредиты,
// привлечённые сценарными событиями в ходе проекта
type Debt struct {
	primary   *calculations.Loan
	secondary []*calculations.Loan
}

// NewDebt выдаёт основной кредит. rate - доля, платежи с первого по term год.
func NewDebt(amount, rate float64, term int) *Debt {
	if term <= 0 {
		term = DefaultLoanTerm
	}
	return &Debt{primary: calculations.NewLoan(amount, rate, term, 1)}
}

// Originate выдаёт дополнительный кредит в году year и возвращает
// поступление денежных средств. Нулевая сумма кредит не создаёт.
func (d *Debt) Originate(amount, rate float64, term, year int) float64 {
	if amount <= 0 {
		return 0
	}
	if term <= 0 {
		term = DefaultLoanTerm
	}
	d.secondary = append(d.secondary, calculations.NewLoan(amount, rate, term, year))
	return amount
}

// Service начисляет проценты и гасит долг по всем активным кредитам за год year
func (d *Debt) Service(year int) Service {
	var s Service

	interest, principal := d.primary.Step(year)
	s.Interest += interest
	s.Principal += principal

	for _, loan := range d.secondary {
		interest, principal := loan.Step(year)
		s.Interest += interest
		s.Principal += principal
	}

	s.Balance = d.primary.Balance
	for _, loan := range d.secondary {
		s.Balance += loan.Balance
	}
	return s
}
