package calculations

import (
	"fmt"

	"github.com/cloud-ru/feasibility-go/pkg/utils"
)

// Loan - кредит с аннуитетным погашением, учитываемый по годам.
// Платежи вносятся с Origin по TermEnd включительно.
type Loan struct {
	Balance float64 `json:"balance"`
	Rate    float64 `json:"rate"`
	Payment float64 `json:"payment"`
	Origin  int     `json:"origin"`
	TermEnd int     `json:"term_end"`
}

// NewLoan выдаёт кредит в году originYear на term лет по ставке rate (доля)
func NewLoan(amount, rate float64, term, originYear int) *Loan {
	return &Loan{
		Balance: amount,
		Rate:    rate,
		Payment: PMT(rate, term, amount),
		Origin:  originYear,
		TermEnd: originYear + term - 1,
	}
}

// Active сообщает, обслуживается ли кредит в году year
func (l *Loan) Active(year int) bool {
	return l.Balance > 0 && year >= l.Origin && year <= l.TermEnd
}

// Step начисляет проценты за год и гасит основной долг, не превышая остаток.
// Возвращает проценты и погашенную часть долга.
func (l *Loan) Step(year int) (interest, principal float64) {
	if !l.Active(year) {
		return 0, 0
	}
	interest = l.Balance * l.Rate
	principal = l.Payment - interest
	if principal > l.Balance {
		principal = l.Balance
	}
	l.Balance -= principal
	return interest, principal
}

// AnnuitySchedule рассчитывает годовой график аннуитетного кредита
func AnnuitySchedule(principal, annualRatePercent float64, years int) (*CalculationResult, error) {
	if years <= 0 {
		return nil, fmt.Errorf("срок кредита должен быть положительным")
	}
	r := annualRatePercent / 100.0
	loan := NewLoan(principal, r, years, 1)

	schedule := make([]ScheduleEntry, 0, years)
	cumI := 0.0
	cumP := 0.0
	totalPaid := 0.0

	for y := 1; y <= years; y++ {
		starting := loan.Balance
		interest, principalComponent := loan.Step(y)
		if y == years {
			// остаток от накопленной погрешности гасится последним платежом
			principalComponent += loan.Balance
			loan.Balance = 0
		}
		payment := interest + principalComponent

		cumI += interest
		cumP += principalComponent
		totalPaid += payment

		if loan.Balance < -0.01 {
			return nil, fmt.Errorf("численная ошибка: остаток кредита стал отрицательным")
		}

		schedule = append(schedule, ScheduleEntry{
			Year:                y,
			StartingBalance:     utils.Round2(starting),
			Payment:             utils.Round2(payment),
			Interest:            utils.Round2(interest),
			PrincipalComponent:  utils.Round2(principalComponent),
			RemainingPrincipal:  utils.Round2(loan.Balance),
			CumulativeInterest:  utils.Round2(cumI),
			CumulativePrincipal: utils.Round2(cumP),
		})
	}

	summary := LoanSummary{
		Principal:         utils.Round2(principal),
		AnnualRatePercent: utils.Round2(annualRatePercent),
		Years:             years,
		AnnualPayment:     utils.Round2(loan.Payment),
		TotalPaid:         utils.Round2(totalPaid),
		TotalInterest:     utils.Round2(cumI),
	}

	return &CalculationResult{
		Summary:  summary,
		Schedule: schedule,
	}, nil
}
