package report

import (
	"math"

	"github.com/cloud-ru/feasibility-go/internal/model"
)

// cent - суммы меньше полкопейки считаются нулевыми
const cent = 0.005

// DebtRow - строка графика обслуживания долга, суммы в базовой валюте
type DebtRow struct {
	Year             int     `json:"year"`
	BeginningBalance float64 `json:"beginningBalance"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	Service          float64 `json:"service"`
	EndingBalance    float64 `json:"endingBalance"`
	DSCR             float64 `json:"dscr"`
}

// DebtSchedule возвращает годы, в которых обслуживается долг или есть остаток
func DebtSchedule(r *model.ProjectionResult) []DebtRow {
	d := r.Details
	var rows []DebtRow
	for y := 1; y <= r.Years(); y++ {
		ending := at(d.AnnualLoanBalance, y)
		principal := at(d.AnnualPrincipal, y)
		interest := at(d.AnnualInterest, y)
		if math.Abs(principal) < cent && math.Abs(interest) < cent && math.Abs(ending) < cent {
			continue
		}
		rows = append(rows, DebtRow{
			Year:             y,
			BeginningBalance: ending + principal,
			Principal:        principal,
			Interest:         interest,
			Service:          principal + interest,
			EndingBalance:    ending,
			DSCR:             at(d.AnnualDSCR, y),
		})
	}
	return rows
}

// MinDSCR возвращает минимальный DSCR среди лет с обслуживанием долга, 0 - если долга нет
func MinDSCR(r *model.ProjectionResult) float64 {
	lowest := 0.0
	for _, row := range DebtSchedule(r) {
		if row.Service <= 0 {
			continue
		}
		if lowest == 0 || row.DSCR < lowest {
			lowest = row.DSCR
		}
	}
	return lowest
}
