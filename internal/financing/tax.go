package financing

// Tax - налог на прибыль с налоговыми каникулами.
// В годы каникул налог не начисляется и не переносится на будущее.
type Tax struct {
	// Rate - доля, 0.2 = 20%
	Rate    float64
	Holiday int
}

// Compute возвращает налог и чистую прибыль года
func (t Tax) Compute(ebit, interest float64, year int) (tax, netIncome float64) {
	taxable := ebit - interest
	if year > t.Holiday && taxable > 0 {
		tax = taxable * t.Rate
	}
	return tax, taxable - tax
}

// DSCR возвращает коэффициент покрытия долга (EBITDA - налог) / платёж.
// Без платежей по долгу - 0.
func DSCR(ebitda, tax, debtService float64) float64 {
	if debtService <= 0 {
		return 0
	}
	return (ebitda - tax) / debtService
}
