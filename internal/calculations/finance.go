package calculations

import "math"

const (
	irrMaxIterations = 1000
	irrEpsilon       = 1e-7
)

// NPV рассчитывает чистую приведённую стоимость. cashFlows[0] - год 0.
// Для rate <= -1 результат может быть Inf или NaN; это не проверяется.
func NPV(rate float64, cashFlows []float64) float64 {
	npv := 0.0
	for t, cf := range cashFlows {
		npv += cf / math.Pow(1+rate, float64(t))
	}
	return npv
}

// IRR находит внутреннюю норму доходности методом Ньютона-Рафсона.
// При слишком пологой производной возвращает текущее приближение,
// при отсутствии сходимости за 1000 итераций - NaN.
func IRR(cashFlows []float64, guess float64) float64 {
	x0 := guess
	for i := 0; i < irrMaxIterations; i++ {
		f := NPV(x0, cashFlows)

		// d(NPV)/dr = sum(-t * CF[t] / (1+r)^(t+1))
		df := 0.0
		for t, cf := range cashFlows {
			df += -float64(t) * cf / math.Pow(1+x0, float64(t+1))
		}

		if math.Abs(df) < irrEpsilon {
			return x0
		}

		x1 := x0 - f/df
		if math.Abs(x1-x0) <= irrEpsilon {
			return x1
		}
		x0 = x1
	}
	return math.NaN()
}

// DefaultIRR вызывает IRR с начальным приближением 10%
func DefaultIRR(cashFlows []float64) float64 {
	return IRR(cashFlows, 0.1)
}

// LCOE рассчитывает приведённую стоимость единицы продукции:
// дисконтированные затраты / дисконтированный выпуск. При нулевом выпуске - 0.
func LCOE(rate float64, costs, output []float64) float64 {
	discountedCosts := NPV(rate, costs)

	discountedOutput := 0.0
	for t, q := range output {
		discountedOutput += q / math.Pow(1+rate, float64(t))
	}

	if discountedOutput == 0 {
		return 0
	}
	return discountedCosts / discountedOutput
}

// PaybackPeriod возвращает срок окупаемости в годах с линейной интерполяцией
// внутри года, в котором накопленный поток становится неотрицательным.
// -1 означает, что проект не окупается.
func PaybackPeriod(cashFlows []float64) float64 {
	cumulative := 0.0
	for i, cf := range cashFlows {
		cumulative += cf
		if cumulative >= 0 {
			prev := cumulative - cf
			fraction := 0.0
			if cf != 0 {
				fraction = math.Abs(prev) / cf
			}
			return float64(i-1) + fraction
		}
	}
	return -1
}

// PMT возвращает аннуитетный платёж за период
func PMT(rate float64, periods int, presentValue float64) float64 {
	if rate == 0 {
		return presentValue / float64(periods)
	}
	pvif := math.Pow(1+rate, float64(periods))
	return presentValue * rate * (pvif / (pvif - 1))
}

// DepreciationSchedule возвращает линейный график амортизации на years лет
func DepreciationSchedule(capex float64, years int, salvage float64) []float64 {
	if years <= 0 {
		return nil
	}
	annual := (capex - salvage) / float64(years)
	schedule := make([]float64, years)
	for i := range schedule {
		schedule[i] = annual
	}
	return schedule
}

// Cumulative возвращает ряд нарастающих итогов
func Cumulative(values []float64) []float64 {
	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		out[i] = sum
	}
	return out
}
