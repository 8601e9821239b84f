package revenue

import (
	"math"

	"github.com/cloud-ru/feasibility-go/internal/model"
)

// Other рассчитывает прочие доходы года. Каждая статья индексируется
// по своей ставке с первого года; per_unit умножается на выпуск года.
func Other(in *model.ProjectInputs, year int, output float64) float64 {
	total := 0.0
	for _, item := range in.OtherRevenue {
		var multiplier float64
		switch item.FreqType {
		case model.FreqYearly, "":
			multiplier = 1
		case model.FreqMonthly:
			multiplier = 12
		case model.FreqDaily:
			multiplier = in.DaysPerYear.Or(365)
		case model.FreqPerUnit:
			multiplier = output
		}
		if multiplier <= 0 {
			continue
		}

		escalation := math.Pow(1+item.Escalation.Float()/100, float64(year-1))
		total += item.Amount.Float() * multiplier * escalation
	}
	return total
}
