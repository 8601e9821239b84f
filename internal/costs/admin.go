package costs

import (
	"github.com/cloud-ru/feasibility-go/internal/model"
)

// AdminCostProvider возвращает административные расходы по годам.
// Индекс 0 не используется, длина - horizon+1.
type AdminCostProvider interface {
	AnnualCosts(in *model.ProjectInputs, horizon int) []float64
}

// AdminSchedule считает административные расходы по статьям AdminItems
type AdminSchedule struct{}

// AnnualCosts реализует AdminCostProvider
func (AdminSchedule) AnnualCosts(in *model.ProjectInputs, horizon int) []float64 {
	totals := make([]float64, horizon+1)
	totalCapex := in.TotalCapex()

	for _, item := range in.AdminItems {
		amount := item.Quantity.Or(1) * adminValue(item, totalCapex)

		switch item.FreqType {
		case model.FreqMonthly:
			for year := 1; year <= horizon; year++ {
				totals[year] += amount * 12
			}
		case model.FreqYearly, "":
			for year := 1; year <= horizon; year++ {
				totals[year] += amount
			}
		case model.FreqEveryN:
			n := item.CustomN.Int()
			if n <= 0 {
				n = defaultEveryN
			}
			for year := n; year <= horizon; year += n {
				totals[year] += amount
			}
		case model.FreqPeriod:
			start, end := window(item.StartYear, item.EndYear, horizon)
			for year := start; year <= end && year <= horizon; year++ {
				if year >= 1 {
					totals[year] += amount
				}
			}
		}
	}
	return totals
}

func adminValue(item model.AdminCostItem, totalCapex float64) float64 {
	if item.Type == model.CostPercentCapex {
		return item.Value.Float() / 100 * totalCapex
	}
	return item.Value.Float()
}
