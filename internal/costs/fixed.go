package costs

import (
	"math"

	"github.com/cloud-ru/feasibility-go/internal/model"
)

const defaultEveryN = 5

// FixedItemCost возвращает затраты постоянной статьи в году y.
// Индексация на инфляцию начинается с года, в котором статья "стартует":
// N для every_n, начала окна для period.
func FixedItemCost(in *model.ProjectInputs, item model.FixedOpexItem, y Year) float64 {
	multiplier, escStart := fixedMultiplier(in, item, y)
	if multiplier == 0 {
		return 0
	}

	base := fixedBase(in, item, y.TotalCapex) * item.Quantity.Or(1)
	inflation := math.Pow(1+y.OpexInflation, math.Max(0, float64(y.Year-escStart)))
	return base * multiplier * inflation
}

func fixedMultiplier(in *model.ProjectInputs, item model.FixedOpexItem, y Year) (float64, int) {
	switch freqOf(item) {
	case model.FreqDaily:
		return in.DaysPerYear.Or(365), 1
	case model.FreqMonthly:
		return 12, 1
	case model.FreqYearly:
		return 1, 1
	case model.FreqEveryN:
		n := item.CustomN.Int()
		if n <= 0 {
			n = defaultEveryN
		}
		if y.Year%n == 0 {
			return 1, n
		}
		return 0, n
	case model.FreqPeriod:
		start, end := window(item.StartYear, item.EndYear, y.Horizon)
		if y.Year >= start && y.Year <= end {
			return 1, start
		}
		return 0, start
	default:
		// устаревший формат: раз в Frequency лет
		n := item.Frequency.Int()
		if n <= 0 {
			n = 1
		}
		if n == 1 || y.Year%n == 0 {
			return 1, n
		}
		return 0, n
	}
}

// freqOf определяет периодичность статьи. Запись без freqType, но с
// заполненным frequency > 1, сохранена в устаревшем формате.
func freqOf(item model.FixedOpexItem) model.Frequency {
	if item.FreqType == "" {
		if item.Frequency.Int() > 1 {
			return "legacy"
		}
		return model.FreqYearly
	}
	return item.FreqType
}

func fixedBase(in *model.ProjectInputs, item model.FixedOpexItem, totalCapex float64) float64 {
	value := item.Value.Float()
	switch item.Type {
	case model.CostFixed, "":
		return value
	case model.CostPerMWProduction, model.CostPerMW:
		return value * in.ProductionCapacity.Or(in.Capacity.Float())
	case model.CostPerMWSales:
		return value * in.Capacity.Float()
	case model.CostPercentCapex:
		return value / 100 * totalCapex
	case model.CostPercentMachinery:
		return value / 100 * in.Capex.Machinery.Float()
	case model.CostPercentConstMach:
		return value / 100 * (in.Capex.Construction.Float() + in.Capex.Machinery.Float())
	}
	return 0
}
