package projection

import (
	"github.com/cloud-ru/feasibility-go/internal/costs"
	"github.com/cloud-ru/feasibility-go/internal/model"
)

// globals - ставки, действующие весь горизонт, в долях
type globals struct {
	InterestRate  float64
	OpexInflation float64
	TaxRate       float64
}

// resolveGlobals применяет события global_*; при нескольких событиях
// одного вида действует последнее в списке
func resolveGlobals(in *model.ProjectInputs, events []model.SimulationEvent) globals {
	g := globals{
		InterestRate:  in.Finance.InterestRate.Float() / 100,
		OpexInflation: in.Finance.OpexInflation.Float() / 100,
		TaxRate:       in.Finance.TaxRate.Float() / 100,
	}
	for _, ev := range events {
		switch ev.Type {
		case model.EventGlobalInterest:
			g.InterestRate = ev.Value.Float() / 100
		case model.EventGlobalInflation:
			g.OpexInflation = ev.Value.Float() / 100
		case model.EventGlobalTax:
			g.TaxRate = ev.Value.Float() / 100
		}
	}
	return g
}

// loanRequest - дополнительный кредит, выдаваемый в текущем году. Rate - доля.
type loanRequest struct {
	Amount float64
	Rate   float64
	Term   int
}

// yearOverrides - сценарные изменения одного года. nil-указатели означают
// значения из параметров проекта.
type yearOverrides struct {
	Capacity     *float64
	PricePeak    *float64
	PriceOffPeak *float64
	Opex         costs.Adjustment
	NewLoans     []loanRequest
	Extra        []model.SimulationEvent
}

// extraRevenue суммирует разовые доходы года; percent - доля базовой выручки
func (o yearOverrides) extraRevenue(base float64) float64 {
	total := 0.0
	for _, ev := range o.Extra {
		if ev.Mode == model.ModePercent {
			total += base * ev.Value.Float() / 100
		} else {
			total += ev.Value.Float()
		}
	}
	return total
}

// resolveYear сворачивает события года в порядке списка: percent умножает,
// delta прибавляет, absolute заменяет текущее значение
func resolveYear(in *model.ProjectInputs, events []model.SimulationEvent, year, horizon int) yearOverrides {
	var o yearOverrides

	for _, ev := range events {
		if ev.IsGlobal() {
			continue
		}
		if ev.Type == model.EventNewLoan && ev.StartYear.Int() == year {
			term := ev.Term.Int()
			if term <= 0 {
				term = ev.EndYear.Int()
			}
			o.NewLoans = append(o.NewLoans, loanRequest{
				Amount: ev.Amount.Float(),
				Rate:   ev.Rate.Float() / 100,
				Term:   term,
			})
		}

		if ev.Type == model.EventExtraRevenue {
			// без конца окна разовый доход относится только к году начала
			end := ev.EndYear.Int()
			if end == 0 {
				end = ev.StartYear.Int()
			}
			if year >= ev.StartYear.Int() && year <= end {
				o.Extra = append(o.Extra, ev)
			}
			continue
		}

		if !ev.ActiveIn(year, horizon) {
			continue
		}

		v := ev.Value.Float()
		switch ev.Type {
		case model.EventCapacity:
			o.Capacity = fold(o.Capacity, in.Capacity.Float(), ev.Mode, v)
		case model.EventPricePeak:
			o.PricePeak = fold(o.PricePeak, primaryTariff(in), ev.Mode, v)
		case model.EventPriceOffPeak:
			o.PriceOffPeak = fold(o.PriceOffPeak, in.Revenue.OffPeakRate.Float(), ev.Mode, v)
		case model.EventExpenseOpex:
			switch ev.Mode {
			case model.ModePercent:
				o.Opex.Percent += v
			case model.ModeAbsolute, model.ModeDelta:
				o.Opex.Absolute += v
			}
		}
	}
	return o
}

func fold(cur *float64, base float64, mode model.EventMode, v float64) *float64 {
	x := base
	if cur != nil {
		x = *cur
	}
	switch mode {
	case model.ModeAbsolute:
		x = v
	case model.ModeDelta:
		x += v
	case model.ModePercent:
		x *= 1 + v/100
	default:
		return cur
	}
	return &x
}

// primaryTariff - основной тариф модели, к которому относятся события price_peak
func primaryTariff(in *model.ProjectInputs) float64 {
	switch in.ModelType {
	case model.ModelWater:
		return in.Revenue.UnitPrice.Float()
	case model.ModelWaste:
		return in.Revenue.TippingFee.Float()
	}
	return in.Revenue.PeakRate.Float()
}
