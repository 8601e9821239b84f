// Package projection строит годовую модель денежных потоков проекта
// и рассчитывает по ней NPV, IRR, LCOE и срок окупаемости.
package projection

import (
	"math"

	"github.com/cloud-ru/feasibility-go/internal/calculations"
	"github.com/cloud-ru/feasibility-go/internal/costs"
	"github.com/cloud-ru/feasibility-go/internal/financing"
	"github.com/cloud-ru/feasibility-go/internal/metrics"
	"github.com/cloud-ru/feasibility-go/internal/model"
	"github.com/cloud-ru/feasibility-go/internal/revenue"
)

// Options - значения по умолчанию, применяемые при отсутствии параметров.
// Ставки задаются в процентах.
type Options struct {
	DefaultProjectYears int
	DefaultDiscountRate float64
	EquityHurdleRate    float64
	Admin               costs.AdminCostProvider
}

// DefaultOptions возвращает стандартные значения: 20 лет, 7% и 10%
func DefaultOptions() Options {
	return Options{
		DefaultProjectYears: 20,
		DefaultDiscountRate: 7,
		EquityHurdleRate:    10,
		Admin:               costs.AdminSchedule{},
	}
}

// Engine рассчитывает проекты. Не хранит состояния между вызовами
// и может использоваться из нескольких горутин.
type Engine struct {
	opts Options
}

// New создаёт движок; незаданные опции заменяются значениями по умолчанию
func New(opts Options) *Engine {
	def := DefaultOptions()
	if opts.DefaultProjectYears <= 0 {
		opts.DefaultProjectYears = def.DefaultProjectYears
	}
	if opts.DefaultDiscountRate == 0 {
		opts.DefaultDiscountRate = def.DefaultDiscountRate
	}
	if opts.EquityHurdleRate == 0 {
		opts.EquityHurdleRate = def.EquityHurdleRate
	}
	if opts.Admin == nil {
		opts.Admin = def.Admin
	}
	return &Engine{opts: opts}
}

// Calculate выполняет расчёт по копиям параметров и событий.
// Результат всегда структурно полон, NaN наружу не попадает.
func (e *Engine) Calculate(in *model.ProjectInputs, events []model.SimulationEvent) *model.ProjectionResult {
	if in == nil {
		in = &model.ProjectInputs{}
	}
	in = in.Clone()
	events = model.CloneEvents(events)

	years := in.ProjectYears.Int()
	if years <= 0 {
		years = e.opts.DefaultProjectYears
	}

	rates := e.capitalRates(in)
	globals := resolveGlobals(in, events)

	totalCapex := in.TotalCapex()
	debtRatio := in.Finance.DebtRatio.Float() / 100
	loanAmount := totalCapex * debtRatio
	equityAmount := totalCapex - loanAmount

	debt := financing.NewDebt(loanAmount, globals.InterestRate, in.Finance.LoanTerm.Int())
	tax := financing.Tax{Rate: globals.TaxRate, Holiday: in.Finance.TaxHoliday.Int()}

	depreciation := calculations.DepreciationSchedule(in.Capex.Depreciable(), years, 0)

	days := in.DaysPerYear.Or(365)
	escalation := in.Revenue.Escalation.Float() / 100
	initialEfficiency := in.InitialEfficiency.Or(100) / 100
	degradation := in.Degradation.Float() / 100
	strategy := revenue.For(in.ModelType)

	agg := costs.NewAggregator(in, e.opts.Admin.AnnualCosts(in, years))

	s := newSeries(years)
	s.projectCF[0] = -totalCapex
	s.equityCF[0] = -equityAmount
	s.costs[0] = totalCapex

	for year := 1; year <= years; year++ {
		ov := resolveYear(in, events, year, years)

		proceeds := 0.0
		for _, l := range ov.NewLoans {
			proceeds += debt.Originate(l.Amount, l.Rate, l.Term, year)
		}

		params := revenue.Params{
			DegradationFactor: initialEfficiency * math.Pow(1-degradation, float64(year-1)),
			EscalationFactor:  math.Pow(1+escalation, float64(year-1)),
			Days:              days,
			SimCapacity:       ov.Capacity,
			SimPricePeak:      ov.PricePeak,
			SimPriceOffPeak:   ov.PriceOffPeak,
		}
		out := strategy.Revenue(in, year, params)

		other := revenue.Other(in, year, out.TotalEnergy) + ov.extraRevenue(out.Revenue)
		yearRevenue := out.Revenue + other

		opex := agg.Year(costs.Year{
			Year:          year,
			Horizon:       years,
			Days:          days,
			OpexInflation: globals.OpexInflation,
			TotalCapex:    totalCapex,
		}, ov.Opex)

		ebitda := yearRevenue - opex.Total
		dep := depreciation[year-1]
		ebit := ebitda - dep

		service := debt.Service(year)
		yearTax, netIncome := tax.Compute(ebit, service.Interest, year)

		s.revenue[year] = yearRevenue
		s.opex[year] = opex.Total
		s.itemized[year] = opex.Items
		s.fixed[year] = opex.Fixed
		s.variable[year] = opex.Variable
		s.ebitda[year] = ebitda
		s.depreciation[year] = dep
		s.ebit[year] = ebit
		s.interest[year] = service.Interest
		s.principal[year] = service.Principal
		s.finance[year] = service.Total()
		s.tax[year] = yearTax
		s.netIncome[year] = netIncome
		s.balance[year] = service.Balance
		s.dscr[year] = financing.DSCR(ebitda, yearTax, service.Total())

		s.projectCF[year] = ebitda - yearTax
		s.equityCF[year] = netIncome + dep - service.Principal + proceeds

		s.costs[year] = opex.Total + dep + service.Interest
		s.energy[year] = out.TotalEnergy
	}

	discountRate := rates.discountRate()

	res := &model.ProjectionResult{
		NPV:        calculations.NPV(discountRate, s.projectCF),
		IRR:        irrPercent(s.projectCF, "project"),
		NPVEquity:  calculations.NPV(e.opts.EquityHurdleRate/100, s.equityCF),
		IRREquity:  irrPercent(s.equityCF, "equity"),
		LCOE:       calculations.LCOE(discountRate, s.costs, s.energy),
		Payback:    calculations.PaybackPeriod(s.projectCF),
		Ke:         rates.ke * 100,
		Kd:         rates.kd * 100,
		KdAfterTax: rates.kd * (1 - globals.TaxRate) * 100,
		WACC:       discountRate * 100,

		CashFlows:                 s.projectCF,
		EquityCashFlows:           s.equityCF,
		CumulativeCashFlows:       calculations.Cumulative(s.projectCF),
		CumulativeEquityCashFlows: calculations.Cumulative(s.equityCF),

		Inputs:  in,
		Events:  events,
		Details: s.details(),
	}
	return res
}

func irrPercent(cashFlows []float64, label string) float64 {
	irr := calculations.DefaultIRR(cashFlows)
	if math.IsNaN(irr) {
		metrics.IRRNonConvergence.WithLabelValues(label).Inc()
		return 0
	}
	return irr * 100
}

// capitalRates - стоимость капитала в долях
type capitalRates struct {
	ke     float64
	kd     float64
	wacc   float64
	manual float64
	mode   string
}

func (e *Engine) capitalRates(in *model.ProjectInputs) capitalRates {
	f := in.Finance
	debtRatio := f.DebtRatio.Float() / 100
	taxRate := f.TaxRate.Float() / 100

	r := capitalRates{
		ke:     f.Ke.Float() / 100,
		kd:     f.Kd.Or(f.InterestRate.Float()) / 100,
		manual: e.opts.DefaultDiscountRate / 100,
		mode:   f.DiscountMode,
	}
	if f.DiscountRate != nil {
		r.manual = f.DiscountRate.Float() / 100
	}
	r.wacc = (1-debtRatio)*r.ke + debtRatio*r.kd*(1-taxRate)
	return r
}

// discountRate выбирает ставку: ручную WACC либо расчётную по Ke/Kd.
// Нулевая расчётная ставка заменяется ручной.
func (r capitalRates) discountRate() float64 {
	if r.mode == model.DiscountManual {
		return r.manual
	}
	if r.wacc > 0 {
		return r.wacc
	}
	return r.manual
}
