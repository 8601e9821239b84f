// Package validators проверяет параметры проекта и сценарные события
// на границе инструментов и HTTP API. Движок расчёта сам ничего не проверяет.
package validators

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/feasibility-go/internal/config"
	"github.com/cloud-ru/feasibility-go/internal/costs"
	"github.com/cloud-ru/feasibility-go/internal/model"
	"github.com/cloud-ru/feasibility-go/pkg/utils"
)

// ValidatePositiveNumber проверяет, что число конечно и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %g", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%g)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckProjectYears проверяет горизонт; 0 означает значение по умолчанию
func CheckProjectYears(cfg *config.Config, years int) error {
	return ValidateIntRange("projectYears", years, 0, cfg.MaxProjectYears)
}

// CheckCapacity проверяет мощность
func CheckCapacity(cfg *config.Config, name string, capacity float64) error {
	return ValidatePositiveNumber(name, capacity, 0, cfg.MaxCapacity)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, name string, rate float64) error {
	return ValidatePositiveNumber(name, rate, 0, cfg.MaxRate)
}

// CheckDebtRatio проверяет долю заёмного финансирования, %
func CheckDebtRatio(ratio float64) error {
	return ValidatePositiveNumber("finance.debtRatio", ratio, 0, 100)
}

// CheckLoanTerm проверяет срок кредита; 0 означает 10 лет
func CheckLoanTerm(cfg *config.Config, term int) error {
	return ValidateIntRange("finance.loanTerm", term, 0, cfg.MaxProjectYears)
}

// CheckCapex проверяет суммарный CAPEX
func CheckCapex(cfg *config.Config, capex model.CapexInputs) error {
	for name, v := range map[string]float64{
		"capex.construction": capex.Construction.Float(),
		"capex.machinery":    capex.Machinery.Float(),
		"capex.land":         capex.Land.Float(),
		"capex.sharePremium": capex.SharePremium.Float(),
		"capex.others":       capex.Others.Float(),
	} {
		if v < 0 {
			return fmt.Errorf("%s: значение должно быть ≥ 0", name)
		}
	}
	return ValidatePositiveNumber("capex", capex.Total(), 0, cfg.MaxCapex)
}

// ValidateInputs проверяет параметры проекта и возвращает все найденные ошибки
func ValidateInputs(cfg *config.Config, in *model.ProjectInputs) error {
	if in == nil {
		return errors.New("inputs: параметры проекта не заданы")
	}

	switch in.ModelType {
	case "", model.ModelPower, model.ModelSolar, model.ModelWater, model.ModelWaste:
	default:
		return fmt.Errorf("modelType: неизвестная модель %q", in.ModelType)
	}

	f := in.Finance
	errs := []error{
		CheckProjectYears(cfg, in.ProjectYears.Int()),
		CheckCapacity(cfg, "capacity", in.Capacity.Float()),
		CheckCapacity(cfg, "productionCapacity", in.ProductionCapacity.Float()),
		CheckCapex(cfg, in.Capex),
		CheckDebtRatio(f.DebtRatio.Float()),
		CheckLoanTerm(cfg, f.LoanTerm.Int()),
		CheckRate(cfg, "finance.interestRate", f.InterestRate.Float()),
		CheckRate(cfg, "finance.taxRate", f.TaxRate.Float()),
		CheckRate(cfg, "finance.ke", f.Ke.Float()),
		CheckRate(cfg, "finance.kd", f.Kd.Float()),
		ValidateIntRange("finance.taxHoliday", f.TaxHoliday.Int(), 0, cfg.MaxProjectYears),
		ValidatePositiveNumber("finance.opexInflation", f.OpexInflation.Float(), -cfg.MaxRate, cfg.MaxRate),
		ValidatePositiveNumber("revenue.escalation", in.Revenue.Escalation.Float(), -cfg.MaxRate, cfg.MaxRate),
	}
	if f.DiscountRate != nil {
		errs = append(errs, CheckRate(cfg, "finance.discountRate", f.DiscountRate.Float()))
	}
	if in.PowerFactor != nil {
		errs = append(errs, ValidatePositiveNumber("powerFactor", in.PowerFactor.Float(), 0, 1))
	}
	if err := costs.ValidateLinks(in.DetailedOpex); err != nil {
		errs = append(errs, fmt.Errorf("detailedOpex: %w", err))
	}
	return errors.Join(errs...)
}

// ValidateEvents проверяет сценарные события для горизонта horizon
func ValidateEvents(cfg *config.Config, events []model.SimulationEvent, horizon int) error {
	var errs []error
	for i, ev := range events {
		if err := validateEvent(cfg, ev, horizon); err != nil {
			errs = append(errs, fmt.Errorf("events[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func validateEvent(cfg *config.Config, ev model.SimulationEvent, horizon int) error {
	start, end := ev.StartYear.Int(), ev.EndYear.Int()

	switch ev.Type {
	case model.EventGlobalInterest, model.EventGlobalTax:
		return CheckRate(cfg, string(ev.Type), ev.Value.Float())
	case model.EventGlobalInflation:
		return ValidatePositiveNumber(string(ev.Type), ev.Value.Float(), -cfg.MaxRate, cfg.MaxRate)
	case model.EventNewLoan:
		if err := ValidateIntRange("startYear", start, 1, horizon); err != nil {
			return err
		}
		if err := ValidatePositiveNumber("amount", ev.Amount.Float(), 1e-9, cfg.MaxCapex); err != nil {
			return err
		}
		if ev.Term.Int() <= 0 && end <= 0 {
			return errors.New("term: срок кредита не задан")
		}
		return CheckRate(cfg, "rate", ev.Rate.Float())
	case model.EventCapacity, model.EventPricePeak, model.EventPriceOffPeak, model.EventExpenseOpex:
		switch ev.Mode {
		case model.ModePercent, model.ModeAbsolute, model.ModeDelta:
		case "":
			return errors.New("mode: способ применения не задан")
		default:
			return fmt.Errorf("mode: неизвестный способ %q", ev.Mode)
		}
	case model.EventExtraRevenue:
		if ev.Mode != "" && ev.Mode != model.ModePercent && ev.Mode != model.ModeAbsolute {
			return fmt.Errorf("mode: неизвестный способ %q", ev.Mode)
		}
	default:
		return fmt.Errorf("type: неизвестное событие %q", ev.Type)
	}

	if !utils.IsFinite(ev.Value.Float()) {
		return errors.New("value: значение не является конечным числом")
	}
	if err := ValidateIntRange("startYear", start, 0, horizon); err != nil {
		return err
	}
	if end != 0 && end < start {
		return fmt.Errorf("endYear: окно [%d; %d] пусто", start, end)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, 1e-9, cfg.MaxCapex)
}

// CheckLoanYears проверяет срок кредита в годах
func CheckLoanYears(cfg *config.Config, years int) error {
	return ValidateIntRange("years", years, 1, cfg.MaxProjectYears)
}

// CheckCashFlows проверяет ряд денежных потоков
func CheckCashFlows(cfg *config.Config, flows []float64) error {
	if len(flows) < 2 {
		return errors.New("cash_flows: нужно не менее двух значений")
	}
	if len(flows) > cfg.MaxProjectYears+1 {
		return fmt.Errorf("cash_flows: не более %d значений", cfg.MaxProjectYears+1)
	}
	for i, cf := range flows {
		if !utils.IsFinite(cf) {
			return fmt.Errorf("cash_flows[%d]: значение не является конечным числом", i)
		}
	}
	return nil
}
