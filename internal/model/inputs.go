// Package model описывает входные параметры технико-экономического обоснования,
// события сценарного моделирования и результат расчёта.
package model

import "github.com/cloud-ru/feasibility-go/pkg/utils"

// ModelType выбирает стратегию расчёта выручки
type ModelType string

const (
	ModelPower ModelType = "POWER"
	ModelSolar ModelType = "SOLAR"
	ModelWater ModelType = "WATER"
	ModelWaste ModelType = "WASTE"
)

// Million - множитель перевода сумм CAPEX из миллионов в базовую валюту
const Million = 1_000_000

// Frequency - периодичность статьи затрат или дохода
type Frequency string

const (
	FreqDaily   Frequency = "daily"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
	FreqEveryN  Frequency = "every_n"
	FreqPeriod  Frequency = "period"
	FreqPerUnit Frequency = "per_unit"
)

// CostKind определяет базу расчёта постоянной статьи OPEX
type CostKind string

const (
	CostFixed            CostKind = "fixed"
	CostPerMWProduction  CostKind = "per_mw_prod"
	CostPerMW            CostKind = "per_mw"
	CostPerMWSales       CostKind = "per_mw_sales"
	CostPercentCapex     CostKind = "percent_capex"
	CostPercentMachinery CostKind = "percent_machinery"
	CostPercentConstMach CostKind = "percent_const_mach"
)

// Режимы количества детализированной статьи
const (
	ModeManual = "manual"
	ModeLinked = "linked"
)

// Режимы ставки дисконтирования
const (
	DiscountKeKd   = "ke_kd"
	DiscountManual = "manual_wacc"
)

// ProjectInputs - полный набор параметров одного расчёта.
// Проценты хранятся в процентах (20 = 20%), CAPEX - в базовой валюте.
type ProjectInputs struct {
	ModelType          ModelType     `json:"modelType" yaml:"modelType"`
	ProductionCapacity utils.Number  `json:"productionCapacity" yaml:"productionCapacity"`
	Capacity           utils.Number  `json:"capacity" yaml:"capacity"`
	ProjectYears       utils.Number  `json:"projectYears" yaml:"projectYears"`
	PowerFactor        *utils.Number `json:"powerFactor,omitempty" yaml:"powerFactor,omitempty"`
	HoursPerDay        utils.Number  `json:"hoursPerDay" yaml:"hoursPerDay"`
	DaysPerYear        utils.Number  `json:"daysPerYear" yaml:"daysPerYear"`
	InitialEfficiency  utils.Number  `json:"initialEfficiency" yaml:"initialEfficiency"`
	Degradation        utils.Number  `json:"degradation" yaml:"degradation"`

	Revenue RevenueInputs `json:"revenue" yaml:"revenue"`
	Capex   CapexInputs   `json:"capex" yaml:"capex"`
	Finance FinanceInputs `json:"finance" yaml:"finance"`

	Opex                    []FixedOpexItem    `json:"opex" yaml:"opex"`
	DetailedOpex            []DetailedOpexItem `json:"detailedOpex" yaml:"detailedOpex"`
	Personnel               []PersonnelItem    `json:"personnel" yaml:"personnel"`
	PersonnelWelfarePercent utils.Number       `json:"personnelWelfarePercent" yaml:"personnelWelfarePercent"`
	AdminItems              []AdminCostItem    `json:"adminItems" yaml:"adminItems"`
	OtherRevenue            []OtherRevenueItem `json:"otherRevenue" yaml:"otherRevenue"`
}

// RevenueInputs - тарифные параметры; используемые поля зависят от ModelType
type RevenueInputs struct {
	PeakRate    utils.Number `json:"peakRate" yaml:"peakRate"`
	PeakHours   utils.Number `json:"peakHours" yaml:"peakHours"`
	OffPeakRate utils.Number `json:"offPeakRate" yaml:"offPeakRate"`
	Escalation  utils.Number `json:"escalation" yaml:"escalation"`
	AdderPrice  utils.Number `json:"adderPrice" yaml:"adderPrice"`
	AdderYears  utils.Number `json:"adderYears" yaml:"adderYears"`
	UnitPrice   utils.Number `json:"unitPrice" yaml:"unitPrice"`
	TippingFee  utils.Number `json:"tippingFee" yaml:"tippingFee"`
	LossRate    utils.Number `json:"lossRate" yaml:"lossRate"`
}

// CapexInputs - капитальные затраты года 0
type CapexInputs struct {
	Construction utils.Number `json:"construction" yaml:"construction"`
	Machinery    utils.Number `json:"machinery" yaml:"machinery"`
	Land         utils.Number `json:"land" yaml:"land"`
	SharePremium utils.Number `json:"sharePremium" yaml:"sharePremium"`
	Others       utils.Number `json:"others" yaml:"others"`
}

// FinanceInputs - структура финансирования, налоги и ставка дисконтирования
type FinanceInputs struct {
	DebtRatio     utils.Number  `json:"debtRatio" yaml:"debtRatio"`
	InterestRate  utils.Number  `json:"interestRate" yaml:"interestRate"`
	LoanTerm      utils.Number  `json:"loanTerm" yaml:"loanTerm"`
	TaxRate       utils.Number  `json:"taxRate" yaml:"taxRate"`
	OpexInflation utils.Number  `json:"opexInflation" yaml:"opexInflation"`
	Ke            utils.Number  `json:"ke" yaml:"ke"`
	Kd            utils.Number  `json:"kd" yaml:"kd"`
	DiscountMode  string        `json:"discountMode,omitempty" yaml:"discountMode,omitempty"`
	DiscountRate  *utils.Number `json:"discountRate,omitempty" yaml:"discountRate,omitempty"`
	TaxHoliday    utils.Number  `json:"taxHoliday" yaml:"taxHoliday"`
}

// FixedOpexItem - постоянная статья OPEX
type FixedOpexItem struct {
	ID        ID           `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string       `json:"name" yaml:"name"`
	Type      CostKind     `json:"type" yaml:"type"`
	Value     utils.Number `json:"value" yaml:"value"`
	Quantity  utils.Number `json:"quantity" yaml:"quantity"`
	FreqType  Frequency    `json:"freqType,omitempty" yaml:"freqType,omitempty"`
	CustomN   utils.Number `json:"customN,omitempty" yaml:"customN,omitempty"`
	StartYear utils.Number `json:"startYear,omitempty" yaml:"startYear,omitempty"`
	EndYear   utils.Number `json:"endYear,omitempty" yaml:"endYear,omitempty"`
	// Frequency - устаревший формат: статья раз в N лет (1 = ежегодно)
	Frequency utils.Number `json:"frequency,omitempty" yaml:"frequency,omitempty"`
}

// DetailedOpexItem - переменная статья OPEX; количество задаётся вручную
// или связывается с другой статьей через множитель
type DetailedOpexItem struct {
	ID             ID           `json:"id" yaml:"id"`
	Category       string       `json:"category" yaml:"category"`
	Name           string       `json:"name,omitempty" yaml:"name,omitempty"`
	Mode           string       `json:"mode" yaml:"mode"`
	Quantity       utils.Number `json:"quantity" yaml:"quantity"`
	Unit           string       `json:"unit,omitempty" yaml:"unit,omitempty"`
	FreqType       Frequency    `json:"freqType,omitempty" yaml:"freqType,omitempty"`
	Price          utils.Number `json:"price" yaml:"price"`
	LinkedSourceID ID           `json:"linkedSourceId,omitempty" yaml:"linkedSourceId,omitempty"`
	Multiplier     utils.Number `json:"multiplier,omitempty" yaml:"multiplier,omitempty"`
}

// IsLinked сообщает, берётся ли количество из другой статьи
func (d DetailedOpexItem) IsLinked() bool {
	return d.Mode == ModeLinked && d.LinkedSourceID != ""
}

// PersonnelItem - штатная позиция
type PersonnelItem struct {
	Category string       `json:"category" yaml:"category"`
	Position string       `json:"position" yaml:"position"`
	Count    utils.Number `json:"count" yaml:"count"`
	Salary   utils.Number `json:"salary" yaml:"salary"`
	// Bonus - премия в окладах
	Bonus utils.Number `json:"bonus" yaml:"bonus"`
	// Increase - ежегодная индексация оклада, %
	Increase utils.Number `json:"increase" yaml:"increase"`
}

// AdminCostItem - административная постоянная статья
type AdminCostItem struct {
	ID        ID           `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string       `json:"name" yaml:"name"`
	Type      CostKind     `json:"type" yaml:"type"`
	Quantity  utils.Number `json:"quantity" yaml:"quantity"`
	Value     utils.Number `json:"value" yaml:"value"`
	FreqType  Frequency    `json:"freqType,omitempty" yaml:"freqType,omitempty"`
	CustomN   utils.Number `json:"customN,omitempty" yaml:"customN,omitempty"`
	StartYear utils.Number `json:"startYear,omitempty" yaml:"startYear,omitempty"`
	EndYear   utils.Number `json:"endYear,omitempty" yaml:"endYear,omitempty"`
}

// OtherRevenueItem - прочий доход (углеродные кредиты, побочная продукция)
type OtherRevenueItem struct {
	ID         ID           `json:"id,omitempty" yaml:"id,omitempty"`
	Name       string       `json:"name" yaml:"name"`
	FreqType   Frequency    `json:"freqType" yaml:"freqType"`
	Amount     utils.Number `json:"amount" yaml:"amount"`
	Escalation utils.Number `json:"escalation" yaml:"escalation"`
}

// Total возвращает сумму всех статей CAPEX
func (c CapexInputs) Total() float64 {
	return c.Construction.Float() + c.Machinery.Float() + c.Land.Float() +
		c.SharePremium.Float() + c.Others.Float()
}

// Depreciable возвращает амортизируемую базу: строительство, оборудование и прочее
func (c CapexInputs) Depreciable() float64 {
	return c.Construction.Float() + c.Machinery.Float() + c.Others.Float()
}

// FromMillions переводит значения, введённые в миллионах, в базовую валюту
func (c CapexInputs) FromMillions() CapexInputs {
	return c.scale(Million)
}

// ToMillions переводит значения в миллионы для отображения
func (c CapexInputs) ToMillions() CapexInputs {
	return c.scale(1.0 / Million)
}

func (c CapexInputs) scale(f float64) CapexInputs {
	return CapexInputs{
		Construction: utils.Number(c.Construction.Float() * f),
		Machinery:    utils.Number(c.Machinery.Float() * f),
		Land:         utils.Number(c.Land.Float() * f),
		SharePremium: utils.Number(c.SharePremium.Float() * f),
		Others:       utils.Number(c.Others.Float() * f),
	}
}

// TotalCapex возвращает суммарный CAPEX проекта
func (in *ProjectInputs) TotalCapex() float64 {
	return in.Capex.Total()
}

// Clone возвращает глубокую копию параметров
func (in *ProjectInputs) Clone() *ProjectInputs {
	if in == nil {
		return nil
	}
	out := *in
	if in.PowerFactor != nil {
		pf := *in.PowerFactor
		out.PowerFactor = &pf
	}
	if in.Finance.DiscountRate != nil {
		dr := *in.Finance.DiscountRate
		out.Finance.DiscountRate = &dr
	}
	out.Opex = append([]FixedOpexItem(nil), in.Opex...)
	out.DetailedOpex = append([]DetailedOpexItem(nil), in.DetailedOpex...)
	out.Personnel = append([]PersonnelItem(nil), in.Personnel...)
	out.AdminItems = append([]AdminCostItem(nil), in.AdminItems...)
	out.OtherRevenue = append([]OtherRevenueItem(nil), in.OtherRevenue...)
	return &out
}
