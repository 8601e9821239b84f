// Package revenue содержит стратегии расчёта годовой выручки по типам проектов.
package revenue

import (
	"github.com/cloud-ru/feasibility-go/internal/model"
)

// Params - разрешённые на конкретный год параметры расчёта.
// Sim-поля заполняются сценарными событиями; nil означает значение из ProjectInputs.
type Params struct {
	DegradationFactor float64
	EscalationFactor  float64
	Days              float64

	SimCapacity     *float64
	SimPricePeak    *float64
	SimPriceOffPeak *float64
}

// Output - выручка года и физический объём выпуска (кВт·ч, м³ или тонны)
type Output struct {
	Revenue     float64 `json:"revenue"`
	TotalEnergy float64 `json:"totalEnergy"`
}

// Strategy рассчитывает выручку одного года для своего типа проекта
type Strategy interface {
	Name() string
	Revenue(in *model.ProjectInputs, year int, p Params) Output
}

var strategies = map[model.ModelType]Strategy{
	model.ModelPower: Power{},
	model.ModelSolar: Solar{},
	model.ModelWater: Water{},
	model.ModelWaste: Waste{},
}

// For возвращает стратегию для типа проекта; неизвестный тип считается POWER
func For(t model.ModelType) Strategy {
	if s, ok := strategies[t]; ok {
		return s
	}
	return strategies[model.ModelPower]
}

func (p Params) capacity(in *model.ProjectInputs) float64 {
	if p.SimCapacity != nil {
		return *p.SimCapacity
	}
	return in.Capacity.Float()
}

func (p Params) pricePeak(base float64) float64 {
	if p.SimPricePeak != nil {
		return *p.SimPricePeak
	}
	return base
}

func (p Params) priceOffPeak(base float64) float64 {
	if p.SimPriceOffPeak != nil {
		return *p.SimPriceOffPeak
	}
	return base
}

// adder - надбавка к тарифу в первые adderYears лет, без индексации
func adder(in *model.ProjectInputs, year int, energy float64) float64 {
	if year <= in.Revenue.AdderYears.Int() {
		return energy * in.Revenue.AdderPrice.Float()
	}
	return 0
}
