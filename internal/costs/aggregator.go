// Package costs агрегирует операционные затраты проекта по годам:
// постоянные статьи, персонал, детализированные переменные статьи
// и административные расходы.
package costs

import (
	"github.com/cloud-ru/feasibility-go/internal/model"
)

// Year - параметры года, общие для всех статей
type Year struct {
	Year    int
	Horizon int
	Days    float64
	// OpexInflation - доля, 0.03 = 3%
	OpexInflation float64
	TotalCapex    float64
}

// Adjustment - сценарная поправка к сумме OPEX года
type Adjustment struct {
	Percent  float64
	Absolute float64
}

// IsZero сообщает, что поправки нет
func (a Adjustment) IsZero() bool {
	return a.Percent == 0 && a.Absolute == 0
}

// Breakdown - затраты одного года
type Breakdown struct {
	Total    float64
	Fixed    float64
	Variable float64
	Items    map[string]float64
}

func (b *Breakdown) addFixed(name string, amount float64) {
	b.Total += amount
	b.Fixed += amount
	b.Items[name] += amount
}

func (b *Breakdown) addVariable(name string, amount float64) {
	b.Total += amount
	b.Variable += amount
	b.Items[name] += amount
}

// Aggregator считает OPEX по годам для одного расчёта.
// Граф связей детализированных статей разрешается один раз при создании.
type Aggregator struct {
	in       *model.ProjectInputs
	detailed []resolvedItem
	admin    []float64
}

// NewAggregator готовит расчёт затрат. admin - годовые административные
// расходы (индекс - год), отсутствующие годы считаются нулевыми.
func NewAggregator(in *model.ProjectInputs, admin []float64) *Aggregator {
	return &Aggregator{
		in:       in,
		detailed: resolveDetailed(in.DetailedOpex),
		admin:    admin,
	}
}

// Year возвращает затраты года y с учётом сценарной поправки
func (a *Aggregator) Year(y Year, adj Adjustment) Breakdown {
	b := Breakdown{Items: make(map[string]float64)}

	for _, item := range a.in.Opex {
		b.addFixed(item.Name, FixedItemCost(a.in, item, y))
	}

	if personnel := Personnel(a.in, y.Year); personnel > 0 {
		b.addFixed(model.ItemPersonnel, personnel)
	}

	for _, item := range a.detailed {
		cost := item.annualCost(y)
		if cost > 0 {
			b.addVariable(item.category, cost)
		}
	}

	if y.Year < len(a.admin) && a.admin[y.Year] > 0 {
		b.addFixed(model.ItemAdmin, a.admin[y.Year])
	}

	if !adj.IsZero() {
		delta := b.Total*adj.Percent/100 + adj.Absolute
		b.Total += delta
		b.Variable += delta
		b.Items[model.ItemSimulation] = delta
	}

	return b
}
