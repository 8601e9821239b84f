package model

import "github.com/cloud-ru/feasibility-go/pkg/utils"

// EventType - вид сценарного события
type EventType string

const (
	EventCapacity        EventType = "capacity"
	EventPricePeak       EventType = "price_peak"
	EventPriceOffPeak    EventType = "price_offpeak"
	EventExpenseOpex     EventType = "expense_opex"
	EventExtraRevenue    EventType = "extra_revenue"
	EventNewLoan         EventType = "new_loan"
	EventGlobalInterest  EventType = "global_interest"
	EventGlobalInflation EventType = "global_inflation"
	EventGlobalTax       EventType = "global_tax"
)

// EventMode - способ применения значения события
type EventMode string

const (
	ModePercent  EventMode = "percent"
	ModeAbsolute EventMode = "absolute"
	ModeDelta    EventMode = "delta"
)

// SimulationEvent - изменение параметра в окне лет [StartYear, EndYear].
// Для new_loan используются Amount, Term и Rate (%).
type SimulationEvent struct {
	ID          string       `json:"id,omitempty" yaml:"id,omitempty"`
	Type        EventType    `json:"type" yaml:"type"`
	Mode        EventMode    `json:"mode,omitempty" yaml:"mode,omitempty"`
	StartYear   utils.Number `json:"startYear,omitempty" yaml:"startYear,omitempty"`
	EndYear     utils.Number `json:"endYear,omitempty" yaml:"endYear,omitempty"`
	Value       utils.Number `json:"value" yaml:"value"`
	Amount      utils.Number `json:"amount,omitempty" yaml:"amount,omitempty"`
	Term        utils.Number `json:"term,omitempty" yaml:"term,omitempty"`
	Rate        utils.Number `json:"rate,omitempty" yaml:"rate,omitempty"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
}

// ActiveIn сообщает, действует ли событие в году year.
// Незаданный конец окна означает "до конца горизонта".
func (e SimulationEvent) ActiveIn(year, horizon int) bool {
	end := e.EndYear.Int()
	if end == 0 {
		end = horizon
	}
	return year >= e.StartYear.Int() && year <= end
}

// IsGlobal сообщает, переопределяет ли событие ставку на весь горизонт
func (e SimulationEvent) IsGlobal() bool {
	switch e.Type {
	case EventGlobalInterest, EventGlobalInflation, EventGlobalTax:
		return true
	}
	return false
}

// CloneEvents копирует список событий
func CloneEvents(events []SimulationEvent) []SimulationEvent {
	return append([]SimulationEvent(nil), events...)
}
