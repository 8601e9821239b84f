package costs

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cloud-ru/feasibility-go/internal/model"
)

// maxLinkDepth - наибольшее число переходов по связям; более длинная
// цепочка или цикл дают нулевое количество
const maxLinkDepth = 5

// ErrLinkCycle возвращается ValidateLinks для циклических связей
var ErrLinkCycle = errors.New("циклическая связь детализированных статей")

type resolvedItem struct {
	category string
	quantity float64
	price    float64
	freq     model.Frequency
}

func (r resolvedItem) annualCost(y Year) float64 {
	multiplier := 1.0
	switch r.freq {
	case model.FreqDaily:
		multiplier = y.Days
	case model.FreqMonthly:
		multiplier = 12
	}
	inflation := math.Pow(1+y.OpexInflation, float64(y.Year-1))
	return r.quantity * r.price * multiplier * inflation
}

// resolveQuantity возвращает количество статьи с учётом связей:
// количество связанной статьи равно количеству источника, умноженному на Multiplier.
// Второе значение - периодичность конечного источника цепочки.
func resolveQuantity(items []model.DetailedOpexItem, idx int) (float64, model.Frequency) {
	byID := indexByID(items)
	q, freq, _ := resolve(items, byID, idx)
	return q, freq
}

// ValidateLinks проверяет, что связи детализированных статей не образуют цикл
func ValidateLinks(items []model.DetailedOpexItem) error {
	byID := indexByID(items)
	for i := range items {
		if _, _, cyclic := resolve(items, byID, i); cyclic {
			return fmt.Errorf("%w: %s", ErrLinkCycle, items[i].ID)
		}
	}
	return nil
}

func resolveDetailed(items []model.DetailedOpexItem) []resolvedItem {
	byID := indexByID(items)
	out := make([]resolvedItem, 0, len(items))
	for i, item := range items {
		q, freq, cyclic := resolve(items, byID, i)
		if cyclic {
			logrus.WithField("item_id", string(item.ID)).Warn("Циклическая связь статьи OPEX, количество принято равным 0")
		}
		category := item.Category
		if category == "" {
			category = model.ItemVariableOther
		}
		out = append(out, resolvedItem{
			category: category,
			quantity: q,
			price:    item.Price.Float(),
			freq:     freq,
		})
	}
	return out
}

func indexByID(items []model.DetailedOpexItem) map[model.ID]int {
	byID := make(map[model.ID]int, len(items))
	for i, item := range items {
		if _, dup := byID[item.ID]; !dup {
			byID[item.ID] = i
		}
	}
	return byID
}

func resolve(items []model.DetailedOpexItem, byID map[model.ID]int, idx int) (float64, model.Frequency, bool) {
	visited := map[int]bool{idx: true}
	factor := 1.0
	cur := items[idx]

	for hops := 0; ; hops++ {
		if !cur.IsLinked() {
			return factor * cur.Quantity.Float(), cur.FreqType, false
		}
		srcIdx, ok := byID[cur.LinkedSourceID]
		if !ok {
			// источник удалён: используется собственное количество статьи
			return factor * cur.Quantity.Float(), cur.FreqType, false
		}
		if visited[srcIdx] {
			return 0, cur.FreqType, true
		}
		if hops == maxLinkDepth {
			return 0, cur.FreqType, false
		}
		visited[srcIdx] = true
		factor *= cur.Multiplier.Float()
		cur = items[srcIdx]
	}
}
