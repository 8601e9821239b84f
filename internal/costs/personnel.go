package costs

import (
	"math"

	"github.com/cloud-ru/feasibility-go/internal/model"
)

// Personnel возвращает расходы на персонал в году year: оклад за 12 месяцев
// плюс премия в окладах, индексация с первого года, надбавка на соцпакет.
func Personnel(in *model.ProjectInputs, year int) float64 {
	welfare := 1 + in.PersonnelWelfarePercent.Float()/100

	total := 0.0
	for _, job := range in.Personnel {
		count := job.Count.Float()
		if count <= 0 {
			continue
		}
		salary := job.Salary.Float()
		perHead := salary*12 + salary*job.Bonus.Float()
		growth := math.Pow(1+job.Increase.Float()/100, float64(year-1))
		total += perHead * count * growth * welfare
	}
	return total
}
