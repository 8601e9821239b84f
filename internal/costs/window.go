package costs

import "github.com/cloud-ru/feasibility-go/pkg/utils"

// window возвращает окно лет [start, end]; незаданные границы - 1 и horizon
func window(start, end utils.Number, horizon int) (int, int) {
	s := start.Int()
	if s <= 0 {
		s = 1
	}
	e := end.Int()
	if e <= 0 {
		e = horizon
	}
	return s, e
}
