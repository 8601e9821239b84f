package report

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMillions форматирует значение с разделителями тысяч: 1,234.50
func FormatMillions(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	out := b.String() + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

// formatCell печатает положительные расходы в скобках
func formatCell(d decimal.Decimal, expense bool) string {
	if expense && d.IsPositive() {
		return "(" + FormatMillions(d) + ")"
	}
	return FormatMillions(d)
}
