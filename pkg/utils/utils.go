package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Round2 округляет число до 2 знаков после запятой
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// OrDefault возвращает def, если value равно нулю
func OrDefault(value, def float64) float64 {
	if value == 0 {
		return def
	}
	return value
}

var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseNumber разбирает строку как число: запятые-разделители тысяч удаляются,
// берётся самый длинный числовой префикс. Нечисловая строка даёт 0.
func ParseNumber(s string) float64 {
	clean := strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if clean == "" {
		return 0
	}
	if v, err := strconv.ParseFloat(clean, 64); err == nil && IsFinite(v) {
		return v
	}
	prefix := numericPrefix.FindString(clean)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || !IsFinite(v) {
		return 0
	}
	return v
}

// Float приводит произвольное значение к float64. Всё, что не удаётся
// интерпретировать как число, становится 0.
func Float(value interface{}) float64 {
	switch v := value.(type) {
	case float64:
		if !IsFinite(v) {
			return 0
		}
		return v
	case float32:
		return Float(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case uint:
		return float64(v)
	case uint64:
		return float64(v)
	case Number:
		return v.Float()
	case string:
		return ParseNumber(v)
	default:
		return 0
	}
}
