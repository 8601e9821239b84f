package utils

import (
	"bytes"
	"encoding/json"
	"math"
)

// Number - число с нестрогим разбором из JSON и YAML.
// Строки вида "1,250.5" принимаются, мусор и null превращаются в 0,
// ошибка разбора не возвращается никогда.
type Number float64

// Float возвращает значение как float64
func (n Number) Float() float64 {
	return float64(n)
}

// Int возвращает целую часть значения
func (n Number) Int() int {
	return int(math.Trunc(float64(n)))
}

// Or возвращает def, если значение равно нулю
func (n Number) Or(def float64) float64 {
	return OrDefault(float64(n), def)
}

// UnmarshalJSON реализует json.Unmarshaler
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*n = 0
		return nil
	}
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		*n = 0
		return nil
	}
	*n = Number(Float(raw))
	return nil
}

// UnmarshalYAML реализует yaml.Unmarshaler (gopkg.in/yaml.v2)
func (n *Number) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		*n = 0
		return nil
	}
	*n = Number(Float(raw))
	return nil
}

// Ptr возвращает указатель на Number - удобно для необязательных полей
func Ptr(v float64) *Number {
	n := Number(v)
	return &n
}
