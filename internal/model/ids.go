package model

import (
	"encoding/json"
	"strconv"
)

// ID - идентификатор позиции. Во входных данных встречается и как строка
// ("srf_1"), и как число (метка времени), поэтому разбирается нестрого.
type ID string

// UnmarshalJSON реализует json.Unmarshaler
func (id *ID) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		*id = ""
		return nil
	}
	*id = idFrom(raw)
	return nil
}

// UnmarshalYAML реализует yaml.Unmarshaler
func (id *ID) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw interface{}
	if err := unmarshal(&raw); err != nil {
		*id = ""
		return nil
	}
	*id = idFrom(raw)
	return nil
}

func idFrom(raw interface{}) ID {
	switch v := raw.(type) {
	case string:
		return ID(v)
	case float64:
		return ID(strconv.FormatFloat(v, 'f', -1, 64))
	case int:
		return ID(strconv.Itoa(v))
	case int64:
		return ID(strconv.FormatInt(v, 10))
	default:
		return ""
	}
}
