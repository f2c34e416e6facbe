package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OrderSource records how an order entered the system
type OrderSource int

const (
	OrderSourceEntered  OrderSource = 0
	OrderSourceImported OrderSource = 1
)

func (s OrderSource) String() string {
	return [...]string{"Entered", "Imported"}[s]
}

func (s OrderSource) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OrderSource) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OrderSource(i)
		return nil
	}
	switch str {
	case "Entered":
		*s = OrderSourceEntered
	case "Imported":
		*s = OrderSourceImported
	}
	return nil
}

func (s OrderSource) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OrderSource) Scan(value interface{}) error {
	if value == nil {
		*s = OrderSourceEntered
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OrderSource(v)
	case int:
		*s = OrderSource(v)
	}
	return nil
}
