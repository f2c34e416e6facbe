package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ItemKind distinguishes product lines from free-text note lines on an
// order. Note lines carry no SKU and are excluded from every aggregate.
type ItemKind int

const (
	ItemKindProduct ItemKind = 0
	ItemKindNote    ItemKind = 1
)

func (k ItemKind) String() string {
	return [...]string{"Product", "Note"}[k]
}

func (k ItemKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *ItemKind) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// Try unmarshaling as int
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*k = ItemKind(i)
		return nil
	}
	switch str {
	case "Product":
		*k = ItemKindProduct
	case "Note":
		*k = ItemKindNote
	}
	return nil
}

func (k ItemKind) Value() (driver.Value, error) {
	return int64(k), nil
}

func (k *ItemKind) Scan(value interface{}) error {
	if value == nil {
		*k = ItemKindProduct
		return nil
	}
	switch v := value.(type) {
	case int64:
		*k = ItemKind(v)
	case int:
		*k = ItemKind(v)
	}
	return nil
}
