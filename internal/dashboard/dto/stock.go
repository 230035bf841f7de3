package dto

import (
	"encoding/json"
	"fmt"
)

// Stock is a tracked equity as returned by the backend registry.
type Stock struct {
	ID       int64   `json:"id"`
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Sector   *string `json:"sector"`
	Industry *string `json:"industry"`
	Exchange *string `json:"exchange"`
	IsActive bool    `json:"is_active"`
}

// Label is the "SYMBOL - Name" text used by stock selectors.
func (s Stock) Label() string {
	return fmt.Sprintf("%s - %s", s.Symbol, s.Name)
}

// StockList is the decoded stock list together with the set of keys the
// backend actually sent, so partial schemas can be displayed faithfully.
type StockList struct {
	Stocks []Stock
	keys   map[string]bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *StockList) UnmarshalJSON(data []byte) error {
	var raw []map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var stocks []Stock
	if err := json.Unmarshal(data, &stocks); err != nil {
		return err
	}

	l.Stocks = stocks
	l.keys = make(map[string]bool)
	for _, row := range raw {
		for k := range row {
			l.keys[k] = true
		}
	}
	return nil
}

// HasKey reports whether any stock in the response carried the key.
func (l *StockList) HasKey(key string) bool {
	return l.keys[key]
}

// Len returns the number of stocks.
func (l *StockList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Stocks)
}

// CreateStockRequest is the manual-add payload. Optional fields marshal as
// null when unset so the backend can tell "not provided" from "empty".
type CreateStockRequest struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Sector   *string `json:"sector"`
	Industry *string `json:"industry"`
	Exchange *string `json:"exchange"`
}
