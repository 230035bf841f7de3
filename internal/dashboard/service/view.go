package service

import (
	"errors"

	"golang-stock-dashboard/internal/dashboard/dto"
	"golang-stock-dashboard/internal/dashboard/repository"
)

// Level is the severity of a user-facing message.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
)

// Message is a notice rendered above or inside a screen section.
type Message struct {
	Level Level
	Text  string
}

func errorMessage(err error) *Message {
	var apiErr *repository.APIError
	if errors.As(err, &apiErr) {
		return &Message{Level: LevelError, Text: apiErr.Message}
	}
	return &Message{Level: LevelError, Text: err.Error()}
}

func warning(text string) *Message { return &Message{Level: LevelWarning, Text: text} }

func info(text string) *Message { return &Message{Level: LevelInfo, Text: text} }

func success(text string) *Message { return &Message{Level: LevelSuccess, Text: text} }

// Metric is a labelled headline number.
type Metric struct {
	Label string
	Value string
	Delta string
}

// Table is a rendered grid of strings.
type Table struct {
	Columns []string
	Rows    [][]string
}

// StockPicker is the "SYMBOL - Name" selector shared by several screens.
type StockPicker struct {
	Options  []string
	Selected string
}

// pickStock resolves a label against the list. Unknown labels select the
// first stock. The list must not be empty.
func pickStock(list *dto.StockList, label string) (dto.Stock, StockPicker) {
	picker := StockPicker{Options: make([]string, 0, list.Len())}
	selected := -1
	for i, s := range list.Stocks {
		picker.Options = append(picker.Options, s.Label())
		if selected < 0 && s.Label() == label {
			selected = i
		}
	}
	if selected < 0 {
		selected = 0
	}
	picker.Selected = picker.Options[selected]
	return list.Stocks[selected], picker
}
