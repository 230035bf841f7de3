// Package chart turns date-stamped backend rows into ordered series and
// Plotly figure descriptions.
package chart

import (
	"fmt"
	"sort"
	"time"

	"golang-stock-dashboard/pkg/utils"
)

// Row is any backend row carrying a date field.
type Row interface {
	RowDate() string
}

// Point is a row with its parsed date.
type Point[T Row] struct {
	Date time.Time
	Row  T
}

// Series is a list of rows sorted by ascending date.
type Series[T Row] []Point[T]

// Normalize parses every row's date and sorts ascending. Rows sharing a
// date are not guaranteed to keep their input order.
func Normalize[T Row](rows []T) (Series[T], error) {
	series := make(Series[T], 0, len(rows))
	for i, row := range rows {
		d, err := utils.ParseDate(row.RowDate())
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		series = append(series, Point[T]{Date: d, Row: row})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series, nil
}

// Rows returns the rows in series order.
func (s Series[T]) Rows() []T {
	rows := make([]T, len(s))
	for i, p := range s {
		rows[i] = p.Row
	}
	return rows
}

// X returns the date axis values.
func (s Series[T]) X() []string {
	xs := make([]string, len(s))
	for i, p := range s {
		xs[i] = formatX(p.Date)
	}
	return xs
}

// Column extracts a numeric column.
func (s Series[T]) Column(value func(T) float64) []float64 {
	col := make([]float64, len(s))
	for i, p := range s {
		col[i] = value(p.Row)
	}
	return col
}

// NullableColumn extracts a column whose cells may be missing.
func (s Series[T]) NullableColumn(value func(T) *float64) []*float64 {
	col := make([]*float64, len(s))
	for i, p := range s {
		col[i] = value(p.Row)
	}
	return col
}

func formatX(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return utils.FormatDate(t)
	}
	return t.Format("2006-01-02 15:04:05")
}
