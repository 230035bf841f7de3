package chart

import (
	"fmt"

	"golang-stock-dashboard/internal/dashboard/dto"
)

// PriceChartKind selects how the price history is drawn.
type PriceChartKind string

const (
	KindCandlestick PriceChartKind = "Candlestick"
	KindLine        PriceChartKind = "Line"
)

// PriceChartKinds lists the selectable kinds, default first.
var PriceChartKinds = []PriceChartKind{KindCandlestick, KindLine}

// ParsePriceChartKind falls back to candlesticks for unknown values.
func ParsePriceChartKind(s string) PriceChartKind {
	if PriceChartKind(s) == KindLine {
		return KindLine
	}
	return KindCandlestick
}

const (
	axisDate   = "Date"
	axisPrice  = "Price ($)"
	axisVolume = "Volume"

	heightMain   = 500
	heightVolume = 300
)

// PriceFigure draws the price history as candlesticks or a close line.
func PriceFigure(symbol string, s Series[dto.PriceRecord], kind PriceChartKind) Figure {
	x := s.X()
	closes := s.Column(func(p dto.PriceRecord) float64 { return p.ClosePrice })

	if kind == KindLine {
		return NewFigure(fmt.Sprintf("%s Closing Price", symbol), axisDate, axisPrice, heightMain,
			Lines("close_price", x, Values(closes), nil))
	}

	return NewFigure("", axisDate, axisPrice, heightMain, Candlestick(symbol, x,
		s.Column(func(p dto.PriceRecord) float64 { return p.OpenPrice }),
		s.Column(func(p dto.PriceRecord) float64 { return p.HighPrice }),
		s.Column(func(p dto.PriceRecord) float64 { return p.LowPrice }),
		closes,
	))
}

// VolumeFigure draws traded volume as bars.
func VolumeFigure(s Series[dto.PriceRecord]) Figure {
	volumes := s.Column(func(p dto.PriceRecord) float64 { return p.Volume })
	return NewFigure("", axisDate, axisVolume, heightVolume, Bar("volume", s.X(), volumes))
}

// ProjectionFigure overlays projected prices on recent closes. An empty
// history yields a figure with the projection only.
func ProjectionFigure(symbol string, history Series[dto.PriceRecord], projected Series[dto.ProjectionPoint]) Figure {
	var traces []Trace
	if len(history) > 0 {
		closes := history.Column(func(p dto.PriceRecord) float64 { return p.ClosePrice })
		traces = append(traces, Lines("Historical", history.X(), Values(closes), &Line{Color: ColorBlue}))
	}

	prices := projected.Column(func(p dto.ProjectionPoint) float64 { return p.ProjectedPrice })
	traces = append(traces, Lines("Projected", projected.X(), Values(prices), &Line{Color: ColorOrange, Dash: DashDash}))

	return NewFigure(fmt.Sprintf("%s Price Projection", symbol), axisDate, axisPrice, heightMain, traces...)
}

// MovingAverageFigure draws closes and their rolling mean on one axis.
func MovingAverageFigure(symbol string, window int, s Series[dto.MovingAverageRow]) Figure {
	x := s.X()
	closes := s.Column(func(r dto.MovingAverageRow) float64 { return r.ClosePrice })
	means := s.NullableColumn(func(r dto.MovingAverageRow) *float64 { return r.MovingAverage })

	return NewFigure(fmt.Sprintf("%s Moving Average", symbol), axisDate, axisPrice, heightMain,
		Lines("Close Price", x, Values(closes), &Line{Color: ColorBlue}),
		Lines(fmt.Sprintf("%d-day MA", window), x, means, &Line{Color: ColorOrange}),
	)
}
