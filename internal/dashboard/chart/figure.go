package chart

// Plotly trace types and styles used by the dashboard.
const (
	TypeCandlestick = "candlestick"
	TypeScatter     = "scatter"
	TypeBar         = "bar"

	ModeLines = "lines"

	ColorBlue   = "blue"
	ColorOrange = "orange"
	DashDash    = "dash"
)

// Figure is a Plotly figure: traces plus layout. It marshals to the JSON
// Plotly.newPlot expects.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one Plotly trace. Only the fields relevant to its Type are set.
type Trace struct {
	Type  string     `json:"type"`
	Mode  string     `json:"mode,omitempty"`
	Name  string     `json:"name,omitempty"`
	X     []string   `json:"x"`
	Y     []*float64 `json:"y,omitempty"`
	Open  []float64  `json:"open,omitempty"`
	High  []float64  `json:"high,omitempty"`
	Low   []float64  `json:"low,omitempty"`
	Close []float64  `json:"close,omitempty"`
	Line  *Line      `json:"line,omitempty"`
}

// Line styles a scatter trace.
type Line struct {
	Color string `json:"color,omitempty"`
	Dash  string `json:"dash,omitempty"`
}

// Text is a Plotly title object.
type Text struct {
	Text string `json:"text"`
}

// Axis describes an axis.
type Axis struct {
	Title *Text `json:"title,omitempty"`
}

// Layout is the figure layout.
type Layout struct {
	Title  *Text `json:"title,omitempty"`
	XAxis  Axis  `json:"xaxis"`
	YAxis  Axis  `json:"yaxis"`
	Height int   `json:"height,omitempty"`
}

// NewFigure assembles a figure. Empty titles are omitted.
func NewFigure(title, xTitle, yTitle string, height int, traces ...Trace) Figure {
	return Figure{
		Data: traces,
		Layout: Layout{
			Title:  text(title),
			XAxis:  Axis{Title: text(xTitle)},
			YAxis:  Axis{Title: text(yTitle)},
			Height: height,
		},
	}
}

// Candlestick builds an OHLC trace.
func Candlestick(name string, x []string, open, high, low, close []float64) Trace {
	return Trace{Type: TypeCandlestick, Name: name, X: x, Open: open, High: high, Low: low, Close: close}
}

// Lines builds a line trace. Nil cells render as gaps.
func Lines(name string, x []string, y []*float64, style *Line) Trace {
	return Trace{Type: TypeScatter, Mode: ModeLines, Name: name, X: x, Y: y, Line: style}
}

// Bar builds a bar trace.
func Bar(name string, x []string, y []float64) Trace {
	return Trace{Type: TypeBar, Name: name, X: x, Y: Values(y)}
}

// Values adapts a dense column for traces that accept gaps.
func Values(col []float64) []*float64 {
	out := make([]*float64, len(col))
	for i := range col {
		out[i] = &col[i]
	}
	return out
}

func text(s string) *Text {
	if s == "" {
		return nil
	}
	return &Text{Text: s}
}
