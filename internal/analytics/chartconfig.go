package analytics

// ChartConfig defines how to render a chart. The shape is shared by the PNG
// renderer and the web UI's client-side radar drawing.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
}

// Chart types understood by the renderer and the web UI.
const (
	ChartLine       = "line"
	ChartArea       = "area"
	ChartBar        = "bar"
	ChartStackedBar = "stacked_bar"
	ChartPie        = "pie"
	ChartDonut      = "donut"
	ChartScatter    = "scatter"
	ChartRadar      = "radar"
)

// ChartSeries is one named data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint is a single data point. Label carries the category or year; X
// and Size are set only for scatter and bubble points.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	X     float64 `json:"x,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text" or "number"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary carries footer values for a table, keyed by column key.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}
