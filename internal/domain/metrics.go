package domain

// MetricsPoint is one synthetic period of the generated series.
type MetricsPoint struct {
	Period       string `json:"period"`
	Forecast     int    `json:"forecast"`
	SafetyStock  int    `json:"safetyStock"`
	ReorderPoint int    `json:"reorderPoint"`
	UnitsSold    int    `json:"unitsSold"`
	Cost         int    `json:"cost"`
	Profit       int    `json:"profit"`
}

// MetricsResponse is the payload served for one component and month.
// SafetyStock and ReorderPoint are the base values computed before the series;
// ForecastedDemand and ProjectedProfit come from the current period.
type MetricsResponse struct {
	Component        string         `json:"component"`
	Month            string         `json:"month"`
	MonthLabel       string         `json:"monthLabel"`
	ForecastedDemand int            `json:"forecastedDemand"`
	SafetyStock      int            `json:"safetyStock"`
	ReorderPoint     int            `json:"reorderPoint"`
	BuyPrice         int            `json:"buyPrice"`
	WarehousePrice   int            `json:"warehousePrice"`
	SellPrice        int            `json:"sellPrice"`
	ProjectedProfit  int            `json:"projectedProfit"`
	StockoutRisk     bool           `json:"stockoutRisk"`
	Series           []MetricsPoint `json:"series"`
}

// CurrentPeriodIndex is the series index used for the headline figures.
const CurrentPeriodIndex = 9

// SeriesLength is the number of periods in every generated series.
const SeriesLength = 12

// Current returns the period the headline figures are taken from.
func (m *MetricsResponse) Current() MetricsPoint {
	return m.Series[CurrentPeriodIndex]
}

// Recommendation is the reorder advice derived from a MetricsResponse.
type Recommendation struct {
	Component     string  `json:"component"`
	Month         string  `json:"month"`
	MonthLabel    string  `json:"monthLabel"`
	NeedsReorder  bool    `json:"needsReorder"`
	StockoutRisk  bool    `json:"stockoutRisk"`
	Message       string  `json:"message"`
	MarginPercent float64 `json:"marginPercent"`
	Profitable    bool    `json:"profitable"`
}

// Accuracy scores the per-period forecast against the units actually sold.
type Accuracy struct {
	Component                  string  `json:"component"`
	Month                      string  `json:"month"`
	MonthLabel                 string  `json:"monthLabel"`
	Periods                    int     `json:"periods"`
	R2                         float64 `json:"r2"`
	MAPEPercent                float64 `json:"mapePercent"`
	DirectionalAccuracyPercent float64 `json:"directionalAccuracyPercent"`
}

// ChatRequest is the body accepted by the assistant endpoint.
type ChatRequest struct {
	Message   string `json:"message"`
	Component string `json:"component,omitempty"`
	Month     string `json:"month,omitempty"`
}

// ChatReply is the assistant answer, with the metrics it was based on if any.
type ChatReply struct {
	Response  string           `json:"response"`
	Topic     string           `json:"topic"`
	Component string           `json:"component,omitempty"`
	Month     string           `json:"month,omitempty"`
	Metrics   *MetricsResponse `json:"metrics,omitempty"`
}
