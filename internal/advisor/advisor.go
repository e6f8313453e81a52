package advisor

import (
	"fmt"
	"strings"

	"github.com/andresuchdata/dss-backend/internal/domain"
	"github.com/andresuchdata/dss-backend/internal/recommendation"
)

const (
	TopicSafetyStock = "safety_stock"
	TopicReorder     = "reorder"
	TopicProfit      = "profit"
	TopicDemand      = "demand"
	TopicInventory   = "inventory"
	TopicComponent   = "component"
	TopicGeneral     = "general"
)

type rule struct {
	topic    string
	keywords []string
	// needsContext rules only match when metrics are available
	needsContext bool
}

// first match wins, so "safety stock" must come before "stock"
var rules = []rule{
	{topic: TopicSafetyStock, keywords: []string{"safety stock", "safety", "buffer", "reserve"}},
	{topic: TopicReorder, keywords: []string{"reorder", "order", "purchase", "buy"}},
	{topic: TopicProfit, keywords: []string{"profit", "margin", "revenue", "earnings"}},
	{topic: TopicDemand, keywords: []string{"demand", "forecast", "prediction", "trend"}},
	{topic: TopicInventory, keywords: []string{"inventory", "stock", "supply", "warehouse"}},
	{topic: TopicComponent, keywords: []string{"component", "part", "electronic"}, needsContext: true},
}

// Classify returns the topic of message.
func Classify(message string, hasContext bool) string {
	lower := strings.ToLower(message)
	for _, r := range rules {
		if r.needsContext && !hasContext {
			continue
		}
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.topic
			}
		}
	}
	return TopicGeneral
}

// Reply answers message. When m is not nil the answer quotes its figures.
func Reply(message string, m *domain.MetricsResponse) domain.ChatReply {
	topic := Classify(message, m != nil)

	reply := domain.ChatReply{Topic: topic, Metrics: m}
	if m != nil {
		reply.Component = m.Component
		reply.Month = m.Month
		reply.Response = withContext(topic, m)
	} else {
		reply.Response = withoutContext(topic)
	}
	return reply
}

func withContext(topic string, m *domain.MetricsResponse) string {
	current := m.Current()

	switch topic {
	case TopicSafetyStock:
		return fmt.Sprintf("For %s in %s the base safety stock is %d units, %d units in the current period. "+
			"Together with the reorder point of %d it covers a forecast of %d units.",
			m.Component, m.MonthLabel, m.SafetyStock, current.SafetyStock, current.ReorderPoint, current.Forecast)
	case TopicReorder:
		rec := recommendation.Recommend(m)
		return fmt.Sprintf("%s Forecasted demand is %d units against a reorder point of %d.",
			rec.Message, m.ForecastedDemand, m.ReorderPoint)
	case TopicProfit:
		return fmt.Sprintf("Projected profit for %s in %s is %d on %d units sold. "+
			"Buy / warehouse / sell prices are %d / %d / %d, a %.2f%% margin over warehouse cost.",
			m.Component, m.MonthLabel, m.ProjectedProfit, current.UnitsSold,
			m.BuyPrice, m.WarehousePrice, m.SellPrice,
			recommendation.MarginPercent(m.WarehousePrice, m.SellPrice))
	case TopicDemand:
		lo, hi := forecastRange(m.Series)
		return fmt.Sprintf("Forecasted demand for %s in %s is %d units. Across the 12 periods the forecast ranges from %d to %d.",
			m.Component, m.MonthLabel, m.ForecastedDemand, lo, hi)
	case TopicInventory:
		risk := "no stockout risk"
		if m.StockoutRisk {
			risk = "a stockout risk"
		}
		return fmt.Sprintf("%s in %s shows %s: forecast %d vs safety stock %d plus reorder point %d.",
			m.Component, m.MonthLabel, risk, current.Forecast, current.SafetyStock, current.ReorderPoint)
	case TopicComponent:
		return fmt.Sprintf("For %s components, monitor market trends, supplier reliability, and lead times. "+
			"Electronic component prices are volatile, so consider forward buying during price dips.", m.Component)
	default:
		return general
	}
}

func withoutContext(topic string) string {
	switch topic {
	case TopicSafetyStock:
		return "Safety stock is buffer inventory that protects against stockouts. " +
			"For electronic components, keep 15-35% of monthly demand as safety stock."
	case TopicReorder:
		return "Reorder when inventory drops below the reorder point (ROP), which accounts for lead time and demand variability."
	case TopicProfit:
		return "Profit depends on the spread between warehouse cost and sell price. Monitor margins and adjust pricing to market conditions."
	case TopicDemand:
		return "Demand forecasts predict future inventory needs. Pick a component and month to see the forecast for each period."
	case TopicInventory:
		return "Keep stock between safety stock and reorder point plus expected demand to balance carrying cost and availability."
	default:
		return general
	}
}

const general = "Ask about safety stock, reorder recommendations, profit, or demand forecasts. " +
	"Include a component and month for figures specific to that period."

func forecastRange(series []domain.MetricsPoint) (int, int) {
	if len(series) == 0 {
		return 0, 0
	}
	lo, hi := series[0].Forecast, series[0].Forecast
	for _, p := range series[1:] {
		lo = min(lo, p.Forecast)
		hi = max(hi, p.Forecast)
	}
	return lo, hi
}
