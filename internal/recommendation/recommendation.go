package recommendation

import (
	"fmt"

	"github.com/andresuchdata/dss-backend/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Recommend derives the reorder advice shown next to the summary cards.
// A reorder is needed when the current period is at stockout risk or the
// base reorder point already exceeds forecasted demand.
func Recommend(m *domain.MetricsResponse) domain.Recommendation {
	needsReorder := m.StockoutRisk || m.ReorderPoint > m.ForecastedDemand

	message := fmt.Sprintf("No reorder needed in %s.", m.MonthLabel)
	if needsReorder {
		message = fmt.Sprintf("Reorder required in %s. Safety Stock = %d, ROP = %d.",
			m.MonthLabel, m.SafetyStock, m.ReorderPoint)
	}

	return domain.Recommendation{
		Component:     m.Component,
		Month:         m.Month,
		MonthLabel:    m.MonthLabel,
		NeedsReorder:  needsReorder,
		StockoutRisk:  m.StockoutRisk,
		Message:       message,
		MarginPercent: MarginPercent(m.WarehousePrice, m.SellPrice),
		Profitable:    m.ProjectedProfit >= 0,
	}
}

// MarginPercent returns (sell - warehouse) / sell as a percentage with two decimals.
func MarginPercent(warehousePrice, sellPrice int) float64 {
	if sellPrice == 0 {
		return 0
	}

	sell := decimal.NewFromInt(int64(sellPrice))
	margin := sell.Sub(decimal.NewFromInt(int64(warehousePrice))).
		Div(sell).
		Mul(hundred).
		Round(2)

	return margin.InexactFloat64()
}
