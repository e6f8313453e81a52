package generator

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf16"

	"github.com/andresuchdata/dss-backend/internal/domain"
)

// Seed sums the UTF-16 code units of component and the numeric month tokens,
// wrapping at 32 bits.
func Seed(component string, month domain.Month) uint32 {
	var seed uint32
	for _, unit := range utf16.Encode([]rune(component)) {
		seed += uint32(unit)
	}
	seed += uint32(month.Year)
	seed += uint32(month.Month)
	return seed
}

// Generate builds the metrics payload for component and month.
// Empty inputs fall back to domain.DefaultComponent and domain.DefaultMonth.
// The result depends only on the inputs; a malformed month returns a
// *domain.ErrValidation and no payload.
func Generate(component, month string) (*domain.MetricsResponse, error) {
	component = domain.NormalizeComponent(component)
	month = strings.TrimSpace(month)
	if month == "" {
		month = domain.DefaultMonth
	}

	parsed, err := domain.ParseMonth(month)
	if err != nil {
		return nil, fmt.Errorf("generate metrics: %w", err)
	}

	rng := NewMulberry32(Seed(component, parsed))

	// 1-3. Price tiers, each scaled up from the previous one
	buyPrice := round(span(1, 49, rng.Float64()))
	warehousePrice := round(float64(buyPrice) * span(1.1, 0.1, rng.Float64()))
	sellPrice := round(float64(warehousePrice) * span(1.1, 0.2, rng.Float64()))

	// 4-6. Base demand and the base stock levels derived from it
	baseDemand := round(span(300, 700, rng.Float64()))
	safetyStock := round(float64(baseDemand) * span(0.15, 0.2, rng.Float64()))
	reorderPoint := round(float64(baseDemand) * span(0.6, 0.3, rng.Float64()))

	// 7. Series, four draws per period in a fixed order
	minForecast := round(float64(baseDemand) * 0.6)
	maxForecast := round(float64(baseDemand) * 1.4)

	series := make([]domain.MetricsPoint, domain.SeriesLength)
	for i := range series {
		noise := round((rng.Float64() - 0.5) * float64(baseDemand) * 0.15)
		forecast := clamp(baseDemand+noise, minForecast, maxForecast)
		unitsSold := clamp(round(float64(forecast)*span(0.9, 0.15, rng.Float64())), 0, forecast+50)

		cost := unitsSold * warehousePrice
		revenue := unitsSold * sellPrice

		series[i] = domain.MetricsPoint{
			Period:       fmt.Sprintf("P%d", i+1),
			Forecast:     forecast,
			SafetyStock:  round(float64(safetyStock) * span(0.9, 0.2, rng.Float64())),
			ReorderPoint: round(float64(reorderPoint) * span(0.9, 0.2, rng.Float64())),
			UnitsSold:    unitsSold,
			Cost:         cost,
			Profit:       revenue - cost,
		}
	}

	// 8-9. Headline figures come from the current period, not the base values
	current := series[domain.CurrentPeriodIndex]

	return &domain.MetricsResponse{
		Component:        component,
		Month:            month,
		MonthLabel:       parsed.Label(),
		ForecastedDemand: current.Forecast,
		SafetyStock:      safetyStock,
		ReorderPoint:     reorderPoint,
		BuyPrice:         buyPrice,
		WarehousePrice:   warehousePrice,
		SellPrice:        sellPrice,
		ProjectedProfit:  current.Profit,
		StockoutRisk:     current.Forecast > current.SafetyStock+current.ReorderPoint,
		Series:           series,
	}, nil
}

// span maps a draw r in [0, 1) onto [lo, lo+width).
// The explicit conversion stops the compiler from fusing the multiply and add,
// which would change results on architectures with FMA.
func span(lo, width, r float64) float64 {
	return lo + float64(r*width)
}

// round rounds half away from zero.
func round(v float64) int {
	return int(math.Round(v))
}

func clamp(n, lo, hi int) int {
	return max(lo, min(hi, n))
}
