// Package accuracy scores a forecast series against realised sales.
package accuracy

import (
	"math"

	"github.com/andresuchdata/dss-backend/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// minActual keeps MAPE finite when a period sold nothing.
const minActual = 1e-8

// Evaluate compares forecast (prediction) with unitsSold (actual) over the
// whole series of m.
func Evaluate(m *domain.MetricsResponse) domain.Accuracy {
	actual := make([]float64, len(m.Series))
	predicted := make([]float64, len(m.Series))
	for i, p := range m.Series {
		actual[i] = float64(p.UnitsSold)
		predicted[i] = float64(p.Forecast)
	}

	return domain.Accuracy{
		Component:                  m.Component,
		Month:                      m.Month,
		MonthLabel:                 m.MonthLabel,
		Periods:                    len(m.Series),
		R2:                         RSquared(actual, predicted),
		MAPEPercent:                MAPE(actual, predicted),
		DirectionalAccuracyPercent: Directional(actual, predicted) * 100,
	}
}

// RSquared is the coefficient of determination of predicted against actual.
// A constant actual series scores 1 when matched exactly and 0 otherwise.
func RSquared(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}
	if constant(actual) {
		for i := range actual {
			if actual[i] != predicted[i] {
				return 0
			}
		}
		return 1
	}
	return stat.RSquaredFrom(predicted, actual, nil)
}

// MAPE is the mean absolute percentage error, in percent.
func MAPE(actual, predicted []float64) float64 {
	if len(actual) == 0 {
		return 0
	}

	errs := make([]float64, len(actual))
	for i := range actual {
		errs[i] = math.Abs((actual[i] - predicted[i]) / math.Max(actual[i], minActual))
	}
	return stat.Mean(errs, nil) * 100
}

// Directional returns the fraction of consecutive periods in which predicted
// moved in the same direction as actual. Both staying flat counts as a match.
// Fewer than two periods score 1.
func Directional(actual, predicted []float64) float64 {
	if len(actual) < 2 {
		return 1
	}

	matches := 0
	for i := 1; i < len(actual); i++ {
		dp := predicted[i] - predicted[i-1]
		da := actual[i] - actual[i-1]
		if (dp == 0 && da == 0) || dp*da > 0 {
			matches++
		}
	}
	return float64(matches) / float64(len(actual)-1)
}

func constant(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
