package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/andresuchdata/dss-backend/internal/domain"
)

const ContentType = "text/csv; charset=utf-8"

var seriesHeader = []string{"period", "forecast", "safetyStock", "reorderPoint", "unitsSold", "cost", "profit"}

// WriteCSV writes the series rows, a blank line and the summary block.
func WriteCSV(w io.Writer, m *domain.MetricsResponse) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(seriesHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, p := range m.Series {
		row := []string{
			p.Period,
			strconv.Itoa(p.Forecast),
			strconv.Itoa(p.SafetyStock),
			strconv.Itoa(p.ReorderPoint),
			strconv.Itoa(p.UnitsSold),
			strconv.Itoa(p.Cost),
			strconv.Itoa(p.Profit),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", p.Period, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv rows: %w", err)
	}

	// csv.Writer cannot emit an empty record
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write csv separator: %w", err)
	}

	stockoutRisk := "No"
	if m.StockoutRisk {
		stockoutRisk = "Yes"
	}

	summary := [][]string{
		{"summary", "", "", ""},
		{"forecastedDemand", strconv.Itoa(m.ForecastedDemand)},
		{"safetyStock", strconv.Itoa(m.SafetyStock)},
		{"reorderPoint", strconv.Itoa(m.ReorderPoint)},
		{"buyPrice", strconv.Itoa(m.BuyPrice)},
		{"warehousePrice", strconv.Itoa(m.WarehousePrice)},
		{"sellPrice", strconv.Itoa(m.SellPrice)},
		{"projectedProfit", strconv.Itoa(m.ProjectedProfit)},
		{"stockoutRisk", stockoutRisk},
	}
	if err := cw.WriteAll(summary); err != nil {
		return fmt.Errorf("write csv summary: %w", err)
	}

	return nil
}

// FileName is the download name, e.g. report-Resistor-September-2025.csv.
func FileName(m *domain.MetricsResponse) string {
	label := strings.Join(strings.Fields(m.MonthLabel), "-")
	return fmt.Sprintf("report-%s-%s.csv", sanitize(m.Component), label)
}

// ObjectKey places a report under prefix/YYYY-MM/ in object storage.
func ObjectKey(prefix string, m *domain.MetricsResponse) string {
	return MonthPrefix(prefix, m.Month) + FileName(m)
}

// MonthPrefix is the object storage folder holding the reports of month.
func MonthPrefix(prefix, month string) string {
	return path.Join(strings.Trim(prefix, "/"), month) + "/"
}

func sanitize(component string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', '*', '?', '<', '>', '|':
			return '_'
		}
		if r < 0x20 {
			return -1
		}
		return r
	}, component)
}
