package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andresuchdata/dss-backend/internal/domain"
	"github.com/andresuchdata/dss-backend/internal/generator"
	"github.com/andresuchdata/dss-backend/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV(t *testing.T) {
	m, err := generator.Generate("Resistor", "2025-09")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, m))

	want := strings.Join([]string{
		"period,forecast,safetyStock,reorderPoint,unitsSold,cost,profit",
		"P1,859,266,577,865,14705,1730",
		"P2,959,284,577,911,15487,1822",
		"P3,869,291,570,809,13753,1618",
		"P4,892,306,652,874,14858,1748",
		"P5,897,273,582,828,14076,1656",
		"P6,904,263,657,933,15861,1866",
		"P7,939,285,612,942,16014,1884",
		"P8,834,288,675,772,13124,1544",
		"P9,909,302,655,892,15164,1784",
		"P10,836,313,584,804,13668,1608",
		"P11,880,301,649,796,13532,1592",
		"P12,844,277,638,815,13855,1630",
		"",
		"summary,,,",
		"forecastedDemand,836",
		"safetyStock,290",
		"reorderPoint,619",
		"buyPrice,14",
		"warehousePrice,17",
		"sellPrice,19",
		"projectedProfit,1608",
		"stockoutRisk,No",
		"",
	}, "\n")

	assert.Equal(t, want, buf.String())
}

func TestWriteCSV_StockoutYes(t *testing.T) {
	m, err := generator.Generate("Capacitor", "2025-01")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, m))
	assert.True(t, strings.HasSuffix(buf.String(), "stockoutRisk,Yes\n"))
}

func TestWriteCSV_QuotesFieldsWithCommas(t *testing.T) {
	m := &domain.MetricsResponse{
		Series: []domain.MetricsPoint{{Period: "P,1", Forecast: 1}},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteCSV(&buf, m))
	assert.Contains(t, buf.String(), "\"P,1\",1,0,0,0,0,0\n")
}

func TestFileName(t *testing.T) {
	m := &domain.MetricsResponse{Component: "Resistor", Month: "2025-09", MonthLabel: "September 2025"}
	assert.Equal(t, "report-Resistor-September-2025.csv", report.FileName(m))

	m.Component = "IC/Logic"
	assert.Equal(t, "report-IC_Logic-September-2025.csv", report.FileName(m))
}

func TestObjectKey(t *testing.T) {
	m := &domain.MetricsResponse{Component: "Diode", Month: "2025-12", MonthLabel: "December 2025"}
	assert.Equal(t, "reports/2025-12/report-Diode-December-2025.csv", report.ObjectKey("/reports/", m))
	assert.Equal(t, "2025-12/report-Diode-December-2025.csv", report.ObjectKey("", m))
}

func TestMonthPrefix(t *testing.T) {
	assert.Equal(t, "reports/2025-12/", report.MonthPrefix("reports", "2025-12"))
	assert.Equal(t, "2025-12/", report.MonthPrefix("", "2025-12"))
}
