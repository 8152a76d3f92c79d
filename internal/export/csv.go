// Package export renders a totals report to the CSV attachment the
// finance team receives.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"dailyrecon/internal/core"
)

// CSVExporter renders a two-row UTF-8 CSV: the fixed category headers
// followed by one row of totals in the same order.
type CSVExporter struct{}

func NewCSV() *CSVExporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Render(totals core.TotalsReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(core.Headers()); err != nil {
		return nil, fmt.Errorf("write header row: %w", err)
	}

	values := totals.Values()
	row := make([]string, 0, len(values))
	for _, v := range values {
		row = append(row, v.String())
	}
	if err := w.Write(row); err != nil {
		return nil, fmt.Errorf("write totals row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
