// Package report renders vacancy status counts into shareable documents.
package report

import (
	"bytes"
	"fmt"
	"html/template"

	"go-hr-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

const (
	Title     = "Reporte de Vacantes por Estado"
	SheetName = "Vacantes"

	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type row struct {
	Label string
	Count int
}

func rows(stats domain.VacancyStats) []row {
	return []row{
		{Label: "Disponibles", Count: stats.Available},
		{Label: "No disponibles", Count: stats.Unavailable},
	}
}

var htmlTemplate = template.Must(template.New("report").Parse(`<html>
  <head>
    <meta charset="utf-8">
    <style>
      body { font-family: Arial, sans-serif; padding: 20px; }
      h1 { text-align: center; color: #333; }
      table { width: 100%; border-collapse: collapse; margin-top: 20px; }
      th, td { border: 1px solid #ddd; padding: 8px; text-align: center; }
      th { background-color: #4CAF50; color: white; }
      p.generated { color: #777; font-size: 12px; text-align: right; }
    </style>
  </head>
  <body>
    <h1>{{ .Title }}</h1>
    <table>
      <tr>
        <th>Estado</th>
        <th>Cantidad</th>
      </tr>
      {{- range .Rows }}
      <tr>
        <td>{{ .Label }}</td>
        <td>{{ .Count }}</td>
      </tr>
      {{- end }}
    </table>
    <p class="generated">Generado: {{ .AsOf }}</p>
  </body>
</html>
`))

// HTML renders the fixed two-row status table.
func HTML(stats domain.VacancyStats) ([]byte, error) {
	var buf bytes.Buffer
	err := htmlTemplate.Execute(&buf, map[string]any{
		"Title": Title,
		"Rows":  rows(stats),
		"AsOf":  stats.AsOf.Format("2006-01-02 15:04:05 MST"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render HTML report: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSX renders the same table into a single-sheet workbook.
func XLSX(stats domain.VacancyStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := writeTable(f, SheetName, stats); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func writeTable(f *excelize.File, sheet string, stats domain.VacancyStats) error {
	if err := f.SetSheetRow(sheet, "A1", &[]any{"Estado", "Cantidad"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4CAF50"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	for i, r := range rows(stats) {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &[]any{r.Label, r.Count}); err != nil {
			return fmt.Errorf("failed to write row %s: %w", cell, err)
		}
	}

	if err := f.SetColWidth(sheet, "A", "B", 20); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	return nil
}
