// Package excel implementa las exportaciones XLSX con excelize.
package excel

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/application/ports"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

var _ ports.SpreadsheetExporter = (*Exporter)(nil)

const timeLayout = "2006-01-02 15:04"

// JobRequestHeader encabezado de la hoja de solicitudes.
var JobRequestHeader = []string{
	"ID", "Título", "Categoría", "Prioridad", "Estado", "Ubicación", "Asignado a",
	"Solicitado por", "Fecha límite", "Completado", "Creado",
}

// MealCountHeader encabezado de la hoja de comidas.
var MealCountHeader = []string{"Fecha", "Desayuno", "Almuerzo", "Cena", "Total"}

// Exporter genera libros XLSX de una sola hoja.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// ExportJobRequests una fila por solicitud, en el orden recibido.
func (e *Exporter) ExportJobRequests(_ context.Context, jobs []*entity.JobRequest) ([]byte, error) {
	rows := make([][]any, 0, len(jobs))
	for _, j := range jobs {
		rows = append(rows, []any{
			j.ID, j.Title, j.Category, string(j.Priority), string(j.Status),
			deref(j.Location), deref(j.AssignedTo), j.RequestedBy,
			formatTime(j.DueDate), formatTime(j.CompletedAt),
			j.CreatedAt.Format(timeLayout),
		})
	}
	widths := []float64{38, 30, 15, 10, 13, 20, 20, 20, 17, 17, 17}
	return writeSheet("Solicitudes", JobRequestHeader, widths, rows, nil)
}

// ExportMealCounts una fila por día más una fila final de totales.
func (e *Exporter) ExportMealCounts(_ context.Context, meals []*entity.MealCount) ([]byte, error) {
	rows := make([][]any, 0, len(meals))
	var breakfast, lunch, dinner int
	for _, m := range meals {
		rows = append(rows, []any{m.Date.Format(entity.DateLayout), m.Breakfast, m.Lunch, m.Dinner, m.Total()})
		breakfast += m.Breakfast
		lunch += m.Lunch
		dinner += m.Dinner
	}
	totals := []any{"TOTAL", breakfast, lunch, dinner, breakfast + lunch + dinner}
	return writeSheet("Comidas", MealCountHeader, []float64{14, 12, 12, 12, 12}, rows, totals)
}

// writeSheet arma el libro: encabezado con estilo, filas, fila de totales opcional en negrita y panel congelado.
func writeSheet(sheetName string, headers []string, widths []float64, rows [][]any, totals []any) ([]byte, error) {
	f := excelize.NewFile()
	// WriteTo necesita el archivo abierto; Close va al final.

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: crear hoja: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: eliminar hoja por defecto: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: estilo de encabezado: %w", err)
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	if err := setRow(f, sheetName, 1, header); err != nil {
		f.Close()
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: coordenadas: %w", err)
	}
	if err := f.SetCellStyle(sheetName, "A1", last, headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: aplicar estilo: %w", err)
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("excel: columna: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			f.Close()
			return nil, fmt.Errorf("excel: ancho de columna: %w", err)
		}
	}

	for i, r := range rows {
		if err := setRow(f, sheetName, i+2, r); err != nil {
			f.Close()
			return nil, err
		}
	}

	if totals != nil {
		rowNum := len(rows) + 2
		if err := setRow(f, sheetName, rowNum, totals); err != nil {
			f.Close()
			return nil, err
		}
		boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("excel: estilo de totales: %w", err)
		}
		first, _ := excelize.CoordinatesToCellName(1, rowNum)
		end, _ := excelize.CoordinatesToCellName(len(totals), rowNum)
		if err := f.SetCellStyle(sheetName, first, end, boldStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("excel: aplicar estilo de totales: %w", err)
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: congelar encabezado: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("excel: escribir libro: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("excel: cerrar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("excel: coordenadas: %w", err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("excel: escribir fila %d: %w", row, err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(timeLayout)
}
