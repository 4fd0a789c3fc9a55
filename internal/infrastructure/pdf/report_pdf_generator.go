// Package pdf genera la versión imprimible de un reporte de actividad.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte   │  Clasificación + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ACTIVIDAD / RESPONSABLE                                    │
//	│  CONTENIDO (párrafos)                                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COMENTARIOS: Fecha | Usuario | Comentario                  │
//	│  ADJUNTOS: Archivo | Tipo | Tamaño                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con el ID del reporte + fecha de emisión        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/opsdesk-api/internal/application/ports"
	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
)

var _ ports.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// maxLineChars ancho aproximado de una línea de texto de tamaño 9 en A4 con márgenes de 10 mm.
const maxLineChars = 110

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa ports.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador. author aparece en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: author}
}

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateReportPDF(_ context.Context, report *entity.Report) ([]byte, error) {
	if report == nil {
		return nil, fmt.Errorf("pdf: reporte nil")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(activityRow(report))
	m.AddRows(contentRows(report.Content)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(commentRows(report.Comments)...)
	if len(report.Files) > 0 {
		m.AddRows(fileRows(report.Files)...)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y clasificación + fecha (der).
func headerRow(r *entity.Report) core.Row {
	statusColor := colorPrimary
	if r.Status == entity.ReportImportant {
		statusColor = colorAlert
	}
	return row.New(18).Add(
		col.New(8).Add(
			text.New(r.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("REPORTE "+string(r.Status), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: statusColor, Top: 1,
			}),
			text.New("Fecha: "+r.Date.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// activityRow: actividad y responsable.
func activityRow(r *entity.Report) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ACTIVIDAD", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Responsable: %s", r.Activity, nonEmpty(r.UserID, "-")),
				props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

// contentRows: el contenido partido en líneas de ancho fijo, respetando saltos de línea.
func contentRows(content string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("CONTENIDO", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
		)),
	}
	for _, paragraph := range strings.Split(content, "\n") {
		for _, chunk := range wrap(paragraph, maxLineChars) {
			rows = append(rows, row.New(5).Add(col.New(12).Add(
				text.New(chunk, props.Text{Size: 9, Top: 0.5}),
			)))
		}
	}
	return rows
}

// commentRows: tabla de comentarios en orden de creación.
func commentRows(comments []entity.Comment) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New(fmt.Sprintf("COMENTARIOS (%d)", len(comments)), props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
			}),
		)),
	}
	if len(comments) == 0 {
		return append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Sin comentarios.", props.Text{Size: 8, Color: colorGray}),
		)))
	}
	for _, c := range comments {
		lines := wrap(c.Content, 80)
		rows = append(rows, row.New(float64(4*len(lines)+2)).Add(
			col.New(2).Add(text.New(c.CreatedAt.Format("02/01/2006 15:04"), props.Text{Size: 7, Color: colorGray, Top: 1})),
			col.New(2).Add(text.New(c.UserID, props.Text{Size: 7, Color: colorGray, Top: 1})),
			col.New(8).Add(text.New(strings.Join(lines, "\n"), props.Text{Size: 8, Top: 1})),
		))
	}
	return rows
}

// fileRows: listado de adjuntos.
func fileRows(files []entity.ReportFile) []core.Row {
	rows := []core.Row{
		row.New(7).Add(col.New(12).Add(
			text.New("ADJUNTOS", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
		)),
	}
	for _, f := range files {
		rows = append(rows, row.New(5).Add(
			col.New(7).Add(text.New(f.FileName, props.Text{Size: 8, Top: 0.5})),
			col.New(3).Add(text.New(f.ContentType, props.Text{Size: 7, Color: colorGray, Top: 0.5})),
			col.New(2).Add(text.New(formatSize(f.Size), props.Text{Size: 7, Align: align.Right, Color: colorGray, Top: 0.5})),
		))
	}
	return rows
}

// footerRow: QR con el identificador del reporte y fecha de emisión del documento.
func footerRow(r *entity.Report) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr("report:"+r.ID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("ID del reporte: "+r.ID, props.Text{Size: 7, Top: 6, Left: 3, Color: colorGray}),
			text.New("Emitido: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 7, Top: 12, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatSize tamaño legible: "512 B", "3.4 KB", "1.2 MB".
func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

// wrap parte s en líneas de hasta n runas cortando en espacios cuando se puede.
func wrap(s string, n int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	var cur []rune
	for _, w := range words {
		wr := []rune(w)
		for len(wr) > n {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(wr[:n]))
			wr = wr[n:]
		}
		switch {
		case len(cur) == 0:
			cur = append(cur, wr...)
		case len(cur)+1+len(wr) <= n:
			cur = append(cur, ' ')
			cur = append(cur, wr...)
		default:
			lines = append(lines, string(cur))
			cur = append([]rune(nil), wr...)
		}
	}
	if len(cur) > 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
