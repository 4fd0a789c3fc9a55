package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/opsdesk-api/internal/domain/entity"
	"github.com/jhoicas/opsdesk-api/internal/infrastructure/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReportPDF(t *testing.T) {
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	report := &entity.Report{
		ID:       "rep-1",
		Title:    "Ronda nocturna",
		Activity: "Vigilancia",
		Content:  "Sin novedades en el perímetro norte.\nPuerta 3 revisada.",
		Status:   entity.ReportImportant,
		UserID:   "user-1",
		Date:     now,
		Comments: []entity.Comment{{ID: "c1", Content: "Visto", UserID: "user-2", CreatedAt: now}},
		Files:    []entity.ReportFile{{ID: "f1", FileName: "foto.jpg", ContentType: "image/jpeg", Size: 2048}},
	}

	out, err := pdf.NewMarotoPDFGenerator("opsdesk-api").GenerateReportPDF(context.Background(), report)
	require.NoError(t, err)
	require.Greater(t, len(out), 4)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestGenerateReportPDF_Nil(t *testing.T) {
	_, err := pdf.NewMarotoPDFGenerator("").GenerateReportPDF(context.Background(), nil)
	assert.Error(t, err)
}
