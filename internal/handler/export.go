package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/middleware"
	"github.com/retzzzz/youtube-inteligencia-visual-sub001/internal/model"
)

const maxExportRows = 5000

var exportHeader = []string{"titulo", "canal", "visualizacoes", "idioma", "pontuacaoViral", "cpmEstimado", "publicadoEm", "url"}

type ExportHandler struct{}

func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// ExportCSV handles POST /api/export/csv
// Renders the posted result rows as a downloadable CSV attachment.
func (h *ExportHandler) ExportCSV(c fiber.Ctx) error {
	var req model.ExportRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if len(req.Results) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "MISSING_PARAM", "resultados não pode ser vazio")
	}
	if len(req.Results) > maxExportRows {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD",
			fmt.Sprintf("resultados excede o limite de %d linhas", maxExportRows))
	}

	buf, err := RenderCSV(req.Results)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render CSV")
	}

	filename := fmt.Sprintf("resultados-%s.csv", time.Now().UTC().Format("20060102-150405"))
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(buf)
}

// RenderCSV writes the fixed column projection for every row. Numeric
// fields use plain decimal formatting so spreadsheets parse them as numbers.
func RenderCSV(results []model.VideoResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, r := range results {
		record := []string{
			r.Title,
			r.ChannelName,
			strconv.FormatInt(r.Views, 10),
			r.Language,
			strconv.FormatFloat(r.ViralScore, 'f', 2, 64),
			strconv.FormatFloat(r.EstimatedCPM, 'f', 2, 64),
			r.PublishedAt,
			r.URL,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
