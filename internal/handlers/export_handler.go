package handlers

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"solemate-service/internal/models"
	"solemate-service/internal/repository"
)

var exportColumns = []string{"ID", "Name", "Brand", "Category", "Price", "Stock", "Slug", "Sizes", "Colors", "Tags"}

type ExportHandler struct {
	repo   *repository.CatalogRepository
	logger *logrus.Entry
}

func NewExportHandler(repo *repository.CatalogRepository, logger *logrus.Logger) *ExportHandler {
	return &ExportHandler{
		repo:   repo,
		logger: logger.WithField("component", "export-handler"),
	}
}

// ExportProducts streams the catalog as a CSV or XLSX attachment
func (h *ExportHandler) ExportProducts(c *gin.Context) {
	products := h.repo.GetAll()

	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		h.writeXLSX(c, products)
	default:
		h.writeCSV(c, products)
	}
}

func exportRow(p models.Product) []string {
	return []string{
		p.ID,
		p.Name,
		p.Brand,
		p.Category,
		strconv.FormatFloat(p.Price, 'f', 2, 64),
		strconv.Itoa(p.Stock),
		p.Slug,
		strings.Join(p.Sizes, ";"),
		strings.Join(p.AvailableColors, ";"),
		strings.Join(p.Tags, ";"),
	}
}

func (h *ExportHandler) writeCSV(c *gin.Context, products []models.Product) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=products_export.csv")

	// Headers are already on the wire, so a mid-stream failure can only be
	// logged, not turned into an error response.
	if err := writeProductsCSV(c.Writer, products); err != nil {
		h.logger.WithError(err).Error("Failed to write CSV export")
	}
}

func writeProductsCSV(w io.Writer, products []models.Product) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportColumns); err != nil {
		return err
	}
	for _, p := range products {
		if err := cw.Write(exportRow(p)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (h *ExportHandler) writeXLSX(c *gin.Context, products []models.Product) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Products"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheetName, cell, col)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, p := range products {
		for colIdx, val := range exportRow(p) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			_ = f.SetCellValue(sheetName, cell, val)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename=products_export.xlsx")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Error: models.Error{
				Code:    "EXPORT_ERROR",
				Message: fmt.Sprintf("Failed to write export: %v", err),
			},
		})
	}
}
