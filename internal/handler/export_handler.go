package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-quiz/internal/handler/helper"
	"github.com/yourusername/trivia-quiz/internal/logging"
	"github.com/yourusername/trivia-quiz/internal/service"
)

var exportHeaders = []string{"ID", "Question", "Answer", "Category ID", "Category", "Difficulty"}

// ExportQuestions выгружает все вопросы в CSV или Excel формате
// GET /questions/export?format=csv|xlsx
func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	rows, err := h.questionService.ExportQuestions()
	if err != nil {
		handleError(c, err)
		return
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		exportXLSX(c, rows, filename)
	default:
		exportCSV(c, rows, filename)
	}
}

// exportCSV выгружает вопросы в CSV с правильным экранированием спецсимволов.
// Заголовки уже отправлены, поэтому ошибки записи (например, клиент отключился) только логируются.
func exportCSV(c *gin.Context, rows []service.ExportRow, filename string) {
	logger := logging.FromContext(c.Request.Context())

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))
	c.Status(http.StatusOK)

	// BOM для корректного отображения UTF-8 в Excel
	if _, err := c.Writer.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		logger.Error().Err(err).Msg("failed to write csv")
		return
	}

	writer := csv.NewWriter(c.Writer)
	if err := writer.Write(exportHeaders); err != nil {
		logger.Error().Err(err).Msg("failed to write csv")
		return
	}
	for _, r := range rows {
		err := writer.Write([]string{
			strconv.FormatUint(uint64(r.Question.ID), 10),
			sanitizeForExcel(r.Question.Text),
			sanitizeForExcel(r.Question.Answer),
			strconv.FormatUint(uint64(r.Question.CategoryID), 10),
			sanitizeForExcel(r.CategoryType),
			strconv.Itoa(r.Question.Difficulty),
		})
		if err != nil {
			logger.Error().Err(err).Uint("question_id", r.Question.ID).Msg("failed to write csv")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		logger.Error().Err(err).Int("rows", len(rows)).Msg("failed to flush csv")
	}
}

// exportXLSX выгружает вопросы в Excel с использованием StreamWriter
func exportXLSX(c *gin.Context, rows []service.ExportRow, filename string) {
	logger := logging.FromContext(c.Request.Context())

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Questions"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		logger.Error().Err(err).Msg("failed to rename sheet")
		helper.AbortWithStatus(c, http.StatusInternalServerError)
		return
	}

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		logger.Error().Err(err).Msg("failed to create stream writer")
		helper.AbortWithStatus(c, http.StatusInternalServerError)
		return
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		headers[i] = h
	}
	if err := sw.SetRow("A1", headers); err != nil {
		logger.Error().Err(err).Msg("failed to write header row")
	}

	for i, r := range rows {
		rowNum := i + 2 // строка 1 занята заголовками
		row := []interface{}{
			r.Question.ID,
			sanitizeForExcel(r.Question.Text),
			sanitizeForExcel(r.Question.Answer),
			r.Question.CategoryID,
			sanitizeForExcel(r.CategoryType),
			r.Question.Difficulty,
		}
		if err := sw.SetRow(fmt.Sprintf("A%d", rowNum), row); err != nil {
			logger.Error().Err(err).Int("row", rowNum).Msg("failed to write row")
		}
	}

	if err := sw.Flush(); err != nil {
		logger.Error().Err(err).Msg("failed to flush stream writer")
		helper.AbortWithStatus(c, http.StatusInternalServerError)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		logger.Error().Err(err).Msg("failed to write xlsx to response")
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
