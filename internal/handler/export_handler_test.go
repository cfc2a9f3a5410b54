package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/yourusername/trivia-quiz/internal/domain/entity"
	"github.com/yourusername/trivia-quiz/internal/logging"
	"github.com/yourusername/trivia-quiz/internal/service"
)

// brokenWriter принимает limit байт, после чего имитирует отключившегося клиента
type brokenWriter struct {
	header  http.Header
	limit   int
	written int
}

func (w *brokenWriter) Header() http.Header {
	if w.header == nil {
		w.header = http.Header{}
	}
	return w.header
}

func (w *brokenWriter) WriteHeader(int) {}

func (w *brokenWriter) Write(p []byte) (int, error) {
	if w.written+len(p) > w.limit {
		return 0, errors.New("connection reset by peer")
	}
	w.written += len(p)
	return len(p), nil
}

func newExportContext(w http.ResponseWriter, logs *bytes.Buffer) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodGet, "/questions/export", nil)
	c.Request = req.WithContext(logging.IntoContext(req.Context(), zerolog.New(logs)))
	return c
}

func TestExportCSV_WriteErrorsAreLogged(t *testing.T) {
	rows := []service.ExportRow{
		{Question: entity.Question{ID: 1, Text: "Who discovered penicillin?", Answer: "Alexander Fleming", CategoryID: 1, Difficulty: 3}, CategoryType: "Science"},
	}

	testCases := []struct {
		name    string
		limit   int
		message string
	}{
		{"клиент отключился до начала выгрузки", 0, "failed to write csv"},
		{"ошибка при сбросе буфера", 3, "failed to flush csv"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			c := newExportContext(&brokenWriter{limit: tc.limit}, &logs)

			assert.NotPanics(t, func() { exportCSV(c, rows, "questions") })
			assert.Contains(t, logs.String(), tc.message)
			assert.Contains(t, logs.String(), "connection reset by peer")
		})
	}
}

func TestExportCSV_NoErrorsLoggedOnSuccess(t *testing.T) {
	var logs bytes.Buffer
	w := httptest.NewRecorder()
	c := newExportContext(w, &logs)

	exportCSV(c, []service.ExportRow{
		{Question: entity.Question{ID: 7, Text: "=1+1", Answer: "2", CategoryID: 1, Difficulty: 1}, CategoryType: "Science"},
	}, "questions")

	assert.Empty(t, logs.String())
	assert.Contains(t, w.Body.String(), "7,'=1+1,2,1,Science,1")
}
