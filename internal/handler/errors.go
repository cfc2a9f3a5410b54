package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz/internal/handler/helper"
	"github.com/yourusername/trivia-quiz/internal/logging"
)

// handleError обрабатывает ошибки от сервисов и отправляет соответствующий HTTP ответ
func handleError(c *gin.Context, err error) {
	status := helper.StatusFromError(err)
	_ = c.Error(err)

	logger := logging.FromContext(c.Request.Context())
	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("internal server error")
	} else {
		logger.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	helper.AbortWithStatus(c, status)
}

// pageFromQuery читает ?page=N. Нечисловое или отсутствующее значение дает первую страницу.
func pageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
