package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz/internal/handler/dto"
	"github.com/yourusername/trivia-quiz/internal/handler/helper"
	"github.com/yourusername/trivia-quiz/internal/service"
	"github.com/yourusername/trivia-quiz/internal/service/quizmanager"
)

// QuizHandler обрабатывает игру в викторину
type QuizHandler struct {
	quizService *service.QuizService
	config      *quizmanager.Config
}

// NewQuizHandler создает новый обработчик викторины
func NewQuizHandler(quizService *service.QuizService, config *quizmanager.Config) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
		config:      config,
	}
}

// PlayQuiz возвращает следующий вопрос, которого нет в previous_questions.
// Когда вопросы закончились, question равен null.
// POST /quizzes
func (h *QuizHandler) PlayQuiz(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PreviousQuestions == nil {
		helper.AbortWithStatus(c, http.StatusBadRequest)
		return
	}

	var categoryID *uint
	if req.QuizCategory != nil && req.QuizCategory.ID != nil {
		id, ok := h.config.ToStoreCategory(int(*req.QuizCategory.ID))
		if !ok {
			// Категории с id 0 нет: пул будет пустым
			id = 0
		}
		categoryID = &id
	}

	question, err := h.quizService.NextQuestion(*req.PreviousQuestions, categoryID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuizResponse{
		Success:  true,
		Question: dto.NewQuestionResponse(question),
	})
}
