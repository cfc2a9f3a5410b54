package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz/internal/domain/entity"
	"github.com/yourusername/trivia-quiz/internal/handler/dto"
	"github.com/yourusername/trivia-quiz/internal/handler/helper"
	"github.com/yourusername/trivia-quiz/internal/middleware"
	"github.com/yourusername/trivia-quiz/internal/service"
	"github.com/yourusername/trivia-quiz/internal/service/quizmanager"
	"github.com/yourusername/trivia-quiz/pkg/auth"
)

// QuestionHandler обрабатывает запросы, связанные с вопросами
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
	permissions     *middleware.PermissionMiddleware
	config          *quizmanager.Config
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(
	questionService *service.QuestionService,
	categoryService *service.CategoryService,
	permissions *middleware.PermissionMiddleware,
	config *quizmanager.Config,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
		permissions:     permissions,
		config:          config,
	}
}

// GetQuestions возвращает страницу вопросов и список категорий
// GET /questions?page=N
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	page, err := h.questionService.ListQuestions(pageFromQuery(c))
	if err != nil {
		handleError(c, err)
		return
	}

	categories, err := h.categoryService.ListCategories()
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuestionIndexResponse{
		QuestionPageResponse: dto.NewQuestionPageResponse(page.Questions, page.Total, nil),
		Categories:           entity.CategoryTypes(categories),
	})
}

// CreateOrSearchQuestions ищет вопросы, если передан searchTerm, иначе создает вопрос
// POST /questions
func (h *QuestionHandler) CreateOrSearchQuestions(c *gin.Context) {
	var req dto.QuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.AbortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	if req.IsSearch() {
		h.search(c, req.SearchTerm)
		return
	}

	if err := h.permissions.Authorize(c, auth.PermissionPostQuestions); err != nil {
		handleError(c, err)
		return
	}

	if req.Category == nil || req.Difficulty == nil {
		helper.AbortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}
	categoryID, ok := h.config.ToStoreCategory(int(*req.Category))
	if !ok {
		helper.AbortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}

	question, err := h.questionService.CreateQuestion(service.NewQuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: categoryID,
		Difficulty: int(*req.Difficulty),
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateQuestionResponse{Success: true, QuestionID: question.ID})
}

// SearchQuestions ищет вопросы по подстроке
// POST /questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helper.AbortWithStatus(c, http.StatusUnprocessableEntity)
		return
	}
	h.search(c, req.SearchTerm)
}

func (h *QuestionHandler) search(c *gin.Context, term string) {
	page, err := h.questionService.Search(term, pageFromQuery(c))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewQuestionPageResponse(page.Questions, page.Total, nil))
}

// DeleteQuestion удаляет вопрос
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint)

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		// Удаление несуществующего вопроса: 422, как и любая другая невозможная операция
		if helper.StatusFromError(err) == http.StatusNotFound {
			helper.AbortWithStatus(c, http.StatusUnprocessableEntity)
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteQuestionResponse{Success: true, Deleted: questionID})
}
