package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-quiz/internal/domain/entity"
	"github.com/yourusername/trivia-quiz/internal/handler/dto"
	"github.com/yourusername/trivia-quiz/internal/handler/helper"
	"github.com/yourusername/trivia-quiz/internal/service"
	"github.com/yourusername/trivia-quiz/internal/service/quizmanager"
)

// CategoryHandler обрабатывает запросы, связанные с категориями
type CategoryHandler struct {
	categoryService *service.CategoryService
	questionService *service.QuestionService
	config          *quizmanager.Config
}

// NewCategoryHandler создает новый обработчик категорий
func NewCategoryHandler(
	categoryService *service.CategoryService,
	questionService *service.QuestionService,
	config *quizmanager.Config,
) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		questionService: questionService,
		config:          config,
	}
}

// GetCategories возвращает названия всех категорий
// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.ListCategories()
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CategoriesResponse{
		Success:    true,
		Categories: entity.CategoryTypes(categories),
	})
}

// GetQuestionsByCategory возвращает страницу вопросов категории
// GET /categories/:id/questions?page=N
func (h *CategoryHandler) GetQuestionsByCategory(c *gin.Context) {
	clientID := c.MustGet("categoryID").(uint)

	categoryID, ok := h.config.ToStoreCategory(int(clientID))
	if !ok {
		helper.AbortWithStatus(c, http.StatusNotFound)
		return
	}

	page, err := h.questionService.ListByCategory(categoryID, pageFromQuery(c))
	if err != nil {
		handleError(c, err)
		return
	}

	current := page.Category.ID
	c.JSON(http.StatusOK, dto.NewQuestionPageResponse(page.Questions, page.Total, &current))
}
