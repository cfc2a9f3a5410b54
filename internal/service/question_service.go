package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yourusername/trivia-quiz/internal/domain/entity"
	"github.com/yourusername/trivia-quiz/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz/internal/pkg/errors"
	"github.com/yourusername/trivia-quiz/internal/service/quizmanager"
)

// QuestionPage: одна страница списка вопросов
type QuestionPage struct {
	Questions []entity.Question
	Total     int64
	Page      int
	Category  *entity.Category // заполняется только для выборки по категории
}

// NewQuestionInput: данные для создания вопроса
type NewQuestionInput struct {
	Question   string
	Answer     string
	CategoryID uint
	Difficulty int
}

// ExportRow: вопрос вместе с названием категории
type ExportRow struct {
	Question     entity.Question
	CategoryType string
}

// QuestionService предоставляет методы для работы с вопросами
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	config       *quizmanager.Config
	logger       zerolog.Logger
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	config *quizmanager.Config,
	logger zerolog.Logger,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		config:       config,
		logger:       logger.With().Str("component", "QuestionService").Logger(),
	}
}

// window переводит номер страницы в limit/offset. Страница < 1 считается первой.
func (s *QuestionService) window(page int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	limit := s.config.QuestionsPerPage
	return page, limit, (page - 1) * limit
}

// ListQuestions возвращает страницу всех вопросов
func (s *QuestionService) ListQuestions(page int) (*QuestionPage, error) {
	page, limit, offset := s.window(page)

	questions, total, err := s.questionRepo.List(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return &QuestionPage{Questions: questions, Total: total, Page: page}, nil
}

// ListByCategory возвращает страницу вопросов категории.
// Несуществующая категория: ErrNotFound.
func (s *QuestionService) ListByCategory(categoryID uint, page int) (*QuestionPage, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		return nil, err
	}

	page, limit, offset := s.window(page)
	questions, total, err := s.questionRepo.ListByCategory(category.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list questions of category %d: %w", category.ID, err)
	}
	return &QuestionPage{Questions: questions, Total: total, Page: page, Category: category}, nil
}

// Search ищет вопросы, текст которых содержит term без учета регистра
func (s *QuestionService) Search(term string, page int) (*QuestionPage, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, fmt.Errorf("%w: search term is empty", apperrors.ErrValidation)
	}

	page, limit, offset := s.window(page)
	questions, total, err := s.questionRepo.Search(term, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return &QuestionPage{Questions: questions, Total: total, Page: page}, nil
}

// CreateQuestion проверяет и сохраняет новый вопрос
func (s *QuestionService) CreateQuestion(input NewQuestionInput) (*entity.Question, error) {
	question := &entity.Question{
		Text:       input.Question,
		Answer:     input.Answer,
		CategoryID: input.CategoryID,
		Difficulty: input.Difficulty,
	}
	question.Normalize()

	if !question.IsComplete() {
		return nil, fmt.Errorf("%w: question and answer are required", apperrors.ErrValidation)
	}
	if !question.IsValidDifficulty() {
		return nil, fmt.Errorf("%w: difficulty must be between %d and %d",
			apperrors.ErrValidation, entity.MinDifficulty, entity.MaxDifficulty)
	}

	if _, err := s.categoryRepo.GetByID(question.CategoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: category %d does not exist", apperrors.ErrValidation, question.CategoryID)
		}
		return nil, fmt.Errorf("failed to check category: %w", err)
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, fmt.Errorf("failed to create question: %w", err)
	}

	s.logger.Info().Uint("question_id", question.ID).Uint("category", question.CategoryID).Msg("question created")
	return question, nil
}

// DeleteQuestion удаляет вопрос. Отсутствующий вопрос: ErrNotFound.
func (s *QuestionService) DeleteQuestion(id uint) error {
	if err := s.questionRepo.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	s.logger.Info().Uint("question_id", id).Msg("question deleted")
	return nil
}

// ExportQuestions возвращает все вопросы с названиями категорий
func (s *QuestionService) ExportQuestions() ([]ExportRow, error) {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	types := make(map[uint]string, len(categories))
	for _, c := range categories {
		types[c.ID] = c.Type
	}

	questions, err := s.questionRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}

	rows := make([]ExportRow, 0, len(questions))
	for _, q := range questions {
		rows = append(rows, ExportRow{Question: q, CategoryType: types[q.CategoryID]})
	}
	return rows, nil
}
