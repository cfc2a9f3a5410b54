package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/trivia-quiz/internal/domain/entity"
)

// FlexibleInt принимает целое число как JSON-число или как строку с числом.
// Веб-клиент присылает id категорий и сложность строками из select.
type FlexibleInt int

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = FlexibleInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleInt(n)
	return nil
}

// QuizCategory: категория, выбранная клиентом для игры
type QuizCategory struct {
	ID   *FlexibleInt `json:"id"`
	Type string       `json:"type"`
}

// QuizRequest: тело POST /quizzes.
// PreviousQuestions обязателен: отсутствие поля считается ошибкой клиента, а не пустой историей.
type QuizRequest struct {
	PreviousQuestions *[]uint       `json:"previous_questions"`
	QuizCategory      *QuizCategory `json:"quiz_category"`
}

// QuestionsRequest: тело POST /questions: либо поиск, либо новый вопрос
type QuestionsRequest struct {
	SearchTerm string       `json:"searchTerm"`
	Question   string       `json:"question"`
	Answer     string       `json:"answer"`
	Category   *FlexibleInt `json:"category"`
	Difficulty *FlexibleInt `json:"difficulty"`
}

// IsSearch сообщает, что запрос является поиском
func (r *QuestionsRequest) IsSearch() bool {
	return r.SearchTerm != ""
}

// SearchRequest: тело POST /questions/search
type SearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoriesResponse: ответ GET /categories
type CategoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}

// QuestionPageResponse: страница вопросов
type QuestionPageResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	CurrentCategory *uint              `json:"current_category"`
}

// QuestionIndexResponse: ответ GET /questions, вместе со списком категорий
type QuestionIndexResponse struct {
	QuestionPageResponse
	Categories []string `json:"categories"`
}

// CreateQuestionResponse: ответ на создание вопроса
type CreateQuestionResponse struct {
	Success    bool `json:"success"`
	QuestionID uint `json:"question_id"`
}

// DeleteQuestionResponse: ответ на удаление вопроса
type DeleteQuestionResponse struct {
	Success bool `json:"success"`
	Deleted uint `json:"deleted"`
}

// QuizResponse: ответ POST /quizzes. Question == nil сериализуется как null.
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionResponses преобразует список вопросов. Пустой список остается [] в JSON.
func NewQuestionResponses(questions []entity.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, *NewQuestionResponse(&questions[i]))
	}
	return out
}

// NewQuestionPageResponse собирает страницу вопросов
func NewQuestionPageResponse(questions []entity.Question, total int64, currentCategory *uint) QuestionPageResponse {
	return QuestionPageResponse{
		Success:         true,
		Questions:       NewQuestionResponses(questions),
		TotalQuestions:  total,
		CurrentCategory: currentCategory,
	}
}
