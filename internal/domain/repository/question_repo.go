package repository

import (
	"github.com/yourusername/trivia-quiz/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами
type QuestionRepository interface {
	Create(question *entity.Question) error
	GetByID(id uint) (*entity.Question, error)
	Delete(id uint) error
	GetAll() ([]entity.Question, error)

	// Постраничная выдача: возвращает страницу и общее количество записей
	List(limit, offset int) ([]entity.Question, int64, error)
	ListByCategory(categoryID uint, limit, offset int) ([]entity.Question, int64, error)
	Search(term string, limit, offset int) ([]entity.Question, int64, error)

	// FindCandidates возвращает пул кандидатов для игры: все вопросы или вопросы одной категории
	FindCandidates(categoryID *uint) ([]entity.Question, error)
}
