package repository

import (
	"github.com/yourusername/trivia-quiz/internal/domain/entity"
)

// CategoryRepository определяет методы для работы с категориями
type CategoryRepository interface {
	List() ([]entity.Category, error)
	GetByID(id uint) (*entity.Category, error)
}
