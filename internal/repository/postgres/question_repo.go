package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yourusername/trivia-quiz/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-quiz/internal/pkg/errors"
)

// Код ошибки PostgreSQL для нарушения внешнего ключа
const foreignKeyViolation = "23503"

// likeEscaper экранирует спецсимволы LIKE в поисковой строке
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	err := r.db.Create(question).Error
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return fmt.Errorf("%w: category %d does not exist", apperrors.ErrValidation, question.CategoryID)
	}
	return err
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Delete удаляет вопрос; если строки не было, возвращает ErrNotFound
func (r *QuestionRepo) Delete(id uint) error {
	result := r.db.Delete(&entity.Question{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// GetAll возвращает все вопросы, упорядоченные по ID
func (r *QuestionRepo) GetAll() ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.db.Order("id").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// List возвращает страницу всех вопросов и их общее количество
func (r *QuestionRepo) List(limit, offset int) ([]entity.Question, int64, error) {
	return r.page(func(db *gorm.DB) *gorm.DB { return db }, limit, offset)
}

// ListByCategory возвращает страницу вопросов одной категории
func (r *QuestionRepo) ListByCategory(categoryID uint, limit, offset int) ([]entity.Question, int64, error) {
	return r.page(func(db *gorm.DB) *gorm.DB {
		return db.Where("category = ?", categoryID)
	}, limit, offset)
}

// Search ищет вопросы, в тексте которых встречается подстрока (без учета регистра)
func (r *QuestionRepo) Search(term string, limit, offset int) ([]entity.Question, int64, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
	return r.page(func(db *gorm.DB) *gorm.DB {
		return db.Where(`LOWER(question) LIKE ? ESCAPE '\'`, pattern)
	}, limit, offset)
}

// FindCandidates возвращает пул кандидатов: все вопросы или вопросы категории
func (r *QuestionRepo) FindCandidates(categoryID *uint) ([]entity.Question, error) {
	query := r.db.Order("id")
	if categoryID != nil {
		query = query.Where("category = ?", *categoryID)
	}

	var questions []entity.Question
	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// page считает общее количество строк и выбирает одну страницу.
// Count и Find строятся отдельно: повторное использование *gorm.DB после Count портит SELECT.
func (r *QuestionRepo) page(scope func(db *gorm.DB) *gorm.DB, limit, offset int) ([]entity.Question, int64, error) {
	var total int64
	if err := r.db.Model(&entity.Question{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	questions := make([]entity.Question, 0, limit)
	if total == 0 || int64(offset) >= total {
		return questions, total, nil
	}

	err := r.db.Scopes(scope).Order("id").Limit(limit).Offset(offset).Find(&questions).Error
	if err != nil {
		return nil, 0, err
	}
	return questions, total, nil
}
