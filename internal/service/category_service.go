package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/yourusername/trivia-quiz/internal/domain/entity"
	"github.com/yourusername/trivia-quiz/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-quiz/internal/pkg/errors"
)

// Ключ кеша со списком категорий
const categoriesCacheKey = "trivia:categories"

// CategoryService предоставляет методы для работы с категориями
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
	observer     CacheObserver
	logger       zerolog.Logger
}

// NewCategoryService создает новый сервис категорий.
// cacheRepo может быть nil: тогда категории всегда читаются из БД.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	observer CacheObserver,
	logger zerolog.Logger,
) *CategoryService {
	if observer == nil {
		observer = noopObserver{}
	}
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
		observer:     observer,
		logger:       logger.With().Str("component", "CategoryService").Logger(),
	}
}

// ListCategories возвращает все категории, по возможности из кеша.
// Ошибки кеша только логируются.
func (s *CategoryService) ListCategories() ([]entity.Category, error) {
	if s.cacheRepo != nil {
		var cached []entity.Category
		err := s.cacheRepo.GetJSON(categoriesCacheKey, &cached)
		switch {
		case err == nil:
			s.observer.ObserveCache("categories", true)
			return cached, nil
		case errors.Is(err, apperrors.ErrNotFound):
			s.observer.ObserveCache("categories", false)
		default:
			s.observer.ObserveCache("categories", false)
			s.logger.Warn().Err(err).Msg("failed to read categories from cache")
		}
	}

	categories, err := s.categoryRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(categoriesCacheKey, categories, s.cacheTTL); err != nil {
			s.logger.Warn().Err(err).Msg("failed to cache categories")
		}
	}
	return categories, nil
}

// GetCategory возвращает категорию по ID
func (s *CategoryService) GetCategory(id uint) (*entity.Category, error) {
	return s.categoryRepo.GetByID(id)
}
