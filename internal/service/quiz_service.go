package service

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yourusername/trivia-quiz/internal/domain/entity"
	"github.com/yourusername/trivia-quiz/internal/domain/repository"
	"github.com/yourusername/trivia-quiz/internal/metrics"
	"github.com/yourusername/trivia-quiz/internal/service/quizmanager"
)

// QuizService выдает вопросы для игры в викторину
type QuizService struct {
	questionRepo repository.QuestionRepository
	selector     *quizmanager.Selector
	observer     SelectionObserver
	logger       zerolog.Logger
}

// NewQuizService создает новый сервис викторин
func NewQuizService(
	questionRepo repository.QuestionRepository,
	selector *quizmanager.Selector,
	observer SelectionObserver,
	logger zerolog.Logger,
) *QuizService {
	if selector == nil {
		selector = quizmanager.NewSelector(nil)
	}
	if observer == nil {
		observer = noopObserver{}
	}
	return &QuizService{
		questionRepo: questionRepo,
		selector:     selector,
		observer:     observer,
		logger:       logger.With().Str("component", "QuizService").Logger(),
	}
}

// NextQuestion выбирает случайный вопрос, которого нет в previous.
// categoryID == nil означает все категории.
// Возвращает (nil, nil), когда вопросы закончились или пул пуст.
func (s *QuizService) NextQuestion(previous []uint, categoryID *uint) (*entity.Question, error) {
	candidates, err := s.questionRepo.FindCandidates(categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz candidates: %w", err)
	}

	question, ok := s.selector.Select(candidates, previous)
	if !ok {
		s.observer.ObserveSelection(metrics.OutcomeExhausted)
		s.logger.Debug().
			Int("pool", len(candidates)).
			Int("previous", len(previous)).
			Msg("no eligible question left")
		return nil, nil
	}

	s.observer.ObserveSelection(metrics.OutcomeQuestion)
	return question, nil
}
