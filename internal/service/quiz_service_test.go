package service

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/trivia-quiz/internal/metrics"
	"github.com/yourusername/trivia-quiz/internal/service/quizmanager"
)

func createTestQuizServiceWithMocks(questionRepo *MockQuestionRepository, observer *MockObserver) *QuizService {
	selector := quizmanager.NewSelector(rand.New(rand.NewPCG(7, 7)))
	if observer == nil {
		return NewQuizService(questionRepo, selector, nil, zerolog.Nop())
	}
	return NewQuizService(questionRepo, selector, observer, zerolog.Nop())
}

func TestQuizService_NextQuestion_AllCategories(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockObserver := new(MockObserver)

	var allCategories *uint
	mockQuestionRepo.On("FindCandidates", allCategories).Return(testQuestions(1, 2, 3, 4, 5), nil)
	mockObserver.On("ObserveSelection", metrics.OutcomeQuestion).Return()

	svc := createTestQuizServiceWithMocks(mockQuestionRepo, mockObserver)

	// Act
	question, err := svc.NextQuestion([]uint{1, 2, 3, 4}, nil)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Equal(t, uint(5), question.ID)
	mockQuestionRepo.AssertExpectations(t)
	mockObserver.AssertExpectations(t)
}

func TestQuizService_NextQuestion_ByCategory(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	category := uintPtr(2)
	mockQuestionRepo.On("FindCandidates", category).Return(testQuestions(10, 11), nil)

	svc := createTestQuizServiceWithMocks(mockQuestionRepo, nil)

	// Act
	question, err := svc.NextQuestion(nil, category)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, question)
	assert.Contains(t, []uint{10, 11}, question.ID)
}

func TestQuizService_NextQuestion_Exhausted(t *testing.T) {
	// Arrange
	mockQuestionRepo := new(MockQuestionRepository)
	mockObserver := new(MockObserver)

	var allCategories *uint
	mockQuestionRepo.On("FindCandidates", allCategories).Return(testQuestions(1, 2, 3), nil)
	mockObserver.On("ObserveSelection", metrics.OutcomeExhausted).Return()

	svc := createTestQuizServiceWithMocks(mockQuestionRepo, mockObserver)

	// Act
	question, err := svc.NextQuestion([]uint{1, 2, 3}, nil)

	// Assert
	assert.NoError(t, err, "закончившиеся вопросы: не ошибка")
	assert.Nil(t, question)
	mockObserver.AssertExpectations(t)
}

func TestQuizService_NextQuestion_EmptyPool(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepository)
	category := uintPtr(999)
	mockQuestionRepo.On("FindCandidates", category).Return(testQuestions(), nil)

	svc := createTestQuizServiceWithMocks(mockQuestionRepo, nil)

	question, err := svc.NextQuestion([]uint{}, category)

	assert.NoError(t, err)
	assert.Nil(t, question)
}

func TestQuizService_NextQuestion_RepoError(t *testing.T) {
	mockQuestionRepo := new(MockQuestionRepository)
	dbErr := errors.New("db is down")
	var allCategories *uint
	mockQuestionRepo.On("FindCandidates", allCategories).Return(nil, dbErr)

	svc := createTestQuizServiceWithMocks(mockQuestionRepo, nil)

	question, err := svc.NextQuestion(nil, nil)

	assert.Nil(t, question)
	assert.ErrorIs(t, err, dbErr)
}
