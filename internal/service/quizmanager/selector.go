package quizmanager

import (
	"math/rand/v2"
	"sync"

	"github.com/yourusername/trivia-quiz/internal/domain/entity"
)

// Selector выбирает случайный вопрос, который еще не задавался в текущей игре.
//
// История игры хранится на клиенте и присылается с каждым запросом,
// поэтому Selector не держит состояния между вызовами, кроме генератора.
type Selector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSelector создает селектор. При rng == nil используется глобальный
// источник math/rand/v2, безопасный для конкурентного доступа.
// Переданный генератор защищается мьютексом.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Select возвращает вопрос из candidates, id которого нет в asked.
// Каждый подходящий вопрос выбирается с равной вероятностью.
// Второе значение false означает, что подходящих вопросов нет: пул пуст
// или все вопросы уже заданы. Входные срезы не изменяются.
func (s *Selector) Select(candidates []entity.Question, asked []uint) (*entity.Question, bool) {
	eligible := Eligible(candidates, asked)
	if len(eligible) == 0 {
		return nil, false
	}

	picked := eligible[s.intN(len(eligible))]
	return &picked, true
}

// Eligible возвращает новый срез вопросов из candidates, которые не входят в asked.
// Порядок candidates сохраняется.
func Eligible(candidates []entity.Question, asked []uint) []entity.Question {
	if len(candidates) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(asked))
	for _, id := range asked {
		seen[id] = struct{}{}
	}

	eligible := make([]entity.Question, 0, len(candidates))
	for _, q := range candidates {
		if _, ok := seen[q.ID]; ok {
			continue
		}
		eligible = append(eligible, q)
	}
	return eligible
}

func (s *Selector) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}
