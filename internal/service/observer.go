package service

// SelectionObserver получает исход каждого выбора вопроса для викторины
type SelectionObserver interface {
	ObserveSelection(outcome string)
}

// CacheObserver получает результат обращения к кешу
type CacheObserver interface {
	ObserveCache(group string, hit bool)
}

type noopObserver struct{}

func (noopObserver) ObserveSelection(string)   {}
func (noopObserver) ObserveCache(string, bool) {}
