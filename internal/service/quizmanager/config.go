package quizmanager

import "fmt"

// Значения по умолчанию
const (
	DefaultQuestionsPerPage = 10
	// Фронтенд нумерует категории с 0, база данных с 1
	DefaultCategoryOffset = 1
)

// Config содержит настройки выдачи вопросов
type Config struct {
	QuestionsPerPage int // Размер страницы в списках вопросов
	CategoryOffset   int // Сдвиг между id категории у клиента и в базе
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		QuestionsPerPage: DefaultQuestionsPerPage,
		CategoryOffset:   DefaultCategoryOffset,
	}
}

// Validate проверяет корректность настроек
func (c *Config) Validate() error {
	if c.QuestionsPerPage < 1 {
		return fmt.Errorf("questions per page must be positive, got %d", c.QuestionsPerPage)
	}
	if c.CategoryOffset < 0 {
		return fmt.Errorf("category offset must not be negative, got %d", c.CategoryOffset)
	}
	return nil
}

// ToStoreCategory переводит id категории клиента в id базы данных.
// Возвращает false, если результат не может быть id категории.
func (c *Config) ToStoreCategory(clientID int) (uint, bool) {
	id := clientID + c.CategoryOffset
	if id < 1 {
		return 0, false
	}
	return uint(id), true
}

// ToClientCategory переводит id категории базы данных в id клиента
func (c *Config) ToClientCategory(storeID uint) int {
	return int(storeID) - c.CategoryOffset
}
