package entity

import "strings"

// Границы сложности вопроса
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question представляет вопрос викторины
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"column:question;type:text;not null" json:"question"`
	Answer     string `gorm:"column:answer;type:text;not null" json:"answer"`
	CategoryID uint   `gorm:"column:category;not null;index" json:"category"`
	Difficulty int    `gorm:"column:difficulty;not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsValidDifficulty проверяет, что сложность в допустимом диапазоне
func (q *Question) IsValidDifficulty() bool {
	return q.Difficulty >= MinDifficulty && q.Difficulty <= MaxDifficulty
}

// Normalize обрезает пробелы в тексте вопроса и ответа
func (q *Question) Normalize() {
	q.Text = strings.TrimSpace(q.Text)
	q.Answer = strings.TrimSpace(q.Answer)
}

// IsComplete проверяет, что у вопроса есть текст и ответ
func (q *Question) IsComplete() bool {
	return strings.TrimSpace(q.Text) != "" && strings.TrimSpace(q.Answer) != ""
}

// QuestionIDs возвращает идентификаторы вопросов в исходном порядке
func QuestionIDs(questions []Question) []uint {
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}
	return ids
}
