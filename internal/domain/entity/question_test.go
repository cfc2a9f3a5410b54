package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_TableName(t *testing.T) {
	question := Question{}
	assert.Equal(t, "questions", question.TableName(), "TableName должен возвращать 'questions'")
}

func TestQuestion_IsValidDifficulty(t *testing.T) {
	testCases := []struct {
		name       string
		difficulty int
		expected   bool
	}{
		{"ноль", 0, false},
		{"минимум", 1, true},
		{"середина", 3, true},
		{"максимум", 5, true},
		{"выше максимума", 6, false},
		{"отрицательная", -1, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := &Question{Difficulty: tc.difficulty}
			assert.Equal(t, tc.expected, q.IsValidDifficulty())
		})
	}
}

func TestQuestion_NormalizeAndIsComplete(t *testing.T) {
	// Arrange
	q := &Question{Text: "  What is the heaviest organ?  ", Answer: "\tThe Liver\n"}

	// Act
	q.Normalize()

	// Assert
	assert.Equal(t, "What is the heaviest organ?", q.Text)
	assert.Equal(t, "The Liver", q.Answer)
	assert.True(t, q.IsComplete())

	assert.False(t, (&Question{Text: "   ", Answer: "x"}).IsComplete(), "Пустой текст вопроса недопустим")
	assert.False(t, (&Question{Text: "x", Answer: ""}).IsComplete(), "Пустой ответ недопустим")
}

func TestQuestionIDs_PreservesOrder(t *testing.T) {
	questions := []Question{{ID: 3}, {ID: 1}, {ID: 2}}
	assert.Equal(t, []uint{3, 1, 2}, QuestionIDs(questions))
	assert.Empty(t, QuestionIDs(nil))
}

func TestCategory_TableNameAndTypes(t *testing.T) {
	assert.Equal(t, "categories", Category{}.TableName())

	categories := []Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}
	assert.Equal(t, []string{"Science", "Art"}, CategoryTypes(categories))
	assert.Empty(t, CategoryTypes(nil))
}
