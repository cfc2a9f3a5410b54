package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yourusername/trivia-quiz/internal/domain/entity"
)

// newTestDB поднимает SQLite в памяти с той же схемой, что и в PostgreSQL.
// Одно соединение: каждая новая связь с ":memory:" получила бы пустую базу.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&entity.Category{}, &entity.Question{}))
	return db
}

// seedTrivia заполняет базу небольшим набором категорий и вопросов
func seedTrivia(t *testing.T, db *gorm.DB) []entity.Question {
	t.Helper()

	categories := []entity.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}
	require.NoError(t, db.Create(&categories).Error)

	questions := []entity.Question{
		{ID: 1, Text: "What is the heaviest organ in the human body?", Answer: "The Liver", CategoryID: 1, Difficulty: 4},
		{ID: 2, Text: "Who discovered penicillin?", Answer: "Alexander Fleming", CategoryID: 1, Difficulty: 3},
		{ID: 3, Text: "La Giaconda is better known as what?", Answer: "Mona Lisa", CategoryID: 2, Difficulty: 3},
		{ID: 4, Text: "What is the largest lake in Africa?", Answer: "Lake Victoria", CategoryID: 3, Difficulty: 2},
		{ID: 5, Text: "Whose autobiography is entitled 'I Know Why the Caged Bird Sings'?", Answer: "Maya Angelou", CategoryID: 2, Difficulty: 2},
		{ID: 6, Text: "What is 50% of 10?", Answer: "5", CategoryID: 1, Difficulty: 1},
	}
	require.NoError(t, db.Create(&questions).Error)
	return questions
}
